// Copyright 2026 autogpc Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset implements the dataset container for binary classification
// problems with real-valued inputs. A Dataset owns its arrays, derives and
// caches descriptive statistics, derives hyper-parameter search bounds from
// them and produces memoized cross-validation partitions.
package dataset

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/autogpc/autogpc/base"
)

var (
	// ErrShape reports malformed or mismatched input/output array shapes.
	ErrShape = errors.New("malformed or mismatched array shape")
	// ErrDegenerateDimension reports a dimension with fewer than two distinct
	// values, for which minimum separation is undefined.
	ErrDegenerateDimension = errors.New("dimension has fewer than two distinct values")
	// ErrInvalidFoldCount reports a fold count outside [1, N].
	ErrInvalidFoldCount = errors.New("invalid number of folds")
)

// Dataset is a container of N data points with D real-valued input dimensions
// and a binary class column. The arrays are fixed at construction time, so
// derived statistics and fold partitions are memoized and never invalidated.
type Dataset struct {
	inputs       [][]float64
	outputs      [][]float64
	inputLabels  []string
	outputLabels []string
	rng          base.RandomGenerator

	mu      sync.Mutex
	ranges  []float64
	minSeps []float64
	folds   *Folds
}

// Folds is a k-fold cross-validation partition. The four lists have length K
// and are index-aligned: the training set of fold i is the complement of its
// test set.
type Folds struct {
	K            int
	TrainInputs  [][][]float64
	TrainOutputs [][][]float64
	TestInputs   [][][]float64
	TestOutputs  [][][]float64
}

// Description contains per-dimension descriptive statistics of the inputs and
// scalar statistics of the output column. Standard deviations are population
// standard deviations.
type Description struct {
	Mean         []float64
	StdDev       []float64
	Min          []float64
	Max          []float64
	OutputMean   float64
	OutputStdDev float64
}

// NewDataset creates a Dataset from an N×D input matrix and an N×1 output
// matrix. inputLabels is used verbatim if it has exactly D entries, otherwise
// labels default to x_1 ... x_D. outputLabels is used verbatim if it has
// exactly 2 entries (class 0 first), otherwise it defaults to
// ["negative", "positive"]. Output values are expected to be 0 or 1 but are
// not validated: GetClass with a label absent from the outputs returns no
// rows. The caller hands over ownership of the arrays, the Dataset never
// mutates them.
func NewDataset(inputs, outputs [][]float64, inputLabels, outputLabels []string) (*Dataset, error) {
	if len(inputs) == 0 {
		return nil, errors.Annotate(ErrShape, "inputs must have at least one row")
	}
	dim := len(inputs[0])
	if dim == 0 {
		return nil, errors.Annotate(ErrShape, "inputs must have at least one column")
	}
	for i, row := range inputs {
		if len(row) != dim {
			return nil, errors.Annotatef(ErrShape, "inputs row %d has %d columns, expected %d", i, len(row), dim)
		}
	}
	if len(outputs) != len(inputs) {
		return nil, errors.Annotatef(ErrShape, "inputs have %d rows but outputs have %d", len(inputs), len(outputs))
	}
	for i, row := range outputs {
		if len(row) != 1 {
			return nil, errors.Annotatef(ErrShape, "outputs row %d has %d columns, expected 1", i, len(row))
		}
	}
	if len(inputLabels) != dim {
		inputLabels = lo.Map(lo.Range(dim), func(d, _ int) string {
			return fmt.Sprintf("x_%d", d+1)
		})
	}
	if len(outputLabels) != 2 {
		outputLabels = []string{"negative", "positive"}
	}
	return &Dataset{
		inputs:       inputs,
		outputs:      outputs,
		inputLabels:  inputLabels,
		outputLabels: outputLabels,
		rng:          base.NewRandomGenerator(time.Now().UnixNano()),
	}, nil
}

// Count returns the number of data points.
func (d *Dataset) Count() int {
	return len(d.inputs)
}

// Dimensions returns the number of input dimensions.
func (d *Dataset) Dimensions() int {
	return len(d.inputs[0])
}

// Inputs returns the input matrix.
func (d *Dataset) Inputs() [][]float64 {
	return d.inputs
}

// Outputs returns the output matrix.
func (d *Dataset) Outputs() [][]float64 {
	return d.outputs
}

// InputLabels returns the display labels of the input dimensions.
func (d *Dataset) InputLabels() []string {
	return d.inputLabels
}

// OutputLabels returns the display labels of the two classes, class 0 first.
func (d *Dataset) OutputLabels() []string {
	return d.outputLabels
}

// GetClass returns the input rows whose output equals label. A label never
// present in the outputs yields an empty result.
func (d *Dataset) GetClass(label float64) [][]float64 {
	rows := make([][]float64, 0, len(d.inputs))
	for i, row := range d.inputs {
		if d.outputs[i][0] == label {
			rows = append(rows, row)
		}
	}
	return rows
}

// Describe computes descriptive statistics of the dataset. The result is
// recomputed on every call.
func (d *Dataset) Describe() Description {
	dim := d.Dimensions()
	desc := Description{
		Mean:   make([]float64, dim),
		StdDev: make([]float64, dim),
		Min:    make([]float64, dim),
		Max:    make([]float64, dim),
	}
	for j := 0; j < dim; j++ {
		col := d.column(j)
		desc.Mean[j] = stat.Mean(col, nil)
		desc.StdDev[j] = stat.PopStdDev(col, nil)
		desc.Min[j] = floats.Min(col)
		desc.Max[j] = floats.Max(col)
	}
	out := d.outputColumn()
	desc.OutputMean = stat.Mean(out, nil)
	desc.OutputStdDev = stat.PopStdDev(out, nil)
	return desc
}

// InputRange returns max-min for each requested dimension, or for all
// dimensions if none are given. All ranges are computed and cached on the
// first call, later calls slice the cache.
func (d *Dataset) InputRange(dims ...int) ([]float64, error) {
	if err := d.checkDims(dims); err != nil {
		return nil, err
	}
	return sliceDims(d.inputRanges(), dims), nil
}

func (d *Dataset) inputRanges() []float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ranges == nil {
		ranges := make([]float64, d.Dimensions())
		for j := range ranges {
			col := d.column(j)
			ranges[j] = floats.Max(col) - floats.Min(col)
		}
		d.ranges = ranges
	}
	return d.ranges
}

// MinSeparation returns, for each requested dimension (all dimensions if none
// are given), the minimum difference between adjacent distinct values of that
// dimension. All separations are computed and cached on the first call, later
// calls slice the cache. Fails with ErrDegenerateDimension if any dimension
// holds fewer than two distinct values.
func (d *Dataset) MinSeparation(dims ...int) ([]float64, error) {
	if err := d.checkDims(dims); err != nil {
		return nil, err
	}
	minSeps, err := d.minSeparations()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return sliceDims(minSeps, dims), nil
}

func (d *Dataset) minSeparations() ([]float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.minSeps != nil {
		return d.minSeps, nil
	}
	minSeps := make([]float64, d.Dimensions())
	for j := range minSeps {
		distinct := mapset.NewSet[float64]()
		for _, row := range d.inputs {
			distinct.Add(row[j])
		}
		if distinct.Cardinality() < 2 {
			return nil, errors.Annotatef(ErrDegenerateDimension,
				"dimension %d (%s) has %d distinct value(s)", j, d.inputLabels[j], distinct.Cardinality())
		}
		values := distinct.ToSlice()
		sort.Float64s(values)
		minSep := math.Inf(1)
		for i := 1; i < len(values); i++ {
			if sep := values[i] - values[i-1]; sep < minSep {
				minSep = sep
			}
		}
		minSeps[j] = minSep
	}
	d.minSeps = minSeps
	return minSeps, nil
}

// LengthscaleBounds returns lower and upper bounds for a lengthscale
// hyper-parameter over the requested dimensions: row 0 is MinSeparation, row
// 1 is InputRange doubled. The lower bound keeps a lengthscale from dropping
// below the resolution of the data, the upper bound caps it at twice the
// observed span, beyond which it is indistinguishable from a constant.
func (d *Dataset) LengthscaleBounds(dims ...int) ([2][]float64, error) {
	lower, err := d.MinSeparation(dims...)
	if err != nil {
		return [2][]float64{}, errors.Trace(err)
	}
	upper, err := d.InputRange(dims...)
	if err != nil {
		return [2][]float64{}, errors.Trace(err)
	}
	for i := range upper {
		upper[i] *= 2
	}
	return [2][]float64{lower, upper}, nil
}

// PeriodBounds returns lower and upper bounds for a period hyper-parameter.
// A period is bounded by the same resolution and span logic as a lengthscale.
func (d *Dataset) PeriodBounds(dims ...int) ([2][]float64, error) {
	return d.LengthscaleBounds(dims...)
}

// KFoldSplits partitions the dataset into k cross-validation folds. For k = 1
// the dataset is not partitioned: both the training set and the test set of
// the single fold are the entire dataset. The result is memoized together
// with k. A later call with the same k returns the identical partition, a
// call with a different k discards it and re-partitions with a fresh shuffle.
func (d *Dataset) KFoldSplits(k int) (*Folds, error) {
	if k < 1 || k > d.Count() {
		return nil, errors.Annotatef(ErrInvalidFoldCount, "k = %d must be in [1, %d]", k, d.Count())
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.folds != nil && d.folds.K == k {
		return d.folds, nil
	}
	folds := &Folds{K: k}
	if k == 1 {
		folds.TrainInputs = [][][]float64{d.inputs}
		folds.TrainOutputs = [][][]float64{d.outputs}
		folds.TestInputs = [][][]float64{d.inputs}
		folds.TestOutputs = [][][]float64{d.outputs}
	} else {
		n := d.Count()
		perm := d.rng.Perm(n)
		foldSize := n / k
		begin, end := 0, 0
		for i := 0; i < k; i++ {
			end += foldSize
			if i < n%k {
				end++
			}
			testIndex := perm[begin:end]
			trainIndex := make([]int, 0, len(perm)-(end-begin))
			trainIndex = append(trainIndex, perm[:begin]...)
			trainIndex = append(trainIndex, perm[end:]...)
			folds.TrainInputs = append(folds.TrainInputs, takeRows(d.inputs, trainIndex))
			folds.TrainOutputs = append(folds.TrainOutputs, takeRows(d.outputs, trainIndex))
			folds.TestInputs = append(folds.TestInputs, takeRows(d.inputs, testIndex))
			folds.TestOutputs = append(folds.TestOutputs, takeRows(d.outputs, testIndex))
			begin = end
		}
	}
	d.folds = folds
	return folds, nil
}

// String returns a multi-line summary for logging. The format is not
// contractual.
func (d *Dataset) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset: %d dimensions, %d data points.\n", d.Dimensions(), d.Count())
	fmt.Fprintf(&b, "input labels: %s\n", strings.Join(d.inputLabels, ", "))
	fmt.Fprintf(&b, "output labels: %s\n", strings.Join(d.outputLabels, ", "))
	ranges, err := d.InputRange()
	if err == nil {
		fmt.Fprintf(&b, "input ranges: %v\n", ranges)
	}
	minSeps, err := d.MinSeparation()
	if err != nil {
		fmt.Fprintf(&b, "minimum separations: unavailable (%v)", err)
	} else {
		fmt.Fprintf(&b, "minimum separations: %v", minSeps)
	}
	return b.String()
}

func (d *Dataset) column(j int) []float64 {
	return lo.Map(d.inputs, func(row []float64, _ int) float64 {
		return row[j]
	})
}

func (d *Dataset) outputColumn() []float64 {
	return lo.Map(d.outputs, func(row []float64, _ int) float64 {
		return row[0]
	})
}

func (d *Dataset) checkDims(dims []int) error {
	for _, dim := range dims {
		if dim < 0 || dim >= d.Dimensions() {
			return errors.Annotatef(ErrShape, "dimension %d out of range [0, %d)", dim, d.Dimensions())
		}
	}
	return nil
}

func sliceDims(all []float64, dims []int) []float64 {
	if len(dims) == 0 {
		return slices.Clone(all)
	}
	return lo.Map(dims, func(dim, _ int) float64 {
		return all[dim]
	})
}

func takeRows(m [][]float64, index []int) [][]float64 {
	return lo.Map(index, func(i, _ int) []float64 {
		return m[i]
	})
}
