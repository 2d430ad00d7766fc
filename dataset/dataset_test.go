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

package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newColumnDataset builds the 6×1 dataset [1 2 3 4 5 6] with alternating
// classes.
func newColumnDataset(t *testing.T) *Dataset {
	d, err := NewDataset(
		[][]float64{{1}, {2}, {3}, {4}, {5}, {6}},
		[][]float64{{0}, {1}, {0}, {1}, {0}, {1}},
		nil, nil)
	require.NoError(t, err)
	return d
}

func TestNewDataset(t *testing.T) {
	d := newColumnDataset(t)
	assert.Equal(t, 6, d.Count())
	assert.Equal(t, 1, d.Dimensions())
	assert.Equal(t, []string{"x_1"}, d.InputLabels())
	assert.Equal(t, []string{"negative", "positive"}, d.OutputLabels())
	assert.Len(t, d.Outputs(), len(d.Inputs()))

	// labels are used verbatim only when their length matches
	d, err := NewDataset(
		[][]float64{{1, 2}, {3, 4}},
		[][]float64{{0}, {1}},
		[]string{"age", "weight"},
		[]string{"healthy", "sick"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"age", "weight"}, d.InputLabels())
	assert.Equal(t, []string{"healthy", "sick"}, d.OutputLabels())

	d, err = NewDataset(
		[][]float64{{1, 2}, {3, 4}},
		[][]float64{{0}, {1}},
		[]string{"age"},
		[]string{"healthy"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"x_1", "x_2"}, d.InputLabels())
	assert.Equal(t, []string{"negative", "positive"}, d.OutputLabels())
}

func TestNewDataset_ShapeErrors(t *testing.T) {
	// no rows
	_, err := NewDataset(nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrShape)
	// no columns
	_, err = NewDataset([][]float64{{}}, [][]float64{{0}}, nil, nil)
	assert.ErrorIs(t, err, ErrShape)
	// ragged input matrix
	_, err = NewDataset([][]float64{{1, 2}, {3}}, [][]float64{{0}, {1}}, nil, nil)
	assert.ErrorIs(t, err, ErrShape)
	// (5,2) inputs with (4,1) outputs
	_, err = NewDataset(
		[][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}},
		[][]float64{{0}, {1}, {0}, {1}},
		nil, nil)
	assert.ErrorIs(t, err, ErrShape)
	// outputs with two columns
	_, err = NewDataset([][]float64{{1}, {2}}, [][]float64{{0, 1}, {1, 0}}, nil, nil)
	assert.ErrorIs(t, err, ErrShape)
}

func TestDataset_GetClass(t *testing.T) {
	d := newColumnDataset(t)
	assert.Equal(t, [][]float64{{1}, {3}, {5}}, d.GetClass(0))
	assert.Equal(t, [][]float64{{2}, {4}, {6}}, d.GetClass(1))
	// outputs are not validated to be binary, unknown labels match nothing
	assert.Empty(t, d.GetClass(2))
}

func TestDataset_Describe(t *testing.T) {
	d, err := NewDataset(
		[][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}},
		[][]float64{{0}, {1}, {0}, {1}},
		nil, nil)
	require.NoError(t, err)
	desc := d.Describe()
	assert.Equal(t, []float64{2.5, 25}, desc.Mean)
	assert.InDelta(t, math.Sqrt(1.25), desc.StdDev[0], 1e-12)
	assert.InDelta(t, math.Sqrt(125), desc.StdDev[1], 1e-12)
	assert.Equal(t, []float64{1, 10}, desc.Min)
	assert.Equal(t, []float64{4, 40}, desc.Max)
	assert.Equal(t, 0.5, desc.OutputMean)
	assert.Equal(t, 0.5, desc.OutputStdDev)
}

func TestDataset_InputRange(t *testing.T) {
	d := newColumnDataset(t)
	ranges, err := d.InputRange()
	assert.NoError(t, err)
	assert.Equal(t, []float64{5}, ranges)

	// slicing the cache equals recomputing the range directly
	d, err = NewDataset(
		[][]float64{{1, 100, -1}, {2, 300, 1}, {3, 200, 3}},
		[][]float64{{0}, {1}, {0}},
		nil, nil)
	require.NoError(t, err)
	all, err := d.InputRange()
	assert.NoError(t, err)
	assert.Equal(t, []float64{2, 200, 4}, all)
	sliced, err := d.InputRange(2, 0)
	assert.NoError(t, err)
	assert.Equal(t, []float64{4, 2}, sliced)

	_, err = d.InputRange(3)
	assert.ErrorIs(t, err, ErrShape)
}

func TestDataset_MinSeparation(t *testing.T) {
	d := newColumnDataset(t)
	minSeps, err := d.MinSeparation()
	assert.NoError(t, err)
	assert.Equal(t, []float64{1}, minSeps)

	// per dimension, over sorted distinct values
	d, err = NewDataset(
		[][]float64{{1, 7}, {1.5, 3}, {3, 5}},
		[][]float64{{0}, {1}, {0}},
		nil, nil)
	require.NoError(t, err)
	minSeps, err = d.MinSeparation()
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.5, 2}, minSeps)
	sliced, err := d.MinSeparation(1)
	assert.NoError(t, err)
	assert.Equal(t, []float64{2}, sliced)
}

func TestDataset_MinSeparation_Invariance(t *testing.T) {
	// invariant to row order and to duplicate rows
	rows := [][][]float64{
		{{1}, {2}, {4}, {8}},
		{{8}, {4}, {1}, {2}},
		{{1}, {2}, {2}, {4}, {8}, {8}},
	}
	for _, inputs := range rows {
		outputs := make([][]float64, len(inputs))
		for i := range outputs {
			outputs[i] = []float64{float64(i % 2)}
		}
		d, err := NewDataset(inputs, outputs, nil, nil)
		require.NoError(t, err)
		minSeps, err := d.MinSeparation()
		assert.NoError(t, err)
		assert.Equal(t, []float64{1}, minSeps)
	}
}

func TestDataset_MinSeparation_Degenerate(t *testing.T) {
	d, err := NewDataset(
		[][]float64{{1, 5}, {2, 5}, {3, 5}},
		[][]float64{{0}, {1}, {0}},
		nil, nil)
	require.NoError(t, err)
	_, err = d.MinSeparation()
	assert.ErrorIs(t, err, ErrDegenerateDimension)
	// the degenerate dimension fails the request even if not selected
	_, err = d.MinSeparation(0)
	assert.ErrorIs(t, err, ErrDegenerateDimension)
}

func TestDataset_LengthscaleBounds(t *testing.T) {
	d := newColumnDataset(t)
	bounds, err := d.LengthscaleBounds()
	assert.NoError(t, err)
	assert.Equal(t, [2][]float64{{1}, {10}}, bounds)

	d, err = NewDataset(
		[][]float64{{1, 7}, {1.5, 3}, {3, 5}},
		[][]float64{{0}, {1}, {0}},
		nil, nil)
	require.NoError(t, err)
	for _, dims := range [][]int{nil, {0}, {1}, {1, 0}} {
		bounds, err := d.LengthscaleBounds(dims...)
		assert.NoError(t, err)
		minSeps, err := d.MinSeparation(dims...)
		assert.NoError(t, err)
		ranges, err := d.InputRange(dims...)
		assert.NoError(t, err)
		assert.Equal(t, minSeps, bounds[0])
		for i := range ranges {
			assert.Equal(t, ranges[i]*2, bounds[1][i])
		}
		periodBounds, err := d.PeriodBounds(dims...)
		assert.NoError(t, err)
		assert.Equal(t, bounds, periodBounds)
	}
}

func TestDataset_KFoldSplits_Single(t *testing.T) {
	d := newColumnDataset(t)
	folds, err := d.KFoldSplits(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, folds.K)
	assert.Equal(t, [][][]float64{d.Inputs()}, folds.TrainInputs)
	assert.Equal(t, [][][]float64{d.Outputs()}, folds.TrainOutputs)
	assert.Equal(t, [][][]float64{d.Inputs()}, folds.TestInputs)
	assert.Equal(t, [][][]float64{d.Outputs()}, folds.TestOutputs)
}

// assertValidPartition checks that the test blocks cover every row of d
// exactly once and that each training set is the complement of its test
// block. Rows are identified by their first column, which must be unique.
func assertValidPartition(t *testing.T, d *Dataset, folds *Folds) {
	n := d.Count()
	covered := make(map[float64]int)
	for i := 0; i < folds.K; i++ {
		testInputs := folds.TestInputs[i]
		trainInputs := folds.TrainInputs[i]
		assert.Len(t, folds.TestOutputs[i], len(testInputs))
		assert.Len(t, folds.TrainOutputs[i], len(trainInputs))
		assert.Equal(t, n, len(testInputs)+len(trainInputs))
		// block sizes differ by at most one
		assert.Contains(t, []int{n / folds.K, n/folds.K + 1}, len(testInputs))
		inTest := make(map[float64]bool)
		for _, row := range testInputs {
			covered[row[0]]++
			inTest[row[0]] = true
		}
		for _, row := range trainInputs {
			assert.False(t, inTest[row[0]])
		}
	}
	assert.Len(t, covered, n)
	for _, count := range covered {
		assert.Equal(t, 1, count)
	}
}

func TestDataset_KFoldSplits(t *testing.T) {
	inputs := make([][]float64, 10)
	outputs := make([][]float64, 10)
	for i := range inputs {
		inputs[i] = []float64{float64(i)}
		outputs[i] = []float64{float64(i % 2)}
	}
	d, err := NewDataset(inputs, outputs, nil, nil)
	require.NoError(t, err)

	folds, err := d.KFoldSplits(3)
	assert.NoError(t, err)
	assert.Equal(t, 3, folds.K)
	assertValidPartition(t, d, folds)

	// a repeated request with the same k returns the identical partition
	again, err := d.KFoldSplits(3)
	assert.NoError(t, err)
	assert.Same(t, folds, again)

	// a different k discards the cache and re-partitions
	folds5, err := d.KFoldSplits(5)
	assert.NoError(t, err)
	assert.Equal(t, 5, folds5.K)
	assertValidPartition(t, d, folds5)

	folds3, err := d.KFoldSplits(3)
	assert.NoError(t, err)
	assert.Equal(t, 3, folds3.K)
	assertValidPartition(t, d, folds3)
}

func TestDataset_KFoldSplits_InvalidCount(t *testing.T) {
	d := newColumnDataset(t)
	_, err := d.KFoldSplits(0)
	assert.ErrorIs(t, err, ErrInvalidFoldCount)
	_, err = d.KFoldSplits(d.Count() + 1)
	assert.ErrorIs(t, err, ErrInvalidFoldCount)
	_, err = d.KFoldSplits(d.Count())
	assert.NoError(t, err)
}

func TestDataset_String(t *testing.T) {
	d := newColumnDataset(t)
	s := d.String()
	assert.Contains(t, s, "1 dimensions, 6 data points")
	assert.Contains(t, s, "x_1")
	assert.Contains(t, s, "negative, positive")
}
