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

package model

import (
	"fmt"
	"math"

	"github.com/c-bata/goptuna"
	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/autogpc/autogpc/dataset"
)

// RBF is a radial basis function kernel smoother: the predicted probability
// of class 1 is the kernel-weighted mean of the training classes, with one
// lengthscale per input dimension. It is the reference candidate for kernel
// search, not a Gaussian process.
type RBF struct {
	params       Params
	lengthscales []float64
	inputs       [][]float64
	outputs      [][]float64
}

// NewRBF creates an RBF kernel smoother.
func NewRBF(params Params) *RBF {
	r := &RBF{}
	r.SetParams(params)
	return r
}

// SetParams sets hyper-parameters.
func (r *RBF) SetParams(params Params) {
	r.params = params
}

// GetParams returns hyper-parameters.
func (r *RBF) GetParams() Params {
	return r.params
}

// SuggestParams draws one lengthscale per input dimension within the bounds
// derived from data.
func (r *RBF) SuggestParams(trial goptuna.Trial, data *dataset.Dataset) Params {
	params := make(Params)
	for d := 0; d < data.Dimensions(); d++ {
		params[lengthscaleName(d)] = lo.Must(SuggestLengthscale(trial, data, d))
	}
	return params
}

// Clone returns an unfitted copy sharing hyper-parameters.
func (r *RBF) Clone() Classifier {
	return &RBF{params: r.params.Copy()}
}

// Fit stores the training rows and resolves per-dimension lengthscales from
// the hyper-parameters. Missing per-dimension entries fall back to the shared
// Lengthscale parameter, then to 1.
func (r *RBF) Fit(inputs, outputs [][]float64) error {
	if len(inputs) == 0 {
		return errors.New("empty training set")
	}
	shared := r.params.GetFloat64(Lengthscale, 1)
	r.lengthscales = make([]float64, len(inputs[0]))
	for d := range r.lengthscales {
		r.lengthscales[d] = r.params.GetFloat64(lengthscaleName(d), shared)
	}
	r.inputs = inputs
	r.outputs = outputs
	return nil
}

// Predict returns the probability of class 1 for each input row.
func (r *RBF) Predict(inputs [][]float64) []float64 {
	return lo.Map(inputs, func(x []float64, _ int) float64 {
		return r.predict(x)
	})
}

func (r *RBF) predict(x []float64) float64 {
	var weightSum, weighted float64
	for i, xi := range r.inputs {
		distance := 0.0
		for j := range x {
			diff := (x[j] - xi[j]) / r.lengthscales[j]
			distance += diff * diff
		}
		w := math.Exp(-0.5 * distance)
		weightSum += w
		weighted += w * r.outputs[i][0]
	}
	if weightSum == 0 {
		// every training point underflowed to zero weight
		return 0.5
	}
	return weighted / weightSum
}

func lengthscaleName(dim int) ParamName {
	return ParamName(fmt.Sprintf("%s_%d", Lengthscale, dim+1))
}
