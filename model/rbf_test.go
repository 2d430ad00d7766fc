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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRBF(t *testing.T) {
	inputs := [][]float64{{0}, {1}, {2}, {10}, {11}, {12}}
	outputs := [][]float64{{0}, {0}, {0}, {1}, {1}, {1}}
	r := NewRBF(Params{Lengthscale: 1.0})
	require.NoError(t, r.Fit(inputs, outputs))
	predictions := r.Predict(inputs)
	assert.Equal(t, 1.0, Accuracy(predictions, outputs))
	// points near the positive cluster score high, near the negative low
	far := r.Predict([][]float64{{-5}, {20}})
	assert.Less(t, far[0], 0.5)
	assert.Greater(t, far[1], 0.5)
}

func TestRBF_PerDimensionLengthscales(t *testing.T) {
	r := NewRBF(Params{
		lengthscaleName(0): 1.0,
		lengthscaleName(1): 100.0,
	})
	// the second dimension is pure noise, a wide lengthscale washes it out
	inputs := [][]float64{{0, 500}, {1, -300}, {10, 400}, {11, -200}}
	outputs := [][]float64{{0}, {0}, {1}, {1}}
	require.NoError(t, r.Fit(inputs, outputs))
	assert.Equal(t, 1.0, Accuracy(r.Predict(inputs), outputs))
}

func TestRBF_Underflow(t *testing.T) {
	r := NewRBF(Params{Lengthscale: 1e-3})
	require.NoError(t, r.Fit([][]float64{{0}, {1}}, [][]float64{{0}, {1}}))
	// no training point contributes weight at this distance
	assert.Equal(t, []float64{0.5}, r.Predict([][]float64{{1e6}}))
}

func TestRBF_Clone(t *testing.T) {
	r := NewRBF(Params{Lengthscale: 2.0})
	require.NoError(t, r.Fit([][]float64{{0}, {1}}, [][]float64{{0}, {1}}))
	cp := r.Clone().(*RBF)
	assert.Equal(t, r.GetParams(), cp.GetParams())
	assert.Nil(t, cp.inputs)
	assert.Error(t, cp.Fit(nil, nil))
}

func TestBaseline(t *testing.T) {
	b := NewBaseline()
	require.NoError(t, b.Fit(
		[][]float64{{1}, {2}, {3}},
		[][]float64{{1}, {1}, {0}}))
	assert.Equal(t, []float64{1, 1}, b.Predict([][]float64{{4}, {5}}))

	require.NoError(t, b.Fit(
		[][]float64{{1}, {2}, {3}},
		[][]float64{{0}, {1}, {0}}))
	assert.Equal(t, []float64{0}, b.Predict([][]float64{{4}}))

	assert.Error(t, b.Fit(nil, nil))
}
