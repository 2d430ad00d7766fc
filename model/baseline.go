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
	"github.com/c-bata/goptuna"
	"github.com/juju/errors"

	"github.com/autogpc/autogpc/dataset"
)

// Baseline predicts the majority class of the training set for every input.
// Any useful kernel has to beat it.
type Baseline struct {
	params   Params
	majority float64
}

// NewBaseline creates a Baseline classifier.
func NewBaseline() *Baseline {
	return &Baseline{params: make(Params)}
}

// SetParams sets hyper-parameters.
func (b *Baseline) SetParams(params Params) {
	b.params = params
}

// GetParams returns hyper-parameters.
func (b *Baseline) GetParams() Params {
	return b.params
}

// SuggestParams returns no hyper-parameters, a baseline has none.
func (b *Baseline) SuggestParams(_ goptuna.Trial, _ *dataset.Dataset) Params {
	return make(Params)
}

// Clone returns an unfitted copy sharing hyper-parameters.
func (b *Baseline) Clone() Classifier {
	return &Baseline{params: b.params.Copy()}
}

// Fit records the majority class of the training set.
func (b *Baseline) Fit(inputs, outputs [][]float64) error {
	if len(outputs) == 0 {
		return errors.New("empty training set")
	}
	positives := 0
	for _, row := range outputs {
		if row[0] == 1 {
			positives++
		}
	}
	b.majority = 0
	if positives*2 >= len(outputs) {
		b.majority = 1
	}
	return nil
}

// Predict returns the majority class for each input row.
func (b *Baseline) Predict(inputs [][]float64) []float64 {
	predictions := make([]float64, len(inputs))
	for i := range predictions {
		predictions[i] = b.majority
	}
	return predictions
}
