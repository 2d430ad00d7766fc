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

// Package model defines the classifier surface consumed by kernel search and
// the search procedure itself. Datasets supply the hyper-parameter bounds and
// the cross-validation folds, classifiers supply fit and predict.
package model

import (
	"fmt"

	"github.com/c-bata/goptuna"
	"github.com/juju/errors"

	"github.com/autogpc/autogpc/dataset"
)

// Classifier is a binary classifier over real-valued inputs. Probabilistic
// classifiers return the probability of class 1 from Predict, others return
// 0 or 1 directly.
type Classifier interface {
	// SetParams sets hyper-parameters.
	SetParams(params Params)
	// GetParams returns hyper-parameters.
	GetParams() Params
	// SuggestParams draws hyper-parameters for a trial, within the bounds
	// derived from the dataset.
	SuggestParams(trial goptuna.Trial, data *dataset.Dataset) Params
	// Clone returns an unfitted deep copy sharing hyper-parameters.
	Clone() Classifier
	// Fit trains the classifier on the given rows.
	Fit(inputs, outputs [][]float64) error
	// Predict returns one score per input row.
	Predict(inputs [][]float64) []float64
}

// SuggestLengthscale draws a lengthscale for one input dimension within the
// bounds derived from data.
func SuggestLengthscale(trial goptuna.Trial, data *dataset.Dataset, dim int) (float64, error) {
	bounds, err := data.LengthscaleBounds(dim)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return trial.SuggestLogFloat(fmt.Sprintf("%s_%d", Lengthscale, dim+1), bounds[0][0], bounds[1][0])
}

// SuggestPeriod draws a period for one input dimension within the bounds
// derived from data.
func SuggestPeriod(trial goptuna.Trial, data *dataset.Dataset, dim int) (float64, error) {
	bounds, err := data.PeriodBounds(dim)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return trial.SuggestLogFloat(fmt.Sprintf("%s_%d", Period, dim+1), bounds[0][0], bounds[1][0])
}
