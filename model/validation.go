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
	"github.com/juju/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/autogpc/autogpc/dataset"
)

// Accuracy returns the fraction of predictions whose thresholded class equals
// the true class. Predictions are thresholded at 0.5.
func Accuracy(predictions []float64, truth [][]float64) float64 {
	if len(predictions) == 0 {
		return 0
	}
	correct := 0
	for i, p := range predictions {
		class := 0.0
		if p >= 0.5 {
			class = 1
		}
		if class == truth[i][0] {
			correct++
		}
	}
	return float64(correct) / float64(len(predictions))
}

// CrossValidate evaluates a classifier by k-fold cross-validation and returns
// the mean accuracy over folds. Each fold trains a clone, the original
// classifier is left untouched.
func CrossValidate(c Classifier, data *dataset.Dataset, k int) (float64, error) {
	folds, err := data.KFoldSplits(k)
	if err != nil {
		return 0, errors.Trace(err)
	}
	accuracies := make([]float64, folds.K)
	for i := 0; i < folds.K; i++ {
		cp := c.Clone()
		if err := cp.Fit(folds.TrainInputs[i], folds.TrainOutputs[i]); err != nil {
			return 0, errors.Trace(err)
		}
		accuracies[i] = Accuracy(cp.Predict(folds.TestInputs[i]), folds.TestOutputs[i])
	}
	return stat.Mean(accuracies, nil), nil
}
