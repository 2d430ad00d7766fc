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
	"math"
	"sort"

	"github.com/c-bata/goptuna"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/autogpc/autogpc/base/log"
	"github.com/autogpc/autogpc/dataset"
)

// ClassifierCreator creates an unfitted classifier candidate.
type ClassifierCreator func() Classifier

// SearchResult is the best candidate found by a kernel search.
type SearchResult struct {
	Type   string
	Params Params
	Score  float64
}

// KernelSearch searches classifier candidates and their hyper-parameters over
// a dataset, scoring each trial by cross-validated accuracy.
type KernelSearch struct {
	creators map[string]ClassifierCreator
	types    []string
	data     *dataset.Dataset
	numFolds int
	result   SearchResult
}

// NewKernelSearch creates a KernelSearch over the given candidates.
func NewKernelSearch(creators map[string]ClassifierCreator, data *dataset.Dataset, numFolds int) *KernelSearch {
	types := lo.Keys(creators)
	sort.Strings(types)
	return &KernelSearch{
		creators: creators,
		types:    types,
		data:     data,
		numFolds: numFolds,
		result:   SearchResult{Score: math.Inf(-1)},
	}
}

// Objective is the goptuna objective: it draws a candidate and its
// hyper-parameters, cross-validates and keeps the best result.
func (ks *KernelSearch) Objective(trial goptuna.Trial) (float64, error) {
	if len(ks.creators) == 0 {
		return 0, errors.New("no classifier to search")
	}
	classifierType, err := trial.SuggestCategorical("classifier", ks.types)
	if err != nil {
		return 0, errors.Trace(err)
	}
	c := ks.creators[classifierType]()
	c.SetParams(c.GetParams().Overwrite(c.SuggestParams(trial, ks.data)))
	score, err := CrossValidate(c, ks.data, ks.numFolds)
	if err != nil {
		return 0, errors.Trace(err)
	}
	log.Logger().Debug("kernel search trial",
		zap.String("classifier", classifierType),
		zap.Any("params", c.GetParams()),
		zap.Float64("accuracy", score))
	if score > ks.result.Score {
		ks.result = SearchResult{
			Type:   classifierType,
			Params: c.GetParams(),
			Score:  score,
		}
	}
	return score, nil
}

// Result returns the best candidate found so far.
func (ks *KernelSearch) Result() SearchResult {
	return ks.result
}
