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

package main

import (
	"fmt"
	"os"

	"github.com/c-bata/goptuna"
	"github.com/c-bata/goptuna/tpe"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/autogpc/autogpc/base/log"
	"github.com/autogpc/autogpc/model"
)

var tuneCommand = &cobra.Command{
	Use:   "tune DATA_FILE",
	Short: "Search kernel candidates by cross-validated accuracy.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd)
		d := loadDataset(cmd, args[0])
		folds, _ := cmd.Flags().GetInt("folds")
		trials, _ := cmd.Flags().GetInt("trials")
		search := model.NewKernelSearch(map[string]model.ClassifierCreator{
			"baseline": func() model.Classifier { return model.NewBaseline() },
			"rbf":      func() model.Classifier { return model.NewRBF(nil) },
		}, d, folds)
		study, err := goptuna.CreateStudy("autogpc",
			goptuna.StudyOptionDirection(goptuna.StudyDirectionMaximize),
			goptuna.StudyOptionSampler(tpe.NewSampler()))
		if err != nil {
			log.Logger().Fatal("failed to create study", zap.Error(err))
		}
		bar := progressbar.Default(int64(trials), "tune")
		err = study.Optimize(func(trial goptuna.Trial) (float64, error) {
			defer func() { _ = bar.Add(1) }()
			return search.Objective(trial)
		}, trials)
		if err != nil {
			log.Logger().Fatal("failed to tune", zap.Error(err))
		}
		result := search.Result()
		log.Logger().Info("tune complete",
			zap.String("classifier", result.Type),
			zap.Float64("accuracy", result.Score))
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Classifier", "Accuracy", "Hyper-parameters")
		_ = table.Append([]string{
			result.Type,
			fmt.Sprintf("%.4f", result.Score),
			fmt.Sprint(result.Params),
		})
		_ = table.Render()
	},
}

func init() {
	rootCommand.AddCommand(tuneCommand)
	tuneCommand.Flags().Int("folds", 5, "number of cross-validation folds")
	tuneCommand.Flags().Int("trials", 50, "number of search trials")
}
