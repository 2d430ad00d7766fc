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
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/autogpc/autogpc/base/log"
	"github.com/autogpc/autogpc/dataset"
)

var rootCommand = &cobra.Command{
	Use:   "autogpc",
	Short: "Dataset inspection and kernel search for binary classification.",
}

func init() {
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().String("csv-sep", ",", "load CSV file with separator")
	rootCommand.PersistentFlags().Bool("csv-header", false, "load CSV file with header")
}

func setupLogger(cmd *cobra.Command) {
	debug, _ := cmd.Flags().GetBool("debug")
	log.SetLogger(cmd.Root().PersistentFlags(), debug)
}

func loadDataset(cmd *cobra.Command, path string) *dataset.Dataset {
	sep, _ := cmd.Flags().GetString("csv-sep")
	header, _ := cmd.Flags().GetBool("csv-header")
	d, err := dataset.LoadFromCSV(path, sep, header)
	if err != nil {
		log.Logger().Fatal("failed to load dataset", zap.Error(err))
	}
	return d
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
