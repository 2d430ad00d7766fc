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

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/autogpc/autogpc/base/log"
)

var describeCommand = &cobra.Command{
	Use:   "describe DATA_FILE",
	Short: "Describe a dataset and its hyper-parameter search bounds.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd)
		d := loadDataset(cmd, args[0])
		fmt.Println(d)
		desc := d.Describe()
		bounds, err := d.LengthscaleBounds()
		if err != nil {
			log.Logger().Fatal("failed to derive bounds", zap.Error(err))
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Dimension", "Mean", "Std Dev", "Min", "Max", "Lengthscale Bounds")
		for j, label := range d.InputLabels() {
			_ = table.Append([]string{
				label,
				fmt.Sprintf("%g", desc.Mean[j]),
				fmt.Sprintf("%g", desc.StdDev[j]),
				fmt.Sprintf("%g", desc.Min[j]),
				fmt.Sprintf("%g", desc.Max[j]),
				fmt.Sprintf("[%g, %g]", bounds[0][j], bounds[1][j]),
			})
		}
		_ = table.Render()
		fmt.Printf("output mean: %g, output std dev: %g\n", desc.OutputMean, desc.OutputStdDev)
	},
}

func init() {
	rootCommand.AddCommand(describeCommand)
}
