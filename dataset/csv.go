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
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/autogpc/autogpc/base/log"
)

// LoadFromCSV loads a Dataset from a CSV file. The last column is the class
// column, every other column is an input dimension. If header is true the
// first line is read as input dimension labels instead of data.
func LoadFromCSV(path, sep string, header bool) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	var (
		inputs      [][]float64
		outputs     [][]float64
		inputLabels []string
	)
	var parseErr error
	err = readLines(bufio.NewScanner(file), sep, func(lineNumber int, fields []string) bool {
		if lineNumber == 0 && header {
			inputLabels = fields[:len(fields)-1]
			return true
		}
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			// skip blank lines
			return true
		}
		if len(fields) < 2 {
			parseErr = errors.Errorf("line %d has %d field(s), expected at least 2", lineNumber, len(fields))
			return false
		}
		row := make([]float64, len(fields)-1)
		for i, field := range fields[:len(fields)-1] {
			row[i], parseErr = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if parseErr != nil {
				parseErr = errors.Annotatef(parseErr, "line %d field %d", lineNumber, i)
				return false
			}
		}
		class, err := strconv.ParseFloat(strings.TrimSpace(fields[len(fields)-1]), 64)
		if err != nil {
			parseErr = errors.Annotatef(err, "line %d class column", lineNumber)
			return false
		}
		inputs = append(inputs, row)
		outputs = append(outputs, []float64{class})
		return true
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	if parseErr != nil {
		return nil, errors.Trace(parseErr)
	}
	d, err := NewDataset(inputs, outputs, inputLabels, nil)
	if err != nil {
		return nil, errors.Trace(err)
	}
	log.Logger().Info("load dataset from csv",
		zap.String("path", path),
		zap.Int("n_points", d.Count()),
		zap.Int("n_dimensions", d.Dimensions()))
	return d, nil
}

// readLines parse fields of each line for csv file.
func readLines(sc *bufio.Scanner, sep string, handler func(int, []string) bool) error {
	lineCount := 0               // line number of current position
	fields := make([]string, 0)  // fields for current line
	builder := strings.Builder{} // string builder for current field
	quoted := false              // whether current position in quote
	for sc.Scan() {
		// read line
		lineStr := sc.Text()
		line := []rune(lineStr)
		// start of line
		if quoted {
			builder.WriteString("\r\n")
		}
		// parse line
		for i := 0; i < len(line); i++ {
			if string(line[i]) == sep && !quoted {
				// end of field
				fields = append(fields, builder.String())
				builder.Reset()
			} else if line[i] == '"' {
				if quoted {
					if i+1 >= len(line) || line[i+1] != '"' {
						// end of quoted
						quoted = false
					} else {
						i++
						builder.WriteRune('"')
					}
				} else {
					// start of quoted
					quoted = true
				}
			} else {
				builder.WriteRune(line[i])
			}
		}
		// end of line
		if !quoted {
			fields = append(fields, builder.String())
			builder.Reset()
			if !handler(lineCount, fields) {
				return nil
			}
			fields = []string{}
		}
		// increase line count
		lineCount++
	}
	return sc.Err()
}
