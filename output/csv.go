// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	csvsql "github.com/csvsql/go-csvsql"
	"github.com/csvsql/go-csvsql/sql"
)

// writeResultCSV writes one result set, headers first, using the columns'
// full display titles.
func writeResultCSV(w *csv.Writer, rs *sql.ResultSet) error {
	var header []string
	for _, col := range rs.Columns() {
		header = append(header, sql.ColumnTitle(rs.Metadata, col))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rs.Data {
		var record []string
		for _, col := range rs.Columns() {
			record = append(record, row.Get(col).String())
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// StdoutOutputer prints results as CSV on standard output.
type StdoutOutputer struct {
	W io.Writer
}

func NewStdoutOutputer() *StdoutOutputer { return &StdoutOutputer{W: os.Stdout} }

func (o *StdoutOutputer) Write(execution *csvsql.CommandExecution) (string, error) {
	return "", writeResultCSV(csv.NewWriter(o.W), execution.Results)
}

// csvOutputer writes one numbered CSV file per statement plus an all.csv
// index mapping files back to their SQL.
type csvOutputer struct {
	index int
	root  string
	all   string
}

func newCsvOutputer(dir string) (*csvOutputer, error) {
	all, err := createRootFile(dir, "all.csv")
	if err != nil {
		return nil, err
	}
	f, err := os.Create(all)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "file", "sql"}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return &csvOutputer{root: dir, all: all}, nil
}

func (o *csvOutputer) Write(execution *csvsql.CommandExecution) (string, error) {
	o.index++
	fileName := strconv.Itoa(o.index) + ".csv"
	path := filepath.Join(o.root, fileName)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := writeResultCSV(csv.NewWriter(f), execution.Results); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	all, err := os.OpenFile(o.all, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	defer all.Close()
	w := csv.NewWriter(all)
	if err := w.Write([]string{strconv.Itoa(o.index), fileName, execution.SQL}); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return fmt.Sprintf("File %s created", path), nil
}
