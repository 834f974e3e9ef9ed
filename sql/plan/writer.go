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

package plan

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/csvsql/go-csvsql/sql"
)

// WriteCSV renders a result set as CSV. With headers enabled the first
// record carries the columns' short names.
func WriteCSV(w *csv.Writer, rs *sql.ResultSet, headers bool) error {
	if headers {
		record := make([]string, 0, rs.Metadata.NumColumns())
		for _, col := range rs.Columns() {
			name, _ := rs.Metadata.ColumnName(col)
			record = append(record, name.ShortName())
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	for _, row := range rs.Data {
		record := make([]string, 0, rs.Metadata.NumColumns())
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

// writeTableFile rewrites a whole table file atomically.
func writeTableFile(path string, rs *sql.ResultSet, headers bool) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := WriteCSV(w, rs, headers); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(path, buf.Bytes(), 0o644)
}

// appendTableFile appends data rows to an existing table file.
func appendTableFile(path string, rs *sql.ResultSet) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := WriteCSV(w, rs, false); err != nil {
		return err
	}
	return f.Sync()
}
