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

// Package plan implements the pipeline stages of statement execution:
// scan, join, filter, group-by, projection, order-by and trim, plus the
// DDL/DML statements, SHOW and the transaction verbs. Stages are plain
// functions over materialized result sets.
package plan

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/csvsql/go-csvsql/sql"
)

// defaultHeader builds the synthetic column names used when headers are
// absent or a record is wider than the header: A$, B$, ..., Z$, AA$, ...
func defaultHeader(index int) string {
	title := "$"
	const size = 26
	for {
		c := index % size
		index -= c
		title = string(rune('A'+c)) + title
		if index == 0 {
			break
		}
		index = index/size - 1
	}
	return title
}

// ReadTable scans a resolved table into a result set. Records may have
// flexible widths: a record wider than the current column count extends
// the metadata with synthetic names, and prior rows read as Empty there.
func ReadTable(ctx *sql.Context, rt *sql.Runtime, name sql.Name) (*sql.ResultSet, error) {
	span := ctx.Span("plan.ReadTable")
	defer span.Finish()

	handle, err := rt.Resolve(name)
	if err != nil {
		return nil, err
	}
	if !handle.Exists {
		return nil, sql.ErrTableNotExists.New(handle.ResultName.FullName())
	}
	f, err := os.Open(handle.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanCSV(f, handle.ResultName, rt.FirstLineAsName)
}

func scanCSV(r io.Reader, resultName sql.Name, firstLineAsName bool) (*sql.ResultSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	metadata := sql.NewSimpleMetadata(&resultName)

	if firstLineAsName {
		header, err := reader.Read()
		if err != nil && err != io.EOF {
			return nil, err
		}
		for _, h := range header {
			metadata.AddColumn(h)
		}
	}

	var data []sql.DataRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		values := make(sql.DataRow, 0, len(record))
		for i, cell := range record {
			values = append(values, sql.InferValue(cell))
			if i >= metadata.NumColumns() {
				metadata.AddColumn(defaultHeader(i))
			}
		}
		data = append(data, values)
	}
	return &sql.ResultSet{Metadata: metadata, Data: data}, nil
}

// aliasResults renames a result set: columns keep their short names,
// re-qualified under the alias.
func aliasResults(alias string, rs *sql.ResultSet) *sql.ResultSet {
	name := sql.NewName(alias)
	metadata := sql.NewSimpleMetadata(&name)
	for _, col := range rs.Columns() {
		if colName, ok := rs.Metadata.ColumnName(col); ok {
			metadata.AddColumn(colName.ShortName())
		} else {
			metadata.AddColumn("")
		}
	}
	return &sql.ResultSet{Metadata: metadata, Data: rs.Data}
}
