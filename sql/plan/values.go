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
	"strconv"

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/expression"
	"github.com/csvsql/go-csvsql/sql/parse"
)

// extractValues evaluates a VALUES list against an empty scope; columns
// are named by position.
func extractValues(rows [][]parse.Expr) (*sql.ResultSet, error) {
	empty := sql.NewSimpleMetadata(nil)
	emptyRow := sql.NewGroupRow(sql.DataRow{})

	width := 0
	var data []sql.DataRow
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
		line := make(sql.DataRow, 0, len(row))
		for _, e := range row {
			compiled, err := expression.Compile(e, empty)
			if err != nil {
				return nil, err
			}
			line = append(line, compiled.Get(emptyRow))
		}
		data = append(data, line)
	}

	metadata := sql.NewSimpleMetadata(nil)
	for i := 0; i < width; i++ {
		metadata.AddColumn(strconv.Itoa(i))
	}
	return &sql.ResultSet{Metadata: metadata, Data: data}, nil
}
