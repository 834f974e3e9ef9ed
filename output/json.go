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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	csvsql "github.com/csvsql/go-csvsql"
	"github.com/csvsql/go-csvsql/sql"
)

// jsonOutputer writes one document per statement: {sql, results: [...]}
// with values typed as JSON nulls, booleans, numbers and strings.
type jsonOutputer struct {
	index int
	root  string
}

func newJSONOutputer(dir string) (*jsonOutputer, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	return &jsonOutputer{root: dir}, nil
}

func jsonValue(v sql.Value) interface{} {
	switch v.Kind() {
	case sql.KindEmpty:
		return nil
	case sql.KindBool:
		b, _ := v.Bool()
		return b
	case sql.KindNumber:
		var number json.Number = json.Number(v.String())
		return number
	default:
		return v.String()
	}
}

func (o *jsonOutputer) Write(execution *csvsql.CommandExecution) (string, error) {
	rs := execution.Results
	results := make([]map[string]interface{}, 0, len(rs.Data))
	for _, row := range rs.Data {
		line := map[string]interface{}{}
		for _, col := range rs.Columns() {
			name := sql.ColumnTitle(rs.Metadata, col)
			if _, taken := line[name]; taken {
				continue
			}
			line[name] = jsonValue(row.Get(col))
		}
		results = append(results, line)
	}

	o.index++
	path := filepath.Join(o.root, strconv.Itoa(o.index)+".json")
	document := map[string]interface{}{
		"sql":     execution.SQL,
		"results": results,
	}
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", sql.ErrOutputCreation.New("can not write json: " + err.Error())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("File %s created", path), nil
}
