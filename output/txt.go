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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	csvsql "github.com/csvsql/go-csvsql"
	"github.com/csvsql/go-csvsql/sql"
)

// txtOutputer writes tab-separated files with a never-quote discipline:
// values are emitted verbatim, tabs and newlines included.
type txtOutputer struct {
	index int
	root  string
	all   string
}

func newTxtOutputer(dir string) (*txtOutputer, error) {
	all, err := createRootFile(dir, "all.txt")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(all, []byte("index\tfile\tsql\n"), 0o644); err != nil {
		return nil, err
	}
	return &txtOutputer{root: dir, all: all}, nil
}

func writeTSVLine(sb *strings.Builder, fields []string) {
	sb.WriteString(strings.Join(fields, "\t"))
	sb.WriteString("\n")
}

func (o *txtOutputer) Write(execution *csvsql.CommandExecution) (string, error) {
	o.index++
	fileName := strconv.Itoa(o.index) + ".txt"
	path := filepath.Join(o.root, fileName)

	rs := execution.Results
	var sb strings.Builder
	var header []string
	for _, col := range rs.Columns() {
		header = append(header, sql.ColumnTitle(rs.Metadata, col))
	}
	writeTSVLine(&sb, header)
	for _, row := range rs.Data {
		var record []string
		for _, col := range rs.Columns() {
			record = append(record, row.Get(col).String())
		}
		writeTSVLine(&sb, record)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", err
	}

	all, err := os.OpenFile(o.all, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	defer all.Close()
	var index strings.Builder
	writeTSVLine(&index, []string{strconv.Itoa(o.index), fileName, execution.SQL})
	if _, err := all.WriteString(index.String()); err != nil {
		return "", err
	}
	return fmt.Sprintf("File %s created", path), nil
}
