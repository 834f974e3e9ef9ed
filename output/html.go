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
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	csvsql "github.com/csvsql/go-csvsql"
	"github.com/csvsql/go-csvsql/sql"
)

// htmlOutputer writes one HTML table per statement and keeps an
// index.html linking every statement to its result page.
type htmlOutputer struct {
	root string
	sqls []string
}

func newHTMLOutputer(dir string) (*htmlOutputer, error) {
	index, err := createRootFile(dir, "index.html")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(index, []byte("<html>\n</html>\n"), 0o644); err != nil {
		return nil, err
	}
	return &htmlOutputer{root: dir}, nil
}

func (o *htmlOutputer) Write(execution *csvsql.CommandExecution) (string, error) {
	fileName := strconv.Itoa(len(o.sqls)+1) + ".html"
	path := filepath.Join(o.root, fileName)

	rs := execution.Results
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang='en'>\n<head></head>\n<body>\n")
	sb.WriteString("<table style=\"width:100%\">\n<tr>\n")
	for _, col := range rs.Columns() {
		sb.WriteString("<th>" + html.EscapeString(sql.ColumnTitle(rs.Metadata, col)) + "</th>\n")
	}
	sb.WriteString("</tr>\n")
	for _, row := range rs.Data {
		sb.WriteString("<tr>\n")
		for _, col := range rs.Columns() {
			sb.WriteString("<td>" + html.EscapeString(row.Get(col).String()) + "</td>\n")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>\n</body>\n</html>\n")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", err
	}

	o.sqls = append(o.sqls, execution.SQL)
	if err := o.updateIndex(); err != nil {
		return "", err
	}
	return fmt.Sprintf("File %s created", path), nil
}

func (o *htmlOutputer) updateIndex() error {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang='en'>\n<head></head>\n<body>\n")
	sb.WriteString("<table style=\"width:100%\">\n<tr>\n")
	sb.WriteString("<th>index</th>\n<th>sql</th>\n<th>results</th>\n</tr>\n")
	for i, stmt := range o.sqls {
		n := strconv.Itoa(i + 1)
		sb.WriteString("<tr>\n<td>" + n + "</td>\n")
		sb.WriteString("<td><code><pre>" + html.EscapeString(stmt) + "</pre></code></td>\n")
		sb.WriteString("<td><a href=" + n + ".html>" + n + ".html</a></td>\n</tr>\n")
	}
	sb.WriteString("</table>\n</body>\n</html>\n")
	return os.WriteFile(filepath.Join(o.root, "index.html"), []byte(sb.String()), 0o644)
}
