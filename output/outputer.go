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

// Package output renders statement results: CSV/TSV/HTML/JSON/XLSX file
// renderers, a stdout renderer and an interactive terminal table viewer.
package output

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	csvsql "github.com/csvsql/go-csvsql"
	"github.com/csvsql/go-csvsql/sql"
)

// Format selects a file renderer.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTxt  Format = "txt"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatXLS  Format = "xls"
)

// Outputer consumes one statement execution and optionally returns a
// message for the console (such as the created file's path).
type Outputer interface {
	Write(execution *csvsql.CommandExecution) (string, error)
}

// NewOutputer builds the file renderer for a format and target path.
func NewOutputer(format Format, target string) (Outputer, error) {
	switch format {
	case FormatCSV:
		return newCsvOutputer(target)
	case FormatTxt:
		return newTxtOutputer(target)
	case FormatHTML:
		return newHTMLOutputer(target)
	case FormatJSON:
		return newJSONOutputer(target)
	case FormatXLS:
		return newXlsxOutputer(target)
	default:
		return nil, sql.ErrOutputCreation.New("unknown output format " + string(format))
	}
}

// ensureDir makes sure the output target is a usable directory.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return sql.ErrOutputCreation.New("file " + dir + " is a file and can not be a directory")
	case err == nil:
		return nil
	default:
		return errors.Wrap(os.MkdirAll(dir, 0o755), "creating output directory")
	}
}

// createRootFile allocates an index file inside the output directory; an
// existing file is refused rather than overwritten.
func createRootFile(dir, name string) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return "", sql.ErrOutputCreation.New("file " + path + " already exists")
	}
	return path, nil
}
