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
	"os"
	"path/filepath"
	"strings"

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
)

// ShowTables lists the tables under home, recursing into schema
// directories iff full. Only files with a .csv extension and a valid
// identifier stem qualify.
func ShowTables(ctx *sql.Context, rt *sql.Runtime, full bool) (*sql.ResultSet, error) {
	metadata := sql.NewSimpleMetadata(nil)
	for _, col := range []string{"table", "file_size", "created_at", "modified_at", "path"} {
		metadata.AddColumn(col)
	}
	var rows []sql.DataRow
	if err := showDir(rt.Home, &rows, full, ""); err != nil {
		return nil, err
	}
	return &sql.ResultSet{Metadata: metadata, Data: rows}, nil
}

func tableStem(path string) (string, bool) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return "", false
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if !parse.IsValidIdentifier(stem) {
		return "", false
	}
	return stem, true
}

func fileTime(info os.FileInfo) sql.Value {
	return sql.NewTimestamp(info.ModTime().UTC())
}

func showDir(dir string, rows *[]sql.DataRow, full bool, root string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return err
		}
		if entry.IsDir() && full {
			if err := showDir(path, rows, full, root+entry.Name()+"."); err != nil {
				return err
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		stem, ok := tableStem(path)
		if !ok {
			continue
		}
		absolute, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		*rows = append(*rows, sql.DataRow{
			sql.NewString(root + stem),
			sql.NewNumberFromInt(info.Size()),
			fileTime(info),
			fileTime(info),
			sql.NewString(absolute),
		})
	}
	return nil
}

// ShowDatabases lists every directory that holds at least one qualifying
// table, with the count of tables directly inside it.
func ShowDatabases(ctx *sql.Context, rt *sql.Runtime) (*sql.ResultSet, error) {
	metadata := sql.NewSimpleMetadata(nil)
	for _, col := range []string{"database", "number_of_tables", "created_at", "path"} {
		metadata.AddColumn(col)
	}
	var rows []sql.DataRow
	if _, err := showDBDir(rt.Home, &rows, ""); err != nil {
		return nil, err
	}
	return &sql.ResultSet{Metadata: metadata, Data: rows}, nil
}

func showDBDir(dir string, rows *[]sql.DataRow, root string) (int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	var count int64
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			name := entry.Name()
			if root != "" {
				name = root + "." + entry.Name()
			}
			tables, err := showDBDir(path, rows, name)
			if err != nil {
				return 0, err
			}
			if tables == 0 {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				return 0, err
			}
			absolute, err := filepath.Abs(path)
			if err != nil {
				return 0, err
			}
			*rows = append(*rows, sql.DataRow{
				sql.NewString(name),
				sql.NewNumberFromInt(tables),
				fileTime(info),
				sql.NewString(absolute),
			})
			continue
		}
		if _, ok := tableStem(path); ok {
			count++
		}
	}
	return count, nil
}
