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

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
)

func dropTable(ctx *sql.Context, rt *sql.Runtime, drop *parse.DropTable) (*sql.ResultSet, error) {
	switch {
	case drop.Cascade:
		return nil, sql.ErrUnsupported.New("DROP CASCADE")
	case drop.Restrict:
		return nil, sql.ErrUnsupported.New("DROP RESTRICT")
	case drop.Purge:
		return nil, sql.ErrUnsupported.New("DROP PURGE")
	case len(drop.Names) == 0:
		return nil, sql.ErrUnsupported.New("DROP without tables")
	}

	var handles []sql.FileHandle
	for _, parts := range drop.Names {
		handle, err := rt.Resolve(sql.NewName(parts...))
		if err != nil {
			return nil, err
		}
		if handle.ReadOnly {
			return nil, sql.ErrReadOnlyMode.New()
		}
		if handle.Exists {
			handles = append(handles, handle)
		} else if !drop.IfExists {
			return nil, sql.ErrTableNotExists.New(handle.ResultName.FullName())
		}
	}

	metadata := sql.NewSimpleMetadata(nil)
	metadata.AddColumn("action")
	metadata.AddColumn("table")
	metadata.AddColumn("file")

	var data []sql.DataRow
	for _, handle := range handles {
		if handle.IsTemp {
			if err := rt.Session.DropTemporaryTable(handle.ResultName); err != nil {
				return nil, err
			}
		} else {
			if drop.Temporary {
				return nil, sql.ErrTableNotTemporary.New(handle.ResultName.FullName())
			}
			if err := os.Remove(handle.Path); err != nil {
				return nil, err
			}
		}
		ctx.Logger().WithField("table", handle.ResultName.FullName()).Info("drop table")
		data = append(data, sql.DataRow{
			sql.NewString("DROPPED"),
			sql.NewString(handle.ResultName.FullName()),
			sql.NewString(rt.FileName(handle)),
		})
	}
	return &sql.ResultSet{Metadata: metadata, Data: data}, nil
}
