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
	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
)

// Extract runs one parsed statement to a result set. Mutations outside an
// open transaction run in an implicit one-shot transaction.
func Extract(ctx *sql.Context, rt *sql.Runtime, stmt parse.Statement) (*sql.ResultSet, error) {
	switch stmt := stmt.(type) {
	case *parse.Select:
		return ExtractQuery(ctx, rt, stmt)
	case *parse.Insert:
		return autoCommit(rt, func() (*sql.ResultSet, error) {
			return insertInto(ctx, rt, stmt)
		})
	case *parse.Update:
		return autoCommit(rt, func() (*sql.ResultSet, error) {
			return updateTable(ctx, rt, stmt)
		})
	case *parse.Delete:
		return autoCommit(rt, func() (*sql.ResultSet, error) {
			return deleteFrom(ctx, rt, stmt)
		})
	case *parse.CreateTable:
		return autoCommit(rt, func() (*sql.ResultSet, error) {
			return createTable(ctx, rt, stmt)
		})
	case *parse.DropTable:
		return autoCommit(rt, func() (*sql.ResultSet, error) {
			return dropTable(ctx, rt, stmt)
		})
	case *parse.AlterTable:
		return autoCommit(rt, func() (*sql.ResultSet, error) {
			return alterTable(ctx, rt, stmt)
		})
	case *parse.Show:
		if stmt.Kind == parse.ShowDatabases {
			return ShowDatabases(ctx, rt)
		}
		return ShowTables(ctx, rt, stmt.Full)
	case *parse.Begin:
		if err := rt.StartTransaction(); err != nil {
			return nil, err
		}
		return actionResult("START TRANSACTION"), nil
	case *parse.Commit:
		if err := rt.CommitTransaction(); err != nil {
			return nil, err
		}
		return actionResult("COMMIT"), nil
	case *parse.Rollback:
		if err := rt.RollbackTransaction(); err != nil {
			return nil, err
		}
		return actionResult("ROLLBACK"), nil
	default:
		return nil, sql.ErrUnsupported.New(stmt.Text())
	}
}

func autoCommit(rt *sql.Runtime, fn func() (*sql.ResultSet, error)) (*sql.ResultSet, error) {
	var rs *sql.ResultSet
	err := rt.WithAutoCommit(func() error {
		var err error
		rs, err = fn()
		return err
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func actionResult(action string) *sql.ResultSet {
	return sql.BuildSimpleResults([]sql.NamedValue{
		{Name: "action", Value: sql.NewString(action)},
	})
}
