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
	"github.com/csvsql/go-csvsql/sql/expression"
	"github.com/csvsql/go-csvsql/sql/parse"
)

type namedProjection struct {
	projection sql.Projection
	// fullName is set for wildcard expansions, which keep the column's
	// qualified metadata name; explicit items register under their display
	// name or alias only.
	fullName *sql.Name
}

// project compiles the SELECT list against the current scope and
// materializes one output row per input row. Name collisions register as
// ambiguous but stay addressable by position.
func project(rt *sql.Runtime, items []parse.SelectItem, grouped *sql.GroupedResultSet) (*sql.ResultSet, error) {
	var projections []namedProjection
	for _, item := range items {
		expanded, err := expandItem(item, grouped.Metadata)
		if err != nil {
			return nil, err
		}
		projections = append(projections, expanded...)
	}

	metadata := sql.NewSimpleMetadata(nil)
	for _, p := range projections {
		if p.fullName != nil {
			metadata.AddColumnName(*p.fullName)
		} else {
			metadata.AddColumnName(sql.NewName(p.projection.Name()))
		}
	}

	data := make([]sql.DataRow, 0, len(grouped.Rows))
	for _, row := range grouped.Rows {
		out := make(sql.DataRow, 0, len(projections))
		for _, p := range projections {
			out = append(out, p.projection.Get(row))
		}
		data = append(data, out)
	}
	return &sql.ResultSet{Metadata: metadata, Data: data}, nil
}

func expandItem(item parse.SelectItem, md sql.Metadata) ([]namedProjection, error) {
	switch item := item.(type) {
	case *parse.StarItem:
		if len(item.Prefix) == 0 {
			return expandStar(md)
		}
		return expandQualifiedStar(md, sql.NewName(item.Prefix...))
	case *parse.ExprItem:
		compiled, err := expression.Compile(item.Expr, md)
		if err != nil {
			return nil, err
		}
		if item.Alias != "" {
			compiled = &aliased{projection: compiled, alias: item.Alias}
		}
		return []namedProjection{{projection: compiled}}, nil
	default:
		return nil, sql.ErrUnsupported.New("SELECT item")
	}
}

// expandStar expands `*` to every column of the scope under its current
// metadata name.
func expandStar(md sql.Metadata) ([]namedProjection, error) {
	var out []namedProjection
	for _, col := range sql.Columns(md) {
		name, ok := md.ColumnName(col)
		if !ok {
			return nil, sql.ErrUnsupported.New("SELECT * with an unnamed column")
		}
		out = append(out, namedProjection{
			projection: expression.NewColumnProjection(col, name.ShortName()),
			fullName:   &name,
		})
	}
	return out, nil
}

// expandQualifiedStar expands `t.*` to the columns whose qualifier ends
// with t (Name.HasSuffixPrefix), so `customers.*` matches db.customers.id.
func expandQualifiedStar(md sql.Metadata, prefix sql.Name) ([]namedProjection, error) {
	var out []namedProjection
	for _, col := range sql.Columns(md) {
		name, ok := md.ColumnName(col)
		if !ok {
			continue
		}
		if !name.HasSuffixPrefix(prefix) {
			continue
		}
		out = append(out, namedProjection{
			projection: expression.NewColumnProjection(col, name.ShortName()),
			fullName:   &name,
		})
	}
	if len(out) == 0 {
		return nil, sql.ErrNoSuchColumn.New(prefix.FullName() + ".*")
	}
	return out, nil
}

// aliased renames a projection; ORDER BY may reference the alias.
type aliased struct {
	projection sql.Projection
	alias      string
}

func (a *aliased) Name() string { return a.alias }

func (a *aliased) Get(row *sql.GroupRow) sql.Value { return a.projection.Get(row) }
