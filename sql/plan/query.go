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

// ExtractQuery runs the SELECT pipeline: scan/join, filter, group, having,
// projection, distinct, order and trim.
func ExtractQuery(ctx *sql.Context, rt *sql.Runtime, sel *parse.Select) (*sql.ResultSet, error) {
	span := ctx.Span("plan.ExtractQuery")
	defer span.Finish()

	rs, err := createJoin(ctx, rt, sel.From)
	if err != nil {
		return nil, err
	}

	rs, err = filter(rt, sel.Where, rs)
	if err != nil {
		return nil, err
	}

	var aggregateExprs []parse.Expr
	for _, item := range sel.Projection {
		if e, ok := item.(*parse.ExprItem); ok {
			aggregateExprs = append(aggregateExprs, e.Expr)
		}
	}
	aggregateExprs = append(aggregateExprs, sel.Having)

	grouped, err := groupBy(rt, sel.GroupBy, rs, expression.HasAggregates(aggregateExprs...))
	if err != nil {
		return nil, err
	}

	grouped, err = having(rt, sel.Having, grouped)
	if err != nil {
		return nil, err
	}

	projected, err := project(rt, sel.Projection, grouped)
	if err != nil {
		return nil, err
	}

	if sel.Distinct {
		projected = distinct(projected)
	}

	if err := orderBy(rt, sel.OrderBy, projected); err != nil {
		return nil, err
	}

	if err := trim(rt, sel.Limit, sel.Offset, projected); err != nil {
		return nil, err
	}
	return projected, nil
}

func extractTableFactor(ctx *sql.Context, rt *sql.Runtime, factor parse.TableFactor) (*sql.ResultSet, error) {
	switch factor := factor.(type) {
	case *parse.TableRef:
		rs, err := ReadTable(ctx, rt, sql.NewName(factor.Parts...))
		if err != nil {
			return nil, err
		}
		if factor.Alias != "" {
			rs = aliasResults(factor.Alias, rs)
		}
		return rs, nil
	case *parse.SubqueryRef:
		rs, err := ExtractQuery(ctx, rt, factor.Select)
		if err != nil {
			return nil, err
		}
		if factor.Alias != "" {
			rs = aliasResults(factor.Alias, rs)
		}
		return rs, nil
	default:
		return nil, sql.ErrUnsupported.New("FROM must be a table or a subquery")
	}
}

// filter keeps the rows for which the predicate is exactly TRUE.
func filter(rt *sql.Runtime, where parse.Expr, rs *sql.ResultSet) (*sql.ResultSet, error) {
	if where == nil {
		return rs, nil
	}
	condition, err := expression.Compile(where, rs.Metadata)
	if err != nil {
		return nil, err
	}
	var data []sql.DataRow
	for _, row := range rs.Data {
		if b, ok := condition.Get(sql.NewGroupRow(row)).Bool(); ok && b {
			data = append(data, row)
		}
	}
	return &sql.ResultSet{Metadata: rs.Metadata, Data: data}, nil
}

// having filters the grouped scope; aggregate calls are allowed here.
func having(rt *sql.Runtime, cond parse.Expr, grouped *sql.GroupedResultSet) (*sql.GroupedResultSet, error) {
	if cond == nil {
		return grouped, nil
	}
	condition, err := expression.Compile(cond, grouped.Metadata)
	if err != nil {
		return nil, err
	}
	var rows []*sql.GroupRow
	for _, row := range grouped.Rows {
		if b, ok := condition.Get(row).Bool(); ok && b {
			rows = append(rows, row)
		}
	}
	return &sql.GroupedResultSet{Metadata: grouped.Metadata, Rows: rows}, nil
}
