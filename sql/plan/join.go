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

type joinerType struct {
	leftOuter  bool
	rightOuter bool
}

type joinerConstraint struct {
	on    sql.Projection
	using [][2]sql.Column
	all   bool
}

type joiner struct {
	kind       joinerType
	constraint joinerConstraint
}

// createJoin extracts every FROM operand and folds the list into a
// cartesian product, applying each JOIN as it attaches.
func createJoin(ctx *sql.Context, rt *sql.Runtime, from []parse.TableWithJoins) (*sql.ResultSet, error) {
	var result *sql.ResultSet
	for i := range from {
		rs, err := extractTableFactor(ctx, rt, from[i].Relation)
		if err != nil {
			return nil, err
		}
		for j := range from[i].Joins {
			rs, err = applyJoin(ctx, rt, rs, &from[i].Joins[j])
			if err != nil {
				return nil, err
			}
		}
		if result == nil {
			result = rs
		} else {
			result = product(result, rs, joiner{constraint: joinerConstraint{all: true}})
		}
	}
	if result == nil {
		return nil, sql.ErrUnsupported.New("SELECT without FROM")
	}
	return result, nil
}

func applyJoin(ctx *sql.Context, rt *sql.Runtime, left *sql.ResultSet, join *parse.Join) (*sql.ResultSet, error) {
	if join.Constraint.Natural {
		return nil, sql.ErrUnsupported.New("natural join")
	}
	right, err := extractTableFactor(ctx, rt, join.Relation)
	if err != nil {
		return nil, err
	}

	var kind joinerType
	switch join.Kind {
	case parse.JoinInner, parse.JoinCross:
	case parse.JoinLeft:
		kind.leftOuter = true
	case parse.JoinRight:
		kind.rightOuter = true
	case parse.JoinFull:
		kind.leftOuter = true
		kind.rightOuter = true
	}

	constraint := joinerConstraint{all: true}
	switch {
	case join.Constraint.On != nil:
		metadata := sql.NewProductMetadata(left.Metadata, right.Metadata)
		on, err := expression.Compile(join.Constraint.On, metadata)
		if err != nil {
			return nil, err
		}
		constraint = joinerConstraint{on: on}
	case len(join.Constraint.Using) > 0:
		var pairs [][2]sql.Column
		for _, colName := range join.Constraint.Using {
			name := sql.NewName(colName)
			leftCol, err := left.Metadata.ColumnIndex(name)
			if err != nil {
				return nil, err
			}
			rightCol, err := right.Metadata.ColumnIndex(name)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, [2]sql.Column{leftCol, rightCol})
		}
		constraint = joinerConstraint{using: pairs}
	}

	return product(left, right, joiner{kind: kind, constraint: constraint}), nil
}

// product materializes the joined rows. Unmatched left rows emit with all
// right columns Empty iff left-outer; symmetrically for right-outer.
func product(left, right *sql.ResultSet, j joiner) *sql.ResultSet {
	metadata := sql.NewProductMetadata(left.Metadata, right.Metadata)
	leftWidth := left.Metadata.NumColumns()
	rightWidth := right.Metadata.NumColumns()

	missingRight := map[int]bool{}
	if j.kind.rightOuter {
		for i := range right.Data {
			missingRight[i] = true
		}
	}

	var data []sql.DataRow
	for _, l := range left.Data {
		matched := false
		for rIndex, r := range right.Data {
			row := make(sql.DataRow, 0, leftWidth+rightWidth)
			for c := 0; c < leftWidth; c++ {
				row = append(row, l.Get(sql.Column(c)))
			}
			for c := 0; c < rightWidth; c++ {
				row = append(row, r.Get(sql.Column(c)))
			}

			use := false
			switch {
			case j.constraint.all:
				use = true
			case j.constraint.on != nil:
				v := j.constraint.on.Get(sql.NewGroupRow(row))
				b, ok := v.Bool()
				use = ok && b
			default:
				use = true
				for _, pair := range j.constraint.using {
					if !l.Get(pair[0]).Equal(r.Get(pair[1])) {
						use = false
						break
					}
				}
			}
			if use {
				data = append(data, row)
				delete(missingRight, rIndex)
				matched = true
			}
		}
		if !matched && j.kind.leftOuter {
			row := make(sql.DataRow, 0, leftWidth+rightWidth)
			for c := 0; c < leftWidth; c++ {
				row = append(row, l.Get(sql.Column(c)))
			}
			for c := 0; c < rightWidth; c++ {
				row = append(row, sql.Empty)
			}
			data = append(data, row)
		}
	}
	if j.kind.rightOuter {
		for rIndex, r := range right.Data {
			if !missingRight[rIndex] {
				continue
			}
			row := make(sql.DataRow, 0, leftWidth+rightWidth)
			for c := 0; c < leftWidth; c++ {
				row = append(row, sql.Empty)
			}
			for c := 0; c < rightWidth; c++ {
				row = append(row, r.Get(sql.Column(c)))
			}
			data = append(data, row)
		}
	}

	return &sql.ResultSet{Metadata: metadata, Data: data}
}
