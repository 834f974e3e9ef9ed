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

package expression

import (
	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
)

// column reads a resolved position from the row; its display name is the
// column's short name.
type column struct {
	col  sql.Column
	name string
}

func newColumn(ref *parse.ColumnRef, md sql.Metadata) (sql.Projection, error) {
	name := sql.NewName(ref.Parts...)
	col, err := md.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	return &column{col: col, name: name.ShortName()}, nil
}

// NewColumnProjection exposes a positional read with an explicit display
// name; wildcard expansion uses it.
func NewColumnProjection(col sql.Column, name string) sql.Projection {
	return &column{col: col, name: name}
}

func (c *column) Name() string { return c.name }

func (c *column) Get(row *sql.GroupRow) sql.Value {
	return row.Data.Get(c.col)
}

// literal is a constant projection named by its SQL text.
type literal struct {
	value sql.Value
	name  string
}

func newLiteral(l *parse.Literal) (sql.Projection, error) {
	value := sql.Empty
	switch l.Kind {
	case parse.LiteralNumber:
		n, err := decimalFromString(l.Value)
		if err != nil {
			return nil, sql.ErrParser.New("invalid number " + l.Raw)
		}
		value = sql.NewNumber(n)
	case parse.LiteralString:
		value = sql.NewString(l.Value)
	case parse.LiteralBool:
		value = sql.NewBool(l.Value == "TRUE")
	case parse.LiteralNull:
		value = sql.Empty
	}
	return &literal{value: value, name: l.Raw}, nil
}

// NewLiteral builds a constant projection with the given display name.
func NewLiteral(value sql.Value, name string) sql.Projection {
	return &literal{value: value, name: name}
}

func (l *literal) Name() string { return l.name }

func (l *literal) Get(*sql.GroupRow) sql.Value { return l.value }
