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
	"github.com/shopspring/decimal"

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
)

func decimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func newBinary(b *parse.Binary, md sql.Metadata) (sql.Projection, error) {
	left, err := Compile(b.Left, md)
	if err != nil {
		return nil, err
	}
	right, err := Compile(b.Right, md)
	if err != nil {
		return nil, err
	}
	name := left.Name() + " " + string(b.Op) + " " + right.Name()
	switch b.Op {
	case parse.OpPlus, parse.OpMinus, parse.OpMul, parse.OpDiv, parse.OpMod:
		return &arithmetic{op: b.Op, left: left, right: right, name: name}, nil
	default:
		return &comparison{op: b.Op, left: left, right: right, name: name}, nil
	}
}

// arithmetic applies + - * / % on numbers; an Empty or non-numeric operand
// yields Empty, as does division by zero.
type arithmetic struct {
	op    parse.BinaryOp
	left  sql.Projection
	right sql.Projection
	name  string
}

func (a *arithmetic) Name() string { return a.name }

func (a *arithmetic) Get(row *sql.GroupRow) sql.Value {
	l, ok := a.left.Get(row).Number()
	if !ok {
		return sql.Empty
	}
	r, ok := a.right.Get(row).Number()
	if !ok {
		return sql.Empty
	}
	switch a.op {
	case parse.OpPlus:
		return sql.NewNumber(l.Add(r))
	case parse.OpMinus:
		return sql.NewNumber(l.Sub(r))
	case parse.OpMul:
		return sql.NewNumber(l.Mul(r))
	case parse.OpDiv:
		if r.IsZero() {
			return sql.Empty
		}
		return sql.NewNumber(l.Div(r))
	case parse.OpMod:
		if r.IsZero() {
			return sql.Empty
		}
		return sql.NewNumber(l.Mod(r))
	}
	return sql.Empty
}

// comparison compares with the value total order; an Empty operand
// propagates.
type comparison struct {
	op    parse.BinaryOp
	left  sql.Projection
	right sql.Projection
	name  string
}

func (c *comparison) Name() string { return c.name }

func (c *comparison) Get(row *sql.GroupRow) sql.Value {
	l := c.left.Get(row)
	r := c.right.Get(row)
	if l.IsEmpty() || r.IsEmpty() {
		return sql.Empty
	}
	cmp := l.Compare(r)
	switch c.op {
	case parse.OpEq:
		return sql.NewBool(cmp == 0)
	case parse.OpNeq:
		return sql.NewBool(cmp != 0)
	case parse.OpLt:
		return sql.NewBool(cmp < 0)
	case parse.OpLte:
		return sql.NewBool(cmp <= 0)
	case parse.OpGt:
		return sql.NewBool(cmp > 0)
	case parse.OpGte:
		return sql.NewBool(cmp >= 0)
	}
	return sql.Empty
}

// unaryMinus negates a number.
type unaryMinus struct {
	expr sql.Projection
	name string
}

func newUnary(u *parse.Unary, md sql.Metadata) (sql.Projection, error) {
	inner, err := Compile(u.Expr, md)
	if err != nil {
		return nil, err
	}
	if !u.Minus {
		return inner, nil
	}
	return &unaryMinus{expr: inner, name: "- " + inner.Name()}, nil
}

func (u *unaryMinus) Name() string { return u.name }

func (u *unaryMinus) Get(row *sql.GroupRow) sql.Value {
	n, ok := u.expr.Get(row).Number()
	if !ok {
		return sql.Empty
	}
	return sql.NewNumber(n.Neg())
}
