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

// trivalent is the three-valued truth of a value: true, false, or unknown
// for Empty and non-boolean operands.
type trivalent int8

const (
	tvUnknown trivalent = iota
	tvTrue
	tvFalse
)

func truth(v sql.Value) trivalent {
	b, ok := v.Bool()
	if !ok {
		return tvUnknown
	}
	if b {
		return tvTrue
	}
	return tvFalse
}

func fromTrivalent(t trivalent) sql.Value {
	switch t {
	case tvTrue:
		return sql.True()
	case tvFalse:
		return sql.False()
	default:
		return sql.Empty
	}
}

type andExpr struct {
	left, right sql.Projection
	name        string
}

func newAnd(a *parse.And, md sql.Metadata) (sql.Projection, error) {
	left, err := Compile(a.Left, md)
	if err != nil {
		return nil, err
	}
	right, err := Compile(a.Right, md)
	if err != nil {
		return nil, err
	}
	return &andExpr{left: left, right: right, name: left.Name() + " AND " + right.Name()}, nil
}

func (a *andExpr) Name() string { return a.name }

func (a *andExpr) Get(row *sql.GroupRow) sql.Value {
	l := truth(a.left.Get(row))
	r := truth(a.right.Get(row))
	switch {
	case l == tvFalse || r == tvFalse:
		return sql.False()
	case l == tvTrue && r == tvTrue:
		return sql.True()
	default:
		return sql.Empty
	}
}

type orExpr struct {
	left, right sql.Projection
	name        string
}

func newOr(o *parse.Or, md sql.Metadata) (sql.Projection, error) {
	left, err := Compile(o.Left, md)
	if err != nil {
		return nil, err
	}
	right, err := Compile(o.Right, md)
	if err != nil {
		return nil, err
	}
	return &orExpr{left: left, right: right, name: left.Name() + " OR " + right.Name()}, nil
}

func (o *orExpr) Name() string { return o.name }

func (o *orExpr) Get(row *sql.GroupRow) sql.Value {
	l := truth(o.left.Get(row))
	r := truth(o.right.Get(row))
	switch {
	case l == tvTrue || r == tvTrue:
		return sql.True()
	case l == tvFalse && r == tvFalse:
		return sql.False()
	default:
		return sql.Empty
	}
}

type notExpr struct {
	expr sql.Projection
	name string
}

func newNot(n *parse.Not, md sql.Metadata) (sql.Projection, error) {
	inner, err := Compile(n.Expr, md)
	if err != nil {
		return nil, err
	}
	return &notExpr{expr: inner, name: "NOT " + inner.Name()}, nil
}

func (n *notExpr) Name() string { return n.name }

func (n *notExpr) Get(row *sql.GroupRow) sql.Value {
	switch truth(n.expr.Get(row)) {
	case tvTrue:
		return sql.False()
	case tvFalse:
		return sql.True()
	default:
		return sql.Empty
	}
}

type isNull struct {
	expr    sql.Projection
	negated bool
	name    string
}

func newIsNull(i *parse.IsNull, md sql.Metadata) (sql.Projection, error) {
	inner, err := Compile(i.Expr, md)
	if err != nil {
		return nil, err
	}
	name := inner.Name() + " IS NULL"
	if i.Negated {
		name = inner.Name() + " IS NOT NULL"
	}
	return &isNull{expr: inner, negated: i.Negated, name: name}, nil
}

func (i *isNull) Name() string { return i.name }

func (i *isNull) Get(row *sql.GroupRow) sql.Value {
	empty := i.expr.Get(row).IsEmpty()
	if i.negated {
		return sql.NewBool(!empty)
	}
	return sql.NewBool(empty)
}

type between struct {
	expr, low, high sql.Projection
	negated         bool
	name            string
}

func newBetween(b *parse.Between, md sql.Metadata) (sql.Projection, error) {
	expr, err := Compile(b.Expr, md)
	if err != nil {
		return nil, err
	}
	low, err := Compile(b.Low, md)
	if err != nil {
		return nil, err
	}
	high, err := Compile(b.High, md)
	if err != nil {
		return nil, err
	}
	name := expr.Name() + " BETWEEN " + low.Name() + " AND " + high.Name()
	if b.Negated {
		name = expr.Name() + " NOT BETWEEN " + low.Name() + " AND " + high.Name()
	}
	return &between{expr: expr, low: low, high: high, negated: b.Negated, name: name}, nil
}

func (b *between) Name() string { return b.name }

func (b *between) Get(row *sql.GroupRow) sql.Value {
	v := b.expr.Get(row)
	low := b.low.Get(row)
	high := b.high.Get(row)
	if v.IsEmpty() || low.IsEmpty() || high.IsEmpty() {
		return sql.Empty
	}
	in := v.Compare(low) >= 0 && v.Compare(high) <= 0
	if b.negated {
		in = !in
	}
	return sql.NewBool(in)
}

type inList struct {
	expr    sql.Projection
	list    []sql.Projection
	negated bool
	name    string
}

func newInList(i *parse.InList, md sql.Metadata) (sql.Projection, error) {
	expr, err := Compile(i.Expr, md)
	if err != nil {
		return nil, err
	}
	items := make([]sql.Projection, 0, len(i.List))
	names := ""
	for idx, item := range i.List {
		compiled, err := Compile(item, md)
		if err != nil {
			return nil, err
		}
		items = append(items, compiled)
		if idx > 0 {
			names += ", "
		}
		names += compiled.Name()
	}
	word := " IN ("
	if i.Negated {
		word = " NOT IN ("
	}
	return &inList{
		expr:    expr,
		list:    items,
		negated: i.Negated,
		name:    expr.Name() + word + names + ")",
	}, nil
}

func (i *inList) Name() string { return i.name }

func (i *inList) Get(row *sql.GroupRow) sql.Value {
	v := i.expr.Get(row)
	if v.IsEmpty() {
		return sql.Empty
	}
	sawEmpty := false
	for _, item := range i.list {
		other := item.Get(row)
		if other.IsEmpty() {
			sawEmpty = true
			continue
		}
		if v.Equal(other) {
			return sql.NewBool(!i.negated)
		}
	}
	if sawEmpty {
		return sql.Empty
	}
	return sql.NewBool(i.negated)
}
