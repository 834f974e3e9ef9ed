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

// Package expression compiles AST expressions against a result-set
// metadata into projections: named row-to-value functions. Runtime
// problems inside a row (bad cast, wrong operand type) yield Empty, never
// an error.
package expression

import (
	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
)

// Compile turns an AST expression into a projection over the given scope.
func Compile(e parse.Expr, md sql.Metadata) (sql.Projection, error) {
	switch e := e.(type) {
	case *parse.Literal:
		return newLiteral(e)
	case *parse.ColumnRef:
		return newColumn(e, md)
	case *parse.Unary:
		return newUnary(e, md)
	case *parse.Binary:
		return newBinary(e, md)
	case *parse.And:
		return newAnd(e, md)
	case *parse.Or:
		return newOr(e, md)
	case *parse.Not:
		return newNot(e, md)
	case *parse.IsNull:
		return newIsNull(e, md)
	case *parse.Between:
		return newBetween(e, md)
	case *parse.InList:
		return newInList(e, md)
	case *parse.InSubquery:
		return nil, sql.ErrUnsupported.New("IN with a subquery")
	case *parse.Like:
		return newLike(e, md)
	case *parse.Case:
		return newCase(e, md)
	case *parse.Cast:
		return newCast(e, md)
	case *parse.Extract:
		return newExtract(e, md)
	case *parse.FuncCall:
		return newFuncCall(e, md)
	case *parse.Subquery:
		return nil, sql.ErrUnsupported.New("scalar subqueries")
	default:
		return nil, sql.ErrUnsupported.New("expression")
	}
}

// HasAggregates reports whether any expression in the list contains an
// aggregate function call; it drives forced grouping.
func HasAggregates(exprs ...parse.Expr) bool {
	for _, e := range exprs {
		if e != nil && hasAggregate(e) {
			return true
		}
	}
	return false
}

func hasAggregate(e parse.Expr) bool {
	switch e := e.(type) {
	case *parse.FuncCall:
		if IsAggregateName(e.Name) {
			return true
		}
		for _, arg := range e.Args {
			if hasAggregate(arg) {
				return true
			}
		}
	case *parse.Unary:
		return hasAggregate(e.Expr)
	case *parse.Binary:
		return hasAggregate(e.Left) || hasAggregate(e.Right)
	case *parse.And:
		return hasAggregate(e.Left) || hasAggregate(e.Right)
	case *parse.Or:
		return hasAggregate(e.Left) || hasAggregate(e.Right)
	case *parse.Not:
		return hasAggregate(e.Expr)
	case *parse.IsNull:
		return hasAggregate(e.Expr)
	case *parse.Between:
		return hasAggregate(e.Expr) || hasAggregate(e.Low) || hasAggregate(e.High)
	case *parse.InList:
		if hasAggregate(e.Expr) {
			return true
		}
		for _, item := range e.List {
			if hasAggregate(item) {
				return true
			}
		}
	case *parse.Like:
		return hasAggregate(e.Expr) || hasAggregate(e.Pattern)
	case *parse.Case:
		if e.Operand != nil && hasAggregate(e.Operand) {
			return true
		}
		for _, w := range e.Whens {
			if hasAggregate(w.Cond) || hasAggregate(w.Result) {
				return true
			}
		}
		if e.Else != nil {
			return hasAggregate(e.Else)
		}
	case *parse.Cast:
		return hasAggregate(e.Expr)
	case *parse.Extract:
		return hasAggregate(e.Expr)
	}
	return false
}
