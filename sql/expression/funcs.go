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
	"strconv"
	"strings"

	"github.com/csvsql/go-csvsql/internal/similartext"
	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/expression/function"
	"github.com/csvsql/go-csvsql/sql/parse"
)

// IsAggregateName reports whether an upper-cased function name belongs to
// the aggregate catalog.
func IsAggregateName(name string) bool {
	_, ok := function.LookupAggregate(name)
	return ok
}

func newFuncCall(call *parse.FuncCall, md sql.Metadata) (sql.Projection, error) {
	if agg, ok := function.LookupAggregate(call.Name); ok {
		return newAggregated(call, agg, md)
	}
	if scalar, ok := function.LookupScalar(call.Name); ok {
		return newScalarCall(call, scalar, md)
	}
	return nil, sql.ErrUnsupported.New(
		"function " + call.Name + similartext.Find(function.Names(), call.Name))
}

type scalarCall struct {
	args []sql.Projection
	fn   *function.Scalar
	name string
}

func newScalarCall(call *parse.FuncCall, fn *function.Scalar, md sql.Metadata) (sql.Projection, error) {
	if call.Distinct {
		return nil, sql.ErrUnsupported.New("function " + call.Name + " with a DISTINCT argument")
	}
	if call.Star {
		return nil, sql.ErrUnsupported.New("function " + call.Name + " with * argument")
	}
	args := make([]sql.Projection, 0, len(call.Args))
	names := make([]string, 0, len(call.Args))
	for _, arg := range call.Args {
		compiled, err := Compile(arg, md)
		if err != nil {
			return nil, err
		}
		args = append(args, compiled)
		names = append(names, compiled.Name())
	}
	if len(args) < fn.MinArgs {
		return nil, sql.ErrUnsupported.New(
			"function " + fn.Name() + " with " + strconv.Itoa(len(args)) + " arguments or less")
	}
	if fn.MaxArgs >= 0 && len(args) > fn.MaxArgs {
		return nil, sql.ErrUnsupported.New(
			"function " + fn.Name() + " with " + strconv.Itoa(len(args)) + " arguments or more")
	}
	return &scalarCall{
		args: args,
		fn:   fn,
		name: call.Name + "(" + strings.Join(names, ", ") + ")",
	}, nil
}

func (c *scalarCall) Name() string { return c.name }

func (c *scalarCall) Get(row *sql.GroupRow) sql.Value {
	args := make([]sql.Value, len(c.args))
	for i, arg := range c.args {
		args[i] = arg.Get(row)
	}
	return c.fn.Call(args)
}

// wildcard is the `*` aggregate argument; it reads TRUE on every row.
type wildcard struct{}

func (wildcard) Name() string                { return "*" }
func (wildcard) Get(*sql.GroupRow) sql.Value { return sql.True() }

// aggregated evaluates its argument over the group's row bag; aggregates
// compile only inside a grouped scope and their argument resolves against
// the parent scope.
type aggregated struct {
	argument sql.Projection
	fn       *function.Aggregate
	distinct bool
	name     string
}

func newAggregated(call *parse.FuncCall, fn *function.Aggregate, md sql.Metadata) (sql.Projection, error) {
	grouped, ok := md.(*sql.GroupedMetadata)
	if !ok {
		return nil, sql.ErrNoGroupBy.New()
	}
	var argument sql.Projection
	switch {
	case call.Star:
		if !fn.SupportsStar {
			return nil, sql.ErrUnsupported.New("function " + fn.Name() + " with * argument")
		}
		argument = wildcard{}
	case len(call.Args) == 1:
		compiled, err := Compile(call.Args[0], grouped.Parent)
		if err != nil {
			return nil, err
		}
		argument = compiled
	case len(call.Args) == 0:
		return nil, sql.ErrUnsupported.New("function " + fn.Name() + " must have an argument")
	default:
		return nil, sql.ErrUnsupported.New("function " + fn.Name() + " must have a single argument")
	}
	return &aggregated{
		argument: argument,
		fn:       fn,
		distinct: call.Distinct,
		name:     call.Name + "(" + argument.Name() + ")",
	}, nil
}

func (a *aggregated) Name() string { return a.name }

func (a *aggregated) Get(row *sql.GroupRow) sql.Value {
	values := make([]sql.Value, 0, len(row.GroupRows))
	for _, child := range row.GroupRows {
		values = append(values, a.argument.Get(child))
	}
	if a.distinct {
		values = distinctValues(values)
	}
	return a.fn.Compute(values)
}

// distinctValues keeps the first occurrence of each value, by hash of its
// canonical form.
func distinctValues(values []sql.Value) []sql.Value {
	seen := map[uint64]bool{}
	out := values[:0:0]
	for _, v := range values {
		key := sql.HashValues([]sql.Value{v})
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
