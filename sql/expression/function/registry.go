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

// Package function is the scalar and aggregate function catalog. Every
// callable declares its name and arity; wrong-typed inputs yield Empty
// rather than an error.
package function

import (
	"sort"
	"strings"

	"github.com/csvsql/go-csvsql/sql"
)

// Scalar is a row-scoped callable. MaxArgs of -1 means unbounded.
type Scalar struct {
	FuncName string
	MinArgs  int
	MaxArgs  int
	Call     func(args []sql.Value) sql.Value
}

func (s *Scalar) Name() string { return s.FuncName }

// Aggregate consumes the bag of values of one group; the caller applies
// the DISTINCT reduction beforehand when requested.
type Aggregate struct {
	FuncName     string
	SupportsStar bool
	Compute      func(values []sql.Value) sql.Value
}

func (a *Aggregate) Name() string { return a.FuncName }

var scalars = map[string]*Scalar{}
var aggregates = map[string]*Aggregate{}

func registerScalar(fn *Scalar, aliases ...string) {
	scalars[fn.FuncName] = fn
	for _, alias := range aliases {
		scalars[alias] = fn
	}
}

func registerAggregate(fn *Aggregate) {
	aggregates[fn.FuncName] = fn
}

// LookupScalar finds a scalar function by its upper-cased name.
func LookupScalar(name string) (*Scalar, bool) {
	fn, ok := scalars[strings.ToUpper(name)]
	return fn, ok
}

// LookupAggregate finds an aggregate function by its upper-cased name.
func LookupAggregate(name string) (*Aggregate, bool) {
	fn, ok := aggregates[strings.ToUpper(name)]
	return fn, ok
}

// Names lists every registered callable name, sorted; error messages use
// it for suggestions.
func Names() []string {
	var names []string
	for name := range scalars {
		names = append(names, name)
	}
	for name := range aggregates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func asNumberArg(args []sql.Value, i int) (v sql.Value, ok bool) {
	if i >= len(args) {
		return sql.Empty, false
	}
	if _, isNum := args[i].Number(); !isNum {
		return sql.Empty, false
	}
	return args[i], true
}

func stringArg(args []sql.Value, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	return args[i].Str()
}

// intArg extracts a non-negative integer, truncating fractions the way
// the decimal-to-unsigned conversions do.
func intArg(args []sql.Value, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, ok := args[i].Number()
	if !ok {
		return 0, false
	}
	if n.Sign() < 0 {
		return 0, false
	}
	return int(n.IntPart()), true
}
