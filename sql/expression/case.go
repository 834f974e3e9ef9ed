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
	"strings"

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
)

type caseWhen struct {
	cond   sql.Projection
	result sql.Projection
}

// caseExpr covers the searched form (operand nil: the first WHEN whose
// condition is TRUE wins) and the simple form (the first WHEN equal to the
// operand wins).
type caseExpr struct {
	operand sql.Projection
	whens   []caseWhen
	els     sql.Projection
	name    string
}

func newCase(c *parse.Case, md sql.Metadata) (sql.Projection, error) {
	out := &caseExpr{}
	var sb strings.Builder
	sb.WriteString("CASE")
	if c.Operand != nil {
		operand, err := Compile(c.Operand, md)
		if err != nil {
			return nil, err
		}
		out.operand = operand
		sb.WriteString(" " + operand.Name())
	}
	for _, w := range c.Whens {
		cond, err := Compile(w.Cond, md)
		if err != nil {
			return nil, err
		}
		result, err := Compile(w.Result, md)
		if err != nil {
			return nil, err
		}
		out.whens = append(out.whens, caseWhen{cond: cond, result: result})
		sb.WriteString(" WHEN " + cond.Name() + " THEN " + result.Name())
	}
	if c.Else != nil {
		els, err := Compile(c.Else, md)
		if err != nil {
			return nil, err
		}
		out.els = els
		sb.WriteString(" ELSE " + els.Name())
	}
	sb.WriteString(" END")
	out.name = sb.String()
	return out, nil
}

func (c *caseExpr) Name() string { return c.name }

func (c *caseExpr) Get(row *sql.GroupRow) sql.Value {
	if c.operand != nil {
		operand := c.operand.Get(row)
		for _, w := range c.whens {
			if operand.Equal(w.cond.Get(row)) {
				return w.result.Get(row)
			}
		}
	} else {
		for _, w := range c.whens {
			if b, ok := w.cond.Get(row).Bool(); ok && b {
				return w.result.Get(row)
			}
		}
	}
	if c.els != nil {
		return c.els.Get(row)
	}
	return sql.Empty
}
