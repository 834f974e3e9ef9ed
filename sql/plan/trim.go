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
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/expression"
	"github.com/csvsql/go-csvsql/sql/parse"
)

// trim applies OFFSET then LIMIT. Both compile against an empty scope, so
// only column-free expressions can succeed; each must yield a
// non-negative number.
func trim(rt *sql.Runtime, limit, offset parse.Expr, rs *sql.ResultSet) error {
	if offset != nil {
		n, err := evalTrimExpr(offset, sql.ErrNoNumericOffset)
		if err != nil {
			return err
		}
		if n >= len(rs.Data) {
			rs.Data = nil
		} else {
			rs.Data = rs.Data[n:]
		}
	}
	if limit != nil {
		n, err := evalTrimExpr(limit, sql.ErrNoNumericLimit)
		if err != nil {
			return err
		}
		if n < len(rs.Data) {
			rs.Data = rs.Data[:n]
		}
	}
	return nil
}

func evalTrimExpr(e parse.Expr, kindErr *errors.Kind) (int, error) {
	compiled, err := expression.Compile(e, sql.NewSimpleMetadata(nil))
	if err != nil {
		return 0, err
	}
	value := compiled.Get(sql.NewGroupRow(sql.DataRow{}))
	n, ok := value.Number()
	if !ok {
		return 0, kindErr.New()
	}
	if n.Sign() < 0 || !n.Equal(n.Truncate(0)) {
		return 0, kindErr.New()
	}
	return int(n.IntPart()), nil
}
