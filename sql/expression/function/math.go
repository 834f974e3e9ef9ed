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

package function

import (
	"github.com/shopspring/decimal"

	"github.com/csvsql/go-csvsql/sql"
)

var pi = decimal.RequireFromString("3.1415926535897932384626433832795")

func init() {
	registerScalar(&Scalar{
		FuncName: "ABS", MinArgs: 1, MaxArgs: 1,
		Call: func(args []sql.Value) sql.Value {
			v, ok := asNumberArg(args, 0)
			if !ok {
				return sql.Empty
			}
			n, _ := v.Number()
			return sql.NewNumber(n.Abs())
		},
	})

	registerScalar(&Scalar{
		FuncName: "PI", MinArgs: 0, MaxArgs: 0,
		Call: func([]sql.Value) sql.Value {
			return sql.NewNumber(pi)
		},
	})
}
