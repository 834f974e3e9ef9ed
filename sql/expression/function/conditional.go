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

import "github.com/csvsql/go-csvsql/sql"

func init() {
	registerScalar(&Scalar{
		FuncName: "COALESCE", MinArgs: 0, MaxArgs: -1,
		Call: func(args []sql.Value) sql.Value {
			for _, a := range args {
				if !a.IsEmpty() {
					return a
				}
			}
			return sql.Empty
		},
	})

	registerScalar(&Scalar{
		FuncName: "GREATEST", MinArgs: 0, MaxArgs: -1,
		Call: func(args []sql.Value) sql.Value {
			greatest := sql.Empty
			found := false
			for _, a := range args {
				if !found || a.Compare(greatest) > 0 {
					greatest = a
					found = true
				}
			}
			return greatest
		},
	})

	registerScalar(&Scalar{
		FuncName: "LEAST", MinArgs: 0, MaxArgs: -1,
		Call: func(args []sql.Value) sql.Value {
			least := sql.Empty
			found := false
			for _, a := range args {
				if a.IsEmpty() {
					continue
				}
				if !found || a.Compare(least) < 0 {
					least = a
					found = true
				}
			}
			return least
		},
	})

	registerScalar(&Scalar{
		FuncName: "IF", MinArgs: 3, MaxArgs: 3,
		Call: func(args []sql.Value) sql.Value {
			cond, ok := args[0].Bool()
			if !ok {
				return sql.Empty
			}
			if cond {
				return args[1]
			}
			return args[2]
		},
	})

	registerScalar(&Scalar{
		FuncName: "NULLIF", MinArgs: 2, MaxArgs: 2,
		Call: func(args []sql.Value) sql.Value {
			if args[0].Equal(args[1]) {
				return sql.Empty
			}
			return args[0]
		},
	})
}
