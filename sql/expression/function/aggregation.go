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

func init() {
	registerAggregate(&Aggregate{
		FuncName: "COUNT", SupportsStar: true,
		Compute: func(values []sql.Value) sql.Value {
			return sql.NewNumberFromInt(int64(len(values)))
		},
	})

	registerAggregate(&Aggregate{
		FuncName: "AVG",
		Compute: func(values []sql.Value) sql.Value {
			total := decimal.Zero
			count := int64(0)
			for _, v := range values {
				if n, ok := v.Number(); ok {
					total = total.Add(n)
					count++
				}
			}
			if count == 0 {
				return sql.Empty
			}
			return sql.NewNumber(total.Div(decimal.NewFromInt(count)))
		},
	})

	registerAggregate(&Aggregate{
		FuncName: "SUM",
		Compute: func(values []sql.Value) sql.Value {
			total := decimal.Zero
			for _, v := range values {
				if n, ok := v.Number(); ok {
					total = total.Add(n)
				}
			}
			return sql.NewNumber(total)
		},
	})

	registerAggregate(&Aggregate{
		FuncName: "MIN",
		Compute: func(values []sql.Value) sql.Value {
			min := sql.Empty
			for i, v := range values {
				if i == 0 || v.Compare(min) < 0 {
					min = v
				}
			}
			return min
		},
	})

	registerAggregate(&Aggregate{
		FuncName: "MAX",
		Compute: func(values []sql.Value) sql.Value {
			max := sql.Empty
			for i, v := range values {
				if i == 0 || v.Compare(max) > 0 {
					max = v
				}
			}
			return max
		},
	})

	registerAggregate(&Aggregate{
		FuncName: "ANY_VALUE",
		Compute: func(values []sql.Value) sql.Value {
			if len(values) == 0 {
				return sql.Empty
			}
			return values[0]
		},
	})
}
