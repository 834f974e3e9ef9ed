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
	"os/user"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/csvsql/go-csvsql/sql"
)

func init() {
	registerScalar(&Scalar{
		FuncName: "CURRENT_DATE", MinArgs: 0, MaxArgs: 0,
		Call: func([]sql.Value) sql.Value {
			return sql.NewDate(time.Now().UTC())
		},
	})

	registerScalar(&Scalar{
		FuncName: "NOW", MinArgs: 0, MaxArgs: 0,
		Call: func([]sql.Value) sql.Value {
			return sql.NewTimestamp(time.Now().UTC())
		},
	}, "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURTIME", "LOCALTIME", "LOCALTIMESTAMP")

	registerScalar(&Scalar{
		FuncName: "CURRENT_USER", MinArgs: 0, MaxArgs: 0,
		Call: func([]sql.Value) sql.Value {
			u, err := user.Current()
			if err != nil {
				return sql.Empty
			}
			return sql.NewString(u.Username)
		},
	}, "USER")

	registerScalar(&Scalar{
		FuncName: "FORMAT", MinArgs: 2, MaxArgs: 2,
		Call: func(args []sql.Value) sql.Value {
			t, ok := args[0].Time()
			if !ok {
				return sql.Empty
			}
			pattern, ok := stringArg(args, 1)
			if !ok {
				return sql.Empty
			}
			formatted, err := strftime.Format(pattern, t,
				strftime.WithUnixSeconds('s'), strftime.WithMilliseconds('L'))
			if err != nil {
				return sql.Empty
			}
			return sql.NewString(formatted)
		},
	}, "DATE_FORMAT", "TIME_FORMAT", "TO_CHAR")

	registerScalar(&Scalar{
		FuncName: "TO_TIMESTAMP", MinArgs: 1, MaxArgs: 1,
		Call: func(args []sql.Value) sql.Value {
			n, ok := args[0].Number()
			if !ok {
				return sql.Empty
			}
			return sql.NewTimestamp(time.Unix(n.IntPart(), 0).UTC())
		},
	}, "FROM_UNIXTIME")
}
