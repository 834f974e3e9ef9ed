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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/csvsql/go-csvsql/sql"
)

func init() {
	registerScalar(&Scalar{
		FuncName: "ASCII", MinArgs: 1, MaxArgs: 1,
		Call: func(args []sql.Value) sql.Value {
			s, ok := stringArg(args, 0)
			if !ok || s == "" {
				return sql.Empty
			}
			r, _ := utf8.DecodeRuneInString(s)
			return sql.NewNumberFromInt(int64(r))
		},
	})

	registerScalar(&Scalar{
		FuncName: "CHR", MinArgs: 1, MaxArgs: 1,
		Call: func(args []sql.Value) sql.Value {
			code, ok := intArg(args, 0)
			if !ok || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
				return sql.Empty
			}
			return sql.NewString(string(rune(code)))
		},
	})

	registerScalar(&Scalar{
		FuncName: "LENGTH", MinArgs: 1, MaxArgs: 1,
		Call: func(args []sql.Value) sql.Value {
			s, ok := stringArg(args, 0)
			if !ok {
				return sql.Empty
			}
			return sql.NewNumberFromInt(int64(len(s)))
		},
	}, "CHAR_LENGTH", "CHARACTER_LENGTH")

	registerScalar(&Scalar{
		FuncName: "CONCAT", MinArgs: 0, MaxArgs: -1,
		Call: func(args []sql.Value) sql.Value {
			var sb strings.Builder
			for _, a := range args {
				sb.WriteString(a.String())
			}
			return sql.NewString(sb.String())
		},
	})

	registerScalar(&Scalar{
		FuncName: "CONCAT_WS", MinArgs: 1, MaxArgs: -1,
		Call: func(args []sql.Value) sql.Value {
			if len(args) == 0 {
				return sql.Empty
			}
			sep := args[0].String()
			var parts []string
			for _, a := range args[1:] {
				if a.IsEmpty() {
					continue
				}
				parts = append(parts, a.String())
			}
			return sql.NewString(strings.Join(parts, sep))
		},
	})

	registerScalar(&Scalar{
		FuncName: "LOWER", MinArgs: 1, MaxArgs: 1,
		Call: func(args []sql.Value) sql.Value {
			s, ok := stringArg(args, 0)
			if !ok {
				return sql.Empty
			}
			return sql.NewString(strings.ToLower(s))
		},
	}, "LCASE")

	registerScalar(&Scalar{
		FuncName: "LEFT", MinArgs: 2, MaxArgs: 2,
		Call: func(args []sql.Value) sql.Value {
			s, ok := stringArg(args, 0)
			if !ok {
				return sql.Empty
			}
			length, ok := intArg(args, 1)
			if !ok {
				return sql.Empty
			}
			if len(s) < length {
				return sql.NewString(s)
			}
			return sql.NewString(s[:length])
		},
	})

	registerScalar(&Scalar{
		FuncName: "LPAD", MinArgs: 3, MaxArgs: 3,
		Call: func(args []sql.Value) sql.Value {
			s, ok := stringArg(args, 0)
			if !ok {
				return sql.Empty
			}
			length, ok := intArg(args, 1)
			if !ok {
				return sql.Empty
			}
			pad, ok := stringArg(args, 2)
			if !ok {
				return sql.Empty
			}
			if len(s) > length {
				return sql.NewString(s[:length])
			}
			if pad == "" {
				return sql.NewString(s)
			}
			var sb strings.Builder
			for sb.Len() < length-len(s) {
				remaining := length - len(s) - sb.Len()
				if remaining < len(pad) {
					sb.WriteString(pad[:remaining])
				} else {
					sb.WriteString(pad)
				}
			}
			sb.WriteString(s)
			return sql.NewString(sb.String())
		},
	})

	registerScalar(&Scalar{
		FuncName: "LTRIM", MinArgs: 1, MaxArgs: 1,
		Call: func(args []sql.Value) sql.Value {
			s, ok := stringArg(args, 0)
			if !ok {
				return sql.Empty
			}
			return sql.NewString(strings.TrimLeftFunc(s, unicode.IsSpace))
		},
	})

	registerScalar(&Scalar{
		FuncName: "SUBSTRING", MinArgs: 2, MaxArgs: 3,
		Call: func(args []sql.Value) sql.Value {
			s, ok := stringArg(args, 0)
			if !ok {
				return sql.Empty
			}
			start, ok := intArg(args, 1)
			if !ok {
				return sql.Empty
			}
			if start == 0 {
				start = 1
			}
			if start > len(s) {
				return sql.NewString("")
			}
			rest := s[start-1:]
			if len(args) < 3 {
				return sql.NewString(rest)
			}
			length, ok := intArg(args, 2)
			if !ok {
				return sql.Empty
			}
			if length > len(rest) {
				return sql.NewString(rest)
			}
			return sql.NewString(rest[:length])
		},
	}, "MID")

	registerScalar(&Scalar{
		FuncName: "POSITION", MinArgs: 2, MaxArgs: 3,
		Call: func(args []sql.Value) sql.Value {
			sub, ok := stringArg(args, 0)
			if !ok {
				return sql.Empty
			}
			s, ok := stringArg(args, 1)
			if !ok {
				return sql.Empty
			}
			start := 0
			if len(args) > 2 {
				from, ok := intArg(args, 2)
				if !ok {
					return sql.Empty
				}
				if from == 0 {
					from = 1
				}
				if from > len(s) {
					return sql.NewNumberFromInt(0)
				}
				start = from - 1
			}
			pos := strings.Index(s[start:], sub)
			if pos < 0 {
				return sql.NewNumberFromInt(0)
			}
			return sql.NewNumberFromInt(int64(pos + 1 + start))
		},
	}, "LOCATE")
}
