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
	"regexp"
	"strings"

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
)

type like struct {
	expr    sql.Projection
	pattern sql.Projection
	negated bool
	name    string

	cachePattern string
	cacheRegex   *regexp.Regexp
}

func newLike(l *parse.Like, md sql.Metadata) (sql.Projection, error) {
	expr, err := Compile(l.Expr, md)
	if err != nil {
		return nil, err
	}
	pattern, err := Compile(l.Pattern, md)
	if err != nil {
		return nil, err
	}
	word := " LIKE "
	if l.Negated {
		word = " NOT LIKE "
	}
	return &like{
		expr:    expr,
		pattern: pattern,
		negated: l.Negated,
		name:    expr.Name() + word + pattern.Name(),
	}, nil
}

func (l *like) Name() string { return l.name }

func (l *like) Get(row *sql.GroupRow) sql.Value {
	s, ok := l.expr.Get(row).Str()
	if !ok {
		return sql.Empty
	}
	p, ok := l.pattern.Get(row).Str()
	if !ok {
		return sql.Empty
	}
	if l.cacheRegex == nil || l.cachePattern != p {
		re, err := regexp.Compile(patternToGoRegex(p))
		if err != nil {
			return sql.Empty
		}
		l.cachePattern = p
		l.cacheRegex = re
	}
	matched := l.cacheRegex.MatchString(s)
	if l.negated {
		matched = !matched
	}
	return sql.NewBool(matched)
}

// patternToGoRegex translates an SQL LIKE glob (% and _, with backslash
// escapes) into an anchored Go regular expression.
func patternToGoRegex(pattern string) string {
	var sb strings.Builder
	sb.WriteString("(?s)^")
	escaped := false
	for _, ch := range pattern {
		if escaped {
			switch ch {
			case '%', '_':
				sb.WriteRune(ch)
			default:
				sb.WriteString(regexp.QuoteMeta(string(ch)))
			}
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '%':
			sb.WriteString(".*")
		case '_':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	if escaped {
		sb.WriteString(regexp.QuoteMeta(`\`))
	}
	sb.WriteString("$")
	return sb.String()
}
