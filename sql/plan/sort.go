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
	"sort"

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/expression"
	"github.com/csvsql/go-csvsql/sql/parse"
)

type orderByItem struct {
	by         sql.Projection
	asc        bool
	nullsFirst bool
}

// compare orders two rows by this item; Empty placement obeys the
// per-item nulls flag regardless of direction.
func (item *orderByItem) compare(left, right sql.DataRow) int {
	l := item.by.Get(sql.NewGroupRow(left))
	r := item.by.Get(sql.NewGroupRow(right))
	switch {
	case l.IsEmpty() && r.IsEmpty():
		return 0
	case l.IsEmpty():
		if item.nullsFirst {
			return -1
		}
		return 1
	case r.IsEmpty():
		if item.nullsFirst {
			return 1
		}
		return -1
	}
	cmp := l.Compare(r)
	if !item.asc {
		cmp = -cmp
	}
	return cmp
}

// orderBy sorts in place. Items compile against the post-projection
// metadata, so output aliases are referencable.
func orderBy(rt *sql.Runtime, items []parse.OrderItem, rs *sql.ResultSet) error {
	if len(items) == 0 {
		return nil
	}
	compiled := make([]*orderByItem, 0, len(items))
	for _, item := range items {
		by, err := expression.Compile(item.Expr, rs.Metadata)
		if err != nil {
			return err
		}
		compiled = append(compiled, &orderByItem{
			by:         by,
			asc:        item.Asc,
			nullsFirst: item.NullsFirst,
		})
	}
	sort.SliceStable(rs.Data, func(i, j int) bool {
		for _, item := range compiled {
			if cmp := item.compare(rs.Data[i], rs.Data[j]); cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
	return nil
}
