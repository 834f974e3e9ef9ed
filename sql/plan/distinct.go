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

import "github.com/csvsql/go-csvsql/sql"

// distinct drops duplicate projected rows, keeping first occurrences in
// order.
func distinct(rs *sql.ResultSet) *sql.ResultSet {
	seen := map[uint64]bool{}
	var data []sql.DataRow
	for _, row := range rs.Data {
		key := sql.HashValues(row)
		if seen[key] {
			continue
		}
		seen[key] = true
		data = append(data, row)
	}
	return &sql.ResultSet{Metadata: rs.Metadata, Data: data}
}
