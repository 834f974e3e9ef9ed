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

package sql

import "github.com/mitchellh/hashstructure"

// HashValues hashes a value tuple for group-by buckets and DISTINCT
// reductions. Values hash by their canonical rendering, so tuples that
// compare equal hash equal.
func HashValues(values []Value) uint64 {
	keys := make([]string, len(values))
	for i, v := range values {
		keys[i] = v.Canonical()
	}
	hash, err := hashstructure.Hash(keys, nil)
	if err != nil {
		// hashstructure cannot fail on a []string; keep the zero bucket
		// as a last resort.
		return 0
	}
	return hash
}
