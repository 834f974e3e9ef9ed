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

// Package similartext suggests the closest matches to a name from a list,
// for "maybe you mean" error messages.
package similartext

import (
	"fmt"
	"reflect"
	"strings"
)

// maxDistanceRatio bounds how different a suggestion may be: names whose
// edit distance exceeds half the input length are not offered.
const maxDistanceRatio = 2

func distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Find returns a string to append to an error message, of the form
// ", maybe you mean X?" or the empty string when nothing is close enough.
func Find(names []string, src string) string {
	if src == "" || len(names) == 0 {
		return ""
	}
	minDist := -1
	var matches []string
	for _, name := range names {
		d := distance(name, src)
		switch {
		case minDist < 0 || d < minDist:
			minDist = d
			matches = []string{name}
		case d == minDist:
			matches = append(matches, name)
		}
	}
	if minDist > len(src)/maxDistanceRatio {
		return ""
	}
	return fmt.Sprintf(", maybe you mean %s?", strings.Join(matches, " or "))
}

// FindFromMap does the same over the string keys of a map.
func FindFromMap(m interface{}, src string) string {
	rv := reflect.ValueOf(m)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return ""
	}
	var names []string
	for _, key := range rv.MapKeys() {
		if key.Kind() == reflect.String {
			names = append(names, key.String())
		}
	}
	return Find(names, src)
}
