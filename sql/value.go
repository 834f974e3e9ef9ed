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

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the variant stored in a Value. The declaration order is
// the total-order rank used by ORDER BY, MIN and MAX.
type Kind int8

const (
	KindEmpty Kind = iota
	KindBool
	KindNumber
	KindStr
	KindDate
	KindTimestamp
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// Value is the cell type that flows through the whole pipeline. It is an
// immutable tagged union; the zero value is Empty (SQL NULL).
type Value struct {
	kind Kind
	b    bool
	n    decimal.Decimal
	s    string
	t    time.Time
}

// Empty is the SQL NULL / absent cell value.
var Empty = Value{}

func True() Value  { return NewBool(true) }
func False() Value { return NewBool(false) }

func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

func NewNumber(n decimal.Decimal) Value { return Value{kind: KindNumber, n: n} }

func NewNumberFromInt(i int64) Value { return NewNumber(decimal.NewFromInt(i)) }

func NewString(s string) Value { return Value{kind: KindStr, s: s} }

// NewDate truncates its argument to the calendar day, dropping any zone.
func NewDate(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewTimestamp stores a naive timestamp; the wall clock fields are kept and
// the location is normalized to UTC.
func NewTimestamp(t time.Time) Value {
	return Value{kind: KindTimestamp, t: time.Date(
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) Number() (decimal.Decimal, bool) { return v.n, v.kind == KindNumber }

func (v Value) Str() (string, bool) { return v.s, v.kind == KindStr }

// Time returns the underlying instant of a Date or Timestamp value.
func (v Value) Time() (time.Time, bool) {
	return v.t, v.kind == KindDate || v.kind == KindTimestamp
}

// String renders the value in its fixed display format: dates YYYY-MM-DD,
// timestamps YYYY-MM-DD HH:MM:SS with a fraction of 0, 3, 6 or 9 digits
// (the shortest that is exact), booleans TRUE/FALSE, Empty as the
// zero-length string.
func (v Value) String() string {
	switch v.kind {
	case KindEmpty:
		return ""
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindNumber:
		return v.n.String()
	case KindStr:
		return v.s
	case KindDate:
		return v.t.Format(dateLayout)
	case KindTimestamp:
		return formatTimestamp(v.t)
	}
	return ""
}

func formatTimestamp(t time.Time) string {
	s := t.Format(timestampLayout)
	ns := t.Nanosecond()
	switch {
	case ns == 0:
		return s
	case ns%1e6 == 0:
		return fmt.Sprintf("%s.%03d", s, ns/1e6)
	case ns%1e3 == 0:
		return fmt.Sprintf("%s.%06d", s, ns/1e3)
	default:
		return fmt.Sprintf("%s.%09d", s, ns)
	}
}

// ParseDate parses the fixed YYYY-MM-DD form.
func ParseDate(s string) (Value, bool) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Empty, false
	}
	return NewDate(t), true
}

// ParseTimestamp parses YYYY-MM-DD HH:MM:SS with an optional fractional
// second part.
func ParseTimestamp(s string) (Value, bool) {
	t, err := time.ParseInLocation(timestampLayout+".999999999", s, time.UTC)
	if err != nil {
		t, err = time.ParseInLocation(timestampLayout, s, time.UTC)
		if err != nil {
			return Empty, false
		}
	}
	return NewTimestamp(t), true
}

// InferValue applies the string inference rules used when scanning a file:
// the first of timestamp, date, decimal, TRUE/FALSE wins, anything else is a
// string, and the empty string is Empty.
func InferValue(s string) Value {
	if s == "" {
		return Empty
	}
	if v, ok := ParseTimestamp(s); ok {
		return v
	}
	if v, ok := ParseDate(s); ok {
		return v
	}
	if n, err := decimal.NewFromString(s); err == nil {
		return NewNumber(n)
	}
	switch s {
	case "TRUE":
		return True()
	case "FALSE":
		return False()
	}
	return NewString(s)
}

// Compare implements the value total order: variant rank first
// (Empty < Bool < Number < Str < Date < Timestamp), natural order within a
// variant.
func (v Value) Compare(other Value) int {
	if v.kind != other.kind {
		if v.kind < other.kind {
			return -1
		}
		return 1
	}
	switch v.kind {
	case KindEmpty:
		return 0
	case KindBool:
		switch {
		case v.b == other.b:
			return 0
		case !v.b:
			return -1
		default:
			return 1
		}
	case KindNumber:
		return v.n.Cmp(other.n)
	case KindStr:
		return strings.Compare(v.s, other.s)
	case KindDate, KindTimestamp:
		switch {
		case v.t.Equal(other.t):
			return 0
		case v.t.Before(other.t):
			return -1
		default:
			return 1
		}
	}
	return 0
}

func (v Value) Equal(other Value) bool {
	return v.kind == other.kind && v.Compare(other) == 0
}

// Canonical returns a kind-tagged rendering that is injective per variant;
// it is the form hashed for group keys and DISTINCT reductions.
func (v Value) Canonical() string {
	switch v.kind {
	case KindNumber:
		s := v.n.String()
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimRight(s, ".")
		}
		return "n:" + s
	default:
		return fmt.Sprintf("%d:%s", v.kind, v.String())
	}
}
