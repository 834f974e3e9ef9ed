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
	"time"

	"github.com/shopspring/decimal"

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
)

type timeField int

const (
	fieldDay timeField = iota
	fieldDayOfWeek
	fieldDayOfYear
	fieldHour
	fieldMinute
	fieldSecond
	fieldEpoch
	fieldIsodow
	fieldIsoWeek
	fieldIsoYear
	fieldMicrosecond
	fieldMillisecond
	fieldNanosecond
)

var timeFields = map[string]timeField{
	"DAY":          fieldDay,
	"DOW":          fieldDayOfWeek,
	"DAYOFWEEK":    fieldDayOfWeek,
	"DOY":          fieldDayOfYear,
	"DAYOFYEAR":    fieldDayOfYear,
	"HOUR":         fieldHour,
	"MINUTE":       fieldMinute,
	"SECOND":       fieldSecond,
	"EPOCH":        fieldEpoch,
	"ISODOW":       fieldIsodow,
	"ISOWEEK":      fieldIsoWeek,
	"ISOYEAR":      fieldIsoYear,
	"MICROSECOND":  fieldMicrosecond,
	"MICROSECONDS": fieldMicrosecond,
	"MILLISECOND":  fieldMillisecond,
	"MILLISECONDS": fieldMillisecond,
	"NANOSECOND":   fieldNanosecond,
	"NANOSECONDS":  fieldNanosecond,
}

type extractExpr struct {
	expr  sql.Projection
	field timeField
	name  string
}

func newExtract(e *parse.Extract, md sql.Metadata) (sql.Projection, error) {
	inner, err := Compile(e.Expr, md)
	if err != nil {
		return nil, err
	}
	field, ok := timeFields[e.Field]
	if !ok {
		return nil, sql.ErrUnsupported.New("EXTRACT(... FROM " + e.Field + ")")
	}
	name := "EXTRACT(" + e.Field + " FROM " + inner.Name() + ")"
	return &extractExpr{expr: inner, field: field, name: name}, nil
}

func (e *extractExpr) Name() string { return e.name }

func (e *extractExpr) Get(row *sql.GroupRow) sql.Value {
	v := e.expr.Get(row)
	t, ok := v.Time()
	if !ok {
		return sql.Empty
	}
	// on a Date the time components read as zero, which is exactly what
	// the midnight instant yields
	return extractField(e.field, t)
}

func extractField(field timeField, t time.Time) sql.Value {
	num := func(i int64) sql.Value { return sql.NewNumberFromInt(i) }
	switch field {
	case fieldDay:
		return num(int64(t.Day()))
	case fieldDayOfWeek:
		return num(int64(t.Weekday()))
	case fieldDayOfYear:
		return num(int64(t.YearDay()))
	case fieldHour:
		return num(int64(t.Hour()))
	case fieldMinute:
		return num(int64(t.Minute()))
	case fieldSecond:
		secs := decimal.NewFromInt(int64(t.Second()))
		nanos := decimal.New(int64(t.Nanosecond()), -9)
		return sql.NewNumber(secs.Add(nanos))
	case fieldEpoch:
		return sql.NewNumber(decimal.New(t.UnixMicro(), -6))
	case fieldIsodow:
		day := int64(t.Weekday())
		if day == 0 {
			day = 7
		}
		return num(day)
	case fieldIsoWeek:
		_, week := t.ISOWeek()
		return num(int64(week))
	case fieldIsoYear:
		year, _ := t.ISOWeek()
		return num(int64(year))
	case fieldMicrosecond:
		micros := int64(t.Second())*1_000_000 + int64(t.Nanosecond())/1_000
		return num(micros)
	case fieldMillisecond:
		millis := int64(t.Second())*1_000 + int64(t.Nanosecond())/1_000_000
		return num(millis)
	case fieldNanosecond:
		return num(int64(t.Nanosecond()))
	}
	return sql.Empty
}
