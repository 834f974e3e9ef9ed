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
	"strings"

	"github.com/shopspring/decimal"

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
)

// TargetType is one of the five classes a CAST may convert to.
type TargetType int

const (
	TargetStr TargetType = iota
	TargetNumber
	TargetBool
	TargetDate
	TargetTimestamp
)

func (t TargetType) String() string {
	switch t {
	case TargetStr:
		return "TEXT"
	case TargetNumber:
		return "DECIMAL"
	case TargetBool:
		return "BOOL"
	case TargetDate:
		return "DATE"
	default:
		return "TIMESTAMP"
	}
}

var targetTypes = map[string]TargetType{
	"CHARACTER": TargetStr, "CHAR": TargetStr, "CHARACTER VARYING": TargetStr,
	"CHAR VARYING": TargetStr, "VARCHAR": TargetStr, "NVARCHAR": TargetStr,
	"STRING": TargetStr, "FIXEDSTRING": TargetStr, "LONGTEXT": TargetStr,
	"MEDIUMTEXT": TargetStr, "TINYTEXT": TargetStr, "TEXT": TargetStr,
	"CHARACTER LARGE OBJECT": TargetStr, "CHAR LARGE OBJECT": TargetStr,
	"CLOB": TargetStr,

	"NUMERIC": TargetNumber, "DECIMAL": TargetNumber, "BIGNUMERIC": TargetNumber,
	"BIGDECIMAL": TargetNumber, "DEC": TargetNumber, "FLOAT": TargetNumber,
	"TINYINT": TargetNumber, "INT2": TargetNumber, "SMALLINT": TargetNumber,
	"MEDIUMINT": TargetNumber, "INT": TargetNumber, "INT4": TargetNumber,
	"INT8": TargetNumber, "INT16": TargetNumber, "INT32": TargetNumber,
	"INT64": TargetNumber, "INT128": TargetNumber, "INT256": TargetNumber,
	"INTEGER": TargetNumber, "BIGINT": TargetNumber,
	"UINT8": TargetNumber, "UINT16": TargetNumber, "UINT32": TargetNumber,
	"UINT64": TargetNumber, "UINT128": TargetNumber, "UINT256": TargetNumber,
	"FLOAT4": TargetNumber, "FLOAT8": TargetNumber, "FLOAT32": TargetNumber,
	"FLOAT64": TargetNumber, "REAL": TargetNumber, "DOUBLE": TargetNumber,
	"DOUBLE PRECISION": TargetNumber,

	"BOOL": TargetBool, "BOOLEAN": TargetBool,

	"DATE": TargetDate, "DATE32": TargetDate,

	"TIME": TargetTimestamp, "DATETIME": TargetTimestamp,
	"DATETIME64": TargetTimestamp, "TIMESTAMP": TargetTimestamp,
}

// ParseTargetType maps the many SQL type spellings onto a target class.
func ParseTargetType(typeName string) (TargetType, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(typeName), " "))
	normalized = strings.TrimPrefix(normalized, "UNSIGNED ")
	if target, ok := targetTypes[normalized]; ok {
		return target, nil
	}
	return 0, sql.ErrUnsupported.New("CAST to " + typeName)
}

// Convert applies the total conversion rules of the class: conversion
// never raises, failure yields Empty.
func (t TargetType) Convert(v sql.Value) sql.Value {
	if v.IsEmpty() {
		return sql.Empty
	}
	switch t {
	case TargetStr:
		if _, ok := v.Str(); ok {
			return v
		}
		return sql.NewString(v.String())
	case TargetNumber:
		if _, ok := v.Number(); ok {
			return v
		}
		if s, ok := v.Str(); ok {
			if n, err := decimal.NewFromString(s); err == nil {
				return sql.NewNumber(n)
			}
		}
		return sql.Empty
	case TargetBool:
		if _, ok := v.Bool(); ok {
			return v
		}
		if n, ok := v.Number(); ok {
			return sql.NewBool(!n.IsZero())
		}
		if s, ok := v.Str(); ok {
			switch strings.ToUpper(s) {
			case "TRUE", "T", "Y", "YES", "1":
				return sql.True()
			case "FALSE", "F", "N", "NO", "0":
				return sql.False()
			}
		}
		return sql.Empty
	case TargetDate:
		switch v.Kind() {
		case sql.KindDate:
			return v
		case sql.KindTimestamp:
			t, _ := v.Time()
			return sql.NewDate(t)
		case sql.KindStr:
			s, _ := v.Str()
			if d, ok := sql.ParseDate(s); ok {
				return d
			}
		}
		return sql.Empty
	case TargetTimestamp:
		switch v.Kind() {
		case sql.KindTimestamp:
			return v
		case sql.KindDate:
			t, _ := v.Time()
			return sql.NewTimestamp(t)
		case sql.KindStr:
			s, _ := v.Str()
			if ts, ok := sql.ParseTimestamp(s); ok {
				return ts
			}
		}
		return sql.Empty
	}
	return sql.Empty
}

type castExpr struct {
	expr   sql.Projection
	target TargetType
	name   string
}

func newCast(c *parse.Cast, md sql.Metadata) (sql.Projection, error) {
	inner, err := Compile(c.Expr, md)
	if err != nil {
		return nil, err
	}
	target, err := ParseTargetType(c.Type)
	if err != nil {
		return nil, err
	}
	name := "TRY_CAST(" + inner.Name() + " AS " + target.String() + ")"
	return &castExpr{expr: inner, target: target, name: name}, nil
}

func (c *castExpr) Name() string { return c.name }

func (c *castExpr) Get(row *sql.GroupRow) sql.Value {
	return c.target.Convert(c.expr.Get(row))
}
