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

// Metadata describes the columns of a result set and resolves qualified
// names to positions.
type Metadata interface {
	NumColumns() int
	// ColumnName returns the qualified name registered for a column.
	ColumnName(c Column) (Name, bool)
	// ColumnIndex resolves a name; it returns ErrNoSuchColumn or
	// ErrAmbiguousColumnName, never panics.
	ColumnIndex(name Name) (Column, error)
	// ResultName is the optional table name or alias that qualifies every
	// column of this scope.
	ResultName() (Name, bool)
}

// Columns enumerates the column positions of a metadata.
func Columns(m Metadata) []Column {
	cols := make([]Column, m.NumColumns())
	for i := range cols {
		cols[i] = Column(i)
	}
	return cols
}

// ColumnTitle is the display string for a column header: the full
// registered name, or the empty string for unnamed columns.
func ColumnTitle(m Metadata, c Column) string {
	name, ok := m.ColumnName(c)
	if !ok {
		return ""
	}
	return name.FullName()
}

type columnEntry struct {
	column    Column
	ambiguous bool
}

// SimpleMetadata is an ordered list of qualified column names with a lookup
// table keyed by every suffix of every name; suffixes claimed twice
// collapse to ambiguous.
type SimpleMetadata struct {
	columns []Name
	name    *Name
	lookup  map[string]columnEntry
}

// NewSimpleMetadata creates a metadata with an optional result name; the
// result name auto-qualifies every column added later.
func NewSimpleMetadata(resultName *Name) *SimpleMetadata {
	m := &SimpleMetadata{lookup: map[string]columnEntry{}}
	if resultName != nil {
		n := NewName(resultName.Parts()...)
		m.name = &n
	}
	return m
}

// AddColumn registers a column by its short name, qualified with the result
// name when one is present.
func (m *SimpleMetadata) AddColumn(short string) {
	full := NewName(short)
	if m.name != nil {
		full = m.name.Append(short)
	}
	m.AddColumnName(full)
}

// AddColumnName registers an already-qualified column name as-is.
func (m *SimpleMetadata) AddColumnName(full Name) {
	index := Column(len(m.columns))
	for _, suffix := range full.AvailableNames() {
		key := suffix.FullName()
		if _, taken := m.lookup[key]; taken {
			m.lookup[key] = columnEntry{ambiguous: true}
		} else {
			m.lookup[key] = columnEntry{column: index}
		}
	}
	m.columns = append(m.columns, full)
}

func (m *SimpleMetadata) NumColumns() int { return len(m.columns) }

func (m *SimpleMetadata) ColumnName(c Column) (Name, bool) {
	if c < 0 || c.Index() >= len(m.columns) {
		return Name{}, false
	}
	return m.columns[c.Index()], true
}

func (m *SimpleMetadata) ColumnIndex(name Name) (Column, error) {
	entry, ok := m.lookup[name.FullName()]
	if !ok {
		return 0, ErrNoSuchColumn.New(name.FullName())
	}
	if entry.ambiguous {
		return 0, ErrAmbiguousColumnName.New(name.FullName())
	}
	return entry.column, nil
}

func (m *SimpleMetadata) ResultName() (Name, bool) {
	if m.name == nil {
		return Name{}, false
	}
	return *m.name, true
}

// ProductMetadata concatenates two scopes: column i < left width resolves
// left, the rest resolve right with a shifted index. Lookup is left-first;
// a name resolving on both sides is ambiguous.
type ProductMetadata struct {
	Left  Metadata
	Right Metadata
}

func NewProductMetadata(left, right Metadata) *ProductMetadata {
	return &ProductMetadata{Left: left, Right: right}
}

func (m *ProductMetadata) NumColumns() int {
	return m.Left.NumColumns() + m.Right.NumColumns()
}

func (m *ProductMetadata) ColumnName(c Column) (Name, bool) {
	if name, ok := m.Left.ColumnName(c); ok {
		return name, true
	}
	return m.Right.ColumnName(Column(c.Index() - m.Left.NumColumns()))
}

func (m *ProductMetadata) ColumnIndex(name Name) (Column, error) {
	leftCol, leftErr := m.Left.ColumnIndex(name)
	rightCol, rightErr := m.Right.ColumnIndex(name)
	switch {
	case leftErr != nil && ErrAmbiguousColumnName.Is(leftErr):
		return 0, leftErr
	case rightErr != nil && ErrAmbiguousColumnName.Is(rightErr):
		return 0, rightErr
	case leftErr == nil && rightErr == nil:
		return 0, ErrAmbiguousColumnName.New(name.FullName())
	case leftErr == nil:
		return leftCol, nil
	case rightErr == nil:
		return Column(rightCol.Index() + m.Left.NumColumns()), nil
	default:
		return 0, rightErr
	}
}

func (m *ProductMetadata) ResultName() (Name, bool) { return Name{}, false }

// GroupedMetadata is the two-layer scope of a GROUP BY: This exposes the
// grouping-key columns to the outer scope, Parent is addressable only from
// inside aggregate arguments.
type GroupedMetadata struct {
	Parent Metadata
	This   Metadata
}

func NewGroupedMetadata(parent, this Metadata) *GroupedMetadata {
	return &GroupedMetadata{Parent: parent, This: this}
}

func (m *GroupedMetadata) NumColumns() int { return m.This.NumColumns() }

func (m *GroupedMetadata) ColumnName(c Column) (Name, bool) { return m.This.ColumnName(c) }

func (m *GroupedMetadata) ColumnIndex(name Name) (Column, error) {
	return m.This.ColumnIndex(name)
}

func (m *GroupedMetadata) ResultName() (Name, bool) { return m.This.ResultName() }
