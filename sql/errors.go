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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrParser is returned when a command string cannot be parsed.
	ErrParser = errors.NewKind("parse error: %s")
	// ErrUnsupported is returned for SQL constructs the engine recognizes
	// but does not implement. Silent acceptance is forbidden.
	ErrUnsupported = errors.NewKind("unsupported: %s")

	ErrTableNotExists       = errors.NewKind("table does not exist: %s")
	ErrTableAlreadyExists   = errors.NewKind("table already exists: %s")
	ErrTemporaryTableExists = errors.NewKind("temporary table already exists: %s")
	ErrTableNotTemporary    = errors.NewKind("table is not a temporary table: %s")
	ErrReadOnlyMode         = errors.NewKind("engine is in read only mode")

	ErrNoSuchColumn        = errors.NewKind("cannot find column: %s")
	ErrAmbiguousColumnName = errors.NewKind("ambiguous column name: %s")
	ErrNoGroupBy           = errors.NewKind("cannot use an aggregate function without GROUP BY")

	ErrNoNumericLimit  = errors.NewKind("LIMIT must be a number")
	ErrNoNumericOffset = errors.NewKind("OFFSET must be a number")

	ErrMultiplyTableDelete = errors.NewKind("DELETE from more than one table")
	ErrNothingToDelete     = errors.NewKind("DELETE without a table")
	ErrMultiplyAssignment  = errors.NewKind("column assigned more than once")
	ErrInsertMismatch      = errors.NewKind("INSERT source does not match the column list")
	ErrNoInsertSource      = errors.NewKind("INSERT without a source")
	ErrColumnAlreadyExists = errors.NewKind("column already exists: %s")
	ErrNoTableStructure    = errors.NewKind("no structure for table: %s")

	ErrFileChangedUnexpectedly = errors.NewKind("file changed unexpectedly: %s")
	ErrFileCreatedUnexpectedly = errors.NewKind("file created unexpectedly: %s")
	ErrFileRemovedUnexpectedly = errors.NewKind("file removed unexpectedly: %s")

	ErrStdinUnusable  = errors.NewKind("standard input cannot be used as a table here")
	ErrOutputCreation = errors.NewKind("cannot create output: %s")
)
