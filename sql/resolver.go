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
	"os"
	"path/filepath"
	"strings"
)

// StdinTableName is the identifier that resolves to the content of
// standard input.
const StdinTableName = "$"

// FileHandle is a resolved SQL object name. Path is the file to access,
// which inside a transaction is the shadow copy; OriginalPath is the table
// file itself.
type FileHandle struct {
	Path         string
	OriginalPath string
	Exists       bool
	ReadOnly     bool
	IsTemp       bool
	ResultName   Name
}

// Runtime bundles everything statement execution needs from the engine:
// the home directory, header mode, writer mode, the session and the
// transaction state.
type Runtime struct {
	Home            string
	FirstLineAsName bool
	WriterMode      bool
	Session         *Session

	txn *Transaction
}

func NewRuntime(home string, firstLineAsName, writerMode bool, session *Session) *Runtime {
	if session == nil {
		session = NewSession()
	}
	return &Runtime{
		Home:            home,
		FirstLineAsName: firstLineAsName,
		WriterMode:      writerMode,
		Session:         session,
	}
}

// Resolve maps an SQL object name to a file handle: every segment but the
// last becomes a directory under home, the last becomes `<stem>.csv`.
// Inside a transaction access is redirected to the shadow copy.
func (rt *Runtime) Resolve(name Name) (FileHandle, error) {
	parts := name.Parts()
	if len(parts) == 1 && parts[0] == StdinTableName {
		path, err := rt.Session.StdinPath()
		if err != nil {
			return FileHandle{}, err
		}
		return FileHandle{
			Path:         path,
			OriginalPath: path,
			Exists:       true,
			ReadOnly:     true,
			ResultName:   NewName(StdinTableName),
		}, nil
	}

	if path, ok := rt.Session.TemporaryTable(name); ok {
		return FileHandle{
			Path:         path,
			OriginalPath: path,
			Exists:       true,
			IsTemp:       true,
			ResultName:   name,
		}, nil
	}

	elems := append([]string{rt.Home}, parts[:len(parts)-1]...)
	elems = append(elems, parts[len(parts)-1]+".csv")
	path := filepath.Join(elems...)
	if err := rt.checkWithinHome(path, name); err != nil {
		return FileHandle{}, err
	}

	handle := FileHandle{
		Path:         path,
		OriginalPath: path,
		ReadOnly:     !rt.WriterMode,
		ResultName:   name,
	}
	if rt.txn != nil {
		shadow, err := rt.txn.AccessFile(path)
		if err != nil {
			return FileHandle{}, err
		}
		handle.Path = shadow
	}
	_, err := os.Stat(handle.Path)
	handle.Exists = err == nil
	return handle, nil
}

// checkWithinHome refuses paths whose resolved form (following symlinks)
// escapes the home directory.
func (rt *Runtime) checkWithinHome(path string, name Name) error {
	home, err := filepath.Abs(rt.Home)
	if err != nil {
		return err
	}
	if resolved, rerr := filepath.EvalSymlinks(home); rerr == nil {
		home = resolved
	}
	resolved, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if r, rerr := filepath.EvalSymlinks(resolved); rerr == nil {
		resolved = r
	} else if dir, derr := filepath.EvalSymlinks(filepath.Dir(resolved)); derr == nil {
		resolved = filepath.Join(dir, filepath.Base(resolved))
	}
	if resolved != home && !strings.HasPrefix(resolved, home+string(filepath.Separator)) {
		return ErrTableNotExists.New(name.FullName())
	}
	return nil
}

// CreateTempFile allocates a session temp table file for CREATE TEMPORARY
// TABLE. Creating a temp table whose name already resolves to an existing
// non-temp file fails with ErrTemporaryTableExists.
func (rt *Runtime) CreateTempFile(name Name) (FileHandle, error) {
	if _, ok := rt.Session.TemporaryTable(name); ok {
		return FileHandle{}, ErrTableAlreadyExists.New(name.FullName())
	}
	nonTemp, err := rt.nonTempHandle(name)
	if err == nil && nonTemp.Exists {
		return FileHandle{}, ErrTemporaryTableExists.New(name.FullName())
	}
	path, err := rt.Session.CreateTemporaryTable(name)
	if err != nil {
		return FileHandle{}, err
	}
	return FileHandle{
		Path:         path,
		OriginalPath: path,
		IsTemp:       true,
		ResultName:   name,
	}, nil
}

func (rt *Runtime) nonTempHandle(name Name) (FileHandle, error) {
	parts := name.Parts()
	elems := append([]string{rt.Home}, parts[:len(parts)-1]...)
	elems = append(elems, parts[len(parts)-1]+".csv")
	path := filepath.Join(elems...)
	_, err := os.Stat(path)
	return FileHandle{Path: path, OriginalPath: path, Exists: err == nil}, nil
}

// FileName is the display path reported in mutation summaries.
func (rt *Runtime) FileName(h FileHandle) string {
	abs, err := filepath.Abs(h.OriginalPath)
	if err != nil {
		return h.OriginalPath
	}
	return abs
}

func (rt *Runtime) InTransaction() bool { return rt.txn != nil }

func (rt *Runtime) StartTransaction() error {
	if rt.txn != nil {
		return ErrUnsupported.New("nested transactions")
	}
	rt.txn = NewTransaction()
	return nil
}

func (rt *Runtime) CommitTransaction() error {
	if rt.txn == nil {
		return ErrUnsupported.New("COMMIT without a transaction")
	}
	err := rt.txn.Commit()
	if err != nil {
		rt.txn.Rollback()
	}
	rt.txn = nil
	return err
}

func (rt *Runtime) RollbackTransaction() error {
	if rt.txn == nil {
		return ErrUnsupported.New("ROLLBACK without a transaction")
	}
	rt.txn.Rollback()
	rt.txn = nil
	return nil
}

// WithAutoCommit runs fn inside the active transaction, or wraps it in a
// one-shot transaction with the same snapshot semantics when none is open.
func (rt *Runtime) WithAutoCommit(fn func() error) error {
	if rt.txn != nil {
		return fn()
	}
	rt.txn = NewTransaction()
	if err := fn(); err != nil {
		rt.txn.Rollback()
		rt.txn = nil
		return err
	}
	err := rt.txn.Commit()
	if err != nil {
		rt.txn.Rollback()
	}
	rt.txn = nil
	return err
}
