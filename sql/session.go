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
	"io"
	"os"
	"path/filepath"

	uuid "github.com/satori/go.uuid"
)

// Session holds per-session state: the temporary-table map and the
// materialized stdin pseudo-table. Temporary tables live in anonymous files
// under the OS temp directory and are released when the session closes.
type Session struct {
	temp      map[string]string
	stdin     io.Reader
	stdinPath string
}

func NewSession() *Session {
	return &Session{temp: map[string]string{}}
}

// SetStdin provides the reader behind the `$` pseudo-table. Without one,
// resolving `$` fails with ErrStdinUnusable.
func (s *Session) SetStdin(r io.Reader) { s.stdin = r }

func anonymousFile() string {
	return filepath.Join(os.TempDir(), "csvsql-"+uuid.NewV4().String()+".csv")
}

// CreateTemporaryTable allocates an anonymous file for a session temp
// table.
func (s *Session) CreateTemporaryTable(name Name) (string, error) {
	key := name.FullName()
	if _, exists := s.temp[key]; exists {
		return "", ErrTableAlreadyExists.New(key)
	}
	path := anonymousFile()
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	s.temp[key] = path
	return path, nil
}

func (s *Session) DropTemporaryTable(name Name) error {
	key := name.FullName()
	path, ok := s.temp[key]
	if !ok {
		return ErrTableNotExists.New(key)
	}
	delete(s.temp, key)
	return os.Remove(path)
}

func (s *Session) TemporaryTable(name Name) (string, bool) {
	path, ok := s.temp[name.FullName()]
	return path, ok
}

// StdinPath materializes standard input to a temp file on first access and
// returns the same file thereafter.
func (s *Session) StdinPath() (string, error) {
	if s.stdinPath != "" {
		return s.stdinPath, nil
	}
	if s.stdin == nil {
		return "", ErrStdinUnusable.New()
	}
	path := anonymousFile()
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, s.stdin); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	s.stdinPath = path
	return path, nil
}

// Close removes every anonymous file owned by the session.
func (s *Session) Close() {
	for _, path := range s.temp {
		os.Remove(path)
	}
	s.temp = map[string]string{}
	if s.stdinPath != "" {
		os.Remove(s.stdinPath)
		s.stdinPath = ""
	}
}
