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
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

type shadowFile struct {
	shadowPath string
	digest     string
	existed    bool
}

// Transaction provides single-writer snapshot semantics against the
// filesystem. Each accessed path gets a shadow copy plus the SHA-256 digest
// of the original at copy time; commit verifies every digest before
// applying any shadow.
type Transaction struct {
	shadows map[string]*shadowFile
}

func NewTransaction() *Transaction {
	return &Transaction{shadows: map[string]*shadowFile{}}
}

// AccessFile returns the shadow path for an original path, creating the
// shadow on first access. All reads and writes inside the transaction go
// through the shadow.
func (t *Transaction) AccessFile(path string) (string, error) {
	if shadow, ok := t.shadows[path]; ok {
		return shadow.shadowPath, nil
	}
	shadow := &shadowFile{shadowPath: anonymousFile()}
	if _, err := os.Stat(path); err == nil {
		if err := copyFile(path, shadow.shadowPath); err != nil {
			return "", err
		}
		digest, err := DigestFile(path)
		if err != nil {
			return "", err
		}
		shadow.digest = digest
		shadow.existed = true
	}
	t.shadows[path] = shadow
	return shadow.shadowPath, nil
}

// Commit verifies every shadowed file against its recorded digest, then
// applies all shadows. No original is touched before every entry has
// passed verification.
func (t *Transaction) Commit() error {
	for path, shadow := range t.shadows {
		_, statErr := os.Stat(path)
		exists := statErr == nil
		switch {
		case shadow.existed && exists:
			digest, err := DigestFile(path)
			if err != nil {
				return err
			}
			if digest != shadow.digest {
				return ErrFileChangedUnexpectedly.New(path)
			}
		case shadow.existed && !exists:
			return ErrFileRemovedUnexpectedly.New(path)
		case !shadow.existed && exists:
			return ErrFileCreatedUnexpectedly.New(path)
		}
	}

	for path, shadow := range t.shadows {
		if _, err := os.Stat(shadow.shadowPath); err != nil {
			if _, err := os.Stat(path); err == nil {
				if err := os.Remove(path); err != nil {
					return err
				}
			}
			continue
		}
		data, err := os.ReadFile(shadow.shadowPath)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := renameio.WriteFile(path, data, 0o644); err != nil {
			return err
		}
	}
	t.discard()
	return nil
}

// Rollback discards the shadow set without touching any original.
func (t *Transaction) Rollback() {
	t.discard()
}

func (t *Transaction) discard() {
	for _, shadow := range t.shadows {
		os.Remove(shadow.shadowPath)
	}
	t.shadows = map[string]*shadowFile{}
}

// DigestFile returns the hex SHA-256 digest of a file's contents.
func DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
