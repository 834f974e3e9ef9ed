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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransactionShadowIsStable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tab.csv")
	require.NoError(t, os.WriteFile(path, []byte("col\n1\n"), 0o644))

	txn := NewTransaction()
	shadow, err := txn.AccessFile(path)
	require.NoError(t, err)
	again, err := txn.AccessFile(path)
	require.NoError(t, err)
	require.Equal(t, shadow, again)

	content, err := os.ReadFile(shadow)
	require.NoError(t, err)
	require.Equal(t, "col\n1\n", string(content))
	txn.Rollback()
}

func TestTransactionCommitAppliesShadow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tab.csv")
	require.NoError(t, os.WriteFile(path, []byte("col\n1\n"), 0o644))

	txn := NewTransaction()
	shadow, err := txn.AccessFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(shadow, []byte("col\n1\n2\n"), 0o644))
	require.NoError(t, txn.Commit())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "col\n1\n2\n", string(content))
}

func TestTransactionCommitDetectsExternalChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tab.csv")
	require.NoError(t, os.WriteFile(path, []byte("col\n1\n"), 0o644))

	txn := NewTransaction()
	_, err := txn.AccessFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("col\n1\n9\n"), 0o644))

	err = txn.Commit()
	require.True(t, ErrFileChangedUnexpectedly.Is(err))
	txn.Rollback()

	// the external change survives
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "col\n1\n9\n", string(content))
}

func TestTransactionRemovedShadowDeletesOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tab.csv")
	require.NoError(t, os.WriteFile(path, []byte("col\n1\n"), 0o644))

	txn := NewTransaction()
	shadow, err := txn.AccessFile(path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(shadow))
	require.NoError(t, txn.Commit())

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestDigestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	digest, err := DigestFile(path)
	require.NoError(t, err)
	require.Len(t, digest, 64)
	require.Equal(t, strings.ToLower(digest), digest)

	again, err := DigestFile(path)
	require.NoError(t, err)
	require.Equal(t, digest, again)
}

func TestSessionStdinMaterializesOnce(t *testing.T) {
	session := NewSession()
	_, err := session.StdinPath()
	require.True(t, ErrStdinUnusable.Is(err))

	session.SetStdin(strings.NewReader("test data"))
	first, err := session.StdinPath()
	require.NoError(t, err)
	second, err := session.StdinPath()
	require.NoError(t, err)
	require.Equal(t, first, second)

	content, err := os.ReadFile(first)
	require.NoError(t, err)
	require.Equal(t, "test data", string(content))
	session.Close()
	_, err = os.Stat(first)
	require.True(t, os.IsNotExist(err))
}

func TestRuntimeResolveLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "db"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db", "tab.csv"), []byte("a\n1\n"), 0o644))

	rt := NewRuntime(dir, true, false, NewSession())
	handle, err := rt.Resolve(NewName("db", "tab"))
	require.NoError(t, err)
	require.True(t, handle.Exists)
	require.True(t, handle.ReadOnly)
	require.Equal(t, filepath.Join(dir, "db", "tab.csv"), handle.OriginalPath)

	missing, err := rt.Resolve(NewName("db", "other"))
	require.NoError(t, err)
	require.False(t, missing.Exists)
}

func TestRuntimeRefusesEscapingSymlink(t *testing.T) {
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.csv"), []byte("a\n"), 0o644))
	home := t.TempDir()
	link := filepath.Join(home, "leak.csv")
	if err := os.Symlink(filepath.Join(outside, "secret.csv"), link); err != nil {
		t.Skip("symlinks not supported")
	}

	rt := NewRuntime(home, true, false, NewSession())
	_, err := rt.Resolve(NewName("leak"))
	require.True(t, ErrTableNotExists.Is(err))
}
