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

package csvsql

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/csvsql/go-csvsql/sql"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New(Config{Home: "."})
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func newWriterEngine(t *testing.T, home string) *Engine {
	t.Helper()
	engine, err := New(Config{Home: home, WriterMode: true})
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func singleResult(t *testing.T, engine *Engine, query string) *sql.ResultSet {
	t.Helper()
	executions, err := engine.ExecuteCommands(query)
	require.NoError(t, err)
	require.Len(t, executions, 1)
	return executions[0].Results
}

func cellString(rs *sql.ResultSet, row, col int) string {
	return rs.Data[row].Get(sql.Column(col)).String()
}

func TestScanAndProject(t *testing.T) {
	engine := newTestEngine(t)
	rs := singleResult(t, engine, "SELECT id, name, active FROM tests.data.customers")

	require.Equal(t, 3, rs.Metadata.NumColumns())
	require.Len(t, rs.Data, 10)

	id, ok := rs.Data[0].Get(sql.Column(0)).Number()
	require.True(t, ok)
	require.True(t, id.Equal(decimal.NewFromInt(-5783077230795473732)))

	active, ok := rs.Data[5].Get(sql.Column(2)).Bool()
	require.True(t, ok)
	require.False(t, active)
}

func TestSelectStarPreservesOrderAndArity(t *testing.T) {
	engine := newTestEngine(t)
	rs := singleResult(t, engine, "SELECT * FROM tests.data.customers")

	require.Equal(t, 7, rs.Metadata.NumColumns())
	require.Len(t, rs.Data, 10)
	for _, row := range rs.Data {
		require.Len(t, row, 7)
	}
	require.Equal(t, "Alice Cooper", cellString(rs, 0, 2))
	require.Equal(t, "Jack Sparrow", cellString(rs, 9, 2))
}

func TestQualifiedColumnLookups(t *testing.T) {
	engine := newTestEngine(t)
	rs := singleResult(t, engine,
		"SELECT id, customers.name, active, tests.data.customers.email FROM tests.data.customers")
	require.Equal(t, 4, rs.Metadata.NumColumns())
	require.Len(t, rs.Data, 10)
}

func TestCartesianProductRowCount(t *testing.T) {
	engine := newTestEngine(t)
	rs := singleResult(t, engine,
		"SELECT A.id, B.name FROM (SELECT * FROM tests.data.customers) A, (SELECT * FROM tests.data.customers) B")
	require.Equal(t, 2, rs.Metadata.NumColumns())
	require.Len(t, rs.Data, 100)
}

func TestNumericExpression(t *testing.T) {
	engine := newTestEngine(t)
	rs := singleResult(t, engine,
		`SELECT price + "delivery cost" AS total FROM tests.data.sales WHERE id = 'a69dde4e-6ec2-444e-9c7f-b1939d1a7538'`)
	require.Len(t, rs.Data, 1)

	total, ok := rs.Data[0].Get(sql.Column(0)).Number()
	require.True(t, ok)
	diff, _ := total.Sub(decimal.RequireFromString("53.55")).Abs().Float64()
	require.Less(t, diff, 0.01)
}

func writeTable(t *testing.T, home, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(home, name), []byte(content), 0o644))
}

func TestAggregationWithDistinct(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "nums.csv", "c\n1\n2\n3\n4\n1\n")
	engine := newWriterEngine(t, home)

	rs := singleResult(t, engine, "SELECT COUNT(*), COUNT(DISTINCT c), AVG(c) FROM nums")
	require.Len(t, rs.Data, 1)
	require.Equal(t, "5", cellString(rs, 0, 0))
	require.Equal(t, "4", cellString(rs, 0, 1))
	require.Equal(t, "2.2", cellString(rs, 0, 2))
}

func TestGroupByWithHaving(t *testing.T) {
	engine := newTestEngine(t)
	rs := singleResult(t, engine,
		"SELECT country, COUNT(*) AS total FROM tests.data.customers GROUP BY country HAVING COUNT(*) > 1 ORDER BY total DESC, country")
	// France x4, Germany/Spain/Italy x2, Wayne's single France row counted above
	require.Equal(t, 2, rs.Metadata.NumColumns())
	require.Len(t, rs.Data, 4)
	require.Equal(t, "France", cellString(rs, 0, 0))
	require.Equal(t, "4", cellString(rs, 0, 1))
	require.Equal(t, "Germany", cellString(rs, 1, 0))
}

func TestForcedGroupingWithoutGroupBy(t *testing.T) {
	engine := newTestEngine(t)
	rs := singleResult(t, engine, "SELECT COUNT(*) FROM tests.data.customers")
	require.Len(t, rs.Data, 1)
	require.Equal(t, "10", cellString(rs, 0, 0))
}

func TestJoins(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "people.csv", "id,city_id,name\n1,10,ann\n2,20,bob\n3,99,cid\n")
	writeTable(t, home, "cities.csv", "id,city\n10,Paris\n20,Berlin\n30,Rome\n")
	engine := newWriterEngine(t, home)

	inner := singleResult(t, engine,
		"SELECT name, city FROM people JOIN cities ON people.city_id = cities.id")
	require.Len(t, inner.Data, 2)

	left := singleResult(t, engine,
		"SELECT name, city FROM people LEFT JOIN cities ON people.city_id = cities.id ORDER BY name")
	require.Len(t, left.Data, 3)
	require.Equal(t, "cid", cellString(left, 2, 0))
	require.True(t, left.Data[2].Get(sql.Column(1)).IsEmpty())

	right := singleResult(t, engine,
		"SELECT name, city FROM people RIGHT JOIN cities ON people.city_id = cities.id")
	require.Len(t, right.Data, 3)

	full := singleResult(t, engine,
		"SELECT name, city FROM people FULL OUTER JOIN cities ON people.city_id = cities.id")
	require.Len(t, full.Data, 4)

	writeTable(t, home, "badges.csv", "id,badge\n1,gold\n2,silver\n")
	using := singleResult(t, engine,
		"SELECT name, badge FROM people JOIN badges USING (id)")
	require.Len(t, using.Data, 2)

	_, err := engine.ExecuteCommands("SELECT * FROM people NATURAL JOIN cities")
	require.True(t, sql.ErrUnsupported.Is(err))
}

func TestOrderByNullsPlacement(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "vals.csv", "v,w\n3,x\n,x\n1,x\n2,x\n")
	engine := newWriterEngine(t, home)

	// default: nulls last, irrespective of direction
	rs := singleResult(t, engine, "SELECT v FROM vals ORDER BY v")
	require.Equal(t, "1", cellString(rs, 0, 0))
	require.Equal(t, "", cellString(rs, 3, 0))

	rs = singleResult(t, engine, "SELECT v FROM vals ORDER BY v DESC")
	require.Equal(t, "3", cellString(rs, 0, 0))
	require.Equal(t, "", cellString(rs, 3, 0))

	rs = singleResult(t, engine, "SELECT v FROM vals ORDER BY v NULLS FIRST")
	require.Equal(t, "", cellString(rs, 0, 0))
	require.Equal(t, "1", cellString(rs, 1, 0))
}

func TestLimitOffsetBoundaries(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "vals.csv", "v\n1\n2\n3\n4\n5\n")
	engine := newWriterEngine(t, home)

	require.Len(t, singleResult(t, engine, "SELECT v FROM vals LIMIT 0").Data, 0)
	require.Len(t, singleResult(t, engine, "SELECT v FROM vals OFFSET 5").Data, 0)
	require.Len(t, singleResult(t, engine, "SELECT v FROM vals OFFSET 9").Data, 0)

	rs := singleResult(t, engine, "SELECT v FROM vals LIMIT 2 OFFSET 1")
	require.Len(t, rs.Data, 2)
	require.Equal(t, "2", cellString(rs, 0, 0))

	rs = singleResult(t, engine, "SELECT v FROM vals LIMIT 1, 2")
	require.Len(t, rs.Data, 2)
	require.Equal(t, "2", cellString(rs, 0, 0))

	_, err := engine.ExecuteCommands("SELECT v FROM vals LIMIT 'x'")
	require.True(t, sql.ErrNoNumericLimit.Is(err))
	_, err = engine.ExecuteCommands("SELECT v FROM vals LIMIT 1 OFFSET 'x'")
	require.True(t, sql.ErrNoNumericOffset.Is(err))
	_, err = engine.ExecuteCommands("SELECT v FROM vals LIMIT v")
	require.Error(t, err)
}

func TestSelectDistinct(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "vals.csv", "v\n1\n2\n1\n3\n2\n")
	engine := newWriterEngine(t, home)

	rs := singleResult(t, engine, "SELECT DISTINCT v FROM vals")
	require.Len(t, rs.Data, 3)
	require.Equal(t, "1", cellString(rs, 0, 0))
	require.Equal(t, "2", cellString(rs, 1, 0))
	require.Equal(t, "3", cellString(rs, 2, 0))
}

func TestCastRules(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "one.csv", "x\n1\n")
	engine := newWriterEngine(t, home)

	rs := singleResult(t, engine,
		"SELECT CAST('not a number' AS DECIMAL), CAST('2024-05-22' AS DATE), CAST('YES' AS BOOL) FROM one")
	require.True(t, rs.Data[0].Get(sql.Column(0)).IsEmpty())
	require.Equal(t, "2024-05-22", cellString(rs, 0, 1))
	require.Equal(t, "TRUE", cellString(rs, 0, 2))
	require.Equal(t, sql.KindDate, rs.Data[0].Get(sql.Column(1)).Kind())
}

func TestInsertUpdateDelete(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "tab.csv", "a,b\n1,one\n2,two\n")
	engine := newWriterEngine(t, home)

	rs := singleResult(t, engine, "INSERT INTO tab VALUES (3, 'three'), (4, 'four')")
	require.Equal(t, "INSERT", cellString(rs, 0, 0))
	require.Equal(t, "2", cellString(rs, 0, 1))
	require.Len(t, singleResult(t, engine, "SELECT * FROM tab").Data, 4)

	rs = singleResult(t, engine, "INSERT INTO tab (b, a) VALUES ('five', 5)")
	require.Equal(t, "1", cellString(rs, 0, 1))
	check := singleResult(t, engine, "SELECT b FROM tab WHERE a = 5")
	require.Len(t, check.Data, 1)
	require.Equal(t, "five", cellString(check, 0, 0))

	rs = singleResult(t, engine, "UPDATE tab SET b = 'TWO' WHERE a = 2")
	require.Equal(t, "UPDATE", cellString(rs, 0, 0))
	require.Equal(t, "1", cellString(rs, 0, 1))
	check = singleResult(t, engine, "SELECT b FROM tab WHERE a = 2")
	require.Equal(t, "TWO", cellString(check, 0, 0))

	rs = singleResult(t, engine, "DELETE FROM tab WHERE a > 3")
	require.Equal(t, "DELETED", cellString(rs, 0, 0))
	require.Equal(t, "2", cellString(rs, 0, 1))
	require.Len(t, singleResult(t, engine, "SELECT * FROM tab").Data, 3)

	_, err := engine.ExecuteCommands("UPDATE tab SET b = 'x', b = 'y'")
	require.True(t, sql.ErrMultiplyAssignment.Is(err))
	_, err = engine.ExecuteCommands("DELETE FROM tab, tab")
	require.True(t, sql.ErrMultiplyTableDelete.Is(err))
	_, err = engine.ExecuteCommands("INSERT INTO tab (a) VALUES (1, 2)")
	require.True(t, sql.ErrInsertMismatch.Is(err))
}

func TestCreateAndDropTable(t *testing.T) {
	home := t.TempDir()
	engine := newWriterEngine(t, home)

	rs := singleResult(t, engine, "CREATE TABLE db.tab (a INT, b TEXT)")
	require.Equal(t, "CREATED", cellString(rs, 0, 0))
	require.Equal(t, "db.tab", cellString(rs, 0, 1))
	_, err := os.Stat(filepath.Join(home, "db", "tab.csv"))
	require.NoError(t, err)

	_, err = engine.ExecuteCommands("CREATE TABLE db.tab (a INT)")
	require.True(t, sql.ErrTableAlreadyExists.Is(err))
	_, err = engine.ExecuteCommands("CREATE TABLE IF NOT EXISTS db.tab (a INT)")
	require.NoError(t, err)

	_, err = engine.ExecuteCommands("CREATE TABLE db.tab2 (a GEOMETRY)")
	require.True(t, sql.ErrUnsupported.Is(err))

	singleResult(t, engine, "INSERT INTO db.tab VALUES (1, 'x')")
	singleResult(t, engine, "CREATE TABLE db.copy AS SELECT * FROM db.tab")
	require.Len(t, singleResult(t, engine, "SELECT * FROM db.copy").Data, 1)

	singleResult(t, engine, "CREATE TABLE db.shape LIKE db.tab")
	require.Len(t, singleResult(t, engine, "SELECT * FROM db.shape").Data, 0)

	singleResult(t, engine, "CREATE TABLE db.clone CLONE db.tab")
	require.Len(t, singleResult(t, engine, "SELECT * FROM db.clone").Data, 1)

	rs = singleResult(t, engine, "DROP TABLE db.copy, db.shape")
	require.Len(t, rs.Data, 2)
	require.Equal(t, "DROPPED", cellString(rs, 0, 0))

	_, err = engine.ExecuteCommands("DROP TABLE db.missing")
	require.True(t, sql.ErrTableNotExists.Is(err))
	_, err = engine.ExecuteCommands("DROP TABLE IF EXISTS db.missing")
	require.NoError(t, err)
	_, err = engine.ExecuteCommands("DROP TEMPORARY TABLE db.tab")
	require.True(t, sql.ErrTableNotTemporary.Is(err))
	_, err = engine.ExecuteCommands("DROP TABLE db.clone CASCADE")
	require.True(t, sql.ErrUnsupported.Is(err))
}

func TestTemporaryTables(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "tab.csv", "a\n1\n")
	engine := newWriterEngine(t, home)

	singleResult(t, engine, "CREATE TEMPORARY TABLE tmp AS SELECT * FROM tab")
	require.Len(t, singleResult(t, engine, "SELECT * FROM tmp").Data, 1)

	// the temp table does not land in the home directory
	_, err := os.Stat(filepath.Join(home, "tmp.csv"))
	require.True(t, os.IsNotExist(err))

	// a temp table cannot shadow an existing file
	_, err = engine.ExecuteCommands("CREATE TEMPORARY TABLE tab (a INT)")
	require.True(t, sql.ErrTemporaryTableExists.Is(err))

	singleResult(t, engine, "DROP TABLE tmp")
	_, err = engine.ExecuteCommands("SELECT * FROM tmp")
	require.True(t, sql.ErrTableNotExists.Is(err))
}

func TestAlterTable(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "tab.csv", "a,b\n1,one\n2,two\n")
	engine := newWriterEngine(t, home)

	singleResult(t, engine, "ALTER TABLE tab ADD COLUMN c INT")
	rs := singleResult(t, engine, "SELECT * FROM tab")
	require.Equal(t, 3, rs.Metadata.NumColumns())
	require.True(t, rs.Data[0].Get(sql.Column(2)).IsEmpty())

	_, err := engine.ExecuteCommands("ALTER TABLE tab ADD COLUMN c INT")
	require.True(t, sql.ErrColumnAlreadyExists.Is(err))
	singleResult(t, engine, "ALTER TABLE tab ADD COLUMN IF NOT EXISTS c INT")

	singleResult(t, engine, "ALTER TABLE tab RENAME COLUMN c TO d")
	rs = singleResult(t, engine, "SELECT d FROM tab")
	require.Len(t, rs.Data, 2)

	singleResult(t, engine, "ALTER TABLE tab DROP COLUMN d")
	rs = singleResult(t, engine, "SELECT * FROM tab")
	require.Equal(t, 2, rs.Metadata.NumColumns())

	rs = singleResult(t, engine, "ALTER TABLE IF EXISTS missing DROP COLUMN x")
	require.Len(t, rs.Data, 1)
}

func TestReadOnlyModeRejectsMutations(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "tab.csv", "a\n1\n")
	engine, err := New(Config{Home: home})
	require.NoError(t, err)
	defer engine.Close()

	for _, command := range []string{
		"INSERT INTO tab VALUES (2)",
		"UPDATE tab SET a = 2",
		"DELETE FROM tab",
		"CREATE TABLE other (a INT)",
		"DROP TABLE tab",
		"ALTER TABLE tab ADD COLUMN b INT",
	} {
		_, err := engine.ExecuteCommands(command)
		require.True(t, sql.ErrReadOnlyMode.Is(err), command)
	}
}

func TestTransactionCommitAndRollback(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "tab.csv", "a\n1\n2\n")
	engine := newWriterEngine(t, home)

	rs := singleResult(t, engine, "START TRANSACTION")
	require.Equal(t, "START TRANSACTION", cellString(rs, 0, 0))
	singleResult(t, engine, "INSERT INTO tab VALUES (3)")

	// inside the transaction the insert is visible
	require.Len(t, singleResult(t, engine, "SELECT * FROM tab").Data, 3)
	// the file on disk is untouched
	other := newWriterEngine(t, home)
	require.Len(t, singleResult(t, other, "SELECT * FROM tab").Data, 2)

	rs = singleResult(t, engine, "COMMIT")
	require.Equal(t, "COMMIT", cellString(rs, 0, 0))
	require.Len(t, singleResult(t, other, "SELECT * FROM tab").Data, 3)

	singleResult(t, engine, "START TRANSACTION")
	singleResult(t, engine, "INSERT INTO tab VALUES (4)")
	rs = singleResult(t, engine, "ROLLBACK")
	require.Equal(t, "ROLLBACK", cellString(rs, 0, 0))
	require.Len(t, singleResult(t, engine, "SELECT * FROM tab").Data, 3)
}

func TestTransactionConflict(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "tab.csv", "col\n1\n2\n")

	engineA := newWriterEngine(t, home)
	engineB := newWriterEngine(t, home)

	singleResult(t, engineA, "START TRANSACTION")
	singleResult(t, engineA, "INSERT INTO tab VALUES (4)")

	singleResult(t, engineB, "INSERT INTO tab VALUES (5)")

	_, err := engineA.ExecuteCommands("COMMIT")
	require.True(t, sql.ErrFileChangedUnexpectedly.Is(err))

	// the table reflects only B's change
	rs := singleResult(t, engineB, "SELECT col FROM tab ORDER BY col")
	require.Len(t, rs.Data, 3)
	require.Equal(t, "5", cellString(rs, 2, 0))
}

func TestTransactionDetectsRemovedAndCreatedFiles(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "tab.csv", "col\n1\n2\n")

	engineA := newWriterEngine(t, home)
	singleResult(t, engineA, "START TRANSACTION")
	singleResult(t, engineA, "INSERT INTO tab VALUES (4)")
	engineB := newWriterEngine(t, home)
	singleResult(t, engineB, "DROP TABLE tab")
	_, err := engineA.ExecuteCommands("COMMIT")
	require.True(t, sql.ErrFileRemovedUnexpectedly.Is(err))

	engineC := newWriterEngine(t, home)
	singleResult(t, engineC, "START TRANSACTION")
	singleResult(t, engineC, "CREATE TABLE fresh (a INT)")
	engineD := newWriterEngine(t, home)
	singleResult(t, engineD, "CREATE TABLE fresh (a INT)")
	_, err = engineC.ExecuteCommands("COMMIT")
	require.True(t, sql.ErrFileCreatedUnexpectedly.Is(err))
}

func TestShowTablesAndDatabases(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "table_one.csv", "test\n")
	writeTable(t, home, "not_csv", "one\n")
	writeTable(t, home, "0digit.csv", "one\n")
	writeTable(t, home, "has-dash.csv", "one\n")
	require.NoError(t, os.MkdirAll(filepath.Join(home, "db1"), 0o755))
	writeTable(t, home, filepath.Join("db1", "nested.csv"), "a\n1\n")
	require.NoError(t, os.MkdirAll(filepath.Join(home, "db1", "db2"), 0o755))
	writeTable(t, home, filepath.Join("db1", "db2", "deep.csv"), "a\n")
	engine := newWriterEngine(t, home)

	rs := singleResult(t, engine, "SHOW TABLES")
	require.Equal(t, 5, rs.Metadata.NumColumns())
	require.Len(t, rs.Data, 1)
	require.Equal(t, "table_one", cellString(rs, 0, 0))

	rs = singleResult(t, engine, "SHOW FULL TABLES")
	var names []string
	for i := range rs.Data {
		names = append(names, cellString(rs, i, 0))
	}
	require.ElementsMatch(t, []string{"table_one", "db1.nested", "db1.db2.deep"}, names)

	rs = singleResult(t, engine, "SHOW DATABASES")
	names = nil
	for i := range rs.Data {
		names = append(names, cellString(rs, i, 0))
	}
	require.ElementsMatch(t, []string{"db1", "db1.db2"}, names)
}

func TestOrderByOutputAlias(t *testing.T) {
	engine := newTestEngine(t)
	rs := singleResult(t, engine,
		"SELECT name AS n FROM tests.data.customers ORDER BY n")
	require.Equal(t, "Alice Cooper", cellString(rs, 0, 0))
	require.Equal(t, "Jack Sparrow", cellString(rs, 9, 0))
}

func TestStatementErrorsDoNotAbortEarlierResults(t *testing.T) {
	engine := newTestEngine(t)
	executions, err := engine.ExecuteCommands(
		"SELECT id FROM tests.data.customers; SELECT nope FROM tests.data.customers")
	require.Error(t, err)
	require.Len(t, executions, 1)
	require.True(t, sql.ErrNoSuchColumn.Is(err))
}

func TestUnsupportedConstructs(t *testing.T) {
	engine := newTestEngine(t)
	for _, command := range []string{
		"SELECT id FROM tests.data.customers UNION SELECT id FROM tests.data.customers",
		"SELECT (SELECT id FROM tests.data.customers) FROM tests.data.customers",
		"SELECT id FROM tests.data.customers WHERE id IN (SELECT id FROM tests.data.customers)",
	} {
		_, err := engine.ExecuteCommands(command)
		require.True(t, sql.ErrUnsupported.Is(err), command)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	home := t.TempDir()
	writeTable(t, home, "src.csv", "a,b,c,d\n1.5,TRUE,2020-01-02,text\n,FALSE,2020-01-02 10:11:12,x\n")
	engine := newWriterEngine(t, home)

	singleResult(t, engine, "CREATE TABLE copy CLONE src")
	src := singleResult(t, engine, "SELECT * FROM src")
	copied := singleResult(t, engine, "SELECT * FROM copy")

	require.Len(t, copied.Data, len(src.Data))
	for i := range src.Data {
		for c := 0; c < src.Metadata.NumColumns(); c++ {
			require.Equal(t,
				src.Data[i].Get(sql.Column(c)).String(),
				copied.Data[i].Get(sql.Column(c)).String())
		}
	}
}

func TestPromptUsesHomeName(t *testing.T) {
	home := t.TempDir()
	engine := newWriterEngine(t, home)
	require.True(t, strings.HasSuffix(engine.Prompt(), "> "))
	require.Equal(t, filepath.Base(home)+"> ", engine.Prompt())
}

func TestAmbiguousColumn(t *testing.T) {
	engine := newTestEngine(t)
	_, err := engine.ExecuteCommands(
		"SELECT id FROM (SELECT * FROM tests.data.customers) A, (SELECT * FROM tests.data.customers) B")
	require.True(t, sql.ErrAmbiguousColumnName.Is(err))
}
