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

// Package csvsql is an interactive SQL engine over a directory of CSV
// files: each file is a table, each subdirectory a schema.
package csvsql

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/csvsql/go-csvsql/sql"
	"github.com/csvsql/go-csvsql/sql/parse"
	"github.com/csvsql/go-csvsql/sql/plan"
)

// Config for the Engine.
type Config struct {
	// Home is the directory whose files are the tables; defaults to the
	// working directory.
	Home string
	// FirstLineAsData treats the first record of every file as data and
	// names columns A$, B$, ...
	FirstLineAsData bool
	// WriterMode enables mutation statements.
	WriterMode bool
	// Logger overrides the standard logger.
	Logger *logrus.Entry
}

// Engine executes SQL statements against the home directory. It holds one
// session; statements execute synchronously in submission order.
type Engine struct {
	rt     *sql.Runtime
	logger *logrus.Entry
}

// CommandExecution pairs a statement's original SQL with its result, the
// shape every output renderer consumes.
type CommandExecution struct {
	SQL     string
	Results *sql.ResultSet
}

// New creates an engine for the given configuration.
func New(cfg Config) (*Engine, error) {
	home := cfg.Home
	if home == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		home = wd
	}
	home, err := filepath.Abs(home)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger().WithField("component", "engine")
	}
	rt := sql.NewRuntime(home, !cfg.FirstLineAsData, cfg.WriterMode, sql.NewSession())
	return &Engine{rt: rt, logger: logger}, nil
}

// SetStdin provides the reader behind the `$` pseudo-table.
func (e *Engine) SetStdin(r io.Reader) { e.rt.Session.SetStdin(r) }

// ExecuteCommands parses a command string and extracts each statement in
// order. The first failing statement aborts the remainder of the string;
// completed results are returned alongside the error.
func (e *Engine) ExecuteCommands(commands string) ([]CommandExecution, error) {
	return e.ExecuteCommandsContext(context.Background(), commands)
}

func (e *Engine) ExecuteCommandsContext(parent context.Context, commands string) ([]CommandExecution, error) {
	statements, err := parse.Parse(commands)
	if err != nil {
		return nil, err
	}
	ctx := sql.NewContext(parent, sql.WithLogger(e.logger))

	var executions []CommandExecution
	for _, stmt := range statements {
		e.logger.WithField("sql", stmt.Text()).Debug("executing statement")
		results, err := plan.Extract(ctx, e.rt, stmt)
		if err != nil {
			return executions, err
		}
		executions = append(executions, CommandExecution{SQL: stmt.Text(), Results: results})
	}
	return executions, nil
}

// Prompt is the REPL prompt: the home directory's base name.
func (e *Engine) Prompt() string {
	return filepath.Base(e.rt.Home) + "> "
}

// Home returns the engine's home directory.
func (e *Engine) Home() string { return e.rt.Home }

// Close releases session temp tables and any stdin materialization.
func (e *Engine) Close() error {
	e.rt.Session.Close()
	return nil
}
