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

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	csvsql "github.com/csvsql/go-csvsql"
	"github.com/csvsql/go-csvsql/internal/config"
	"github.com/csvsql/go-csvsql/output"
)

type options struct {
	Command         []string `short:"c" long:"command" description:"SQL command to execute. If omitted the engine reads commands from standard input; when set, standard input can be used as the table named '$'."`
	FirstLineAsData bool     `short:"f" long:"first-line-as-data" description:"Use excel like column names instead of reading them from the first line of the file."`
	Home            string   `short:"m" long:"home" description:"Home directory."`
	NoConsole       bool     `short:"n" long:"no-console" description:"Run with simple stdio."`
	Output          string   `short:"o" long:"output" description:"Output directory (or file for xls)."`
	OutputFormat    string   `short:"p" long:"output-format" choice:"csv" choice:"txt" choice:"html" choice:"json" choice:"xls" description:"The output format when output is set (default csv)."`
	DisplayAsCSV    bool     `short:"d" long:"display-as-csv" description:"Display output as CSV in console."`
	WriterMode      bool     `short:"w" long:"writer-mode" description:"Allow modifying files."`
	Verbose         bool     `short:"v" long:"verbose" description:"Verbose logging."`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Got error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	fileCfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	if opts.Home == "" {
		opts.Home = fileCfg.Home
	}
	if fileCfg.FirstLineAsData {
		opts.FirstLineAsData = true
	}
	if fileCfg.WriterMode {
		opts.WriterMode = true
	}
	if opts.OutputFormat == "" {
		opts.OutputFormat = fileCfg.OutputFormat
	}
	if opts.OutputFormat == "" {
		opts.OutputFormat = string(output.FormatCSV)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if fileCfg.LogLevel != "" && !opts.Verbose {
		if level, err := logrus.ParseLevel(fileCfg.LogLevel); err == nil {
			logger.SetLevel(level)
		}
	}

	engine, err := csvsql.New(csvsql.Config{
		Home:            opts.Home,
		FirstLineAsData: opts.FirstLineAsData,
		WriterMode:      opts.WriterMode,
		Logger:          logger.WithField("component", "engine"),
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	out, err := createOutputer(&opts)
	if err != nil {
		return err
	}

	if len(opts.Command) > 0 {
		engine.SetStdin(os.Stdin)
		for _, command := range opts.Command {
			executions, err := engine.ExecuteCommands(command)
			for i := range executions {
				message, werr := out.Write(&executions[i])
				if werr != nil {
					return werr
				}
				if message != "" {
					fmt.Println(message)
				}
			}
			if err != nil {
				return err
			}
		}
		return nil
	}

	if interactiveTerminal() && !opts.NoConsole {
		return output.RunConsole(engine, out)
	}
	return output.RunPlainConsole(engine, os.Stdin, out)
}

func createOutputer(opts *options) (output.Outputer, error) {
	if opts.Output != "" {
		return output.NewOutputer(output.Format(opts.OutputFormat), opts.Output)
	}
	if !opts.DisplayAsCSV && !opts.NoConsole && interactiveTerminal() {
		return output.NewTableViewer(), nil
	}
	return output.NewStdoutOutputer(), nil
}

func interactiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd())) &&
		term.IsTerminal(int(os.Stderr.Fd()))
}
