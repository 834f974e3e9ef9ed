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

package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/chzyer/readline"

	csvsql "github.com/csvsql/go-csvsql"
)

var completionWords = []string{
	"SELECT", "UPDATE", "DELETE", "INSERT", "FROM", "WHERE", "GROUP BY",
	"HAVING", "ORDER BY", "LIMIT", "CREATE", "DROP", "TEMPORARY",
}

// RunConsole is the interactive REPL with line editing, history and SQL
// keyword completion. A line ending in `\` continues on the next line; a
// failing statement prints its error and the loop goes on.
func RunConsole(engine *csvsql.Engine, out Outputer) error {
	items := make([]readline.PrefixCompleterInterface, 0, len(completionWords))
	for _, word := range completionWords {
		items = append(items, readline.PcItem(word))
	}

	config := &readline.Config{
		Prompt:       engine.Prompt(),
		AutoComplete: readline.NewPrefixCompleter(items...),
	}
	if history, err := xdg.DataFile("csvsql/history"); err == nil {
		config.HistoryFile = history
	}
	rl, err := readline.NewEx(config)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		command, err := readCommand(rl)
		switch err {
		case nil:
		case readline.ErrInterrupt, io.EOF:
			return nil
		default:
			return err
		}
		if strings.TrimSpace(command) == "" {
			continue
		}
		execute(engine, out, command)
	}
}

// readCommand collects continuation lines: a trailing `\<newline>` becomes
// a newline in the command.
func readCommand(rl *readline.Instance) (string, error) {
	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for strings.HasSuffix(line, "\\") {
		sb.WriteString(strings.TrimSuffix(line, "\\"))
		sb.WriteString("\n")
		rl.SetPrompt("... ")
		line, err = rl.Readline()
		if err != nil {
			return "", err
		}
	}
	rl.SetPrompt(rl.Config.Prompt)
	sb.WriteString(line)
	return sb.String(), nil
}

// RunPlainConsole reads statements from a plain reader, for pipes and
// --no-console mode.
func RunPlainConsole(engine *csvsql.Engine, in io.Reader, out Outputer) error {
	scanner := bufio.NewScanner(in)
	var pending strings.Builder
	for {
		if pending.Len() == 0 {
			fmt.Print(engine.Prompt())
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if strings.HasSuffix(line, "\\") {
			pending.WriteString(strings.TrimSuffix(line, "\\"))
			pending.WriteString("\n")
			continue
		}
		pending.WriteString(line)
		command := pending.String()
		pending.Reset()
		if strings.TrimSpace(command) == "" {
			continue
		}
		execute(engine, out, command)
	}
}

func execute(engine *csvsql.Engine, out Outputer, command string) {
	executions, err := engine.ExecuteCommands(command)
	for i := range executions {
		message, werr := out.Write(&executions[i])
		if werr != nil {
			fmt.Fprintf(os.Stderr, "Got error: %v\n", werr)
			continue
		}
		if message != "" {
			fmt.Println(message)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Got error: %v\n", err)
	}
}
