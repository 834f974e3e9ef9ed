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
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	csvsql "github.com/csvsql/go-csvsql"
	"github.com/csvsql/go-csvsql/sql"
)

const viewerFooter = "(Esc) quit | (↑) move up | (↓) move down"

// TableViewer renders each result in a full-screen scrollable table; it
// blocks until the user dismisses it.
type TableViewer struct{}

func NewTableViewer() *TableViewer { return &TableViewer{} }

func (v *TableViewer) Write(execution *csvsql.CommandExecution) (string, error) {
	app, err := newTableApp(execution.Results)
	if err != nil {
		return "", err
	}
	return "", app.run()
}

type tableApp struct {
	screen   tcell.Screen
	headers  []string
	data     [][]string
	widths   []int
	selected int
	top      int
}

func newTableApp(rs *sql.ResultSet) (*tableApp, error) {
	app := &tableApp{}
	for _, col := range rs.Columns() {
		title := sql.ColumnTitle(rs.Metadata, col)
		app.headers = append(app.headers, title)
		app.widths = append(app.widths, runewidth.StringWidth(title))
	}
	for _, row := range rs.Data {
		var line []string
		for i, col := range rs.Columns() {
			cell := row.Get(col).String()
			if w := runewidth.StringWidth(cell); w > app.widths[i] {
				app.widths[i] = w
			}
			line = append(line, cell)
		}
		app.data = append(app.data, line)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	app.screen = screen
	return app, nil
}

func (app *tableApp) run() error {
	defer app.screen.Fini()
	for {
		app.draw()
		switch ev := app.screen.PollEvent().(type) {
		case *tcell.EventResize:
			app.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				app.move(1)
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				app.move(-1)
			case ev.Key() == tcell.KeyPgDn:
				app.move(20)
			case ev.Key() == tcell.KeyPgUp:
				app.move(-20)
			case ev.Key() == tcell.KeyHome:
				app.selected = 0
			case ev.Key() == tcell.KeyEnd:
				app.selected = len(app.data) - 1
			}
		}
	}
}

func (app *tableApp) move(delta int) {
	app.selected += delta
	if app.selected < 0 {
		app.selected = 0
	}
	if app.selected >= len(app.data) {
		app.selected = len(app.data) - 1
	}
	if app.selected < 0 {
		app.selected = 0
	}
}

func (app *tableApp) draw() {
	app.screen.Clear()
	width, height := app.screen.Size()

	headerStyle := tcell.StyleDefault.Bold(true).Reverse(true)
	selectedStyle := tcell.StyleDefault.Reverse(true)

	app.drawLine(0, app.headers, headerStyle, width)

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	if app.selected < app.top {
		app.top = app.selected
	}
	if app.selected >= app.top+visible {
		app.top = app.selected - visible + 1
	}
	for i := 0; i < visible && app.top+i < len(app.data); i++ {
		style := tcell.StyleDefault
		if app.top+i == app.selected {
			style = selectedStyle
		}
		app.drawLine(i+1, app.data[app.top+i], style, width)
	}

	app.drawText(0, height-1, viewerFooter, tcell.StyleDefault.Dim(true), width)
	app.screen.Show()
}

func (app *tableApp) drawLine(y int, cells []string, style tcell.Style, maxWidth int) {
	x := 0
	for i, cell := range cells {
		text := runewidth.FillRight(cell, app.widths[i]+1)
		x = app.drawTextAt(x, y, text, style, maxWidth)
		if x >= maxWidth {
			return
		}
	}
}

func (app *tableApp) drawText(x, y int, text string, style tcell.Style, maxWidth int) {
	app.drawTextAt(x, y, text, style, maxWidth)
}

func (app *tableApp) drawTextAt(x, y int, text string, style tcell.Style, maxWidth int) int {
	for _, r := range text {
		if x >= maxWidth {
			return x
		}
		app.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
