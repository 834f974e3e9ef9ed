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
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	csvsql "github.com/csvsql/go-csvsql"
	"github.com/csvsql/go-csvsql/sql"
)

const sqlsSheet = "sqls"

// xlsxOutputer collects every statement into a single workbook: a `sqls`
// sheet indexes the statements, each statement fills a `Results N` sheet.
type xlsxOutputer struct {
	file  *excelize.File
	path  string
	count int

	dateStyle int
	timeStyle int
	boldStyle int
}

func newXlsxOutputer(target string) (*xlsxOutputer, error) {
	switch ext := filepath.Ext(target); ext {
	case "":
		target += ".xlsx"
	case ".xlsx":
	default:
		return nil, sql.ErrOutputCreation.New("file " + target + " must have xlsx extension")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sqlsSheet); err != nil {
		return nil, xlsxErr(err)
	}
	o := &xlsxOutputer{file: f, path: target}

	var err error
	o.boldStyle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, xlsxErr(err)
	}
	dateFormat := "yyyy-mm-dd"
	o.dateStyle, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFormat})
	if err != nil {
		return nil, xlsxErr(err)
	}
	timeFormat := "yyyy-mm-dd HH:MM:SS"
	o.timeStyle, err = f.NewStyle(&excelize.Style{CustomNumFmt: &timeFormat})
	if err != nil {
		return nil, xlsxErr(err)
	}

	if err := f.SetCellValue(sqlsSheet, "A1", "SQL"); err != nil {
		return nil, xlsxErr(err)
	}
	if err := f.SetCellValue(sqlsSheet, "B1", "Sheet"); err != nil {
		return nil, xlsxErr(err)
	}
	if err := f.SetCellStyle(sqlsSheet, "A1", "B1", o.boldStyle); err != nil {
		return nil, xlsxErr(err)
	}
	if err := f.SetColWidth(sqlsSheet, "A", "A", 65); err != nil {
		return nil, xlsxErr(err)
	}
	return o, nil
}

func xlsxErr(err error) error {
	return sql.ErrOutputCreation.New("xlsx error: " + err.Error())
}

func (o *xlsxOutputer) Write(execution *csvsql.CommandExecution) (string, error) {
	o.count++
	sheet := "Results " + strconv.Itoa(o.count)
	if _, err := o.file.NewSheet(sheet); err != nil {
		return "", xlsxErr(err)
	}

	row := strconv.Itoa(o.count + 1)
	if err := o.file.SetCellValue(sqlsSheet, "A"+row, execution.SQL); err != nil {
		return "", xlsxErr(err)
	}
	if err := o.file.SetCellValue(sqlsSheet, "B"+row, sheet); err != nil {
		return "", xlsxErr(err)
	}

	rs := execution.Results
	widths := make([]int, len(rs.Columns()))
	for i, col := range rs.Columns() {
		title := sql.ColumnTitle(rs.Metadata, col)
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := o.file.SetCellValue(sheet, cell, title); err != nil {
			return "", xlsxErr(err)
		}
		if err := o.file.SetCellStyle(sheet, cell, cell, o.boldStyle); err != nil {
			return "", xlsxErr(err)
		}
		widths[i] = len(title)
	}

	for r, dataRow := range rs.Data {
		for i, col := range rs.Columns() {
			value := dataRow.Get(col)
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			if err := o.writeCell(sheet, cell, value); err != nil {
				return "", err
			}
			if w := len(value.String()); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, w := range widths {
		if w < 8 {
			w = 8
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := o.file.SetColWidth(sheet, name, name, float64(w)); err != nil {
			return "", xlsxErr(err)
		}
	}

	if err := o.file.SaveAs(o.path); err != nil {
		return "", xlsxErr(err)
	}
	return fmt.Sprintf("Sheet was added to %s", o.path), nil
}

func (o *xlsxOutputer) writeCell(sheet, cell string, value sql.Value) error {
	switch value.Kind() {
	case sql.KindEmpty:
		return nil
	case sql.KindBool:
		b, _ := value.Bool()
		return xlsxWrap(o.file.SetCellBool(sheet, cell, b))
	case sql.KindNumber:
		n, _ := value.Number()
		f, _ := n.Float64()
		return xlsxWrap(o.file.SetCellFloat(sheet, cell, f, -1, 64))
	case sql.KindDate:
		t, _ := value.Time()
		if err := xlsxWrap(o.file.SetCellValue(sheet, cell, t)); err != nil {
			return err
		}
		return xlsxWrap(o.file.SetCellStyle(sheet, cell, cell, o.dateStyle))
	case sql.KindTimestamp:
		t, _ := value.Time()
		if err := xlsxWrap(o.file.SetCellValue(sheet, cell, t)); err != nil {
			return err
		}
		return xlsxWrap(o.file.SetCellStyle(sheet, cell, cell, o.timeStyle))
	default:
		return xlsxWrap(o.file.SetCellValue(sheet, cell, value.String()))
	}
}

func xlsxWrap(err error) error {
	if err != nil {
		return xlsxErr(err)
	}
	return nil
}

