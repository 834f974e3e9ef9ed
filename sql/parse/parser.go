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

package parse

import (
	"strings"

	"github.com/csvsql/go-csvsql/sql"
)

type parser struct {
	input  string
	tokens []Token
	idx    int
}

// Parse splits a command string into statements and parses each one.
func Parse(input string) ([]Statement, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, tokens: tokens}

	var statements []Statement
	for {
		for p.cur().Type == TokenSemicolon {
			p.advance()
		}
		if p.cur().Type == TokenEOF {
			return statements, nil
		}
		start := p.cur().Pos
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if t := p.cur(); t.Type != TokenSemicolon && t.Type != TokenEOF {
			return nil, sql.ErrParser.New("unexpected input: " + t.Raw)
		}
		end := p.tokens[p.idx-1].End
		stmt.(interface{ setText(string) }).setText(strings.TrimSpace(p.input[start:end]))
		statements = append(statements, stmt)
	}
}

func (p *parser) cur() Token { return p.tokens[p.idx] }

func (p *parser) peekAt(offset int) Token {
	i := p.idx + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) advance() Token {
	t := p.tokens[p.idx]
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
	return t
}

func (p *parser) accept(tt TokenType) bool {
	if p.cur().Type == tt {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(tt TokenType, what string) (Token, error) {
	if p.cur().Type != tt {
		return Token{}, sql.ErrParser.New("expected " + what + ", found " + p.describe(p.cur()))
	}
	return p.advance(), nil
}

func (p *parser) describe(t Token) string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return "'" + t.Raw + "'"
}

func (p *parser) acceptKeyword(word string) bool {
	if p.cur().Keyword(word) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expectKeyword(word string) error {
	if !p.acceptKeyword(word) {
		return sql.ErrParser.New("expected " + word + ", found " + p.describe(p.cur()))
	}
	return nil
}

func (p *parser) parseStatement() (Statement, error) {
	t := p.cur()
	switch {
	case t.Keyword("SELECT"):
		return p.parseSelect()
	case t.Keyword("INSERT"):
		return p.parseInsert()
	case t.Keyword("UPDATE"):
		return p.parseUpdate()
	case t.Keyword("DELETE"):
		return p.parseDelete()
	case t.Keyword("CREATE"):
		return p.parseCreate()
	case t.Keyword("DROP"):
		return p.parseDrop()
	case t.Keyword("ALTER"):
		return p.parseAlter()
	case t.Keyword("SHOW"):
		return p.parseShow()
	case t.Keyword("BEGIN"):
		p.advance()
		if !p.acceptKeyword("TRANSACTION") {
			p.acceptKeyword("WORK")
		}
		return &Begin{}, nil
	case t.Keyword("START"):
		p.advance()
		if err := p.expectKeyword("TRANSACTION"); err != nil {
			return nil, err
		}
		return &Begin{}, nil
	case t.Keyword("COMMIT"):
		p.advance()
		return &Commit{}, nil
	case t.Keyword("ROLLBACK"):
		p.advance()
		return &Rollback{}, nil
	case t.Keyword("WITH"):
		return nil, sql.ErrUnsupported.New("WITH queries")
	case t.Keyword("USE") || t.Keyword("SET") || t.Keyword("EXPLAIN") || t.Keyword("DESCRIBE"):
		return nil, sql.ErrUnsupported.New(strings.ToUpper(t.Text) + " statements")
	default:
		return nil, sql.ErrParser.New("unexpected statement start: " + p.describe(t))
	}
}

func (p *parser) parseSelect() (*Select, error) {
	if err := p.expectKeyword("SELECT"); err != nil {
		return nil, err
	}
	sel := &Select{}
	if p.cur().Keyword("ALL") {
		return nil, sql.ErrUnsupported.New("SELECT ALL")
	}
	sel.Distinct = p.acceptKeyword("DISTINCT")

	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		sel.Projection = append(sel.Projection, item)
		if !p.accept(TokenComma) {
			break
		}
		// trailing comma before FROM or end of statement
		if t := p.cur(); t.Type == TokenEOF || t.Type == TokenSemicolon || t.Keyword("FROM") {
			break
		}
	}

	if p.acceptKeyword("FROM") {
		for {
			table, err := p.parseTableWithJoins()
			if err != nil {
				return nil, err
			}
			sel.From = append(sel.From, table)
			if !p.accept(TokenComma) {
				break
			}
		}
	}

	if p.acceptKeyword("WHERE") {
		where, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		sel.Where = where
	}

	if p.acceptKeyword("GROUP") {
		if err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		if p.cur().Keyword("ALL") {
			return nil, sql.ErrUnsupported.New("GROUP BY ALL")
		}
		for {
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			sel.GroupBy = append(sel.GroupBy, expr)
			if !p.accept(TokenComma) {
				break
			}
		}
	}

	if p.acceptKeyword("HAVING") {
		having, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		sel.Having = having
	}

	if p.acceptKeyword("ORDER") {
		if err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		for {
			item, err := p.parseOrderItem()
			if err != nil {
				return nil, err
			}
			sel.OrderBy = append(sel.OrderBy, item)
			if !p.accept(TokenComma) {
				break
			}
		}
	}

	if p.acceptKeyword("LIMIT") {
		first, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.accept(TokenComma) {
			second, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			sel.Offset = first
			sel.Limit = second
		} else {
			sel.Limit = first
		}
	}

	if p.acceptKeyword("OFFSET") {
		offset, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.acceptKeyword("ROWS") {
			p.acceptKeyword("ROW")
		}
		sel.Offset = offset
	}

	if t := p.cur(); t.Keyword("UNION") || t.Keyword("EXCEPT") || t.Keyword("INTERSECT") {
		return nil, sql.ErrUnsupported.New("UNION/EXCEPT/INTERSECT")
	}
	if t := p.cur(); t.Keyword("FETCH") || t.Keyword("FOR") || t.Keyword("INTO") {
		return nil, sql.ErrUnsupported.New("SELECT ... " + strings.ToUpper(t.Text))
	}
	return sel, nil
}

func (p *parser) parseSelectItem() (SelectItem, error) {
	if p.accept(TokenStar) {
		return &StarItem{}, nil
	}
	if t := p.cur(); t.Type == TokenIdent || t.Type == TokenQuotedIdent {
		// try `prefix.*` with backtracking
		save := p.idx
		var prefix []string
		for {
			t := p.cur()
			if t.Type != TokenIdent && t.Type != TokenQuotedIdent {
				break
			}
			prefix = append(prefix, t.Text)
			p.advance()
			if !p.accept(TokenDot) {
				break
			}
			if p.accept(TokenStar) {
				return &StarItem{Prefix: prefix}, nil
			}
		}
		p.idx = save
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	alias := p.parseOptionalAlias()
	return &ExprItem{Expr: expr, Alias: alias}, nil
}

func (p *parser) parseOptionalAlias() string {
	if p.acceptKeyword("AS") {
		t := p.cur()
		if t.Type == TokenIdent || t.Type == TokenQuotedIdent {
			p.advance()
			return t.Text
		}
		return ""
	}
	t := p.cur()
	if t.Type == TokenQuotedIdent || (t.Type == TokenIdent && !isReserved(t.Text)) {
		p.advance()
		return t.Text
	}
	return ""
}

func (p *parser) parseObjectName() ([]string, error) {
	var parts []string
	for {
		t := p.cur()
		if t.Type != TokenIdent && t.Type != TokenQuotedIdent {
			return nil, sql.ErrParser.New("expected identifier, found " + p.describe(t))
		}
		parts = append(parts, t.Text)
		p.advance()
		if !p.accept(TokenDot) {
			return parts, nil
		}
	}
}

func (p *parser) parseTableFactor() (TableFactor, error) {
	if p.accept(TokenLParen) {
		if !p.cur().Keyword("SELECT") {
			return nil, sql.ErrParser.New("expected subquery after '('")
		}
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return &SubqueryRef{Select: sel, Alias: p.parseOptionalAlias()}, nil
	}
	parts, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	return &TableRef{Parts: parts, Alias: p.parseOptionalAlias()}, nil
}

func (p *parser) parseTableWithJoins() (TableWithJoins, error) {
	relation, err := p.parseTableFactor()
	if err != nil {
		return TableWithJoins{}, err
	}
	table := TableWithJoins{Relation: relation}

	for {
		natural := p.acceptKeyword("NATURAL")
		kind, found := JoinInner, false
		switch {
		case p.acceptKeyword("CROSS"):
			kind, found = JoinCross, true
		case p.acceptKeyword("INNER"):
			found = true
		case p.acceptKeyword("LEFT"):
			p.acceptKeyword("OUTER")
			kind, found = JoinLeft, true
		case p.acceptKeyword("RIGHT"):
			p.acceptKeyword("OUTER")
			kind, found = JoinRight, true
		case p.acceptKeyword("FULL"):
			p.acceptKeyword("OUTER")
			kind, found = JoinFull, true
		case p.cur().Keyword("JOIN"):
			found = true
		}
		if !found && !natural {
			return table, nil
		}
		if err := p.expectKeyword("JOIN"); err != nil {
			return TableWithJoins{}, err
		}
		right, err := p.parseTableFactor()
		if err != nil {
			return TableWithJoins{}, err
		}
		join := Join{Kind: kind, Relation: right, Constraint: JoinConstraint{Natural: natural}}
		switch {
		case p.acceptKeyword("ON"):
			on, err := p.parseExpr()
			if err != nil {
				return TableWithJoins{}, err
			}
			join.Constraint.On = on
		case p.acceptKeyword("USING"):
			if _, err := p.expect(TokenLParen, "'('"); err != nil {
				return TableWithJoins{}, err
			}
			for {
				t := p.cur()
				if t.Type != TokenIdent && t.Type != TokenQuotedIdent {
					return TableWithJoins{}, sql.ErrParser.New("expected column name in USING")
				}
				p.advance()
				join.Constraint.Using = append(join.Constraint.Using, t.Text)
				if !p.accept(TokenComma) {
					break
				}
			}
			if _, err := p.expect(TokenRParen, "')'"); err != nil {
				return TableWithJoins{}, err
			}
		}
		table.Joins = append(table.Joins, join)
	}
}

func (p *parser) parseOrderItem() (OrderItem, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return OrderItem{}, err
	}
	item := OrderItem{Expr: expr, Asc: true}
	if p.acceptKeyword("DESC") {
		item.Asc = false
	} else {
		p.acceptKeyword("ASC")
	}
	if p.acceptKeyword("NULLS") {
		switch {
		case p.acceptKeyword("FIRST"):
			item.NullsFirst = true
		case p.acceptKeyword("LAST"):
			item.NullsFirst = false
		default:
			return OrderItem{}, sql.ErrParser.New("expected FIRST or LAST after NULLS")
		}
	}
	return item, nil
}

func (p *parser) parseInsert() (*Insert, error) {
	p.advance() // INSERT
	if p.cur().Keyword("IGNORE") {
		return nil, sql.ErrUnsupported.New("INSERT IGNORE")
	}
	if p.cur().Keyword("OVERWRITE") {
		return nil, sql.ErrUnsupported.New("INSERT OVERWRITE")
	}
	if err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	ins := &Insert{Table: name}

	if p.accept(TokenLParen) {
		for {
			t := p.cur()
			if t.Type != TokenIdent && t.Type != TokenQuotedIdent {
				return nil, sql.ErrParser.New("expected column name")
			}
			p.advance()
			ins.Columns = append(ins.Columns, t.Text)
			if !p.accept(TokenComma) {
				break
			}
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
	}

	switch {
	case p.acceptKeyword("VALUES"):
		source := &InsertSource{}
		for {
			if _, err := p.expect(TokenLParen, "'('"); err != nil {
				return nil, err
			}
			var row []Expr
			if !p.accept(TokenRParen) {
				for {
					expr, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					row = append(row, expr)
					if !p.accept(TokenComma) {
						break
					}
				}
				if _, err := p.expect(TokenRParen, "')'"); err != nil {
					return nil, err
				}
			}
			source.Values = append(source.Values, row)
			if !p.accept(TokenComma) {
				break
			}
		}
		ins.Source = source
	case p.cur().Keyword("SELECT"):
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		ins.Source = &InsertSource{Query: sel}
	}
	return ins, nil
}

func (p *parser) parseUpdate() (*Update, error) {
	p.advance() // UPDATE
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	upd := &Update{Table: name}
	if err := p.expectKeyword("SET"); err != nil {
		return nil, err
	}
	for {
		col, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenEq, "'='"); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		upd.Assignments = append(upd.Assignments, Assignment{Column: col, Value: value})
		if !p.accept(TokenComma) {
			break
		}
	}
	if p.acceptKeyword("WHERE") {
		where, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		upd.Where = where
	}
	return upd, nil
}

func (p *parser) parseDelete() (*Delete, error) {
	p.advance() // DELETE
	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	del := &Delete{}
	for {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		del.From = append(del.From, name)
		if !p.accept(TokenComma) {
			break
		}
	}
	if p.acceptKeyword("WHERE") {
		where, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		del.Where = where
	}
	if t := p.cur(); t.Keyword("LIMIT") || t.Keyword("ORDER") || t.Keyword("RETURNING") || t.Keyword("USING") {
		return nil, sql.ErrUnsupported.New("DELETE ... " + strings.ToUpper(t.Text))
	}
	return del, nil
}

// createExtensions is the enumerated set of CREATE TABLE extensions the
// engine refuses.
var createExtensions = []string{
	"EXTERNAL", "GLOBAL", "TRANSIENT", "VOLATILE", "ICEBERG",
}

func (p *parser) parseCreate() (Statement, error) {
	p.advance() // CREATE
	if p.cur().Keyword("OR") {
		return nil, sql.ErrUnsupported.New("CREATE OR REPLACE")
	}
	for _, ext := range createExtensions {
		if p.cur().Keyword(ext) {
			return nil, sql.ErrUnsupported.New("CREATE " + ext + " TABLE")
		}
	}
	create := &CreateTable{}
	if p.acceptKeyword("TEMPORARY") || p.acceptKeyword("TEMP") {
		create.Temporary = true
	}
	if !p.acceptKeyword("TABLE") {
		return nil, sql.ErrUnsupported.New("CREATE " + strings.ToUpper(p.cur().Text))
	}
	if p.cur().Keyword("IF") {
		p.advance()
		if err := p.expectKeyword("NOT"); err != nil {
			return nil, err
		}
		if err := p.expectKeyword("EXISTS"); err != nil {
			return nil, err
		}
		create.IfNotExists = true
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	create.Name = name

	switch {
	case p.accept(TokenLParen):
		for {
			def, err := p.parseColumnDef()
			if err != nil {
				return nil, err
			}
			create.Columns = append(create.Columns, def)
			if !p.accept(TokenComma) {
				break
			}
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
	case p.acceptKeyword("AS"):
		if !p.cur().Keyword("SELECT") {
			return nil, sql.ErrParser.New("expected SELECT after AS")
		}
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		create.Query = sel
	case p.cur().Keyword("SELECT"):
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		create.Query = sel
	case p.acceptKeyword("LIKE"):
		like, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		create.Like = like
	case p.acceptKeyword("CLONE"):
		clone, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		create.Clone = clone
	}

	if t := p.cur(); t.Type == TokenIdent {
		return nil, sql.ErrUnsupported.New("CREATE TABLE with " + strings.ToUpper(t.Text))
	}
	return create, nil
}

func (p *parser) parseColumnDef() (ColumnDef, error) {
	t := p.cur()
	if t.Type != TokenIdent && t.Type != TokenQuotedIdent {
		return ColumnDef{}, sql.ErrParser.New("expected column name, found " + p.describe(t))
	}
	p.advance()
	def := ColumnDef{Name: t.Text}

	var typeParts []string
	for p.cur().Type == TokenIdent {
		typeParts = append(typeParts, p.advance().Text)
		if p.accept(TokenLParen) {
			for p.cur().Type == TokenNumber || p.cur().Type == TokenComma {
				p.advance()
			}
			if _, err := p.expect(TokenRParen, "')'"); err != nil {
				return ColumnDef{}, err
			}
		}
	}
	if len(typeParts) == 0 {
		return ColumnDef{}, sql.ErrParser.New("expected a type for column " + def.Name)
	}
	def.Type = strings.Join(typeParts, " ")
	return def, nil
}

func (p *parser) parseDrop() (Statement, error) {
	p.advance() // DROP
	drop := &DropTable{}
	if p.acceptKeyword("TEMPORARY") || p.acceptKeyword("TEMP") {
		drop.Temporary = true
	}
	if !p.acceptKeyword("TABLE") {
		return nil, sql.ErrUnsupported.New("DROP " + strings.ToUpper(p.cur().Text))
	}
	if p.cur().Keyword("IF") {
		p.advance()
		if err := p.expectKeyword("EXISTS"); err != nil {
			return nil, err
		}
		drop.IfExists = true
	}
	for {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		drop.Names = append(drop.Names, name)
		if !p.accept(TokenComma) {
			break
		}
	}
	for {
		switch {
		case p.acceptKeyword("CASCADE"):
			drop.Cascade = true
		case p.acceptKeyword("RESTRICT"):
			drop.Restrict = true
		case p.acceptKeyword("PURGE"):
			drop.Purge = true
		default:
			return drop, nil
		}
	}
}

func (p *parser) parseAlter() (Statement, error) {
	p.advance() // ALTER
	if !p.acceptKeyword("TABLE") {
		return nil, sql.ErrUnsupported.New("ALTER " + strings.ToUpper(p.cur().Text))
	}
	alter := &AlterTable{}
	if p.cur().Keyword("IF") {
		p.advance()
		if err := p.expectKeyword("EXISTS"); err != nil {
			return nil, err
		}
		alter.IfExists = true
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	alter.Name = name

	for {
		op, err := p.parseAlterOp()
		if err != nil {
			return nil, err
		}
		alter.Ops = append(alter.Ops, op)
		if !p.accept(TokenComma) {
			return alter, nil
		}
	}
}

func (p *parser) parseAlterOp() (AlterOp, error) {
	switch {
	case p.acceptKeyword("ADD"):
		p.acceptKeyword("COLUMN")
		op := &AddColumn{}
		if p.cur().Keyword("IF") {
			p.advance()
			if err := p.expectKeyword("NOT"); err != nil {
				return nil, err
			}
			if err := p.expectKeyword("EXISTS"); err != nil {
				return nil, err
			}
			op.IfNotExists = true
		}
		def, err := p.parseAlterColumnDef()
		if err != nil {
			return nil, err
		}
		op.Def = def
		if t := p.cur(); t.Keyword("FIRST") || t.Keyword("AFTER") {
			return nil, sql.ErrUnsupported.New("ALTER TABLE ADD COLUMN with a position")
		}
		if t := p.cur(); t.Type == TokenIdent {
			return nil, sql.ErrUnsupported.New("ALTER TABLE ADD COLUMN with options")
		}
		return op, nil
	case p.acceptKeyword("DROP"):
		p.acceptKeyword("COLUMN")
		op := &DropColumn{}
		if p.cur().Keyword("IF") {
			p.advance()
			if err := p.expectKeyword("EXISTS"); err != nil {
				return nil, err
			}
			op.IfExists = true
		}
		t := p.cur()
		if t.Type != TokenIdent && t.Type != TokenQuotedIdent {
			return nil, sql.ErrParser.New("expected column name")
		}
		p.advance()
		op.Name = t.Text
		if t := p.cur(); t.Keyword("CASCADE") || t.Keyword("RESTRICT") {
			return nil, sql.ErrUnsupported.New("ALTER TABLE DROP COLUMN " + strings.ToUpper(t.Text))
		}
		return op, nil
	case p.acceptKeyword("RENAME"):
		if err := p.expectKeyword("COLUMN"); err != nil {
			return nil, err
		}
		from := p.cur()
		if from.Type != TokenIdent && from.Type != TokenQuotedIdent {
			return nil, sql.ErrParser.New("expected column name")
		}
		p.advance()
		if err := p.expectKeyword("TO"); err != nil {
			return nil, err
		}
		to := p.cur()
		if to.Type != TokenIdent && to.Type != TokenQuotedIdent {
			return nil, sql.ErrParser.New("expected column name")
		}
		p.advance()
		return &RenameColumn{From: from.Text, To: to.Text}, nil
	default:
		return nil, sql.ErrUnsupported.New("ALTER TABLE with operation " + strings.ToUpper(p.cur().Text))
	}
}

// parseAlterColumnDef parses a column definition without swallowing
// trailing option keywords into the type.
func (p *parser) parseAlterColumnDef() (ColumnDef, error) {
	t := p.cur()
	if t.Type != TokenIdent && t.Type != TokenQuotedIdent {
		return ColumnDef{}, sql.ErrParser.New("expected column name, found " + p.describe(t))
	}
	p.advance()
	def := ColumnDef{Name: t.Text}
	if p.cur().Type != TokenIdent {
		return ColumnDef{}, sql.ErrParser.New("expected a type for column " + def.Name)
	}
	def.Type = p.advance().Text
	if p.accept(TokenLParen) {
		for p.cur().Type == TokenNumber || p.cur().Type == TokenComma {
			p.advance()
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return ColumnDef{}, err
		}
	}
	if p.cur().Keyword("PRECISION") {
		def.Type += " " + p.advance().Text
	}
	return def, nil
}

func (p *parser) parseShow() (Statement, error) {
	p.advance() // SHOW
	show := &Show{}
	show.Full = p.acceptKeyword("FULL")
	switch {
	case p.acceptKeyword("TABLES"):
		show.Kind = ShowTables
	case p.acceptKeyword("DATABASES"):
		show.Kind = ShowDatabases
	default:
		return nil, sql.ErrUnsupported.New("SHOW " + strings.ToUpper(p.cur().Text))
	}
	return show, nil
}
