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

// niladicFunctions may appear without parentheses.
var niladicFunctions = map[string]bool{
	"CURRENT_DATE": true, "CURRENT_TIME": true, "CURRENT_TIMESTAMP": true,
	"CURRENT_USER": true, "LOCALTIME": true, "LOCALTIMESTAMP": true,
	"USER": true,
}

func (p *parser) parseExpr() (Expr, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.acceptKeyword("OR") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Keyword("AND") {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNot() (Expr, error) {
	// NOT before a predicate; NOT BETWEEN / NOT IN / NOT LIKE are handled
	// inside parsePredicate.
	if p.cur().Keyword("NOT") {
		next := p.peekAt(1)
		if !next.Keyword("BETWEEN") && !next.Keyword("IN") && !next.Keyword("LIKE") {
			p.advance()
			expr, err := p.parseNot()
			if err != nil {
				return nil, err
			}
			return &Not{Expr: expr}, nil
		}
	}
	return p.parsePredicate()
}

func (p *parser) parsePredicate() (Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		switch {
		case t.Keyword("IS"):
			p.advance()
			negated := p.acceptKeyword("NOT")
			if !p.acceptKeyword("NULL") {
				return nil, sql.ErrParser.New("expected NULL after IS")
			}
			left = &IsNull{Expr: left, Negated: negated}
		case t.Keyword("NOT") || t.Keyword("BETWEEN") || t.Keyword("IN") || t.Keyword("LIKE"):
			negated := p.acceptKeyword("NOT")
			switch {
			case p.acceptKeyword("BETWEEN"):
				low, err := p.parseAdditive()
				if err != nil {
					return nil, err
				}
				if err := p.expectKeyword("AND"); err != nil {
					return nil, err
				}
				high, err := p.parseAdditive()
				if err != nil {
					return nil, err
				}
				left = &Between{Expr: left, Low: low, High: high, Negated: negated}
			case p.acceptKeyword("IN"):
				in, err := p.parseInTail(left, negated)
				if err != nil {
					return nil, err
				}
				left = in
			case p.acceptKeyword("LIKE"):
				pattern, err := p.parseAdditive()
				if err != nil {
					return nil, err
				}
				left = &Like{Expr: left, Pattern: pattern, Negated: negated}
			default:
				return nil, sql.ErrParser.New("expected BETWEEN, IN or LIKE after NOT")
			}
		case t.Type == TokenEq || t.Type == TokenNeq || t.Type == TokenLt ||
			t.Type == TokenLte || t.Type == TokenGt || t.Type == TokenGte:
			p.advance()
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: comparisonOp(t.Type), Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

func comparisonOp(t TokenType) BinaryOp {
	switch t {
	case TokenEq:
		return OpEq
	case TokenNeq:
		return OpNeq
	case TokenLt:
		return OpLt
	case TokenLte:
		return OpLte
	case TokenGt:
		return OpGt
	default:
		return OpGte
	}
}

func (p *parser) parseInTail(left Expr, negated bool) (Expr, error) {
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	if p.cur().Keyword("SELECT") {
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return &InSubquery{Expr: left, Select: sel, Negated: negated}, nil
	}
	var list []Expr
	for {
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, item)
		if !p.accept(TokenComma) {
			break
		}
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}
	return &InList{Expr: left, List: list, Negated: negated}, nil
}

func (p *parser) parseAdditive() (Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch p.cur().Type {
		case TokenPlus:
			op = OpPlus
		case TokenMinus:
			op = OpMinus
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseMultiplicative() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch p.cur().Type {
		case TokenStar:
			op = OpMul
		case TokenSlash:
			op = OpDiv
		case TokenPercent:
			op = OpMod
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	switch p.cur().Type {
	case TokenMinus:
		p.advance()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Minus: true, Expr: expr}, nil
	case TokenPlus:
		p.advance()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.cur()
	switch t.Type {
	case TokenNumber:
		p.advance()
		return &Literal{Kind: LiteralNumber, Value: t.Text, Raw: t.Raw}, nil
	case TokenString:
		p.advance()
		return &Literal{Kind: LiteralString, Value: t.Text, Raw: t.Raw}, nil
	case TokenLParen:
		p.advance()
		if p.cur().Keyword("SELECT") {
			sel, err := p.parseSelect()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenRParen, "')'"); err != nil {
				return nil, err
			}
			return &Subquery{Select: sel}, nil
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case TokenQuotedIdent:
		return p.parseColumnOrCall()
	case TokenIdent:
		switch {
		case t.Keyword("TRUE"):
			p.advance()
			return &Literal{Kind: LiteralBool, Value: "TRUE", Raw: t.Raw}, nil
		case t.Keyword("FALSE"):
			p.advance()
			return &Literal{Kind: LiteralBool, Value: "FALSE", Raw: t.Raw}, nil
		case t.Keyword("NULL"):
			p.advance()
			return &Literal{Kind: LiteralNull, Value: "", Raw: t.Raw}, nil
		case t.Keyword("CASE"):
			return p.parseCase()
		case t.Keyword("CAST") || t.Keyword("TRY_CAST"):
			return p.parseCast()
		case t.Keyword("EXTRACT"):
			return p.parseExtract()
		}
		return p.parseColumnOrCall()
	}
	return nil, sql.ErrParser.New("unexpected token " + p.describe(t))
}

func (p *parser) parseColumnOrCall() (Expr, error) {
	t := p.cur()
	if t.Type == TokenIdent && p.peekAt(1).Type == TokenLParen {
		return p.parseFuncCall()
	}
	if t.Type == TokenIdent && niladicFunctions[strings.ToUpper(t.Text)] {
		p.advance()
		return &FuncCall{Name: strings.ToUpper(t.Text)}, nil
	}
	if t.Type == TokenIdent && isReserved(t.Text) {
		return nil, sql.ErrParser.New("unexpected keyword " + strings.ToUpper(t.Text))
	}
	parts, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	return &ColumnRef{Parts: parts}, nil
}

func (p *parser) parseFuncCall() (Expr, error) {
	name := strings.ToUpper(p.advance().Text)
	p.advance() // '('
	call := &FuncCall{Name: name}
	if p.accept(TokenRParen) {
		return call, nil
	}
	call.Distinct = p.acceptKeyword("DISTINCT")
	if p.accept(TokenStar) {
		if call.Distinct {
			return nil, sql.ErrUnsupported.New("DISTINCT with * argument")
		}
		call.Star = true
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return call, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if !p.accept(TokenComma) {
			break
		}
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *parser) parseCase() (Expr, error) {
	p.advance() // CASE
	c := &Case{}
	if !p.cur().Keyword("WHEN") {
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		c.Operand = operand
	}
	for p.acceptKeyword("WHEN") {
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("THEN"); err != nil {
			return nil, err
		}
		result, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		c.Whens = append(c.Whens, When{Cond: cond, Result: result})
	}
	if len(c.Whens) == 0 {
		return nil, sql.ErrParser.New("CASE without WHEN")
	}
	if p.acceptKeyword("ELSE") {
		els, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		c.Else = els
	}
	if err := p.expectKeyword("END"); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *parser) parseCast() (Expr, error) {
	p.advance() // CAST
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("AS"); err != nil {
		return nil, err
	}
	var typeParts []string
	for p.cur().Type == TokenIdent {
		typeParts = append(typeParts, p.advance().Text)
		if p.accept(TokenLParen) {
			for p.cur().Type == TokenNumber || p.cur().Type == TokenComma {
				p.advance()
			}
			if _, err := p.expect(TokenRParen, "')'"); err != nil {
				return nil, err
			}
		}
	}
	if len(typeParts) == 0 {
		return nil, sql.ErrParser.New("expected a type in CAST")
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}
	return &Cast{Expr: expr, Type: strings.Join(typeParts, " ")}, nil
}

func (p *parser) parseExtract() (Expr, error) {
	p.advance() // EXTRACT
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	field := p.cur()
	if field.Type != TokenIdent {
		return nil, sql.ErrParser.New("expected a field in EXTRACT")
	}
	p.advance()
	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}
	return &Extract{Field: strings.ToUpper(field.Text), Expr: expr}, nil
}
