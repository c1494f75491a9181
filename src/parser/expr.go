package parser

import (
	"fmt"

	"slc/src/ast"
	"slc/src/common"
	"slc/src/lexer"
)

// parseExpr parses an equality-level expression: the lowest precedence
// the language has (equality < additive < multiplicative < primary).
func (p *parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinOp
		switch p.peek().Type {
		case lexer.DoubleEqual:
			op = ast.OpEquals
		case lexer.NotEqual:
			op = ast.OpNotEquals
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinOp
		switch p.peek().Type {
		case lexer.Plus:
			op = ast.OpPlus
		case lexer.Dash:
			op = ast.OpMinus
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == lexer.Star {
		p.next()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = ast.Binary{Op: ast.OpTimes, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	t := p.peek()
	switch t.Type {
	case lexer.Integer:
		p.next()
		return ast.Lit{Value: common.Literal{Kind: common.LitInt, Int: t.Int}}, nil
	case lexer.String:
		p.next()
		return ast.Lit{Value: common.Literal{Kind: common.LitString, Str: t.Text}}, nil
	case lexer.Identifier:
		p.next()
		if p.peek().Type == lexer.LeftParen {
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			return ast.Call{Name: t.Text, Args: args}, nil
		}
		return ast.Name{Value: t.Text}, nil
	case lexer.LeftParen:
		p.next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RightParen); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("parser: expected an expression, got %s (%q)", t.Type, t.Text)
	}
}

func (p *parser) parseCallArgs() ([]ast.Expr, error) {
	if _, err := p.expect(lexer.LeftParen); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if p.peek().Type != lexer.RightParen {
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, e)
			if p.peek().Type != lexer.Comma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(lexer.RightParen); err != nil {
		return nil, err
	}
	return args, nil
}
