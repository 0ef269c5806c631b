package sexp

import (
	"fmt"
	"io"
	"strings"
)

// Parse reads all top-level S-expressions from r.
func Parse(r io.Reader) ([]Node, error) {
	p := &parser{lexer: newLexer(r)}
	return p.parseAll()
}

// ParseString parses S-expressions from a string.
func ParseString(s string) ([]Node, error) {
	return Parse(strings.NewReader(s))
}

// ParseOne parses input that must contain exactly one top-level list,
// which is the shape of every KiCad document file.
func ParseOne(r io.Reader) (*List, error) {
	nodes, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	if len(nodes) > 1 {
		return nil, fmt.Errorf("expected a single top-level expression, found %d", len(nodes))
	}
	root, ok := nodes[0].(*List)
	if !ok {
		return nil, fmt.Errorf("expected a list at top level, got atom %s", nodes[0])
	}
	return root, nil
}

type parser struct {
	lexer   *lexer
	current token
}

func (p *parser) parseAll() ([]Node, error) {
	var result []Node

	tok, err := p.lexer.next()
	if err != nil {
		return nil, err
	}
	p.current = tok

	for p.current.typ != tokenEOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		result = append(result, expr)

		tok, err := p.lexer.next()
		if err != nil {
			return nil, err
		}
		p.current = tok
	}

	return result, nil
}

func (p *parser) parseExpr() (Node, error) {
	switch p.current.typ {
	case tokenLeftParen:
		return p.parseList()

	case tokenSymbol:
		return Symbol(p.current.value), nil

	case tokenString:
		return String(p.current.value), nil

	case tokenRightParen:
		return nil, fmt.Errorf("line %d: unexpected ')'", p.current.line)

	default:
		return nil, fmt.Errorf("line %d: unexpected end of input", p.current.line)
	}
}

func (p *parser) parseList() (Node, error) {
	openLine := p.current.line
	var items []Node

	for {
		tok, err := p.lexer.next()
		if err != nil {
			return nil, err
		}
		p.current = tok

		if p.current.typ == tokenRightParen {
			break
		}

		if p.current.typ == tokenEOF {
			return nil, fmt.Errorf("line %d: unclosed list", openLine)
		}

		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &List{Items: items}, nil
}
