package parser

import (
	"fmt"
	"strconv"

	"github.com/edwingeng/deque"

	"moss/internal/object"
	"moss/internal/token"
)

// Parser consumes a token sequence from the front of a deque and builds one
// rooted list expression. A nested list re-enters parseList with its opening
// paren pushed back, so the stream itself carries the descent state.
type Parser struct {
	stream deque.Deque
}

func New(tokens []token.Token) *Parser {
	stream := deque.NewDeque()
	for _, tok := range tokens {
		stream.PushBack(tok)
	}
	return &Parser{stream: stream}
}

// ParseProgram parses the first top-level form in the stream and returns it.
// Tokens after that form are not consumed; programs made of several forms
// wrap them in a single (progn ...). The stream must open with a left paren.
func (p *Parser) ParseProgram() (*object.List, error) {
	return p.parseList()
}

func (p *Parser) parseList() (*object.List, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("expected (, found end of input")
	}
	if tok.Type != token.LPAREN {
		return nil, fmt.Errorf("expected (, found %q", tok.Literal)
	}

	list := &object.List{}
	for {
		tok, ok := p.next()
		if !ok {
			// Tokens ran out before the matching paren; the partial
			// list stands as if it had been closed.
			return list, nil
		}

		switch tok.Type {
		case token.INT:
			n, err := parseInteger(tok)
			if err != nil {
				return nil, err
			}
			list.Elements = append(list.Elements, n)
		case token.SYMBOL:
			list.Elements = append(list.Elements, &object.Symbol{Name: tok.Literal})
		case token.LPAREN:
			p.stream.PushFront(tok)
			sub, err := p.parseList()
			if err != nil {
				return nil, err
			}
			list.Elements = append(list.Elements, sub)
		case token.RPAREN:
			return list, nil
		case token.QUOTE:
			quoted, ok, err := p.parseQuoted()
			if err != nil {
				return nil, err
			}
			if ok {
				list.Elements = append(list.Elements, quoted)
			}
			// A quote marker at the end of the input disappears.
		default:
			return nil, fmt.Errorf("unexpected token %q", tok.Literal)
		}
	}
}

// parseQuoted consumes exactly the next token (or nested parenthesized form)
// after a quote marker and rewrites it as (quote X). The second return is
// false when the marker had nothing after it.
func (p *Parser) parseQuoted() (*object.List, bool, error) {
	tok, ok := p.next()
	if !ok {
		return nil, false, nil
	}

	var quoted object.Object
	switch tok.Type {
	case token.INT:
		n, err := parseInteger(tok)
		if err != nil {
			return nil, false, err
		}
		quoted = n
	case token.SYMBOL:
		quoted = &object.Symbol{Name: tok.Literal}
	case token.LPAREN:
		p.stream.PushFront(tok)
		sub, err := p.parseList()
		if err != nil {
			return nil, false, err
		}
		quoted = sub
	default:
		return nil, false, fmt.Errorf("invalid quote before %q", tok.Literal)
	}

	return &object.List{Elements: []object.Object{
		&object.Symbol{Name: "quote"},
		quoted,
	}}, true, nil
}

func (p *Parser) next() (token.Token, bool) {
	if p.stream.Empty() {
		return token.Token{}, false
	}
	return p.stream.PopFront().(token.Token), true
}

func parseInteger(tok token.Token) (*object.Integer, error) {
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q as integer", tok.Literal)
	}
	return &object.Integer{Value: value}, nil
}
