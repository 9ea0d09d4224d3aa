package lexer

import (
	"moss/internal/token"
	"testing"
)

func TestTokenize(t *testing.T) {
	input := `(define mulK
	(lambda (x)
		(* x -7)))
(mulK '(1 22 333))`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LPAREN, "("},
		{token.SYMBOL, "define"},
		{token.SYMBOL, "mulK"},
		{token.LPAREN, "("},
		{token.SYMBOL, "lambda"},
		{token.LPAREN, "("},
		{token.SYMBOL, "x"},
		{token.RPAREN, ")"},
		{token.LPAREN, "("},
		{token.SYMBOL, "*"},
		{token.SYMBOL, "x"},
		{token.INT, "-7"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
		{token.LPAREN, "("},
		{token.SYMBOL, "mulK"},
		{token.QUOTE, "'"},
		{token.LPAREN, "("},
		{token.INT, "1"},
		{token.INT, "22"},
		{token.INT, "333"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
	}

	tokens := Tokenize(input)

	if len(tokens) != len(tests) {
		t.Fatalf("wrong number of tokens. expected=%d, got=%d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q '%q', got=%q: '%q'",
				i, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenizeOperatorSymbols(t *testing.T) {
	input := `(+ - * / < > == !=)`

	expected := []token.TokenType{
		token.LPAREN,
		token.SYMBOL, token.SYMBOL, token.SYMBOL, token.SYMBOL,
		token.SYMBOL, token.SYMBOL, token.SYMBOL, token.SYMBOL,
		token.RPAREN,
	}

	tokens := Tokenize(input)

	if len(tokens) != len(expected) {
		t.Fatalf("wrong number of tokens. expected=%d, got=%d", len(expected), len(tokens))
	}

	for i, want := range expected {
		if tokens[i].Type != want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q: '%q'",
				i, want, tokens[i].Type, tokens[i].Literal)
		}
	}
}

func TestTokenizeIntegerBoundaries(t *testing.T) {
	tests := []struct {
		word         string
		expectedType token.TokenType
	}{
		{"0", token.INT},
		{"+5", token.INT},
		{"-5", token.INT},
		{"9223372036854775807", token.INT},
		{"-9223372036854775808", token.INT},
		// overflows int64, falls back to a symbol like any other word
		{"9223372036854775808", token.SYMBOL},
		{"1.5", token.SYMBOL},
		{"x1", token.SYMBOL},
	}

	for _, tt := range tests {
		tokens := Tokenize(tt.word)
		if len(tokens) != 1 {
			t.Fatalf("Tokenize(%q) - wrong number of tokens. expected=1, got=%d", tt.word, len(tokens))
		}
		if tokens[0].Type != tt.expectedType {
			t.Fatalf("Tokenize(%q) - tokentype wrong. expected=%q, got=%q",
				tt.word, tt.expectedType, tokens[0].Type)
		}
		if tokens[0].Literal != tt.word {
			t.Fatalf("Tokenize(%q) - literal wrong. expected=%q, got=%q",
				tt.word, tt.word, tokens[0].Literal)
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t \n"} {
		tokens := Tokenize(input)
		if len(tokens) != 0 {
			t.Fatalf("Tokenize(%q) - expected no tokens, got=%d", input, len(tokens))
		}
	}
}

func TestTokenizeUnseparatedDelimiters(t *testing.T) {
	input := `(car'(1))`

	expected := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LPAREN, "("},
		{token.SYMBOL, "car"},
		{token.QUOTE, "'"},
		{token.LPAREN, "("},
		{token.INT, "1"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
	}

	tokens := Tokenize(input)

	if len(tokens) != len(expected) {
		t.Fatalf("wrong number of tokens. expected=%d, got=%d", len(expected), len(tokens))
	}

	for i, tt := range expected {
		if tokens[i].Type != tt.expectedType || tokens[i].Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - token wrong. expected=%q %q, got=%q %q",
				i, tt.expectedType, tt.expectedLiteral, tokens[i].Type, tokens[i].Literal)
		}
	}
}
