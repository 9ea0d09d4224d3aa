package lexer

import (
	"moss/internal/token"
	"strconv"
	"strings"
)

// delimiters are recognized even when not separated from adjacent
// characters by whitespace, so they are padded before splitting.
var delimiters = strings.NewReplacer(
	"(", " ( ",
	")", " ) ",
	"'", " ' ",
)

// Tokenize converts source text into a flat token sequence. Every input
// produces some sequence, possibly empty; there are no lexical errors.
func Tokenize(input string) []token.Token {
	words := strings.Fields(delimiters.Replace(input))

	tokens := make([]token.Token, 0, len(words))
	for _, word := range words {
		tokens = append(tokens, classify(word))
	}
	return tokens
}

func classify(word string) token.Token {
	switch word {
	case "(":
		return token.Token{Type: token.LPAREN, Literal: word}
	case ")":
		return token.Token{Type: token.RPAREN, Literal: word}
	case "'":
		return token.Token{Type: token.QUOTE, Literal: word}
	}
	if _, err := strconv.ParseInt(word, 10, 64); err == nil {
		return token.Token{Type: token.INT, Literal: word}
	}
	return token.Token{Type: token.SYMBOL, Literal: word}
}
