package token

type TokenType string

const (
	// Literals + identifiers
	INT    = "INT"    // 42, -17
	SYMBOL = "SYMBOL" // map, x, +, ==, ...

	// Delimiters
	LPAREN = "("
	RPAREN = ")"
	QUOTE  = "'"
)

type Token struct {
	Type    TokenType
	Literal string
}
