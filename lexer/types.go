package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenList             // Open parenthesis: "("
	TokenCloseList            // Close parenthesis: ")"
	TokenWhitespace           // Space, tab, linefeed or carriage return
	TokenAtom                 // Anything else, up to the next break
	TokenEOF                  // End of input
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:   {'('},
	TokenCloseList:  {')'},
	TokenWhitespace: []rune(" \t\n\r"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenList:   "open_list",
	TokenCloseList:  "close_list",
	TokenWhitespace: "whitespace",
	TokenAtom:       "atom",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

// IsWhitespace reports whether r separates atoms.
func IsWhitespace(r rune) bool {
	return isWhitespace(r)
}

// IsBreak reports whether r ends an atom.
func IsBreak(r rune) bool {
	return isWhitespace(r) || isOpenList(r) || isCloseList(r)
}
