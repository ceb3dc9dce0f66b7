package css

import "fmt"

// TokenType identifies the kind of a lexical token.
type TokenType int

// CSS3 standard tokens. (§4)
const (
	IllegalToken TokenType = iota
	EOFToken

	IdentToken
	FunctionToken
	AtKeywordToken
	HashToken
	StringToken
	BadStringToken
	URLToken
	BadURLToken
	DelimToken
	NumberToken
	PercentageToken
	DimensionToken
	UnicodeRangeToken
	IncludeMatchToken
	DashMatchToken
	PrefixMatchToken
	SuffixMatchToken
	SubstringMatchToken
	ColumnToken
	WhitespaceToken
	CDOToken
	CDCToken
	ColonToken
	SemicolonToken
	CommaToken
	LBrackToken
	RBrackToken
	LParenToken
	RParenToken
	LBraceToken
	RBraceToken
)

var tokenNames = [...]string{
	IllegalToken:        "ILLEGAL",
	EOFToken:            "EOF",
	IdentToken:          "ident",
	FunctionToken:       "function",
	AtKeywordToken:      "at-keyword",
	HashToken:           "hash",
	StringToken:         "string",
	BadStringToken:      "bad-string",
	URLToken:            "url",
	BadURLToken:         "bad-url",
	DelimToken:          "delim",
	NumberToken:         "number",
	PercentageToken:     "percentage",
	DimensionToken:      "dimension",
	UnicodeRangeToken:   "unicode-range",
	IncludeMatchToken:   "include-match",
	DashMatchToken:      "dash-match",
	PrefixMatchToken:    "prefix-match",
	SuffixMatchToken:    "suffix-match",
	SubstringMatchToken: "substring-match",
	ColumnToken:         "column",
	WhitespaceToken:     "whitespace",
	CDOToken:            "CDO",
	CDCToken:            "CDC",
	ColonToken:          "colon",
	SemicolonToken:      "semicolon",
	CommaToken:          "comma",
	LBrackToken:         "[",
	RBrackToken:         "]",
	LParenToken:         "(",
	RParenToken:         ")",
	LBraceToken:         "{",
	RBraceToken:         "}",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "ILLEGAL"
}

// Token represents a single lexical token. All token kinds share this one
// struct; only the fields relevant to Tok are set. Tokens are retained in
// the AST as component values so that raw token runs can be reparsed at a
// different level later.
type Token struct {
	// Tok is the type of the token.
	Tok TokenType

	// Type is set to "id" or "unrestricted" for hash tokens and to
	// "integer" or "number" for numeric tokens.
	Type string

	// Value is the literal representation of the token.
	Value string

	// Number is set for number, percentage and dimension tokens.
	// Unit is set for dimension tokens.
	Number float64
	Unit   string

	// Start and End are set for unicode-range tokens.
	Start int
	End   int

	// Ending is the quote code point that delimited a string token.
	Ending rune

	// Pos is the position of the token's first code point.
	Pos Pos
}

// Position returns the position of the token's first code point.
func (t *Token) Position() Pos {
	return t.Pos
}

// String returns the CSS representation of the token.
func (t *Token) String() string {
	switch t.Tok {
	case IdentToken, DelimToken, NumberToken, PercentageToken, DimensionToken, WhitespaceToken:
		return t.Value
	case FunctionToken:
		return t.Value + "("
	case AtKeywordToken:
		return "@" + t.Value
	case HashToken:
		return "#" + t.Value
	case StringToken:
		return string(t.Ending) + t.Value + string(t.Ending)
	case BadStringToken:
		return "''"
	case URLToken:
		return "url(" + t.Value + ")"
	case BadURLToken:
		return "url()"
	case UnicodeRangeToken:
		if t.Start == t.End {
			return fmt.Sprintf("U+%06x", t.Start)
		}
		return fmt.Sprintf("U+%06x-U+%06x", t.Start, t.End)
	case IncludeMatchToken:
		return "~="
	case DashMatchToken:
		return "|="
	case PrefixMatchToken:
		return "^="
	case SuffixMatchToken:
		return "$="
	case SubstringMatchToken:
		return "*="
	case ColumnToken:
		return "||"
	case CDOToken:
		return "<!--"
	case CDCToken:
		return "-->"
	case ColonToken:
		return ":"
	case SemicolonToken:
		return ";"
	case CommaToken:
		return ","
	case LBrackToken:
		return "["
	case RBrackToken:
		return "]"
	case LParenToken:
		return "("
	case RParenToken:
		return ")"
	case LBraceToken:
		return "{"
	case RBraceToken:
		return "}"
	case EOFToken:
		return "EOF"
	}
	return "ILLEGAL"
}

// Pos specifies the line and character position of a token.
// Line is a zero-based index. Char is the 1-based rune offset within the
// line, matching what the scanner's position tracking produces.
type Pos struct {
	Char int
	Line int
}
