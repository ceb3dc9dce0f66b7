package css

import (
	"fmt"
	"strings"
)

// TokenStream represents a type that can retrieve and push back tokens.
// Both Scanner and TokenScanner satisfy it.
type TokenStream interface {
	Current() *Token
	Scan() *Token
	Unscan()
}

// Parser implements a CSS3 standard compliant parser. (§5)
//
// Parse errors are accumulated on the Errors field; the entry points
// return whatever tree could be built so that callers can report every
// problem found in one pass.
type Parser struct {
	Errors ErrorList
}

// ParseStyleSheet parses an input stream into a stylesheet. (§5.3.2)
func (p *Parser) ParseStyleSheet(s TokenStream) *StyleSheet {
	return &StyleSheet{Rules: p.consumeRules(s, true)}
}

// ParseRules parses a list of rules. (§5.3.3)
func (p *Parser) ParseRules(s TokenStream) Rules {
	return p.consumeRules(s, false)
}

// ParseRule parses a single qualified rule or at-rule. (§5.3.4)
func (p *Parser) ParseRule(s TokenStream) Rule {
	p.skipWhitespace(s)

	var r Rule
	switch tok := s.Scan(); tok.Tok {
	case EOFToken:
		p.Errors = append(p.Errors, &Error{Message: "unexpected EOF", Pos: tok.Pos})
		return nil
	case AtKeywordToken:
		r = p.consumeAtRule(s)
	default:
		s.Unscan()
		qr := p.consumeQualifiedRule(s)
		if qr == nil {
			return nil
		}
		r = qr
	}

	p.skipWhitespace(s)

	if tok := s.Scan(); tok.Tok != EOFToken {
		s.Unscan()
		p.Errors = append(p.Errors, &Error{Message: fmt.Sprintf("expected EOF, got %s", tok.String()), Pos: tok.Pos})
		return nil
	}
	return r
}

// ParseDeclaration parses a single name/value declaration. (§5.3.5)
func (p *Parser) ParseDeclaration(s TokenStream) *Declaration {
	p.skipWhitespace(s)

	// If the next token is not an ident then return an error.
	if tok := s.Scan(); tok.Tok != IdentToken {
		p.Errors = append(p.Errors, &Error{Message: fmt.Sprintf("expected ident, got %s", tok.String()), Pos: tok.Pos})
		return nil
	}
	s.Unscan()

	// Consume a declaration; it reports its own syntax errors.
	return p.consumeDeclaration(s)
}

// ParseDeclarations parses a list of declarations and at-rules. (§5.3.6)
func (p *Parser) ParseDeclarations(s TokenStream) Declarations {
	return p.consumeDeclarations(s)
}

// ParseComponentValue parses a single component value. (§5.3.7)
func (p *Parser) ParseComponentValue(s TokenStream) ComponentValue {
	p.skipWhitespace(s)

	// If the next token is EOF then return an error.
	if tok := s.Scan(); tok.Tok == EOFToken {
		p.Errors = append(p.Errors, &Error{Message: "unexpected EOF", Pos: tok.Pos})
		return nil
	}
	s.Unscan()

	v := p.consumeComponentValue(s)

	// Skip over any trailing whitespace.
	p.skipWhitespace(s)

	// If we're not at EOF then return a syntax error.
	if tok := s.Scan(); tok.Tok != EOFToken {
		s.Unscan()
		p.Errors = append(p.Errors, &Error{Message: fmt.Sprintf("expected EOF, got %s", tok.String()), Pos: tok.Pos})
		return nil
	}

	return v
}

// ParseComponentValues parses a list of component values. (§5.3.8)
func (p *Parser) ParseComponentValues(s TokenStream) ComponentValues {
	var a ComponentValues
	for {
		v := p.consumeComponentValue(s)
		if tok, ok := v.(*Token); ok && tok.Tok == EOFToken {
			return a
		}
		a = append(a, v)
	}
}

// consumeRules consumes a list of rules from a token stream. (§5.4.1)
func (p *Parser) consumeRules(s TokenStream, toplevel bool) Rules {
	var a Rules
	for {
		tok := s.Scan()
		switch tok.Tok {
		case WhitespaceToken:
			// nop
		case EOFToken:
			return a
		case CDOToken, CDCToken:
			if !toplevel {
				s.Unscan()
				if r := p.consumeQualifiedRule(s); r != nil {
					a = append(a, r)
				}
			}
		case AtKeywordToken:
			if r := p.consumeAtRule(s); r != nil {
				a = append(a, r)
			}
		default:
			s.Unscan()
			if r := p.consumeQualifiedRule(s); r != nil {
				a = append(a, r)
			}
		}
	}
}

// consumeAtRule consumes a single at-rule. (§5.4.2)
// This assumes the at-keyword token was just consumed.
func (p *Parser) consumeAtRule(s TokenStream) *AtRule {
	atkeyword := s.Current()
	r := &AtRule{Name: atkeyword.Value, Pos: atkeyword.Pos}

	for {
		tok := s.Scan()
		switch tok.Tok {
		case SemicolonToken, EOFToken:
			return r
		case LBraceToken:
			r.Block = p.consumeSimpleBlock(s)
			return r
		default:
			s.Unscan()
			r.Prelude = append(r.Prelude, p.consumeComponentValue(s))
		}
	}
}

// consumeQualifiedRule consumes a single qualified rule. (§5.4.3)
func (p *Parser) consumeQualifiedRule(s TokenStream) *QualifiedRule {
	r := &QualifiedRule{}
	first := true

	for {
		tok := s.Scan()
		switch tok.Tok {
		case EOFToken:
			p.Errors = append(p.Errors, &Error{Message: "unexpected EOF", Pos: tok.Pos})
			return nil
		case LBraceToken:
			r.Block = p.consumeSimpleBlock(s)
			return r
		default:
			if first {
				r.Pos = tok.Pos
				first = false
			}
			s.Unscan()
			r.Prelude = append(r.Prelude, p.consumeComponentValue(s))
		}
	}
}

// consumeDeclarations consumes a list of declarations. (§5.4.4)
func (p *Parser) consumeDeclarations(s TokenStream) Declarations {
	var a Declarations

	for {
		tok := s.Scan()
		switch tok.Tok {
		case WhitespaceToken, SemicolonToken:
			// nop
		case EOFToken:
			return a
		case AtKeywordToken:
			a = append(a, p.consumeAtRule(s))
		case IdentToken:
			// Generate a list of tokens up to the next semicolon or EOF
			// and consume the declaration from that temporary list.
			s.Unscan()
			tokens := p.consumeDeclarationTokens(s)
			if d := p.consumeDeclaration(NewTokenScanner(tokens)); d != nil {
				a = append(a, d)
			}
		default:
			// Any other token is a syntax error.
			p.Errors = append(p.Errors, &Error{Message: fmt.Sprintf("unexpected %s", tok.String()), Pos: tok.Pos})

			// Repeatedly consume component values until semicolon or EOF.
			p.skipComponentValues(s)
		}
	}
}

// consumeDeclaration consumes a single declaration. (§5.4.5)
func (p *Parser) consumeDeclaration(s TokenStream) *Declaration {
	// The first token must be an ident.
	ident := s.Scan()
	d := &Declaration{Name: ident.Value, Pos: ident.Pos}

	// Skip over whitespace.
	p.skipWhitespace(s)

	// The next token must be a colon.
	if tok := s.Scan(); tok.Tok != ColonToken {
		p.Errors = append(p.Errors, &Error{Message: fmt.Sprintf("expected colon, got %s", tok.String()), Pos: tok.Pos})
		return nil
	}

	// Consume the declaration value until EOF.
	for {
		tok := s.Scan()
		if tok.Tok == EOFToken {
			break
		}
		s.Unscan()
		d.Values = append(d.Values, p.consumeComponentValue(s))
	}

	// Check the last two non-whitespace tokens for "!important".
	d.Values, d.Important = cleanImportantFlag(d.Values)

	return d
}

// cleanImportantFlag checks if the last two non-whitespace component values
// are a case-insensitive "!important". If so, it removes them and returns
// the "important" flag set to true.
func cleanImportantFlag(values ComponentValues) (ComponentValues, bool) {
	var a []int
	for i := len(values) - 1; i >= 0 && len(a) < 2; i-- {
		tok, ok := values[i].(*Token)
		if !ok {
			break
		}
		if tok.Tok == WhitespaceToken {
			continue
		}
		a = append(a, i)
	}
	if len(a) != 2 {
		return values, false
	}

	ident, ok := values[a[0]].(*Token)
	if !ok || ident.Tok != IdentToken || strings.ToLower(ident.Value) != "important" {
		return values, false
	}
	bang := values[a[1]].(*Token)
	if bang.Tok != DelimToken || bang.Value != "!" {
		return values, false
	}

	return values[:a[1]], true
}

// consumeComponentValue consumes a single component value. (§5.4.6)
func (p *Parser) consumeComponentValue(s TokenStream) ComponentValue {
	tok := s.Scan()
	switch tok.Tok {
	case LBraceToken, LBrackToken, LParenToken:
		return p.consumeSimpleBlock(s)
	case FunctionToken:
		return p.consumeFunction(s)
	default:
		return tok
	}
}

// consumeSimpleBlock consumes a simple block. (§5.4.7)
// This assumes the opening token was just consumed.
func (p *Parser) consumeSimpleBlock(s TokenStream) *SimpleBlock {
	open := s.Current()
	b := &SimpleBlock{Token: open, Pos: open.Pos}

	for {
		tok := s.Scan()

		// If this token is EOF or the mirror of the starting token then return.
		switch tok.Tok {
		case EOFToken:
			return b
		case RBrackToken:
			if open.Tok == LBrackToken {
				return b
			}
		case RBraceToken:
			if open.Tok == LBraceToken {
				return b
			}
		case RParenToken:
			if open.Tok == LParenToken {
				return b
			}
		}

		// Otherwise consume a component value.
		s.Unscan()
		b.Values = append(b.Values, p.consumeComponentValue(s))
	}
}

// consumeFunction consumes a function. (§5.4.8)
// This assumes the function token was just consumed.
func (p *Parser) consumeFunction(s TokenStream) *Function {
	fn := s.Current()
	f := &Function{Name: fn.Value, Pos: fn.Pos}

	for {
		tok := s.Scan()
		switch tok.Tok {
		case EOFToken, RParenToken:
			return f
		}

		// Otherwise consume a component value.
		s.Unscan()
		f.Values = append(f.Values, p.consumeComponentValue(s))
	}
}

// consumeDeclarationTokens collects contiguous non-semicolon and non-EOF tokens.
func (p *Parser) consumeDeclarationTokens(s TokenStream) []*Token {
	var a []*Token
	for {
		tok := s.Scan()
		switch tok.Tok {
		case SemicolonToken, EOFToken:
			s.Unscan()
			return a
		}
		a = append(a, tok)
	}
}

// skipComponentValues consumes all component values until a semicolon or EOF.
func (p *Parser) skipComponentValues(s TokenStream) {
	for {
		v := p.consumeComponentValue(s)
		if tok, ok := v.(*Token); ok {
			switch tok.Tok {
			case SemicolonToken, EOFToken:
				return
			}
		}
	}
}

// skipWhitespace skips over all contiguous whitespace tokens.
func (p *Parser) skipWhitespace(s TokenStream) {
	for {
		if tok := s.Scan(); tok.Tok != WhitespaceToken {
			s.Unscan()
			return
		}
	}
}

// TokenScanner represents a token stream over a fixed list of tokens.
type TokenScanner struct {
	i      int
	tokens []*Token
}

// NewTokenScanner returns a new instance of TokenScanner.
func NewTokenScanner(tokens []*Token) *TokenScanner {
	return &TokenScanner{i: -1, tokens: tokens}
}

// Current returns the current token.
func (s *TokenScanner) Current() *Token {
	if s.i < 0 || s.i >= len(s.tokens) {
		return &Token{Tok: EOFToken}
	}
	return s.tokens[s.i]
}

// Scan returns the next token.
func (s *TokenScanner) Scan() *Token {
	if s.i < len(s.tokens) {
		s.i++
	}
	return s.Current()
}

// Unscan moves back one token.
func (s *TokenScanner) Unscan() {
	if s.i > -1 {
		s.i--
	}
}

// NewValuesScanner returns a token stream over already-parsed component
// values. Nested simple blocks and functions are re-expanded into their
// delimiting tokens so that the contents of a rule's {-block can be
// reparsed as a declaration list.
func NewValuesScanner(values ComponentValues) *TokenScanner {
	return NewTokenScanner(flattenValues(nil, values))
}

func flattenValues(a []*Token, values ComponentValues) []*Token {
	for _, v := range values {
		switch v := v.(type) {
		case *Token:
			a = append(a, v)
		case *SimpleBlock:
			a = append(a, v.Token)
			a = flattenValues(a, v.Values)
			a = append(a, &Token{Tok: mirrorOf(v.Token.Tok), Pos: v.Token.Pos})
		case *Function:
			a = append(a, &Token{Tok: FunctionToken, Value: v.Name, Pos: v.Pos})
			a = flattenValues(a, v.Values)
			a = append(a, &Token{Tok: RParenToken, Pos: v.Pos})
		}
	}
	return a
}

// mirrorOf returns the closing token type for an opening block token.
func mirrorOf(t TokenType) TokenType {
	switch t {
	case LBrackToken:
		return RBrackToken
	case LParenToken:
		return RParenToken
	}
	return RBraceToken
}
