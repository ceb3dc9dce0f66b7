// Package selector models the compound selectors found in css-blocks
// source and definition files. Selectors are parsed from the component
// values of a qualified rule's prelude rather than from raw text, so
// positions reported for malformed selectors line up with the scanner's.
package selector

import (
	"bytes"
	"fmt"

	"github.com/svssdeva/css-blocks/css"
)

// Combinator joins two parts of a compound selector.
type Combinator string

const (
	Descendant  Combinator = " "
	Child       Combinator = ">"
	NextSibling Combinator = "+"
	Sibling     Combinator = "~"
)

// Attr represents an attribute selector such as [state|on] or
// [state|size="large"].
type Attr struct {
	Namespace string
	Name      string
	Op        string // "=", "~=", "|=", "^=", "$=", "*=" or empty
	Value     string
}

// String returns the source form of the attribute selector.
func (a Attr) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	if a.Namespace != "" {
		buf.WriteString(a.Namespace)
		buf.WriteByte('|')
	}
	buf.WriteString(a.Name)
	if a.Op != "" {
		buf.WriteString(a.Op)
		buf.WriteByte('"')
		buf.WriteString(a.Value)
		buf.WriteByte('"')
	}
	buf.WriteByte(']')
	return buf.String()
}

// Part represents one compound part of a selector, e.g. ".foo[state|on]".
type Part struct {
	Scope   bool // :scope
	Tag     string
	ID      string
	Classes []string
	Attrs   []Attr
	Pseudos []string
}

func (p *Part) empty() bool {
	return !p.Scope && p.Tag == "" && p.ID == "" && len(p.Classes) == 0 && len(p.Attrs) == 0 && len(p.Pseudos) == 0
}

// String returns the source form of the part.
func (p *Part) String() string {
	var buf bytes.Buffer
	if p.Scope {
		buf.WriteString(":scope")
	}
	buf.WriteString(p.Tag)
	if p.ID != "" {
		buf.WriteByte('#')
		buf.WriteString(p.ID)
	}
	for _, c := range p.Classes {
		buf.WriteByte('.')
		buf.WriteString(c)
	}
	for _, a := range p.Attrs {
		buf.WriteString(a.String())
	}
	for _, ps := range p.Pseudos {
		buf.WriteString(ps)
	}
	return buf.String()
}

// Sel represents a single parsed selector: one or more compound parts
// joined by combinators.
type Sel struct {
	Parts       []Part
	Combinators []Combinator // len(Parts)-1
	Pos         css.Pos
}

// Key returns the key part of the selector: the final compound part, which
// is the one a rule's declarations apply to.
func (s *Sel) Key() *Part {
	return &s.Parts[len(s.Parts)-1]
}

// String returns the source form of the selector.
func (s *Sel) String() string {
	var buf bytes.Buffer
	for i := range s.Parts {
		if i > 0 {
			c := s.Combinators[i-1]
			if c == Descendant {
				buf.WriteByte(' ')
			} else {
				buf.WriteByte(' ')
				buf.WriteString(string(c))
				buf.WriteByte(' ')
			}
		}
		buf.WriteString(s.Parts[i].String())
	}
	return buf.String()
}

// Parse parses the component values of a rule prelude into a list of
// selectors, splitting on top-level commas. Parse errors are accumulated
// and returned alongside whatever selectors could be built.
func Parse(values css.ComponentValues) ([]*Sel, css.ErrorList) {
	var sels []*Sel
	var errs css.ErrorList

	var group css.ComponentValues
	flush := func() {
		if sel, selErrs := parseOne(group); sel != nil {
			sels = append(sels, sel)
			errs = append(errs, selErrs...)
		} else {
			errs = append(errs, selErrs...)
		}
		group = nil
	}

	for _, v := range values {
		if tok, ok := v.(*css.Token); ok && tok.Tok == css.CommaToken {
			flush()
			continue
		}
		group = append(group, v)
	}
	flush()

	return sels, errs
}

// parseOne parses a single compound selector from component values.
// Returns nil if the values contain no selector content.
func parseOne(values css.ComponentValues) (*Sel, css.ErrorList) {
	var errs css.ErrorList

	sel := &Sel{}
	part := Part{}
	started := false
	var pending Combinator

	commit := func() {
		if part.empty() {
			return
		}
		sel.Parts = append(sel.Parts, part)
		part = Part{}
	}
	beginSimple := func() {
		// A new simple selector after a combinator starts a new part.
		if pending != "" && !part.empty() {
			commit()
			sel.Combinators = append(sel.Combinators, pending)
		}
		pending = ""
	}

	for i := 0; i < len(values); i++ {
		switch v := values[i].(type) {
		case *css.Token:
			if !started && v.Tok != css.WhitespaceToken {
				sel.Pos = v.Pos
				started = true
			}
			switch v.Tok {
			case css.WhitespaceToken:
				if !part.empty() && pending == "" {
					pending = Descendant
				}
			case css.DelimToken:
				switch v.Value {
				case ".":
					name, n, ok := identAt(values, i+1)
					if !ok {
						errs = append(errs, &css.Error{Message: "expected identifier after .", Pos: v.Pos})
						continue
					}
					beginSimple()
					part.Classes = append(part.Classes, name)
					i = n
				case ">", "+", "~":
					if part.empty() && len(sel.Parts) == 0 {
						errs = append(errs, &css.Error{Message: fmt.Sprintf("unexpected combinator %q", v.Value), Pos: v.Pos})
						continue
					}
					pending = Combinator(v.Value)
				case "*":
					beginSimple()
					part.Tag = "*"
				default:
					errs = append(errs, &css.Error{Message: fmt.Sprintf("unexpected %s in selector", v.String()), Pos: v.Pos})
				}
			case css.HashToken:
				beginSimple()
				part.ID = v.Value
			case css.IdentToken:
				beginSimple()
				part.Tag = v.Value
			case css.ColonToken:
				pseudo, n, perr := pseudoAt(values, i)
				if perr != nil {
					errs = append(errs, perr)
					continue
				}
				beginSimple()
				if pseudo == ":scope" {
					part.Scope = true
				} else {
					part.Pseudos = append(part.Pseudos, pseudo)
				}
				i = n
			default:
				errs = append(errs, &css.Error{Message: fmt.Sprintf("unexpected %s in selector", v.String()), Pos: v.Pos})
			}

		case *css.SimpleBlock:
			if v.Token.Tok != css.LBrackToken {
				errs = append(errs, &css.Error{Message: "unexpected block in selector", Pos: v.Pos})
				continue
			}
			if !started {
				sel.Pos = v.Pos
				started = true
			}
			attr, aerr := parseAttr(v)
			if aerr != nil {
				errs = append(errs, aerr)
				continue
			}
			beginSimple()
			part.Attrs = append(part.Attrs, attr)

		default:
			errs = append(errs, &css.Error{Message: "unexpected value in selector", Pos: css.Position(v)})
		}
	}
	commit()

	if len(sel.Parts) == 0 {
		return nil, errs
	}
	return sel, errs
}

// identAt returns the identifier at index i, skipping nothing. It is used
// for the token immediately following a "." delim.
func identAt(values css.ComponentValues, i int) (string, int, bool) {
	if i >= len(values) {
		return "", i, false
	}
	tok, ok := values[i].(*css.Token)
	if !ok || tok.Tok != css.IdentToken {
		return "", i, false
	}
	return tok.Value, i, true
}

// pseudoAt parses a pseudo-class or pseudo-element starting at the colon
// token at index i. Returns the pseudo's source form and the index of its
// last consumed value.
func pseudoAt(values css.ComponentValues, i int) (string, int, *css.Error) {
	colon := values[i].(*css.Token)
	prefix := ":"
	j := i + 1

	// A second colon marks a pseudo-element.
	if j < len(values) {
		if tok, ok := values[j].(*css.Token); ok && tok.Tok == css.ColonToken {
			prefix = "::"
			j++
		}
	}

	if j < len(values) {
		switch v := values[j].(type) {
		case *css.Token:
			if v.Tok == css.IdentToken {
				return prefix + v.Value, j, nil
			}
		case *css.Function:
			return prefix + css.Sprint(v), j, nil
		}
	}
	return "", i, &css.Error{Message: "expected identifier after :", Pos: colon.Pos}
}

// parseAttr parses the contents of a [-block into an attribute selector.
func parseAttr(b *css.SimpleBlock) (Attr, *css.Error) {
	var attr Attr

	toks := make([]*css.Token, 0, len(b.Values))
	for _, v := range b.Values {
		tok, ok := v.(*css.Token)
		if !ok {
			return attr, &css.Error{Message: "unexpected value in attribute selector", Pos: b.Pos}
		}
		if tok.Tok == css.WhitespaceToken {
			continue
		}
		toks = append(toks, tok)
	}

	i := 0
	bad := func() (Attr, *css.Error) {
		return Attr{}, &css.Error{Message: "malformed attribute selector", Pos: b.Pos}
	}

	// Name, optionally preceded by a namespace and pipe.
	if i >= len(toks) || toks[i].Tok != css.IdentToken {
		return bad()
	}
	attr.Name = toks[i].Value
	i++

	if i < len(toks) && toks[i].Tok == css.DelimToken && toks[i].Value == "|" {
		i++
		if i >= len(toks) || toks[i].Tok != css.IdentToken {
			return bad()
		}
		attr.Namespace = attr.Name
		attr.Name = toks[i].Value
		i++
	}

	// Optional operator and value.
	if i < len(toks) {
		switch toks[i].Tok {
		case css.DelimToken:
			if toks[i].Value != "=" {
				return bad()
			}
			attr.Op = "="
		case css.IncludeMatchToken:
			attr.Op = "~="
		case css.DashMatchToken:
			attr.Op = "|="
		case css.PrefixMatchToken:
			attr.Op = "^="
		case css.SuffixMatchToken:
			attr.Op = "$="
		case css.SubstringMatchToken:
			attr.Op = "*="
		default:
			return bad()
		}
		i++

		if i >= len(toks) || (toks[i].Tok != css.IdentToken && toks[i].Tok != css.StringToken) {
			return bad()
		}
		attr.Value = toks[i].Value
		i++
	}

	if i != len(toks) {
		return bad()
	}
	return attr, nil
}
