package css

import (
	"bytes"
	"io"
)

// Printer represents a configurable CSS printer.
type Printer struct{}

// Fprint writes the CSS representation of a node to w.
// Nil nodes are safe to print and produce no output.
func (p *Printer) Fprint(w io.Writer, n Node) (err error) {
	switch n := n.(type) {
	case *StyleSheet:
		if n == nil {
			return nil
		}
		for i, r := range n.Rules {
			if i > 0 {
				_, err = w.Write([]byte{' '})
			}
			_ = p.Fprint(w, r)
		}

	case Rules:
		if n == nil {
			return nil
		}
		for i, r := range n {
			if i > 0 {
				_, _ = w.Write([]byte{' '})
			}
			err = p.Fprint(w, r)
		}

	case *AtRule:
		if n == nil {
			return nil
		}
		_, _ = w.Write([]byte{'@'})
		_, _ = w.Write([]byte(n.Name))
		if len(n.Prelude) > 0 {
			_ = p.Fprint(w, n.Prelude)
		}
		if n.Block != nil {
			err = p.Fprint(w, n.Block)
		} else {
			_, err = w.Write([]byte{';'})
		}

	case *QualifiedRule:
		if n == nil {
			return nil
		}
		_ = p.Fprint(w, n.Prelude)
		err = p.Fprint(w, n.Block)

	case Declarations:
		if n == nil {
			return nil
		}
		for i, v := range n {
			if i > 0 {
				_, _ = w.Write([]byte{' '})
			}
			_ = p.Fprint(w, v)
			_, err = w.Write([]byte{';'})
		}

	case *Declaration:
		if n == nil {
			return nil
		}
		_, _ = w.Write([]byte(n.Name))
		_, _ = w.Write([]byte{':'})
		err = p.Fprint(w, n.Values)
		if n.Important {
			_, err = w.Write([]byte("!important"))
		}

	case ComponentValues:
		if n == nil {
			return nil
		}
		for _, v := range n {
			err = p.Fprint(w, v)
		}

	case *SimpleBlock:
		if n == nil {
			return nil
		}
		switch n.Token.Tok {
		case LBrackToken:
			_, _ = w.Write([]byte{'['})
		case LParenToken:
			_, _ = w.Write([]byte{'('})
		default:
			_, _ = w.Write([]byte{'{'})
		}

		_ = p.Fprint(w, n.Values)

		switch n.Token.Tok {
		case LBrackToken:
			_, err = w.Write([]byte{']'})
		case LParenToken:
			_, err = w.Write([]byte{')'})
		default:
			_, err = w.Write([]byte{'}'})
		}

	case *Function:
		if n == nil {
			return nil
		}
		_, _ = w.Write([]byte(n.Name))
		_, _ = w.Write([]byte{'('})
		_ = p.Fprint(w, n.Values)
		_, err = w.Write([]byte{')'})

	case *Token:
		if n == nil {
			return nil
		}
		_, err = w.Write([]byte(n.String()))
	}

	return err
}

// Sprint pretty prints an AST node to a string using the default
// configuration.
func Sprint(n Node) string {
	var p Printer
	var buf bytes.Buffer
	_ = p.Fprint(&buf, n)
	return buf.String()
}
