// Package notation compiles SWIFT field content notations like "6!n4!n1x4!n"
// and splits field content into subfields according to them.
//
// A notation is a sequence of components. Each component has an optional
// length (default 1), an optional '!' marker and a character class:
//
//	n  digits 0-9
//	a  upper case letters A-Z
//	c  upper case letters and digits
//	x  any printable character, including line breaks
//	d  digits with exactly one decimal comma
//
// With '!' the component matches exactly length characters, otherwise 1 up to
// length characters. Variable length components are greedy but never take
// characters a later component needs to match, i.e. the leftmost greedy
// decomposition of the content is chosen.
package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Class is a character class of a notation component.
type Class byte

const (
	Numeric  Class = 'n'
	Alpha    Class = 'a'
	AlphaNum Class = 'c'
	Any      Class = 'x'
	Decimal  Class = 'd'
)

var classRegexp = map[Class]string{
	Numeric:  `[0-9]`,
	Alpha:    `[A-Z]`,
	AlphaNum: `[0-9A-Z]`,
	Any:      `[^\x00-\x09\x0b\x0c\x0e-\x1f\x7f]`,
	Decimal:  `[0-9,]`,
}

func (c Class) valid() bool {
	_, ok := classRegexp[c]
	return ok
}

func (c Class) String() string { return string(c) }

// Token is one compiled notation component.
type Token struct {
	Max   int
	Exact bool
	Class Class
}

func (t Token) String() string {
	if t.Exact {
		return fmt.Sprintf("%d!%c", t.Max, t.Class)
	}
	return fmt.Sprintf("%d%c", t.Max, t.Class)
}

func (t Token) regexp() string {
	if t.Class == Decimal {
		return t.decimalRegexp()
	}
	if t.Exact {
		return fmt.Sprintf("(%s{%d})", classRegexp[t.Class], t.Max)
	}
	return fmt.Sprintf("(%s{1,%d})", classRegexp[t.Class], t.Max)
}

// decimalRegexp has one alternative per position of the decimal comma. This
// lets the matcher find another split when a greedy one leaves a decimal
// token with no or more than one comma.
func (t Token) decimalRegexp() string {
	var sb strings.Builder
	sb.WriteString("((?:")
	for i := 0; i < t.Max; i++ {
		if i > 0 {
			sb.WriteByte('|')
		}
		fmt.Fprintf(&sb, "[0-9]{%d},", i)
		switch f := t.Max - 1 - i; {
		case f == 0:
		case t.Exact:
			fmt.Fprintf(&sb, "[0-9]{%d}", f)
		default:
			fmt.Fprintf(&sb, "[0-9]{0,%d}", f)
		}
	}
	sb.WriteString("))")
	return sb.String()
}

// Notation is a compiled field notation. It is immutable and can be used
// concurrently.
type Notation struct {
	src  string
	toks []Token
	rgx  *regexp.Regexp
}

// CompileError reports a malformed notation string.
type CompileError struct {
	Notation string
	Pos      int
	Msg      string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("notation '%s' at %d: %s", e.Notation, e.Pos, e.Msg)
}

// Compile parses notation into its components and builds their matcher.
func Compile(notation string) (*Notation, error) {
	if notation == "" {
		return nil, &CompileError{Msg: "empty notation"}
	}
	n := &Notation{src: notation}
	for pos := 0; pos < len(notation); {
		tok, l, err := component(notation[pos:])
		if err != nil {
			return nil, &CompileError{Notation: notation, Pos: pos, Msg: err.Error()}
		}
		n.toks = append(n.toks, tok)
		pos += l
	}
	var sb strings.Builder
	sb.WriteByte('^')
	for _, t := range n.toks {
		sb.WriteString(t.regexp())
	}
	sb.WriteByte('$')
	var err error
	if n.rgx, err = regexp.Compile(sb.String()); err != nil {
		return nil, &CompileError{Notation: notation, Msg: err.Error()}
	}
	return n, nil
}

// MustCompile is like Compile but panics on error. Use it to initialize
// package level notations of field types.
func MustCompile(notation string) *Notation {
	n, err := Compile(notation)
	if err != nil {
		panic(err)
	}
	return n
}

func component(s string) (tok Token, l int, err error) {
	for l < len(s) && s[l] >= '0' && s[l] <= '9' {
		l++
	}
	if l == 0 {
		tok.Max = 1
	} else if tok.Max, err = strconv.Atoi(s[:l]); err != nil {
		return tok, l, err
	} else if tok.Max < 1 {
		return tok, l, fmt.Errorf("invalid length %d", tok.Max)
	}
	if l < len(s) && s[l] == '!' {
		if l == 0 {
			return tok, l, fmt.Errorf("exact marker without length")
		}
		tok.Exact = true
		l++
	}
	if l == len(s) {
		return tok, l, fmt.Errorf("missing character class")
	}
	tok.Class = Class(s[l])
	if !tok.Class.valid() {
		return tok, l, fmt.Errorf("unknown character class '%c'", s[l])
	}
	return tok, l + 1, nil
}

func (n *Notation) String() string { return n.src }

// Len returns the number of subfields n splits content into.
func (n *Notation) Len() int { return len(n.toks) }

// Tokens returns a copy of the compiled components of n.
func (n *Notation) Tokens() []Token {
	res := make([]Token, len(n.toks))
	copy(res, n.toks)
	return res
}
