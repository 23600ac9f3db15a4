// Package parse turns a path string into its typed key sequence. The
// descent mirrors the grammar one production per function; each
// production returns the key value for its node, so a successful parse
// is already the transformed key sequence.
package parse

import (
	"strconv"

	"github.com/Qwlouse/konfig/debug"
	"github.com/Qwlouse/konfig/key"
	"github.com/Qwlouse/konfig/token"
)

// Parse parses a path string into its ordered key sequence. The empty
// string is the empty path.
func Parse(src string) ([]key.Key, error) {
	toks, err := token.Tokenize([]byte(src))
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		for i := range toks {
			debug.Logf("parse: token %d %s", i, toks[i].Info())
		}
	}
	p := &parser{toks: toks}
	keys := []key.Key{}
	if p.cur() == nil {
		return keys, nil
	}
	// head segment: a bare identifier or a bracketed key
	switch t := p.cur(); t.Type {
	case token.TIdent, token.TTrue, token.TFalse, token.TNone:
		keys = append(keys, key.String(string(t.Bytes)))
		p.i++
	case token.TLSquare:
		k, err := p.bracketKey()
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	default:
		return nil, errAt(t.Pos, ErrParse, "expected identifier or '[', got %q", string(t.Bytes))
	}
	for p.cur() != nil {
		switch t := p.cur(); t.Type {
		case token.TDot:
			p.i++
			id := p.cur()
			if id == nil {
				return nil, &Error{Err: ErrParse}
			}
			switch id.Type {
			case token.TIdent, token.TTrue, token.TFalse, token.TNone:
				keys = append(keys, key.String(string(id.Bytes)))
				p.i++
			default:
				return nil, errAt(id.Pos, ErrParse, "expected identifier after '.', got %q", string(id.Bytes))
			}
		case token.TLSquare:
			k, err := p.bracketKey()
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
		default:
			return nil, errAt(t.Pos, ErrParse, "expected '.' or '[', got %q", string(t.Bytes))
		}
	}
	return keys, nil
}

type parser struct {
	toks []token.Token
	i    int
}

func (p *parser) cur() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

// bracketKey parses "[" key "]".
func (p *parser) bracketKey() (key.Key, error) {
	open := p.cur()
	p.i++
	k, err := p.key()
	if err != nil {
		return key.Key{}, err
	}
	t := p.cur()
	if t == nil {
		return key.Key{}, errAt(open.Pos, ErrParse, "unclosed '['")
	}
	if t.Type != token.TRSquare {
		return key.Key{}, errAt(t.Pos, ErrParse, "expected ']', got %q", string(t.Bytes))
	}
	p.i++
	return k, nil
}

// key parses one key: a number, slice, boolean, None, string, tuple or
// parenthesized complex.
func (p *parser) key() (key.Key, error) {
	t := p.cur()
	if t == nil {
		return key.Key{}, &Error{Err: ErrParse}
	}
	switch t.Type {
	case token.TColon:
		return p.slice(nil)
	case token.TInteger:
		v, err := p.intValue(t)
		if err != nil {
			return key.Key{}, err
		}
		if nxt := p.peek(1); nxt != nil && nxt.Type == token.TColon {
			p.i++
			return p.slice(&v)
		}
		p.i++
		return key.Int(v), nil
	case token.TFloat:
		v, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return key.Key{}, errAt(t.Pos, ErrNumberRange, "%q", string(t.Bytes))
		}
		p.i++
		return key.Float(v), nil
	case token.TImag:
		v, err := imagValue(t)
		if err != nil {
			return key.Key{}, err
		}
		p.i++
		return key.Complex(complex(0, v)), nil
	case token.TTrue:
		p.i++
		return key.Bool(true), nil
	case token.TFalse:
		p.i++
		return key.Bool(false), nil
	case token.TNone:
		p.i++
		return key.None(), nil
	case token.TString:
		p.i++
		return key.String(token.Unquote(t.Bytes)), nil
	case token.TLParen:
		return p.parenKey()
	default:
		return key.Key{}, errAt(t.Pos, ErrParse, "unexpected %q in key", string(t.Bytes))
	}
}

func (p *parser) peek(n int) *token.Token {
	if p.i+n >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i+n]
}

// slice parses the remainder of a slice key with the current token at
// its first colon. At most two colons; omitted bounds stay nil, as
// does an omitted step.
func (p *parser) slice(start *int64) (key.Key, error) {
	p.i++ // first ':'
	var stop, step *int64
	if t := p.cur(); t != nil && t.Type == token.TInteger {
		v, err := p.intValue(t)
		if err != nil {
			return key.Key{}, err
		}
		stop = &v
		p.i++
	}
	if t := p.cur(); t != nil && t.Type == token.TColon {
		p.i++
		if t := p.cur(); t != nil && t.Type == token.TInteger {
			v, err := p.intValue(t)
			if err != nil {
				return key.Key{}, err
			}
			step = &v
			p.i++
		}
	}
	if t := p.cur(); t != nil && t.Type == token.TColon {
		return key.Key{}, errAt(t.Pos, ErrSlice, "more than two colons")
	}
	return key.Slice(start, stop, step), nil
}

// parenKey parses "(" ... ")": the empty tuple, a tuple of keys, or a
// complex literal.
func (p *parser) parenKey() (key.Key, error) {
	open := p.cur()
	p.i++
	if t := p.cur(); t != nil && t.Type == token.TRParen {
		p.i++
		return key.Tuple(), nil
	}
	firstTok := p.cur()
	first, err := p.key()
	if err != nil {
		return key.Key{}, err
	}
	t := p.cur()
	if t == nil {
		return key.Key{}, errAt(open.Pos, ErrTuple, "unclosed '('")
	}
	switch t.Type {
	case token.TPlus, token.TImag:
		return p.complexTail(firstTok, first)
	case token.TComma:
		return p.tupleTail(open, first)
	case token.TRParen:
		if first.Kind() == key.ComplexKind {
			return key.Key{}, errAt(t.Pos, ErrComplex, "a complex key needs a real part")
		}
		return key.Key{}, errAt(t.Pos, ErrTuple, "single-element tuple needs a trailing comma")
	default:
		return key.Key{}, errAt(t.Pos, ErrTuple, "expected ',' or ')', got %q", string(t.Bytes))
	}
}

// complexTail finishes "(" real ("+"|"-") imag "j" ")" after the real
// part has been parsed. The real part must be a decimal integer or a
// float; radix-prefixed forms are not complex components. A negative
// imaginary part arrives as a signed TImag token.
func (p *parser) complexTail(realTok *token.Token, first key.Key) (key.Key, error) {
	var re float64
	switch {
	case first.Kind() == key.IntKind:
		if !decimalInt(realTok.Bytes) {
			return key.Key{}, errAt(realTok.Pos, ErrComplex, "real part must be a decimal number")
		}
		v, _ := first.Int()
		re = float64(v)
	case first.Kind() == key.FloatKind:
		re, _ = first.Float()
	default:
		return key.Key{}, errAt(realTok.Pos, ErrComplex, "real part must be a decimal number")
	}
	t := p.cur()
	if t.Type == token.TPlus {
		p.i++
		t = p.cur()
		if t == nil {
			return key.Key{}, errAt(realTok.Pos, ErrComplex, "expected imaginary part")
		}
		if t.Type != token.TImag {
			return key.Key{}, errAt(t.Pos, ErrComplex, "expected imaginary part, got %q", string(t.Bytes))
		}
	} else if t.Bytes[0] != '-' {
		return key.Key{}, errAt(t.Pos, ErrComplex, "expected sign before imaginary part")
	}
	im, err := imagValue(t)
	if err != nil {
		return key.Key{}, err
	}
	p.i++
	t = p.cur()
	if t == nil {
		return key.Key{}, errAt(realTok.Pos, ErrComplex, "unclosed '('")
	}
	if t.Type != token.TRParen {
		return key.Key{}, errAt(t.Pos, ErrComplex, "expected ')', got %q", string(t.Bytes))
	}
	p.i++
	return key.Complex(complex(re, im)), nil
}

// tupleTail collects the remaining tuple elements with the current
// token at the comma after the first element.
func (p *parser) tupleTail(open *token.Token, first key.Key) (key.Key, error) {
	elems := []key.Key{first}
	for {
		p.i++ // ','
		t := p.cur()
		if t == nil {
			return key.Key{}, errAt(open.Pos, ErrTuple, "unclosed '('")
		}
		if t.Type == token.TRParen {
			p.i++
			return key.Tuple(elems...), nil
		}
		e, err := p.key()
		if err != nil {
			return key.Key{}, err
		}
		elems = append(elems, e)
		t = p.cur()
		if t == nil {
			return key.Key{}, errAt(open.Pos, ErrTuple, "unclosed '('")
		}
		switch t.Type {
		case token.TComma:
		case token.TRParen:
			p.i++
			return key.Tuple(elems...), nil
		default:
			return key.Key{}, errAt(t.Pos, ErrTuple, "expected ',' or ')', got %q", string(t.Bytes))
		}
	}
}

// decimalInt reports whether an integer token is written in decimal.
func decimalInt(d []byte) bool {
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	if len(d) < 2 || d[0] != '0' {
		return true
	}
	switch d[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return false
	}
	return true
}

func (p *parser) intValue(t *token.Token) (int64, error) {
	v, err := strconv.ParseInt(string(t.Bytes), 0, 64)
	if err != nil {
		return 0, errAt(t.Pos, ErrNumberRange, "%q", string(t.Bytes))
	}
	return v, nil
}

func imagValue(t *token.Token) (float64, error) {
	text := string(t.Bytes[:len(t.Bytes)-1]) // trailing j
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errAt(t.Pos, ErrNumberRange, "%q", string(t.Bytes))
	}
	return v, nil
}
