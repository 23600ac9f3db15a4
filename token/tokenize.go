package token

import (
	"strconv"
	"unicode/utf8"
)

// Tokenize tokenizes a complete path string. No whitespace is
// admitted anywhere: the grammar generates none, and the tokenizer
// accepts exactly the grammar.
func Tokenize(d []byte) ([]Token, error) {
	var (
		toks  []Token
		i     int
		n     = len(d)
		depth int // bracket/paren nesting; '.' at depth > 0 can start a float
	)
	for i < n {
		c := d[i]
		pos := newPos(d, i)
		switch c {
		case '.':
			if depth > 0 && i+1 < n && asciiDigit(d[i+1]) {
				typ, sz, err := scanNumber(d[i:])
				if err != nil {
					return nil, NewTokenizeErr(err, pos)
				}
				toks = append(toks, Token{Type: typ, Pos: pos, Bytes: d[i : i+sz]})
				i += sz
				continue
			}
			toks = append(toks, Token{Type: TDot, Pos: pos, Bytes: d[i : i+1]})
			i++
		case '[':
			depth++
			toks = append(toks, Token{Type: TLSquare, Pos: pos, Bytes: d[i : i+1]})
			i++
		case ']':
			depth--
			toks = append(toks, Token{Type: TRSquare, Pos: pos, Bytes: d[i : i+1]})
			i++
		case '(':
			depth++
			toks = append(toks, Token{Type: TLParen, Pos: pos, Bytes: d[i : i+1]})
			i++
		case ')':
			depth--
			toks = append(toks, Token{Type: TRParen, Pos: pos, Bytes: d[i : i+1]})
			i++
		case ':':
			toks = append(toks, Token{Type: TColon, Pos: pos, Bytes: d[i : i+1]})
			i++
		case ',':
			toks = append(toks, Token{Type: TComma, Pos: pos, Bytes: d[i : i+1]})
			i++
		case '+':
			toks = append(toks, Token{Type: TPlus, Pos: pos, Bytes: d[i : i+1]})
			i++
		case '\'', '"':
			sz, err := scanQuoted(d[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pos)
			}
			toks = append(toks, Token{Type: TString, Pos: pos, Bytes: d[i : i+sz]})
			i += sz
		default:
			if c == '-' || asciiDigit(c) {
				typ, sz, err := scanNumber(d[i:])
				if err != nil {
					return nil, NewTokenizeErr(err, pos)
				}
				toks = append(toks, Token{Type: typ, Pos: pos, Bytes: d[i : i+sz]})
				i += sz
				continue
			}
			r, rsz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && rsz == 1 {
				return nil, NewTokenizeErr(ErrBadUTF8, pos)
			}
			if !IsIDStart(r) {
				return nil, UnexpectedErr(strconv.QuoteRune(r), pos)
			}
			sz := scanIdent(d[i:])
			word := d[i : i+sz]
			toks = append(toks, Token{Type: keywordType(word), Pos: pos, Bytes: word})
			i += sz
		}
	}
	return toks, nil
}

func scanIdent(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return i
		}
		if i == 0 {
			if !IsIDStart(r) {
				return i
			}
		} else if !IsIDContinue(r) {
			return i
		}
		i += sz
	}
	return i
}

func keywordType(word []byte) TokenType {
	switch string(word) {
	case "True":
		return TTrue
	case "False":
		return TFalse
	case "None":
		return TNone
	default:
		return TIdent
	}
}
