package token

import "fmt"

type TokenType int

const (
	TDot TokenType = iota
	TColon
	TComma
	TPlus
	TLSquare
	TRSquare
	TLParen
	TRParen
	TInteger
	TFloat
	TImag
	TString
	TIdent
	TTrue
	TFalse
	TNone
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TDot:     "TDot",
		TColon:   "TColon",
		TComma:   "TComma",
		TPlus:    "TPlus",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TImag:    "TImag",
		TString:  "TString",
		TIdent:   "TIdent",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNone:    "TNone",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, string(t.Bytes), t.Pos.String())
}

// String returns the value text of the token: for TString the unquoted,
// escape-resolved content, for everything else the raw bytes.
func (t *Token) String() string {
	if t.Type == TString {
		return Unquote(t.Bytes)
	}
	return string(t.Bytes)
}
