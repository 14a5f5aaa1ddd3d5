package token

import "fmt"

type TokenType int

const (
	TEOF TokenType = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TNumber
	TTrue
	TFalse
	TNull
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TEOF:     "TEOF",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TString:  "TString",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
	}[t]
	if ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one lexical element.  For TString, Value holds the unescaped
// string; Bytes always holds the raw source text.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
	Value string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// Describe returns a short description of the token for error messages.
func (t *Token) Describe() string {
	switch t.Type {
	case TEOF:
		return "end of input"
	case TString:
		return "string " + Quote(t.Value)
	default:
		return fmt.Sprintf("%q", t.Bytes)
	}
}
