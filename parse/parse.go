package parse

import (
	"fmt"

	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/token"
)

// Parse parses one JSON value from d.  By default a comma before a closing
// bracket is accepted and bytes after the root value are ignored; see
// StrictCommas and StrictTrailing.  Errors are *Error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{tk: token.NewTokenizer(d), opts: pOpts}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	res, err := p.value(&tok, 0)
	if err != nil {
		return nil, err
	}
	if pOpts.strictTrailing && !p.tk.AtEOF() {
		return nil, newError(token.ErrTrailing, p.tk.Doc().Pos(p.tk.Offset()))
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	tk   *token.Tokenizer
	opts *parseOpts
}

func (p *parser) next() (token.Token, error) {
	tok, err := p.tk.Next()
	if err != nil {
		return tok, fromTokenizeErr(err)
	}
	return tok, nil
}

func (p *parser) track(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

func (p *parser) value(t *token.Token, depth int) (*ir.Node, error) {
	var res *ir.Node
	switch t.Type {
	case token.TLCurl:
		if depth >= p.opts.maxDepth {
			return nil, newError(token.ErrDepth, t.Pos)
		}
		return p.object(t, depth+1)
	case token.TLSquare:
		if depth >= p.opts.maxDepth {
			return nil, newError(token.ErrDepth, t.Pos)
		}
		return p.array(t, depth+1)
	case token.TString:
		res = ir.FromString(t.Value)
	case token.TNumber:
		res = ir.FromNumber(string(t.Bytes))
	case token.TTrue:
		res = ir.FromBool(true)
	case token.TFalse:
		res = ir.FromBool(false)
	case token.TNull:
		res = ir.Null()
	default:
		return nil, p.unexpected(t)
	}
	p.track(res, t.Pos)
	return res, nil
}

func (p *parser) unexpected(t *token.Token) error {
	if t.Type == token.TEOF {
		return newError(token.ErrUnexpectedEOF, t.Pos)
	}
	e := newError(token.ErrUnexpected, t.Pos)
	e.Detail = fmt.Sprintf("%s %s", token.ErrUnexpected, t.Describe())
	return e
}

func (p *parser) object(open *token.Token, depth int) (*ir.Node, error) {
	var (
		fields []string
		values []*ir.Node
	)
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Type != token.TRCurl {
		for {
			if tok.Type != token.TString {
				return nil, p.unexpected(&tok)
			}
			key := tok.Value
			tok, err = p.next()
			if err != nil {
				return nil, err
			}
			if tok.Type != token.TColon {
				return nil, p.unexpected(&tok)
			}
			tok, err = p.next()
			if err != nil {
				return nil, err
			}
			val, err := p.value(&tok, depth)
			if err != nil {
				return nil, err
			}
			fields = append(fields, key)
			values = append(values, val)

			tok, err = p.next()
			if err != nil {
				return nil, err
			}
			if tok.Type == token.TRCurl {
				break
			}
			if tok.Type != token.TComma {
				return nil, p.unexpected(&tok)
			}
			tok, err = p.next()
			if err != nil {
				return nil, err
			}
			if tok.Type == token.TRCurl {
				if p.opts.strictCommas {
					return nil, p.unexpected(&tok)
				}
				break
			}
		}
	}
	res := ir.NewObject(fields, values)
	p.track(res, open.Pos)
	return res, nil
}

func (p *parser) array(open *token.Token, depth int) (*ir.Node, error) {
	var values []*ir.Node
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Type != token.TRSquare {
		for {
			val, err := p.value(&tok, depth)
			if err != nil {
				return nil, err
			}
			values = append(values, val)

			tok, err = p.next()
			if err != nil {
				return nil, err
			}
			if tok.Type == token.TRSquare {
				break
			}
			if tok.Type != token.TComma {
				return nil, p.unexpected(&tok)
			}
			tok, err = p.next()
			if err != nil {
				return nil, err
			}
			if tok.Type == token.TRSquare {
				if p.opts.strictCommas {
					return nil, p.unexpected(&tok)
				}
				break
			}
		}
	}
	res := &ir.Node{Type: ir.ArrayType, Values: values}
	p.track(res, open.Pos)
	return res, nil
}
