package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jv"
	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/format"
	"github.com/signadot/jv/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color       bool `cli:"name=color desc='encode with color'"`
	Pretty      bool `cli:"name=p aliases=pretty desc='indent output'"`
	SourceOrder bool `cli:"name=src desc='keep object fields in source order'"`
	Strict      bool `cli:"name=strict desc='reject trailing commas and trailing data, no coercions'"`
	Lenient     bool `cli:"name=lenient desc='lenient coercions when decoding'"`
	MaxDepth    int  `cli:"name=depth desc='maximum nesting depth'"`
	Verbose     bool `cli:"name=v desc='debug logging'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Strict {
		res = append(res, parse.StrictCommas(), parse.StrictTrailing())
	}
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) decodeConfig() *jv.Config {
	switch {
	case cfg.Strict:
		return jv.StrictConfig()
	case cfg.Lenient:
		return jv.LenientConfig()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var f format.Format
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeSourceOrder(cfg.SourceOrder),
	}
	if cfg.Pretty {
		res = append(res, encode.EncodePretty())
	}
	if !f.IsJSON() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	file, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(file.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	As  string `cli:"name=as desc='decode as string, bool, int, uint, float, number, bigint, url, time, strings, ints or any'"`
	Pos bool   `cli:"name=pos desc='print the line and column of the value'"`

	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type SetConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='set the value as a string'"`

	Set *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Merge   bool `cli:"name=merge desc='output a json merge patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=merge desc='patch is a json merge patch'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Test bool `cli:"name=test desc='exit 1 unless the expression is true'"`

	Eval *cli.Command
}
