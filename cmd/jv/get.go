package main

import (
	"fmt"
	"io"
	"math/big"
	"net/url"
	"time"

	"github.com/signadot/jv"
	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"
	"github.com/signadot/jv/token"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	for _, file := range inputs(args[1:]) {
		if err := getFile(cfg, cc, file, path); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, file, path string) error {
	opts := cfg.parseOpts()
	var positions map[*ir.Node]*token.Pos
	if cfg.Pos {
		positions = map[*ir.Node]*token.Pos{}
		opts = append(opts, parse.ParsePositions(positions))
	}
	root, err := getObjFile(cc, file, opts...)
	if err != nil {
		return err
	}
	v := root.WithConfig(cfg.decodeConfig()).Get(path)
	if err := v.Err(); err != nil {
		return err
	}
	if cfg.Pos {
		node, _ := v.Node()
		if pos := positions[node]; pos != nil {
			line, col := pos.LineCol()
			fmt.Fprintf(cc.Out, "%s:%d:%d: ", file, line+1, col+1)
		}
	}
	if cfg.As != "" {
		return decodeAs(cc.Out, v, cfg.As)
	}
	node, _ := v.Node()
	return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
}

func decodeAs(w io.Writer, v jv.View, as string) error {
	var (
		res any
		err error
	)
	switch as {
	case "string":
		res, err = jv.Decode[string](v)
	case "bool":
		res, err = jv.Decode[bool](v)
	case "int":
		res, err = jv.Decode[int64](v)
	case "uint":
		res, err = jv.Decode[uint64](v)
	case "float":
		res, err = jv.Decode[float64](v)
	case "number":
		res, err = jv.Decode[jv.Number](v)
	case "bigint":
		res, err = jv.Decode[*big.Int](v)
	case "url":
		res, err = jv.Decode[*url.URL](v)
	case "time":
		res, err = jv.Decode[time.Time](v)
	case "strings":
		res, err = jv.Decode[[]string](v)
	case "ints":
		res, err = jv.Decode[[]int64](v)
	case "any":
		res, err = jv.Decode[any](v)
	default:
		return fmt.Errorf("%w: unknown type %q", cli.ErrUsage, as)
	}
	if err != nil {
		return err
	}
	theLog.Debug("decoded", "path", v.Path().String(), "as", as)
	_, err = fmt.Fprintln(w, res)
	return err
}
