package main

import (
	"fmt"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/kpath"
	"github.com/signadot/jv/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	p, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var val *ir.Node
	if cfg.String {
		val = ir.FromString(args[1])
	} else {
		val, err = parse.ParseString(args[1], parse.StrictTrailing())
		if err != nil {
			return fmt.Errorf("%w: value %q: %w", cli.ErrUsage, args[1], err)
		}
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputs(args[2:]) {
		v, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		node, err := v.Set(p, val).Node()
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
