package main

import (
	"fmt"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	jvpatch "github.com/signadot/jv/patch"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	pv, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	pNode, _ := pv.Node()
	var apply func(*ir.Node) (*ir.Node, error)
	if cfg.Merge {
		apply = func(doc *ir.Node) (*ir.Node, error) {
			return jvpatch.Merge(doc, pNode)
		}
	} else {
		p, err := jvpatch.Decode(pNode)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		theLog.Debug("json patch", "ops", p.Len())
		apply = p.Apply
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputs(args[1:]) {
		v, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		doc, _ := v.Node()
		res, err := apply(doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
