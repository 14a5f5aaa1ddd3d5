package main

import (
	"fmt"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/libdiff"
	jvpatch "github.com/signadot/jv/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	v1, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	v2, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	from, _ := v1.Node()
	to, _ := v2.Node()
	if cfg.Reverse {
		from, to = to, from
	}
	if cfg.Merge {
		m, err := jvpatch.CreateMerge(from, to)
		if err != nil {
			return err
		}
		if err := encode.Encode(m, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if m.Len() != 0 {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	changes := libdiff.Diff(from, to)
	theLog.Debug("diff", "changes", len(changes))
	for i := range changes {
		fmt.Fprintln(cc.Out, changes[i].String())
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
