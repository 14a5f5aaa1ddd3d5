package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	path := ""
	if len(args) > 0 {
		path = args[0]
		args = args[1:]
	}
	for _, file := range inputs(args) {
		v, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		ks, err := v.Get(path).Keys()
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		for _, k := range ks {
			fmt.Fprintln(cc.Out, k)
		}
	}
	return nil
}
