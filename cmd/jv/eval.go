package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/eval"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	prg, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	failed := false
	for _, file := range inputs(args[1:]) {
		v, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		doc, _ := v.Node()
		if cfg.Test {
			ok, err := prg.Test(doc, cfg.Env)
			if err != nil {
				return fmt.Errorf("error evaluating %s: %w", file, err)
			}
			theLog.Debug("test", "file", file, "result", ok)
			failed = failed || !ok
			continue
		}
		res, err := prg.Run(doc, cfg.Env)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result for %s: %w", file, err)
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// envFunc sets a dotted key of env to a value given in yaml.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
