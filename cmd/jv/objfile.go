package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jv"
	"github.com/signadot/jv/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (jv.View, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return jv.View{}, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return jv.View{}, fmt.Errorf("error reading %q: %w", path, err)
	}
	theLog.Debug("read input", "path", path, "bytes", len(d))
	return jv.Parse(d, opts...)
}

// inputs returns args, or "-" for standard input when args is empty.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
