package main

import (
	"fmt"

	"github.com/signadot/go-wbxml/libdiff"

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
	from, err := cfg.decodeFile(cc, args[0])
	if err != nil {
		return err
	}
	to, err := cfg.decodeFile(cc, args[1])
	if err != nil {
		return err
	}
	lines := libdiff.Documents(from, to)
	if !libdiff.Changed(lines) {
		return nil
	}
	if err := libdiff.Write(cc.Out, lines, cfg.diffColors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
