package main

import (
	"errors"
	"fmt"

	"github.com/signadot/go-wbxml/stream"
	"github.com/signadot/go-wbxml/tree"

	"github.com/scott-cotton/cli"
)

var errNoID = errors.New("element needs an id or a -pages table")

func encode(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		cfg.Encode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: encode takes at most one file, got %v", cli.ErrUsage, args)
	}
	file := inputs(args)[0]
	if err := cfg.loadDict(); err != nil {
		return err
	}
	d, err := readInput(cc, file)
	if err != nil {
		return err
	}
	doc, err := tree.Unmarshal(d, cfg.treeFormat(file))
	if err != nil {
		return fmt.Errorf("error reading tree from %s: %w", file, err)
	}
	if err := cfg.resolve(doc); err != nil {
		return fmt.Errorf("error in %s: %w", file, err)
	}
	opts := cfg.streamOpts()
	if cfg.NoHeader {
		opts = append(opts, stream.WithoutHeader())
	}
	out, err := tree.EncodeBytes(doc, cfg.dict, opts...)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	_, err = cc.Out.Write(out)
	return err
}

func (cfg *MainConfig) resolve(doc *tree.Document) error {
	if cfg.table != nil {
		return tree.Resolve(doc, cfg.table)
	}
	var err error
	doc.Walk(func(path []string, n *tree.Node) bool {
		if n.ID == 0 {
			err = fmt.Errorf("%w: %q", errNoID, n.Name)
			return false
		}
		return true
	})
	return err
}
