package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-wbxml/tree"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	files := inputs(args)
	for i, file := range files {
		doc, err := cfg.decodeFile(cc, file)
		if err != nil {
			return err
		}
		if err := dumpDoc(cfg, cc.Out, doc); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
		if i < len(files)-1 {
			cc.Out.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func dumpDoc(cfg *DumpConfig, w io.Writer, doc *tree.Document) error {
	if cfg.OutFormat != nil {
		d, err := tree.Marshal(doc, *cfg.OutFormat)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	opts := append(cfg.renderOpts(w), tree.RenderHeader(cfg.Header), tree.RenderTagInfo(cfg.TagInfo))
	return tree.Render(doc, w, opts...)
}
