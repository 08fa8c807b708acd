package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-wbxml/query"
	"github.com/signadot/go-wbxml/tree"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := inputs(args[1:])
	count := 0
	for _, file := range files {
		doc, err := cfg.decodeFile(cc, file)
		if err != nil {
			return err
		}
		res, err := q.Find(doc)
		if err != nil {
			return err
		}
		count += len(res)
		if cfg.Count {
			continue
		}
		prefix := ""
		if len(files) > 1 {
			prefix = file + ":"
		}
		if err := writeResults(cfg, cc.Out, prefix, res); err != nil {
			return err
		}
	}
	if cfg.Count {
		fmt.Fprintln(cc.Out, count)
	}
	if count == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeResults(cfg *FindConfig, w io.Writer, prefix string, res []query.Result) error {
	opts := cfg.renderOpts(w)
	for _, r := range res {
		fmt.Fprintf(w, "%s%s\n", prefix, r.Path)
		doc := &tree.Document{Root: []*tree.Node{r.Node}}
		if err := tree.Render(doc, w, append(opts, tree.RenderIndent(2))...); err != nil {
			return err
		}
	}
	return nil
}
