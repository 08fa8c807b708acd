package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/signadot/go-wbxml/codepage"
	"github.com/signadot/go-wbxml/tree"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func pages(cfg *PagesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pages.Parse(cc, args)
	if err != nil {
		cfg.Pages.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Table == "" {
		return fmt.Errorf("%w: pages requires -pages", cli.ErrUsage)
	}
	if err := cfg.loadDict(); err != nil {
		return err
	}
	sel, err := selectPages(cfg.table, args)
	if err != nil {
		return err
	}
	if cfg.OutFormat == nil {
		return writePages(cc.Out, sel)
	}
	var d []byte
	switch *cfg.OutFormat {
	case tree.YAMLFormat:
		d, err = yaml.Marshal(&codepage.Table{Pages: sel})
	case tree.JSONFormat:
		d, err = json.MarshalIndent(&codepage.Table{Pages: sel}, "", "  ")
		d = append(d, '\n')
	default:
		return fmt.Errorf("%w: pages cannot be written as %s", cli.ErrUsage, *cfg.OutFormat)
	}
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

func selectPages(t *codepage.Table, args []string) ([]*codepage.Page, error) {
	if len(args) == 0 {
		return t.Pages, nil
	}
	var res []*codepage.Page
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: bad page number %q", cli.ErrUsage, arg)
		}
		i := slices.IndexFunc(t.Pages, func(p *codepage.Page) bool { return p.Page == n })
		if i < 0 {
			return nil, fmt.Errorf("page %d is not in the table", n)
		}
		res = append(res, t.Pages[i])
	}
	return res, nil
}

type tagEntry struct {
	id   int
	name string
}

func writePages(w io.Writer, ps []*codepage.Page) error {
	bw := bufio.NewWriter(w)
	for _, p := range ps {
		fmt.Fprintf(bw, "page %d %s\n", p.Page, p.Name)
		tags := make([]tagEntry, 0, len(p.Tags))
		for name, id := range p.Tags {
			tags = append(tags, tagEntry{id: id, name: name})
		}
		slices.SortFunc(tags, func(a, b tagEntry) int { return a.id - b.id })
		for _, t := range tags {
			fmt.Fprintf(bw, "  0x%02X %s\n", t.id, t.name)
		}
	}
	return bw.Flush()
}
