package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{MaxPage: 255}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "tree input format: yaml/y, json/j, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "tree output format: yaml/y, json/j, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "wbxml").
		WithSynopsis("wbxml [opts] command [opts]").
		WithDescription("wbxml is a tool for working with WAP binary XML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return wbxmlMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			EncodeCommand(cfg),
			DiffCommand(cfg),
			FindCommand(cfg),
			PagesCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithAliases("d", "du").
		WithSynopsis("dump [files]").
		WithDescription("decode wbxml documents and print them as text or as a tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [file]").
		WithDescription("encode a yaml, json or cbor tree as a wbxml document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encode(cfg, cc, args)
		})
	cfg.Encode = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithSynopsis("diff a b").
		WithDescription("diff wbxml documents, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("find").
		WithAliases("f").
		WithSynopsis("find <expr> [files]").
		WithDescription("print the elements matching an expr predicate, such as 'name == \"SyncKey\"'").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
	cfg.Find = cmd
	return cmd
}

func PagesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PagesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("pages").
		WithAliases("p").
		WithSynopsis("pages [page...]").
		WithDescription("list the code pages and tags of the -pages table").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pages(cfg, cc, args)
		})
	cfg.Pages = cmd
	return cmd
}
