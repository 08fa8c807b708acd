package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/go-wbxml/tree"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}

// inputs is the list of files to process, stdin if there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func (cfg *MainConfig) decodeFile(cc *cli.Context, file string) (*tree.Document, error) {
	if err := cfg.loadDict(); err != nil {
		return nil, err
	}
	d, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	doc, err := tree.DecodeBytes(d, cfg.dict, cfg.streamOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return doc, nil
}

// treeFormat is the format of a tree file: -I if given, otherwise guessed
// from the file extension, defaulting to yaml.
func (cfg *MainConfig) treeFormat(file string) tree.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return tree.JSONFormat
	case ".cbor":
		return tree.CBORFormat
	default:
		return tree.YAMLFormat
	}
}
