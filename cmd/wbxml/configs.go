package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-wbxml/codepage"
	"github.com/signadot/go-wbxml/libdiff"
	"github.com/signadot/go-wbxml/stream"
	"github.com/signadot/go-wbxml/tree"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Table   string `cli:"name=pages desc='code page table, a .yaml, .yml or .toml file'"`
	MaxPage int    `cli:"name=maxpage desc='highest code page accepted when no table is given'"`
	Color   bool   `cli:"name=color desc='output with color'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='trace elements to stderr'"`
	Bytes   bool   `cli:"name=vv desc='trace every byte read to stderr'"`
	Gops    bool   `cli:"name=gops desc='start a gops agent'"`

	InFormat, OutFormat *tree.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	table *codepage.Table
	dict  codepage.Dictionary
}

func (cfg *MainConfig) fmtFunc(fps ...**tree.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := tree.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// loadDict sets up the dictionary named by -pages, or one accepting any
// tag on pages up to -maxpage.
func (cfg *MainConfig) loadDict() error {
	if cfg.dict != nil {
		return nil
	}
	if cfg.Table == "" {
		if cfg.MaxPage < 0 || cfg.MaxPage > 255 {
			return fmt.Errorf("%w: -maxpage must be between 0 and 255, got %d", cli.ErrUsage, cfg.MaxPage)
		}
		cfg.dict = codepage.Any{MaxPage: cfg.MaxPage}
		return nil
	}
	t, err := codepage.LoadFile(cfg.Table)
	if err != nil {
		return err
	}
	cfg.table = t
	cfg.dict = t
	return nil
}

func (cfg *MainConfig) streamOpts() []stream.StreamOption {
	var res []stream.StreamOption
	if cfg.Verbose || cfg.Bytes {
		res = append(res, stream.WithLogger(theLog.With("component", "wbxml")))
	}
	if cfg.Bytes {
		l := theLog.With("component", "bytes")
		res = append(res, stream.WithVerboseTrace(func(msg string) {
			l.Debug(msg)
		}))
	}
	return res
}

// useColor reports whether output to w should be colored: -color if given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) renderOpts(w io.Writer) []tree.RenderOption {
	if cfg.useColor(w) {
		return []tree.RenderOption{tree.RenderColors(tree.NewColors())}
	}
	return nil
}

func (cfg *MainConfig) diffColors(w io.Writer) *libdiff.Colors {
	if cfg.useColor(w) {
		return libdiff.NewColors()
	}
	return nil
}

type DumpConfig struct {
	*MainConfig

	Header  bool `cli:"name=header desc='print the document header'"`
	TagInfo bool `cli:"name=tags desc='annotate elements with page and id'"`

	Dump *cli.Command
}

type EncodeConfig struct {
	*MainConfig

	NoHeader bool `cli:"name=noheader desc='write element tokens only'"`

	Encode *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type FindConfig struct {
	*MainConfig

	Count bool `cli:"name=c aliases=count desc='print only the number of matches'"`

	Find *cli.Command
}

type PagesConfig struct {
	*MainConfig

	Pages *cli.Command
}
