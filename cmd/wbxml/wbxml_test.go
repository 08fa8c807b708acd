package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-wbxml/codepage"
	"github.com/signadot/go-wbxml/token"
	"github.com/signadot/go-wbxml/tree"
)

func TestCloseOut(t *testing.T) {
	errClose := errors.New("disk full")
	cfg := &MainConfig{Out: "x.wbxml", CloseOut: func() error { return errClose }}
	if err := cfg.closeOut(nil); !errors.Is(err, errClose) {
		t.Fatalf("got %v", err)
	}
	if cfg.CloseOut != nil {
		t.Error("CloseOut not cleared")
	}
	errRun := errors.New("run failed")
	cfg.CloseOut = func() error { return errClose }
	if err := cfg.closeOut(errRun); err != errRun {
		t.Errorf("got %v, want %v", err, errRun)
	}
	cfg.CloseOut = func() error { return nil }
	if err := cfg.closeOut(nil); err != nil {
		t.Errorf("got %v", err)
	}
	if err := (&MainConfig{}).closeOut(nil); err != nil {
		t.Errorf("got %v", err)
	}
}

func TestTreeFormat(t *testing.T) {
	cfg := &MainConfig{}
	for file, want := range map[string]tree.Format{
		"a.json": tree.JSONFormat,
		"a.CBOR": tree.CBORFormat,
		"a.yaml": tree.YAMLFormat,
		"-":      tree.YAMLFormat,
	} {
		if got := cfg.treeFormat(file); got != want {
			t.Errorf("%s: got %s want %s", file, got, want)
		}
	}
	j := tree.JSONFormat
	cfg.InFormat = &j
	if got := cfg.treeFormat("a.yaml"); got != tree.JSONFormat {
		t.Errorf("-I ignored, got %s", got)
	}
}

func TestInputs(t *testing.T) {
	if diff := cmp.Diff([]string{"-"}, inputs(nil)); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, inputs([]string{"a", "b"})); diff != "" {
		t.Error(diff)
	}
}

func TestLoadDict(t *testing.T) {
	cfg := &MainConfig{MaxPage: 3}
	if err := cfg.loadDict(); err != nil {
		t.Fatal(err)
	}
	if !cfg.dict.IsValidPage(3) || cfg.dict.IsValidPage(4) {
		t.Error("wrong page range")
	}
	cfg = &MainConfig{Table: "../../codepage/testdata/airsync.yaml"}
	if err := cfg.loadDict(); err != nil {
		t.Fatal(err)
	}
	if cfg.table == nil || cfg.dict.NameOf(0, 0x05) != "Sync" {
		t.Error("table not loaded")
	}
}

func TestResolveWithoutTable(t *testing.T) {
	cfg := &MainConfig{}
	doc := &tree.Document{Root: []*tree.Node{tree.Element(token.MakeTag(0, 0x05), &tree.Node{Name: "SyncKey"})}}
	if err := cfg.resolve(doc); !errors.Is(err, errNoID) {
		t.Fatalf("got %v", err)
	}
	doc.Root[0].Children[0].ID = 0x0B
	if err := cfg.resolve(doc); err != nil {
		t.Fatal(err)
	}
}

func TestWritePages(t *testing.T) {
	tbl, err := codepage.NewTable(
		&codepage.Page{Page: 17, Name: "AirSyncBase", Tags: map[string]int{"Type": 0x06, "BodyPreference": 0x05}},
		&codepage.Page{Page: 0, Name: "AirSync", Tags: map[string]int{"Sync": 0x05}},
	)
	if err != nil {
		t.Fatal(err)
	}
	sel, err := selectPages(tbl, []string{"17"})
	if err != nil {
		t.Fatal(err)
	}
	buf := &strings.Builder{}
	if err := writePages(buf, sel); err != nil {
		t.Fatal(err)
	}
	want := "page 17 AirSyncBase\n  0x05 BodyPreference\n  0x06 Type\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := selectPages(tbl, []string{"3"}); err == nil {
		t.Error("expected error for missing page")
	}
	if _, err := selectPages(tbl, []string{"x"}); err == nil {
		t.Error("expected error for bad page")
	}
}
