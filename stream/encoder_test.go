package stream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-wbxml/token"
	"github.com/signadot/go-wbxml/wire"
)

const (
	syncSync         token.Tag = 0x05
	syncSyncKey      token.Tag = 0x0B
	syncCollection   token.Tag = 0x0F
	syncCollectionID token.Tag = 0x12
	syncOptions      token.Tag = 0x17
	syncCollections  token.Tag = 0x1C

	basePage           = 0x11
	baseBodyPreference = token.Tag(basePage<<token.PageShift | 0x05)
	baseType           = token.Tag(basePage<<token.PageShift | 0x06)
	baseTruncationSize = token.Tag(basePage<<token.PageShift | 0x07)
)

var syncRequest = []byte{
	0x03, 0x01, 0x6A, 0x00, 0x45, 0x5C, 0x4F, 0x4B, 0x03, 0x30, 0x00, 0x01, 0x52, 0x03, 0x32, 0x00,
	0x01, 0x57, 0x00, 0x11, 0x45, 0x46, 0x03, 0x31, 0x00, 0x01, 0x47, 0x03, 0x33, 0x32, 0x37, 0x36,
	0x38, 0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
}

func writeSyncRequest(e *Encoder) {
	e.Start(syncSync)
	e.Start(syncCollections)
	e.Start(syncCollection)
	e.Data(syncSyncKey, "0")
	e.Data(syncCollectionID, "2")
	e.Start(syncOptions)
	e.Start(baseBodyPreference)
	e.Data(baseType, "1")
	e.Data(baseTruncationSize, "32768")
	e.End()
	e.End()
	e.End()
	e.End()
	e.End()
}

func TestEncoderSyncRequest(t *testing.T) {
	e, err := NewEncoder(testDict)
	if err != nil {
		t.Fatal(err)
	}
	writeSyncRequest(e)
	if err := e.Finish(); err != nil {
		t.Fatal(err)
	}
	if got := e.Bytes(); !bytes.Equal(got, syncRequest) {
		t.Errorf("got  % X\nwant % X", got, syncRequest)
	}
}

func TestEncoderBuild(t *testing.T) {
	e, err := NewEncoder(testDict)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Build(writeSyncRequest); err != nil {
		t.Fatal(err)
	}
	if got := e.Bytes(); !bytes.Equal(got, syncRequest) {
		t.Errorf("got  % X\nwant % X", got, syncRequest)
	}
}

func TestEncoderChained(t *testing.T) {
	e, err := NewEncoder(testDict)
	if err != nil {
		t.Fatal(err)
	}
	err = e.Start(syncSync).
		Start(syncCollection).
		Data(syncSyncKey, "0").
		Tag(syncOptions).
		End().
		End().
		Finish()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x03, 0x01, 0x6A, 0x00, 0x45, 0x4F, 0x4B, 0x03, 0x30, 0x00, 0x01, 0x17, 0x01, 0x01}
	if got := e.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("got  % X\nwant % X", got, want)
	}
}

func TestEncoderBytes(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Encoder)
		want  []byte
	}{
		{
			name:  "single tag",
			build: func(e *Encoder) { e.Tag(syncSync) },
			want:  []byte{0x05},
		},
		{
			name:  "empty data",
			build: func(e *Encoder) { e.Data(syncSyncKey, "") },
			want:  []byte{0x0B},
		},
		{
			name:  "empty element",
			build: func(e *Encoder) { e.Start(syncSync).Start(syncSyncKey).Text("").End().End() },
			want:  []byte{0x45, 0x4B, 0x03, 0x00, 0x01, 0x01},
		},
		{
			name:  "opaque",
			build: func(e *Encoder) { e.Start(syncSync).Opaque([]byte{0x11, 0x22, 0x33}).End() },
			want:  []byte{0x45, 0xC3, 0x03, 0x11, 0x22, 0x33, 0x01},
		},
		{
			name:  "empty opaque",
			build: func(e *Encoder) { e.Start(syncSync).Opaque(nil).End() },
			want:  []byte{0x45, 0x01},
		},
		{
			name: "long opaque",
			build: func(e *Encoder) {
				e.Start(syncSync).Opaque(make([]byte, 200)).End()
			},
			want: append(append([]byte{0x45, 0xC3, 0x81, 0x48}, make([]byte, 200)...), 0x01),
		},
		{
			name: "opaque header",
			build: func(e *Encoder) {
				e.Start(syncSync)
				if e.OpaqueHeader(2) {
					e.Write([]byte{0xAA, 0xBB})
				}
				e.End()
			},
			want: []byte{0x45, 0xC3, 0x02, 0xAA, 0xBB, 0x01},
		},
		{
			name: "page switches",
			build: func(e *Encoder) {
				e.Start(syncSync).Tag(baseType).Tag(syncSyncKey).Tag(baseType).End()
			},
			want: []byte{0x45, 0x00, 0x11, 0x06, 0x00, 0x00, 0x0B, 0x00, 0x11, 0x06, 0x01},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEncoder(testDict, WithoutHeader())
			if err != nil {
				t.Fatal(err)
			}
			tt.build(e)
			if err := e.Finish(); err != nil {
				t.Fatal(err)
			}
			if got := e.Bytes(); !bytes.Equal(got, tt.want) {
				t.Errorf("got  % X\nwant % X", got, tt.want)
			}
		})
	}
}

func TestEncoderErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Encoder)
		want  error
	}{
		{
			name:  "unclosed",
			build: func(e *Encoder) { e.Start(syncSync).Start(syncSyncKey).End() },
			want:  token.ErrUnbalanced,
		},
		{
			name:  "pending",
			build: func(e *Encoder) { e.Start(syncSync) },
			want:  token.ErrUnbalanced,
		},
		{
			name:  "extra end",
			build: func(e *Encoder) { e.Tag(syncSync).End() },
			want:  token.ErrUnbalanced,
		},
		{
			name: "negative length",
			build: func(e *Encoder) {
				e.Start(syncSync)
				e.OpaqueHeader(-1)
				e.End()
			},
			want: token.ErrNegativeLength,
		},
		{
			name: "short opaque payload",
			build: func(e *Encoder) {
				e.Start(syncSync)
				e.OpaqueHeader(5)
				e.Write([]byte{0x01, 0x02})
				e.End()
			},
			want: token.ErrUnbalanced,
		},
		{
			name: "short opaque payload at finish",
			build: func(e *Encoder) {
				e.Start(syncSync)
				e.OpaqueHeader(2)
				e.Write([]byte{0x01})
			},
			want: token.ErrUnbalanced,
		},
		{
			name: "opaque payload overrun",
			build: func(e *Encoder) {
				e.Start(syncSync)
				e.OpaqueHeader(1)
				e.Write([]byte{0x01, 0x02})
				e.End()
			},
			want: token.ErrUnbalanced,
		},
		{
			name: "write without opaque header",
			build: func(e *Encoder) {
				e.Start(syncSync).Text("x")
				e.Write([]byte{0x01})
				e.End()
			},
			want: token.ErrUnbalanced,
		},
		{
			name:  "invalid utf8",
			build: func(e *Encoder) { e.Data(syncSyncKey, "\xff") },
			want:  token.ErrEncoding,
		},
		{
			name:  "nul in text",
			build: func(e *Encoder) { e.Data(syncSyncKey, "a\x00b") },
			want:  token.ErrEncoding,
		},
		{
			name:  "global id",
			build: func(e *Encoder) { e.Tag(token.Tag(token.Literal)) },
			want:  token.ErrGlobalToken,
		},
		{
			name:  "page out of range",
			build: func(e *Encoder) { e.Tag(token.MakeTag(0x100, 0x05)) },
			want:  token.ErrUnknownPage,
		},
		{
			name:  "text outside element",
			build: func(e *Encoder) { e.Text("x") },
			want:  token.ErrNoElement,
		},
		{
			name: "latched across valid calls",
			build: func(e *Encoder) {
				e.End()
				e.Tag(syncSync)
			},
			want: token.ErrUnbalanced,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEncoder(testDict)
			if err != nil {
				t.Fatal(err)
			}
			tt.build(e)
			if err := e.Finish(); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if !errors.Is(e.Err(), tt.want) {
				t.Errorf("Err() = %v", e.Err())
			}
		})
	}
}

func TestEncoderHeader(t *testing.T) {
	out := wire.NewSink()
	e, err := NewSinkEncoder(out, testDict, WithHeader(Header{Version: 0x02, PublicID: 0xA0, Charset: 4}))
	if err != nil {
		t.Fatal(err)
	}
	e.Tag(syncSync)
	if err := e.Finish(); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x02, 0x81, 0x20, 0x04, 0x00, 0x05}
	if got := out.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("got % X want % X", got, want)
	}
	dec, err := NewDecoder(out.Bytes(), testDict)
	if err != nil {
		t.Fatal(err)
	}
	if h := dec.Header(); h.Version != 0x02 || h.PublicID != 0xA0 || h.Charset != 4 {
		t.Errorf("decoded header %s", h)
	}
}

func TestEncoderUTF8(t *testing.T) {
	e, err := NewEncoder(testDict, WithoutHeader())
	if err != nil {
		t.Fatal(err)
	}
	e.Data(syncSyncKey, "ok")
	s, err := e.UTF8()
	if err != nil {
		t.Fatal(err)
	}
	if s != "K\x03ok\x00\x01" {
		t.Errorf("got %q", s)
	}
	e.Start(syncSync).Opaque([]byte{0xFF}).End()
	if _, err := e.UTF8(); !errors.Is(err, token.ErrEncoding) {
		t.Errorf("got %v, want ErrEncoding", err)
	}
}

func TestEncoderTrace(t *testing.T) {
	var lines []string
	e, err := NewEncoder(testDict, WithTrace(func(s string) { lines = append(lines, s) }))
	if err != nil {
		t.Fatal(err)
	}
	e.Start(syncSync).Data(syncSyncKey, "0").Tag(token.MakeTag(30, 5)).End()
	if err := e.Finish(); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"<T0_05>",
		"  <T0_0B>",
		"    0",
		"  </T0_0B>",
		"  Unrecognized page 30",
		"  <unknown/>",
		"</T0_05>",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

type event struct {
	Type token.Type
	Tag  token.Tag
	Text string
}

type node struct {
	tag  token.Tag
	text string
	kids []node
}

func (n node) encode(e *Encoder) {
	if len(n.kids) == 0 {
		e.Data(n.tag, n.text)
		return
	}
	e.Start(n.tag)
	for _, k := range n.kids {
		k.encode(e)
	}
	e.End()
}

func (n node) events() []event {
	res := []event{{Type: token.TStart, Tag: n.tag}}
	if n.text != "" {
		res = append(res, event{Type: token.TText, Tag: n.tag, Text: n.text})
	}
	for _, k := range n.kids {
		res = append(res, k.events()...)
	}
	return append(res, event{Type: token.TEnd, Tag: n.tag})
}

func TestRoundTrip(t *testing.T) {
	docs := []node{
		{tag: syncSync},
		{tag: syncSyncKey, text: "abc"},
		{tag: syncSync, kids: []node{
			{tag: syncCollections, kids: []node{
				{tag: syncCollection, kids: []node{
					{tag: syncSyncKey, text: "0"},
					{tag: baseType, text: "héllo"},
					{tag: syncOptions},
					{tag: baseBodyPreference, kids: []node{
						{tag: token.MakeTag(23, 0x3F), text: "deep"},
						{tag: syncSyncKey},
					}},
				}},
			}},
			{tag: syncCollectionID, text: "2"},
		}},
	}
	for i, d := range docs {
		e, err := NewEncoder(testDict)
		if err != nil {
			t.Fatal(err)
		}
		d.encode(e)
		if err := e.Finish(); err != nil {
			t.Fatalf("doc %d: %v", i, err)
		}
		dec, err := NewDecoder(e.Bytes(), testDict)
		if err != nil {
			t.Fatal(err)
		}
		var got []event
		for {
			typ, err := dec.Next()
			if err != nil {
				t.Fatalf("doc %d: %v", i, err)
			}
			if typ == token.TDone {
				break
			}
			ev := event{Type: typ, Tag: dec.Element().Tag}
			if typ == token.TText {
				ev.Text = dec.Text()
			}
			got = append(got, ev)
		}
		if diff := cmp.Diff(d.events(), got); diff != "" {
			t.Errorf("doc %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}
