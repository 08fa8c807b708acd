package tree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
	CBORFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"c":    CBORFormat,
		"cbor": CBORFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsBinary reports whether f should not be written to a terminal.
func (f Format) IsBinary() bool { return f == CBORFormat }

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("tree: cbor encoder: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("tree: cbor decoder: " + err.Error())
	}
}

// Marshal serializes doc in format f.
func Marshal(doc *Document, f Format) ([]byte, error) {
	switch f {
	case YAMLFormat:
		return yaml.Marshal(doc)
	case JSONFormat:
		d, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(d, '\n'), nil
	case CBORFormat:
		return cborEnc.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

// Unmarshal parses a document serialized in format f.
func Unmarshal(d []byte, f Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch f {
	case YAMLFormat:
		err = yaml.Unmarshal(d, doc)
	case JSONFormat:
		err = json.Unmarshal(d, doc)
	case CBORFormat:
		err = cborDec.Unmarshal(d, doc)
	default:
		err = fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}
