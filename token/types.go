package token

import "fmt"

// Type is the class of a decoder step.
type Type int

const (
	TNone Type = iota
	TDone
	TStart
	TEnd
	TText
	TOpaque
)

func (t Type) String() string {
	return map[Type]string{
		TNone:   "TNone",
		TDone:   "TDone",
		TStart:  "TStart",
		TEnd:    "TEnd",
		TText:   "TText",
		TOpaque: "TOpaque",
	}[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]Type{
		"TNone":   TNone,
		"TDone":   TDone,
		"TStart":  TStart,
		"TEnd":    TEnd,
		"TText":   TText,
		"TOpaque": TOpaque,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}
