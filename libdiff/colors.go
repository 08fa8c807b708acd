package libdiff

import (
	"strings"

	"github.com/fatih/color"
)

// Colors maps diff operations to color functions.
type Colors struct {
	Map map[Op]func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{Map: map[Op]func(string, ...any) string{
		Delete: color.RGB(196, 64, 64).SprintfFunc(),
		Insert: color.RGB(8, 196, 16).SprintfFunc(),
	}}
	for k, f := range c.Map {
		c.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return c
}

func (c *Colors) get(o Op) func(string, ...any) string {
	if c == nil || c.Map[o] == nil {
		return plain
	}
	return c.Map[o]
}

func plain(v string, _ ...any) string { return v }
