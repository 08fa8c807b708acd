package query

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/signadot/go-wbxml/tree"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the view of one element seen by a predicate.
type Env struct {
	Name     string `expr:"name"`
	Page     int    `expr:"page"`
	ID       int    `expr:"id"`
	Path     string `expr:"path"`
	Depth    int    `expr:"depth"`
	Text     string `expr:"text"`
	HasText  bool   `expr:"hasText"`
	Opaque   []byte `expr:"opaque"`
	Size     int    `expr:"size"`
	Children int    `expr:"children"`
}

// Query is a compiled predicate. A Query is not safe for concurrent use.
type Query struct {
	src string
	prg *vm.Program
	cur *tree.Node
}

// Result is a matched element.
type Result struct {
	Path string
	Node *tree.Node
}

func Compile(src string) (*Query, error) {
	q := &Query{src: src}
	opts := append([]expr.Option{expr.Env(Env{}), expr.AsBool()}, q.funcs()...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", src, err)
	}
	q.prg = prg
	return q, nil
}

func (q *Query) String() string {
	return q.src
}

func (q *Query) funcs() []expr.Option {
	return []expr.Option{
		expr.Function("child", func(params ...any) (any, error) {
			c := q.child(params[0].(string))
			if c == nil {
				return "", nil
			}
			return c.Value(), nil
		},
			new(func(string) string)),
		expr.Function("has", func(params ...any) (any, error) {
			return q.child(params[0].(string)) != nil, nil
		},
			new(func(string) bool)),
		expr.Function("hex", func(params ...any) (any, error) {
			return hex.EncodeToString(params[0].([]byte)), nil
		},
			new(func([]byte) string)),
	}
}

func (q *Query) child(name string) *tree.Node {
	if q.cur == nil {
		return nil
	}
	for _, c := range q.cur.Children {
		if c.Label() == name {
			return c
		}
	}
	return nil
}

// Match evaluates the predicate on n, found at path.
func (q *Query) Match(path []string, n *tree.Node) (bool, error) {
	q.cur = n
	defer func() { q.cur = nil }()
	env := Env{
		Name:     n.Label(),
		Page:     n.Page,
		ID:       n.ID,
		Path:     strings.Join(path, "/"),
		Depth:    len(path),
		Text:     n.Value(),
		HasText:  n.Text != nil,
		Opaque:   n.Opaque,
		Size:     len(n.Opaque),
		Children: len(n.Children),
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("query %q at %s: %w", q.src, env.Path, err)
	}
	return res.(bool), nil
}

// Find returns the elements of doc matching q, in document order.
func (q *Query) Find(doc *tree.Document) ([]Result, error) {
	var (
		res []Result
		err error
	)
	doc.Walk(func(path []string, n *tree.Node) bool {
		var ok bool
		ok, err = q.Match(path, n)
		if err != nil {
			return false
		}
		if ok {
			res = append(res, Result{Path: strings.Join(path, "/"), Node: n})
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
