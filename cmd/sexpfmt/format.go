package main

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/pretty"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/internal/census"
	"github.com/xiam/sexpr/parser"
)

type options struct {
	all    bool
	json   bool
	atoms  bool
	parser parser.ParserOptions
}

// result is everything sexpfmt may print or write for one input.
type result struct {
	name string
	src  []byte
	err  error

	canonical []byte
	changed   bool
	json      []byte
	census    *census.Census
}

var jsonStyle = &pretty.Options{Width: 80, Indent: "  "}

func process(name string, src []byte, opts options) *result {
	res := &result{name: name, src: src}

	p := parser.New(src)
	p.SetOptions(opts.parser)

	var nodes []*ast.Node
	if opts.all {
		nodes, res.err = p.ParseAll()
	} else {
		var node *ast.Node
		if node, res.err = p.Parse(); res.err == nil {
			nodes = []*ast.Node{node}
		}
	}
	if res.err != nil {
		return res
	}

	for _, n := range nodes {
		res.canonical = ast.AppendEncode(res.canonical, n)
		res.canonical = append(res.canonical, '\n')
	}
	res.changed = !bytes.Equal(res.canonical, src)

	if opts.json {
		var v any = nodes
		if !opts.all {
			v = nodes[0]
		}
		out, err := json.Marshal(v)
		if err != nil {
			res.err = err
			return res
		}
		res.json = pretty.PrettyOptions(out, jsonStyle)
	}

	if opts.atoms {
		res.census = census.New()
		for _, n := range nodes {
			res.census.Add(n)
		}
	}
	return res
}
