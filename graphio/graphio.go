// SPDX-License-Identifier: MIT
//
// File: graphio.go
// Role: YAML graph documents <-> core.Graph[string, core.Cost].
// Determinism:
//   - Encode writes nodes and edges in insertion order.
//   - Decode inserts nodes listed under "nodes" first, then edge endpoints
//     in the order they appear.

// Package graphio reads and writes graphs as small YAML documents:
//
//	kind: oriented        # or unoriented
//	nodes: [A, B, C]      # optional; edge endpoints are added implicitly
//	edges:
//	  - {from: A, to: B, weight: 2}
//	  - {from: A, to: C}  # edge without payload
//
// Node payloads are the names; edge payloads are core.Cost.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LugolBis/Data-Toolkit/core"
)

// Sentinel errors returned while decoding documents.
var (
	// ErrBadDocument indicates malformed YAML, unknown fields or an empty input.
	ErrBadDocument = errors.New("graphio: malformed graph document")

	// ErrEmptyNodeName indicates an empty node name in "nodes" or in an edge.
	ErrEmptyNodeName = errors.New("graphio: empty node name")
)

// Document is the serialized form of a graph.
type Document struct {
	Kind  string    `yaml:"kind"`
	Nodes []string  `yaml:"nodes,omitempty"`
	Edges []EdgeDoc `yaml:"edges,omitempty"`
}

// EdgeDoc is one stored edge. A nil Weight means the edge carries no payload.
type EdgeDoc struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// Decode parses one document from r and builds the graph it describes.
func Decode(r io.Reader) (*core.Graph[string, core.Cost], error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrBadDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return Build(&doc)
}

// Load opens path and decodes it.
func Load(path string) (*core.Graph[string, core.Cost], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Build turns a parsed document into a graph.
//
// Errors:
//   - ErrBadDocument wrapping core.ErrUnknownKind: missing or unknown "kind".
//   - ErrEmptyNodeName: an empty name anywhere.
func Build(doc *Document) (*core.Graph[string, core.Cost], error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrBadDocument)
	}
	kind, err := core.ParseKind(doc.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	g, err := core.NewGraph[string, core.Cost](kind)
	if err != nil {
		return nil, err
	}

	for i, name := range doc.Nodes {
		if name == "" {
			return nil, fmt.Errorf("%w: nodes[%d]", ErrEmptyNodeName, i)
		}
		if _, err = g.AddNode(name); err != nil {
			return nil, err
		}
	}

	var from, to core.NodeRef
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edges[%d]", ErrEmptyNodeName, i)
		}
		if from, err = g.AddNode(e.From); err != nil {
			return nil, err
		}
		if to, err = g.AddNode(e.To); err != nil {
			return nil, err
		}
		if e.Weight == nil {
			_, err = g.AddEdge(from, to)
		} else {
			_, err = g.AddWeightedEdge(from, to, core.Cost(*e.Weight))
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// Snapshot captures g as a Document. Every node is listed so isolated nodes
// survive a round trip. It reads from one Clone, so concurrent writers never
// tear the document.
func Snapshot(g *core.Graph[string, core.Cost]) *Document {
	g = g.Clone()
	doc := &Document{Kind: g.Kind().String()}
	for _, n := range g.Nodes() {
		if name, err := g.Value(n); err == nil {
			doc.Nodes = append(doc.Nodes, name)
		}
	}
	for _, e := range g.Edges() {
		from, to, err := g.Endpoints(e)
		if err != nil {
			continue
		}
		ed := EdgeDoc{}
		ed.From, _ = g.Value(from)
		ed.To, _ = g.Value(to)
		if w, ok, _ := g.EdgeValue(e); ok {
			x := float64(w)
			ed.Weight = &x
		}
		doc.Edges = append(doc.Edges, ed)
	}

	return doc
}

// Encode writes g to w as a YAML document.
func Encode(w io.Writer, g *core.Graph[string, core.Cost]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Snapshot(g)); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}
