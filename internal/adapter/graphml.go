package adapter

import (
	"encoding/xml"
	"fmt"
	"strconv"

	m "mutree.dev/pkg/mutree/internal/model"
)

const (
	graphMLNamespace = "http://graphml.graphdrawing.org/xmlns"

	// Attribute names follow the original export: "pos" on nodes and
	// "mutation" on edges.
	posAttr      = "pos"
	seedAttr     = "seed"
	mutationAttr = "mutation"
)

type graphMLDocument struct {
	XMLName xml.Name     `xml:"graphml"`
	XMLNS   string       `xml:"xmlns,attr,omitempty"`
	Keys    []graphMLKey `xml:"key"`
	Graph   graphMLGraph `xml:"graph"`
}

type graphMLKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type graphMLGraph struct {
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphMLNode `xml:"node"`
	Edges       []graphMLEdge `xml:"edge"`
}

type graphMLNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphMLData `xml:"data"`
}

type graphMLEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphMLData `xml:"data"`
}

type graphMLData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// EncodeGraphML renders graph as a GraphML document.
func EncodeGraphML(graph *m.MutationGraph) ([]byte, error) {
	doc := graphMLDocument{
		XMLNS: graphMLNamespace,
		Keys: []graphMLKey{
			{ID: "d0", For: "node", Name: posAttr, Type: "string"},
			{ID: "d1", For: "node", Name: seedAttr, Type: "boolean"},
			{ID: "d2", For: "edge", Name: mutationAttr, Type: "string"},
		},
		Graph: graphMLGraph{EdgeDefault: "directed"},
	}

	for _, word := range graph.Nodes() {
		node, _ := graph.Node(word)
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphMLNode{
			ID: word,
			Data: []graphMLData{
				{Key: "d0", Value: node.Category.String()},
				{Key: "d1", Value: strconv.FormatBool(node.Seed)},
			},
		})
	}

	for _, edge := range graph.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, graphMLEdge{
			Source: edge.From,
			Target: edge.To,
			Data:   []graphMLData{{Key: "d2", Value: edge.Description}},
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// DecodeGraphML parses a GraphML document produced by EncodeGraphML (or any
// GraphML file using the same attribute names).
func DecodeGraphML(data []byte) (*m.MutationGraph, error) {
	var doc graphMLDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Graph.EdgeDefault != "" && doc.Graph.EdgeDefault != "directed" {
		return nil, fmt.Errorf("expected a directed graph, got %q", doc.Graph.EdgeDefault)
	}

	names := make(map[string]string, len(doc.Keys))
	for _, key := range doc.Keys {
		names[key.ID] = key.Name
	}

	graph := m.NewMutationGraph()

	for _, node := range doc.Graph.Nodes {
		category := m.Unknown
		seed := false

		for _, d := range node.Data {
			switch names[d.Key] {
			case posAttr:
				category = m.ParseCategory(d.Value)
			case seedAttr:
				seed, _ = strconv.ParseBool(d.Value)
			}
		}

		if seed {
			graph.AddSeed(node.ID, category)
		} else {
			graph.AddNode(node.ID, category)
		}
	}

	for _, edge := range doc.Graph.Edges {
		description := ""

		for _, d := range edge.Data {
			if names[d.Key] == mutationAttr {
				description = d.Value
			}
		}

		graph.AddEdge(edge.Source, edge.Target, description)
	}

	return graph, nil
}
