// Package graph builds the three-tier association graph: one central gene,
// tissue nodes around it, and gene nodes clustered per tissue.
package graph

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ycchou/corrnet/internal/dataset"
)

// NodeType discriminates the three node tiers.
type NodeType string

const (
	Central NodeType = "central"
	Tissue  NodeType = "tissue"
	Gene    NodeType = "gene"
)

// Edge weight rules.
const (
	CentralEdgeWeight = 5.0
	GeneWeightFactor  = 3.0
)

// DefaultMaxGenesPerTissue caps gene nodes per tissue.
const DefaultMaxGenesPerTissue = 150

// Node is one graph node with its computed position.
type Node struct {
	Name      string   `json:"name"`
	Type      NodeType `json:"type"`
	GeneCount int      `json:"gene_count,omitempty"` // tissue nodes
	PCC       float64  `json:"pcc,omitempty"`        // gene nodes
	Tissue    string   `json:"tissue,omitempty"`     // gene nodes: owning tissue
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
}

// Edge is an undirected weighted connection between two nodes.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Graph holds nodes in insertion order plus their edges.
type Graph struct {
	nodes   map[string]*Node
	order   []string
	edges   []Edge
	central string
}

// Stats holds summary counts.
type Stats struct {
	Tissues int
	Genes   int
	Edges   int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

func (g *Graph) insert(n *Node) {
	g.nodes[n.Name] = n
	g.order = append(g.order, n.Name)
}

// AddCentral inserts the central node. It may only be added once.
func (g *Graph) AddCentral(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("central node name cannot be empty")
	}
	if g.central != "" {
		return fmt.Errorf("central node already set: %s", g.central)
	}
	if _, exists := g.nodes[name]; exists {
		return fmt.Errorf("node already exists: %s", name)
	}
	g.central = name
	g.insert(&Node{Name: name, Type: Central})
	return nil
}

// AddTissue inserts one tissue node and its edge to the central node.
func (g *Graph) AddTissue(label string, geneCount int) error {
	if g.central == "" {
		return fmt.Errorf("central node must be added first")
	}
	if _, exists := g.nodes[label]; exists {
		return fmt.Errorf("node already exists: %s", label)
	}
	g.insert(&Node{Name: label, Type: Tissue, GeneCount: geneCount})
	g.edges = append(g.edges, Edge{Source: g.central, Target: label, Weight: CentralEdgeWeight})
	return nil
}

// AddGenes attaches gene nodes to a tissue. Records are ranked by score
// descending (ties keep input order) and truncated to maxGenes. A gene
// symbol already present in the graph keeps its first node; only the new
// edge is added. Returns the number of nodes added and of merged symbols.
func (g *Graph) AddGenes(tissue string, records []dataset.Record, maxGenes int) (added, merged int, err error) {
	t, ok := g.nodes[tissue]
	if !ok || t.Type != Tissue {
		return 0, 0, fmt.Errorf("tissue not found: %s", tissue)
	}
	if maxGenes <= 0 {
		maxGenes = DefaultMaxGenesPerTissue
	}

	ranked := make([]dataset.Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PCC > ranked[j].PCC
	})
	if len(ranked) > maxGenes {
		ranked = ranked[:maxGenes]
	}

	for _, r := range ranked {
		if _, exists := g.nodes[r.Gene]; exists {
			merged++
		} else {
			g.insert(&Node{Name: r.Gene, Type: Gene, PCC: r.PCC, Tissue: tissue})
			added++
		}
		g.edges = append(g.edges, Edge{Source: r.Gene, Target: tissue, Weight: r.PCC * GeneWeightFactor})
	}
	return added, merged, nil
}

// Central returns the central node, or nil if none was added.
func (g *Graph) Central() *Node {
	if g.central == "" {
		return nil
	}
	return g.nodes[g.central]
}

// Node returns a node by name.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Tissues returns the tissue nodes in first-seen order.
func (g *Graph) Tissues() []*Node {
	return g.byType(Tissue)
}

// Genes returns the gene nodes owned by a tissue, in ranked order.
func (g *Graph) Genes(tissue string) []*Node {
	var out []*Node
	for _, name := range g.order {
		n := g.nodes[name]
		if n.Type == Gene && n.Tissue == tissue {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

func (g *Graph) byType(t NodeType) []*Node {
	var out []*Node
	for _, name := range g.order {
		if n := g.nodes[name]; n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

// GetStats returns summary counts.
func (g *Graph) GetStats() Stats {
	s := Stats{Edges: len(g.edges)}
	for _, n := range g.nodes {
		switch n.Type {
		case Tissue:
			s.Tissues++
		case Gene:
			s.Genes++
		}
	}
	return s
}

// ExportJSON returns the graph as pretty-printed JSON, nodes in
// insertion order.
func (g *Graph) ExportJSON() ([]byte, error) {
	doc := struct {
		Nodes []*Node `json:"nodes"`
		Edges []Edge  `json:"edges"`
	}{Edges: g.edges}
	for _, name := range g.order {
		doc.Nodes = append(doc.Nodes, g.nodes[name])
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportDOT returns the graph in Graphviz DOT format.
func (g *Graph) ExportDOT() string {
	var b strings.Builder
	b.WriteString("graph corrnet {\n")
	b.WriteString("  layout=neato;\n")
	b.WriteString("  node [shape=circle];\n\n")

	for _, name := range g.order {
		n := g.nodes[name]
		b.WriteString(fmt.Sprintf("  %q [class=%q];\n", n.Name, string(n.Type)))
	}

	b.WriteString("\n")
	for _, e := range g.edges {
		b.WriteString(fmt.Sprintf("  %q -- %q [weight=%.2f];\n", e.Source, e.Target, e.Weight))
	}

	b.WriteString("}\n")
	return b.String()
}
