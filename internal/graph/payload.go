package graph

import "fmt"

// Node sizes in the rendered view.
const (
	centralSize = 50
	tissueSize  = 25
	geneSize    = 3
)

const centralColor = "red"
const fallbackColor = "#999999"

// palette cycles across tissue nodes in first-seen order.
var palette = []string{
	"#4daf4a", "#f781bf", "#a65628", "#984ea3", "#999999", "#e41a1c", "#377eb8",
	"#ff7f00", "#ffff33", "#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99",
	"#e31a1c", "#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a", "#ffff99", "#b15928", "#00ffff",
}

// PayloadNode is one node record in the embedded data contract consumed
// by the client script.
type PayloadNode struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	NodeType  string  `json:"node_type"`
	Size      float64 `json:"size"`
	Color     string  `json:"color"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Label     string  `json:"label,omitempty"`
	GeneCount int     `json:"gene_count,omitempty"`
	PCC       float64 `json:"pcc,omitempty"`
	Tissue    string  `json:"tissue,omitempty"`
}

// PayloadLink is one edge record in the embedded data contract.
type PayloadLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// TissueColors maps each tissue label to its palette color.
func (g *Graph) TissueColors() map[string]string {
	colors := make(map[string]string)
	for i, n := range g.Tissues() {
		colors[n.Name] = palette[i%len(palette)]
	}
	return colors
}

// Payload serializes the graph into the node and link arrays embedded in
// the rendered document: central first, then tissues, then genes, so the
// client hit-test (which scans back to front) finds genes first.
func (g *Graph) Payload() ([]PayloadNode, []PayloadLink) {
	colors := g.TissueColors()

	var nodes []PayloadNode
	if c := g.Central(); c != nil {
		nodes = append(nodes, PayloadNode{
			ID:       c.Name,
			Name:     c.Name,
			NodeType: string(Central),
			Size:     centralSize,
			Color:    centralColor,
			X:        c.X,
			Y:        c.Y,
			Label:    fmt.Sprintf("%s (central)", c.Name),
		})
	}
	for _, n := range g.Tissues() {
		nodes = append(nodes, PayloadNode{
			ID:        n.Name,
			Name:      n.Name,
			NodeType:  string(Tissue),
			Size:      tissueSize,
			Color:     colors[n.Name],
			X:         n.X,
			Y:         n.Y,
			Label:     fmt.Sprintf("%s (n=%d)", n.Name, n.GeneCount),
			GeneCount: n.GeneCount,
		})
	}
	for _, name := range g.order {
		n := g.nodes[name]
		if n.Type != Gene {
			continue
		}
		color, ok := colors[n.Tissue]
		if !ok {
			color = fallbackColor
		}
		nodes = append(nodes, PayloadNode{
			ID:       n.Name,
			Name:     n.Name,
			NodeType: string(Gene),
			Size:     geneSize,
			Color:    color,
			X:        n.X,
			Y:        n.Y,
			PCC:      n.PCC,
			Tissue:   n.Tissue,
		})
	}

	links := make([]PayloadLink, 0, len(g.edges))
	for _, e := range g.edges {
		links = append(links, PayloadLink{Source: e.Source, Target: e.Target, Value: e.Weight})
	}
	return nodes, links
}
