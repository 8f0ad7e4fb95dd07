// Package layout assigns 2D coordinates: the central node at the origin,
// tissues on a golden-angle ring, and genes in a noisy cloud around
// their tissue.
package layout

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ycchou/corrnet/internal/graph"
)

// GoldenAngle spreads ring nodes near-uniformly without knowing their
// count in advance.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Cloud placement constants: higher scores pull genes closer to the
// tissue center and shrink the jitter.
const (
	baseGeneDistance    = 50
	geneDistanceSpan    = 150
	baseNoiseScale      = 0.3
	noiseScaleSpan      = 0.6
	angleNoiseFactor    = 0.5
	distanceNoiseFactor = 50
)

// DefaultRadius is the tissue ring radius.
const DefaultRadius = 400

// Position is a 2D coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Config configures an Engine.
type Config struct {
	Radius float64
	Seed   int64 // 0 = derive from current time
}

// Engine places nodes. The random source is explicit so a fixed seed
// reproduces exact coordinates.
type Engine struct {
	radius float64
	src    rand.Source
}

// New creates an Engine from config.
func New(cfg Config) *Engine {
	radius := cfg.Radius
	if radius <= 0 {
		radius = DefaultRadius
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{radius: radius, src: rand.NewSource(uint64(seed))}
}

// TissuePosition returns the ring position of the i-th tissue.
func (e *Engine) TissuePosition(i int) Position {
	angle := float64(i) * GoldenAngle
	return Position{X: e.radius * math.Cos(angle), Y: e.radius * math.Sin(angle)}
}

// Scatter places the idx-th of n genes around a tissue center. The base
// angle walks the circle evenly; distance and jitter derive from the
// score.
func (e *Engine) Scatter(center Position, idx, n int, pcc float64) Position {
	angle := float64(idx) / float64(n) * 2 * math.Pi
	distance := baseGeneDistance + (1-pcc)*geneDistanceSpan

	noise := distuv.Normal{Mu: 0, Sigma: baseNoiseScale + noiseScaleSpan*(1-pcc), Src: e.src}
	cloudAngle := angle + noise.Rand()*angleNoiseFactor
	cloudDistance := distance + noise.Rand()*distanceNoiseFactor

	return Position{
		X: center.X + cloudDistance*math.Cos(cloudAngle),
		Y: center.Y + cloudDistance*math.Sin(cloudAngle),
	}
}

// Apply positions every node in the graph in place.
func (e *Engine) Apply(g *graph.Graph) {
	if c := g.Central(); c != nil {
		c.X, c.Y = 0, 0
	}
	for i, t := range g.Tissues() {
		pos := e.TissuePosition(i)
		t.X, t.Y = pos.X, pos.Y

		genes := g.Genes(t.Name)
		for idx, n := range genes {
			p := e.Scatter(pos, idx, len(genes), n.PCC)
			n.X, n.Y = p.X, p.Y
		}
	}
}
