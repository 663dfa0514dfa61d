// Package bridge builds continuous beam bridge models on top of the frame
// solver and summarises their support reactions.
package bridge

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/gospan/internal/frame"
	"github.com/alexiusacademia/gospan/internal/nscp"
)

// ErrInvalidParameters indicates bridge parameters that cannot produce a model.
var ErrInvalidParameters = errors.New("bridge: invalid parameters")

// snapFraction is the distance, as a fraction of the shortest element, within
// which a point load is moved onto an existing station instead of creating
// a sliver element.
const snapFraction = 1e-4

// PointLoad is a concentrated downward live load (e.g. a vehicle axle group).
type PointLoad struct {
	Position float64 // Distance from the left end (m)
	Force    float64 // Downward force (N)
}

// Parameters describe a straight continuous girder on point supports.
type Parameters struct {
	// Geometry (m)
	Spans []float64

	// Girder properties (SI)
	E float64 // Elastic modulus (Pa)
	A float64 // Cross-sectional area (m²)
	I float64 // Second moment of area (m⁴)

	// Loading, positive downward
	DeadLoad   float64 // N/m over the full length
	LiveLoad   float64 // N/m over the full length
	PointLoads []PointLoad

	// Support conditions, one per span end ("pin", "roller", "fixed").
	// Empty means every support is pinned.
	Supports []string

	// Elements per span
	Subdivisions int
}

// DefaultParameters returns the three-span 20 m + 25 m + 20 m bridge with
// C50 concrete, 26.25 kN/m total line load and two 125 kN vehicle loads
// over the interior piers.
func DefaultParameters() Parameters {
	return Parameters{
		Spans:    []float64{20, 25, 20},
		E:        34.5e9,
		A:        0.45,
		I:        0.082,
		DeadLoad: 11.25e3,
		LiveLoad: 15.0e3,
		PointLoads: []PointLoad{
			{Position: 20, Force: 125e3},
			{Position: 45, Force: 125e3},
		},
		Subdivisions: 1,
	}
}

// TotalLength returns the sum of all spans.
func (p Parameters) TotalLength() float64 {
	var total float64
	for _, s := range p.Spans {
		total += s
	}
	return total
}

// SupportPositions returns the x coordinate of every support.
func (p Parameters) SupportPositions() []float64 {
	positions := []float64{0}
	for _, s := range p.Spans {
		positions = append(positions, positions[len(positions)-1]+s)
	}
	return positions
}

// Validate checks the parameters without building a model.
func (p Parameters) Validate() error {
	if len(p.Spans) == 0 {
		return fmt.Errorf("%w: at least one span is required", ErrInvalidParameters)
	}
	for i, s := range p.Spans {
		if s <= 0 {
			return fmt.Errorf("%w: span %d has length %g", ErrInvalidParameters, i+1, s)
		}
	}
	if p.E <= 0 || p.A <= 0 || p.I <= 0 {
		return fmt.Errorf("%w: E=%g, A=%g, I=%g must be positive", ErrInvalidParameters, p.E, p.A, p.I)
	}
	total := p.TotalLength()
	for i, pl := range p.PointLoads {
		if pl.Position < 0 || pl.Position > total {
			return fmt.Errorf("%w: point load %d at x=%g is outside the bridge (0 to %g m)", ErrInvalidParameters, i+1, pl.Position, total)
		}
	}
	if n := len(p.Supports); n != 0 && n != len(p.Spans)+1 {
		return fmt.Errorf("%w: %d support conditions given for %d supports", ErrInvalidParameters, n, len(p.Spans)+1)
	}
	for _, s := range p.Supports {
		if _, err := constraintFor(s); err != nil {
			return err
		}
	}
	return nil
}

func constraintFor(name string) (frame.Constraint, error) {
	switch name {
	case "", "pin", "pinned", "hinge":
		return frame.Pinned, nil
	case "roller":
		return frame.Roller, nil
	case "fixed":
		return frame.Fixed, nil
	}
	return frame.Constraint{}, fmt.Errorf("%w: unknown support type %q", ErrInvalidParameters, name)
}

// GoverningCombination returns the gravity combination giving the largest
// factored line load.
func GoverningCombination(p Parameters) nscp.LoadCombination {
	_, combo := nscp.Governing(nscp.LoadEffects{Dead: p.DeadLoad, Live: p.LiveLoad}, nscp.GravityCombinations)
	if combo.ID == "" {
		return nscp.ServiceCombination
	}
	return combo
}

// Bridge is a built frame model together with the bookkeeping needed to
// map results back to bridge stations.
type Bridge struct {
	Params      Parameters
	Combination nscp.LoadCombination

	Model        *frame.Model
	Stations     []float64 // x of node i
	SupportNodes []int     // node id of support i
	LineLoad     float64   // factored, N/m downward
}

// Build creates the frame model for p under combo. Nodes are placed at every
// support, every subdivision point and every point load position.
func Build(p Parameters, combo nscp.LoadCombination, opts ...frame.Option) (*Bridge, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Subdivisions < 1 {
		p.Subdivisions = 1
	}

	stations := p.stations()
	m := frame.New(opts...)
	for _, x := range stations {
		m.AddNode(x, 0)
	}

	b := &Bridge{
		Params:      p,
		Combination: combo,
		Model:       m,
		Stations:    stations,
		LineLoad:    combo.Factored(nscp.LoadEffects{Dead: p.DeadLoad, Live: p.LiveLoad}),
	}

	for i := 0; i < len(stations)-1; i++ {
		el, err := m.AddElement(i, i+1, p.E, p.A, p.I)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		if b.LineLoad != 0 {
			if err := m.AddDistributedLoad(el, -b.LineLoad); err != nil {
				return nil, err
			}
		}
	}

	for i, x := range p.SupportPositions() {
		node := b.nodeAt(x)
		var name string
		if len(p.Supports) > 0 {
			name = p.Supports[i]
		}
		c, _ := constraintFor(name)
		if err := m.AddSupport(node, c); err != nil {
			return nil, err
		}
		b.SupportNodes = append(b.SupportNodes, node)
	}

	for _, pl := range p.PointLoads {
		force := combo.Factored(nscp.LoadEffects{Live: pl.Force})
		if err := m.AddPointLoad(b.nodeAt(pl.Position), 0, -force, 0); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// stations returns the sorted node positions: span ends, subdivision points
// and point load positions. A point load within the snap tolerance of
// another station shares that station's node.
func (p Parameters) stations() []float64 {
	var xs []float64
	start := 0.0
	shortest := math.Inf(1)
	for _, span := range p.Spans {
		for k := 0; k < p.Subdivisions; k++ {
			xs = append(xs, start+span*float64(k)/float64(p.Subdivisions))
		}
		start += span
		shortest = math.Min(shortest, span/float64(p.Subdivisions))
	}
	xs = append(xs, start)

	tol := snapFraction * shortest
	for _, pl := range p.PointLoads {
		if !nearAny(xs, pl.Position, tol) {
			xs = append(xs, pl.Position)
		}
	}
	sort.Float64s(xs)
	return xs
}

func nearAny(xs []float64, x, tol float64) bool {
	for _, s := range xs {
		if math.Abs(s-x) <= tol {
			return true
		}
	}
	return false
}

// nodeAt returns the node closest to x. Stations always include every
// support and point load position.
func (b *Bridge) nodeAt(x float64) int {
	i := sort.SearchFloat64s(b.Stations, x)
	if i == len(b.Stations) || (i > 0 && math.Abs(b.Stations[i-1]-x) < math.Abs(b.Stations[i]-x)) {
		i--
	}
	return i
}
