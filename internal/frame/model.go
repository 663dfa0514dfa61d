// Package frame implements a planar beam solver using the direct stiffness
// method.
//
// A Model is built incrementally (nodes, elements, supports, loads) and then
// solved once. Each node carries three degrees of freedom in the order
// axial displacement, transverse displacement, rotation; the global index of
// DOF k at node n is n*3+k. Elements are 2D Euler-Bernoulli beams with no
// coupling between axial and bending behaviour.
//
// Units are the caller's choice as long as they are consistent. The bridge
// package uses SI throughout (m, Pa, N).
package frame

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
)

type state int

const (
	unsolved state = iota
	solved
)

// Model holds the definition of a beam structure and, once solved, its
// displacement and reaction vectors.
type Model struct {
	nodes    []Node
	elements []Element
	supports []Support
	dist     []DistributedLoad
	point    []PointLoad

	logger *log.Logger

	state         state
	displacements []float64
	reactions     []float64
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used to report solver progress at debug level.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates an empty, unsolved model.
func New(opts ...Option) *Model {
	m := &Model{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddNode adds a node at (x, y) and returns its id.
// Node ids are assigned sequentially from zero. A solved model returns -1,
// which every other method rejects as an invalid reference.
func (m *Model) AddNode(x, y float64) int {
	if m.state == solved {
		m.logger.Warn("ignoring node added to solved model", "x", x, "y", y)
		return -1
	}
	id := len(m.nodes)
	m.nodes = append(m.nodes, Node{ID: id, X: x, Y: y})
	return id
}

// AddElement adds a beam element between two existing nodes and returns its id.
func (m *Model) AddElement(n1, n2 int, e, a, i float64) (int, error) {
	if m.state == solved {
		return -1, ErrSolved
	}
	if err := m.checkNode(n1); err != nil {
		return -1, err
	}
	if err := m.checkNode(n2); err != nil {
		return -1, err
	}
	if e <= 0 || a <= 0 || i <= 0 {
		return -1, fmt.Errorf("%w: E=%g, A=%g, I=%g", ErrInvalidProperty, e, a, i)
	}

	p1, p2 := m.nodes[n1], m.nodes[n2]
	length := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	if length == 0 {
		return -1, fmt.Errorf("%w: nodes %d and %d coincide", ErrZeroLength, n1, n2)
	}

	id := len(m.elements)
	m.elements = append(m.elements, Element{
		ID:     id,
		Nodes:  [2]int{n1, n2},
		E:      e,
		A:      a,
		I:      i,
		Length: length,
	})
	return id, nil
}

// AddSupport constrains the DOFs of a node marked true in c.
// Several supports on the same node combine their constraints, and each
// of them reports the node's full reaction in SupportReactions.
func (m *Model) AddSupport(node int, c Constraint) error {
	if m.state == solved {
		return ErrSolved
	}
	if err := m.checkNode(node); err != nil {
		return err
	}
	m.supports = append(m.supports, Support{Node: node, Constraint: c})
	return nil
}

// AddDistributedLoad applies a uniform transverse load q over the full
// length of an element. The sign of q follows the transverse DOF.
func (m *Model) AddDistributedLoad(elem int, q float64) error {
	if m.state == solved {
		return ErrSolved
	}
	if elem < 0 || elem >= len(m.elements) {
		return &ReferenceError{Kind: "element", ID: elem}
	}
	m.dist = append(m.dist, DistributedLoad{Element: elem, Q: q})
	return nil
}

// AddPointLoad applies a force/moment triple directly at a node.
func (m *Model) AddPointLoad(node int, fx, fy, mz float64) error {
	if m.state == solved {
		return ErrSolved
	}
	if err := m.checkNode(node); err != nil {
		return err
	}
	m.point = append(m.point, PointLoad{Node: node, Fx: fx, Fy: fy, Mz: mz})
	return nil
}

func (m *Model) checkNode(id int) error {
	if id < 0 || id >= len(m.nodes) {
		return &ReferenceError{Kind: "node", ID: id}
	}
	return nil
}

// Nodes returns a copy of the model's nodes.
func (m *Model) Nodes() []Node {
	return append([]Node(nil), m.nodes...)
}

// Elements returns a copy of the model's elements.
func (m *Model) Elements() []Element {
	return append([]Element(nil), m.elements...)
}

// Supports returns a copy of the model's supports.
func (m *Model) Supports() []Support {
	return append([]Support(nil), m.supports...)
}

// NumDOF returns the size of the global system.
func (m *Model) NumDOF() int {
	return len(m.nodes) * 3
}

// Solved reports whether Solve has completed successfully.
func (m *Model) Solved() bool {
	return m.state == solved
}
