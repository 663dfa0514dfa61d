package frame

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ConditionLimit is the largest condition number of the reduced stiffness
// matrix accepted by Solve.
const ConditionLimit = 1e12

// Result holds the full displacement and reaction vectors of a solved model,
// both indexed by global DOF.
type Result struct {
	Displacements []float64
	Reactions     []float64
}

// SupportReaction is the force/moment a support exerts on its node.
// Components for unconstrained DOFs are reported as zero.
type SupportReaction struct {
	Node int
	Rx   float64 // N
	Ry   float64 // N
	Mz   float64 // N-m
}

// Assemble builds the global stiffness matrix K and load vector F.
func (m *Model) Assemble() (*mat.Dense, *mat.VecDense) {
	n := m.NumDOF()
	if n == 0 {
		return &mat.Dense{}, &mat.VecDense{}
	}
	K := mat.NewDense(n, n, nil)
	F := mat.NewVecDense(n, nil)

	for _, el := range m.elements {
		k := el.Stiffness()
		dofs := el.dofMap()
		for a := 0; a < 6; a++ {
			for b := 0; b < 6; b++ {
				K.Set(dofs[a], dofs[b], K.At(dofs[a], dofs[b])+k[a][b])
			}
		}
	}

	for _, load := range m.dist {
		el := m.elements[load.Element]
		f := el.EquivalentNodalLoads(load.Q)
		dofs := el.dofMap()
		for a := 0; a < 6; a++ {
			F.SetVec(dofs[a], F.AtVec(dofs[a])+f[a])
		}
	}

	for _, load := range m.point {
		base := load.Node * 3
		F.SetVec(base, F.AtVec(base)+load.Fx)
		F.SetVec(base+1, F.AtVec(base+1)+load.Fy)
		F.SetVec(base+2, F.AtVec(base+2)+load.Mz)
	}

	return K, F
}

// freeDOFs returns the DOF indices not constrained by any support, in
// ascending order.
func (m *Model) freeDOFs() []int {
	constrained := make([]bool, m.NumDOF())
	for _, s := range m.supports {
		for k, c := range s.Constraint {
			if c {
				constrained[s.Node*3+k] = true
			}
		}
	}
	free := make([]int, 0, len(constrained))
	for i, c := range constrained {
		if !c {
			free = append(free, i)
		}
	}
	return free
}

// Solve assembles the global system, removes the constrained DOFs, solves
// the reduced system K_ff·U_f = F_f and recovers reactions as R = K·U − F.
//
// Solve may be called again on a solved model and recomputes the same
// result. If the reduced system is singular the model stays unsolved and
// ErrSingularSystem is returned.
func (m *Model) Solve() (*Result, error) {
	n := m.NumDOF()
	if n == 0 {
		return nil, fmt.Errorf("%w: model has no nodes", ErrSingularSystem)
	}

	K, F := m.Assemble()
	free := m.freeDOFs()
	m.logger.Debug("assembled global system", "dofs", n, "free", len(free), "elements", len(m.elements))

	U := mat.NewVecDense(n, nil)
	if nf := len(free); nf > 0 {
		Kff := mat.NewDense(nf, nf, nil)
		Ff := mat.NewVecDense(nf, nil)
		for a, i := range free {
			Ff.SetVec(a, F.AtVec(i))
			for b, j := range free {
				Kff.Set(a, b, K.At(i, j))
			}
		}

		var lu mat.LU
		lu.Factorize(Kff)
		cond := lu.Cond()
		m.logger.Debug("factorized reduced stiffness", "size", nf, "cond", cond)
		if math.IsInf(cond, 0) || math.IsNaN(cond) || cond > ConditionLimit {
			return nil, fmt.Errorf("%w: condition number %g", ErrSingularSystem, cond)
		}

		Uf := mat.NewVecDense(nf, nil)
		if err := lu.SolveVecTo(Uf, false, Ff); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
		}
		for a, i := range free {
			v := Uf.AtVec(a)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite displacement at DOF %d", ErrSingularSystem, i)
			}
			U.SetVec(i, v)
		}
	}

	R := mat.NewVecDense(n, nil)
	R.MulVec(K, U)
	R.SubVec(R, F)

	m.displacements = append(m.displacements[:0], U.RawVector().Data...)
	m.reactions = append(m.reactions[:0], R.RawVector().Data...)
	m.state = solved
	m.logger.Debug("solved", "supports", len(m.supports))

	return m.result(), nil
}

func (m *Model) result() *Result {
	return &Result{
		Displacements: append([]float64(nil), m.displacements...),
		Reactions:     append([]float64(nil), m.reactions...),
	}
}

// Displacements returns the full displacement vector.
func (m *Model) Displacements() ([]float64, error) {
	if m.state != solved {
		return nil, ErrUnsolved
	}
	return append([]float64(nil), m.displacements...), nil
}

// Reactions returns the full reaction vector R = K·U − F.
func (m *Model) Reactions() ([]float64, error) {
	if m.state != solved {
		return nil, ErrUnsolved
	}
	return append([]float64(nil), m.reactions...), nil
}

// SupportReactions returns one entry per declared support, in declaration
// order, reporting only the constrained components. A node carrying more
// than one support appears once per support with the node's full reaction,
// so summing the entries counts that node more than once.
func (m *Model) SupportReactions() ([]SupportReaction, error) {
	if m.state != solved {
		return nil, ErrUnsolved
	}
	out := make([]SupportReaction, 0, len(m.supports))
	for _, s := range m.supports {
		base := s.Node * 3
		r := SupportReaction{Node: s.Node}
		if s.Constraint[0] {
			r.Rx = m.reactions[base]
		}
		if s.Constraint[1] {
			r.Ry = m.reactions[base+1]
		}
		if s.Constraint[2] {
			r.Mz = m.reactions[base+2]
		}
		out = append(out, r)
	}
	return out, nil
}

// NodeDisplacement returns the axial, transverse and rotational
// displacement of a node.
func (m *Model) NodeDisplacement(node int) ([3]float64, error) {
	var d [3]float64
	if m.state != solved {
		return d, ErrUnsolved
	}
	if err := m.checkNode(node); err != nil {
		return d, err
	}
	copy(d[:], m.displacements[node*3:node*3+3])
	return d, nil
}

// MaxDeflection returns the node with the largest absolute transverse
// displacement and that displacement (signed).
func (m *Model) MaxDeflection() (int, float64, error) {
	if m.state != solved {
		return -1, 0, ErrUnsolved
	}
	node, maxV := -1, 0.0
	for i := range m.nodes {
		v := m.displacements[i*3+1]
		if node < 0 || math.Abs(v) > math.Abs(maxV) {
			node, maxV = i, v
		}
	}
	return node, maxV, nil
}

// ElementEndForces returns the element's end forces in the local DOF order
// [N₁, V₁, M₁, N₂, V₂, M₂], computed as k·uₑ − fₑ where fₑ collects the
// equivalent nodal loads of every distributed load on the element.
func (m *Model) ElementEndForces(elem int) ([6]float64, error) {
	var f [6]float64
	if m.state != solved {
		return f, ErrUnsolved
	}
	if elem < 0 || elem >= len(m.elements) {
		return f, &ReferenceError{Kind: "element", ID: elem}
	}

	el := m.elements[elem]
	k := el.Stiffness()
	dofs := el.dofMap()
	for a := 0; a < 6; a++ {
		for b := 0; b < 6; b++ {
			f[a] += k[a][b] * m.displacements[dofs[b]]
		}
	}
	for _, load := range m.dist {
		if load.Element != elem {
			continue
		}
		eq := el.EquivalentNodalLoads(load.Q)
		for a := 0; a < 6; a++ {
			f[a] -= eq[a]
		}
	}
	return f, nil
}
