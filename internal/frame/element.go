package frame

// Node is a point of the model carrying three degrees of freedom:
// axial displacement, transverse displacement and rotation.
type Node struct {
	ID int
	X  float64 // m
	Y  float64 // m
}

// DOF returns the global index of local degree of freedom k (0, 1 or 2).
func (n Node) DOF(k int) int {
	return n.ID*3 + k
}

// Element is a 2D Euler-Bernoulli beam between two nodes.
// Its length is fixed when the element is created.
type Element struct {
	ID     int
	Nodes  [2]int
	E      float64 // Elastic modulus (Pa)
	A      float64 // Cross-sectional area (m²)
	I      float64 // Second moment of area (m⁴)
	Length float64 // m
}

// dofMap returns the six global DOF indices of the element in the order
// [axial₁, transverse₁, rotation₁, axial₂, transverse₂, rotation₂].
func (e Element) dofMap() [6]int {
	n1, n2 := e.Nodes[0]*3, e.Nodes[1]*3
	return [6]int{n1, n1 + 1, n1 + 2, n2, n2 + 1, n2 + 2}
}

// Stiffness returns the 6x6 local stiffness matrix of the element.
// Axial and bending behaviour are uncoupled.
func (e Element) Stiffness() [6][6]float64 {
	var k [6][6]float64
	L := e.Length

	// Axial
	ea := e.E * e.A / L
	k[0][0] = ea
	k[0][3] = -ea
	k[3][0] = -ea
	k[3][3] = ea

	// Bending (Hermite cubic)
	ei := e.E * e.I
	k12 := 12 * ei / (L * L * L)
	k6 := 6 * ei / (L * L)
	k4 := 4 * ei / L
	k2 := 2 * ei / L

	k[1][1], k[1][2], k[1][4], k[1][5] = k12, k6, -k12, k6
	k[2][1], k[2][2], k[2][4], k[2][5] = k6, k4, -k6, k2
	k[4][1], k[4][2], k[4][4], k[4][5] = -k12, -k6, k12, -k6
	k[5][1], k[5][2], k[5][4], k[5][5] = k6, k2, -k6, k4

	return k
}

// EquivalentNodalLoads converts a uniform transverse load q (force per unit
// length, over the whole element) into fixed-end nodal forces and moments.
func (e Element) EquivalentNodalLoads(q float64) [6]float64 {
	L := e.Length
	return [6]float64{
		0,
		q * L / 2,
		q * L * L / 12,
		0,
		q * L / 2,
		-q * L * L / 12,
	}
}

// Constraint marks which of a node's DOFs are held at zero displacement,
// in the order [axial, transverse, rotation].
type Constraint [3]bool

// Common support conditions for beams.
var (
	Fixed  = Constraint{true, true, true}
	Pinned = Constraint{true, true, false}
	Roller = Constraint{false, true, false}
)

// Support attaches a constraint to a node.
type Support struct {
	Node       int
	Constraint Constraint
}

// DistributedLoad is a uniform transverse load over a full element.
type DistributedLoad struct {
	Element int
	Q       float64 // N/m
}

// PointLoad is a force/moment triple applied at a node.
type PointLoad struct {
	Node int
	Fx   float64 // N
	Fy   float64 // N
	Mz   float64 // N-m
}
