package bridge

import (
	"fmt"
	"math"
	"time"

	"github.com/alexiusacademia/gospan/internal/nscp"
)

// BalanceTolerance is the largest acceptable balance error (%) between the
// applied load and the sum of vertical reactions.
const BalanceTolerance = 0.01

// Reaction is the force/moment at one support.
type Reaction struct {
	Support int     // 1-based support number, left to right
	Node    int     // frame node id
	X       float64 // m
	Rx      float64 // N
	Ry      float64 // N, positive upward
	Mz      float64 // N-m
}

// IsEnd reports whether the support is at either end of the bridge.
func (r Reaction) IsEnd(numSupports int) bool {
	return r.Support == 1 || r.Support == numSupports
}

// Station is a value sampled at a node position.
type Station struct {
	X     float64
	Value float64
}

// Result summarises a bridge analysis.
type Result struct {
	Combination nscp.LoadCombination
	LineLoad    float64 // factored N/m

	Reactions []Reaction

	// Equilibrium check
	TotalLoad     float64 // N
	TotalReaction float64 // N
	BalanceError  float64 // %

	// Interior-to-end reaction ratio, zero for single spans
	InteriorEndRatio float64

	// Deflected shape and bending moment (sagging positive) at each node
	Deflections []Station // m, positive upward
	Moments     []Station // N-m

	MaxDeflection   float64 // m, signed
	MaxDeflectionAt float64 // m

	Elapsed time.Duration
}

// Balanced reports whether the balance error is within BalanceTolerance.
func (r *Result) Balanced() bool {
	return r.BalanceError <= BalanceTolerance
}

// MaxReaction returns the support with the largest vertical reaction.
func (r *Result) MaxReaction() Reaction {
	var best Reaction
	for i, re := range r.Reactions {
		if i == 0 || re.Ry > best.Ry {
			best = re
		}
	}
	return best
}

// MinReaction returns the support with the smallest vertical reaction.
func (r *Result) MinReaction() Reaction {
	var best Reaction
	for i, re := range r.Reactions {
		if i == 0 || re.Ry < best.Ry {
			best = re
		}
	}
	return best
}

// Analyze solves the model and collects reactions, the equilibrium check,
// deflections and bending moments.
func (b *Bridge) Analyze() (*Result, error) {
	start := time.Now()

	if _, err := b.Model.Solve(); err != nil {
		return nil, err
	}

	supports, err := b.Model.SupportReactions()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Combination: b.Combination,
		LineLoad:    b.LineLoad,
	}

	for i, s := range supports {
		res.Reactions = append(res.Reactions, Reaction{
			Support: i + 1,
			Node:    s.Node,
			X:       b.Stations[s.Node],
			Rx:      s.Rx,
			Ry:      s.Ry,
			Mz:      s.Mz,
		})
		res.TotalReaction += s.Ry
	}

	res.TotalLoad = b.LineLoad * b.Params.TotalLength()
	for _, pl := range b.Params.PointLoads {
		res.TotalLoad += b.Combination.Factored(nscp.LoadEffects{Live: pl.Force})
	}
	if res.TotalLoad != 0 {
		res.BalanceError = math.Abs(res.TotalReaction-res.TotalLoad) / math.Abs(res.TotalLoad) * 100
	}

	if n := len(res.Reactions); n >= 3 {
		var interior, end float64
		for _, r := range res.Reactions {
			if r.IsEnd(n) {
				end += r.Ry
			} else {
				interior += r.Ry
			}
		}
		if end != 0 {
			res.InteriorEndRatio = interior / end
		}
	}

	if err := b.collectStations(res); err != nil {
		return nil, err
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

func (b *Bridge) collectStations(res *Result) error {
	u, err := b.Model.Displacements()
	if err != nil {
		return err
	}
	for i, x := range b.Stations {
		res.Deflections = append(res.Deflections, Station{X: x, Value: u[i*3+1]})
	}
	node, v, err := b.Model.MaxDeflection()
	if err != nil {
		return err
	}
	res.MaxDeflection, res.MaxDeflectionAt = v, b.Stations[node]

	elements := b.Model.Elements()
	for i, el := range elements {
		f, err := b.Model.ElementEndForces(el.ID)
		if err != nil {
			return fmt.Errorf("element %d: %w", el.ID, err)
		}
		res.Moments = append(res.Moments, Station{X: b.Stations[el.Nodes[0]], Value: -f[2]})
		if i == len(elements)-1 {
			res.Moments = append(res.Moments, Station{X: b.Stations[el.Nodes[1]], Value: f[5]})
		}
	}
	return nil
}
