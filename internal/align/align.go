package align

import (
	"math"
	"slices"
)

// infeasible marks a candidate whose predecessor cells fall outside the
// table. Real path costs never reach it, so it only wins the minimum at
// the (0, 0) base case where every candidate is infeasible.
const infeasible = math.MaxInt

// Align computes the cheapest operation sequence aligning the unit length
// sequence x with y under the given cost function. The returned operations
// are in document order; their costs sum to the total path cost. Time and
// memory are O(len(x) * len(y)).
func Align(x, y []int, cost CostFunc) []Op {
	n, m := len(x), len(y)
	width := m + 1

	// Flat (n+1) x (m+1) tables: the cheapest cost to reach each cell and
	// the coordinates of the predecessor that cost came through.
	dist := make([]int, (n+1)*width)
	backX := make([]int, (n+1)*width)
	backY := make([]int, (n+1)*width)

	for j := 0; j <= m; j++ {
		for i := 0; i <= n; i++ {
			d1 := infeasible
			if i > 0 && j > 0 {
				d1 = dist[(i-1)*width+(j-1)] + cost(x[i-1], y[j-1], 0, 0)
			}
			d2 := infeasible
			if i > 0 {
				d2 = dist[(i-1)*width+j] + cost(x[i-1], 0, 0, 0)
			}
			d3 := infeasible
			if j > 0 {
				d3 = dist[i*width+(j-1)] + cost(0, y[j-1], 0, 0)
			}
			d4 := infeasible
			if i > 1 && j > 0 {
				d4 = dist[(i-2)*width+(j-1)] + cost(x[i-2], y[j-1], x[i-1], 0)
			}
			d5 := infeasible
			if i > 0 && j > 1 {
				d5 = dist[(i-1)*width+(j-2)] + cost(x[i-1], y[j-2], 0, y[j-1])
			}
			d6 := infeasible
			if i > 1 && j > 1 {
				d6 = dist[(i-2)*width+(j-2)] + cost(x[i-2], y[j-2], x[i-1], y[j-1])
			}

			// On ties the earliest candidate wins, so substitution beats
			// deletion beats insertion beats contraction beats expansion
			// beats melding.
			dmin := min(d1, d2, d3, d4, d5, d6)
			cell := i*width + j
			switch {
			case dmin == infeasible:
				dist[cell] = 0
			case dmin == d1:
				dist[cell] = d1
				backX[cell], backY[cell] = i-1, j-1
			case dmin == d2:
				dist[cell] = d2
				backX[cell], backY[cell] = i-1, j
			case dmin == d3:
				dist[cell] = d3
				backX[cell], backY[cell] = i, j-1
			case dmin == d4:
				dist[cell] = d4
				backX[cell], backY[cell] = i-2, j-1
			case dmin == d5:
				dist[cell] = d5
				backX[cell], backY[cell] = i-1, j-2
			default:
				dist[cell] = d6
				backX[cell], backY[cell] = i-2, j-2
			}
		}
	}

	// Walk the predecessor chain back from the final cell, classifying
	// each step by how many units it consumed per side, then restore
	// document order.
	var ops []Op
	for i, j := n, m; i > 0 || j > 0; {
		cell := i*width + j
		pi, pj := backX[cell], backY[cell]

		op := Op{Cost: dist[cell] - dist[pi*width+pj]}
		switch di, dj := i-pi, j-pj; {
		case di == 1 && dj == 1:
			op.Kind = Substitution
			op.Source[0] = x[i-1]
			op.Target[0] = y[j-1]
		case di == 1 && dj == 0:
			op.Kind = Deletion
			op.Source[0] = x[i-1]
		case di == 0 && dj == 1:
			op.Kind = Insertion
			op.Target[0] = y[j-1]
		case di == 2 && dj == 1:
			op.Kind = Contraction
			op.Source[0], op.Source[1] = x[i-2], x[i-1]
			op.Target[0] = y[j-1]
		case di == 1 && dj == 2:
			op.Kind = Expansion
			op.Source[0] = x[i-1]
			op.Target[0], op.Target[1] = y[j-2], y[j-1]
		default:
			op.Kind = Melding
			op.Source[0], op.Source[1] = x[i-2], x[i-1]
			op.Target[0], op.Target[1] = y[j-2], y[j-1]
		}
		ops = append(ops, op)
		i, j = pi, pj
	}

	slices.Reverse(ops)
	return ops
}

// PathCost sums the costs of an operation sequence.
func PathCost(ops []Op) int {
	total := 0
	for _, op := range ops {
		total += op.Cost
	}
	return total
}
