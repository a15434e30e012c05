package samgrid

// CellCentroid returns the density-weighted centroid of a 1-D cell
// [x0, x1] with a linearly varying density d0 → d1:
//
//	x̄ = (x0·(2d0+d1) + x1·(d0+2d1)) / (3·(d0+d1))
//
// A cell with no density falls back to the midpoint.
func CellCentroid(x0, x1, d0, d1 float64) float64 {
	if d0+d1 <= 0 {
		return 0.5 * (x0 + x1)
	}

	return (x0*(2.0*d0+d1) + x1*(d0+2.0*d1)) / (3.0 * (d0 + d1))
}

// faceDensity sums the four corner densities of one face of cell
// (i, j, k) along the given axis (0 = LogM, 1 = Mrat, 2 = Redz), at
// face offset off ∈ {0, 1}.
func (g *DensityGrid) faceDensity(axis, i, j, k, off int) float64 {
	var sum float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			switch axis {
			case 0:
				sum += g.Dens[i+off][j+a][k+b]
			case 1:
				sum += g.Dens[i+a][j+off][k+b]
			default:
				sum += g.Dens[i+a][j+b][k+off]
			}
		}
	}

	return sum
}

// cellCentroid returns the density-weighted centroid (log₁₀M, q, z) of
// cell (i, j, k), axis by axis against the face-summed densities.
func (g *DensityGrid) cellCentroid(i, j, k int) (logm, mrat, redz float64) {
	logm = CellCentroid(g.LogM[i], g.LogM[i+1], g.faceDensity(0, i, j, k, 0), g.faceDensity(0, i, j, k, 1))
	mrat = CellCentroid(g.Mrat[j], g.Mrat[j+1], g.faceDensity(1, i, j, k, 0), g.faceDensity(1, i, j, k, 1))
	redz = CellCentroid(g.Redz[k], g.Redz[k+1], g.faceDensity(2, i, j, k, 0), g.faceDensity(2, i, j, k, 1))

	return logm, mrat, redz
}

// Centroid is the density-weighted center of one grid cell together
// with the cell's integrated binary count.
type Centroid struct {
	LogM  float64
	Mrat  float64
	Redz  float64
	Count float64
}

// Centroids returns the centroid of every grid cell in grid order
// (LogM-major, Redz-minor), empty cells included. The grid must have
// been validated.
func (g *DensityGrid) Centroids() []Centroid {
	nm, nq, nz := g.cells()
	out := make([]Centroid, 0, nm*nq*nz)
	for i := 0; i < nm; i++ {
		for j := 0; j < nq; j++ {
			for k := 0; k < nz; k++ {
				logm, mrat, redz := g.cellCentroid(i, j, k)
				out = append(out, Centroid{
					LogM:  logm,
					Mrat:  mrat,
					Redz:  redz,
					Count: g.cellCount(i, j, k),
				})
			}
		}
	}

	return out
}

// cellCount returns the integrated binary count of cell (i, j, k): the
// mean of the eight corner densities times the cell volume in
// (log₁₀M, q, z) space. Negative densities propagate through so the
// caller can reject them.
func (g *DensityGrid) cellCount(i, j, k int) float64 {
	var sum float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				sum += g.Dens[i+a][j+b][k+c]
			}
		}
	}
	mean := sum / 8.0

	vol := (g.LogM[i+1] - g.LogM[i]) * (g.Mrat[j+1] - g.Mrat[j]) * (g.Redz[k+1] - g.Redz[k])

	return mean * vol
}
