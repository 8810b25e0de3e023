package testutil

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Blobs generates perCenter points around every center with gaussian noise
// of the given standard deviation. Points are grouped by center.
func (r *RNG) Blobs(centers [][]float64, perCenter int, std float64) *mat.Dense {
	r.mu.Lock()
	defer r.mu.Unlock()

	dim := len(centers[0])
	data := make([]float64, 0, len(centers)*perCenter*dim)
	for _, c := range centers {
		for range perCenter {
			for j := range dim {
				data = append(data, c[j]+r.rand.NormFloat64()*std)
			}
		}
	}

	return mat.NewDense(len(centers)*perCenter, dim, data)
}

// Disc generates num 2-D points uniformly inside a disc of the given radius.
func (r *RNG) Disc(center []float64, radius float64, num int) *mat.Dense {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, 0, num*2)
	for range num {
		rho := radius * math.Sqrt(r.rand.Float64())
		theta := 2 * math.Pi * r.rand.Float64()
		data = append(data, center[0]+rho*math.Cos(theta), center[1]+rho*math.Sin(theta))
	}

	return mat.NewDense(num, 2, data)
}

// Grid returns rows*cols 2-D points on a square lattice with the given spacing,
// starting at origin.
func Grid(origin []float64, rows, cols int, spacing float64) *mat.Dense {
	data := make([]float64, 0, rows*cols*2)
	for i := range rows {
		for j := range cols {
			data = append(data, origin[0]+float64(i)*spacing, origin[1]+float64(j)*spacing)
		}
	}
	return mat.NewDense(rows*cols, 2, data)
}

// Stack concatenates matrices with the same number of columns row-wise.
func Stack(ms ...*mat.Dense) *mat.Dense {
	var rows, cols int
	for _, m := range ms {
		r, c := m.Dims()
		rows += r
		cols = c
	}

	out := mat.NewDense(rows, cols, nil)
	offset := 0
	for _, m := range ms {
		r, _ := m.Dims()
		out.Slice(offset, offset+r, 0, cols).(*mat.Dense).Copy(m)
		offset += r
	}
	return out
}
