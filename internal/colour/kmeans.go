package colour

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/hashicorp/go-hclog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	defaultMaxIterations = 300
	defaultTolerance     = 1e-4
	defaultRestarts      = 1
)

// KMeans partitions colours into k clusters minimising the within-cluster
// sum of squared Euclidean distances in RGB space.
//
// Identical pixels are collapsed into weighted points before clustering; the
// result is the same as clustering every pixel individually.
type KMeans struct {
	maxIterations int
	tolerance     float64
	restarts      int
	rng           *rand.Rand
	logger        hclog.Logger
}

// NewKMeans creates a KMeans whose initialisation is driven entirely by seed.
func NewKMeans(seed int64) *KMeans {
	return &KMeans{
		maxIterations: defaultMaxIterations,
		tolerance:     defaultTolerance,
		restarts:      defaultRestarts,
		rng:           rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)), // #nosec G115 G404 -- reproducible clustering
		logger:        hclog.NewNullLogger(),
	}
}

// WithMaxIterations bounds the number of Lloyd iterations per restart.
func (k *KMeans) WithMaxIterations(n int) *KMeans {
	if n > 0 {
		k.maxIterations = n
	}
	return k
}

// WithTolerance sets the convergence threshold, relative to the mean per-channel variance.
func (k *KMeans) WithTolerance(tol float64) *KMeans {
	if tol >= 0 {
		k.tolerance = tol
	}
	return k
}

// WithRestarts sets how many independent initialisations are tried.
func (k *KMeans) WithRestarts(n int) *KMeans {
	if n > 0 {
		k.restarts = n
	}
	return k
}

// WithLogger attaches a logger for per-run diagnostics.
func (k *KMeans) WithLogger(logger hclog.Logger) *KMeans {
	if logger != nil {
		k.logger = logger
	}
	return k
}

// weightedPoint is a distinct colour and the number of pixels that share it.
type weightedPoint struct {
	rgb    RGB
	pos    []float64
	weight float64
}

type clusterRun struct {
	centroids  [][]float64
	weights    []float64
	inertia    float64
	iterations int
}

// Cluster returns exactly count centroids, truncated to integer RGB and ordered
// by descending cluster weight (ties broken by hex value).
//
// Fewer distinct colours than count is rejected with ErrInvalidParameter rather
// than silently returning a shorter palette.
func (k *KMeans) Cluster(pixels []RGB, count int) (*Palette, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: cluster count must be at least 1, got %d", ErrInvalidParameter, count)
	}
	if len(pixels) == 0 {
		return nil, ErrEmptyInput
	}

	points := uniquePoints(pixels)
	if len(points) < count {
		return nil, fmt.Errorf("%w: only %d distinct colours available for %d clusters",
			ErrInvalidParameter, len(points), count)
	}

	tol := k.tolerance * meanVariance(points)
	k.logger.Debug("clustering", "pixels", len(pixels), "distinct", len(points), "k", count, "tolerance", tol)

	var best *clusterRun
	for r := 0; r < k.restarts; r++ {
		run := k.run(points, count, tol)
		k.logger.Debug("clustering run finished", "restart", r, "iterations", run.iterations, "inertia", run.inertia)
		if best == nil || run.inertia < best.inertia {
			best = run
		}
	}

	return best.palette(float64(len(pixels))), nil
}

// run performs one k-means++ initialisation followed by Lloyd iterations.
func (k *KMeans) run(points []weightedPoint, count int, tol float64) *clusterRun {
	centroids := k.initializeCentroidsKMeansPlusPlus(points, count)
	assignments := make([]int, len(points))

	iterations := 0
	for iterations < k.maxIterations {
		iterations++
		for i, p := range points {
			assignments[i], _ = nearestCentroid(p.pos, centroids)
		}

		next := k.recalculateCentroids(points, assignments, count)
		shift := 0.0
		for i := range centroids {
			d := floats.Distance(centroids[i], next[i], 2)
			shift += d * d
		}
		centroids = next

		if shift <= tol {
			break
		}
	}

	// Final assignment against the converged centroids.
	run := &clusterRun{
		centroids:  centroids,
		weights:    make([]float64, count),
		iterations: iterations,
	}
	for _, p := range points {
		idx, dist := nearestCentroid(p.pos, centroids)
		run.weights[idx] += p.weight
		run.inertia += p.weight * dist
	}
	return run
}

// initializeCentroidsKMeansPlusPlus picks the first centroid with probability
// proportional to pixel count and each subsequent one proportional to
// count times squared distance to the nearest chosen centroid.
func (k *KMeans) initializeCentroidsKMeansPlusPlus(points []weightedPoint, count int) [][]float64 {
	centroids := make([][]float64, 0, count)
	first := k.pick(len(points), func(i int) float64 { return points[i].weight })
	centroids = append(centroids, slices.Clone(points[first].pos))

	minDist := make([]float64, len(points))
	for i := range minDist {
		minDist[i] = math.MaxFloat64
	}

	for len(centroids) < count {
		last := centroids[len(centroids)-1]
		for i, p := range points {
			if d := squaredDistance(p.pos, last); d < minDist[i] {
				minDist[i] = d
			}
		}
		next := k.pick(len(points), func(i int) float64 { return points[i].weight * minDist[i] })
		centroids = append(centroids, slices.Clone(points[next].pos))
	}
	return centroids
}

// pick draws an index in [0, n) with probability proportional to score.
// Zero-score indices are never drawn unless every score is zero, in which
// case the draw is uniform.
func (k *KMeans) pick(n int, score func(i int) float64) int {
	total := 0.0
	lastPositive := -1
	for i := 0; i < n; i++ {
		if s := score(i); s > 0 {
			total += s
			lastPositive = i
		}
	}
	if lastPositive < 0 {
		return k.rng.IntN(n)
	}

	target := k.rng.Float64() * total
	cumulative := 0.0
	for i := 0; i < n; i++ {
		s := score(i)
		if s <= 0 {
			continue
		}
		cumulative += s
		if cumulative >= target {
			return i
		}
	}
	return lastPositive
}

// recalculateCentroids moves each centroid to the weighted mean of its points.
// A centroid that lost all its points is re-seeded on a random point.
func (k *KMeans) recalculateCentroids(points []weightedPoint, assignments []int, count int) [][]float64 {
	sums := make([][]float64, count)
	totals := make([]float64, count)
	for i := range sums {
		sums[i] = make([]float64, 3)
	}

	for i, p := range points {
		c := assignments[i]
		floats.AddScaled(sums[c], p.weight, p.pos)
		totals[c] += p.weight
	}

	for i := range sums {
		if totals[i] > 0 {
			floats.Scale(1/totals[i], sums[i])
			continue
		}
		sums[i] = slices.Clone(points[k.rng.IntN(len(points))].pos)
	}
	return sums
}

// nearestCentroid returns the index of, and squared distance to, the closest centroid.
func nearestCentroid(pos []float64, centroids [][]float64) (int, float64) {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := squaredDistance(pos, c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest, minDist
}

func squaredDistance(a, b []float64) float64 {
	dr := a[0] - b[0]
	dg := a[1] - b[1]
	db := a[2] - b[2]
	return dr*dr + dg*dg + db*db
}

// uniquePoints collapses pixels into distinct weighted colours, ordered by
// packed RGB value so that seeded runs do not depend on map iteration order.
func uniquePoints(pixels []RGB) []weightedPoint {
	counts := make(map[RGB]int, 1024)
	for _, p := range pixels {
		counts[p]++
	}

	points := make([]weightedPoint, 0, len(counts))
	for rgb, n := range counts {
		points = append(points, weightedPoint{
			rgb:    rgb,
			pos:    []float64{float64(rgb.R), float64(rgb.G), float64(rgb.B)},
			weight: float64(n),
		})
	}
	slices.SortFunc(points, func(a, b weightedPoint) int {
		return cmp.Compare(a.rgb.packed(), b.rgb.packed())
	})
	return points
}

// meanVariance is the average per-channel population variance of the pixels.
func meanVariance(points []weightedPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	channel := make([]float64, len(points))
	weights := make([]float64, len(points))
	for i, p := range points {
		weights[i] = p.weight
	}

	total := 0.0
	for ch := 0; ch < 3; ch++ {
		for i, p := range points {
			channel[i] = p.pos[ch]
		}
		total += stat.PopVariance(channel, weights)
	}
	return total / 3
}

// palette converts a run into truncated colours ordered by weight.
func (r *clusterRun) palette(totalPixels float64) *Palette {
	type entry struct {
		rgb    RGB
		weight float64
	}
	entries := make([]entry, len(r.centroids))
	for i, c := range r.centroids {
		entries[i] = entry{
			rgb: RGB{
				R: uint8(math.Floor(c[0])),
				G: uint8(math.Floor(c[1])),
				B: uint8(math.Floor(c[2])),
			},
			weight: r.weights[i] / totalPixels,
		}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(b.weight, a.weight); c != 0 {
			return c
		}
		return cmp.Compare(a.rgb.packed(), b.rgb.packed())
	})

	p := &Palette{
		Colours: make([]RGB, len(entries)),
		Weights: make([]float64, len(entries)),
		Inertia: r.inertia,
	}
	for i, e := range entries {
		p.Colours[i] = e.rgb
		p.Weights[i] = e.weight
	}
	return p
}
