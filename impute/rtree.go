// Package impute - regression-tree ensemble used by the Forest imputer.
//
// A deliberately compact CART: variance-reduction splits, bootstrap rows and
// random feature subsets per tree, mean leaves. No pruning — depth and leaf
// size bounds do that job, which is the standard missForest configuration.
package impute

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// treeNode is one node of a regression tree. A nil left pointer marks a leaf.
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     float64
}

// regForest is a bagged ensemble of regression trees predicting one target
// column of a working matrix from the remaining columns.
type regForest struct {
	target int
	trees  []*treeNode
}

// forestParams bundles the growth bounds so the recursion signature stays flat.
type forestParams struct {
	maxDepth int
	minLeaf  int
	mtry     int
}

// growForest fits the ensemble on the given training rows of W.
// Each tree sees a bootstrap resample of the rows and, at every split, a
// fresh random subset of mtry candidate features.
func growForest(W *mat.Dense, target int, rows []int, trees int, p forestParams, rng *rand.Rand) *regForest {
	f := &regForest{target: target, trees: make([]*treeNode, 0, trees)}
	sample := make([]int, len(rows))
	for t := 0; t < trees; t++ {
		for i := range sample {
			sample[i] = rows[rng.Intn(len(rows))]
		}
		f.trees = append(f.trees, growTree(W, target, sample, 0, p, rng))
	}
	return f
}

// predict averages the trees' estimates for row i of W.
func (f *regForest) predict(W *mat.Dense, i int) float64 {
	sum := 0.0
	for _, root := range f.trees {
		node := root
		for node.left != nil {
			if W.At(i, node.feature) <= node.threshold {
				node = node.left
			} else {
				node = node.right
			}
		}
		sum += node.value
	}
	return sum / float64(len(f.trees))
}

// growTree builds one tree recursively over the given rows.
func growTree(W *mat.Dense, target int, rows []int, depth int, p forestParams, rng *rand.Rand) *treeNode {
	mean, sse := targetStats(W, target, rows)
	if depth >= p.maxDepth || len(rows) < 2*p.minLeaf || sse == 0 {
		return &treeNode{value: mean}
	}

	feature, threshold, ok := bestSplit(W, target, rows, p, rng)
	if !ok {
		return &treeNode{value: mean}
	}

	leftRows := make([]int, 0, len(rows))
	rightRows := make([]int, 0, len(rows))
	for _, i := range rows {
		if W.At(i, feature) <= threshold {
			leftRows = append(leftRows, i)
		} else {
			rightRows = append(rightRows, i)
		}
	}
	if len(leftRows) < p.minLeaf || len(rightRows) < p.minLeaf {
		return &treeNode{value: mean}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(W, target, leftRows, depth+1, p, rng),
		right:     growTree(W, target, rightRows, depth+1, p, rng),
	}
}

// bestSplit scans mtry random candidate features for the split with the
// largest sum-of-squares reduction, honoring the minimum leaf size.
func bestSplit(W *mat.Dense, target int, rows []int, p forestParams, rng *rand.Rand) (int, float64, bool) {
	_, c := W.Dims()
	candidates := make([]int, 0, c-1)
	for j := 0; j < c; j++ {
		if j != target {
			candidates = append(candidates, j)
		}
	}
	rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})
	if len(candidates) > p.mtry {
		candidates = candidates[:p.mtry]
	}

	ordered := make([]int, len(rows))
	bestGain := 0.0
	bestFeature, bestThreshold, found := 0, 0.0, false

	for _, feature := range candidates {
		copy(ordered, rows)
		sort.SliceStable(ordered, func(a, b int) bool {
			return W.At(ordered[a], feature) < W.At(ordered[b], feature)
		})

		// Prefix sums over the ordered targets let every split point be
		// scored in O(1).
		n := len(ordered)
		total, totalSq := 0.0, 0.0
		for _, i := range ordered {
			y := W.At(i, target)
			total += y
			totalSq += y * y
		}
		sseAll := totalSq - total*total/float64(n)

		leftSum, leftSq := 0.0, 0.0
		for s := 0; s < n-1; s++ {
			y := W.At(ordered[s], target)
			leftSum += y
			leftSq += y * y

			if s+1 < p.minLeaf || n-s-1 < p.minLeaf {
				continue
			}
			lo := W.At(ordered[s], feature)
			hi := W.At(ordered[s+1], feature)
			if lo == hi {
				continue // cannot separate equal values
			}

			nl := float64(s + 1)
			nr := float64(n - s - 1)
			rightSum := total - leftSum
			rightSq := totalSq - leftSq
			sseSplit := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)
			if gain := sseAll - sseSplit; gain > bestGain {
				bestGain = gain
				bestFeature = feature
				bestThreshold = (lo + hi) / 2
				found = true
			}
		}
	}
	return bestFeature, bestThreshold, found
}

// targetStats returns the mean and total sum of squared deviations of the
// target column over the given rows.
func targetStats(W *mat.Dense, target int, rows []int) (float64, float64) {
	sum, sumSq := 0.0, 0.0
	for _, i := range rows {
		y := W.At(i, target)
		sum += y
		sumSq += y * y
	}
	n := float64(len(rows))
	mean := sum / n
	return mean, sumSq - sum*sum/n
}
