package pairing_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/variations/alphabet"
	"github.com/katalvlaran/variations/fretting"
	"github.com/katalvlaran/variations/pairing"
	"github.com/katalvlaran/variations/variation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// absDiff is a symmetric integer norm.
func absDiff(a, b alphabet.Int) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// TestAllPairs_OrderAndDiagonal checks index order and that a==b pairs appear.
func TestAllPairs_OrderAndDiagonal(t *testing.T) {
	pairs, err := pairing.AllPairs(alphabet.Ints(0, 2))
	require.NoError(t, err)

	var got []string
	for p := range pairs {
		got = append(got, p.String())
	}
	want := []string{
		"(0, 0)", "(1, 0)", "(2, 0)",
		"(0, 1)", "(1, 1)", "(2, 1)",
		"(0, 2)", "(1, 2)", "(2, 2)",
	}
	assert.Equal(t, want, got)
}

// TestAllPairs_Predicate filters items before pairing.
func TestAllPairs_Predicate(t *testing.T) {
	even := pairing.WithPredicate(func(i alphabet.Int) bool { return i%2 == 0 })
	pairs, err := pairing.AllPairs(alphabet.Ints(0, 5), even)
	require.NoError(t, err)

	n := 0
	for p := range pairs {
		assert.Zero(t, p.A%2)
		assert.Zero(t, p.B%2)
		n++
	}
	assert.Equal(t, 9, n)

	none := pairing.WithPredicate(func(alphabet.Int) bool { return false })
	_, err = pairing.AllPairs(alphabet.Ints(0, 5), none)
	assert.ErrorIs(t, err, variation.ErrInvalidConstruction)
	assert.ErrorIs(t, err, alphabet.ErrEmpty)

	_, err = pairing.NewOrdered(alphabet.Ints(0, 5), absDiff, none)
	assert.ErrorIs(t, err, variation.ErrInvalidConstruction)
}

// note is an item whose value (pitch class) is shared across octaves.
type note struct {
	name  string
	class int
}

func (n note) Value() int { return n.class }

// TestAllPairs_SharedValues pairs distinct items even when their values match.
func TestAllPairs_SharedValues(t *testing.T) {
	c4, c5, e4 := note{"C4", 0}, note{"C5", 0}, note{"E4", 4}
	items := []note{c4, c5, e4}

	pairs, err := pairing.AllPairs(items)
	require.NoError(t, err)
	var got []pairing.Pair[note]
	for p := range pairs {
		got = append(got, p)
	}
	require.Len(t, got, 9)
	assert.Equal(t, pairing.Pair[note]{A: c5, B: c4}, got[1])
	assert.Contains(t, got, pairing.Pair[note]{A: c4, B: c5})

	classDist := func(a, b note) int { return fretting.IntervalClass(fretting.PitchClass(a.class), fretting.PitchClass(b.class)) }
	o, err := pairing.NewOrdered(items, classDist)
	require.NoError(t, err)
	n, err := o.Norm(c4, c5)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	n, err = o.Norm(c5, e4)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, map[int]int{0: 5, 4: 4}, o.Groups().Histogram())
}

// TestAllPairs_Duplicates rejects repeated items.
func TestAllPairs_Duplicates(t *testing.T) {
	_, err := pairing.AllPairs([]alphabet.Int{1, 2, 1})
	assert.ErrorIs(t, err, alphabet.ErrDuplicateSymbol)
}

// TestWithPredicate_NilPanics enforces the option constructor contract.
func TestWithPredicate_NilPanics(t *testing.T) {
	assert.Panics(t, func() { pairing.WithPredicate[alphabet.Int](nil) })
}

// TestAllNormedPairs_NilNorm rejects a missing norm.
func TestAllNormedPairs_NilNorm(t *testing.T) {
	_, err := pairing.AllNormedPairs[alphabet.Int, int](alphabet.Ints(0, 2), nil)
	assert.ErrorIs(t, err, pairing.ErrNilNorm)

	_, err = pairing.NewOrdered[alphabet.Int, int](alphabet.Ints(0, 2), nil)
	assert.ErrorIs(t, err, pairing.ErrNilNorm)
}

// TestGroupByNorm_Partition checks every pair lands in exactly one bucket.
func TestGroupByNorm_Partition(t *testing.T) {
	pairs, err := pairing.AllNormedPairs(alphabet.Ints(0, 4), absDiff)
	require.NoError(t, err)

	var all []pairing.NormedPair[alphabet.Int, int]
	for p := range pairs {
		all = append(all, p)
	}
	groups := pairing.GroupByNorm(pairs)

	assert.Equal(t, len(all), groups.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, groups.Norms())

	total := 0
	for _, norm := range groups.Norms() {
		bucket := groups.Pairs(norm)
		total += len(bucket)
		assert.Equal(t, len(bucket), groups.Count(norm))
		for _, p := range bucket {
			assert.Equal(t, norm, p.Norm)
			assert.Equal(t, absDiff(p.A, p.B), p.Norm)
		}
	}
	assert.Equal(t, len(all), total)
	assert.Equal(t, map[int]int{0: 5, 1: 8, 2: 6, 3: 4, 4: 2}, groups.Histogram())
	assert.Nil(t, groups.Pairs(99))
}

// TestIntervalClassHistogram groups all 144 pitch-class pairs.
func TestIntervalClassHistogram(t *testing.T) {
	pairs, err := pairing.AllNormedPairs(fretting.PitchClasses(), fretting.IntervalClass)
	require.NoError(t, err)

	groups := pairing.GroupByNorm(pairs)
	assert.Equal(t, 144, groups.Len())
	assert.Equal(t, map[int]int{0: 12, 1: 24, 2: 24, 3: 24, 4: 24, 5: 24, 6: 12}, groups.Histogram())
}

// TestOrdered_MatchesOnDemand compares the cached and lazy enumerations.
func TestOrdered_MatchesOnDemand(t *testing.T) {
	items := fretting.PitchClasses()
	ordered, err := pairing.NewOrdered(items, fretting.IntervalClass)
	require.NoError(t, err)
	lazy, err := pairing.AllNormedPairs(items, fretting.IntervalClass)
	require.NoError(t, err)

	assert.Equal(t, 144, ordered.Len())
	assert.Equal(t, items, ordered.Items())
	assert.True(t, ordered.Symmetric())
	assert.Equal(t, slices.Collect(lazy), slices.Collect(ordered.Pairs()))
	assert.Equal(t, pairing.GroupByNorm(lazy).Histogram(), ordered.Groups().Histogram())

	n, err := ordered.Norm(fretting.C, fretting.G)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = ordered.Norm(fretting.C, fretting.PitchClass(40))
	assert.ErrorIs(t, err, pairing.ErrUnknownItem)
}

// TestOrdered_AsymmetricNorm is reported, not rejected.
func TestOrdered_AsymmetricNorm(t *testing.T) {
	diff := func(a, b alphabet.Int) float64 { return float64(a - b) }
	ordered, err := pairing.NewOrdered(alphabet.Ints(0, 3), diff)
	require.NoError(t, err)
	assert.False(t, ordered.Symmetric())

	n, err := ordered.Norm(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, n)
}

// TestOrdered_Predicate drops filtered items from lookups.
func TestOrdered_Predicate(t *testing.T) {
	small := pairing.WithPredicate(func(i alphabet.Int) bool { return i < 3 })
	ordered, err := pairing.NewOrdered(alphabet.Ints(0, 5), absDiff, small)
	require.NoError(t, err)
	assert.Equal(t, 9, ordered.Len())

	_, err = ordered.Norm(4, 0)
	assert.ErrorIs(t, err, pairing.ErrUnknownItem)
}
