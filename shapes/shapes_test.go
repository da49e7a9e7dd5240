package shapes_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/variations/equivalence"
	"github.com/katalvlaran/variations/fretting"
	"github.com/katalvlaran/variations/shapes"
	"github.com/katalvlaran/variations/variation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frets = []fretting.RelativeFret

// newShapes builds shapes over offsets 0..span on k strings.
func newShapes(t *testing.T, span, k int) *shapes.Shapes[fretting.RelativeFret] {
	t.Helper()
	s, err := shapes.New(fretting.RelativeFrets(span), k)
	require.NoError(t, err)

	return s
}

// TestNew_Errors covers empty alphabets, bad lengths and gaps a shift cannot bridge.
func TestNew_Errors(t *testing.T) {
	_, err := shapes.New[fretting.RelativeFret](nil, 3)
	assert.ErrorIs(t, err, variation.ErrInvalidConstruction)

	_, err = shapes.New(fretting.RelativeFrets(3), 0)
	assert.ErrorIs(t, err, variation.ErrInvalidConstruction)

	_, err = shapes.New(frets{0, 1, 3}, 2)
	assert.ErrorIs(t, err, equivalence.ErrOutsideAlphabet)
}

// TestCountsAndPartition: 6 offsets on 2 strings → 36 shapes, 11 prime.
func TestCountsAndPartition(t *testing.T) {
	s := newShapes(t, 5, 2)
	assert.Equal(t, int64(36), s.Count().Int64())
	assert.Equal(t, 2, s.Strings())
	assert.Equal(t, fretting.RelativeFrets(5), s.Values())

	primes := s.PrimeForms()
	translations := s.Translations()
	assert.Len(t, primes, 11)
	assert.Len(t, translations, 25)

	for _, p := range primes {
		assert.True(t, s.IsPrime(p.Frets), "%s", p)
	}
	for _, tr := range translations {
		assert.False(t, s.IsPrime(tr.Frets), "%s", tr.Shape)
		assert.Positive(t, tr.Shift)
	}
}

// TestPrimeForms_FourStrings: primes are all shapes touching offset 0.
func TestPrimeForms_FourStrings(t *testing.T) {
	s := newShapes(t, 3, 4)
	assert.Equal(t, int64(256), s.Count().Int64())
	assert.Len(t, s.PrimeForms(), 256-81)
	assert.Len(t, s.Translations(), 81)
}

// TestCanonical_ScenarioB moves (2,5) down to (0,3).
func TestCanonical_ScenarioB(t *testing.T) {
	s := newShapes(t, 5, 2)

	prime, shift, err := s.Canonical(frets{2, 5})
	require.NoError(t, err)
	assert.Equal(t, frets{0, 3}, prime.Frets)
	assert.Equal(t, int64(18), prime.Index.Int64())
	assert.Equal(t, 2, shift)
	assert.Equal(t, "#18 [0 3]", prime.String())

	_, _, err = s.Canonical(frets{2, 9})
	assert.ErrorIs(t, err, variation.ErrUnknownSymbol)
}

// TestTranslations_LazyPrime resolves each back-reference and re-applies the shift.
func TestTranslations_LazyPrime(t *testing.T) {
	s := newShapes(t, 4, 3)

	for _, tr := range s.Translations() {
		prime, err := tr.Prime()
		require.NoError(t, err)
		require.True(t, s.IsPrime(prime.Frets))

		moved := make(frets, len(prime.Frets))
		for i, f := range prime.Frets {
			moved[i] = f + fretting.RelativeFret(tr.Shift)
		}
		if diff := cmp.Diff(tr.Frets, moved); diff != "" {
			t.Fatalf("%s: prime+shift mismatch (-translation +moved):\n%s", tr.Shape, diff)
		}

		again, err := tr.Prime()
		require.NoError(t, err)
		assert.Equal(t, prime, again)
		assert.NotSame(t, prime.Index, again.Index, "each call hands out its own copy")
	}

	_, err := shapes.Translation[fretting.RelativeFret]{}.Prime()
	assert.ErrorIs(t, err, shapes.ErrDetached)
}

// TestResultsAreCopies: writing into returned shapes leaves the caches intact.
func TestResultsAreCopies(t *testing.T) {
	s := newShapes(t, 5, 2)

	primes := s.PrimeForms()
	primes[1].Frets[0] = 5
	primes[1].Index.SetInt64(99)
	fresh := s.PrimeForms()
	assert.Equal(t, frets{1, 0}, fresh[1].Frets)
	assert.Equal(t, int64(1), fresh[1].Index.Int64())

	trs := s.Translations()
	trs[0].Frets[0] = 0
	trs[0].Index.SetInt64(0)
	p, err := trs[0].Prime()
	require.NoError(t, err)
	p.Frets[0] = 5

	again := s.Translations()
	assert.Equal(t, trs[0].Shift, again[0].Shift)
	assert.NotEqual(t, int64(0), again[0].Index.Int64())
	pAgain, err := again[0].Prime()
	require.NoError(t, err)
	assert.True(t, s.IsPrime(pAgain.Frets))
}

// TestTranslationsOf lists a prime's translations by increasing shift.
func TestTranslationsOf(t *testing.T) {
	s := newShapes(t, 5, 2)

	prime, _, err := s.Canonical(frets{0, 3})
	require.NoError(t, err)
	trs, err := s.TranslationsOf(prime)
	require.NoError(t, err)

	var got []string
	for _, tr := range trs {
		got = append(got, tr.Shape.String())
	}
	assert.Equal(t, []string{"#25 [1 4]", "#32 [2 5]"}, got)

	_, err = s.TranslationsOf(shapes.Shape[fretting.RelativeFret]{Index: big.NewInt(32)})
	assert.ErrorIs(t, err, equivalence.ErrNotCanonical)
}

// TestPartition_CoversSpace checks primes and translations are disjoint and
// together list every index exactly once.
func TestPartition_CoversSpace(t *testing.T) {
	s := newShapes(t, 2, 4)

	seen := make(map[string]bool)
	for _, p := range s.PrimeForms() {
		require.False(t, seen[p.Index.String()])
		seen[p.Index.String()] = true
	}
	for _, tr := range s.Translations() {
		require.False(t, seen[tr.Index.String()])
		seen[tr.Index.String()] = true
	}
	assert.Len(t, seen, int(s.Count().Int64()))
}

// TestConcurrentFirstAccess races many readers on the lazy caches.
func TestConcurrentFirstAccess(t *testing.T) {
	s := newShapes(t, 3, 3)
	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)

	counts := make([][2]int, readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			counts[id] = [2]int{len(s.PrimeForms()), len(s.Translations())}
		}(i)
	}
	wg.Wait()

	for _, c := range counts {
		assert.Equal(t, [2]int{64 - 27, 27}, c)
	}
}
