package variation_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/variations/alphabet"
	"github.com/katalvlaran/variations/variation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// letter is a named symbol whose value is its rank in the test alphabet.
type letter string

func (l letter) Value() int { return int(l[0] - 'a') }

// newIntSpace builds the space of length k over the integers lo..hi.
func newIntSpace(t *testing.T, lo, hi, k int) *variation.Space[alphabet.Int] {
	t.Helper()
	a, err := alphabet.New(alphabet.Ints(lo, hi)...)
	require.NoError(t, err)
	s, err := variation.New(a, k)
	require.NoError(t, err)

	return s
}

// TestNew_InvalidConstruction covers nil alphabet and non-positive length.
func TestNew_InvalidConstruction(t *testing.T) {
	_, err := variation.New[alphabet.Int](nil, 2)
	assert.ErrorIs(t, err, variation.ErrInvalidConstruction)

	a, err := alphabet.New(alphabet.Ints(0, 1)...)
	require.NoError(t, err)
	for _, k := range []int{0, -3} {
		_, err = variation.New(a, k)
		assert.ErrorIs(t, err, variation.ErrInvalidConstruction, "length %d", k)
	}
}

// TestScenarioA: alphabet 0..5, length 2.
func TestScenarioA(t *testing.T) {
	s := newIntSpace(t, 0, 5, 2)

	assert.Equal(t, int64(36), s.Count().Int64())

	seq, err := s.Decode(big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, []alphabet.Int{1, 1}, seq)

	idx, err := s.Encode([]alphabet.Int{0, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(18), idx.Int64())

	idx, err = s.Encode([]alphabet.Int{2, 5})
	require.NoError(t, err)
	assert.Equal(t, int64(32), idx.Int64())
}

// TestScenarioC: alphabet {a,b,c}, length 2, enumeration order and round trip.
func TestScenarioC(t *testing.T) {
	a, err := alphabet.New[letter]("a", "b", "c")
	require.NoError(t, err)
	s, err := variation.New(a, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(9), s.Count().Int64())

	var want int64
	for v := range s.All() {
		assert.Equal(t, want, v.Index.Int64(), "strictly increasing index")

		dec, err := s.Decode(v.Index)
		require.NoError(t, err)
		if diff := cmp.Diff(v.Elements, dec); diff != "" {
			t.Errorf("Decode(%d) mismatch (-enum +decode):\n%s", want, diff)
		}
		enc, err := s.Encode(v.Elements)
		require.NoError(t, err)
		assert.Zero(t, v.Index.Cmp(enc))
		want++
	}
	assert.Equal(t, int64(9), want)

	first, err := s.DecodeUint64(1)
	require.NoError(t, err)
	assert.Equal(t, []letter{"b", "a"}, first, "position 0 is least significant")
}

// TestRoundTrip_AllIndices checks Encode(Decode(i)) == i over a whole space.
func TestRoundTrip_AllIndices(t *testing.T) {
	s := newIntSpace(t, -2, 2, 4)
	count := s.Count().Uint64()
	for i := uint64(0); i < count; i++ {
		seq, err := s.DecodeUint64(i)
		require.NoError(t, err)
		got, err := s.EncodeUint64(seq)
		require.NoError(t, err)
		require.Equal(t, i, got)
	}
}

// TestCount_BeyondUint64 verifies exact counts past 64 bits.
func TestCount_BeyondUint64(t *testing.T) {
	s := newIntSpace(t, 0, 9, 30)
	count := s.Count()
	assert.False(t, count.IsUint64())
	assert.Equal(t, "1"+strings.Repeat("0", 30), count.String())

	last := new(big.Int).Sub(count, big.NewInt(1))
	seq, err := s.Decode(last)
	require.NoError(t, err)
	for _, v := range seq {
		assert.Equal(t, alphabet.Int(9), v)
	}
	idx, err := s.Encode(seq)
	require.NoError(t, err)
	assert.Zero(t, idx.Cmp(last))

	_, err = s.EncodeUint64(seq)
	assert.ErrorIs(t, err, variation.ErrIndexOverflow)

	_, err = s.Decode(count)
	assert.ErrorIs(t, err, variation.ErrIndexOutOfRange)
}

// TestCount_IsCopy ensures mutating the returned count does not corrupt the space.
func TestCount_IsCopy(t *testing.T) {
	s := newIntSpace(t, 0, 1, 3)
	s.Count().SetInt64(0)
	assert.Equal(t, int64(8), s.Count().Int64())
}

// TestDecode_OutOfRange covers negative, nil and too-large indices.
func TestDecode_OutOfRange(t *testing.T) {
	s := newIntSpace(t, 0, 5, 2)
	for _, idx := range []*big.Int{nil, big.NewInt(-1), big.NewInt(36), big.NewInt(1000)} {
		_, err := s.Decode(idx)
		assert.ErrorIs(t, err, variation.ErrIndexOutOfRange, "index %v", idx)
	}
}

// TestEncode_LengthMismatch rejects sequences of the wrong length.
func TestEncode_LengthMismatch(t *testing.T) {
	s := newIntSpace(t, 0, 5, 2)
	_, err := s.Encode([]alphabet.Int{1})
	assert.ErrorIs(t, err, variation.ErrLengthMismatch)
}

// TestEncode_UnknownSymbol checks the offender listing and ellipsis.
func TestEncode_UnknownSymbol(t *testing.T) {
	s := newIntSpace(t, 0, 1, 8)

	_, err := s.Encode([]alphabet.Int{0, 7, 1, 7, 0, 1, 0, 1})
	require.ErrorIs(t, err, variation.ErrUnknownSymbol)
	assert.Equal(t, "variation: unknown symbol: 7", err.Error())

	_, err = s.Encode([]alphabet.Int{10, 11, 12, 13, 14, 15, 16, 0})
	require.ErrorIs(t, err, variation.ErrUnknownSymbol)
	assert.Equal(t, "variation: unknown symbol: 10, 11, 12, 13, 14, …", err.Error())

	var use *variation.UnknownSymbolError
	require.True(t, errors.As(err, &use))
	assert.Len(t, use.Symbols, 7)
}

// TestAll_Restartable verifies two ranges over the same iterator agree.
func TestAll_Restartable(t *testing.T) {
	s := newIntSpace(t, 0, 2, 3)
	seq := s.All()

	collect := func() []string {
		var out []string
		for v := range seq {
			out = append(out, v.Index.String())
		}
		return out
	}
	first := collect()
	second := collect()
	assert.Len(t, first, 27)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

// TestAll_EarlyStop confirms breaking out of the loop stops the producer.
func TestAll_EarlyStop(t *testing.T) {
	s := newIntSpace(t, 0, 9, 40)
	n := 0
	for range s.All() {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

// TestFrom resumes enumeration mid-space and rejects bad starts.
func TestFrom(t *testing.T) {
	s := newIntSpace(t, 0, 5, 2)

	seq, err := s.From(big.NewInt(34))
	require.NoError(t, err)
	var got [][]alphabet.Int
	for v := range seq {
		got = append(got, v.Elements)
	}
	assert.Equal(t, [][]alphabet.Int{{4, 5}, {5, 5}}, got)

	_, err = s.From(big.NewInt(36))
	assert.ErrorIs(t, err, variation.ErrIndexOutOfRange)
}
