package distribution_test

import (
	"testing"

	"github.com/katalvlaran/wstr/distribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAlphabet mirrors a mixed alphabet (nucleotides, letters, gap).
const testAlphabet = "ACGTabcdefghij-"

// storeCase builds a fresh store of one strategy from ordered entries.
type storeCase struct {
	name string
	make func(t *testing.T, entries ...distribution.Entry[byte]) distribution.Store[byte]
}

func strategies() []storeCase {
	return []storeCase{
		{
			name: "sparse",
			make: func(t *testing.T, entries ...distribution.Entry[byte]) distribution.Store[byte] {
				sp, err := distribution.NewSparse(entries...)
				require.NoError(t, err)

				return sp
			},
		},
		{
			name: "dense",
			make: func(t *testing.T, entries ...distribution.Entry[byte]) distribution.Store[byte] {
				d := distribution.NewDense(distribution.MustLetters(testAlphabet))
				for _, e := range entries {
					require.NoError(t, d.Set(e.Symbol, e.P))
				}

				return d
			},
		},
	}
}

func e(s byte, p float64) distribution.Entry[byte] { return distribution.Entry[byte]{Symbol: s, P: p} }

// TestStore_AbsentIsZero verifies that an absent symbol reads exactly 0.
func TestStore_AbsentIsZero(t *testing.T) {
	for _, sc := range strategies() {
		t.Run(sc.name, func(t *testing.T) {
			st := sc.make(t, e('a', .5), e('b', .5))
			assert.Equal(t, .5, st.Get('a'))
			assert.Equal(t, 0.0, st.Get('c'))
			assert.Equal(t, 0.0, st.Get('z'), "out-of-alphabet reads never fail")
		})
	}
}

// TestStore_SumAndOverwrite checks Set overwrites and Sum scans all entries.
func TestStore_SumAndOverwrite(t *testing.T) {
	for _, sc := range strategies() {
		t.Run(sc.name, func(t *testing.T) {
			st := sc.make(t, e('a', 1))
			require.NoError(t, st.Set('b', .2))
			assert.InDelta(t, 1.2, st.Sum(), 1e-12)

			require.NoError(t, st.Set('a', .8))
			assert.Equal(t, .8, st.Get('a'))
			assert.InDelta(t, 1.0, st.Sum(), 1e-12)
		})
	}
}

// TestStore_BadProbability rejects NaN, Inf and negative writes but allows > 1.
func TestStore_BadProbability(t *testing.T) {
	for _, sc := range strategies() {
		t.Run(sc.name, func(t *testing.T) {
			st := sc.make(t)
			assert.ErrorIs(t, st.Set('a', -0.1), distribution.ErrBadProbability)
			assert.ErrorIs(t, st.Set('a', nan()), distribution.ErrBadProbability)
			assert.ErrorIs(t, st.Set('a', inf()), distribution.ErrBadProbability)
			assert.NoError(t, st.Set('a', 2.0), "mass above one is legal on write")
		})
	}
}

// TestStore_Heaviest covers the plain maximum and the first-in-order tie-break.
func TestStore_Heaviest(t *testing.T) {
	for _, sc := range strategies() {
		t.Run(sc.name, func(t *testing.T) {
			st := sc.make(t, e('a', .7), e('b', .2), e('c', .5))
			h, err := st.Heaviest()
			require.NoError(t, err)
			assert.Equal(t, byte('a'), h)

			tie := sc.make(t, e('A', .4), e('C', .2), e('G', .4))
			h, err = tie.Heaviest()
			require.NoError(t, err)
			assert.Equal(t, byte('A'), h, "ties resolve to the first entry in canonical order")
		})
	}
}

// TestStore_HeaviestExcluding mirrors gap-aware queries.
func TestStore_HeaviestExcluding(t *testing.T) {
	for _, sc := range strategies() {
		t.Run(sc.name, func(t *testing.T) {
			st := sc.make(t, e('a', .6), e('b', .4))
			h, err := st.HeaviestExcluding('a')
			require.NoError(t, err)
			assert.Equal(t, byte('b'), h)

			// Excluding the first element of the alphabet used to be buggy.
			st = sc.make(t, e('A', .4), e('C', .2), e('G', .4))
			h, err = st.HeaviestExcluding('G')
			require.NoError(t, err)
			assert.Equal(t, byte('A'), h)

			h, err = st.HeaviestExcluding('A')
			require.NoError(t, err)
			assert.Equal(t, byte('G'), h)
		})
	}
}

// TestSparse_EmptyAndNoAlternative checks the failure modes on open alphabets.
func TestSparse_EmptyAndNoAlternative(t *testing.T) {
	var sp distribution.Sparse[byte]

	_, err := sp.Heaviest()
	assert.ErrorIs(t, err, distribution.ErrEmptyDistribution)
	_, err = sp.HeaviestExcluding('-')
	assert.ErrorIs(t, err, distribution.ErrEmptyDistribution)

	require.NoError(t, sp.Set('-', 1))
	_, err = sp.HeaviestExcluding('-')
	assert.ErrorIs(t, err, distribution.ErrNoAlternative)

	// An explicit zero entry is still an alternative.
	require.NoError(t, sp.Set('a', 0))
	h, err := sp.HeaviestExcluding('-')
	require.NoError(t, err)
	assert.Equal(t, byte('a'), h)
	assert.Equal(t, 2, sp.Len())
	assert.True(t, sp.Has('a'))
}

// TestDense_FixedAlphabet covers unknown symbols and single-letter alphabets.
func TestDense_FixedAlphabet(t *testing.T) {
	one := distribution.NewDense(distribution.MustLetters("a"))
	require.NoError(t, one.Set('a', 1.2))
	assert.Equal(t, 1.2, one.Get('a'))
	assert.Equal(t, 0.0, one.Get('b'))

	err := one.Set('b', .5)
	assert.ErrorIs(t, err, distribution.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), `'b'`)

	_, err = one.HeaviestExcluding('a')
	assert.ErrorIs(t, err, distribution.ErrNoAlternative)

	h, err := one.HeaviestExcluding('z')
	require.NoError(t, err, "excluding a foreign symbol excludes nothing")
	assert.Equal(t, byte('a'), h)

	empty := distribution.NewDense[byte](nil)
	_, err = empty.Heaviest()
	assert.ErrorIs(t, err, distribution.ErrEmptyDistribution)
}

// TestDense_AllZeroHeaviest documents that an all-zero dense store has a
// heaviest symbol: the lowest index.
func TestDense_AllZeroHeaviest(t *testing.T) {
	d := distribution.NewDense(distribution.MustLetters("ACGT"))
	h, err := d.Heaviest()
	require.NoError(t, err)
	assert.Equal(t, byte('A'), h)
	assert.Equal(t, 4, d.Len())
}

// TestDenseOf fills positionally and checks length validation.
func TestDenseOf(t *testing.T) {
	alpha := distribution.MustLetters("acgt")
	d, err := distribution.DenseOf(alpha, .2, .4, .4, 0)
	require.NoError(t, err)
	assert.Equal(t, .4, d.Get('c'))
	assert.Equal(t, 0.0, d.Get('t'))
	assert.Equal(t, []float64{.2, .4, .4, 0}, d.Values())

	h, err := d.Heaviest()
	require.NoError(t, err)
	assert.Equal(t, byte('c'), h, "lowest index wins the c/g tie")

	_, err = distribution.DenseOf(alpha, .5, .5)
	assert.ErrorIs(t, err, distribution.ErrLengthMismatch)

	_, err = distribution.DenseOf(alpha, .5, .5, -1, 0)
	assert.ErrorIs(t, err, distribution.ErrBadProbability)
}

// TestEqual_Semantic verifies reflexivity, symmetry and zero-insensitivity.
func TestEqual_Semantic(t *testing.T) {
	a, err := distribution.NewSparse(e('a', 1))
	require.NoError(t, err)
	b, err := distribution.NewSparse(e('a', 1), e('b', 0))
	require.NoError(t, err)
	c, err := distribution.NewSparse(e('a', 1), e('b', .2))
	require.NoError(t, err)

	assert.True(t, distribution.Equal[byte](a, a))
	assert.True(t, distribution.Equal[byte](a, b))
	assert.True(t, distribution.Equal[byte](b, a))
	assert.False(t, distribution.Equal[byte](a, c))
	assert.False(t, distribution.Equal[byte](c, a))

	d := distribution.NewDense(distribution.MustLetters(testAlphabet))
	require.NoError(t, d.Set('a', 1))
	assert.True(t, distribution.Equal[byte](a, d), "strategies compare semantically")
	assert.True(t, distribution.Equal[byte](d, b))
	assert.False(t, distribution.Equal[byte](d, c))
}

// TestClone_Independent ensures clones do not share storage.
func TestClone_Independent(t *testing.T) {
	sp, err := distribution.NewSparse(e('x', .5), e('y', .5))
	require.NoError(t, err)
	spc := sp.Clone()
	require.NoError(t, spc.Set('x', .9))
	assert.Equal(t, .5, sp.Get('x'))
	assert.Equal(t, .9, spc.Get('x'))

	d := distribution.NewDense(distribution.MustLetters("xy"))
	dc := d.Clone()
	require.NoError(t, dc.Set('y', 1))
	assert.Equal(t, 0.0, d.Get('y'))
	assert.Same(t, d.Alphabet(), dc.Alphabet())
}

// TestSupport lists positive-mass symbols in canonical order.
func TestSupport(t *testing.T) {
	d, err := distribution.DenseOf(distribution.MustLetters("ACGT"), .3, 0, .7, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("AG"), distribution.Support[byte](d))
}

// TestSparse_GenericSymbols uses non-byte comparable symbols.
func TestSparse_GenericSymbols(t *testing.T) {
	type codon [3]byte
	v0, v1 := codon{'A', 'T', 'G'}, codon{'T', 'A', 'A'}

	sp := &distribution.Sparse[codon]{}
	require.NoError(t, sp.Set(v0, 1))
	h, err := sp.Heaviest()
	require.NoError(t, err)
	assert.Equal(t, v0, h)

	require.NoError(t, sp.Set(v1, .7))
	require.NoError(t, sp.Set(v0, .2))
	h, err = sp.Heaviest()
	require.NoError(t, err)
	assert.Equal(t, v1, h)
	assert.InDelta(t, .9, sp.Sum(), 1e-12)
}
