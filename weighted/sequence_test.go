package weighted_test

import (
	"testing"

	"github.com/katalvlaran/wstr/distribution"
	"github.com/katalvlaran/wstr/matrix"
	"github.com/katalvlaran/wstr/weighted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sparseSym = weighted.Symbol[*distribution.Sparse[byte]]

func sym(t *testing.T, es ...distribution.Entry[byte]) *sparseSym {
	t.Helper()
	sy, err := weighted.NewSymbol(sparse(t, es...))
	require.NoError(t, err)

	return sy
}

// TestSymbol_HeaviestExcluding covers the gap-aware queries.
func TestSymbol_HeaviestExcluding(t *testing.T) {
	sy := sym(t, e('a', .6), e('b', .4))
	h, err := sy.HeaviestSymbol()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), h)

	h, err = sy.HeaviestExcluding('a')
	require.NoError(t, err)
	assert.Equal(t, byte('b'), h)
	p, err := sy.HeaviestExcludingProbability('a')
	require.NoError(t, err)
	assert.Equal(t, .4, p)

	sy2, err := weighted.NewSymbol(dense(t, e('A', .4), e('C', .2), e('G', .4)), weighted.WithTolerance(1e-9))
	require.NoError(t, err)
	h, err = sy2.HeaviestExcluding('G')
	require.NoError(t, err)
	assert.Equal(t, byte('A'), h)

	onlyGap := sym(t, e('-', 1))
	_, err = onlyGap.HeaviestExcluding('-')
	assert.ErrorIs(t, err, distribution.ErrNoAlternative)
	_, err = onlyGap.HeaviestExcludingProbability('-')
	assert.ErrorIs(t, err, distribution.ErrNoAlternative)
}

// TestSequence_Basic grows a sequence and checks consensus with and without gap.
func TestSequence_Basic(t *testing.T) {
	seq := weighted.NewSequence[*distribution.Sparse[byte]]()
	assert.Equal(t, 0, seq.Len())
	s, err := seq.Consensus(true)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	require.NoError(t, seq.Append(sym(t, e('a', 1))))
	s, err = seq.Heaviest()
	require.NoError(t, err)
	assert.Equal(t, "a", s)

	require.NoError(t, seq.Append(sym(t, e('a', .2), e('b', .6), e('c', .2))))
	s, err = seq.Heaviest()
	require.NoError(t, err)
	assert.Equal(t, "ab", s)

	assert.False(t, seq.HasGap())
	seq.SetGap('-')
	assert.True(t, seq.HasGap())
	g, ok := seq.Gap()
	assert.True(t, ok)
	assert.Equal(t, byte('-'), g)

	require.NoError(t, seq.Append(sym(t, e('a', .4), e('-', .6))))
	s, err = seq.Consensus(true)
	require.NoError(t, err)
	assert.Equal(t, "ab-", s)
	s, err = seq.Consensus(false)
	require.NoError(t, err)
	assert.Equal(t, "ab", s)

	first, err := seq.At(0)
	require.NoError(t, err)
	assert.True(t, first.Equal(sym(t, e('a', 1))))

	require.NoError(t, seq.Set(0, sym(t, e('b', 1))))
	s, err = seq.Heaviest()
	require.NoError(t, err)
	assert.Equal(t, "bb-", s)
	s, err = seq.HeaviestUngapped()
	require.NoError(t, err)
	assert.Equal(t, "bb", s)

	seq.ClearGap()
	s, err = seq.Consensus(false)
	require.NoError(t, err)
	assert.Equal(t, "bb-", s, "without a gap both modes agree")
}

// TestSequence_GapFiltering is the G-A example: gap positions are omitted.
func TestSequence_GapFiltering(t *testing.T) {
	seq := weighted.NewSequence(
		sym(t, e('G', .7), e('-', .3)),
		sym(t, e('G', .1), e('-', .9)),
		sym(t, e('A', .6), e('C', .4)),
	)
	seq.SetGap('-')

	s, err := seq.Consensus(true)
	require.NoError(t, err)
	assert.Equal(t, "G-A", s)
	s, err = seq.Consensus(false)
	require.NoError(t, err)
	assert.Equal(t, "GA", s)
}

// TestSequence_GapIsMetadata shows the gap need not occur in any distribution.
func TestSequence_GapIsMetadata(t *testing.T) {
	seq := weighted.NewSequence(sym(t, e('a', 1)), sym(t, e('b', 1)))
	seq.SetGap('z')
	s, err := seq.Consensus(false)
	require.NoError(t, err)
	assert.Equal(t, "ab", s)

	seq.SetGap('b')
	s, err = seq.Consensus(false)
	require.NoError(t, err)
	assert.Equal(t, "a", s)
}

// TestSequence_Errors covers bounds, nil symbols and empty positions.
func TestSequence_Errors(t *testing.T) {
	seq := weighted.NewSequence(sym(t, e('a', 1)))

	_, err := seq.At(1)
	assert.ErrorIs(t, err, weighted.ErrIndexOutOfRange)
	assert.ErrorIs(t, seq.Set(-1, sym(t, e('a', 1))), weighted.ErrIndexOutOfRange)
	assert.ErrorIs(t, seq.Set(0, nil), weighted.ErrNilSymbol)
	assert.ErrorIs(t, seq.Append(nil), weighted.ErrNilSymbol)
	assert.Equal(t, 1, seq.Len())

	empty, err := weighted.NewSymbol(&distribution.Sparse[byte]{}, weighted.WithLenient())
	require.NoError(t, err)
	require.NoError(t, seq.Append(empty))
	_, err = seq.Consensus(true)
	assert.ErrorIs(t, err, distribution.ErrEmptyDistribution)

	seq.Clear()
	assert.Equal(t, 0, seq.Len())
}

// TestSequence_Equal is positional and length-sensitive.
func TestSequence_Equal(t *testing.T) {
	a := weighted.NewSequence(sym(t, e('a', 1)), sym(t, e('b', .5), e('c', .5)))
	b := weighted.NewSequence(sym(t, e('a', 1), e('z', 0)), sym(t, e('c', .5), e('b', .5)))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	b.SetGap('-')
	assert.True(t, a.Equal(b), "gap is not part of equality")

	c := weighted.NewSequence(sym(t, e('a', 1)))
	assert.False(t, a.Equal(c))

	d := weighted.NewSequence(sym(t, e('b', 1)), sym(t, e('b', .5), e('c', .5)))
	assert.False(t, a.Equal(d))
}

// TestSequence_Profile exports a position × symbol matrix.
func TestSequence_Profile(t *testing.T) {
	seq := weighted.NewSequence(
		sym(t, e('a', .3), e('b', .7)),
		sym(t, e('c', 1)),
	)
	m, err := seq.Profile([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, "[0.3, 0.7, 0]\n[0, 0, 1]\n", m.String())

	sums, err := matrix.RowSums(m)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1}, sums, 1e-12)

	_, err = seq.Profile(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = weighted.NewSequence[*distribution.Sparse[byte]]().Profile([]byte("a"))
	assert.ErrorIs(t, err, weighted.ErrEmptySequence)
}

// TestSequence_IsGood aggregates position checks.
func TestSequence_IsGood(t *testing.T) {
	lenient, err := weighted.NewSymbol(sparse(t, e('a', .5)), weighted.WithLenient())
	require.NoError(t, err)

	seq := weighted.NewSequence(sym(t, e('a', 1)))
	assert.True(t, seq.IsGood())
	require.NoError(t, seq.Append(lenient))
	assert.False(t, seq.IsGood())
}

// TestCollection covers consensus, gap propagation and equality.
func TestCollection(t *testing.T) {
	c := weighted.Collection[*distribution.Sparse[byte]]{
		weighted.NewSequence(sym(t, e('a', 1)), sym(t, e('-', 1))),
		weighted.NewSequence(sym(t, e('b', 1))),
	}
	assert.Equal(t, 2, c.Len())

	out, err := c.Consensus(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-", "b"}, out)

	c.SetGap('-')
	out, err = c.Consensus(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out)

	other := weighted.Collection[*distribution.Sparse[byte]]{
		weighted.NewSequence(sym(t, e('a', 1)), sym(t, e('-', 1))),
		weighted.NewSequence(sym(t, e('b', 1))),
	}
	assert.True(t, c.Equal(other))
	assert.False(t, c.Equal(other[:1]))
}

func TestCollection_NilMember(t *testing.T) {
	c := weighted.Collection[*distribution.Sparse[byte]]{
		nil,
		weighted.NewSequence(sym(t, e('a', 1)), sym(t, e('-', 1))),
	}
	require.NotPanics(t, func() { c.SetGap('-') })

	out, err := c.Consensus(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a"}, out)

	assert.True(t, c.Equal(weighted.Collection[*distribution.Sparse[byte]]{nil, c[1]}))
	assert.False(t, c.Equal(weighted.Collection[*distribution.Sparse[byte]]{c[1], c[1]}))
	assert.False(t, c.Equal(weighted.Collection[*distribution.Sparse[byte]]{c[1], nil}))
}
