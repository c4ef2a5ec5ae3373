package wsio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/wstr/distribution"
	"github.com/katalvlaran/wstr/matrix"
	"github.com/katalvlaran/wstr/weighted"
	"github.com/katalvlaran/wstr/wsio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSequence(t *testing.T) {
	const in = "2 ab\n0.25 0.75\n1 0\n"
	seq, err := decoder(in).DecodeSequence()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wsio.WriteSequence(&buf, seq, "ab"))
	assert.Equal(t, in, buf.String())

	buf.Reset()
	require.NoError(t, wsio.WriteSequence(&buf, seq, "ba"))
	assert.Equal(t, "2 ba\n0.75 0.25\n0 1\n", buf.String(), "alphabet fixes column order")

	buf.Reset()
	require.NoError(t, wsio.WriteSequence(&buf, weighted.NewSequence[sparseStore](), "ab"))
	assert.Equal(t, "0 ab\n", buf.String())

	err = wsio.WriteSequence(&buf, seq, "aa")
	assert.ErrorIs(t, err, distribution.ErrDuplicateSymbol)
}

func TestWriteCollection(t *testing.T) {
	const in = "3 ab\n0\n1\n1 0\n2\n0.1 0.9\n0.5 0.5\n"
	c, err := decoder(in).DecodeCollection()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wsio.WriteCollection(&buf, c, "ab"))
	assert.Equal(t, in, buf.String())
}

// TestRoundTrip decodes, encodes and decodes again.
func TestRoundTrip(t *testing.T) {
	const in = "3 ACGT\n.1 .2 .3 .4\n0 0 1 0\n.333333333333 .333333333333 .333333333334 0\n"
	seq, err := decoder(in, wsio.WithTolerance(1e-9)).DecodeSequence()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wsio.WriteSequence(&buf, seq, "ACGT"))

	again, err := decoder(buf.String(), wsio.WithTolerance(1e-9)).DecodeSequence()
	require.NoError(t, err)
	assert.True(t, seq.Equal(again))

	want, err := seq.Consensus(true)
	require.NoError(t, err)
	got, err := again.Consensus(true)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "TGG", got)
}

func TestEncoder_Rows(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, .5))
	require.NoError(t, m.Set(1, 1, 1e-20))

	var sb strings.Builder
	enc := wsio.NewEncoder(&sb)
	require.NoError(t, enc.Header(2, "xy"))
	require.NoError(t, enc.Rows(m))
	assert.Empty(t, sb.String(), "buffered until Flush")
	require.NoError(t, enc.Flush())
	assert.Equal(t, "2 xy\n0.5 0\n0 1e-20\n", sb.String())

	assert.ErrorIs(t, enc.Rows(nil), matrix.ErrNilMatrix)
}
