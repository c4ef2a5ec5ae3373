package wsio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wstr/distribution"
	"github.com/katalvlaran/wstr/matrix"
	"github.com/katalvlaran/wstr/weighted"
)

// Encoder writes the text format. Values are printed in the shortest form
// that parses back to the same float64, so decode→encode→decode is lossless.
//
// Output is buffered; the Write* helpers flush on success.
type Encoder struct {
	bw *bufio.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{bw: bufio.NewWriter(w)} }

// Header writes "<count> <alphabet>\n".
func (enc *Encoder) Header(count int, alphabet string) error {
	_, err := fmt.Fprintf(enc.bw, "%d %s\n", count, alphabet)

	return err
}

// Length writes a collection member length on its own line.
func (enc *Encoder) Length(n int) error {
	_, err := fmt.Fprintf(enc.bw, "%d\n", n)

	return err
}

// Rows writes every row of m, space separated, one row per line.
func (enc *Encoder) Rows(m matrix.Matrix) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	var buf []byte
	for i := 0; i < m.Rows(); i++ {
		buf = buf[:0]
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := enc.bw.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

// Flush writes any buffered data to the underlying writer.
func (enc *Encoder) Flush() error { return enc.bw.Flush() }

// WriteSequence encodes seq over alphabet, which fixes the column order.
// Mass on symbols outside alphabet is not written; ambiguity-decoding stores
// report their decoded mass for any code listed in alphabet.
func WriteSequence[D distribution.Store[byte]](w io.Writer, seq *weighted.Sequence[D], alphabet string) error {
	if _, err := distribution.Letters(alphabet); err != nil {
		return fmt.Errorf("WriteSequence: %w", err)
	}
	enc := NewEncoder(w)
	if err := enc.Header(seq.Len(), alphabet); err != nil {
		return err
	}
	if err := enc.sequenceRows(seq, alphabet); err != nil {
		return fmt.Errorf("WriteSequence: %w", err)
	}

	return enc.Flush()
}

// WriteCollection encodes c with a shared alphabet.
func WriteCollection[D distribution.Store[byte]](w io.Writer, c weighted.Collection[D], alphabet string) error {
	if _, err := distribution.Letters(alphabet); err != nil {
		return fmt.Errorf("WriteCollection: %w", err)
	}
	enc := NewEncoder(w)
	if err := enc.Header(c.Len(), alphabet); err != nil {
		return err
	}
	for j, seq := range c {
		if err := enc.Length(seq.Len()); err != nil {
			return err
		}
		if err := enc.sequenceRows(seq, alphabet); err != nil {
			return fmt.Errorf("WriteCollection sequence %d: %w", j, err)
		}
	}

	return enc.Flush()
}

// profiler is the part of *weighted.Sequence the encoder needs.
type profiler interface {
	Len() int
	Profile(symbols []byte) (*matrix.Dense, error)
}

func (enc *Encoder) sequenceRows(seq profiler, alphabet string) error {
	if seq.Len() == 0 {
		return nil
	}
	m, err := seq.Profile([]byte(alphabet))
	if err != nil {
		return err
	}

	return enc.Rows(m)
}
