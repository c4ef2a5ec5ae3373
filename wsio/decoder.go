package wsio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wstr/distribution"
	"github.com/katalvlaran/wstr/weighted"
)

// Decoder reads weighted sequences from a whitespace-delimited token stream.
//
// Single sequence:
//
//	<n> <alphabet>
//	<p_1,1> ... <p_1,k>
//	...
//	<p_n,1> ... <p_n,k>
//
// Collection:
//
//	<L> <alphabet>
//	<n_1>
//	<n_1 rows of k values>
//	...
//
// Tokens are consumed in a single pass. A Decoder may read several sequences
// or collections from one stream in a row. Each position gets a fresh store
// from newStore; values that are exactly 0 are not written, so sparse stores
// only hold the observed support.
//
// Decoding is all-or-nothing: on error the target sequence is left as it was.
type Decoder[D distribution.Store[byte]] struct {
	sc        *bufio.Scanner
	newStore  func() D
	opts      Options
	tokens    int // tokens consumed so far, for error context
	lastAlpha string
}

// NewDecoder returns a decoder reading from r. newStore must return an empty
// store each time it is called.
func NewDecoder[D distribution.Store[byte]](r io.Reader, newStore func() D, opts ...Option) *Decoder[D] {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Decoder[D]{sc: sc, newStore: newStore, opts: gatherOptions(opts...)}
}

// Options returns the resolved parse modes.
func (dec *Decoder[D]) Options() Options { return dec.opts }

// Alphabet returns the alphabet token of the most recently started record,
// or "" before the first one.
func (dec *Decoder[D]) Alphabet() string { return dec.lastAlpha }

// DecodeSequence reads one sequence. It returns io.EOF, unwrapped, when the
// stream holds no further token.
func (dec *Decoder[D]) DecodeSequence() (*weighted.Sequence[D], error) {
	seq := weighted.NewSequence[D]()
	if err := dec.DecodeSequenceInto(seq); err != nil {
		return nil, err
	}

	return seq, nil
}

// DecodeSequenceInto reads one sequence and appends its positions to seq.
// The gap of seq is kept unless the gap convention is on, in which case it
// becomes the last alphabet symbol.
func (dec *Decoder[D]) DecodeSequenceInto(seq *weighted.Sequence[D]) error {
	tok, err := dec.next()
	if err != nil {
		return err // io.EOF on a clean end of stream
	}
	n, err := dec.count(tok, "length")
	if err != nil {
		return err
	}
	alpha, err := dec.readAlphabet()
	if err != nil {
		return err
	}
	symbols, err := dec.positions(n, alpha)
	if err != nil {
		return fmt.Errorf("Decoder.DecodeSequence: %w", err)
	}
	if dec.opts.gapConvention {
		seq.SetGap(alpha.Symbol(alpha.Len() - 1))
	}

	return seq.Append(symbols...)
}

// DecodeCollection reads one collection. The alphabet is shared by all
// members; each member declares its own length. It returns io.EOF, unwrapped,
// when the stream holds no further token.
func (dec *Decoder[D]) DecodeCollection() (weighted.Collection[D], error) {
	tok, err := dec.next()
	if err != nil {
		return nil, err
	}
	l, err := dec.count(tok, "collection size")
	if err != nil {
		return nil, err
	}
	alpha, err := dec.readAlphabet()
	if err != nil {
		return nil, err
	}

	c := weighted.Collection[D]{}
	for j := 0; j < l; j++ {
		tok, err = dec.need()
		if err != nil {
			return nil, fmt.Errorf("Decoder.DecodeCollection sequence %d: %w", j, err)
		}
		n, err := dec.count(tok, "length")
		if err != nil {
			return nil, fmt.Errorf("Decoder.DecodeCollection sequence %d: %w", j, err)
		}
		symbols, err := dec.positions(n, alpha)
		if err != nil {
			return nil, fmt.Errorf("Decoder.DecodeCollection sequence %d: %w", j, err)
		}
		seq := weighted.NewSequence(symbols...)
		if dec.opts.gapConvention {
			seq.SetGap(alpha.Symbol(alpha.Len() - 1))
		}
		c = append(c, seq)
	}

	return c, nil
}

// positions reads n rows of alpha.Len() values.
func (dec *Decoder[D]) positions(n int, alpha *distribution.Alphabet[byte]) ([]*weighted.Symbol[D], error) {
	elemOpts := dec.opts.elementOptions()
	var out []*weighted.Symbol[D]
	for i := 0; i < n; i++ {
		store := dec.newStore()
		for j := 0; j < alpha.Len(); j++ {
			v, err := dec.value()
			if err != nil {
				return nil, fmt.Errorf("position %d: %w", i, err)
			}
			if v == 0 {
				continue
			}
			if err = store.Set(alpha.Symbol(j), v); err != nil {
				return nil, fmt.Errorf("position %d: %w", i, err)
			}
		}
		sy, err := weighted.NewSymbol(store, elemOpts...)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out = append(out, sy)
	}

	return out, nil
}

// next returns the following token or io.EOF.
func (dec *Decoder[D]) next() (string, error) {
	if !dec.sc.Scan() {
		if err := dec.sc.Err(); err != nil {
			return "", fmt.Errorf("wsio: read token %d: %w", dec.tokens+1, err)
		}

		return "", io.EOF
	}
	dec.tokens++

	return dec.sc.Text(), nil
}

// need is next for tokens the format requires: end of stream is malformed.
func (dec *Decoder[D]) need() (string, error) {
	tok, err := dec.next()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: token %d: %w", ErrMalformedInput, dec.tokens+1, io.ErrUnexpectedEOF)
	}

	return tok, err
}

func (dec *Decoder[D]) count(tok, what string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s at token %d: %w", ErrMalformedInput, what, dec.tokens, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative %s %d at token %d", ErrMalformedInput, what, n, dec.tokens)
	}

	return n, nil
}

func (dec *Decoder[D]) readAlphabet() (*distribution.Alphabet[byte], error) {
	tok, err := dec.need()
	if err != nil {
		return nil, err
	}
	alpha, err := distribution.Letters(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: alphabet %q at token %d: %w", ErrMalformedInput, tok, dec.tokens, err)
	}
	dec.lastAlpha = tok

	return alpha, nil
}

func (dec *Decoder[D]) value() (float64, error) {
	tok, err := dec.need()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: value at token %d: %w", ErrMalformedInput, dec.tokens, err)
	}

	return v, nil
}

// NewSparseStore is a store factory for open alphabets.
func NewSparseStore() *distribution.Sparse[byte] { return new(distribution.Sparse[byte]) }

// DenseStores returns a store factory over a fixed alphabet. Decoding a
// nonzero value for a symbol outside a fails with distribution.ErrUnknownSymbol.
func DenseStores(a *distribution.Alphabet[byte]) func() *distribution.Dense[byte] {
	return func() *distribution.Dense[byte] { return distribution.NewDense(a) }
}
