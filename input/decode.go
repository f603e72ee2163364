package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/freivalds/matrix"
)

// DefaultMaxDimension caps n so a corrupt header cannot demand an absurd
// allocation (three 8192×8192 int64 matrices take 1.5 GiB).
const DefaultMaxDimension = 8192

// Decoder reads problems from an input stream.
type Decoder struct {
	sc  *bufio.Scanner
	pos int // 1-based index of the last token read

	// MaxDimension bounds n; values ≤ 0 mean DefaultMaxDimension.
	MaxDimension int
}

// NewDecoder returns a Decoder reading whitespace-separated tokens from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Decoder{sc: sc}
}

// Decode reads exactly one problem from r and rejects trailing tokens.
func Decode(r io.Reader) (*Problem, error) {
	return NewDecoder(r).Decode()
}

// Decode reads the header, then A, B and C.
//
// Errors (wrapped with the position and role of the offending value):
//   - ErrMalformed, ErrTruncated, ErrInvalidDimension, ErrInvalidTrials,
//     ErrTrailingData, or the underlying reader error.
func (d *Decoder) Decode() (*Problem, error) {
	n, err := d.next("dimension")
	if err != nil {
		return nil, err
	}
	limit := d.MaxDimension
	if limit <= 0 {
		limit = DefaultMaxDimension
	}
	if n <= 0 || n > int64(limit) {
		return nil, fmt.Errorf("dimension %d (want 1..%d): %w", n, limit, ErrInvalidDimension)
	}
	k, err := d.next("trial count")
	if err != nil {
		return nil, err
	}
	if k < 0 || k > int64(maxInt) {
		return nil, fmt.Errorf("trial count %d: %w", k, ErrInvalidTrials)
	}

	p := &Problem{N: int(n), Trials: int(k)}
	ms := [...]**matrix.Dense{&p.A, &p.B, &p.C}
	for idx, dst := range ms {
		if *dst, err = d.readMatrix(operandNames[idx], p.N); err != nil {
			return nil, err
		}
	}

	if d.sc.Scan() {
		return nil, fmt.Errorf("token %d %q: %w", d.pos+1, d.sc.Text(), ErrTrailingData)
	}
	if err = d.sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return p, nil
}

// maxInt is the largest int on this platform.
const maxInt = int(^uint(0) >> 1)

// readMatrix reads n*n row-major values into a fresh matrix.
func (d *Decoder) readMatrix(name string, n int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %w", name, err)
	}
	var i, j int
	var v int64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = d.next(fmt.Sprintf("matrix %s[%d][%d]", name, i, j))
			if err != nil {
				return nil, err
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("matrix %s: %w", name, err)
			}
		}
	}

	return m, nil
}

// next reads one int64 token; what names the value for error messages.
func (d *Decoder) next(what string) (int64, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return 0, fmt.Errorf("input: read %s: %w", what, err)
		}
		return 0, fmt.Errorf("%s after %d tokens: %w", what, d.pos, ErrTruncated)
	}
	d.pos++
	tok := d.sc.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s: token %d %q out of int64 range: %w", what, d.pos, tok, ErrMalformed)
		}
		return 0, fmt.Errorf("%s: token %d %q: %w", what, d.pos, tok, ErrMalformed)
	}

	return v, nil
}
