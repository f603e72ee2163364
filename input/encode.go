package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/freivalds/matrix"
)

// Encode writes p in the format Decode reads: a "n k" header line followed
// by the rows of A, B and C.
func Encode(w io.Writer, p *Problem) error {
	if p == nil {
		return fmt.Errorf("input: Encode: %w", matrix.ErrNilMatrix)
	}
	if _, err := matrix.ValidateOperands(p.A, p.B, p.C); err != nil {
		return fmt.Errorf("input: Encode: %w", err)
	}
	if p.A.Size() != p.N {
		return fmt.Errorf("input: Encode: N=%d, matrices are %d: %w", p.N, p.A.Size(), matrix.ErrDimensionMismatch)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", p.N, p.Trials)
	buf := make([]byte, 0, 24)
	for _, m := range [...]*matrix.Dense{p.A, p.B, p.C} {
		for i := 0; i < p.N; i++ {
			row, err := m.Row(i)
			if err != nil {
				return fmt.Errorf("input: Encode: %w", err)
			}
			for j, v := range row {
				if j > 0 {
					bw.WriteByte(' ')
				}
				buf = strconv.AppendInt(buf[:0], v, 10)
				bw.Write(buf)
			}
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}
