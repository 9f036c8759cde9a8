package countvec

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes every logical index and its value in ascending order, one per
// line, formatted as "<index>: <value>".
func (v *Vector) Dump(w io.Writer) error {
	v.mustOpen()
	bw := bufio.NewWriter(w)
	for i, x := range v.data {
		if _, err := fmt.Fprintf(bw, "%d: %f\n", v.first+i, x); err != nil {
			return err
		}
	}
	return bw.Flush()
}
