package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/born-ml/nnlib/internal/linalg"
)

// ErrOddHeight is returned by DrawImage for images with an odd row count.
var ErrOddHeight = errors.New("image height must be even")

// DrawImage renders img to w using half-block characters, two pixel rows per
// text line. Pixels >= 0.5 are drawn lit.
func DrawImage(w io.Writer, img *linalg.Matrix) error {
	if img.Height()%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrOddHeight, img.Height())
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < img.Height(); i += 2 {
		for j := 0; j < img.Width(); j++ {
			top, bottom := img.At(i, j) >= 0.5, img.At(i+1, j) >= 0.5
			switch {
			case top && bottom:
				bw.WriteString("█")
			case top:
				bw.WriteString("▀")
			case bottom:
				bw.WriteString("▄")
			default:
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
