package linalg

import (
	"strconv"
	"strings"
)

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}

func writeRow(b *strings.Builder, row []float64) {
	b.WriteByte('[')
	for j, x := range row {
		if j > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(x))
	}
	b.WriteByte(']')
}

// String renders v as "[a, b, c]".
func (v *Vector) String() string {
	var b strings.Builder
	writeRow(&b, v.data)
	return b.String()
}

// String renders m one row per line:
//
//	[[1, 2],
//	 [3, 4]]
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString(",\n ")
		}
		writeRow(&b, m.Row(i))
	}
	b.WriteByte(']')
	return b.String()
}
