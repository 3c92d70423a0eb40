// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"strconv"
)

const (
	gridCellPrefix = "_"
	gridInfCell    = "__"
)

// WriteGrid prints m one row per line; a finite cell is written as "_<v>",
// a sentinel cell as "__". It returns the number of finite cells written.
func WriteGrid(w io.Writer, m *Dense) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("WriteGrid", err)
	}
	bw := bufio.NewWriter(w)
	finite := 0
	var i, j int
	var v int64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = m.data[i*m.c+j]
			if v >= m.inf {
				_, _ = bw.WriteString(gridInfCell)
				continue
			}
			finite++
			_, _ = bw.WriteString(gridCellPrefix)
			_, _ = bw.WriteString(strconv.FormatInt(v, 10))
		}
		_ = bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return finite, matrixErrorf("WriteGrid", err)
	}

	return finite, nil
}
