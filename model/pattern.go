package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// LoadPattern fills the interior of g from a textual pattern, one line per row.
//
// '0' marks a dead cell and any other byte a live one. Short lines leave the
// rest of their row untouched, bytes past the last interior column and lines
// past the last interior row are ignored. A trailing '\r' is part of the line
// ending. Only read failures are reported.
func LoadPattern(r io.Reader, g *Grid) error {
	br := bufio.NewReader(r)

	for row := firstRow; row <= lastRow; row++ {
		line, err := br.ReadSlice('\n')
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return errors.Wrapf(err, "[LoadPattern] failed to read row %d", row)
		}

		fillRow(g, row, trimLineEnd(line))

		if err == bufio.ErrBufferFull {
			// Only the first InteriorCols bytes matter, drop the rest of the line
			err = skipLine(br)
			if err != nil && err != io.EOF {
				return errors.Wrapf(err, "[LoadPattern] failed to skip the rest of row %d", row)
			}
		}
		if err == io.EOF {
			return nil
		}
	}
	return nil
}

// fillRow writes the cells of one interior row from a line of pattern text
func fillRow(g *Grid, row int, line []byte) {
	for i, ch := range line {
		col := firstCol + i
		if col > lastCol {
			return
		}
		g.Set(row, col, ch != '0')
	}
}

func trimLineEnd(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

func skipLine(br *bufio.Reader) error {
	for {
		_, err := br.ReadSlice('\n')
		if err != bufio.ErrBufferFull {
			return err
		}
	}
}
