package model

import (
	"fmt"
	"io"

	"github.com/gosuri/uilive"
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	glyphAlive      = 'x'
	glyphHorizontal = '='
	glyphVertical   = '|'
	glyphEmpty      = ' '

	// farewellIndent matches three tab stops
	farewellIndent = 24
)

// Glyph returns the character a cell is drawn with
func Glyph(c Cell) rune {
	switch c {
	case Alive:
		return glyphAlive
	case BorderHorizontal:
		return glyphHorizontal
	case BorderVertical:
		return glyphVertical
	}
	return glyphEmpty
}

// Renderer draws frames of the simulation
type Renderer interface {
	// Display draws one frame
	Display(g *Grid) error
	// Farewell draws the final frame with a closing message below it
	Farewell(g *Grid, message string) error
	Close()
}

// TerminalRenderer draws full-screen frames on the controlling terminal
type TerminalRenderer struct{}

// NewTerminalRenderer takes over the controlling terminal.
// It fails when no terminal device can be opened.
func NewTerminalRenderer() (*TerminalRenderer, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTerminalRenderer] failed to open the terminal")
	}
	termbox.HideCursor()
	return &TerminalRenderer{}, nil
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) error {
	if err := r.draw(g); err != nil {
		return err
	}
	return errors.Wrap(termbox.Flush(), "[Display] failed to flush frame")
}

// Farewell renders the grid and the closing message on the row below it
func (r *TerminalRenderer) Farewell(g *Grid, message string) error {
	if err := r.draw(g); err != nil {
		return err
	}
	for i, ch := range []rune(message) {
		termbox.SetCell(farewellIndent+i, Height, ch, termbox.ColorDefault, termbox.ColorDefault)
	}
	return errors.Wrap(termbox.Flush(), "[Farewell] failed to flush frame")
}

func (r *TerminalRenderer) draw(g *Grid) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return errors.Wrap(err, "[draw] failed to clear terminal")
	}
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			termbox.SetCell(col, row, Glyph(g.cells[row][col]), termbox.ColorWhite, termbox.ColorDefault)
		}
	}
	return nil
}

// Close gives the terminal back
func (r *TerminalRenderer) Close() {
	termbox.Close()
}

// PlainRenderer redraws frames in place on a plain output stream.
// It is used when no terminal can be taken over.
type PlainRenderer struct {
	writer *uilive.Writer
}

// NewPlainRenderer creates a renderer writing to out
func NewPlainRenderer(out io.Writer) *PlainRenderer {
	w := uilive.New()
	w.Out = out
	return &PlainRenderer{writer: w}
}

// Display redraws the grid over the previous frame
func (r *PlainRenderer) Display(g *Grid) error {
	if _, err := fmt.Fprint(r.writer, g.String()); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return errors.Wrap(r.writer.Flush(), "[Display] failed to flush frame")
}

// Farewell redraws the grid followed by the closing message
func (r *PlainRenderer) Farewell(g *Grid, message string) error {
	if _, err := fmt.Fprintf(r.writer, "%s%*s%s\n", g.String(), farewellIndent, "", message); err != nil {
		return errors.Wrap(err, "[Farewell] failed to write frame")
	}
	return errors.Wrap(r.writer.Flush(), "[Farewell] failed to flush frame")
}

// Close is a no-op, the output stream stays owned by the caller
func (r *PlainRenderer) Close() {}
