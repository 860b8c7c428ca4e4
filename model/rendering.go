package model

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws generations as block glyphs, one frame per write
type TerminalRenderer struct {
	out  io.Writer
	pool *FramePool
}

// NewTerminalRenderer returns a renderer writing to out. A nil pool
// allocates a fresh buffer per frame.
func NewTerminalRenderer(out io.Writer, pool *FramePool) *TerminalRenderer {
	return &TerminalRenderer{out: out, pool: pool}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(v View) error {
	buf := r.buffer()
	defer r.release(buf)

	for i := range v.Rows() {
		for j := range v.Cols() {
			if v.Alive(i, j) {
				buf.WriteString(gridPosBlock)
			} else {
				buf.WriteString(gridPosEmpty)
			}
		}
		buf.WriteByte('\n')
	}
	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, ansiClearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}

func (r *TerminalRenderer) buffer() *bytes.Buffer {
	if r.pool == nil {
		return new(bytes.Buffer)
	}
	return r.pool.Get()
}

func (r *TerminalRenderer) release(buf *bytes.Buffer) {
	if r.pool != nil {
		r.pool.Put(buf)
	}
}
