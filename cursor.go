package gild

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// chunkOp describes how a run of bytes relates to the other side of a
// comparison.
type chunkOp uint8

const (
	opEqual chunkOp = iota
	opDelete
	opInsert
)

var (
	deletedText  = color.New(color.FgRed)
	insertedText = color.New(color.FgGreen)
)

// cursor walks one side of a comparison window, tracking the byte offset of
// the next unconsumed byte and the offset where the current line begins. The
// diff chunks it consumes do not respect line boundaries, so when a
// difference forces a print mid-line the cursor first back-prints the
// unprinted prefix of that line to give full-line context.
type cursor struct {
	src      string
	idx      int  // next unconsumed byte
	line     int  // first byte of the current line
	printing bool // the current line has already started printing
}

func newCursor(src string) *cursor {
	return &cursor{src: src}
}

// advance consumes the next n bytes of the cursor's source. op says how those
// bytes relate to the other side; echoEqual controls whether equal runs on
// this side are echoed to w (only one side of an equal pair echoes, so shared
// context is printed once).
func (c *cursor) advance(w io.Writer, n int, op chunkOp, echoEqual bool) {
	if op != opEqual {
		// Print from the beginning of the current line if we haven't already.
		if !c.printing && echoEqual {
			fmt.Fprint(w, c.src[c.line:c.idx])
		}
		c.printing = true
		s := c.src[c.idx : c.idx+n]
		if op == opDelete {
			deletedText.Fprint(w, s)
		} else {
			insertedText.Fprint(w, s)
		}
	}
	firstNewline := n
	for i := 0; i < n; i++ {
		if c.src[c.idx+i] == '\n' {
			if firstNewline == n {
				firstNewline = i
			}
			c.line = c.idx + i + 1
		}
	}
	// Print the rest of the line if an earlier chunk started it.
	if op == opEqual && c.printing && echoEqual {
		end := c.idx + n
		if firstNewline != n {
			c.printing = false
			end = c.idx + firstNewline + 1
		}
		fmt.Fprint(w, c.src[c.idx:end])
	}
	c.idx += n
}
