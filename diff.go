package gild

import (
	"fmt"
	"io"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// compare diffs old against new and renders the differences to w. Equal runs
// are echoed once (by the old side), deletions are printed in red, insertions
// in green, and the cursors reconstruct line boundaries so each touched line
// shows full-line context. The return value is the number of difference
// regions: maximal runs of consecutive non-equal chunks, so a deletion
// immediately followed by the insertion that replaces it counts once. A
// trailing newline separates a nonzero diff from subsequent output.
func compare(w io.Writer, old, new string) int {
	dmp := diffmatchpatch.New()
	chunks := dmp.DiffCleanupSemantic(dmp.DiffMain(old, new, false))

	oldCur := newCursor(old)
	newCur := newCursor(new)
	count := 0
	inRegion := false
	for _, chunk := range chunks {
		n := len(chunk.Text)
		switch chunk.Type {
		case diffmatchpatch.DiffEqual:
			oldCur.advance(w, n, opEqual, true)
			newCur.advance(w, n, opEqual, false) // don't double print shared context
			inRegion = false
		case diffmatchpatch.DiffDelete:
			oldCur.advance(w, n, opDelete, true)
			if !inRegion {
				inRegion = true
				count++
			}
		case diffmatchpatch.DiffInsert:
			newCur.advance(w, n, opInsert, false)
			if !inRegion {
				inRegion = true
				count++
			}
		}
	}
	if count != 0 {
		fmt.Fprintln(w)
	}
	return count
}
