package gild

import "fmt"

// MismatchError reports a verification failure for one registered path. The
// diff itself has already been printed by the time this error is returned.
type MismatchError struct {
	Path  string // relative path whose content diverged
	Count int    // difference regions found in the failing window
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("found at least %d difference(s) in %s; set UPDATE_GOLDEN=1 to update golden files", e.Count, e.Path)
}
