package fsmeta

import "fmt"

// DirectoryOpenError indicates the listing target could not be opened or
// enumerated (missing, not a directory, permission denied). A listing that
// fails this way is never partial.
type DirectoryOpenError struct {
	Path string
	Err  error
}

func (e *DirectoryOpenError) Error() string {
	return fmt.Sprintf("cannot open directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryOpenError) Unwrap() error {
	return e.Err
}

// StatError indicates a single entry could not be stat'ed after enumeration
// began (removed in a race, permission edge case). The lister recovers by
// omitting the entry.
type StatError struct {
	Path string
	Err  error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("cannot stat %s: %v", e.Path, e.Err)
}

func (e *StatError) Unwrap() error {
	return e.Err
}
