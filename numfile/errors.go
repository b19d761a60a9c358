package numfile

import "errors"

var (
	// ErrNotLoadable flags files which cannot serve as a number file, e.g.
	// directories or device files.
	ErrNotLoadable = errors.New("numfile: file is not loadable")
)
