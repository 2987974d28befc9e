package cleaner

import (
	"context"
)

// File is the mutable unit of work flowing through the stage pipeline. Stages
// that move the file on disk update Path so later stages see the new location.
type File struct {
	Path string
}

// Stage is a single optional transform in the cleaning pipeline. Stages are
// composed into an ordered list rather than layered through embedding, so
// "advanced" or "hybrid" behaviour is just a different stage selection.
type Stage interface {
	// Name identifies the stage in logs and results
	Name() string

	// Applies reports whether this stage should run for the given file
	Applies(path string) bool

	// Transform applies the stage to the file. A non-empty operation string
	// describes what was done; an empty string means the stage skipped the
	// file without error.
	Transform(ctx context.Context, file *File) (string, error)
}
