package repository

import "folio/internal/models"

type LoadStatus int

const (
	StatusFound LoadStatus = iota
	StatusNotFound
	StatusMalformed
	// StatusSkipped marks a content file whose name is not a valid slug. It
	// is never served, only reported by Audit.
	StatusSkipped
)

func (s LoadStatus) String() string {
	switch s {
	case StatusFound:
		return "ok"
	case StatusNotFound:
		return "not found"
	case StatusMalformed:
		return "malformed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// LoadResult is the outcome of loading one content file. Post is set only
// when Status is StatusFound; Err only otherwise.
type LoadResult struct {
	Slug   string
	Status LoadStatus
	Post   *models.Post
	Err    error
}

// OK reports whether the post loaded.
func (r LoadResult) OK() bool {
	return r.Status == StatusFound
}
