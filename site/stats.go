package site

import (
	"go.uber.org/atomic"
)

type buildStats struct {
	pages    atomic.Uint64
	skipped  atomic.Uint64
	drafts   atomic.Uint64
	warnings atomic.Uint64
	files    atomic.Uint64
}

// Stats holds the counters of a build.
type Stats struct {
	// Pages read and converted.
	Pages uint64

	// Skipped counts unreadable files.
	Skipped uint64

	Drafts   uint64
	Warnings uint64

	// Files written to the publish dir.
	Files uint64
}

func (s *buildStats) snapshot() Stats {
	return Stats{
		Pages:    s.pages.Load(),
		Skipped:  s.skipped.Load(),
		Drafts:   s.drafts.Load(),
		Warnings: s.warnings.Load(),
		Files:    s.files.Load(),
	}
}
