package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Files       int // record files discovered
	Records     int // records loaded across all files
	Processed   int // records cross-referenced
	Skipped     int // records rejected by schema validation
	Failed      int // files that could not be loaded
	WithOverlap int // processed records with at least one overlap
	Overlaps    int // total overlap matches
}
