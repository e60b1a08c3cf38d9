package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldWorkingDir = "working_dir"

	// Run configuration fields.
	FieldPuzzle  = "puzzle"
	FieldPuzzles = "puzzles"
	FieldJobs    = "jobs"
	FieldFormat  = "format"
	FieldConfig  = "config"

	// Statistics fields.
	FieldSelected = "selected"
	FieldSolved   = "solved"
	FieldSkipped  = "skipped"
	FieldErrored  = "errored"
	FieldDuration = "duration"

	// Almanac fields.
	FieldSeeds       = "seeds"
	FieldStages      = "stages"
	FieldSource      = "source"
	FieldDestination = "destination"
	FieldMode        = "mode"
	FieldValue       = "value"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Puzzle metadata fields.
	FieldName    = "name"
	FieldTitle   = "title"
	FieldTags    = "tags"
	FieldEnabled = "enabled"
)
