package domain

import "fmt"

// ValidationError reports a profile field outside its allowed range. It is
// raised at profile construction, never mid-pipeline.
type ValidationError struct {
	Field string
	Bound string
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: field %q violates %s (got %v)", e.Field, e.Bound, e.Value)
}

// DataIntegrityError reports a malformed catalog record. Scoring a record
// with missing fields would silently corrupt results, so the pipeline
// fails fast instead.
type DataIntegrityError struct {
	RecordID string
	Field    string
	Reason   string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("catalog record %s: field %q %s", e.RecordID, e.Field, e.Reason)
}
