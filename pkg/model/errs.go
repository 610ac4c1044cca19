package model

import "github.com/m-mizutani/goerr/v2"

// Error taxonomy for the pipeline. Transform errors (field, shape, key)
// abort the run; collaborator errors (provider, storage) are caught at
// the boundary and surfaced as structured errors.
var (
	// ErrMissingField indicates a required key was absent in a raw record.
	ErrMissingField = goerr.New("missing required field")

	// ErrShapeMismatch indicates a habit column whose length does not
	// match the shared date axis.
	ErrShapeMismatch = goerr.New("habit column does not match date axis")

	// ErrMissingKey indicates a day record was referenced before creation.
	ErrMissingKey = goerr.New("day record not found")

	// ErrParse indicates malformed or unusable input payload.
	ErrParse = goerr.New("malformed payload")

	// ErrProvider indicates a summarization provider failure.
	ErrProvider = goerr.New("summarization provider failed")

	// ErrStorage indicates a tracker upsert/list failure.
	ErrStorage = goerr.New("tracker request failed")
)
