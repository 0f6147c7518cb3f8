package services

import "errors"

// Every failure a screening request can hit maps onto one of these
// sentinels. Callers wrap them with fmt.Errorf("...: %w", ...) and the HTTP
// layer matches with errors.Is to pick a status code.
var (
	// ErrValidation means the request was missing required fields.
	ErrValidation = errors.New("validation error")

	// ErrExtraction means the uploaded document was empty, corrupt, or of
	// an unsupported type.
	ErrExtraction = errors.New("extraction error")

	// ErrUpstream means the AI service was unreachable, timed out, or
	// returned a failure.
	ErrUpstream = errors.New("upstream error")

	// ErrParse means the AI reply was not in the expected JSON shape.
	ErrParse = errors.New("parse error")
)
