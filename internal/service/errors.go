package service

import "errors"

// Sentinel errors for the request-time failure kinds. Handlers match on
// these with errors.Is to pick an HTTP status; none of them are fatal to
// the process.
var (
	// ErrEmptyContent is returned when the deck text is empty or blank.
	ErrEmptyContent = errors.New("pitch deck content is empty")

	// ErrMissingAPIKey is returned when neither the request nor the
	// process configuration provides an LLM credential.
	ErrMissingAPIKey = errors.New("OpenAI API key required: provide in request or set OPENAI_API_KEY environment variable")

	// ErrUnsupportedFormat is returned for files that are not PDF or PPTX.
	ErrUnsupportedFormat = errors.New("unsupported file format: only PDF and PPTX are supported")

	// ErrNoTextExtracted is returned when a document yields no readable text.
	ErrNoTextExtracted = errors.New("no text could be extracted from document")

	// ErrCompletionFailed wraps failures of the remote completion call.
	ErrCompletionFailed = errors.New("LLM completion failed")

	// ErrMalformedEvaluation is returned when the judge response cannot be
	// parsed into the expected score fields.
	ErrMalformedEvaluation = errors.New("evaluation response is malformed")
)
