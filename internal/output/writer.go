// Package output handles CLI output formatting for search results.
package output

import (
	"fmt"
	"io"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer serializes result batches.
type Writer interface {
	// Write buffers a single result.
	Write(data any) error

	// WriteAll buffers multiple results.
	WriteAll(data []any) error

	// Flush ensures all data is written.
	Flush() error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, pretty bool) (Writer, error) {
	switch format {
	case FormatJSON:
		return &jsonWriter{w: w, pretty: pretty}, nil
	case FormatJSONL:
		return &jsonlWriter{w: w}, nil
	case FormatYAML:
		return &yamlWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Results converts a typed result slice into the []any a Writer takes.
func Results[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
