package duckgo

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Search backends for text search. BackendAuto tries html and lite in
// random order, falling through on failure.
const (
	BackendAuto = "auto"
	BackendHTML = "html"
	BackendLite = "lite"
)

// TextOptions controls a text search. The zero value searches the
// wt-wt region with moderate safesearch on the auto backend and returns
// only the first response page.
type TextOptions struct {
	// Region is a provider region code such as "wt-wt", "us-en", "uk-en".
	Region string

	// SafeSearch is one of "on", "moderate", "off".
	SafeSearch string `validate:"omitempty,oneof=on moderate off"`

	// TimeLimit restricts result age: d, w, m or y.
	TimeLimit string `validate:"omitempty,oneof=d w m y"`

	// Backend selects the rendering endpoint. "api" and "ecosia" are
	// deprecated and treated as "auto".
	Backend string `validate:"omitempty,oneof=auto html lite api ecosia"`

	// MaxResults caps the collected results. Zero returns only the
	// first response page.
	MaxResults int `validate:"min=0"`
}

// ImageOptions controls an image search.
type ImageOptions struct {
	Region     string
	SafeSearch string `validate:"omitempty,oneof=on moderate off"`

	// TimeLimit is one of Day, Week, Month, Year.
	TimeLimit string `validate:"omitempty,oneof=Day Week Month Year"`

	// Filters as the provider spells them, e.g. Size "Large",
	// Color "Monochrome", Type "photo", Layout "Wide", License "any".
	Size    string
	Color   string
	Type    string
	Layout  string
	License string

	MaxResults int `validate:"min=0"`
}

// VideoOptions controls a video search.
type VideoOptions struct {
	Region     string
	SafeSearch string `validate:"omitempty,oneof=on moderate off"`
	TimeLimit  string `validate:"omitempty,oneof=d w m"`

	// Resolution is "high" or "standard".
	Resolution string `validate:"omitempty,oneof=high standard"`

	// Duration is "short", "medium" or "long".
	Duration string `validate:"omitempty,oneof=short medium long"`

	// License is "creativeCommon" or "youtube".
	License string `validate:"omitempty,oneof=creativeCommon youtube"`

	MaxResults int `validate:"min=0"`
}

// NewsOptions controls a news search.
type NewsOptions struct {
	Region     string
	SafeSearch string `validate:"omitempty,oneof=on moderate off"`
	TimeLimit  string `validate:"omitempty,oneof=d w m"`
	MaxResults int    `validate:"min=0"`
}

// checkParams validates an options struct and wraps failures in
// ErrInvalidParams.
func checkParams(opts any) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// orDefault returns s, or def when s is empty.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
