// Package pipeline runs the validate → layout → render pipeline for csvgrid.
//
// The CLI, the interactive editor and the HTTP server all go through this
// package, so every host validates, lays out and renders identically.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Build: validate the raw input and lay it out into a [render.Model]
//  2. Render: turn the model into one or more output formats
//
// A rejected input is not a pipeline error. It produces a [render.Error]
// model, which every format except CSV knows how to display.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Values:  "a,b,c,d,e",
//	    Columns: "2",
//	    Formats: []string{pipeline.FormatText},
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Artifacts[pipeline.FormatText])
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/grid"
	"github.com/matzehuels/csvgrid/pkg/render"
	"github.com/matzehuels/csvgrid/pkg/render/sink"
)

// Format constants for output formats.
const (
	FormatText     = "text"
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "md"
	FormatDOT      = "dot"
	FormatSVG      = "svg"
	FormatPNG      = "png"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatText

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText:     true,
	FormatHTML:     true,
	FormatJSON:     true,
	FormatCSV:      true,
	FormatMarkdown: true,
	FormatDOT:      true,
	FormatSVG:      true,
	FormatPNG:      true,
}

// contentTypes maps formats to their MIME types.
var contentTypes = map[string]string{
	FormatText:     "text/plain; charset=utf-8",
	FormatHTML:     "text/html; charset=utf-8",
	FormatJSON:     "application/json",
	FormatCSV:      "text/csv; charset=utf-8",
	FormatMarkdown: "text/markdown; charset=utf-8",
	FormatDOT:      "text/vnd.graphviz; charset=utf-8",
	FormatSVG:      "image/svg+xml",
	FormatPNG:      "image/png",
}

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input
	Values  string    `json:"values"`
	Columns string    `json:"columns"` // unparsed column count, as typed by the user
	Fill    grid.Fill `json:"fill,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Border  string   `json:"border,omitempty"`
	Color   bool     `json:"color,omitempty"`

	// Refresh bypasses cached artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for one call (not serialized).
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Model is the validated and laid-out input.
	Model render.Model

	// InputKey identifies the input for caching and API responses.
	InputKey string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Accepted reports whether the input produced a table.
func (r *Result) Accepted() bool {
	_, ok := r.Model.(render.Table)
	return ok
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Values     int
	Rows       int
	Columns    int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether every cacheable artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, html, json, csv, md, dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBorder checks that a border style is valid.
func ValidateBorder(border string) error {
	_, err := sink.ParseBorder(border)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in unset render options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Border == "" {
		o.Border = string(sink.DefaultBorder)
	}
}

// ValidateAndSetDefaults applies defaults and checks the render options.
// The input itself is never an error here; it is judged by the validator.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateBorder(o.Border)
}
