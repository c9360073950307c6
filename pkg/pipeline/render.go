package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/render"
	"github.com/matzehuels/csvgrid/pkg/render/sink"
)

// cacheable lists formats worth caching. The others are cheap string
// building, and terminal output also depends on the caller's color profile.
var cacheable = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// Render generates output artifacts for the model in the requested formats.
func Render(ctx context.Context, m render.Model, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(ctx, m, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat renders a single format.
func RenderFormat(ctx context.Context, m render.Model, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatText:
		border, err := sink.ParseBorder(opts.Border)
		if err != nil {
			return nil, err
		}
		return sink.RenderText(m, sink.WithBorder(border), sink.WithColor(opts.Color)), nil
	case FormatHTML:
		return sink.RenderHTML(m), nil
	case FormatJSON:
		return sink.RenderJSON(m)
	case FormatCSV:
		return sink.RenderCSV(m)
	case FormatMarkdown:
		return sink.RenderMarkdown(m), nil
	case FormatDOT:
		return []byte(sink.ToDOT(m)), nil
	case FormatSVG:
		return sink.RenderSVG(ctx, m)
	case FormatPNG:
		return sink.RenderPNG(ctx, m)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}
