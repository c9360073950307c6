package pipeline

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/csvgrid/pkg/cache"
	"github.com/matzehuels/csvgrid/pkg/grid"
	"github.com/matzehuels/csvgrid/pkg/observability"
	"github.com/matzehuels/csvgrid/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// The CLI, the editor and the server all use it.
//
// The Runner is stateless except for the cache - it doesn't store pipeline
// results, and per-call loggers travel in Options. Multiple goroutines can
// safely use the same Runner; identical concurrent requests share one
// execution.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long rendered artifacts stay cached.
	TTL time.Duration

	group singleflight.Group
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// Cache traffic is reported to the observability cache hooks.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	c = cache.Instrumented(c, "artifact")
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Execute runs the complete validate → layout → render pipeline.
//
// Concurrent calls with the same input and render options are coalesced.
// Each caller receives its own Result with its own Artifacts map.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	// The flight outlives any single caller, so one client going away must
	// not cancel the render the others are waiting on.
	flightCtx := context.WithoutCancel(ctx)
	key := r.flightKey(opts)
	v, err, shared := r.group.Do(key, func() (any, error) {
		return r.execute(flightCtx, opts)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		opts.Logger.Debug("coalesced pipeline run", "key", key)
	}

	res := *v.(*Result)
	res.Artifacts = maps.Clone(res.Artifacts)
	return &res, nil
}

func (r *Runner) execute(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{
		InputKey: r.inputKey(opts),
	}

	// Stage 1: Validate and lay out
	buildStart := time.Now()
	result.Model = r.Build(ctx, opts)
	result.Stats.BuildTime = time.Since(buildStart)
	if t, ok := result.Model.(render.Table); ok {
		result.Stats.Values = t.Grid.Len()
		result.Stats.Rows = t.Grid.Rows()
		result.Stats.Columns = t.Columns
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.Render(ctx, result.Model, result.InputKey, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build validates the input and lays it out. A rejected input yields a
// [render.Error] model; Build itself never fails.
func (r *Runner) Build(ctx context.Context, opts Options) render.Model {
	r.applyLogger(&opts)
	hooks := observability.Pipeline()

	outcome := grid.Evaluate(opts.Values, opts.Columns)
	switch o := outcome.(type) {
	case grid.Accepted:
		hooks.OnValidate(ctx, true, len(o.Values))
		opts.Logger.Debug("input accepted", "values", len(o.Values), "columns", o.Columns)
	case grid.Rejected:
		hooks.OnValidate(ctx, false, 0)
		opts.Logger.Debug("input rejected", "reason", o.Reason)
	}

	start := time.Now()
	m := render.Build(outcome, grid.WithFill(opts.Fill))
	if t, ok := m.(render.Table); ok {
		hooks.OnLayout(ctx, t.Grid.Rows(), t.Columns, time.Since(start))
	}
	return m
}

// Render renders a model in every requested format, reading and writing the
// cache for formats that are expensive to produce. The returned bool is true
// when every cacheable artifact was served from the cache.
func (r *Runner) Render(ctx context.Context, m render.Model, inputKey string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true
	anyCacheable := false

	for _, format := range opts.Formats {
		if !cacheable[format] {
			data, err := RenderFormat(ctx, m, format, opts)
			if err != nil {
				err = fmt.Errorf("render %s: %w", format, err)
				hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
				return nil, false, err
			}
			artifacts[format] = data
			continue
		}

		anyCacheable = true
		key := r.Keyer.ArtifactKey(inputKey, cache.ArtifactKeyOpts{
			Format: format,
			Border: opts.Border,
			Color:  opts.Color,
		})
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
				continue
			} else if err != nil {
				opts.Logger.Debug("cache read failed", "key", key, "error", err)
			}
		}

		allHit = false
		data, err := RenderFormat(ctx, m, format, opts)
		if err != nil {
			err = fmt.Errorf("render %s: %w", format, err)
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		artifacts[format] = data
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			opts.Logger.Debug("cache write failed", "key", key, "error", err)
		}
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, anyCacheable && allHit, nil
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache == nil {
		return nil
	}
	return r.Cache.Close()
}

func (r *Runner) inputKey(opts Options) string {
	return r.Keyer.InputKey(opts.Values, strings.TrimSpace(opts.Columns), opts.Fill.String())
}

func (r *Runner) flightKey(opts Options) string {
	return strings.Join([]string{
		r.inputKey(opts),
		strings.Join(opts.Formats, "+"),
		opts.Border,
		fmt.Sprint(opts.Color),
		fmt.Sprint(opts.Refresh),
	}, "|")
}

// applyLogger gives opts the runner's logger unless the caller set one.
// The runner itself is never modified.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
