package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/csvgrid/pkg/cache"
	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/pipeline"
	"github.com/matzehuels/csvgrid/pkg/server"
)

// redisKeyPrefix scopes csvgrid's keys in a shared Redis.
const redisKeyPrefix = "csvgrid:"

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the grid form page and JSON API over HTTP",
		Long: `Serve starts an HTTP server with a form page at / that redraws the grid as
you type, a JSON API at /api/grid and every output format at /render/{format}.

Rendered images are cached in Redis when --redis is given, otherwise in the
local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := c.Config.Server
			if !cmd.Flags().Changed("addr") {
				addr = srv.Addr
			}
			if !cmd.Flags().Changed("redis") {
				redisAddr = srv.RedisAddr
			}
			if err := errors.ValidateListenAddr(addr); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), addr, redisAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the shared artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisAddr string) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newServeRunner(ctx, redisAddr)
	if err != nil {
		return err
	}
	defer runner.Close()
	if ttl := c.Config.Server.CacheTTL.Duration; ttl > 0 {
		runner.TTL = ttl
	}

	d := c.Config.Defaults
	s := server.New(runner, server.Config{
		Addr:    addr,
		Columns: d.ColumnsText(),
		Fill:    d.Fill,
		Border:  d.Border,
	}, logger)

	printInfo("Serving on %s", StyleLink.Render(displayURL(addr)))
	printDetail("Press Ctrl+C to stop")
	return s.Run(ctx)
}

// newServeRunner picks the server's cache: Redis when configured, then the
// file cache, then none.
func (c *CLI) newServeRunner(ctx context.Context, redisAddr string) (*pipeline.Runner, error) {
	if redisAddr == "" || c.noCache {
		return c.newRunner()
	}

	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect to redis at %s", redisAddr)
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), redisKeyPrefix)
	return pipeline.NewRunner(rc, keyer, c.Logger), nil
}

// displayURL turns a listen address into a clickable URL.
func displayURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
