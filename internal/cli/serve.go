package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/internal/server"
)

// serveCommand creates the serve command, which runs the HTTP front end.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		cacheTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web form and diagram API",
		Long: `Run the HTTP server.

Settings are read from the environment (and a .env file, if present):
  HEMICYCLE_ADDR           listen address (default :8080)
  HEMICYCLE_REDIS_URL      Redis URL for the diagram cache (disabled if empty)
  HEMICYCLE_CACHE_TTL      lifetime of cached diagrams (default 24h)
  HEMICYCLE_CACHE_PREFIX   Redis key prefix (default hemicycle:)

Flags override the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("redis-url") {
				cfg.RedisURL = redisURL
			}
			if flags.Changed("cache-ttl") {
				cfg.CacheTTL = cacheTTL
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.RedisURL == "" {
				printWarning("Diagram cache disabled (set %s to enable)", server.EnvRedisURL)
			}
			printInfo("Listening on %s", StyleLink.Render(cfg.Addr))
			return server.Run(cmd.Context(), cfg, c.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the diagram cache")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 0, "lifetime of cached diagrams")

	return cmd
}
