// quiverctl loads a quiver definition file, optionally applies a mutation
// sequence, and prints the resulting exchange matrix (with shear rows when
// the file carries an embedding and laminations).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eunsung-lim/cluster-algebra/exchange"
	"github.com/eunsung-lim/cluster-algebra/mutation"
)

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "quiverctl").Logger()
	if !verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}

	return logger
}

func main() {
	var (
		configPath = flag.String("config", "", "quiver definition file (.toml, .yaml, or .yml)")
		mutateSeq  = flag.String("mutate", "", "comma-separated cluster vertex names to mutate at, in order")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	logger := initLogger(*verbose)
	if err := run(logger, *configPath, *mutateSeq); err != nil {
		logger.Error().Err(err).Msg("quiverctl failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger, configPath, mutateSeq string) error {
	if strings.TrimSpace(configPath) == "" {
		return fmt.Errorf("missing -config flag")
	}

	cfg, err := loadFileConfig(configPath)
	if err != nil {
		return err
	}
	q, err := buildQuiver(cfg)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("clusters", q.ClusterCount()).
		Int("frozen", q.FrozenCount()).
		Int("arcs", q.ArcCount()).
		Str("config", configPath).
		Msg("quiver loaded")

	for _, name := range splitSeq(mutateSeq) {
		q, err = mutation.Mutate(q, name,
			mutation.WithOnReverse(func(from, to string, weight int64) {
				logger.Debug().Str("at", name).
					Str("from", from).Str("to", to).Int64("weight", weight).
					Msg("arc reversed")
			}),
			mutation.WithOnAdjust(func(u, v string, prev, next int64) {
				logger.Debug().Str("at", name).
					Str("u", u).Str("v", v).Int64("prev", prev).Int64("next", next).
					Msg("arc adjusted")
			}),
		)
		if err != nil {
			return fmt.Errorf("mutate at %s: %w", name, err)
		}
	}

	var opts []exchange.Option
	if cfg.Embedding != nil && len(cfg.Laminations) > 0 {
		emb, eerr := buildEmbedding(cfg.Embedding)
		if eerr != nil {
			return eerr
		}
		rows, serr := shearRows(q, emb, cfg.Laminations)
		if serr != nil {
			return serr
		}
		opts = append(opts, exchange.WithShearRows(rows...))
		logger.Debug().Int("laminations", len(rows)).Msg("shear rows computed")
	}

	m, err := exchange.Build(q, opts...)
	if err != nil {
		return err
	}
	fmt.Print(m)

	return nil
}

// splitSeq parses the -mutate flag into a clean name list.
func splitSeq(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}

	return out
}
