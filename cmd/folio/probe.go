package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/btmxh/folio/internal/config"
	"github.com/btmxh/folio/internal/db"
	"github.com/btmxh/folio/internal/errs"
	"github.com/btmxh/folio/internal/media"
	"github.com/btmxh/folio/internal/services"
	"github.com/spf13/cobra"
)

var probeConcurrency int
var probeTimeout time.Duration
var probeVerbose bool
var probeStored bool

var noImagesError = errors.New("no image URLs given, pass some or use --stored")
var loadStoredError = errors.New("unable to load stored images")

func init() {
	probeCmd.Flags().IntVarP(&probeConcurrency, "concurrency", "c", config.DefaultProbeConcurrency, "number of images probed at once")
	probeCmd.Flags().DurationVarP(&probeTimeout, "timeout", "t", config.DefaultProbeTimeout, "timeout of each request")
	probeCmd.Flags().BoolVarP(&probeVerbose, "verbose", "v", false, "log every attempt")
	probeCmd.Flags().BoolVar(&probeStored, "stored", false, "also probe every image of the stored portfolio (needs DATABASE_URL)")
	rootCmd.AddCommand(probeCmd)
}

// storedImages reads the image URLs of the portfolio in the database.
func storedImages(ctx context.Context) ([]string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, config.MissingDatabaseURLError
	}

	if err = db.InitDB(cfg.DatabaseURL); err != nil {
		return nil, err
	}
	defer db.CloseDB()

	handler := errs.NewLogErrorHandler("loading stored images", nil)
	tx := db.BeginTx(ctx, handler)
	if tx == nil {
		return nil, loadStoredError
	}
	defer tx.Rollback()

	portfolio, hasErr := services.LoadPortfolio(tx, false)
	if hasErr {
		return nil, loadStoredError
	}

	var urls []string
	for _, ref := range portfolio.Images() {
		slog.Debug("Found stored image", "source", ref.Source, "url", ref.URL)
		urls = append(urls, ref.URL)
	}
	return urls, nil
}

var probeCmd = &cobra.Command{
	Use:   "probe [url]...",
	Short: "Checks which candidate of each image link actually loads",
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if probeVerbose {
			level = slog.LevelDebug
		}
		setupLogging(level)

		urls := args
		if probeStored {
			stored, err := storedImages(cmd.Context())
			if err != nil {
				return err
			}
			urls = append(urls, stored...)
		}

		if len(urls) == 0 {
			return noImagesError
		}

		prober := media.NewProber(media.NewHTTPChecker(nil), probeTimeout)
		results := prober.ProbeAll(cmd.Context(), urls, probeConcurrency)

		out := cmd.OutOrStdout()
		failed := 0
		for _, result := range results {
			if result.Loaded != "" {
				fmt.Fprintf(out, "ok\t%s\t%s (attempt %d)\n", result.URL, result.Loaded, len(result.Attempts))
				continue
			}

			failed++
			fmt.Fprintf(out, "failed\t%s\t%s after %d attempts: %v\n", result.URL, result.State, len(result.Attempts), result.Err)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d images failed to load", failed, len(results))
		}
		return nil
	},
}
