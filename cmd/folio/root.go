package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "folio",
	Short:         "folio serves a personal portfolio and resolves its media links",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func setupLogging(level slog.Level) {
	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(logHandler))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
