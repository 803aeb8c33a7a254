package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "TXTAR"

// config holds settings resolved from flags, environment, and defaults.
type config struct {
	Dir       string
	LogLevel  slog.Level
	Exclusive bool
	Comment   string
}

// loadConfig resolves the configuration for cmd. Flags win over TXTAR_*
// environment variables, which win over defaults.
func loadConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("dir", ".")
	v.SetDefault("log-level", "info")
	v.SetDefault("exclusive", false)
	v.SetDefault("comment", "")

	for _, name := range []string{"dir", "log-level", "exclusive", "comment"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", v.GetString("log-level"), err)
	}

	return &config{
		Dir:       v.GetString("dir"),
		LogLevel:  level,
		Exclusive: v.GetBool("exclusive"),
		Comment:   v.GetString("comment"),
	}, nil
}

// newLogger returns a colorized logger writing to w.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
