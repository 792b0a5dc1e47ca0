package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"

	tinymce "github.com/goliatone/go-tinymce"
	"github.com/goliatone/go-tinymce/pkg/config"
)

const (
	formatJSON   = "json"
	formatScript = "script"
)

// settings holds environment defaults; flags override them.
type settings struct {
	Config     string `env:"TINYMCE_CONFIG"      envDefault:"config/tinymce.yml"`
	Profile    string `env:"TINYMCE_PROFILE"`
	Locale     string `env:"TINYMCE_LOCALE"`
	Format     string `env:"TINYMCE_FORMAT"      envDefault:"script"`
	LogLevel   string `env:"TINYMCE_LOG_LEVEL"   envDefault:"info"`
	LogColored bool   `env:"TINYMCE_LOG_COLORED" envDefault:"true"`
}

type app struct {
	stdout  io.Writer
	stderr  io.Writer
	environ map[string]string
	driver  promptDriver
}

func main() {
	a := app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		driver: surveyDriver{},
	}
	os.Exit(a.run(context.Background(), os.Args[1:]))
}

func (a app) run(ctx context.Context, args []string) int {
	cfg, err := a.settings()
	if err != nil {
		fmt.Fprintf(a.stderr, "tinymce-config: read environment: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("tinymce-config", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(fs.Output(), "\nPrint the TinyMCE init options for a configuration profile.\n\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Config, "config", cfg.Config, "configuration document (YAML or JSON)")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "profile name (default profile if empty)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale used to pick the language pack")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: json or script")
	interactive := fs.Bool("interactive", false, "prompt for profile and locale")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format != formatJSON && format != formatScript {
		fmt.Fprintf(a.stderr, "tinymce-config: unknown format %q\n", cfg.Format)
		return 2
	}

	logger := newLogger(a.stderr, cfg.LogLevel, cfg.LogColored)

	loaded, err := tinymce.Load(cfg.Config, config.WithLogger(logger))
	if err != nil {
		logger.Error("load configuration", slog.String("path", cfg.Config), slog.Any("error", err))
		return 1
	}

	if *interactive {
		if err := a.prompt(ctx, loaded, &cfg); err != nil {
			if errors.Is(err, errAborted) {
				return 130
			}
			logger.Error("interactive selection", slog.Any("error", err))
			return 1
		}
	}

	pipeline := tinymce.NewPipeline(loaded, tinymce.WithPipelineLogger(logger))
	req := tinymce.Request{Profile: cfg.Profile, Locale: cfg.Locale}

	output, err := render(pipeline, req, format)
	if err != nil {
		logger.Error("resolve options", slog.String("profile", cfg.Profile), slog.Any("error", err))
		return 1
	}
	fmt.Fprintln(a.stdout, output)
	return 0
}

func (a app) settings() (settings, error) {
	var cfg settings
	opts := env.Options{}
	if a.environ != nil {
		opts.Environment = a.environ
	}
	err := env.ParseWithOptions(&cfg, opts)
	return cfg, err
}

func (a app) prompt(ctx context.Context, loaded tinymce.Loaded, cfg *settings) error {
	profiles := []string{config.DefaultProfile}
	if multi, ok := loaded.(*tinymce.MultipleConfiguration); ok {
		profiles = multi.Names()
	}
	profile, err := a.driver.Select(ctx, selectConfig{
		Message:  "Profile",
		Options:  profiles,
		Default:  firstNonEmpty(cfg.Profile, config.DefaultProfile),
		PageSize: 10,
	})
	if err != nil {
		return err
	}
	cfg.Profile = profile

	codes, err := tinymce.AvailableLanguages()
	if err != nil {
		return fmt.Errorf("list languages: %w", err)
	}
	locale, err := a.driver.Select(ctx, selectConfig{
		Message:  "Language",
		Options:  codes,
		Default:  firstNonEmpty(cfg.Locale, "en"),
		Help:     "Language pack passed to tinyMCE.init",
		PageSize: 10,
	})
	if err != nil {
		return err
	}
	cfg.Locale = locale
	return nil
}

func render(pipeline *tinymce.Pipeline, req tinymce.Request, format string) (string, error) {
	if format == formatScript {
		return pipeline.Script(req)
	}
	encoded, err := pipeline.Resolve(req)
	if err != nil {
		return "", err
	}
	payload, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func newLogger(w io.Writer, level string, colored bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
		NoColor:    !colored,
	}))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
