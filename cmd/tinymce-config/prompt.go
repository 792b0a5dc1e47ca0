package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// errAborted signals the user aborted a prompt (e.g., Ctrl+C).
var errAborted = errors.New("tinymce-config: aborted")

type selectConfig struct {
	Message  string
	Options  []string
	Default  string
	Help     string
	PageSize int
}

// promptDriver keeps the interactive flow testable without a terminal.
type promptDriver interface {
	Select(ctx context.Context, cfg selectConfig) (string, error)
}

type surveyDriver struct{}

func (surveyDriver) Select(ctx context.Context, cfg selectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(cfg.Options) == 0 {
		return cfg.Default, nil
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if indexOf(cfg.Options, cfg.Default) >= 0 {
		prompt.Default = cfg.Default
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
