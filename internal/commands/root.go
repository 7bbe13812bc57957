package commands

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/moasq/painless/internal/config"
	"github.com/moasq/painless/prompt"
	"github.com/moasq/painless/terminal"
)

// Version is set at build time.
var Version = "0.1.0"

var errNotTerminal = errors.New("stdin is not a terminal")

var rootCmd = &cobra.Command{
	Use:           "painless",
	Short:         "Interactive in-place terminal prompts",
	Long:          "Painless asks for typed values, arrays, a single choice or a set of choices, redrawing the current line in place.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Theme file (YAML); defaults to $"+config.ThemeEnv+" or the user config dir")
	rootCmd.PersistentFlags().StringVar(&traceFlag, "trace", "", "Append key events to this file")

	rootCmd.AddCommand(inputCmd)
	rootCmd.AddCommand(arrayCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(multiSelectCmd)
	rootCmd.AddCommand(demoCmd)
}

var (
	themeFlag string
	traceFlag string
)

// openTerminal returns the terminal prompts draw on and a function releasing it.
var openTerminal = func() (terminal.Terminal, func() error, error) {
	tty := terminal.Stdio()
	if !tty.IsTerminal() {
		return nil, nil, errNotTerminal
	}
	return tty, tty.Close, nil
}

// newPrompter loads the theme, opens the terminal and, with --trace, the
// trace file. The returned function releases both.
func newPrompter() (*prompt.Prompter, func() error, error) {
	cfg, err := config.Load(themeFlag)
	if err != nil {
		return nil, nil, err
	}

	t, closeTerm, err := openTerminal()
	if err != nil {
		return nil, nil, err
	}

	opts := []prompt.Option{prompt.WithTheme(cfg.Theme)}
	closeAll := closeTerm
	if traceFlag != "" {
		f, err := os.OpenFile(traceFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			err = multierror.Append(fmt.Errorf("failed to open trace file: %w", err), closeTerm()).ErrorOrNil()
			return nil, nil, err
		}
		logger := log.New(f, "painless ", log.LstdFlags|log.Lmicroseconds)
		if cfg.ThemePath != "" {
			logger.Printf("theme %s", cfg.ThemePath)
		}
		opts = append(opts, prompt.WithTrace(logger))
		closeAll = func() error {
			return multierror.Append(closeTerm(), f.Close()).ErrorOrNil()
		}
	}

	return prompt.New(t, opts...), closeAll, nil
}

// withPrompter runs fn with a fresh Prompter and releases the terminal after.
func withPrompter(fn func(p *prompt.Prompter) error) (err error) {
	p, release, err := newPrompter()
	if err != nil {
		return err
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn(p)
}
