package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/utsurius/actionable-messages/internal/logctx"
	"github.com/utsurius/actionable-messages/settings"
)

// app carries the state shared by the subcommands.
type app struct {
	configPath string
	envFiles   []string
	logLevel   string

	settings settings.Settings
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "cardgen",
		Short:        "Render and serve actionable message cards",
		Long:         "cardgen renders the bundled Adaptive Card, MessageCard and Teams samples and serves them over HTTP.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML settings file")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, ".env files to seed the environment from (default ./.env)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(
		newListCmd(a),
		newRenderCmd(a),
		newSchemaCmd(),
		newServeCmd(a),
	)
	return root
}

func (a *app) load(stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q", a.logLevel)
	}
	a.log = slog.New(logctx.Handler{Handler: slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level})})

	s, err := settings.Load(a.configPath, a.envFiles...)
	if err != nil {
		return err
	}
	a.settings = s
	return nil
}
