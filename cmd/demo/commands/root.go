package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/demo/internal/app"
	"github.com/idilsaglam/demo/internal/ui"
)

var (
	appCtx *app.App

	usersURL string
	theme    string
	noColor  bool
	color    bool
	verbose  bool
)

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "demo",
		Short:         "Todo and user list demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("theme") {
				if env := os.Getenv("DEMO_THEME"); env != "" {
					theme = env
				}
			}
			if err := ui.SetTheme(theme); err != nil {
				return err
			}
			ui.SetColorForcing(color, noColor)

			log := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				log = l
			}

			cfg := app.ConfigFromEnv()
			if cmd.Flags().Changed("users-url") || cfg.UsersURL == "" {
				cfg.UsersURL = usersURL
			}
			cfg.Logger = log
			appCtx = app.New(cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&usersURL, "users-url", "", "users endpoint (default $DEMO_USERS_URL or jsonplaceholder)")
	root.PersistentFlags().StringVar(&theme, "theme", "classic", "output theme: classic|neon|mono (env DEMO_THEME)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&color, "color", false, "force colored output")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(todoCmd(), usersCmd())
	return root
}

// Execute runs the CLI and reports any error on stderr.
func Execute() error {
	if err := newRoot().Execute(); err != nil {
		ui.Fail(err.Error())
		return err
	}
	return nil
}
