package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/demo/internal/cli"
	"github.com/idilsaglam/demo/internal/tui"
	"github.com/idilsaglam/demo/internal/ui"
)

func usersCmd() *cobra.Command {
	var (
		plain   bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Fetch and show the remote user list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if !plain {
				return tui.RunUsers(ctx, appCtx.Users)
			}

			wctx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				wctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			f := appCtx.Users.GetAllUsers(ctx)
			if err := f.Wait(wctx); err != nil {
				f.Cancel()
				ui.Hint("the user list was left as it was; retry or check --users-url")
				return fmt.Errorf("fetch users: %w", err)
			}
			cli.WriteUsers(cmd.OutOrStdout(), appCtx.Users.Users())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&plain, "plain", "p", false, "wait for the fetch and print instead of the interactive view")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up waiting after this long (0 waits forever)")
	return cmd
}
