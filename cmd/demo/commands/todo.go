package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/demo/internal/cli"
	"github.com/idilsaglam/demo/internal/tui"
	"github.com/idilsaglam/demo/internal/ui"
)

func todoCmd() *cobra.Command {
	var (
		adds    []string
		removes []int
		plain   bool
		group   bool
	)
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Work on an in-memory todo list",
		Long: `Without flags, opens the interactive list (a add, d remove, c completed, q quit).

With --add/--rm the operations run in order (all adds, then removes by
zero-based index) and the result is printed. Nothing is kept after exit.`,
		Example: `  demo todo
  demo todo --add "Buy milk" --add Eggs --add Bread --rm 1
  demo todo --add "Buy milk" --group`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			todos := appCtx.Todos
			for _, title := range adds {
				todos.SetNewTodo(title)
				todos.AddTodo()
			}
			for _, i := range removes {
				if i < 0 || i >= todos.Len() {
					appCtx.Logger.Debug("remove out of range", zap.Int("index", i), zap.Int("len", todos.Len()))
				}
				todos.RemoveTodo(i)
			}

			batch := len(adds) > 0 || len(removes) > 0
			if !plain && !batch {
				return tui.RunTodo(todos)
			}
			cli.WriteTodos(cmd.OutOrStdout(), todos.Todos(), todos.Completed(), cli.Options{Group: group})
			if batch {
				ui.OK("applied")
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&adds, "add", nil, "stage and add an item (repeatable)")
	cmd.Flags().IntSliceVar(&removes, "rm", nil, "remove the item at a zero-based index (repeatable)")
	cmd.Flags().BoolVarP(&plain, "plain", "p", false, "print instead of opening the interactive list")
	cmd.Flags().BoolVar(&group, "group", false, "group printed output by pending/completed")
	return cmd
}
