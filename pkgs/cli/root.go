package cli

import (
	"github.com/keskad/square/pkgs/app"
	"github.com/spf13/cobra"
)

func NewRootCommand(app *app.SquareApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "square",
		Short: "Draw squares made of # characters",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.AddCommand(NewPrintCommand(app))
	command.AddCommand(NewAreaCommand(app))
	command.AddCommand(NewDemoCommand(app))

	return command
}
