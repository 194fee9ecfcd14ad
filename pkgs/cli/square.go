package cli

import (
	"os"

	"github.com/keskad/square/pkgs/app"
	"github.com/keskad/square/pkgs/output"
	"github.com/spf13/cobra"
)

func NewPrintCommand(app *app.SquareApp) *cobra.Command {
	type PrintArgs struct {
		Size     string
		Position string
		AsString bool
	}

	cmdArgs := PrintArgs{}
	command := &cobra.Command{
		Use:   "print",
		Short: "Draw a square at a given position",
		Long: `Draw a square of # characters.

The square is moved right by X spaces and down by Y empty lines.
Values not given as flags are taken from .square.yaml (in $HOME or the current directory).

Examples:
  square print --size 5
  square print --size 5 --position 4,1
  square print -s 3 -p "(2, 0)" --string`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			usePrinter(command, app)
			if err := app.Initialize(); err != nil {
				return err
			}

			return app.PrintAction(cmdArgs.Size, cmdArgs.Position, cmdArgs.AsString)
		},
	}

	addCommonFlags(command, app)
	command.Flags().StringVarP(&cmdArgs.Size, "size", "s", "", "Square size, a non-negative integer")
	command.Flags().StringVarP(&cmdArgs.Position, "position", "p", "", "Square position as X,Y")
	command.Flags().BoolVarP(&cmdArgs.AsString, "string", "", false, "Print the string form of the square")

	return command
}

func NewAreaCommand(app *app.SquareApp) *cobra.Command {
	type AreaArgs struct {
		Size string
	}

	cmdArgs := AreaArgs{}
	command := &cobra.Command{
		Use:   "area",
		Short: "Print the area of a square",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			usePrinter(command, app)
			if err := app.Initialize(); err != nil {
				return err
			}

			return app.AreaAction(cmdArgs.Size)
		},
	}

	addCommonFlags(command, app)
	command.Flags().StringVarP(&cmdArgs.Size, "size", "s", "", "Square size, a non-negative integer")

	return command
}

func NewDemoCommand(app *app.SquareApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "demo",
		Short: "Draw two sample squares",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			usePrinter(command, app)
			if err := app.Initialize(); err != nil {
				return err
			}

			return app.DemoAction()
		},
	}

	addCommonFlags(command, app)

	return command
}

func addCommonFlags(command *cobra.Command, app *app.SquareApp) {
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().StringVarP(&app.ConfigPath, "config", "c", "", "Path to the configuration file")
}

// usePrinter sends the app output to the command output when it was redirected, otherwise the app prints to stdout
func usePrinter(command *cobra.Command, app *app.SquareApp) {
	if out := command.OutOrStdout(); out != os.Stdout {
		app.P = output.WriterPrinter{W: out}
	}
}
