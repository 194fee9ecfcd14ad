package app

import (
	"fmt"

	"github.com/keskad/square/pkgs/config"
	"github.com/keskad/square/pkgs/output"
	"github.com/keskad/square/pkgs/shape"
	"github.com/keskad/square/pkgs/syntax"
	"github.com/sirupsen/logrus"
)

type SquareApp struct {
	Config *config.Configuration
	P      output.Printer

	// runtime parameters
	Debug      bool
	ConfigPath string
}

// Initialize is running after parsing the arguments, so we know how to configure the app
func (app *SquareApp) Initialize() error {
	// logging
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if app.P == nil {
		app.P = output.ConsolePrinter{}
	}

	// configuration
	logrus.Debug("Reading configuration files")
	cfg, cfgErr := config.NewConfig(app.ConfigPath)
	app.Config = cfg
	if cfgErr != nil {
		return fmt.Errorf("cannot initialize app: %w", cfgErr)
	}
	return nil
}

// buildSquare creates a square from the configuration, overridden by non-empty size and position arguments
func (app *SquareApp) buildSquare(sizeArg string, positionArg string) (*shape.Square, error) {
	size := 0
	position := shape.Position{}
	if app.Config != nil {
		size = app.Config.Square.Size
		position = app.Config.Square.Position
	}

	if sizeArg != "" {
		parsed, err := syntax.ParseSize(sizeArg)
		if err != nil {
			return nil, err
		}
		size = parsed
	}
	if positionArg != "" {
		parsed, err := syntax.ParsePosition(positionArg)
		if err != nil {
			return nil, err
		}
		position = parsed
	}

	sq, err := shape.New(size, position)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Square of size %d at position %s", sq.Size(), sq.Position())
	return sq, nil
}
