package app

import (
	"github.com/keskad/square/pkgs/shape"
)

// PrintAction draws the square. With asString the string form is printed followed by a single newline,
// which gives the same output as the line by line print
func (app *SquareApp) PrintAction(sizeArg string, positionArg string, asString bool) error {
	sq, err := app.buildSquare(sizeArg, positionArg)
	if err != nil {
		return err
	}

	if asString {
		_, err = app.P.Printf("%s\n", sq.String())
		return err
	}
	return sq.Print(app.P)
}

func (app *SquareApp) AreaAction(sizeArg string) error {
	sq, err := app.buildSquare(sizeArg, "")
	if err != nil {
		return err
	}

	_, err = app.P.Printf("%d\n", sq.Area())
	return err
}

// DemoAction prints two sample squares separated by "--"
func (app *SquareApp) DemoAction() error {
	samples := []shape.Position{{X: 0, Y: 0}, {X: 4, Y: 1}}

	for i, pos := range samples {
		sq, err := shape.New(5, pos)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := app.P.Printf("--\n"); err != nil {
				return err
			}
		}
		if _, err := app.P.Printf("%s\n", sq); err != nil {
			return err
		}
	}
	return nil
}
