package config

import (
	"errors"
	"fmt"

	"github.com/keskad/square/pkgs/shape"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Configuration struct {
	// Square describes the square drawn when no flags are given
	Square Square
}

type Square struct {
	Size     int
	Position shape.Position
}

// NewConfig reads .square.yaml from $HOME or the current directory, or the file at path when it is not empty.
// A missing config file in the search paths is not an error
func NewConfig(path string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".square")
		v.AddConfigPath("$HOME/")
		v.AddConfigPath(".")
	}

	v.SetDefault("square.size", 0)
	v.SetDefault("square.position", []int{0, 0})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return &Configuration{}, fmt.Errorf("cannot parse config: %w", err)
		}
		logrus.Debug("No config file found, using defaults")
	} else {
		logrus.Debugf("Read configuration from %s", v.ConfigFileUsed())
	}

	return fromViper(v)
}

// fromViper validates the raw values, as YAML can carry floats, strings or lists of any length
func fromViper(v *viper.Viper) (*Configuration, error) {
	config := Configuration{}

	size, err := shape.SizeFromValue(v.Get("square.size"))
	if err != nil {
		return &Configuration{}, fmt.Errorf("cannot parse config: square.size: %w", err)
	}
	position, err := shape.PositionFromValue(v.Get("square.position"))
	if err != nil {
		return &Configuration{}, fmt.Errorf("cannot parse config: square.position: %w", err)
	}

	config.Square = Square{Size: size, Position: position}
	return &config, nil
}
