package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/rwfile/internal/constants"
	"github.com/mrz1836/rwfile/internal/errors"
)

// GlobalConfigDir returns the path to the global configuration directory:
// $RWFILE_HOME when set, otherwise ~/.rwfile.
func GlobalConfigDir() (string, error) {
	if home := os.Getenv(constants.EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.RWFileHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the relative path to the project configuration file.
// This is always .rwfile/config.yaml relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(constants.RWFileHome, constants.GlobalConfigName)
}
