// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFileName = "config"
	// SiteconfHomeDir is the tool home directory under the user home
	SiteconfHomeDir = ".siteconf"
	// EnvConfigFileKey overrides the configuration file location
	EnvConfigFileKey = "SITECONFCONFIG"
)

// Loader loads the tool-level configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultLoader loads the configuration from the location pointed to by the
// SITECONFCONFIG environment variable or from the siteconf home directory.
// A missing default configuration file is not an error, the zero configuration
// applies.
type DefaultLoader struct{}

// Load implements Loader
func (d *DefaultLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(EnvConfigFileKey); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", EnvConfigFileKey)
		}
		return load(configFilePath)
	}

	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}

	configFilePath := filepath.Join(userHomeDir, SiteconfHomeDir, defaultConfigFileName)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return load(configFilePath)
}

func load(configFilePath string) (*Config, error) {
	stat, err := os.Stat(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %v", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is a directory, instead of a file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, err
	}
	return config, nil
}
