// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/configuration"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/workload"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "bintree-check.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
	Workloads     []workload.Config    `gluamapper:"workloads" json:"workloads"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrInvalidDataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory: %w", options.DataDirectory, fault.ErrInvalidDataDirectory)
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// one workload for each container if none were given
	if 0 == len(options.Workloads) {
		for _, name := range workload.Containers() {
			options.Workloads = append(options.Workloads, workload.Config{Balancer: name})
		}
	}

	names := make(map[string]struct{})
	for i := range options.Workloads {
		w := &options.Workloads[i]
		if err := w.Validate(); nil != err {
			return nil, fmt.Errorf("workload[%d]: %q: %w", i, w.Name, err)
		}
		if _, ok := names[w.Name]; ok {
			return nil, fmt.Errorf("workload[%d]: %q: duplicate name: %w", i, w.Name, fault.ErrDuplicateKey)
		}
		names[w.Name] = struct{}{}
	}

	// done
	return options, nil
}

// select workloads by name, all of them if no names are given
func (c *Configuration) selectWorkloads(names []string) ([]*workload.Config, error) {
	selected := []*workload.Config{}
	if 0 == len(names) {
		for i := range c.Workloads {
			selected = append(selected, &c.Workloads[i])
		}
		return selected, nil
	}

names_loop:
	for _, name := range names {
		for i := range c.Workloads {
			if name == c.Workloads[i].Name {
				selected = append(selected, &c.Workloads[i])
				continue names_loop
			}
		}
		return nil, fmt.Errorf("%q: %w", name, fault.ErrNotFoundWorkload)
	}
	return selected, nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
