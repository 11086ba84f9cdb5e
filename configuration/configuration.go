// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/thortx/broadcast"
	"github.com/bitmark-inc/thortx/chain"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/util"
)

// basic defaults (directories are relative to the "DataDirectory")
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultTimeoutSeconds = 30
	defaultCacheSeconds   = 600

	defaultJournalDirectory = "journal"

	defaultLogDirectory = "log"
	defaultLogFile      = "thor-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}

	validLogLevels = map[string]struct{}{
		"trace":    {},
		"debug":    {},
		"info":     {},
		"warn":     {},
		"error":    {},
		"critical": {},
	}
)

// Configuration - the contents of a configuration file after defaults
// and path expansion
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	Chain          string               `gluamapper:"chain" json:"chain"`
	NodeURL        string               `gluamapper:"node_url" json:"node_url"`
	ClientID       string               `gluamapper:"client_id" json:"client_id"`
	UserAgent      string               `gluamapper:"user_agent" json:"user_agent"`
	TimeoutSeconds int                  `gluamapper:"timeout_seconds" json:"timeout_seconds"`
	RateLimit      float64              `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst      int                  `gluamapper:"rate_burst" json:"rate_burst"`
	CacheSeconds   int                  `gluamapper:"cache_seconds" json:"cache_seconds"`
	Journal        string               `gluamapper:"journal" json:"journal"`
	Parameters     chain.Parameters     `gluamapper:"parameters" json:"parameters"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
//
// Parameters holds the chain defaults merged with any overrides from
// the file's parameters table
func GetConfiguration(configurationFileName string) (*Configuration, error) {
	if "" == configurationFileName {
		return nil, fault.ErrMissingConfigFile
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	configurationDirectory, _ := filepath.Split(configurationFileName)

	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory:  defaultDataDirectory,
		Chain:          chain.Thorchain,
		ClientID:       broadcast.DefaultClientID,
		UserAgent:      broadcast.DefaultUserAgent,
		TimeoutSeconds: defaultTimeoutSeconds,
		CacheSeconds:   defaultCacheSeconds,
		Journal:        defaultJournalDirectory,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	defaults, err := chain.ParametersFor(options.Chain)
	if nil != err {
		return nil, fmt.Errorf("chain: %q: %w", options.Chain, err)
	}
	options.Parameters = defaults.Merge(options.Parameters)

	if options.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("timeout_seconds: %d: %w", options.TimeoutSeconds, fault.ErrInvalidConfiguration)
	}
	if options.RateLimit < 0 {
		return nil, fmt.Errorf("rate_limit: %g: %w", options.RateLimit, fault.ErrInvalidConfiguration)
	}

	for tag, level := range options.Logging.Levels {
		if _, ok := validLogLevels[level]; !ok {
			return nil, fmt.Errorf("logging: %q: level: %q: %w", tag, level, fault.ErrInvalidLoggerChannel)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory: %w", options.DataDirectory, fault.ErrInvalidConfiguration)
	}
	options.DataDirectory = util.EnsureAbsolute(configurationDirectory, options.DataDirectory)

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("file: %q is not plain name: %w", options.Logging.File, fault.ErrInvalidConfiguration)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Journal,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// Broadcast - settings for the broadcast client
func (options *Configuration) Broadcast() broadcast.Configuration {
	return broadcast.Configuration{
		NodeURL:     options.NodeURL,
		ClientID:    options.ClientID,
		UserAgent:   options.UserAgent,
		Timeout:     time.Duration(options.TimeoutSeconds) * time.Second,
		RateLimit:   options.RateLimit,
		Burst:       options.RateBurst,
		CacheExpiry: time.Duration(options.CacheSeconds) * time.Second,
	}
}
