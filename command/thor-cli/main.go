// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/chain"
	"github.com/bitmark-inc/thortx/configuration"
	"github.com/bitmark-inc/thortx/fault"
)

type metadata struct {
	config     *configuration.Configuration // nil when no file was given
	parameters chain.Parameters
	log        *logger.L // nil when no file was given
	builderLog *logger.L // nil when no file was given
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "thor-cli"
	app.Usage = "build and broadcast THORChain send transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`, required for broadcast and history",
		},
		cli.StringFlag{
			Name:  "chain, n",
			Value: chain.Thorchain,
			Usage: " chain constants when there is no configuration `NAME` [thorchain|stagenet|local]",
		},
	}
	app.Commands = commands()

	// read the configuration
	app.Before = func(c *cli.Context) error {
		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		m := &metadata{
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		file := c.GlobalString("config")
		if "" == file {
			parameters, err := chain.ParametersFor(c.GlobalString("chain"))
			if nil != err {
				return fmt.Errorf("chain: %q: %w", c.GlobalString("chain"), err)
			}
			m.parameters = parameters
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		options, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		err = logger.Initialise(options.Logging)
		if nil != err {
			return err
		}
		err = fault.Initialise()
		if nil != err {
			return err
		}

		m.config = options
		m.parameters = options.Parameters
		m.log = logger.New("main")
		m.builderLog = logger.New("builder")
		m.log.Infof("version: %s  chain: %s  node: %s", version, options.Chain, options.NodeURL)

		return nil
	}

	// flush logs if they were started
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.log {
			return nil
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
