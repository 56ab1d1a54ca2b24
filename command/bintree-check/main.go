// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/background"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/workload"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "workload", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--print] --config-file=FILE [--workload=NAME...] [NAME=VALUE...]", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	variables, err := parseVariables(arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	if verbose {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	selected, err := masterConfiguration.selectWorkloads(options["workload"])
	if nil != err {
		log.Criticalf("select workloads error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}

	// each job prints into its own buffer as they run concurrently
	printing := len(options["print"]) > 0
	buffers := make([]*bytes.Buffer, len(selected))
	jobs := make([]*workload.Job, len(selected))
	processes := make(background.Processes, len(selected))
	for i, config := range selected {
		job := &workload.Job{
			Config: config,
			Log:    logger.New(config.Name),
		}
		if printing {
			buffers[i] = &bytes.Buffer{}
			job.Printer = buffers[i]
		}
		jobs[i] = job
		processes[i] = job
	}

	log.Infof("running: %d workloads", len(jobs))
	processing := background.Start(processes, nil)

	// wait for completion or a signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-processing.Done():
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if verbose {
			fmt.Fprintf(os.Stderr, "%s: received signal: %v, stopping\n", program, sig)
		}
	}
	signal.Stop(ch)
	processing.Stop()

	if printing {
		for i, job := range jobs {
			fmt.Printf("%s:\n%s\n", job.Config.Name, buffers[i].String())
		}
	}

	failed := report(os.Stdout, jobs)
	for _, job := range jobs {
		if nil != job.Err {
			log.Errorf("workload: %s  error: %s", job.Config.Name, job.Err)
		}
	}
	if failed > 0 {
		exitwithstatus.Message("%s: %d of %d workloads failed", program, failed, len(jobs))
	}
}

// convert NAME=VALUE arguments into configuration variables
func parseVariables(arguments []string) (map[string]string, error) {
	variables := make(map[string]string)
	for _, a := range arguments {
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || "" == name {
			return nil, fmt.Errorf("argument: %q is not NAME=VALUE", a)
		}
		variables[name] = value
	}
	return variables, nil
}
