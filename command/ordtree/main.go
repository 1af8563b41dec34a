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
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/ordered"
	"github.com/bitmark-inc/ordtree/rbtree"
	"github.com/bitmark-inc/ordtree/script"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	keyColour = "\033[1;36m"
	valColour = "\033[1;33m"
	endColour = "\033[0m"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "data", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(options["config-file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--print] [--data] [--colour] --config-file=FILE", program)
	}

	verbose := len(options["verbose"]) > 0
	printTree := len(options["print"]) > 0
	printData := len(options["data"]) > 0
	colour := len(options["colour"]) > 0

	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	if err = rbtree.Initialise(); nil != err {
		exitwithstatus.Message("%s: rbtree setup failed with error: %s", program, err)
	}
	defer rbtree.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("steps: %d", len(theConfiguration.Steps))

	// ------------------
	// start of real main
	// ------------------

	m := ordered.NewMap[string, string]()
	completed, err := script.Run(script.NewMapOperator(m), theConfiguration.Steps, logger.New("script"))
	if nil != err {
		log.Criticalf("step: %d failed with error: %s", completed, err)
		exitwithstatus.Message("%s: step: %d of %d failed with error: %s", program, completed+1, len(theConfiguration.Steps), err)
	}

	show(os.Stdout, m, colour)

	if printTree {
		depth := m.Fprint(os.Stdout, printData)
		fmt.Printf("depth: %d\n", depth)
	}

	if err := m.Check(); nil != err {
		log.Errorf("consistency check failed with error: %s", err)
		exitwithstatus.Message("%s: consistency check failed with error: %s", program, err)
	}
	fmt.Printf("entries: %d  check: ok\n", m.Size())
}

// write the entries in key order
func show(w io.Writer, m *ordered.Map[string, string], colour bool) {
	n := 0
	for key, value := range m.All() {
		if colour {
			fmt.Fprintf(w, "%5d: %s%q%s → %s%q%s\n", n, keyColour, key, endColour, valColour, value, endColour)
		} else {
			fmt.Fprintf(w, "%5d: %q → %q\n", n, key, value)
		}
		n += 1
	}
}
