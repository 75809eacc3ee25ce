// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
)

// a probe record bound to every key inserted, the tree node is
// embedded just like an application would do it
type probeRecord struct {
	avl.Node
	ordinal int // position in the argument list
}

type globalFlags struct {
	verbose bool
	logDir  string
}

// log channel, nil when logging was not requested
var log *logger.L

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "avl-probe"
	app.Usage = "build an AVL index from unsigned integer keys and inspect it"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " log each operation",
			Destination: &globals.verbose,
		},
		cli.StringFlag{
			Name:        "log-dir, l",
			Value:       "",
			Usage:       " directory for the log file, logging is off when empty",
			Destination: &globals.logDir,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "display the tree structure",
			ArgsUsage: " key…",
			Action: func(c *cli.Context) error {
				return runPrint(c.Args())
			},
		},
		{
			Name:      "walk",
			Usage:     "show the pre-, in- and post-order key sequences",
			ArgsUsage: " key…",
			Action: func(c *cli.Context) error {
				return runWalk(c.Args())
			},
		},
		{
			Name:      "check",
			Usage:     "verify the tree invariants, then delete every key",
			ArgsUsage: " key…",
			Action: func(c *cli.Context) error {
				return runCheck(c.Args())
			},
		},
	}
	app.Before = func(c *cli.Context) error {
		return initialiseLogging(&globals)
	}
	app.After = func(c *cli.Context) error {
		if nil != log {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %v", app.Name, err)
	}
}

// optional file logging; also arms the fault panic log
func initialiseLogging(globals *globalFlags) error {
	if "" == globals.logDir {
		return nil
	}

	level := "info"
	if globals.verbose {
		level = "debug"
	}
	logging := logger.Configuration{
		Directory: globals.logDir,
		File:      "avl-probe.log",
		Size:      1048576,
		Count:     10,
		Console:   globals.verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}

	err := logger.Initialise(logging)
	if nil != err {
		return err
	}
	err = fault.Initialise()
	if nil != err {
		return err
	}
	log = logger.New("avl-probe")
	return nil
}

// log a debug message when logging is enabled
func debugf(format string, arguments ...interface{}) {
	if nil != log {
		log.Debugf(format, arguments...)
	}
}

// convert the argument list to keys
func parseKeys(args []string) ([]uint64, error) {
	if 0 == len(args) {
		return nil, fault.MissingArguments
	}
	keys := make([]uint64, len(args))
	for i, arg := range args {
		key, err := strconv.ParseUint(arg, 10, 64)
		if nil != err {
			fmt.Printf("invalid key: %q\n", arg)
			return nil, fault.InvalidKey
		}
		keys[i] = key
	}
	return keys, nil
}

// build a tree from the key arguments, the probe owns all the node
// memory; duplicated arguments are reported and skipped
func buildTree(keys []uint64) (*avl.Tree, error) {
	tree := avl.New()
	for i, key := range keys {
		node := &probeRecord{ordinal: i}
		err := tree.Insert(key, &node.Node)
		if fault.IsErrExists(err) {
			fmt.Printf("duplicate key: %d\n", key)
			continue
		}
		if nil != err {
			return nil, err
		}
		debugf("insert: %d", key)
	}
	return tree, nil
}

func runPrint(args []string) error {
	keys, err := parseKeys(args)
	if nil != err {
		return err
	}
	tree, err := buildTree(keys)
	if nil != err {
		return err
	}

	depth := tree.Print()
	fmt.Printf("count: %d  height: %d  depth: %d\n", tree.Count(), tree.Height(), depth)
	return nil
}

func runWalk(args []string) error {
	keys, err := parseKeys(args)
	if nil != err {
		return err
	}
	tree, err := buildTree(keys)
	if nil != err {
		return err
	}

	collect := func(node *avl.Node, arg interface{}) error {
		keys := arg.(*[]uint64)
		*keys = append(*keys, node.Key())
		return nil
	}

	var pre, in, post []uint64
	err = tree.Walk(collect, &pre, collect, &in, collect, &post)
	if nil != err {
		return err
	}

	fmt.Printf("pre-order:  %d\n", pre)
	fmt.Printf("in-order:   %d\n", in)
	fmt.Printf("post-order: %d\n", post)
	return nil
}

func runCheck(args []string) error {
	keys, err := parseKeys(args)
	if nil != err {
		return err
	}
	tree, err := buildTree(keys)
	if nil != err {
		return err
	}

	if !tree.Check() {
		fault.Criticalf("tree check failed after %d inserts", tree.Count())
		return fault.TreeCheckFailed
	}
	fmt.Printf("count: %d  height: %d\n", tree.Count(), tree.Height())

	// remove every key in argument order, verifying the
	// invariants after each removal
	for _, key := range keys {
		node, err := tree.Delete(key)
		if fault.IsErrNotFound(err) {
			continue // duplicated argument, already removed
		}
		if nil != err {
			return err
		}
		if key != node.Key() {
			fmt.Printf("delete: %d returned key: %d\n", key, node.Key())
			return fault.TreeCheckFailed
		}
		debugf("delete: %d", key)
		if !tree.Check() {
			fault.Criticalf("tree check failed after delete: %d", key)
			return fault.TreeCheckFailed
		}
	}

	if !tree.IsEmpty() {
		fmt.Printf("%d nodes remain after deleting every key\n", tree.Count())
		return fault.TreeCheckFailed
	}
	fmt.Printf("ok\n")
	return nil
}
