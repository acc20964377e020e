// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-glances-schema.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ClusterCockpit/cc-glances-schema/internal/config"
	"github.com/ClusterCockpit/cc-glances-schema/internal/expander"
	"github.com/ClusterCockpit/cc-glances-schema/internal/schema"
	ccconf "github.com/ClusterCockpit/cc-lib/v2/ccConfig"
	cclog "github.com/ClusterCockpit/cc-lib/v2/ccLogger"
	"github.com/google/gops/agent"
)

var (
	date    string
	commit  string
	version string
)

var errUsage = errors.New("usage error")

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "Version:\t%s\n", version)
	fmt.Fprintf(w, "Git hash:\t%s\n", commit)
	fmt.Fprintf(w, "Build time:\t%s\n", date)
}

func initGops() (func(), error) {
	if !flagGops {
		return func() {}, nil
	}

	if err := agent.Listen(agent.Options{}); err != nil {
		return nil, fmt.Errorf("starting gops agent: %w", err)
	}
	return agent.Close, nil
}

func initConfiguration() error {
	config.Reset()
	if flagConfigFile == "" {
		return nil
	}

	ccconf.Init(flagConfigFile)

	cfg := ccconf.GetPackageConfig("main")
	if cfg == nil {
		return fmt.Errorf("main configuration must be present in %s", flagConfigFile)
	}

	return config.Init(cfg)
}

// generate performs the actual work: load the template, expand it for the
// node described by o and write the result.
func generate(o *options, stdout io.Writer) error {
	doc, err := schema.Load(o.template)
	if err != nil {
		return err
	}

	mapping := expander.NewMapping(o.dataVolumes, o.mdVolumes, o.netIfaces, o.cpuNr)
	cclog.Infof("data volumes %v, metadata volumes %v, network interfaces %v, %d CPUs",
		mapping.DataVolumes, mapping.MetadataVolumes, mapping.NetworkIfaces, mapping.CPUNr)

	exp := expander.New(mapping, stdout)
	if err := exp.Expand(doc); err != nil {
		return fmt.Errorf("expanding %s: %w", o.template, err)
	}

	if err := schema.Write(o.output, doc); err != nil {
		return err
	}

	cclog.Infof("stats schema written to %s", o.output)
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	fs, err := cliInit(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if flagVersion {
		printVersion(stdout)
		return nil
	}

	// Initialize logger
	cclog.Init(flagLogLevel, flagLogDateTime)

	closeGops, err := initGops()
	if err != nil {
		return err
	}
	defer closeGops()

	if err := initConfiguration(); err != nil {
		return err
	}

	opts, err := resolveOptions(fs)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		fs.Usage()
		return err
	}

	return generate(opts, stdout)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		cclog.Error(err.Error())
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
