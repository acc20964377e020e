// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-glances-schema.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package main provides the entry point for the glances stats schema generator.
// This file defines all command-line flags and their default values.
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ClusterCockpit/cc-glances-schema/internal/config"
)

const programName = "cc-glances-schema"

var (
	flagGops, flagVersion, flagLogDateTime                      bool
	flagConfigFile, flagLogLevel                                string
	flagTemplate, flagDataVolumes, flagMdVolumes, flagNetIfaces string
	flagCPUNr                                                   int
)

// requiredFlag lists the short and long name of a mandatory parameter.
type requiredFlag struct {
	short, long string
}

var requiredFlags = []requiredFlag{
	{"y", "yaml-schema"},
	{"d", "data-volumes"},
	{"m", "md-volumes"},
	{"n", "net-ifaces"},
	{"c", "cpu-nr"},
}

const usageHeader = `Usage: %[1]s -y <template> -d <data volumes> -m <md volumes> -n <net ifaces> -c <cpu nr>

%[1]s generates the yaml formatted stats schema that describes which graphs and
metrics are plotted from glances statistics. The input is a template of that
schema in which metric names may contain placeholder labels:

    [DATA_VOLUMES]      data volumes (-d)
    [METADATA_VOLUMES]  metadata volumes (-m)
    [NETWORK_IFACES]    network interfaces (-n)
    [CPU_NR]            CPU numbers 0..N-1 (-c)

For example 'diskio_[DATA_VOLUMES]_write_count' becomes
'diskio_[dm-0,dm-3]_write_count' and 'percpu_[CPU_NR]_total' becomes
'percpu_[0..47]_total'. A figure with 'USE_AS_TEMPLATE_FOR: <label>' is
turned into an 'iterate_by' list or, for CPU_NR, an 'iterate_for' range.

The result is written to '%[2]s'.

Example:
    %[1]s -y ./glances_stats_schema.template.yaml \
        -d "dm-14 dm-3 dm-0" -m "dm-1" -n "eno1 enp175s0f0 tap0" -c 48

Options:
`

func cliInit(args []string, output io.Writer) (*flag.FlagSet, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), usageHeader, programName, config.DefaultOutput)
		fs.PrintDefaults()
	}

	fs.StringVar(&flagTemplate, "y", "", "Shorthand for -yaml-schema")
	fs.StringVar(&flagTemplate, "yaml-schema", "", "Yaml formatted `template` of graphs and metrics")
	fs.StringVar(&flagDataVolumes, "d", "", "Shorthand for -data-volumes")
	fs.StringVar(&flagDataVolumes, "data-volumes", "", "Whitespace separated `list` of data volumes")
	fs.StringVar(&flagMdVolumes, "m", "", "Shorthand for -md-volumes")
	fs.StringVar(&flagMdVolumes, "md-volumes", "", "Whitespace separated `list` of metadata volumes")
	fs.StringVar(&flagNetIfaces, "n", "", "Shorthand for -net-ifaces")
	fs.StringVar(&flagNetIfaces, "net-ifaces", "", "Whitespace separated `list` of network interfaces")
	fs.IntVar(&flagCPUNr, "c", 0, "Shorthand for -cpu-nr")
	fs.IntVar(&flagCPUNr, "cpu-nr", 0, "`Number` of CPUs")

	fs.StringVar(&flagConfigFile, "config", "", "Specify a `config.json` with defaults for the node parameters")
	fs.BoolVar(&flagGops, "gops", false, "Listen via github.com/google/gops/agent (for debugging)")
	fs.BoolVar(&flagVersion, "version", false, "Show version information and exit")
	fs.BoolVar(&flagLogDateTime, "logdate", false, "Set this flag to add date and time to log messages")
	fs.StringVar(&flagLogLevel, "loglevel", "warn", "Sets the logging level: `[debug, info, warn (default), err, crit]`")

	return fs, fs.Parse(args)
}

// options are the parameters of one run after flags and config file are merged.
type options struct {
	template    string
	dataVolumes string
	mdVolumes   string
	netIfaces   string
	cpuNr       int
	output      string
}

// resolveOptions merges the parsed flags with config.Keys. Flags given on
// the command line win, even if they are empty.
func resolveOptions(fs *flag.FlagSet) (*options, error) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	given := func(rf requiredFlag) bool {
		return set[rf.short] || set[rf.long]
	}

	o := &options{
		template:    flagTemplate,
		dataVolumes: flagDataVolumes,
		mdVolumes:   flagMdVolumes,
		netIfaces:   flagNetIfaces,
		cpuNr:       flagCPUNr,
		output:      config.Keys.Output,
	}

	var missing []string
	for _, rf := range requiredFlags {
		if given(rf) {
			continue
		}

		switch rf.long {
		case "data-volumes":
			if config.Keys.DataVolumes != nil {
				o.dataVolumes = *config.Keys.DataVolumes
				continue
			}
		case "md-volumes":
			if config.Keys.MetadataVolumes != nil {
				o.mdVolumes = *config.Keys.MetadataVolumes
				continue
			}
		case "net-ifaces":
			if config.Keys.NetworkIfaces != nil {
				o.netIfaces = *config.Keys.NetworkIfaces
				continue
			}
		case "cpu-nr":
			if config.Keys.CPUNr != nil {
				o.cpuNr = *config.Keys.CPUNr
				continue
			}
		}
		missing = append(missing, "-"+rf.short+"/-"+rf.long)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required arguments: %s", errUsage, strings.Join(missing, ", "))
	}
	return o, nil
}
