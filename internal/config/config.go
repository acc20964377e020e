// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-glances-schema.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config holds the optional defaults that can be supplied through
// the `main` section of a JSON configuration file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultOutput is the file the expanded schema is written to.
const DefaultOutput = "glances_stats_schema.yaml"

// ErrInvalidConfig is returned when the configuration does not match the schema.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type ProgramConfig struct {
	// Whitespace separated list of data volumes, for example "dm-0 dm-3"
	DataVolumes *string `json:"data-volumes"`

	// Whitespace separated list of metadata volumes
	MetadataVolumes *string `json:"md-volumes"`

	// Whitespace separated list of network interfaces
	NetworkIfaces *string `json:"net-ifaces"`

	// Number of CPUs on the monitored node
	CPUNr *int `json:"cpu-nr"`

	// Path of the generated schema, defaults to DefaultOutput
	Output string `json:"output"`
}

var Keys = ProgramConfig{
	Output: DefaultOutput,
}

// Init validates the raw `main` section and decodes it into Keys.
func Init(mainConfig json.RawMessage) error {
	if err := Validate(configSchema, mainConfig); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(mainConfig))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&Keys); err != nil {
		return fmt.Errorf("%w: decoding main section: %w", ErrInvalidConfig, err)
	}

	if Keys.Output == "" {
		Keys.Output = DefaultOutput
	}
	return nil
}

// Reset restores the defaults.
func Reset() {
	Keys = ProgramConfig{Output: DefaultOutput}
}

// Validate checks instance against the JSON schema given as a string.
func Validate(schema string, instance json.RawMessage) error {
	sch, err := jsonschema.CompileString("config.schema.json", schema)
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(instance, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
