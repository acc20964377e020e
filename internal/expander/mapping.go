// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-glances-schema.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expander

import (
	"errors"
	"fmt"
	"strings"
)

// Category names a set of values a placeholder token expands to.
type Category string

const (
	NetworkIfaces   Category = "NETWORK_IFACES"
	DataVolumes     Category = "DATA_VOLUMES"
	MetadataVolumes Category = "METADATA_VOLUMES"
	CPUNr           Category = "CPU_NR"
)

// Categories lists all categories in the order tokens are substituted.
var Categories = []Category{NetworkIfaces, DataVolumes, MetadataVolumes, CPUNr}

var ErrUnknownCategory = errors.New("expander: unknown placeholder category")

// Token returns the placeholder as it appears in metric names, e.g. "[CPU_NR]".
func (c Category) Token() string {
	return "[" + string(c) + "]"
}

// Mapping holds the values of the node the schema is generated for.
type Mapping struct {
	NetworkIfaces   []string
	DataVolumes     []string
	MetadataVolumes []string
	CPUNr           int
}

// NewMapping splits the whitespace separated lists. Empty lists are fine and
// the CPU count is taken as is.
func NewMapping(dataVolumes, mdVolumes, netIfaces string, cpuNr int) *Mapping {
	return &Mapping{
		NetworkIfaces:   fields(netIfaces),
		DataVolumes:     fields(dataVolumes),
		MetadataVolumes: fields(mdVolumes),
		CPUNr:           cpuNr,
	}
}

func fields(s string) []string {
	f := strings.Fields(s)
	if f == nil {
		return []string{}
	}
	return f
}

// List returns the values of a list category. CPU_NR is not a list.
func (m *Mapping) List(c Category) ([]string, error) {
	switch c {
	case NetworkIfaces:
		return m.NetworkIfaces, nil
	case DataVolumes:
		return m.DataVolumes, nil
	case MetadataVolumes:
		return m.MetadataVolumes, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
}

// Replacement returns the text a token of category c is replaced with.
func (m *Mapping) Replacement(c Category) (string, error) {
	if c == CPUNr {
		return fmt.Sprintf("[0..%d]", m.CPUNr-1), nil
	}

	values, err := m.List(c)
	if err != nil {
		return "", err
	}
	return "[" + strings.Join(values, ",") + "]", nil
}

// Substitute replaces every known placeholder token in name. Tokens of
// unknown categories are left untouched.
func (m *Mapping) Substitute(name string) string {
	result := name
	for _, c := range Categories {
		token := c.Token()
		if !strings.Contains(result, token) {
			continue
		}

		repl, _ := m.Replacement(c)
		result = strings.ReplaceAll(result, token, repl)
	}
	return result
}
