// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-glances-schema.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package schema describes the glances stats schema document: figures made
// of columns, columns made of graphs and graphs listing metric names.
// Keys this package does not know about are carried through unchanged.
package schema

// TemplateKey is the figure key that marks a figure as a template.
const TemplateKey = "USE_AS_TEMPLATE_FOR"

type Document struct {
	Figures []FigureEntry  `yaml:"figures"`
	Extra   map[string]any `yaml:",inline"`
}

type FigureEntry struct {
	Figure *Figure        `yaml:"figure"`
	Extra  map[string]any `yaml:",inline"`
}

type Figure struct {
	// Category the figure iterates over. Nil once resolved.
	TemplateFor *string `yaml:"USE_AS_TEMPLATE_FOR,omitempty"`

	Columns []ColumnEntry `yaml:"columns"`

	// Set for list categories (volumes, interfaces).
	IterateBy IterationList `yaml:"iterate_by,omitempty"`

	// Set for the CPU category.
	IterateFor *Range `yaml:"iterate_for,omitempty"`

	Extra map[string]any `yaml:",inline"`
}

type ColumnEntry struct {
	Column []GraphEntry   `yaml:"column"`
	Extra  map[string]any `yaml:",inline"`
}

type GraphEntry struct {
	Graph *Graph         `yaml:"graph"`
	Extra map[string]any `yaml:",inline"`
}

type Graph struct {
	Metrics []string       `yaml:"metrics"`
	Extra   map[string]any `yaml:",inline"`
}

// Range is an iteration from Start up to End.
type Range struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// IterationList is only omitted when nil, so an empty list of volumes
// still shows up as `iterate_by: []`.
type IterationList []string

func (l IterationList) IsZero() bool {
	return l == nil
}
