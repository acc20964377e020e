// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-glances-schema.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package expander turns a glances stats schema template into a concrete
// schema for one node. Placeholder tokens such as `[DATA_VOLUMES]` in metric
// names are replaced with the node's values, and figures marked with
// `USE_AS_TEMPLATE_FOR` get an explicit `iterate_by` list or an
// `iterate_for` range.
//
// Example, with data volumes "dm-0 dm-3" and 48 CPUs:
//
//	diskio_[DATA_VOLUMES]_write_count -> diskio_[dm-0,dm-3]_write_count
//	percpu_[CPU_NR]_total             -> percpu_[0..47]_total
package expander

import (
	"fmt"
	"io"

	"github.com/ClusterCockpit/cc-glances-schema/internal/schema"
	cclog "github.com/ClusterCockpit/cc-lib/v2/ccLogger"
)

type Expander struct {
	mapping *Mapping

	// Every changed metric is reported here as "original --> result".
	// May be nil.
	notices io.Writer

	substituted int
}

func New(mapping *Mapping, notices io.Writer) *Expander {
	return &Expander{
		mapping: mapping,
		notices: notices,
	}
}

// Substituted returns the number of metric names changed so far.
func (e *Expander) Substituted() int {
	return e.substituted
}

// ResolveTemplate replaces the template directive of fig, if any, with
// iterate_for (CPU_NR) or iterate_by (all other categories).
func (e *Expander) ResolveTemplate(fig *schema.Figure) error {
	if fig.TemplateFor == nil {
		return nil
	}

	c := Category(*fig.TemplateFor)
	if c == CPUNr {
		// The range end is the CPU count itself, unlike the `[0..N-1]` metric token.
		fig.IterateFor = &schema.Range{Start: 0, End: e.mapping.CPUNr}
	} else {
		values, err := e.mapping.List(c)
		if err != nil {
			return fmt.Errorf("%s: %w", schema.TemplateKey, err)
		}
		fig.IterateBy = append(schema.IterationList{}, values...)
	}

	fig.TemplateFor = nil
	return nil
}

// Metric substitutes the placeholder tokens of a single metric name.
func (e *Expander) Metric(name string) string {
	result := e.mapping.Substitute(name)
	if result != name {
		e.substituted++
		if e.notices != nil {
			fmt.Fprintf(e.notices, "%s --> %s\n", name, result)
		}
	}
	return result
}

// Expand resolves all figures of doc in place. It stops at the first
// figure with an unknown template category.
func (e *Expander) Expand(doc *schema.Document) error {
	for i := range doc.Figures {
		fig := doc.Figures[i].Figure
		if fig == nil {
			continue
		}

		if err := e.ResolveTemplate(fig); err != nil {
			return fmt.Errorf("figure %d: %w", i, err)
		}

		for _, col := range fig.Columns {
			for _, entry := range col.Column {
				if entry.Graph == nil {
					continue
				}

				metrics := make([]string, len(entry.Graph.Metrics))
				for k, metric := range entry.Graph.Metrics {
					metrics[k] = e.Metric(metric)
				}
				entry.Graph.Metrics = metrics
			}
		}
	}

	cclog.Infof("expanded %d figures, %d metrics substituted", len(doc.Figures), e.substituted)
	return nil
}
