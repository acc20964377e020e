// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-glances-schema.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTemplate is returned when a template cannot be parsed or does
// not have the figures/columns/graphs/metrics shape.
var ErrInvalidTemplate = errors.New("schema: invalid template")

var compiledTemplateSchema = jsonschema.MustCompileString("template.schema.json", templateSchema)

// Load reads and decodes the template at path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}

	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML template. The document is checked against the
// template schema before it is decoded into a Document.
func Parse(raw []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidTemplate)
	}

	var generic any
	if err := root.Decode(&generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	if err := compiledTemplateSchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}

	doc := &Document{}
	if err := root.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	return doc, nil
}

// Marshal encodes doc as YAML with two space indentation.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding stats schema: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding stats schema: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes doc and replaces the file at path with it.
func Write(path string, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing stats schema: %w", err)
	}
	return nil
}
