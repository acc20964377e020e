// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-glances-schema.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(Reset)

	raw := json.RawMessage(`{
		"data-volumes": "dm-0 dm-3",
		"md-volumes": "",
		"cpu-nr": 48
	}`)
	require.NoError(t, Init(raw))

	require.NotNil(t, Keys.DataVolumes)
	assert.Equal(t, "dm-0 dm-3", *Keys.DataVolumes)
	require.NotNil(t, Keys.MetadataVolumes)
	assert.Equal(t, "", *Keys.MetadataVolumes)
	assert.Nil(t, Keys.NetworkIfaces)
	require.NotNil(t, Keys.CPUNr)
	assert.Equal(t, 48, *Keys.CPUNr)
	assert.Equal(t, DefaultOutput, Keys.Output)
}

func TestInitOutput(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, Init(json.RawMessage(`{"output": "node1.yaml"}`)))
	assert.Equal(t, "node1.yaml", Keys.Output)

	Reset()
	assert.Equal(t, DefaultOutput, Keys.Output)
	assert.Nil(t, Keys.CPUNr)
}

func TestInitInvalid(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		raw  string
	}{
		{"unknown key", `{"cpus": 4}`},
		{"cpu count not an integer", `{"cpu-nr": 4.5}`},
		{"cpu count as string", `{"cpu-nr": "4"}`},
		{"volumes as list", `{"data-volumes": ["dm-0"]}`},
		{"not json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(json.RawMessage(tt.raw))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
