// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-glances-schema.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

var configSchema = `
{
  "type": "object",
  "properties": {
    "data-volumes": {
      "description": "Whitespace separated list of data volumes (for example: 'dm-0 dm-3').",
      "type": "string"
    },
    "md-volumes": {
      "description": "Whitespace separated list of metadata volumes.",
      "type": "string"
    },
    "net-ifaces": {
      "description": "Whitespace separated list of network interfaces (for example: 'eno1 tap0').",
      "type": "string"
    },
    "cpu-nr": {
      "description": "Number of CPUs on the monitored node.",
      "type": "integer"
    },
    "output": {
      "description": "Path of the generated stats schema. Defaults to 'glances_stats_schema.yaml'.",
      "type": "string"
    }
  },
  "additionalProperties": false
}`
