// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-glances-schema.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

var templateSchema = `
{
  "type": "object",
  "description": "Template of the glances stats schema.",
  "required": ["figures"],
  "properties": {
    "figures": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["figure"],
        "properties": {
          "figure": {
            "type": "object",
            "required": ["columns"],
            "properties": {
              "USE_AS_TEMPLATE_FOR": {
                "description": "Placeholder category the figure is repeated for.",
                "type": "string"
              },
              "columns": {
                "type": "array",
                "items": {
                  "type": "object",
                  "required": ["column"],
                  "properties": {
                    "column": {
                      "type": "array",
                      "items": {
                        "type": "object",
                        "required": ["graph"],
                        "properties": {
                          "graph": {
                            "type": "object",
                            "required": ["metrics"],
                            "properties": {
                              "metrics": {
                                "description": "Metric names, optionally containing placeholder tokens like '[CPU_NR]'.",
                                "type": "array",
                                "items": { "type": "string" }
                              }
                            }
                          }
                        }
                      }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`
