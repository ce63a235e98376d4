// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates small CUE documents against an embedded schema
// and formats CUE errors with JSON-path prefixes.
//
// The flow used by the configuration loader is:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with a schema definition
//  3. Validate and decode to a Go map
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schema string
//
//	values, err := cueutil.DecodeMap(schema, "#Config", data, "locales.cue")
//	if err != nil {
//	    return err // includes the CUE path of the offending field
//	}
package cueutil
