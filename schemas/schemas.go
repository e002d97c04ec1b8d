// Package schemas embeds the JSON Schemas shipped with hireflow.
package schemas

import _ "embed"

// Seed describes the fixture document accepted by the seed loader.
//
//go:embed seed.schema.json
var Seed []byte
