// Package api holds the OpenAPI description of the service's HTTP surface.
package api

import _ "embed"

// OpenAPI is the OpenAPI 3 document in YAML.
//
//go:embed openapi.yaml
var OpenAPI []byte
