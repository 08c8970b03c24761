// Package api embeds the OpenAPI document of the HTTP surface.
package api

import _ "embed"

//go:embed openapi.yml
var OpenAPI []byte
