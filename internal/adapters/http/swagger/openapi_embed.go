package swagger

import _ "embed"

// OpenAPI contains the embedded OpenAPI YAML document for the lineup API.
//
//go:embed openapi.yaml
var OpenAPI []byte
