package servers

import (
	"fmt"

	"storeadmin/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("error validating OpenAPI document: %w", err)
	}
	return swagger, nil
}
