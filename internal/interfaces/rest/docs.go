package rest

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// DocsInstanceName is the name the API document is registered under with swag.
const DocsInstanceName = "aquapure"

//go:embed openapi.yaml
var openAPIDocument []byte

type apiDoc struct{}

func (apiDoc) ReadDoc() string {
	return string(openAPIDocument)
}

func init() {
	swag.Register(DocsInstanceName, apiDoc{})
}

// LoadOpenAPI parses and validates the embedded API document.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}
