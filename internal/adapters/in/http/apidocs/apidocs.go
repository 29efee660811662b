// Package apidocs embeds the OpenAPI document of the governed API. It
// validates request bodies against the document's component schemas and
// publishes the document to the Swagger UI.
package apidocs

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Schema names used by the route registry.
const (
	SchemaOrder         = "OrderPayload"
	SchemaDesignJob     = "DesignJobPayload"
	SchemaWorkOrder     = "WorkOrderPayload"
	SchemaPurchaseOrder = "PurchaseOrderPayload"
	SchemaInventory     = "InventoryPayload"
	SchemaStatusRequest = "StatusRequest"
)

// ErrUnknownSchema is returned for a schema name the document does not define.
var ErrUnknownSchema = errors.New("unknown schema")

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// SchemaValidator checks JSON bodies against named component schemas.
type SchemaValidator struct {
	schemas openapi3.Schemas
}

func NewSchemaValidator(doc *openapi3.T) *SchemaValidator {
	return &SchemaValidator{schemas: doc.Components.Schemas}
}

// Validate decodes body and visits it with the named schema. An empty body is
// validated as an empty object.
func (v *SchemaValidator) Validate(name string, body []byte) error {
	ref, ok := v.schemas[name]
	if !ok || ref.Value == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	var value any = map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &value); err != nil {
			return err
		}
	}
	return ref.Value.VisitJSON(value)
}

var registerOnce sync.Once

// Register publishes doc under the default swag instance so that
// echo-swagger can serve it at /swagger/doc.json. Only the first call has an
// effect; swag panics on duplicate registration.
func Register(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Title:            doc.Info.Title,
			Version:          doc.Info.Version,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
		})
	})
	return nil
}
