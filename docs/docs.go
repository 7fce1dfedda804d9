// Package docs registra la spec OpenAPI de la API en el registro de swag.
// swagger.json se mantiene a partir de las anotaciones godoc de internal/interfaces/http.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var docTemplate string

// SwaggerInfo metadatos de la spec; los campos vacíos dejan los valores del documento.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Title:            "Rentacar API",
	Description:      "Ledger de renta de autos: catálogo, checkout/check-in, deuda y pagos en créditos enteros.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
