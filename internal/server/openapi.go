package server

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	apiTitle   = "WasteNaut Documents API"
	apiVersion = "1.0.0"
)

// Spec describes the HTTP API as an OpenAPI 3 document.
func Spec(debugRoutes bool, formats []string) *openapi3.T {
	paths := openapi3.NewPaths(
		openapi3.WithPath("/healthz", get("Health check", jsonResponse("Service is up", statusSchema()))),
		openapi3.WithPath("/openapi.json", get("OpenAPI description of this API", jsonResponse("OpenAPI document", openapi3.NewObjectSchema()))),
		openapi3.WithPath("/resources/{filename}", get(
			"Download a resource document",
			binaryResponse("Rendered document", "application/pdf"),
			pathParam("filename", "Resource file name, e.g. food-safety-guide.pdf"),
			formatParam(formats),
		)),
		openapi3.WithPath("/receipts/{filename}", get(
			"Download a tax receipt",
			binaryResponse("Tax receipt", "application/pdf"),
			pathParam("filename", "{donorId}-{taxYear}.pdf"),
		)),
	)

	if debugRoutes {
		paths.Set("/debug/pdf-test", get("Multi-page sample PDF", binaryResponse("Sample PDF", "application/pdf")))
		paths.Set("/debug/test-direct-pdf", get("PDF rendered from fixed lines", binaryResponse("Sample PDF", "application/pdf")))
		paths.Set("/debug/pdf-raw/{docType}", get("Layout preview", jsonResponse("Preview report", openapi3.NewObjectSchema()), docTypeParam()))
		paths.Set("/debug/extract-content/{docType}", get("Extracted lines", jsonResponse("Extraction report", openapi3.NewObjectSchema()), docTypeParam()))
		paths.Set("/debug/pdf-content/{docType}", get("Rendered PDF summary", jsonResponse("Inspection report", openapi3.NewObjectSchema()), docTypeParam()))
	}

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       apiTitle,
			Version:     apiVersion,
			Description: "Generates WasteNaut resource documents and tax receipts.",
		},
		Paths: paths,
	}
}

func get(summary string, ok *openapi3.Response, params ...*openapi3.Parameter) *openapi3.PathItem {
	op := openapi3.NewOperation()
	op.Summary = summary

	for _, p := range params {
		op.AddParameter(p)
	}

	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: ok}),
		openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{Value: errorResponseSpec("Invalid request")}),
		openapi3.WithStatus(http.StatusInternalServerError, &openapi3.ResponseRef{Value: errorResponseSpec("Generation failed")}),
	)

	return &openapi3.PathItem{Get: op}
}

func pathParam(name, description string) *openapi3.Parameter {
	return openapi3.NewPathParameter(name).
		WithDescription(description).
		WithSchema(openapi3.NewStringSchema())
}

func docTypeParam() *openapi3.Parameter {
	return pathParam("docType", "food, checklist, receipt or any other name for the generic document")
}

func formatParam(formats []string) *openapi3.Parameter {
	enum := make([]any, 0, len(formats))
	for _, f := range formats {
		enum = append(enum, f)
	}

	return openapi3.NewQueryParameter("format").
		WithDescription("Output format, pdf when omitted").
		WithSchema(openapi3.NewStringSchema().WithEnum(enum...))
}

func binaryResponse(description, contentType string) *openapi3.Response {
	return openapi3.NewResponse().
		WithDescription(description).
		WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema().WithFormat("binary"), []string{contentType}))
}

func jsonResponse(description string, schema *openapi3.Schema) *openapi3.Response {
	return openapi3.NewResponse().
		WithDescription(description).
		WithContent(openapi3.NewContentWithJSONSchema(schema))
}

func errorResponseSpec(description string) *openapi3.Response {
	return jsonResponse(description, openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema()))
}

func statusSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().WithProperty("status", openapi3.NewStringSchema())
}
