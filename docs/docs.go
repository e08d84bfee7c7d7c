// Package docs holds the OpenAPI description served by the Swagger UI in dev mode.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ranges": {
            "get": {
                "description": "Get the selectable reporting windows, shortest first",
                "produces": ["application/json"],
                "tags": ["ranges"],
                "summary": "List time ranges",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/application.RangeResponse"}}}
                }
            }
        },
        "/identity": {
            "get": {
                "description": "Get the Identity tab metrics for a time range",
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Identity report",
                "parameters": [
                    {"type": "string", "description": "Time range key or label (1m, 3 Months, ...)", "name": "range", "in": "query"},
                    {"type": "string", "description": "Response format (json or msgpack)", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/application.ErrorResponse"}}
                }
            }
        },
        "/hygiene": {
            "get": {
                "description": "Get the Hygiene tab metrics for a time range. Empty breakdowns are marked skipped.",
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Hygiene report",
                "parameters": [
                    {"type": "string", "description": "Time range key or label (1m, 3 Months, ...)", "name": "range", "in": "query"},
                    {"type": "string", "description": "Response format (json or msgpack)", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/application.ErrorResponse"}}
                }
            }
        },
        "/hygiene/breakdown/{name}": {
            "get": {
                "description": "Get the derived shares of the corrections or email breakdown",
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Hygiene breakdown",
                "parameters": [
                    {"type": "string", "description": "Breakdown name (corrections or email)", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Time range key or label", "name": "range", "in": "query"},
                    {"type": "string", "description": "Response format (json or msgpack)", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/application.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/application.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/application.ErrorResponse"}}
                }
            }
        },
        "/charts": {
            "get": {
                "description": "Get the identifiers of every renderable figure",
                "produces": ["application/json"],
                "tags": ["charts"],
                "summary": "List charts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/application.ChartResponse"}}}
                }
            }
        },
        "/charts/{chart}": {
            "get": {
                "description": "Render a dashboard figure as PNG or SVG, or return its description with format=json or format=msgpack",
                "produces": ["image/png", "image/svg+xml", "application/json"],
                "tags": ["charts"],
                "summary": "Render chart",
                "parameters": [
                    {"type": "string", "description": "Chart identifier", "name": "chart", "in": "path", "required": true},
                    {"type": "string", "description": "Time range key or label", "name": "range", "in": "query"},
                    {"type": "string", "description": "png (default), svg, json or msgpack", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/application.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/application.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/application.ErrorResponse"}}
                }
            }
        },
        "/exports": {
            "get": {
                "description": "Get every stored export run, newest first",
                "produces": ["application/json"],
                "tags": ["exports"],
                "summary": "List export runs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/application.ExportRunResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/application.ErrorResponse"}}
                }
            }
        },
        "/exports/samples": {
            "get": {
                "description": "Get exported snapshot samples with optional filtering",
                "produces": ["application/json"],
                "tags": ["exports"],
                "summary": "List exported samples",
                "parameters": [
                    {"type": "string", "description": "Filter by export run ID", "name": "run_id", "in": "query"},
                    {"type": "string", "description": "Filter by sample name", "name": "name", "in": "query"},
                    {"type": "string", "description": "Filter by time range", "name": "range", "in": "query"},
                    {"type": "integer", "description": "Limit results", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Offset results", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/application.ExportSampleResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/application.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/application.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "application.ChartResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "path": {"type": "string"}}
        },
        "application.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "application.ExportRunResponse": {
            "type": "object",
            "properties": {"created_at": {"type": "string"}, "id": {"type": "string"}, "samples": {"type": "integer"}}
        },
        "application.ExportSampleResponse": {
            "type": "object",
            "properties": {
                "labels": {"type": "object", "additionalProperties": {"type": "string"}},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "application.RangeResponse": {
            "type": "object",
            "properties": {"default": {"type": "boolean"}, "key": {"type": "string"}, "label": {"type": "string"}, "months": {"type": "integer"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Reportboard API",
	Description:      "Identity and Hygiene dashboard metrics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
