// Package swagger registers the OpenAPI spec served at /swagger/*.
// Maintained by hand alongside the route table in internal/delivery/http.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        }
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "summary": "Service health check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/digital-collection": {
            "get": {
                "summary": "List documents with optional filters and pagination",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "twin_city_id", "in": "query", "type": "integer"},
                    {"name": "location_id", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer", "default": 1},
                    {"name": "limit", "in": "query", "type": "integer", "default": 10}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Create a document with its tag set",
                "consumes": ["application/json", "multipart/form-data"],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failure"},
                    "404": {"description": "Twin city pair not found"}
                }
            }
        },
        "/digital-collection/{id}": {
            "get": {
                "summary": "Get one document",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "summary": "Rewrite a document, replacing its tag set",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "summary": "Delete a document",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/digital-collection/{id}/download": {
            "get": {
                "summary": "Stream the stored file of an internal document",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "File stream"},
                    "400": {"description": "External document"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/twin-cities": {
            "get": {"summary": "List twin city pairs", "responses": {"200": {"description": "OK"}}},
            "post": {"summary": "Create a twin city pair", "responses": {"201": {"description": "Created"}}}
        },
        "/twin-cities/{id}": {
            "get": {
                "summary": "Get one twin city pair",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "summary": "Partially update a twin city pair",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "summary": "Delete a twin city pair (restricted while referenced)",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"},
                    "409": {"description": "Still referenced"}
                }
            }
        },
        "/indicators": {
            "get": {
                "summary": "List indicators",
                "parameters": [{"name": "twin_city_id", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {"summary": "Create an indicator", "responses": {"201": {"description": "Created"}}}
        },
        "/locations": {
            "get": {"summary": "List locations", "responses": {"200": {"description": "OK"}}},
            "post": {
                "summary": "Create a location with an optional image",
                "consumes": ["application/json", "multipart/form-data"],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/galleries": {
            "get": {"summary": "List galleries with their ordered items", "responses": {"200": {"description": "OK"}}},
            "post": {"summary": "Create a gallery", "responses": {"201": {"description": "Created"}}}
        },
        "/collaborations": {
            "get": {
                "summary": "List collaboration submissions (paginated)",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer", "default": 1},
                    {"name": "limit", "in": "query", "type": "integer", "default": 10}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Submit a collaboration with optional attachments",
                "consumes": ["multipart/form-data"],
                "responses": {"201": {"description": "Created"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Twin Cities Platform API",
	Description:      "Backend for the cross-border twin-cities informational platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
