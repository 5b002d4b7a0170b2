// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/agent/query": {
            "post": {
                "description": "Classify the query, dispatch it to one agent and record the turn",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Agent"],
                "summary": "Ask the travel assistant",
                "parameters": [
                    {"type": "string", "description": "Caller identity", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Query", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.queryReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.queryResp"}},
                    "400": {"description": "Empty query"},
                    "401": {"description": "Missing identity"},
                    "500": {"description": "Internal error"}
                }
            }
        },
        "/api/v1/agent/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Agent"],
                "summary": "List conversation history",
                "parameters": [
                    {"type": "string", "description": "Caller identity", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Restrict to one trip", "name": "tripId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.historyResp"}},
                    "401": {"description": "Missing identity"},
                    "500": {"description": "Store unavailable"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Agent"],
                "summary": "Clear conversation history",
                "parameters": [
                    {"type": "string", "description": "Caller identity", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Restrict to one trip", "name": "tripId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.clearResp"}},
                    "401": {"description": "Missing identity"},
                    "500": {"description": "Store unavailable"}
                }
            }
        },
        "/health": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Store unreachable"}}}},
        "/live": {"get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
        "http.queryReq": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "tripId": {"type": "string"},
                "context": {"type": "object", "additionalProperties": true}
            }
        },
        "http.queryResp": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "agentUsed": {"type": "string"},
                "confidence": {"type": "number"},
                "error": {"type": "string"},
                "options": {"type": "array", "items": {"type": "object"}}
            }
        },
        "http.turnItem": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "response": {"type": "string"},
                "agentUsed": {"type": "string"},
                "tripId": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "http.historyResp": {
            "type": "object",
            "properties": {
                "history": {"type": "array", "items": {"$ref": "#/definitions/http.turnItem"}}
            }
        },
        "http.clearResp": {
            "type": "object",
            "properties": {
                "deleted": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Travel Assistant API",
	Description:      "Routes travel questions to specialised agents and keeps per-user conversation history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
