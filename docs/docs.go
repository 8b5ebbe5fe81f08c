// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with `swag init -g cmd/app/main.go` after changing handler annotations.
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
        "/admin/metrics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get metrics summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/bonus": {
            "post": {
                "description": "Stack location, specialty, focus and daily bonuses and convert the total to a resource return rate",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["engine"],
                "summary": "Calculate production bonus",
                "parameters": [
                    {"description": "Bonus inputs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.BonusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/craft": {
            "post": {
                "description": "Price a recipe's materials, resource returns and sale against the current market snapshot",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["craft"],
                "summary": "Estimate craft profit",
                "parameters": [
                    {"description": "Craft parameters", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CraftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/focus": {
            "post": {
                "description": "Apply focus cost efficiency from mastery and specialization levels",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["engine"],
                "summary": "Calculate focus cost",
                "parameters": [
                    {"description": "Focus inputs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FocusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/market/history/{item}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Get price history",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "item", "in": "path", "required": true},
                    {"type": "string", "description": "Comma-separated cities", "name": "cities", "in": "query"},
                    {"type": "integer", "description": "Item quality", "name": "quality", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/market/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Refresh market prices",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/market/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Get market feed status",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/prices": {
            "get": {
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Resolve prices",
                "parameters": [
                    {"type": "string", "description": "Item IDs, repeatable or comma-separated", "name": "item", "in": "query", "required": true},
                    {"type": "string", "description": "City name or auto", "name": "city", "in": "query"},
                    {"type": "string", "description": "buy or sell", "name": "side", "in": "query"},
                    {"type": "integer", "description": "Item quality, 0 for any", "name": "quality", "in": "query"},
                    {"type": "string", "description": "instant to sell into buy orders", "name": "mode", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/recipes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["craft"],
                "summary": "List recipes",
                "parameters": [
                    {"type": "string", "description": "Activity category", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/recipes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["craft"],
                "summary": "Get recipe",
                "parameters": [
                    {"type": "string", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/route": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["route"],
                "summary": "Evaluate trade routes",
                "parameters": [
                    {"description": "Routes and capacity", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RouteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/route/plan": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["route"],
                "summary": "Plan a trade run",
                "parameters": [
                    {"description": "Routes, capacity and budget", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RouteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.LocationRequest": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "city": {"type": "string"},
                "zone_quality": {"type": "integer"},
                "hideout_power": {"type": "integer"}
            }
        },
        "handler.BonusRequest": {
            "type": "object",
            "properties": {
                "location": {"$ref": "#/definitions/handler.LocationRequest"},
                "recipe_id": {"type": "string"},
                "category": {"type": "string"},
                "bonus_city": {"type": "string"},
                "specialty_bonus": {"type": "number"},
                "use_focus": {"type": "boolean"},
                "daily": {"type": "string"}
            }
        },
        "handler.CraftRequest": {
            "type": "object",
            "required": ["recipe_id"],
            "properties": {
                "recipe_id": {"type": "string"},
                "buy_city": {"type": "string"},
                "sell_city": {"type": "string"},
                "location": {"$ref": "#/definitions/handler.LocationRequest"},
                "use_focus": {"type": "boolean"},
                "daily": {"type": "string"},
                "character_id": {"type": "string"},
                "mastery_level": {"type": "integer"},
                "spec_level": {"type": "integer"},
                "quantity": {"type": "integer"},
                "station_fee": {"type": "number"},
                "enchant_multiplier": {"type": "number"},
                "journal_bonus": {"type": "number"},
                "overrides": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "handler.FocusRequest": {
            "type": "object",
            "properties": {
                "recipe_id": {"type": "string"},
                "base_focus": {"type": "number"},
                "category": {"type": "string"},
                "character_id": {"type": "string"},
                "mastery_level": {"type": "integer"},
                "spec_level": {"type": "integer"},
                "mutual_spec_levels": {"type": "integer"},
                "spec_unique_fce": {"type": "number"},
                "spec_mutual_fce": {"type": "number"}
            }
        },
        "handler.RouteRequest": {
            "type": "object",
            "required": ["routes"],
            "properties": {
                "routes": {"type": "array", "items": {"$ref": "#/definitions/route.Route"}},
                "capacity": {"type": "number", "maximum": 1000000},
                "budget": {"type": "number", "maximum": 1000000000000}
            }
        },
        "route.Route": {
            "type": "object",
            "properties": {
                "item_id": {"type": "string"},
                "weight": {"type": "number"},
                "buy_city": {"type": "string"},
                "sell_city": {"type": "string"},
                "instant_sell": {"type": "boolean"},
                "limit": {"type": "integer"},
                "buy_price": {"type": "number"},
                "sell_price": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Craft Economy API",
	Description:      "Market prices, production bonuses, focus costs, craft profit and trade routes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
