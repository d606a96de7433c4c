// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler
// annotations.
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
        "/recipes": {
            "get": {
                "description": "Returns id, title and creation time of every recipe. Supports If-None-Match.",
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "List recipes",
                "operationId": "listRecipes",
                "parameters": [
                    {"type": "string", "description": "ETag from a previous response", "name": "If-None-Match", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.RecipeSummary"}}},
                    "304": {"description": "Not Modified"},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Validates the payload and stores the recipe with its ingredients atomically.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "Create a recipe",
                "operationId": "createRecipe",
                "parameters": [
                    {"type": "string", "description": "Idempotency key for safe retries", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Recipe payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RecipeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.RecipeDetailResponse"}},
                    "400": {"description": "Bad request or validation failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/recipes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "Get a recipe with its ingredients",
                "operationId": "getRecipe",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.RecipeDetailResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Recipe not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Overwrites title and description. Ingredients are replaced when the field is present and kept when omitted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "Update a recipe",
                "operationId": "updateRecipe",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true},
                    {"description": "Recipe payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RecipeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.RecipeDetailResponse"}},
                    "400": {"description": "Bad request or validation failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Recipe not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deletes the recipe and its ingredients. Deleting a missing recipe also succeeds.",
                "tags": ["Recipes"],
                "summary": "Delete a recipe",
                "operationId": "deleteRecipe",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/recipes/{id}/ingredients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Ingredients"],
                "summary": "List ingredients of a recipe",
                "operationId": "listIngredients",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.IngredientResponse"}}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Ingredients"],
                "summary": "Add an ingredient to a recipe",
                "operationId": "createIngredient",
                "parameters": [
                    {"type": "string", "description": "Idempotency key for safe retries", "name": "Idempotency-Key", "in": "header"},
                    {"minimum": 1, "type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true},
                    {"description": "Ingredient payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.IngredientRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.IngredientResponse"}},
                    "400": {"description": "Bad request or validation failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Recipe not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/recipes/{id}/ingredients/{ingredientId}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Ingredients"],
                "summary": "Update an ingredient",
                "operationId": "replaceIngredient",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true},
                    {"minimum": 1, "type": "integer", "description": "Ingredient ID", "name": "ingredientId", "in": "path", "required": true},
                    {"description": "Ingredient payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.IngredientRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.IngredientResponse"}},
                    "400": {"description": "Bad request or validation failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Ingredient not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Overwrites title, amount and unit. Omitting amount clears it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Ingredients"],
                "summary": "Update an ingredient",
                "operationId": "updateIngredient",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true},
                    {"minimum": 1, "type": "integer", "description": "Ingredient ID", "name": "ingredientId", "in": "path", "required": true},
                    {"description": "Ingredient payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.IngredientRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.IngredientResponse"}},
                    "400": {"description": "Bad request or validation failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Ingredient not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Ingredients"],
                "summary": "Delete an ingredient",
                "operationId": "deleteIngredient",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true},
                    {"minimum": 1, "type": "integer", "description": "Ingredient ID", "name": "ingredientId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Ingredient not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/units": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Units"],
                "summary": "List measurement units",
                "operationId": "listUnits",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.UnitResponse"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "code": {"type": "string", "example": "not_found"},
                "message": {"type": "string", "example": "recipe not found"},
                "field": {"type": "string", "example": "ingredients[0].unit"}
            }
        },
        "handlers.IngredientRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "Flour"},
                "amount": {"type": "number", "example": 200},
                "unit": {"type": "string", "enum": ["G", "ML", "KG", "L", "TL", "EL", "PRISE", "MESSERSPITZE", "TASSE", "GLAS"], "example": "G"}
            }
        },
        "handlers.IngredientResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "Flour"},
                "amount": {"type": "number", "example": 200},
                "unit": {"type": "string", "example": "G"}
            }
        },
        "handlers.RecipeRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "Pasta Carbonara"},
                "description": {"type": "string", "example": "Italian pasta"},
                "ingredients": {"type": "array", "items": {"$ref": "#/definitions/handlers.IngredientRequest"}}
            }
        },
        "handlers.RecipeSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "Pasta Carbonara"},
                "createdAt": {"type": "string", "example": "2025-01-01T12:00:00Z"}
            }
        },
        "handlers.RecipeDetailResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "Pasta Carbonara"},
                "description": {"type": "string", "example": "Italian pasta"},
                "createdAt": {"type": "string", "example": "2025-01-01T12:00:00Z"},
                "ingredients": {"type": "array", "items": {"$ref": "#/definitions/handlers.IngredientResponse"}}
            }
        },
        "handlers.UnitResponse": {
            "type": "object",
            "properties": {
                "value": {"type": "string", "example": "G"},
                "label": {"type": "string", "example": "Gram"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Recipe Manager API",
	Description:      "CRUD API for recipes and their ingredients.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
