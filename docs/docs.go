// Package docs registra el documento OpenAPI (Swagger 2.0) servido en /swagger.
// Escrito a mano a partir de las anotaciones de internal/domain/breeds/handler.go;
// mantener en sync al cambiar rutas o payloads.
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
        "/breeds": {
            "get": {
                "description": "Devuelve todas las razas ordenadas por votos (desc).",
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Listar razas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/breeds.envelope"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/breeds.breedsListData"}
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/breeds.envelope"}
                    }
                }
            },
            "post": {
                "description": "Si la raza existe suma un voto; si no, la crea con 0 votos. Operación atómica. image_url solo se usa al crear.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Votar (o crear) una raza",
                "parameters": [
                    {
                        "description": "Raza e imagen",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/breeds.voteRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/breeds.envelope"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/breeds.breedResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "invalid json / breed requerido",
                        "schema": {"$ref": "#/definitions/breeds.envelope"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Borrar todas las razas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/breeds.envelope"}
                    }
                }
            }
        },
        "/breeds/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Obtener raza por id",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la raza",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/breeds.envelope"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/breeds.breedResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "id no numérico",
                        "schema": {"$ref": "#/definitions/breeds.envelope"}
                    },
                    "404": {
                        "description": "Could not find a breed with that id identifier",
                        "schema": {"$ref": "#/definitions/breeds.envelope"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Borrar raza por id",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la raza",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/breeds.envelope"}
                    },
                    "400": {
                        "description": "id no numérico",
                        "schema": {"$ref": "#/definitions/breeds.envelope"}
                    },
                    "404": {
                        "description": "Could not find a breed with that id identifier",
                        "schema": {"$ref": "#/definitions/breeds.envelope"}
                    }
                }
            }
        }
    },
    "definitions": {
        "breeds.breedResponse": {
            "type": "object",
            "properties": {
                "breed": {"type": "string"},
                "id": {"type": "integer"},
                "image_url": {"type": "string", "x-nullable": true},
                "votes": {"type": "integer"}
            }
        },
        "breeds.breedsListData": {
            "type": "object",
            "properties": {
                "breedsList": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/breeds.breedResponse"}
                }
            }
        },
        "breeds.envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "status": {"type": "string"}
            }
        },
        "breeds.voteRequest": {
            "type": "object",
            "properties": {
                "breed": {"type": "string"},
                "image_url": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo se puede ajustar en runtime (Host, BasePath) antes de servir.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Breed Registry API",
	Description:      "Votación de razas: listar, votar (o crear) y borrar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
