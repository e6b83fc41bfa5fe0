// Package swagger holds the OpenAPI document for the Actas API.
// Regenerate with: swag init -g cmd/actas-server/main.go -o api/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Actas Support",
            "url": "https://github.com/mikepea/actas"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/acta/{id}/pdf": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "informes"
                ],
                "summary": "Meeting minutes PDF",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Meeting not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/actas": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "informes"
                ],
                "summary": "Minutes by project",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Project ID",
                        "name": "proyecto",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/informes.ActasResponse"
                        }
                    }
                }
            }
        },
        "/admin/mail/configs": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List mail configurations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/admin.MailConfigResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Create a mail configuration",
                "parameters": [
                    {
                        "description": "Configuration",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admin.MailConfigRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/admin.MailConfigResponse"
                        }
                    }
                }
            }
        },
        "/admin/mail/configs/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Get a mail configuration",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Config ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/admin.MailConfigResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Update a mail configuration",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Config ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Configuration",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admin.MailConfigRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/admin.MailConfigResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Delete a mail configuration",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Config ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/admin/mail/test": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Send a test mail",
                "parameters": [
                    {
                        "description": "Config and recipient",
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/admin.TestMailRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "409": {
                        "description": "No active configuration",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "502": {
                        "description": "Graph rejected the request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/admin/stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "System statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/admin.StatsResponse"
                        }
                    }
                }
            }
        },
        "/admin/users": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List users",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search username, email or name",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by system role",
                        "name": "role",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/admin.UserResponse"
                            }
                        }
                    }
                }
            }
        },
        "/admin/users/import": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Columns: username,email,first_name,last_name,password. Existing usernames are skipped.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Import users from CSV",
                "parameters": [
                    {
                        "type": "file",
                        "description": "CSV file",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/importacion.Result"
                        }
                    },
                    "400": {
                        "description": "Unreadable CSV",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/admin/users/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Get a user",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/admin.UserResponse"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Update a user",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admin.UpdateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/admin.UserResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Delete a user",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "User has authored content",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Authenticate with username and password to receive a JWT token",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/auth.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/auth.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Logout the current user (client-side token invalidation)",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Logout",
                "responses": {
                    "200": {
                        "description": "Logged out successfully",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get the authenticated user's profile",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Get current user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/auth.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/construccion": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "informes"
                ],
                "summary": "Under construction",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/documentos": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documentos"
                ],
                "summary": "List documents",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Only documents attached to this meeting",
                        "name": "reunion",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/documentos.DocumentoResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documentos"
                ],
                "summary": "Upload a document",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Document",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Display name",
                        "name": "nombre",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/documentos.DocumentoResponse"
                        }
                    },
                    "413": {
                        "description": "File too large",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/documentos/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "documentos"
                ],
                "summary": "Delete a document",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Document ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/documentos/{id}/descarga": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/octet-stream"
                ],
                "tags": [
                    "documentos"
                ],
                "summary": "Download a document",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Document ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/etiquetas": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "etiquetas"
                ],
                "summary": "List tags",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/etiquetas.EtiquetaResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "etiquetas"
                ],
                "summary": "Create tag",
                "parameters": [
                    {
                        "description": "Tag",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/etiquetas.EtiquetaRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/etiquetas.EtiquetaResponse"
                        }
                    },
                    "409": {
                        "description": "Tag already exists",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/etiquetas/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "etiquetas"
                ],
                "summary": "Rename tag",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Tag ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Tag",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/etiquetas.EtiquetaRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/etiquetas.EtiquetaResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "etiquetas"
                ],
                "summary": "Delete tag",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Tag ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/exportar_excel": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "informes"
                ],
                "summary": "Export meetings to Excel",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Project ID",
                        "name": "proyecto",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Front ID",
                        "name": "frente",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Status",
                        "name": "estado",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Responsible user ID",
                        "name": "responsable",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/frentes": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "frentes"
                ],
                "summary": "List fronts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "actividad, tarea or otro",
                        "name": "tipo",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Frente"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "frentes"
                ],
                "summary": "Create a front",
                "parameters": [
                    {
                        "description": "Front",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/frentes.FrenteRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Frente"
                        }
                    },
                    "409": {
                        "description": "A front with this type and name exists",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/frentes/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "frentes"
                ],
                "summary": "Get a front",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Front ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Frente"
                        }
                    },
                    "404": {
                        "description": "Front not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "frentes"
                ],
                "summary": "Update a front",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Front ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Front",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/frentes.FrenteRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Frente"
                        }
                    },
                    "409": {
                        "description": "Name taken or front meetings have child meetings",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "frentes"
                ],
                "summary": "Delete a front",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Front ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Front meetings have child meetings",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/grupos": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grupos"
                ],
                "summary": "List work groups",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/grupos.GrupoResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grupos"
                ],
                "summary": "Create a work group",
                "parameters": [
                    {
                        "description": "Group details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/grupos.GrupoRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/grupos.GrupoResponse"
                        }
                    },
                    "403": {
                        "description": "Admin access required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/grupos/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grupos"
                ],
                "summary": "Get a work group",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Group ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/grupos.GrupoResponse"
                        }
                    },
                    "404": {
                        "description": "Group not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grupos"
                ],
                "summary": "Update a work group",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Group ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Group details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/grupos.GrupoRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/grupos.GrupoResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "grupos"
                ],
                "summary": "Delete a work group",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Group ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Group deleted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/grupos/{id}/miembros": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grupos"
                ],
                "summary": "List group members",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Group ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/auth.UserResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grupos"
                ],
                "summary": "Add group member",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Group ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "User",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/grupos.AddMemberRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/auth.UserResponse"
                        }
                    },
                    "409": {
                        "description": "Already a member",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/grupos/{id}/miembros/{userId}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "grupos"
                ],
                "summary": "Remove group member",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Group ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/intervenciones/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "reuniones"
                ],
                "summary": "Delete an intervention",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Intervention ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Not the author",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/intervenciones/{id}/comentarios": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reuniones"
                ],
                "summary": "Comment on an intervention",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Intervention ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Comment",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/reuniones.ContenidoRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Comentario"
                        }
                    },
                    "404": {
                        "description": "Intervention not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/oidc/callback": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "oidc"
                ],
                "summary": "Keycloak login callback",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/auth.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/oidc/login": {
            "get": {
                "tags": [
                    "oidc"
                ],
                "summary": "Start Keycloak login",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Frontend URL to return to with the token",
                        "name": "return_url",
                        "in": "query"
                    }
                ],
                "responses": {
                    "302": {
                        "description": "Found"
                    }
                }
            }
        },
        "/oidc/logout": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "oidc"
                ],
                "summary": "Keycloak logout URL",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/proyecto/{id}/exportar_pdf": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "informes"
                ],
                "summary": "Project report PDF",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Project not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/proyectos": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Projects ordered by name. q matches name or description, case-insensitively.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos"
                ],
                "summary": "List projects",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search text",
                        "name": "q",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/proyectos.ProyectoResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos"
                ],
                "summary": "Create a project",
                "parameters": [
                    {
                        "description": "Project",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/proyectos.ProyectoRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/proyectos.ProyectoResponse"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/proyectos/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos"
                ],
                "summary": "Get a project",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/proyectos.ProyectoResponse"
                        }
                    },
                    "404": {
                        "description": "Project not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos"
                ],
                "summary": "Update a project",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Project",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/proyectos.ProyectoRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/proyectos.ProyectoResponse"
                        }
                    },
                    "404": {
                        "description": "Project not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "proyectos"
                ],
                "summary": "Delete a project",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Project not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reuniones": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Meetings filtered by proyecto, frente, estado and responsable, grouped by front, 9 per page",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reuniones"
                ],
                "summary": "List meetings",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Project ID",
                        "name": "proyecto",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Front ID",
                        "name": "frente",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Status",
                        "name": "estado",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Responsible user ID",
                        "name": "responsable",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/reuniones.ListResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reuniones"
                ],
                "summary": "Create a meeting",
                "parameters": [
                    {
                        "description": "Meeting",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/reuniones.ReunionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Reunion"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/reuniones/grafico": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Counts per status (statuses present only, ordered by value) and Activas/Vencidas/Sin fecha counts by end date",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "informes"
                ],
                "summary": "Meeting chart data",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Project ID",
                        "name": "proyecto",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Front ID",
                        "name": "frente",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Status",
                        "name": "estado",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Responsible user ID",
                        "name": "responsable",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/informes.GraficoResponse"
                        }
                    }
                }
            }
        },
        "/reuniones/informe": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "informes"
                ],
                "summary": "Meeting report",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Project ID",
                        "name": "proyecto",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Front ID",
                        "name": "frente",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Status",
                        "name": "estado",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Responsible user ID",
                        "name": "responsable",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/informes.InformeResponse"
                        }
                    }
                }
            }
        },
        "/reuniones/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reuniones"
                ],
                "summary": "Get a meeting",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/filtros.ReunionAnotada"
                        }
                    },
                    "404": {
                        "description": "Meeting not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reuniones"
                ],
                "summary": "Update a meeting",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Meeting",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/reuniones.ReunionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Reunion"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Meeting not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "reuniones"
                ],
                "summary": "Delete a meeting",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Meeting has child meetings",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reuniones/{id}/documentos/{documentoId}": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "documentos"
                ],
                "summary": "Attach a document to a meeting",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Document ID",
                        "name": "documentoId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/documentos.DocumentoResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "documentos"
                ],
                "summary": "Detach a document from a meeting",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Document ID",
                        "name": "documentoId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reuniones/{id}/etiquetas": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "etiquetas"
                ],
                "summary": "Meeting tags",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/etiquetas.EtiquetaResponse"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "etiquetas"
                ],
                "summary": "Replace meeting tags",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Tag names",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/etiquetas.SetEtiquetasRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/etiquetas.EtiquetaResponse"
                            }
                        }
                    }
                }
            }
        },
        "/reuniones/{id}/etiquetas/{nombre}": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "etiquetas"
                ],
                "summary": "Add meeting tag",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Tag name",
                        "name": "nombre",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/etiquetas.EtiquetaResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "etiquetas"
                ],
                "summary": "Remove meeting tag",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Tag name",
                        "name": "nombre",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reuniones/{id}/intervenciones": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reuniones"
                ],
                "summary": "List interventions",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Intervencion"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reuniones"
                ],
                "summary": "Post an intervention",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Meeting ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Content",
                        "name": "contenido",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Attachment",
                        "name": "archivo",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Intervencion"
                        }
                    },
                    "404": {
                        "description": "Meeting not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "admin.MailConfigRequest": {
            "type": "object",
            "required": [
                "client_id",
                "email_receive",
                "email_send",
                "tenant_id"
            ],
            "properties": {
                "activo": {
                    "type": "boolean"
                },
                "client_id": {
                    "type": "string"
                },
                "client_secret": {
                    "type": "string"
                },
                "email_receive": {
                    "type": "string"
                },
                "email_send": {
                    "type": "string"
                },
                "grant_type": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "scope": {
                    "type": "string"
                },
                "tenant_id": {
                    "type": "string"
                }
            }
        },
        "admin.MailConfigResponse": {
            "type": "object",
            "properties": {
                "activo": {
                    "type": "boolean"
                },
                "client_id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "email_receive": {
                    "type": "string"
                },
                "email_send": {
                    "type": "string"
                },
                "grant_type": {
                    "type": "string"
                },
                "has_client_secret": {
                    "type": "boolean"
                },
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "scope": {
                    "type": "string"
                },
                "tenant_id": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "admin.StatsResponse": {
            "type": "object",
            "properties": {
                "active_mail_config": {
                    "type": "integer"
                },
                "active_users": {
                    "type": "integer"
                },
                "admin_users": {
                    "type": "integer"
                },
                "mail_configs": {
                    "type": "integer"
                },
                "reuniones_por_estado": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "reuniones_vencidas": {
                    "type": "integer"
                },
                "sso_users": {
                    "type": "integer"
                },
                "total_comentarios": {
                    "type": "integer"
                },
                "total_documentos": {
                    "type": "integer"
                },
                "total_etiquetas": {
                    "type": "integer"
                },
                "total_frentes": {
                    "type": "integer"
                },
                "total_grupos": {
                    "type": "integer"
                },
                "total_intervenciones": {
                    "type": "integer"
                },
                "total_proyectos": {
                    "type": "integer"
                },
                "total_reuniones": {
                    "type": "integer"
                },
                "total_users": {
                    "type": "integer"
                }
            }
        },
        "admin.TestMailRequest": {
            "type": "object",
            "properties": {
                "config_id": {
                    "type": "integer"
                },
                "to": {
                    "type": "string"
                }
            }
        },
        "admin.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "email": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "system_role": {
                    "type": "string"
                }
            }
        },
        "admin.UserResponse": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "grupo_count": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "last_login": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "reunion_count": {
                    "type": "integer"
                },
                "sso": {
                    "type": "boolean"
                },
                "system_role": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "auth.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/auth.UserResponse"
                }
            }
        },
        "auth.LoginRequest": {
            "type": "object",
            "required": [
                "password",
                "username"
            ],
            "properties": {
                "password": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "auth.UserResponse": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "system_role": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "documentos.DocumentoResponse": {
            "type": "object",
            "properties": {
                "archivo": {
                    "type": "string"
                },
                "fecha_subida": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "reunion_count": {
                    "type": "integer"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "etiquetas.EtiquetaRequest": {
            "type": "object",
            "required": [
                "nombre"
            ],
            "properties": {
                "nombre": {
                    "type": "string"
                }
            }
        },
        "etiquetas.EtiquetaResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "reunion_count": {
                    "type": "integer"
                }
            }
        },
        "etiquetas.SetEtiquetasRequest": {
            "type": "object",
            "required": [
                "etiquetas"
            ],
            "properties": {
                "etiquetas": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "filtros.Filtros": {
            "type": "object",
            "properties": {
                "estado": {
                    "type": "string"
                },
                "frente": {
                    "type": "integer"
                },
                "proyecto": {
                    "type": "integer"
                },
                "responsable": {
                    "type": "integer"
                }
            }
        },
        "filtros.Grupo": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "frente": {
                    "type": "string"
                },
                "reuniones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/filtros.ReunionAnotada"
                    }
                }
            }
        },
        "filtros.Pagina": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "pages": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "filtros.ReunionAnotada": {
            "type": "object",
            "properties": {
                "children": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Reunion"
                    }
                },
                "created_at": {
                    "type": "string"
                },
                "days_remaining": {
                    "type": "integer"
                },
                "descripcion": {
                    "type": "string"
                },
                "documentos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Documento"
                    }
                },
                "estado": {
                    "type": "string"
                },
                "etiquetas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Etiqueta"
                    }
                },
                "fecha": {
                    "type": "string"
                },
                "fecha_finalizacion": {
                    "type": "string"
                },
                "frente": {
                    "$ref": "#/definitions/models.Frente"
                },
                "frente_id": {
                    "type": "integer"
                },
                "grupo_trabajo": {
                    "$ref": "#/definitions/models.GrupoTrabajo"
                },
                "grupo_trabajo_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "intervenciones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Intervencion"
                    }
                },
                "overdue": {
                    "type": "boolean"
                },
                "parent": {
                    "$ref": "#/definitions/models.Reunion"
                },
                "parent_id": {
                    "type": "integer"
                },
                "proyecto": {
                    "$ref": "#/definitions/models.Proyecto"
                },
                "proyecto_id": {
                    "type": "integer"
                },
                "responsables": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.User"
                    }
                },
                "titulo": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "frentes.FrenteRequest": {
            "type": "object",
            "required": [
                "nombre"
            ],
            "properties": {
                "descripcion": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                }
            }
        },
        "grupos.AddMemberRequest": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "integer"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "grupos.GrupoRequest": {
            "type": "object",
            "required": [
                "nombre"
            ],
            "properties": {
                "descripcion": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                }
            }
        },
        "grupos.GrupoResponse": {
            "type": "object",
            "properties": {
                "descripcion": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "member_count": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "reunion_count": {
                    "type": "integer"
                }
            }
        },
        "importacion.Result": {
            "type": "object",
            "properties": {
                "created": {
                    "type": "integer"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "skipped": {
                    "type": "integer"
                }
            }
        },
        "informes.ActasResponse": {
            "type": "object",
            "properties": {
                "proyecto_seleccionado": {
                    "type": "integer"
                },
                "proyectos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Proyecto"
                    }
                },
                "reuniones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Reunion"
                    }
                }
            }
        },
        "informes.GraficoResponse": {
            "type": "object",
            "properties": {
                "cantidades": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "estados": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "filtros": {
                    "$ref": "#/definitions/filtros.Filtros"
                },
                "total_reuniones": {
                    "type": "integer"
                },
                "vencido_counts": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "vencido_labels": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "informes.InformeResponse": {
            "type": "object",
            "properties": {
                "estados": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "filtros": {
                    "$ref": "#/definitions/filtros.Filtros"
                },
                "frentes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Frente"
                    }
                },
                "proyectos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Proyecto"
                    }
                },
                "reuniones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/filtros.ReunionAnotada"
                    }
                }
            }
        },
        "models.Comentario": {
            "type": "object",
            "properties": {
                "autor": {
                    "$ref": "#/definitions/models.User"
                },
                "autor_id": {
                    "type": "integer"
                },
                "contenido": {
                    "type": "string"
                },
                "fecha_creacion": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "intervencion_id": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Documento": {
            "type": "object",
            "properties": {
                "archivo": {
                    "type": "string"
                },
                "fecha_subida": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "reuniones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Reunion"
                    }
                }
            }
        },
        "models.Etiqueta": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "reuniones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Reunion"
                    }
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Frente": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.GrupoTrabajo": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "usuarios": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.User"
                    }
                }
            }
        },
        "models.Intervencion": {
            "type": "object",
            "properties": {
                "autor": {
                    "$ref": "#/definitions/models.User"
                },
                "autor_id": {
                    "type": "integer"
                },
                "comentarios": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Comentario"
                    }
                },
                "contenido": {
                    "type": "string"
                },
                "documentos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.IntervencionDocumento"
                    }
                },
                "fecha_creacion": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "reunion_id": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.IntervencionDocumento": {
            "type": "object",
            "properties": {
                "archivo": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "intervencion_id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                }
            }
        },
        "models.Proyecto": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "ejecucion_financiera": {
                    "type": "number"
                },
                "fecha_fin": {
                    "type": "string"
                },
                "fecha_inicio": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "intervenciones_rmbc": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "porcentaje_ejecucion": {
                    "type": "number"
                },
                "reuniones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Reunion"
                    }
                },
                "total_intervenciones": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Reunion": {
            "type": "object",
            "properties": {
                "children": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Reunion"
                    }
                },
                "created_at": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "documentos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Documento"
                    }
                },
                "estado": {
                    "type": "string"
                },
                "etiquetas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Etiqueta"
                    }
                },
                "fecha": {
                    "type": "string"
                },
                "fecha_finalizacion": {
                    "type": "string"
                },
                "frente": {
                    "$ref": "#/definitions/models.Frente"
                },
                "frente_id": {
                    "type": "integer"
                },
                "grupo_trabajo": {
                    "$ref": "#/definitions/models.GrupoTrabajo"
                },
                "grupo_trabajo_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "intervenciones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Intervencion"
                    }
                },
                "parent": {
                    "$ref": "#/definitions/models.Reunion"
                },
                "parent_id": {
                    "type": "integer"
                },
                "proyecto": {
                    "$ref": "#/definitions/models.Proyecto"
                },
                "proyecto_id": {
                    "type": "integer"
                },
                "responsables": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.User"
                    }
                },
                "titulo": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "grupos_trabajo": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.GrupoTrabajo"
                    }
                },
                "id": {
                    "type": "integer"
                },
                "last_login": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "system_role": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "proyectos.ProyectoRequest": {
            "type": "object",
            "required": [
                "nombre"
            ],
            "properties": {
                "descripcion": {
                    "type": "string"
                },
                "ejecucion_financiera": {
                    "type": "number"
                },
                "fecha_fin": {
                    "type": "string"
                },
                "fecha_inicio": {
                    "type": "string"
                },
                "intervenciones_rmbc": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "porcentaje_ejecucion": {
                    "type": "number"
                },
                "total_intervenciones": {
                    "type": "integer"
                }
            }
        },
        "proyectos.ProyectoResponse": {
            "type": "object",
            "properties": {
                "avance_calculado": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "ejecucion_financiera": {
                    "type": "number"
                },
                "fecha_fin": {
                    "type": "string"
                },
                "fecha_inicio": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "intervenciones_rmbc": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "porcentaje_ejecucion": {
                    "type": "number"
                },
                "reunion_count": {
                    "type": "integer"
                },
                "reuniones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Reunion"
                    }
                },
                "total_intervenciones": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "reuniones.ContenidoRequest": {
            "type": "object",
            "required": [
                "contenido"
            ],
            "properties": {
                "contenido": {
                    "type": "string"
                }
            }
        },
        "reuniones.ListResponse": {
            "type": "object",
            "properties": {
                "filtros": {
                    "$ref": "#/definitions/filtros.Filtros"
                },
                "grupos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/filtros.Grupo"
                    }
                },
                "pagina": {
                    "$ref": "#/definitions/filtros.Pagina"
                }
            }
        },
        "reuniones.ReunionRequest": {
            "type": "object",
            "required": [
                "titulo"
            ],
            "properties": {
                "descripcion": {
                    "type": "string"
                },
                "documento_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "estado": {
                    "type": "string"
                },
                "etiqueta_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "fecha": {
                    "type": "string"
                },
                "fecha_finalizacion": {
                    "type": "string"
                },
                "frente_id": {
                    "type": "integer"
                },
                "grupo_trabajo_id": {
                    "type": "integer"
                },
                "parent_id": {
                    "type": "integer"
                },
                "proyecto_id": {
                    "type": "integer"
                },
                "responsable_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "titulo": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token. Format: \"Bearer {token}\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Actas API",
	Description:      "Meeting minutes, projects and follow-up for construction works.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
