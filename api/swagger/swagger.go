package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "PokeCreche API",
        "description": "Registration, login and shared event calendar",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Student and teacher registration/login"},
        {"name": "Events", "description": "Shared per-day event calendar"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/register/aluno": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing field", "schema": {"$ref": "#/definitions/Fail"}},
                    "409": {"description": "Duplicate", "schema": {"$ref": "#/definitions/Fail"}}
                }
            }
        },
        "/register/docente": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterTeacherRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing field", "schema": {"$ref": "#/definitions/Fail"}},
                    "409": {"description": "Duplicate", "schema": {"$ref": "#/definitions/Fail"}}
                }
            }
        },
        "/login/aluno": {
            "post": {
                "tags": ["Auth"],
                "summary": "Student login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token issued"},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Fail"}}
                }
            }
        },
        "/login/docente": {
            "post": {
                "tags": ["Auth"],
                "summary": "Teacher login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeacherLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token issued"},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Fail"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List month events",
                "parameters": [
                    {"name": "year", "in": "query", "required": true, "type": "integer"},
                    {"name": "month", "in": "query", "required": true, "type": "integer"},
                    {"name": "teacher_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad year/month", "schema": {"$ref": "#/definitions/Fail"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create or overwrite an event",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing field", "schema": {"$ref": "#/definitions/Fail"}},
                    "401": {"description": "No/invalid token", "schema": {"$ref": "#/definitions/Fail"}}
                }
            }
        },
        "/api/events/{id}": {
            "put": {
                "tags": ["Events"],
                "summary": "Replace an event",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing field", "schema": {"$ref": "#/definitions/Fail"}}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Remove an event",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad id", "schema": {"$ref": "#/definitions/Fail"}}
                }
            }
        },
        "/api/events/export": {
            "get": {
                "tags": ["Events"],
                "summary": "Export month events as CSV or PDF",
                "parameters": [
                    {"name": "year", "in": "query", "required": true, "type": "integer"},
                    {"name": "month", "in": "query", "required": true, "type": "integer"},
                    {"name": "teacher_id", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Bad parameters", "schema": {"$ref": "#/definitions/Fail"}}
                }
            }
        }
    },
    "definitions": {
        "RegisterStudentRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "cpf": {"type": "string"},
                "matricula": {"type": "string"}
            },
            "required": ["nome", "cpf", "matricula"]
        },
        "RegisterTeacherRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "identificador": {"type": "string"},
                "senha": {"type": "string"}
            },
            "required": ["nome", "identificador", "senha"]
        },
        "StudentLoginRequest": {
            "type": "object",
            "properties": {
                "matricula": {"type": "string"},
                "cpf": {"type": "string"}
            },
            "required": ["matricula", "cpf"]
        },
        "TeacherLoginRequest": {
            "type": "object",
            "properties": {
                "identificador": {"type": "string"},
                "senha": {"type": "string"}
            },
            "required": ["identificador", "senha"]
        },
        "EventRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2024-05-10"},
                "title": {"type": "string"},
                "color": {"type": "string", "enum": ["green", "red", "none"]}
            },
            "required": ["date", "title", "color"]
        },
        "Fail": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
