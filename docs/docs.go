// Package docs holds the OpenAPI description served at /swagger.
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
        "/verify": {
            "post": {
                "tags": [
                    "verification"
                ],
                "summary": "Verify a marks memo",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Verification verdict",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Missing file or unsupported type",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "413": {
                        "description": "File too large",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "type": "file",
                        "description": "Marks memo (PDF, JPG or PNG)",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ]
            }
        },
        "/students": {
            "post": {
                "tags": [
                    "students"
                ],
                "summary": "Register a student",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Student registered",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "409": {
                        "description": "Email already registered",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.RegisterStudentRequest"
                        }
                    }
                ]
            },
            "get": {
                "tags": [
                    "students"
                ],
                "summary": "List students",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "default": 0,
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "name": "limit",
                        "in": "query"
                    }
                ]
            }
        },
        "/students/export": {
            "get": {
                "tags": [
                    "students"
                ],
                "summary": "Export students",
                "produces": [
                    "text/csv",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "responses": {
                    "200": {
                        "description": "Student export",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "default": "csv",
                        "enum": [
                            "csv",
                            "xlsx"
                        ],
                        "name": "format",
                        "in": "query"
                    }
                ]
            }
        },
        "/students/{id}": {
            "get": {
                "tags": [
                    "students"
                ],
                "summary": "Get a student",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Student profile",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Student not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Student ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "patch": {
                "tags": [
                    "students"
                ],
                "summary": "Update a student profile",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Updated student",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Student not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Student ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.UpdateStudentRequest"
                        }
                    }
                ]
            }
        },
        "/students/{id}/marks-memo": {
            "post": {
                "tags": [
                    "students"
                ],
                "summary": "Upload and verify a marks memo",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Memo recorded with verdict",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Missing file or unsupported type",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Student not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "413": {
                        "description": "File too large",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "500": {
                        "description": "Upload failed",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Student ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Marks memo (PDF, JPG or PNG)",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ]
            }
        },
        "/donors": {
            "post": {
                "tags": [
                    "donors"
                ],
                "summary": "Register a donor",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Donor registered",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "409": {
                        "description": "Email already registered",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.RegisterDonorRequest"
                        }
                    }
                ]
            }
        },
        "/donors/{id}": {
            "get": {
                "tags": [
                    "donors"
                ],
                "summary": "Get a donor",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Donor",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Donor not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Donor ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/donors/{id}/preferences": {
            "put": {
                "tags": [
                    "donors"
                ],
                "summary": "Save donor preferences",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Saved preferences",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Invalid preferences",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "404": {
                        "description": "Donor not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Donor ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SetPreferencesRequest"
                        }
                    }
                ]
            },
            "get": {
                "tags": [
                    "donors"
                ],
                "summary": "Get donor preferences",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Preferences",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Donor not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "409": {
                        "description": "Preferences not set",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Donor ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/donors/{id}/matches": {
            "get": {
                "tags": [
                    "donors"
                ],
                "summary": "List matching students",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Matching students",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "404": {
                        "description": "Donor not found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    },
                    "409": {
                        "description": "Preferences not set",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Donor ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/session/role": {
            "put": {
                "tags": [
                    "session"
                ],
                "summary": "Choose a role",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Role saved",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    },
                    "400": {
                        "description": "Invalid role",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponseBody"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "X-Session-ID",
                        "in": "header"
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SetRoleRequest"
                        }
                    }
                ]
            },
            "get": {
                "tags": [
                    "session"
                ],
                "summary": "Get the current role",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "X-Session-ID",
                        "in": "header"
                    }
                ]
            },
            "delete": {
                "tags": [
                    "session"
                ],
                "summary": "Leave the current role",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "X-Session-ID",
                        "in": "header"
                    }
                ]
            }
        }
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "NOT_FOUND"
                },
                "message": {
                    "type": "string",
                    "example": "resource not found"
                }
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": false
                },
                "error": {
                    "$ref": "#/definitions/handler.APIError"
                }
            }
        },
        "handler.PagMeta": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                }
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "data": {},
                "meta": {
                    "$ref": "#/definitions/handler.PagMeta"
                }
            }
        },
        "handler.RegisterStudentRequest": {
            "type": "object",
            "properties": {
                "full_name": {
                    "type": "string",
                    "example": "Harika R."
                },
                "email": {
                    "type": "string",
                    "example": "harika@example.com"
                },
                "phone": {
                    "type": "string",
                    "example": "9876543210"
                },
                "course": {
                    "type": "string",
                    "example": "B.Tech 2nd Year"
                },
                "income": {
                    "type": "number",
                    "example": 40000
                },
                "location": {
                    "type": "string",
                    "example": "Hyderabad, TS"
                }
            },
            "required": [
                "full_name",
                "email",
                "phone",
                "course",
                "location"
            ]
        },
        "handler.UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "full_name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "course": {
                    "type": "string"
                },
                "income": {
                    "type": "number"
                },
                "location": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                },
                "photo_url": {
                    "type": "string"
                }
            }
        },
        "handler.RegisterDonorRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Anita Rao"
                },
                "email": {
                    "type": "string",
                    "example": "anita@example.com"
                }
            },
            "required": [
                "name",
                "email"
            ]
        },
        "handler.SetPreferencesRequest": {
            "type": "object",
            "properties": {
                "budget": {
                    "type": "number",
                    "example": 50000
                },
                "gender_pref": {
                    "type": "string",
                    "example": "Female",
                    "enum": [
                        "Any",
                        "Female",
                        "Male"
                    ]
                },
                "family_bg_pref": {
                    "type": "string",
                    "example": "Single Parent",
                    "enum": [
                        "Any",
                        "Very Poor",
                        "Single Parent",
                        "Orphan"
                    ]
                },
                "study_level_pref": {
                    "type": "string",
                    "example": "Engineering",
                    "enum": [
                        "Any",
                        "School",
                        "Intermediate",
                        "Degree",
                        "Engineering"
                    ]
                },
                "location_pref": {
                    "type": "string",
                    "example": "Hyderabad"
                }
            },
            "required": [
                "gender_pref",
                "family_bg_pref",
                "study_level_pref"
            ]
        },
        "handler.SetRoleRequest": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string",
                    "example": "donor",
                    "enum": [
                        "student",
                        "donor"
                    ]
                }
            },
            "required": [
                "role"
            ]
        },
        "handler.RoleResponse": {
            "type": "object",
            "properties": {
                "session_id": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "example": "student"
                }
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "ok"
                },
                "verifier": {
                    "type": "string",
                    "example": "gemini"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "domain.VerificationResult": {
            "type": "object",
            "properties": {
                "isValid": {
                    "type": "boolean"
                },
                "percentage": {
                    "type": "number",
                    "example": 86.5
                },
                "studentName": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
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
	Title:            "ScholarLink API",
	Description:      "Connects students seeking sponsorship with donors and verifies uploaded marks memos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
