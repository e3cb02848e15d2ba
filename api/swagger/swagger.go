package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "HostelOps API",
        "description": "Hostel administration API: complaints, leave requests, announcements and admin stats",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Auth", "description": "Registration, login and profile"},
        {"name": "Complaints", "description": "Student complaints and admin triage"},
        {"name": "Leaves", "description": "Leave requests and approvals"},
        {"name": "Announcements", "description": "Hostel-wide announcements"},
        {"name": "Stats", "description": "Dashboard statistics and reports"}
    ],
    "paths": {
        "/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and obtain a JWT",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/profile": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current user profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/complaint": {
            "post": {
                "tags": ["Complaints"],
                "summary": "File a complaint",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateComplaintRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/complaints": {
            "get": {
                "tags": ["Complaints"],
                "summary": "List complaints",
                "description": "Students see their own complaints; admins see all.",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/complaints/filter": {
            "get": {
                "tags": ["Complaints"],
                "summary": "Filter complaints",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "priority", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Complaint"}}}
                }
            }
        },
        "/complaint/{id}": {
            "put": {
                "tags": ["Complaints"],
                "summary": "Update a complaint (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateComplaintRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Admin only", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/leave": {
            "post": {
                "tags": ["Leaves"],
                "summary": "Submit a leave request",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateLeaveRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/leaves": {
            "get": {
                "tags": ["Leaves"],
                "summary": "List leave requests",
                "description": "Students see their own requests; admins see all.",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/leave/{id}": {
            "put": {
                "tags": ["Leaves"],
                "summary": "Approve or reject a leave request (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateLeaveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Admin only", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/announcement": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Publish an announcement (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAnnouncementRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Admin only", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/announcements": {
            "get": {
                "tags": ["Announcements"],
                "summary": "List active announcements",
                "description": "Returns the 20 most recent unexpired announcements.",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/announcement/{id}": {
            "delete": {
                "tags": ["Announcements"],
                "summary": "Delete an announcement (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["Stats"],
                "summary": "Dashboard statistics (admin)",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StatsResponse"}},
                    "403": {"description": "Admin only", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/reports/complaints": {
            "get": {
                "tags": ["Stats"],
                "summary": "Export complaints as CSV or PDF (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "admin"]},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "Complaint": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "title": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "roomNumber": {"type": "string"},
                "priority": {"type": "string", "enum": ["low", "medium", "high", "urgent"]},
                "status": {"type": "string", "enum": ["pending", "in_progress", "resolved", "closed", "rejected"]},
                "assignedTo": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "adminNotes": {"type": "string"},
                "resolvedAt": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "admin"]}
            },
            "required": ["name", "email", "password"]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "CreateComplaintRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "roomNumber": {"type": "string"},
                "priority": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["title", "category", "description"]
        },
        "UpdateComplaintRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "priority": {"type": "string"},
                "assignedTo": {"type": "string"},
                "adminNotes": {"type": "string"}
            }
        },
        "CreateLeaveRequest": {
            "type": "object",
            "properties": {
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "reason": {"type": "string"},
                "destination": {"type": "string"},
                "contactNumber": {"type": "string"},
                "emergencyContact": {"type": "string"}
            },
            "required": ["startDate", "endDate", "reason"]
        },
        "UpdateLeaveRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["pending", "approved", "rejected"]},
                "adminRemarks": {"type": "string"}
            },
            "required": ["status"]
        },
        "CreateAnnouncementRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "message": {"type": "string"},
                "category": {"type": "string", "enum": ["general", "urgent", "event", "maintenance"]},
                "targetAudience": {"type": "string", "enum": ["all", "students", "staff"]},
                "expiresAt": {"type": "string"}
            },
            "required": ["title", "message"]
        },
        "StatsResponse": {
            "type": "object",
            "properties": {
                "complaints": {
                    "type": "object",
                    "properties": {
                        "total": {"type": "integer"},
                        "pending": {"type": "integer"},
                        "in_progress": {"type": "integer"},
                        "resolved": {"type": "integer"},
                        "urgent": {"type": "integer"},
                        "high": {"type": "integer"}
                    }
                },
                "students": {"type": "integer"},
                "leaves": {
                    "type": "object",
                    "properties": {
                        "total": {"type": "integer"},
                        "pending": {"type": "integer"}
                    }
                },
                "categoryBreakdown": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "category": {"type": "string"},
                            "count": {"type": "integer"}
                        }
                    }
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
