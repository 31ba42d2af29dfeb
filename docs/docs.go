// Package docs holds the API description served at /swagger/doc.json.
// Regenerate it from the handler annotations with go generate.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Reports which providers have credentials configured",
                "produces": ["application/json"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Response"}}}
            }
        },
        "/analyze": {
            "post": {
                "description": "Validates an audio file and derives genre, mood, tempo and key",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "summary": "Analyze an audio upload",
                "parameters": [{"type": "file", "description": "Audio file (MP3, WAV, M4A, AAC)", "name": "audio", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analyze.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/palettes": {
            "get": {
                "description": "Lists every genre in the catalog with its candidate palettes",
                "produces": ["application/json"],
                "summary": "List palettes",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/covers/templates": {
            "post": {
                "description": "Renders one SVG cover per template kind using a genre palette",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Render template covers",
                "parameters": [{"description": "Analysis", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/covers.TemplatesRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/covers.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/covers/ai": {
            "post": {
                "description": "Requests one image per style in parallel; failed styles come back as error variants",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Generate AI covers",
                "parameters": [{"description": "Analysis and styles", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/covers.AIRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/covers.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/covers/edit": {
            "post": {
                "description": "Applies an edit instruction to a cover image",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Edit an AI cover",
                "parameters": [{"description": "Image, instruction and analysis", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/covers.EditRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/covers.EditResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/covers/export": {
            "post": {
                "description": "Returns the SVG sized for download",
                "consumes": ["application/json"],
                "produces": ["image/svg+xml"],
                "summary": "Export a template cover",
                "parameters": [{"description": "SVG markup", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/covers.ExportRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/music": {
            "post": {
                "description": "Composes a track whose genre, mood and tempo follow the analysis",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Generate music",
                "parameters": [{"description": "Analysis and length", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/music.Request"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/orchestral": {
            "post": {
                "description": "Composes an epic orchestral piece and three matching covers concurrently",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Generate orchestral music and covers",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/video": {
            "post": {
                "description": "Animates an image into a vertical 9:16 video and waits for the result",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Generate video",
                "parameters": [{"description": "Image and prompt", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/video.Request"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/video.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "respond.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "sleeve.Analysis": {
            "type": "object",
            "properties": {
                "genre": {"type": "array", "items": {"type": "string"}, "example": ["Electronic", "Dance"]},
                "mood": {"type": "string", "example": "Energetic"},
                "tempo": {"type": "integer", "example": 128},
                "energy": {"type": "number", "example": 0.85},
                "vibe": {"type": "string", "example": "Pulsing & Electric"},
                "key": {"type": "string", "example": "F# minor"},
                "duration": {"type": "string", "example": "3:42"}
            }
        },
        "cover.Variant": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "style": {"type": "string"},
                "description": {"type": "string"},
                "svg": {"type": "string"},
                "palette": {"type": "array", "items": {"type": "string"}},
                "previewUrl": {"type": "string"},
                "type": {"type": "string", "enum": ["template", "ai-generated", "error"]},
                "canEdit": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "health.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "server": {"type": "boolean"},
                "gemini": {"type": "boolean"},
                "elevenlabs": {"type": "boolean"},
                "fal": {"type": "boolean"},
                "musicbrainz": {"type": "boolean"}
            }
        },
        "analyze.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "file": {"type": "object", "properties": {"name": {"type": "string"}, "size": {"type": "integer"}, "sizeLabel": {"type": "string"}}},
                "analysis": {"$ref": "#/definitions/sleeve.Analysis"}
            }
        },
        "covers.TemplatesRequest": {
            "type": "object",
            "properties": {"analysis": {"$ref": "#/definitions/sleeve.Analysis"}}
        },
        "covers.AIRequest": {
            "type": "object",
            "properties": {
                "analysis": {"$ref": "#/definitions/sleeve.Analysis"},
                "styles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "covers.EditRequest": {
            "type": "object",
            "properties": {
                "imageBase64": {"type": "string"},
                "editInstruction": {"type": "string"},
                "analysis": {"$ref": "#/definitions/sleeve.Analysis"}
            }
        },
        "covers.EditResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "editedImage": {"type": "string"}}
        },
        "covers.ExportRequest": {
            "type": "object",
            "properties": {
                "svg": {"type": "string"},
                "filename": {"type": "string"},
                "style": {"type": "string"},
                "size": {"type": "integer"}
            }
        },
        "covers.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "batchId": {"type": "string"},
                "covers": {"type": "array", "items": {"$ref": "#/definitions/cover.Variant"}}
            }
        },
        "music.Request": {
            "type": "object",
            "properties": {
                "analysis": {"$ref": "#/definitions/sleeve.Analysis"},
                "musicLength": {"type": "integer", "example": 30000}
            }
        },
        "video.Request": {
            "type": "object",
            "properties": {
                "imageUrl": {"type": "string"},
                "prompt": {"type": "string"},
                "duration": {"type": "string", "example": "8s"},
                "generateAudio": {"type": "boolean"},
                "resolution": {"type": "string", "example": "720p"}
            }
        },
        "video.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "videoUrl": {"type": "string"},
                "requestId": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sleeve",
	Description:      "Album cover, music and video generation for uploaded tracks",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
