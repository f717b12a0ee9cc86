package swaggerkit

import "net/http"

// docJSON describes the public routes. Keep in step with the handlers.
const docJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "Driver Paperwork Summary API", "version": "1"},
  "paths": {
    "/api/v1/paperwork/process": {
      "post": {
        "summary": "Summarize a driver trip export",
        "parameters": [
          {"name": "format", "in": "query", "required": false,
           "schema": {"type": "string", "enum": ["xlsx", "csv", "json"], "default": "xlsx"}}
        ],
        "requestBody": {
          "required": true,
          "content": {"multipart/form-data": {"schema": {
            "type": "object", "required": ["file"],
            "properties": {"file": {"type": "string", "format": "binary"}}
          }}}
        },
        "responses": {
          "200": {"description": "Driver_Paperwork_Summary attachment, or the summaries as JSON"},
          "400": {"description": "No file part, Invalid file, or unreadable csv"},
          "413": {"description": "Upload over the configured size limit"}
        }
      }
    },
    "/api/process": {
      "post": {"summary": "Legacy alias of /api/v1/paperwork/process", "deprecated": true,
               "responses": {"200": {"description": "Driver_Paperwork_Summary.xlsx"}}}
    },
    "/api/v1/meta/health": {"get": {"summary": "Health check", "responses": {"200": {"description": "ok"}}}},
    "/api/v1/meta/version": {"get": {"summary": "Build info", "responses": {"200": {"description": "ok"}}}},
    "/api/v1/meta/service": {"get": {"summary": "Service info and uptime", "responses": {"200": {"description": "ok"}}}}
  }
}`

// docReader is swapped in tests
var docReader = func() string { return docJSON }

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}
