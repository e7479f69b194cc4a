// Package pkgopenapi loads the service's OpenAPI document with kin-openapi,
// serves it as JSON, and builds a request validator middleware from it.
package pkgopenapi
