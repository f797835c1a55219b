// Package servers holds the HTTP contract: openapi.yaml and the echo server
// bindings generated from it.
package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types,server,spec -package servers -o api.gen.go openapi.yaml
