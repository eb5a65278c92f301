// Package v1 exposes the bookshelf HTTP API: routing, request binding,
// response shapes and the middleware chain around them.
package v1

// BasePath prefixes the book and author routes
const BasePath = "/api"

// Version of the HTTP API
const Version = "v1"
