// Package security implements password hashing with bcrypt and access
// tokens as HS256 signed JWTs.
package security
