// Package jwt issues and verifies the HS512 access tokens that protect the
// API, and carries verified claims through the request context.
package jwt
