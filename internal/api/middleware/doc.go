// Package middleware holds the HTTP middleware mounted by the server router.
package middleware
