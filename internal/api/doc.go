// Package api contains the HTTP handlers for the auth, task and user
// endpoints, their request and response models, and the single mapping from
// errors to HTTP status codes.
package api
