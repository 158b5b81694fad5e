// Package store defines the repository contracts the use cases depend on.
// Implementations live under internal/platform; use cases only ever see
// these interfaces and the sentinel errors declared here.
package store
