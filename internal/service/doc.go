// Package service holds the application layer. Each use case is a struct in
// one of the subpackages (tasks, users, auth) with a constructor taking its
// store dependencies and an Execute method. This package defines the
// application-level errors those use cases share.
package service
