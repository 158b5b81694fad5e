// Package tasks implements the task use cases. Mutating use cases accept the
// requesting user's ID; a task owned by someone else is reported as not
// found. An empty requester ID skips that check.
package tasks
