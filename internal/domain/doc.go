// Package domain contains the core business entities, value objects, and
// domain logic of the task service. Value objects validate themselves at
// construction: a value returned by its constructor is valid, while zero
// values (and the EmptyTaskID/EmptyUserID sentinels) are not.
//
// Errors raised anywhere in the application share the *Error type defined
// here; its Kind tells the transport layer which family the error belongs to.
package domain
