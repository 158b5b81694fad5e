// Package users implements the user use cases.
package users
