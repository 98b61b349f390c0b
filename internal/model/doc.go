// Package model holds the request and response value objects of the
// Secrets Manager API.
//
// Every field is optional. Absence is a nil pointer, nil slice or nil map and
// is never replaced by a default. Each type offers getters, setters, fluent
// With builders that return the receiver, structural Equal and HashCode, a
// debug String, and a JSON codec that uses the service wire keys.
//
// Values are not safe for concurrent mutation.
package model
