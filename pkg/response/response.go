// Package response defines the envelope returned by every handler.
package response

// Response carries either a payload or a human-readable failure message.
// A nil Data with an empty Message is a valid state: the operation
// succeeded but found nothing.
type Response[T any] struct {
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps a payload in a success envelope.
func OK[T any](data T) Response[T] {
	return Response[T]{Data: &data}
}

// Empty returns a success envelope with no payload.
func Empty[T any]() Response[T] {
	return Response[T]{}
}

// Fail returns a failure envelope carrying msg.
func Fail[T any](msg string) Response[T] {
	return Response[T]{Message: msg}
}

// IsSuccess reports whether the response carries no failure message.
func (r Response[T]) IsSuccess() bool {
	return r.Message == ""
}
