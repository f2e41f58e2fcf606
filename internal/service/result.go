// Package service orchestrates validation, policy checks, storage calls and
// result shaping for the user and document operations. Every operation
// returns a Result; unexpected storage failures map to a 500 with a
// human-readable retry message and are never propagated raw.
package service

import "net/http"

// Result is the outcome of one service operation: the HTTP status to answer
// with and the response body.
type Result struct {
	Status int
	Body   any
}

func ok(body any) Result {
	return Result{Status: http.StatusOK, Body: body}
}

func created(body any) Result {
	return Result{Status: http.StatusCreated, Body: body}
}

// message builds a Result whose body is a single message field. The message
// may be a string or a list of per-field validation messages.
func message(status int, msg any) Result {
	return Result{Status: status, Body: map[string]any{"message": msg}}
}

const permissionDenied = "You do not have the permission to perform this action"
