// Package client contains the client-side API contract for calckeeper.
//
// # Overview
//
// The Client interface covers the whole HTTP API: Register/Login/Logout,
// Ping and BREAD over calculations. HTTPClient implements it on top of
// netx.DoJSON and keeps the access token obtained by Login.
//
// # Error Handling
//
// Transport failures match ErrUnavailable. Non-2xx responses become an
// *APIError whose message is the server's detail and which matches one of
// ErrBadRequest, ErrUnauthorized, ErrNotFound or ErrInvalidInput with
// errors.Is.
package client
