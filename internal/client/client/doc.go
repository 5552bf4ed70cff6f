// Package client contains the client-side building blocks of authctl.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface) for the auth backend:
//     Register, Login, Me and Ping.
//  2. A JSON-over-HTTP implementation (see HTTPClient) that maps response
//     status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the sqlite session database and applies embedded goose migrations.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrNotFound, ErrWrongPassword, ErrBadRequest,
// ErrUnauthorized and ErrServer. The server's message is kept in *APIError.
package client
