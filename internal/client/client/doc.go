// Package client contains the Garden client transport.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for
//     accounts (Register/GetSalt/Login/Resume), the garden feed, seed
//     mutations, avatar uploads and a health Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token via an interceptor, transparently
//     refreshes an expired token once, and maps gRPC status codes back to the
//     shared error taxonomy.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the CLI's
//     SQLite session store.
//
// # Error Handling
//
// Status codes map back to sentinel errors callers match with errors.Is:
// InvalidArgument becomes a *common.ValidationError, NotFound
// common.ErrorNotFound, AlreadyExists common.ErrorConflict, Unauthenticated
// ErrUnauthorized, and Unavailable or DeadlineExceeded ErrUnavailable.
package client
