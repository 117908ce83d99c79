// Package clients provides the connection registry: the mapping from
// client identifiers to live websocket connections.
//
// The package is organized around two interfaces:
//
// Client represents an individual connected peer. Outbound messages go
// through a bounded per-client buffer drained by a dedicated writer
// goroutine, which is the only writer on the socket. Send never blocks;
// a full buffer or a closed client is reported as an error the caller
// may suppress during best-effort fan-out.
//
// Manager tracks all connected clients. Registration rejects duplicate
// identifiers, unregistration is idempotent, and every mutation is
// immediately visible to concurrent callers.
package clients
