// Package signaling implements the message router and the disconnect
// coordinator of the relay.
//
// Inbound frames are parsed into protocol.ClientMessage and dispatched by
// type to a registered Handler, mirroring the join/offer/answer/
// ice-candidate/leave protocol. The router holds no per-client state; the
// connection registry and the room membership table are the only shared
// state, and every read-modify-write against them happens inside their
// own critical sections.
//
// The Coordinator is the single cleanup path for all exit routes. It is
// idempotent, never fails, and performs best-effort user-left fan-out to
// the remaining members of every room the client belonged to.
package signaling
