// Package protocol defines the wire-level message types exchanged between
// the signaling server and its clients. All messages are flat JSON objects
// discriminated by a "type" field; session descriptions and ICE candidates
// are carried as raw JSON and relayed without transformation.
package protocol
