// Package errors provides standardized error definitions for the signaling
// server. All sentinel errors are centralized here so callers can match on
// them with errors.Is regardless of which package produced them.
package errors
