// SPDX-License-Identifier: MPL-2.0

// Package errdefs defines the structured error used across the kernel
// packages. An Error carries who should handle it (user vs system), a coarse
// category, and a human-readable message. There is no wrapped cause and no
// backtrace: classification plus message is the whole contract, which keeps
// errors comparable, usable as map keys, and trivially loggable.
package errdefs

// Audience specifies who should handle an Error.
type Audience int

const (
	// User marks errors intended for end-user consumption (presentable text).
	User Audience = iota
	// System marks errors for internal or operational handling (logs, metrics).
	System
)

// String returns the string representation of the Audience.
func (a Audience) String() string {
	switch a {
	case User:
		return "user"
	case System:
		return "system"
	default:
		return "unknown"
	}
}

// Kind is a coarse category for Error values. New kinds are expected to be
// added over time; callers should match the kinds they care about and treat
// the rest uniformly.
type Kind int

const (
	// ExceedsMax indicates a value exceeds the maximum allowed length.
	ExceedsMax Kind = iota
	// BelowMin indicates a value is below the minimum allowed length.
	BelowMin
	// NotFound indicates an entity was not found.
	NotFound
	// InvalidInput indicates the supplied input does not meet the required constraints.
	InvalidInput
	// Unexpected is the fallback category when no other Kind applies.
	Unexpected
	// GatewayError indicates a failure while executing a gateway adapter.
	GatewayError
	// UsecaseError indicates a failure while executing a usecase configuration.
	UsecaseError
	// PermissionDenied indicates the caller lacks a required permission.
	PermissionDenied
	// ProcessingFailure indicates a local (in-memory) data processing failure.
	ProcessingFailure
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case ExceedsMax:
		return "exceeds_max"
	case BelowMin:
		return "below_min"
	case NotFound:
		return "not_found"
	case InvalidInput:
		return "invalid_input"
	case Unexpected:
		return "unexpected"
	case GatewayError:
		return "gateway_error"
	case UsecaseError:
		return "usecase_error"
	case PermissionDenied:
		return "permission_denied"
	case ProcessingFailure:
		return "processing_failure"
	default:
		return "unknown"
	}
}

// Error is a classified, comparable error value.
type Error struct {
	Audience Audience
	Kind     Kind
	Message  string
}

// New constructs an Error with the given audience, kind and message.
func New(audience Audience, kind Kind, message string) Error {
	return Error{Audience: audience, Kind: kind, Message: message}
}

// ForUser constructs an Error intended for end users.
func ForUser(kind Kind, message string) Error {
	return New(User, kind, message)
}

// ForSystem constructs an Error intended for system-level handling.
func ForSystem(kind Kind, message string) Error {
	return New(System, kind, message)
}

// Error returns only the message. The classification fields are for
// matching and logging, not for display.
func (e Error) Error() string { return e.Message }

// IsUser reports whether the error is intended for a user-level audience.
func (e Error) IsUser() bool { return e.Audience == User }

// IsSystem reports whether the error is intended for a system-level audience.
func (e Error) IsSystem() bool { return e.Audience == System }
