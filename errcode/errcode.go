package errcode

import "errors"

// Code is a stable, machine-readable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Registry
	UnknownBoard   Code = "unknown_board"
	DuplicateBoard Code = "duplicate_board"

	// Manifest contents
	InvalidManifest   Code = "invalid_manifest"
	UnknownFeature    Code = "unknown_feature"
	DuplicateFeature  Code = "duplicate_feature"
	UnknownDependency Code = "unknown_dependency"
	UnknownPin        Code = "unknown_pin"
	DuplicatePin      Code = "duplicate_pin"
	InvalidGPIO       Code = "invalid_gpio"
	InvalidPinMux     Code = "invalid_pin_mux"
	UnknownBus        Code = "unknown_bus"
	PinInUse          Code = "pin_in_use"

	// Resolution
	InvalidRequirement Code = "invalid_requirement"
	NoMatchingVersion  Code = "no_matching_version"
	VersionConflict    Code = "version_conflict"
	FeatureCycle       Code = "feature_cycle"

	// Tooling
	NotFound      Code = "not_found"
	InvalidConfig Code = "invalid_config"

	Unsupported Code = "unsupported"
	Error       Code = "error" // generic fallback
)

// E keeps a code together with the failing operation and an optional cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.UnknownFeature) match a wrapped *E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New builds an *E without a cause.
func New(c Code, op, msg string) *E { return &E{C: c, Op: op, Msg: msg} }

// Wrap builds an *E around err. A nil err yields nil.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Err: err}
}

// Of extracts a Code from an error chain, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Error
}
