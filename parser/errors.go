package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is fatal for the current parse attempt. Use errors.As with
	// *MalformedError to find out the phase and the offending byte.
	ErrMalformedInput = errors.New("malformed status line")
	// ErrNotReady is returned by Result() methods called before the sub-parser
	// reached its terminal phase. It's a misuse, not a protocol error.
	ErrNotReady = errors.New("result requested before parsing was completed")
	// ErrUnsupportedVersion means the version is well-formed, but neither HTTP/1.0
	// nor HTTP/1.1.
	ErrUnsupportedVersion = errors.New("HTTP version not supported")
	// ErrReasonTooLong is returned when the reason phrase overflows its buffer.
	ErrReasonTooLong = errors.New("reason phrase is too long")
)

type MalformedError struct {
	Phase Phase
	Byte  byte
}

func newMalformed(phase Phase, c byte) error {
	return &MalformedError{Phase: phase, Byte: c}
}

func (m *MalformedError) Error() string {
	return fmt.Sprintf("malformed status line: unexpected byte %q at %s", m.Byte, m.Phase)
}

func (m *MalformedError) Unwrap() error {
	return ErrMalformedInput
}

type UnsupportedVersionError struct {
	Major, Minor uint8
}

func (u *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("HTTP version not supported: HTTP/%d.%d", u.Major, u.Minor)
}

func (u *UnsupportedVersionError) Unwrap() error {
	return ErrUnsupportedVersion
}
