// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import (
	"fmt"

	"github.com/pkg/errors"
)

// IncompleteError reports that the input was truncated before a
// structurally required field could be read.
type IncompleteError struct {
	Expected  int
	Remaining int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("dot11: incomplete frame: expected at least %d bytes, got %d", e.Expected, e.Remaining)
}

func newIncomplete(expected, remaining int) error {
	return errors.WithStack(&IncompleteError{Expected: expected, Remaining: remaining})
}

// UnhandledFrameSubtypeError reports a structurally valid Frame Control
// whose (type, subtype) has no registered body decoder. The raw payload
// is preserved for forensic logging.
type UnhandledFrameSubtypeError struct {
	FrameControl FrameControl
	Payload      []byte
}

func (e *UnhandledFrameSubtypeError) Error() string {
	return fmt.Sprintf("dot11: unhandled frame subtype: type=%s subtype=%s", e.FrameControl.Type, e.FrameControl.SubType)
}

func newUnhandledFrameSubtype(fc FrameControl, payload []byte) error {
	raw := make([]byte, len(payload))
	copy(raw, payload)
	return errors.WithStack(&UnhandledFrameSubtypeError{FrameControl: fc, Payload: raw})
}

// FailureError reports that a body decoder started but could not make
// sense of its input (e.g. an RSN element with an unsupported version).
// The raw bytes it was working from are preserved for forensic logging.
type FailureError struct {
	Context string
	Payload []byte
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("dot11: decode failure: %s", e.Context)
}

func newFailure(context string, payload []byte) error {
	raw := make([]byte, len(payload))
	copy(raw, payload)
	return errors.WithStack(&FailureError{Context: context, Payload: raw})
}
