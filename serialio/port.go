// Package serialio defines the narrow interface the transaction engine uses
// to talk to a serial-attached device, plus an in-memory double for tests
// and demos that don't have real hardware attached.
package serialio

import (
	"fmt"
	"os"
)

// ErrTimeout is returned by [Port.Read] when no bytes are currently
// available to read. It is not an error condition for the transaction
// engine: it's how a non-blocking poll of the wire reports "nothing yet",
// exactly like a real serial port opened with a short read timeout. It
// wraps os.ErrDeadlineExceeded so callers can use errors.Is against either
// this sentinel or a real *os.File's own deadline-exceeded read error
// without caring which kind of [Port] they're talking to.
var ErrTimeout = fmt.Errorf("serialio: read timed out: %w", os.ErrDeadlineExceeded)

// Port is a duplex byte stream to a serial-attached device. Read must
// return promptly: if the device hasn't sent anything since the last call,
// it returns (0, ErrTimeout) rather than blocking, so the transaction
// engine can poll it from a cooperative event loop.
type Port interface {
	Write(p []byte) (n int, err error)
	Read(p []byte) (n int, err error)
}
