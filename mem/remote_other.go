//go:build !windows

package mem

import (
	"errors"

	"github.com/tlancaster/winguard/handle"
)

var errNoRemote = errors.New("mem: remote process access requires windows")

type remote struct{}

// Remote returns a Process whose operations all fail; foreign-process
// access exists only on Windows. Views built on it degrade to their
// documented empty results.
func Remote(handle.Handle) Process {
	return remote{}
}

func (remote) ReadMemory(uintptr, []byte) (int, error) { return 0, errNoRemote }

func (remote) Protect(uintptr, uintptr, uint32) error { return errNoRemote }
