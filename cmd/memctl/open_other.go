//go:build !windows

package main

import (
	"errors"

	"github.com/tlancaster/winguard/mem"
)

func openProcess(pid uint32) (mem.Process, func(), error) {
	return nil, nil, errors.New("opening a target process requires windows")
}
