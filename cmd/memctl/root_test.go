package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddr(t *testing.T) {
	a, err := parseAddr("0x7FF6a3b20000")
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x7ff6a3b20000), a)

	a, err = parseAddr("4096")
	require.NoError(t, err)
	assert.Equal(t, uintptr(4096), a)

	_, err = parseAddr("zzz")
	assert.Error(t, err)

	_, err = parseAddr("")
	assert.Error(t, err)
}

func TestTargetView_LocalForPidZero(t *testing.T) {
	v, release, err := targetView(0, 0x1000, 64)
	require.NoError(t, err)
	defer release()

	assert.True(t, v.Local())
	assert.Equal(t, uintptr(0x1000), v.Addr())
	assert.Equal(t, uintptr(64), v.Size())
}
