package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tlancaster/winguard/mem"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	var (
		pid  uint32
		size uint64
	)
	cmd := &cobra.Command{
		Use:   "dump <address>",
		Short: "Hex-dump a memory region of a target process",
		Long: `The dump command snapshots a region of the target process and prints
it as a canonical hex dump. A region that cannot be read in full
produces no output rather than a truncated dump.

Example:
  memctl dump 0x7ff6a3b20000 --pid 4312 --len 256`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], pid, uintptr(size))
		},
	}
	cmd.Flags().Uint32Var(&pid, "pid", 0, "Target process ID (0 = this process)")
	cmd.Flags().Uint64Var(&size, "len", 64, "Number of bytes to dump")
	return cmd
}

func runDump(addrArg string, pid uint32, size uintptr) error {
	addr, err := parseAddr(addrArg)
	if err != nil {
		return err
	}

	v, closeTarget, err := targetView(pid, addr, size)
	if err != nil {
		return err
	}
	defer closeTarget()

	printVerbose("Snapshotting %d bytes at %#x\n", size, addr)
	snap := v.Snapshot()
	defer snap.Close()
	if !snap.Valid() {
		return fmt.Errorf("region %#x+%d is not readable", addr, size)
	}

	dumper := hex.Dumper(os.Stdout)
	defer dumper.Close()
	for i := uintptr(0); i < snap.Size(); i++ {
		if _, err := dumper.Write([]byte{snap.Byte(i)}); err != nil {
			return err
		}
	}
	return nil
}

// targetView builds a view over the requested process, local for pid 0.
// The returned func releases whatever the view depends on.
func targetView(pid uint32, addr, size uintptr) (mem.View, func(), error) {
	if pid == 0 {
		return mem.NewView(addr, size), func() {}, nil
	}
	p, release, err := openProcess(pid)
	if err != nil {
		return mem.View{}, nil, fmt.Errorf("open pid %d: %w", pid, err)
	}
	return mem.NewRemoteView(addr, size, p), release, nil
}
