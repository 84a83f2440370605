//go:build unix

package memblock

import (
	"errors"

	"golang.org/x/sys/unix"
)

// mmapAlloc obtains an anonymous private mapping. The pages are
// zero-filled by the kernel and live outside the Go heap.
func mmapAlloc(size int) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, release, nil
}
