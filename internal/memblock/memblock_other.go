//go:build !unix

package memblock

// Anonymous mappings are unavailable here; fall back to the heap backing.
func mmapAlloc(size int) ([]byte, func() error, error) {
	return heapAlloc(size)
}
