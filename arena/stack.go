package arena

import (
	"fmt"
	"math"
	"sync"
	"unsafe"

	"github.com/AhsanSarwar45/memarena/internal/align"
	"github.com/AhsanSarwar45/memarena/internal/memblock"
)

// maxTotalSize is the largest capacity representable by the uint32 offset
// encoding used for in-band headers and guards.
const maxTotalSize = math.MaxUint32

// inband identifies the bookkeeping record a raw allocation writes into
// the padding immediately before its payload. Handle forms write none.
type inband int

const (
	inbandNone   inband = iota // metadata rides the handle
	inbandScalar               // [start u32], plus [end u32] under StackOrderCheck
	inbandArray                // [start u32][count u32]
)

// Stack is a fixed-capacity stack-discipline arena allocator. See the
// package documentation for the allocation model and the policy system.
type Stack struct {
	mu     sync.Mutex
	region []byte
	base   uintptr
	limit  uintptr

	offset    int // cursor: boundary between used and free space
	totalSize int
	policy    Policy

	reporter  UsageReporter
	id        AllocatorID
	debugName string

	release func() error
	closed  bool

	allocs uint64
	frees  uint64
	peak   int
}

// NewStack constructs a Stack with a fixed capacity of totalSize bytes. A nil
// opts means DefaultOptions. Construction failure (non-positive or
// oversized totalSize, backing acquisition failure) raises a *Fault
// panic: a misconfigured arena is a programmer bug, not a runtime
// condition.
func NewStack(totalSize int, opts *Options) *Stack {
	if opts == nil {
		opts = DefaultOptions()
	}
	s := &Stack{
		totalSize: totalSize,
		policy:    opts.Policy,
		reporter:  opts.Reporter,
		debugName: opts.DebugName,
		id:        AllocatorID(nextID.Add(1)),
	}
	if totalSize <= 0 || uint64(totalSize) > maxTotalSize {
		s.fault(ErrInvalidArgument, 0, 0, fmt.Sprintf("total size %d out of range", totalSize))
	}
	region, release, err := memblock.Alloc(totalSize, opts.Backing == BackingMapped)
	if err != nil {
		s.fault(ErrOutOfMemory, 0, 0,
			fmt.Sprintf("acquiring %s region of %d bytes: %v", opts.Backing, totalSize, err))
	}
	s.region = region
	s.base = uintptr(unsafe.Pointer(&region[0]))
	s.limit = s.base + uintptr(totalSize)
	s.release = release
	return s
}

// Alloc reserves size bytes whose base address is a multiple of alignment
// and returns the payload. An in-band header is written before the
// payload so Free can recover the bookkeeping from the slice alone; use
// AllocBuffer to avoid that overhead. The payload is not zeroed. The
// returned slice's capacity is clipped to size.
func (s *Stack) Alloc(size, alignment int) []byte {
	s.lock()
	defer s.unlock()
	payload, _ := s.reserve(size, alignment, inbandScalar, 0)
	return s.region[payload : payload+size : payload+size]
}

// Free releases p, which must be the slice most recently returned by
// Alloc among still-live allocations. The offset bookkeeping is read back
// from the in-band header.
func (s *Stack) Free(p []byte) {
	if !s.checkTarget(len(p) == 0) {
		return
	}
	payload := s.resolve(uintptr(unsafe.Pointer(&p[0])))
	s.lock()
	defer s.unlock()
	s.checkOpen("free")
	hdr := s.readScalarHeader(payload)
	s.releaseAt(hdr, payload, len(p), inbandScalar)
}

// AllocBuffer is the handle form of Alloc: no in-band header is written,
// the offset metadata rides the returned Buffer instead.
func (s *Stack) AllocBuffer(size, alignment int) Buffer {
	s.lock()
	defer s.unlock()
	payload, hdr := s.reserve(size, alignment, inbandNone, 0)
	return Buffer{data: s.region[payload : payload+size : payload+size], hdr: hdr}
}

// FreeBuffer releases a Buffer obtained from AllocBuffer.
func (s *Stack) FreeBuffer(b Buffer) {
	if !s.checkTarget(b.IsNil()) {
		return
	}
	payload := s.resolve(uintptr(unsafe.Pointer(&b.data[0])))
	s.lock()
	defer s.unlock()
	s.releaseAt(b.hdr, payload, len(b.data), inbandNone)
}

// Reset unconditionally rewinds the cursor to zero, invalidating every
// live allocation without running finalizers. Intended for epoch reuse
// between independent phases; the caller must guarantee nothing from the
// previous epoch is still referenced.
func (s *Stack) Reset() {
	s.lock()
	defer s.unlock()
	s.checkOpen("reset")
	old := s.offset
	s.offset = 0
	s.reportLocked(old, 0)
}

// Close releases the backing region. Every outstanding handle becomes
// invalid and further use of the arena faults with ErrClosed. Close is
// idempotent; a live cursor is reported down to zero before release.
func (s *Stack) Close() error {
	s.lock()
	defer s.unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.offset != 0 {
		old := s.offset
		s.offset = 0
		s.reportLocked(old, 0)
	}
	s.region = nil
	rel := s.release
	s.release = nil
	if rel != nil {
		return rel()
	}
	return nil
}

// UsedSize returns the current cursor: the number of bytes below the
// used/free boundary, padding and bookkeeping included.
func (s *Stack) UsedSize() int {
	s.lock()
	defer s.unlock()
	return s.offset
}

// TotalSize returns the arena capacity.
func (s *Stack) TotalSize() int { return s.totalSize }

// Remaining returns the free bytes above the cursor.
func (s *Stack) Remaining() int {
	s.lock()
	defer s.unlock()
	return s.totalSize - s.offset
}

// DebugName returns the label attached at construction.
func (s *Stack) DebugName() string { return s.debugName }

// ID returns the instance identity used in usage reports and faults.
func (s *Stack) ID() AllocatorID { return s.id }

// Policy returns the check configuration fixed at construction.
func (s *Stack) Policy() Policy { return s.policy }

// Metrics returns a snapshot of the usage counters.
func (s *Stack) Metrics() Metrics {
	s.lock()
	defer s.unlock()
	return Metrics{
		Used:        s.offset,
		Total:       s.totalSize,
		Available:   s.totalSize - s.offset,
		Peak:        s.peak,
		Allocations: s.allocs,
		Frees:       s.frees,
	}
}

// ---------------------------------------------------------------------------
// Internals. reserve and releaseAt are the two cursor mutations everything
// else is built from; both run with the lock held (when ThreadSafe).
// ---------------------------------------------------------------------------

func (s *Stack) lock() {
	if s.policy.Has(ThreadSafe) {
		s.mu.Lock()
	}
}

func (s *Stack) unlock() {
	if s.policy.Has(ThreadSafe) {
		s.mu.Unlock()
	}
}

// reserveLocked wraps reserve for callers that do their payload work
// outside the lock (the typed forms).
func (s *Stack) reserveLocked(size, alignment int, kind inband, count int) (int, header) {
	s.lock()
	defer s.unlock()
	return s.reserve(size, alignment, kind, count)
}

// reserve carves size bytes aligned to alignment out of the free space,
// writes the policy's guard records and the requested in-band record, and
// commits the cursor. Returns the payload offset and the allocation's
// offset range. Caller holds the lock.
func (s *Stack) reserve(size, alignment int, kind inband, count int) (int, header) {
	s.checkOpen("allocate")
	if size <= 0 {
		s.fault(ErrInvalidArgument, s.offset, 0, fmt.Sprintf("size %d", size))
	}
	if !align.IsPowerOfTwo(uintptr(alignment)) {
		s.fault(ErrInvalidArgument, s.offset, 0,
			fmt.Sprintf("alignment %d is not a power of two", alignment))
	}

	headerSize := s.inbandSize(kind)
	totalHeader := headerSize
	if s.policy.Has(BoundsCheck) {
		totalHeader += frontGuardSize
	}

	addr := s.base + uintptr(s.offset)
	var padding int
	if totalHeader == 0 {
		padding = int(align.Padding(addr, uintptr(alignment)))
	} else {
		padding = int(align.PaddingWithHeader(addr, uintptr(alignment), totalHeader))
	}

	payload := s.offset + padding
	end := payload + size
	if s.policy.Has(BoundsCheck) {
		end += backGuardSize
	}
	if s.policy.Has(SizeCheck) && end > s.totalSize {
		s.fault(ErrOutOfMemory, s.offset, 0, fmt.Sprintf(
			"need %d bytes (alignment %d, overhead %d), %d of %d used",
			size, alignment, padding+end-payload-size, s.offset, s.totalSize))
	}

	hdr := header{start: s.offset, end: end}

	if s.policy.Has(BoundsCheck) {
		front := payload - headerSize - frontGuardSize
		putOffset(s.region, front, hdr.start)
		putOffset(s.region, front+offsetEncSize, size)
		putOffset(s.region, payload+size, hdr.start)
	}
	switch kind {
	case inbandScalar:
		putOffset(s.region, payload-headerSize, hdr.start)
		if s.policy.Has(StackOrderCheck) {
			putOffset(s.region, payload-headerSize+offsetEncSize, hdr.end)
		}
	case inbandArray:
		putOffset(s.region, payload-headerSize, hdr.start)
		putOffset(s.region, payload-headerSize+offsetEncSize, count)
	case inbandNone:
	}

	s.offset = end
	s.allocs++
	s.reportLocked(hdr.start, end)

	if traceAlloc {
		logger.Debug("arena alloc",
			"allocator", s.debugName, "id", uint64(s.id),
			"start", hdr.start, "payload", payload,
			"size", size, "alignment", alignment, "end", end)
	}
	return payload, hdr
}

// releaseAt validates the allocation described by hdr and rewinds the
// cursor to its start offset. payload and size locate the guard records.
// Caller holds the lock.
func (s *Stack) releaseAt(hdr header, payload, size int, kind inband) {
	s.checkOpen("free")
	if s.policy.Has(StackOrderCheck) && hdr.end != s.offset {
		s.fault(ErrBadOrder, s.offset, 0, fmt.Sprintf(
			"allocation ends at %d, cursor at %d; free the most recent allocation first",
			hdr.end, s.offset))
	}
	if s.policy.Has(BoundsCheck) {
		front := payload - s.inbandSize(kind) - frontGuardSize
		if got := getOffset(s.region, front); got != hdr.start {
			s.fault(ErrStomp, hdr.start, 0,
				fmt.Sprintf("front guard offset %d, want %d", got, hdr.start))
		}
		if got := getOffset(s.region, front+offsetEncSize); got != size {
			s.fault(ErrStomp, hdr.start, 0,
				fmt.Sprintf("front guard size %d, want %d", got, size))
		}
		if got := getOffset(s.region, payload+size); got != hdr.start {
			s.fault(ErrStomp, hdr.start, 0,
				fmt.Sprintf("back guard offset %d, want %d", got, hdr.start))
		}
	}

	old := s.offset
	s.offset = hdr.start
	s.frees++
	s.reportLocked(old, hdr.start)
}

// inbandSize returns the byte size of an in-band record under the current
// policy. The scalar header stores the end offset only when stack-order
// checking needs it.
func (s *Stack) inbandSize(kind inband) int {
	switch kind {
	case inbandScalar:
		if s.policy.Has(StackOrderCheck) {
			return 2 * offsetEncSize
		}
		return offsetEncSize
	case inbandArray:
		return arrayHeaderSize
	default:
		return 0
	}
}

// readScalarHeader reads back the in-band record written by reserve for
// inbandScalar allocations. Caller holds the lock.
func (s *Stack) readScalarHeader(payload int) header {
	hs := s.inbandSize(inbandScalar)
	hdr := header{start: getOffset(s.region, payload-hs)}
	if s.policy.Has(StackOrderCheck) {
		hdr.end = getOffset(s.region, payload-hs+offsetEncSize)
	}
	return hdr
}

// checkTarget applies the null-check policy to a deallocation target.
// Returns false when the target is nil: the caller treats the free as a
// no-op if NullCheck did not fault first.
func (s *Stack) checkTarget(isNil bool) bool {
	if !isNil {
		return true
	}
	if s.policy.Has(NullCheck) {
		s.fault(ErrNilTarget, s.offset, 0, "nil deallocation target")
	}
	return false
}

// resolve applies the ownership check to a deallocation target address
// and converts it to an arena offset.
func (s *Stack) resolve(addr uintptr) int {
	if s.policy.Has(OwnershipCheck) && (addr < s.base || addr >= s.limit) {
		s.fault(ErrForeignTarget, s.offset, addr, "address outside arena bounds")
	}
	return int(addr - s.base)
}

func (s *Stack) checkOpen(op string) {
	if s.closed {
		s.fault(ErrClosed, s.offset, 0, op)
	}
}

// reportLocked tracks the peak cursor and notifies the reporter of a
// committed cursor change. Caller holds the lock.
func (s *Stack) reportLocked(old, now int) {
	if now > s.peak {
		s.peak = now
	}
	if s.reporter != nil {
		s.reporter.ReportUsageChange(s.id, old, now)
	}
}

// fault logs the diagnostic and panics with a *Fault.
func (s *Stack) fault(err error, offset int, addr uintptr, detail string) {
	f := &Fault{
		Err:       err,
		Allocator: s.debugName,
		ID:        s.id,
		Offset:    offset,
		Addr:      addr,
		Detail:    detail,
	}
	logger.Error("arena fault",
		"allocator", s.debugName, "id", uint64(s.id),
		"err", err, "offset", offset, "detail", detail)
	panic(f)
}
