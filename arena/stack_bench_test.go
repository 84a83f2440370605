package arena

import "testing"

// BenchmarkAllocFree measures the raw path under each preset to expose
// the per-check cost.
func BenchmarkAllocFree(b *testing.B) {
	presets := []struct {
		name   string
		policy Policy
	}{
		{"none", PolicyNone},
		{"fast", PolicyFast},
		{"default", PolicyDefault},
		{"debug", PolicyDebug},
		{"threadsafe", PolicyDefault | ThreadSafe},
	}
	for _, tc := range presets {
		b.Run(tc.name, func(b *testing.B) {
			s := NewStack(1*MB, &Options{Policy: tc.policy})
			defer s.Close() //nolint:errcheck

			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				p := s.Alloc(64, 8)
				s.Free(p)
			}
		})
	}
}

func BenchmarkAllocBufferFree(b *testing.B) {
	s := NewStack(1*MB, &Options{Policy: PolicyDefault})
	defer s.Close() //nolint:errcheck

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		buf := s.AllocBuffer(64, 8)
		s.FreeBuffer(buf)
	}
}

func BenchmarkNewDelete(b *testing.B) {
	type payload struct{ a, b, c, d int64 }
	s := NewStack(1*MB, &Options{Policy: PolicyDefault})
	defer s.Close() //nolint:errcheck

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		p := New[payload](s)
		Delete(s, p)
	}
}

func BenchmarkNewArrayDeleteArray(b *testing.B) {
	s := NewStack(1*MB, &Options{Policy: PolicyDefault})
	defer s.Close() //nolint:errcheck

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		p := NewArray[int64](s, 64)
		DeleteArray(s, p)
	}
}

// BenchmarkEpochReset models the intended phase pattern: fill, reset,
// repeat.
func BenchmarkEpochReset(b *testing.B) {
	s := NewStack(1*MB, &Options{Policy: PolicyFast})
	defer s.Close() //nolint:errcheck

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		for range 128 {
			s.AllocBuffer(256, 8)
		}
		s.Reset()
	}
}
