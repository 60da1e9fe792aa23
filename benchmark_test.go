package mediainfo

import (
	"bytes"
	"testing"
)

// BenchmarkCallOverhead measures engine calls through the compiled-in
// backend. Run once with CGO_ENABLED=1 and once with CGO_ENABLED=0 to compare
// the cgo and purego adapters.
func BenchmarkCallOverhead(b *testing.B) {
	if !IsAvailable() {
		b.Skipf("%s backend not available", CompiledBackend())
	}

	b.Run("CreateDelete", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			mi, err := New()
			if err != nil {
				b.Fatal(err)
			}
			mi.Delete()
		}
	})

	mi, err := New()
	if err != nil {
		b.Fatal(err)
	}
	defer mi.Delete()

	b.Run("Option", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := mi.Option("Info_Version", ""); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("CountGet", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = mi.CountGet(StreamAudio)
		}
	})

	// Absent field: one encode, one call and one empty decode.
	b.Run("GetAbsent", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = mi.Get(StreamGeneral, 0, "Format", InfoText, InfoName)
		}
	})
}

func BenchmarkWideString(b *testing.B) {
	const param = "BitRate_Mode/String"

	b.Run("Encode", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := NewWideString(param); err != nil {
				b.Fatal(err)
			}
		}
	})

	w, err := NewWideString(param)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("DecodePtr", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := decodeWidePtr((*wchar)(w.Ptr())); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkTypedReader(b *testing.B) {
	fake := newFakeSession()
	fake.add(StreamVideo, map[string]string{"Width": "1920", "Height": "1080", "Duration": "120000"})
	f := newFile(newMediaInfo(fake))
	defer f.Close()
	v, _ := f.Video(0)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := v.FrameSize(); err != nil {
			b.Fatal(err)
		}
		if _, err := v.Duration(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOpenReader(b *testing.B) {
	data := make([]byte, 4<<20)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		mi := newMediaInfo(newFakeSession())
		if _, err := mi.OpenReader(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
		mi.Delete()
	}
}
