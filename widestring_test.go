package mediainfo

import (
	"errors"
	"slices"
	"strconv"
	"testing"
	"unsafe"
)

var roundTripStrings = []string{
	"",
	"Format",
	"BitRate_Mode/String",
	"Stéréo",
	"日本語のタイトル",
	"emoji \U0001F600 and \U0010FFFF",
	"Bits-(Pixel*Frame)",
}

func TestEncodeUTF16(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []uint16
	}{
		{"empty", "", []uint16{0}},
		{"ascii", "abc", []uint16{'a', 'b', 'c', 0}},
		{"latin1", "é", []uint16{0xE9, 0}},
		{"bmp", "€", []uint16{0x20AC, 0}},
		{"surrogate pair", "\U0001F600", []uint16{0xD83D, 0xDE00, 0}},
		{"max scalar", "\U0010FFFF", []uint16{0xDBFF, 0xDFFF, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeUTF16(tt.in)
			if err != nil {
				t.Fatalf("EncodeUTF16(%q) error = %v", tt.in, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("EncodeUTF16(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeUTF32(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int32
	}{
		{"empty", "", []int32{0}},
		{"ascii", "abc", []int32{'a', 'b', 'c', 0}},
		{"latin1", "é", []int32{0xE9, 0}},
		{"astral", "\U0001F600", []int32{0x1F600, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeUTF32(tt.in)
			if err != nil {
				t.Fatalf("EncodeUTF32(%q) error = %v", tt.in, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("EncodeUTF32(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeRejectsUnencodable(t *testing.T) {
	inputs := []string{"a\x00b", "\x00", "trailing\x00", "\xff\xfe"}

	encoders := map[string]func(string) error{
		"utf16": func(s string) error { _, err := EncodeUTF16(s); return err },
		"utf32": func(s string) error { _, err := EncodeUTF32(s); return err },
		"utf8":  func(s string) error { _, err := EncodeUTF8(s); return err },
		"wide":  func(s string) error { _, err := NewWideString(s); return err },
	}

	for name, enc := range encoders {
		for _, in := range inputs {
			t.Run(name+"/"+strconv.Quote(in), func(t *testing.T) {
				err := enc(in)
				if !errors.Is(err, ErrStringEncode) {
					t.Errorf("encode(%q) error = %v, want ErrStringEncode", in, err)
				}
				if KindOf(err) != KindEncode {
					t.Errorf("KindOf() = %v, want %v", KindOf(err), KindEncode)
				}
			})
		}
	}
}

func TestDecodeUTF16Invalid(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
	}{
		{"lone high", []uint16{0xD800, 'A', 0}},
		{"lone low", []uint16{'A', 0xDC00, 0}},
		{"high at end", []uint16{'A', 0xD83D}},
		{"high before terminator", []uint16{0xD83D, 0}},
		{"reversed pair", []uint16{0xDE00, 0xD83D, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeUTF16(tt.units); !errors.Is(err, ErrStringDecode) {
				t.Errorf("DecodeUTF16(%#v) error = %v, want ErrStringDecode", tt.units, err)
			}
		})
	}
}

func TestDecodeUTF32Invalid(t *testing.T) {
	tests := []struct {
		name  string
		units []int32
	}{
		{"above max", []int32{0x110000, 0}},
		{"negative", []int32{-1, 0}},
		{"surrogate", []int32{'a', 0xD800, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeUTF32(tt.units); !errors.Is(err, ErrStringDecode) {
				t.Errorf("DecodeUTF32(%#v) error = %v, want ErrStringDecode", tt.units, err)
			}
		})
	}
}

func TestDecodeStopsAtTerminator(t *testing.T) {
	s16, err := DecodeUTF16([]uint16{'o', 'k', 0, 0xD800})
	if err != nil || s16 != "ok" {
		t.Errorf("DecodeUTF16() = %q, %v; want \"ok\", nil", s16, err)
	}
	s32, err := DecodeUTF32([]int32{'o', 'k', 0, -1})
	if err != nil || s32 != "ok" {
		t.Errorf("DecodeUTF32() = %q, %v; want \"ok\", nil", s32, err)
	}
	s8, err := DecodeUTF8([]byte{'o', 'k', 0, 0xff})
	if err != nil || s8 != "ok" {
		t.Errorf("DecodeUTF8() = %q, %v; want \"ok\", nil", s8, err)
	}
}

func TestDecodeUTF8Invalid(t *testing.T) {
	if _, err := DecodeUTF8([]byte{0xC3, 0x28, 0}); !errors.Is(err, ErrStringDecode) {
		t.Errorf("DecodeUTF8() error = %v, want ErrStringDecode", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range roundTripStrings {
		t.Run(s, func(t *testing.T) {
			u16, err := EncodeUTF16(s)
			if err != nil {
				t.Fatal(err)
			}
			if got, err := DecodeUTF16(u16); err != nil || got != s {
				t.Errorf("utf16 round trip = %q, %v; want %q", got, err, s)
			}

			u32, err := EncodeUTF32(s)
			if err != nil {
				t.Fatal(err)
			}
			if got, err := DecodeUTF32(u32); err != nil || got != s {
				t.Errorf("utf32 round trip = %q, %v; want %q", got, err, s)
			}

			u8, err := EncodeUTF8(s)
			if err != nil {
				t.Fatal(err)
			}
			if got, err := DecodeUTF8(u8); err != nil || got != s {
				t.Errorf("utf8 round trip = %q, %v; want %q", got, err, s)
			}

			w, err := NewWideString(s)
			if err != nil {
				t.Fatal(err)
			}
			if got := w.String(); got != s {
				t.Errorf("WideString round trip = %q, want %q", got, s)
			}
		})
	}
}

func TestWideString(t *testing.T) {
	w, err := NewWideString("a\U0001F600")
	if err != nil {
		t.Fatal(err)
	}

	want := 2
	if WcharSize() == 2 {
		want = 3
	}
	if w.Len() != want {
		t.Errorf("Len() = %d, want %d", w.Len(), want)
	}
	if w.data[len(w.data)-1] != 0 {
		t.Error("buffer is not NUL-terminated")
	}
	if w.Ptr() != unsafe.Pointer(&w.data[0]) {
		t.Error("Ptr() does not point at the buffer")
	}
	if int(unsafe.Sizeof(w.data[0])) != WcharSize() {
		t.Errorf("element size = %d, want %d", unsafe.Sizeof(w.data[0]), WcharSize())
	}

	got, err := decodeWidePtr((*wchar)(w.Ptr()))
	if err != nil || got != "a\U0001F600" {
		t.Errorf("decodeWidePtr() = %q, %v", got, err)
	}
}

func TestDecodeNullPointer(t *testing.T) {
	_, err := decodeWidePtr(nil)
	if !errors.Is(err, ErrNullPointer) {
		t.Errorf("decodeWidePtr(nil) error = %v, want ErrNullPointer", err)
	}
	if !errors.Is(err, ErrStringDecode) {
		t.Errorf("ErrNullPointer should match ErrStringDecode")
	}

	_, err = decodeCStringPtr(nil)
	if !errors.Is(err, ErrNullPointer) {
		t.Errorf("decodeCStringPtr(nil) error = %v, want ErrNullPointer", err)
	}
}

func TestDecodeCStringPtr(t *testing.T) {
	b := []byte("Inform\x00garbage")
	got, err := decodeCStringPtr(&b[0])
	if err != nil || got != "Inform" {
		t.Errorf("decodeCStringPtr() = %q, %v; want \"Inform\", nil", got, err)
	}
}

func TestUnitsToNUL(t *testing.T) {
	u := []uint16{'x', 'y', 'z', 0, 'q'}
	if got := unitsToNUL(&u[0]); !slices.Equal(got, []uint16{'x', 'y', 'z'}) {
		t.Errorf("unitsToNUL() = %v", got)
	}
	empty := []int32{0}
	if got := unitsToNUL(&empty[0]); len(got) != 0 {
		t.Errorf("unitsToNUL(empty) = %v", got)
	}
}
