package mediainfo

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// wideUnit is any element type the engine uses for strings: UTF-16 code
// units, UTF-32 scalars (wchar_t is signed on most Unix ABIs) or UTF-8 bytes.
type wideUnit interface {
	~uint16 | ~int32 | ~uint32 | ~byte
}

// WideString is an owned, NUL-terminated string buffer in the platform's
// wchar_t width. The last element is always 0 and Len excludes it.
//
// Ptr returns a view into the buffer that is only valid while the WideString
// is reachable; callers keep it alive across the C call with runtime.KeepAlive.
type WideString struct {
	data   []wchar
	nChars int
}

// NewWideString encodes s for the platform wchar_t width.
func NewWideString(s string) (*WideString, error) {
	data, err := encodeWide(s)
	if err != nil {
		return nil, err
	}
	return &WideString{data: data, nChars: len(data) - 1}, nil
}

// Len returns the number of elements, excluding the terminator.
func (w *WideString) Len() int { return w.nChars }

// Ptr returns a pointer to the first element.
func (w *WideString) Ptr() unsafe.Pointer { return unsafe.Pointer(&w.data[0]) }

// String decodes the buffer back into a Go string.
func (w *WideString) String() string {
	s, _ := decodeWide(w.data)
	return s
}

// WcharSize is the size in bytes of the platform's wchar_t.
func WcharSize() int { return wcharSize }

// EncodeUTF16 converts s to NUL-terminated UTF-16, the wchar_t encoding of
// platforms where wchar_t is two bytes wide. Code points above the basic
// plane become surrogate pairs.
func EncodeUTF16(s string) ([]uint16, error) {
	if err := checkEncodable(s); err != nil {
		return nil, err
	}
	units := make([]uint16, 0, len(s)+1)
	for _, r := range s {
		units = utf16.AppendRune(units, r)
	}
	return append(units, 0), nil
}

// EncodeUTF32 converts s to NUL-terminated UTF-32, one element per Unicode
// scalar, the wchar_t encoding of platforms where wchar_t is four bytes wide.
func EncodeUTF32(s string) ([]int32, error) {
	if err := checkEncodable(s); err != nil {
		return nil, err
	}
	units := make([]int32, 0, utf8.RuneCountInString(s)+1)
	for _, r := range s {
		units = append(units, r)
	}
	return append(units, 0), nil
}

// EncodeUTF8 returns s as NUL-terminated bytes. This is the representation
// used by the host bridge, which still refuses strings it cannot terminate.
func EncodeUTF8(s string) ([]byte, error) {
	if err := checkEncodable(s); err != nil {
		return nil, err
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, nil
}

func checkEncodable(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return fmt.Errorf("%w: embedded NUL at byte %d", ErrStringEncode, i)
	}
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: invalid UTF-8", ErrStringEncode)
	}
	return nil
}

// DecodeUTF16 decodes units up to the first 0 element (or the end of the
// slice). Unpaired surrogates are an error.
func DecodeUTF16(units []uint16) (string, error) {
	units = trimAtNUL(units)

	var b strings.Builder
	b.Grow(len(units))
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		switch {
		case !utf16.IsSurrogate(u):
			b.WriteRune(u)
		case u < 0xDC00 && i+1 < len(units):
			r := utf16.DecodeRune(u, rune(units[i+1]))
			if r == utf8.RuneError {
				return "", fmt.Errorf("%w: unpaired surrogate 0x%04X at %d", ErrStringDecode, u, i)
			}
			b.WriteRune(r)
			i++
		default:
			return "", fmt.Errorf("%w: unpaired surrogate 0x%04X at %d", ErrStringDecode, u, i)
		}
	}
	return b.String(), nil
}

// DecodeUTF32 decodes units up to the first 0 element (or the end of the
// slice). Elements that are not Unicode scalar values are an error.
func DecodeUTF32(units []int32) (string, error) {
	units = trimAtNUL(units)

	var b strings.Builder
	b.Grow(len(units))
	for i, u := range units {
		if !utf8.ValidRune(u) {
			return "", fmt.Errorf("%w: invalid code point 0x%X at %d", ErrStringDecode, uint32(u), i)
		}
		b.WriteRune(u)
	}
	return b.String(), nil
}

// DecodeUTF8 decodes b up to the first NUL (or the end of the slice).
func DecodeUTF8(b []byte) (string, error) {
	b = trimAtNUL(b)
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrStringDecode)
	}
	return string(b), nil
}

func trimAtNUL[T wideUnit](units []T) []T {
	for i, u := range units {
		if u == 0 {
			return units[:i]
		}
	}
	return units
}

// unitsToNUL returns the elements starting at p up to, not including, the
// terminator. The slice aliases C memory and must be consumed before the
// engine's next call on the same session.
func unitsToNUL[T wideUnit](p *T) []T {
	size := unsafe.Sizeof(*p)
	n := 0
	for *(*T)(unsafe.Add(unsafe.Pointer(p), uintptr(n)*size)) != 0 {
		n++
	}
	return unsafe.Slice(p, n)
}

// decodeWidePtr decodes a NUL-terminated wchar_t string owned by the engine.
func decodeWidePtr(p *wchar) (string, error) {
	if p == nil {
		return "", ErrNullPointer
	}
	return decodeWide(unitsToNUL(p))
}

// decodeCStringPtr decodes a NUL-terminated UTF-8 string.
func decodeCStringPtr(p *byte) (string, error) {
	if p == nil {
		return "", ErrNullPointer
	}
	return DecodeUTF8(unitsToNUL(p))
}
