//go:build !windows

package mediainfo

// wchar_t is a signed 32-bit UTF-32 scalar on Unix ABIs.
type wchar = int32

const wcharSize = 4

func encodeWide(s string) ([]wchar, error) { return EncodeUTF32(s) }

func decodeWide(units []wchar) (string, error) { return DecodeUTF32(units) }
