//go:build windows

package mediainfo

// wchar_t is a UTF-16 code unit on Windows.
type wchar = uint16

const wcharSize = 2

func encodeWide(s string) ([]wchar, error) { return EncodeUTF16(s) }

func decodeWide(units []wchar) (string, error) { return DecodeUTF16(units) }
