package mediainfo

import "strconv"

// Boolean helpers below report false when the underlying field is absent or
// unreadable. Read BitRateMode, ScanType or Channels directly to tell the
// two apart.

// WritingApplication returns the encoding application, falling back to its
// display form when the raw value is absent.
func (s GeneralStream) WritingApplication() (string, error) {
	if v, err := s.EncodedApplication(); err == nil {
		return v, nil
	}
	return s.EncodedApplicationString()
}

// FrameSize returns the dimensions as "WxH".
func (s VideoStream) FrameSize() (string, error) {
	return frameSize(s.Width, s.Height)
}

// CBR reports whether the bit rate mode is "Constant".
func (s VideoStream) CBR() bool {
	mode, err := s.BitRateMode()
	return err == nil && mode == "Constant"
}

// VBR is the negation of CBR.
func (s VideoStream) VBR() bool { return !s.CBR() }

// Interlaced reports whether the scan type is "Interlaced".
func (s VideoStream) Interlaced() bool {
	scan, err := s.ScanType()
	return err == nil && scan == "Interlaced"
}

// Progressive is the negation of Interlaced.
func (s VideoStream) Progressive() bool { return !s.Interlaced() }

// CBR reports whether the bit rate mode is "Constant".
func (s AudioStream) CBR() bool {
	mode, err := s.BitRateMode()
	return err == nil && mode == "Constant"
}

// VBR is the negation of CBR.
func (s AudioStream) VBR() bool { return !s.CBR() }

// Stereo reports whether the stream has exactly two channels.
func (s AudioStream) Stereo() bool {
	n, err := s.Channels()
	return err == nil && n == 2
}

// Mono reports whether the stream has exactly one channel.
func (s AudioStream) Mono() bool {
	n, err := s.Channels()
	return err == nil && n == 1
}

// FrameSize returns the dimensions as "WxH".
func (s ImageStream) FrameSize() (string, error) {
	return frameSize(s.Width, s.Height)
}

func frameSize(width, height func() (int64, error)) (string, error) {
	h, err := height()
	if err != nil {
		return "", err
	}
	w, err := width()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(w, 10) + "x" + strconv.FormatInt(h, 10), nil
}
