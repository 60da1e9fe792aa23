package mediainfo

import (
	"fmt"
	"slices"
	"strconv"
	"time"
)

//go:generate go run ./internal/genfields -o fields_gen.go

// TimeLayout is the format of every timestamp field the engine reports.
const TimeLayout = "2006-01-02 15:04:05 UTC"

// FieldType is how a typed reader decodes its value.
type FieldType uint8

const (
	FieldString FieldType = iota
	FieldInt
	FieldDuration
	FieldTime
)

func (t FieldType) String() string {
	switch t {
	case FieldString:
		return "string"
	case FieldInt:
		return "int"
	case FieldDuration:
		return "duration"
	case FieldTime:
		return "time"
	default:
		return "unknown"
	}
}

// Field describes one typed reader: its method name, the engine parameter it
// reads and its decoding.
type Field struct {
	Name  string
	Param string
	Type  FieldType
}

// Fields returns the typed readers available for kind, in declaration order.
func Fields(kind StreamKind) []Field {
	if kind >= StreamMax {
		return nil
	}
	return slices.Clone(fieldsByKind[kind])
}

// stream is the state shared by every stream type. The zero value is
// detached and fails every read with ErrNoSessionOpen.
type stream struct {
	kind  StreamKind
	index int
	file  *File
}

// Kind returns the stream category.
func (s stream) Kind() StreamKind { return s.kind }

// Index returns the 0-based position of the stream within its category.
func (s stream) Index() int { return s.index }

// Get reads the text of param.
func (s stream) Get(param string) (string, error) {
	return s.GetInfo(param, InfoText, InfoName)
}

// GetInfo reads any facet of param.
func (s stream) GetInfo(param string, info, search InfoKind) (string, error) {
	if s.file == nil {
		return "", opError("Get", param, ErrNoSessionOpen)
	}
	return s.file.get(s.kind, s.index, param, info, search)
}

// Value reads f and returns it decoded according to f.Type.
func (s stream) Value(f Field) (any, error) {
	switch f.Type {
	case FieldInt:
		return s.getInt(f.Param)
	case FieldDuration:
		return s.getDuration(f.Param)
	case FieldTime:
		return s.getTime(f.Param)
	default:
		return s.getString(f.Param)
	}
}

func (s stream) getString(param string) (string, error) {
	return s.Get(param)
}

func (s stream) getInt(param string) (int64, error) {
	v, err := s.Get(param)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, nonNumeric(param, v)
	}
	return n, nil
}

func (s stream) getDuration(param string) (time.Duration, error) {
	v, err := s.Get(param)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.ParseUint(v, 10, 64)
	if err != nil || ms > uint64(maxDurationMillis) {
		return 0, nonNumeric(param, v)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func (s stream) getTime(param string) (time.Time, error) {
	v, err := s.Get(param)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(TimeLayout, v)
	if err != nil {
		return time.Time{}, nonNumeric(param, v)
	}
	return t.UTC(), nil
}

const maxDurationMillis = int64(^uint64(0)>>1) / int64(time.Millisecond)

func nonNumeric(param, value string) error {
	return opError("Get", param, fmt.Errorf("%w: %q", ErrNonNumericResult, value))
}

// GeneralStream is the container-level stream. Every opened item has exactly
// one.
type GeneralStream struct{ stream }

// VideoStream is one video track.
type VideoStream struct{ stream }

// AudioStream is one audio track.
type AudioStream struct{ stream }

// TextStream is one subtitle or caption track.
type TextStream struct{ stream }

// OtherStream is a chapter list, time code or similar auxiliary track.
type OtherStream struct{ stream }

// ImageStream is one still image, such as embedded cover art.
type ImageStream struct{ stream }

// MenuStream is one menu or chapter table.
type MenuStream struct{ stream }
