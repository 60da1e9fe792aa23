package main

import (
	"bytes"
	"go/format"
	"strings"
	"testing"

	"github.com/thesyncim/mediainfo/internal/fieldspec"
)

func TestValidateTable(t *testing.T) {
	if err := validate(fieldspec.Categories); err != nil {
		t.Fatalf("validate(Categories) = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		fields []fieldspec.Field
		want   string
	}{
		{"reserved", []fieldspec.Field{{Name: "Kind", Param: "Kind", Decode: fieldspec.String}}, "collides"},
		{"derived", []fieldspec.Field{{Name: "FrameSize", Param: "FrameSize", Decode: fieldspec.String}}, "collides"},
		{"derived bool", []fieldspec.Field{{Name: "Stereo", Param: "Channels", Decode: fieldspec.Int}}, "collides"},
		{"duplicate", []fieldspec.Field{
			{Name: "Format", Param: "Format", Decode: fieldspec.String},
			{Name: "Format", Param: "Format/String", Decode: fieldspec.String},
		}, "declared twice"},
		{"no param", []fieldspec.Field{{Name: "Format", Param: " ", Decode: fieldspec.String}}, "no parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cats := []fieldspec.Category{{Kind: "StreamGeneral", Type: "GeneralStream", Fields: tt.fields}}
			err := validate(cats)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestTemplateRenders(t *testing.T) {
	cats := []fieldspec.Category{{
		Kind: "StreamAudio",
		Type: "AudioStream",
		Fields: []fieldspec.Field{
			{Name: "Channels", Param: "Channels", Decode: fieldspec.Int},
			{Name: "Duration", Param: "Duration", Decode: fieldspec.Duration},
			{Name: "EncodedDate", Param: "Encoded_Date", Decode: fieldspec.Time},
			{Name: "BitRateModeString", Param: "BitRate_Mode/String", Decode: fieldspec.String},
		},
	}}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cats); err != nil {
		t.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, buf.String())
	}

	for _, want := range []string{
		`StreamAudio: audioStreamFields,`,
		`{"Channels", "Channels", FieldInt},`,
		`func (s AudioStream) Channels() (int64, error) { return s.getInt("Channels") }`,
		`func (s AudioStream) Duration() (time.Duration, error) { return s.getDuration("Duration") }`,
		`func (s AudioStream) EncodedDate() (time.Time, error) { return s.getTime("Encoded_Date") }`,
		`return s.getString("BitRate_Mode/String")`,
		`// Duration returns "Duration", given in milliseconds.`,
	} {
		if !bytes.Contains(src, []byte(want)) {
			t.Errorf("generated code is missing %q", want)
		}
	}
}
