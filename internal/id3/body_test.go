package id3

import (
	"bytes"
	"errors"
	"testing"

	"github.com/simonhull/id3meta/internal/types"
)

func TestDecodeFrame_Text(t *testing.T) {
	h := types.FrameHeader{ID: "TIT2", Size: 6}
	frame, err := DecodeFrame(h, []byte{0x00, 'D', 'i', 's', 'c', 'o'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if frame.Kind() != types.KindText {
		t.Fatalf("Kind = %v, want text", frame.Kind())
	}
	text, ok := frame.Text()
	if !ok || text != "Disco" {
		t.Errorf("Text() = %q, %v, want Disco", text, ok)
	}
	if frame.Header != h {
		t.Errorf("header not preserved: %+v", frame.Header)
	}
}

func TestDecodeFrame_Opaque(t *testing.T) {
	body := []byte{0x00, 'i', 'm', 'a', 'g', 'e', '/', 'p', 'n', 'g', 0x00, 0x03, 0x89, 'P', 'N', 'G'}
	frame, err := DecodeFrame(types.FrameHeader{ID: "APIC", Size: uint32(len(body))}, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if frame.Kind() != types.KindOpaque {
		t.Fatalf("Kind = %v, want opaque", frame.Kind())
	}
	if !bytes.Equal(frame.Data(), body) {
		t.Errorf("Data() = % x, want unchanged body", frame.Data())
	}
	if frame.NeedsTransform() {
		t.Error("plain APIC frame should not need a transform")
	}
}

func TestDecodeFrame_TransformedTextStaysOpaque(t *testing.T) {
	body := []byte{0x00, 0x00, 0x00, 0x05, 0x78, 0x9C, 0x01, 0x02}

	for _, flags := range []types.FrameFlags{{Compressed: true}, {Encrypted: true}} {
		frame, err := DecodeFrame(types.FrameHeader{ID: "TIT2", Size: uint32(len(body)), Flags: flags}, body)
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", flags, err)
		}
		if frame.Kind() != types.KindOpaque {
			t.Errorf("%+v: Kind = %v, want opaque", flags, frame.Kind())
		}
		if !frame.NeedsTransform() {
			t.Errorf("%+v: NeedsTransform() = false", flags)
		}
		if !bytes.Equal(frame.Data(), body) {
			t.Errorf("%+v: body altered", flags)
		}
	}
}

func TestDecodeFrame_GroupedTextIsStillText(t *testing.T) {
	frame, err := DecodeFrame(types.FrameHeader{ID: "TALB", Size: 3, Flags: types.FrameFlags{Grouped: true}}, []byte{0x03, 'O', 'K'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text, _ := frame.Text(); text != "OK" {
		t.Errorf("Text() = %q, want OK", text)
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		enc  types.TextEncoding
		want string
	}{
		{"latin1", []byte("Disco"), types.EncodingISO88591, "Disco"},
		{"latin1 high byte", []byte{'C', 'a', 'f', 0xE9}, types.EncodingISO88591, "Café"},
		{"latin1 terminated", []byte{'A', 'B', 0x00}, types.EncodingISO88591, "AB"},
		{"utf16 little endian bom", []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00}, types.EncodingUTF16, "Hi"},
		{"utf16 big endian bom", []byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'}, types.EncodingUTF16, "Hi"},
		{"utf16 without bom", []byte{0x00, 'H', 0x00, 'i'}, types.EncodingUTF16, "Hi"},
		{"utf16 terminated", []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00, 0x00, 0x00}, types.EncodingUTF16, "Hi"},
		{"utf16 single nul tail", []byte{0xFF, 0xFE, 'H', 0x00, 0x00}, types.EncodingUTF16, "H"},
		{
			"utf16 multiple values",
			[]byte{0xFF, 0xFE, 'A', 0x00, 0x00, 0x00, 0xFF, 0xFE, 'B', 0x00},
			types.EncodingUTF16,
			"A\x00B",
		},
		{
			"utf16 values with different boms",
			[]byte{0xFF, 0xFE, 'A', 0x00, 0x00, 0x00, 0xFE, 0xFF, 0x00, 'B', 0x00, 0x00},
			types.EncodingUTF16,
			"A\x00B",
		},
		{
			"utf16 later value inherits bom",
			[]byte{0xFF, 0xFE, 'A', 0x00, 0x00, 0x00, 'B', 0x00},
			types.EncodingUTF16,
			"A\x00B",
		},
		{
			"utf16 non ascii values",
			[]byte{0xFE, 0xFF, 0x00, 0xE9, 0x00, 0x00, 0xFF, 0xFE, 0x0D, 0x01},
			types.EncodingUTF16,
			"é\x00č",
		},
		{"utf16 unaligned nul pair", []byte{0xFF, 0xFE, 'A', 0x00, 0x00, 0x42}, types.EncodingUTF16, "A\u4200"},
		{"utf16be", []byte{0x00, 'O', 0x00, 'K'}, types.EncodingUTF16BE, "OK"},
		{"utf16be non ascii", []byte{0x00, 0xE9}, types.EncodingUTF16BE, "é"},
		{"utf8", []byte("Ünïcödé"), types.EncodingUTF8, "Ünïcödé"},
		{"utf8 multiple values", []byte("Alice\x00Bob\x00"), types.EncodingUTF8, "Alice\x00Bob"},
		{"empty", nil, types.EncodingUTF8, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.data, tt.enc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeText_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		enc  types.TextEncoding
	}{
		{"invalid utf8", []byte{0xC3, 0x28}, types.EncodingUTF8},
		{"odd utf16", []byte{0xFF, 0xFE, 'H'}, types.EncodingUTF16},
		{"odd utf16be", []byte{0x00, 'H', 'i'}, types.EncodingUTF16BE},
		{"unknown encoding", []byte("x"), types.TextEncoding(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeText(tt.data, tt.enc); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeFrame_InvalidText(t *testing.T) {
	_, err := DecodeFrame(types.FrameHeader{ID: "TPE1", Size: 3}, []byte{0x09, 'x', 'y'})
	if !errors.Is(err, types.ErrInvalidEncoding) {
		t.Fatalf("error = %v, want ErrInvalidEncoding", err)
	}

	var de *types.DecodeError
	if !errors.As(err, &de) || de.FrameID != "TPE1" {
		t.Errorf("error should name the frame: %v", err)
	}
}

func TestDecodeFrame_EmptyTextBody(t *testing.T) {
	frame, err := DecodeFrame(types.FrameHeader{ID: "TIT2"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text, ok := frame.Text(); !ok || text != "" {
		t.Errorf("Text() = %q, %v, want empty text", text, ok)
	}
}

func TestResynchronise(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"no pairs", []byte{0x01, 0xFF, 0x02}, []byte{0x01, 0xFF, 0x02}},
		{"single pair", []byte{0xFF, 0x00, 0xE0}, []byte{0xFF, 0xE0}},
		{"consecutive pairs", []byte{0xFF, 0x00, 0xFF, 0x00, 'A'}, []byte{0xFF, 0xFF, 'A'}},
		{"escaped zero", []byte{0xFF, 0x00, 0x00}, []byte{0xFF, 0x00}},
		{"trailing ff", []byte{'A', 0xFF}, []byte{'A', 0xFF}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resynchronise(tt.in); !bytes.Equal(got, tt.want) {
				t.Errorf("Resynchronise(% x) = % x, want % x", tt.in, got, tt.want)
			}
		})
	}
}
