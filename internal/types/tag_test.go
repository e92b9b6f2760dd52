package types

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
)

func sampleTag() *Tag {
	tag := NewTag(TagHeader{Major: 4, Size: 128})
	tag.Append(Frame{Header: FrameHeader{ID: "TIT2", Size: 6}, Body: Text{Value: "Disco"}})
	tag.Append(Frame{Header: FrameHeader{ID: "TPE1", Size: 12}, Body: Text{Value: "Alice\x00Bob", Encoding: EncodingUTF8}})
	tag.Append(Frame{Header: FrameHeader{ID: "APIC", Size: 3}, Body: Opaque{Data: []byte{1, 2, 3}}})
	tag.Append(Frame{Header: FrameHeader{ID: "TALB", Size: 4, Flags: FrameFlags{Compressed: true}}, Body: Opaque{Data: []byte{9, 9, 9, 9}, NeedsTransform: true}})
	tag.Append(Frame{Header: FrameHeader{ID: "TIT2", Size: 7}, Body: Text{Value: "Second"}})
	return tag
}

func TestTagHeader_Version(t *testing.T) {
	h := TagHeader{Major: 3, Revision: 0, Size: 1033}
	if got := h.Version(); got != "2.3.0" {
		t.Errorf("Version() = %q, want 2.3.0", got)
	}
	if got := h.TotalSize(); got != 1043 {
		t.Errorf("TotalSize() = %d, want 1043", got)
	}
}

func TestTag_Lookups(t *testing.T) {
	tag := sampleTag()

	if tag.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", tag.Len())
	}
	if got := tag.Title(); got != "Disco" {
		t.Errorf("Title() = %q, want first TIT2", got)
	}
	if got := tag.Artist(); got != "Alice\x00Bob" {
		t.Errorf("Artist() = %q", got)
	}
	// TALB is compressed, so there is no text to return.
	if got := tag.Album(); got != "" {
		t.Errorf("Album() = %q, want empty for opaque frame", got)
	}

	if got := len(tag.FramesByID("TIT2")); got != 2 {
		t.Errorf("FramesByID(TIT2) returned %d frames, want 2", got)
	}

	f, ok := tag.Frame("APIC")
	if !ok {
		t.Fatal("Frame(APIC) not found")
	}
	if f.Kind() != KindOpaque {
		t.Errorf("APIC kind = %v, want opaque", f.Kind())
	}
	if !slices.Equal(f.Data(), []byte{1, 2, 3}) {
		t.Errorf("APIC data = %v", f.Data())
	}

	if _, ok := tag.Frame("WXXX"); ok {
		t.Error("Frame(WXXX) should not be found")
	}
}

func TestFrame_Values(t *testing.T) {
	tag := sampleTag()

	f, _ := tag.Frame("TPE1")
	if got := f.Values(); !slices.Equal(got, []string{"Alice", "Bob"}) {
		t.Errorf("Values() = %q, want [Alice Bob]", got)
	}

	f, _ = tag.Frame("APIC")
	if got := f.Values(); got != nil {
		t.Errorf("Values() on opaque frame = %q, want nil", got)
	}
}

func TestTag_AllPreservesOrder(t *testing.T) {
	tag := sampleTag()

	var ids []string
	for i, f := range tag.All() {
		if tag.Frames[i].ID() != f.ID() {
			t.Errorf("index %d mismatch", i)
		}
		ids = append(ids, f.ID())
	}

	want := []string{"TIT2", "TPE1", "APIC", "TALB", "TIT2"}
	if !slices.Equal(ids, want) {
		t.Errorf("All() order = %v, want %v", ids, want)
	}
}

func TestTag_All_EarlyBreak(t *testing.T) {
	tag := sampleTag()

	count := 0
	for range tag.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected iteration to stop at 2, got %d", count)
	}
}

func TestTag_Filter(t *testing.T) {
	tag := sampleTag()

	var ids []string
	for f := range tag.Filter(Frame.NeedsTransform) {
		ids = append(ids, f.ID())
	}
	if !slices.Equal(ids, []string{"TALB"}) {
		t.Errorf("Filter(NeedsTransform) = %v, want [TALB]", ids)
	}
}

func TestFrameFlags_NeedsTransform(t *testing.T) {
	tests := []struct {
		flags FrameFlags
		want  bool
	}{
		{FrameFlags{}, false},
		{FrameFlags{Compressed: true}, true},
		{FrameFlags{Encrypted: true}, true},
		{FrameFlags{Grouped: true, ReadOnly: true}, false},
	}
	for _, tt := range tests {
		if got := tt.flags.NeedsTransform(); got != tt.want {
			t.Errorf("%+v.NeedsTransform() = %v, want %v", tt.flags, got, tt.want)
		}
	}
}

func TestFrame_Description(t *testing.T) {
	f := Frame{Header: FrameHeader{ID: "TIT2"}}
	if !strings.Contains(f.Description(), "Title") {
		t.Errorf("Description() = %q", f.Description())
	}
}

func TestFrame_MarshalJSON(t *testing.T) {
	tag := sampleTag()

	data, err := json.Marshal(tag)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded struct {
		Frames []map[string]any `json:"frames"`
		Header struct {
			Major int `json:"major"`
		} `json:"header"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.Header.Major != 4 {
		t.Errorf("header major = %d, want 4", decoded.Header.Major)
	}
	if len(decoded.Frames) != 5 {
		t.Fatalf("got %d frames, want 5", len(decoded.Frames))
	}

	title := decoded.Frames[0]
	if title["id"] != "TIT2" || title["kind"] != "text" || title["text"] != "Disco" {
		t.Errorf("unexpected title frame JSON: %v", title)
	}
	if title["encoding"] != "ISO-8859-1" {
		t.Errorf("encoding = %v, want ISO-8859-1", title["encoding"])
	}

	album := decoded.Frames[3]
	if album["kind"] != "opaque" || album["needs_transform"] != true {
		t.Errorf("unexpected album frame JSON: %v", album)
	}
}

func TestTextEncoding(t *testing.T) {
	tests := []struct {
		enc        TextEncoding
		name       string
		terminator int
		valid      bool
	}{
		{EncodingISO88591, "ISO-8859-1", 1, true},
		{EncodingUTF16, "UTF-16", 2, true},
		{EncodingUTF16BE, "UTF-16BE", 2, true},
		{EncodingUTF8, "UTF-8", 1, true},
		{TextEncoding(7), "TextEncoding(7)", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.enc.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.enc.TerminatorSize(); got != tt.terminator {
				t.Errorf("TerminatorSize() = %d, want %d", got, tt.terminator)
			}
			if got := tt.enc.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
