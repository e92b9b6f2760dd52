package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/id3meta"
)

type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	return &printer{w: w, json: asJSON}
}

type fileJSON struct {
	Tag   *id3meta.Tag `json:"tag"`
	Path  string       `json:"path"`
	Error string       `json:"error,omitempty"`
}

func (p *printer) print(res id3meta.Result) error {
	if p.json {
		out := fileJSON{Path: res.Path, Tag: res.File.Tag}
		if res.Err != nil {
			out.Error = res.Err.Error()
		}
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tag := res.File.Tag
	h := tag.Header
	fmt.Fprintf(p.w, "%s: ID3v%s, %d bytes, %d frames", res.Path, h.Version(), h.Size, tag.Len())
	if flags := headerFlags(h.Flags); flags != "" {
		fmt.Fprintf(p.w, " [%s]", flags)
	}
	fmt.Fprintln(p.w)

	for _, f := range tag.All() {
		fmt.Fprintf(p.w, "  %s %-40s %6d", f.ID(), describe(f), f.Header.Size)
		if flags := frameFlags(f.Header.Flags); flags != "" {
			fmt.Fprintf(p.w, " [%s]", flags)
		}
		if f.Kind() == id3meta.KindText {
			fmt.Fprintf(p.w, " %q", strings.Join(f.Values(), " / "))
		} else {
			fmt.Fprintf(p.w, " <%d bytes>", len(f.Data()))
		}
		if f.NeedsTransform() {
			fmt.Fprint(p.w, " needs transform")
		}
		fmt.Fprintln(p.w)
	}

	if tag.Padding > 0 {
		fmt.Fprintf(p.w, "  padding %d bytes\n", tag.Padding)
	}
	return nil
}

func describe(f id3meta.Frame) string {
	if d := f.Description(); d != "" {
		return d
	}
	return "(unknown)"
}

func headerFlags(f id3meta.HeaderFlags) string {
	var out []string
	if f.Unsynchronisation {
		out = append(out, "unsync")
	}
	if f.ExtendedHeader {
		out = append(out, "extended")
	}
	if f.Experimental {
		out = append(out, "experimental")
	}
	return strings.Join(out, ",")
}

func frameFlags(f id3meta.FrameFlags) string {
	var out []string
	if !f.PreserveOnTagAlter {
		out = append(out, "discard-on-tag-alter")
	}
	if !f.PreserveOnFileAlter {
		out = append(out, "discard-on-file-alter")
	}
	if f.ReadOnly {
		out = append(out, "read-only")
	}
	if f.Compressed {
		out = append(out, "compressed")
	}
	if f.Encrypted {
		out = append(out, "encrypted")
	}
	if f.Grouped {
		out = append(out, "grouped")
	}
	return strings.Join(out, ",")
}
