// Package registry catalogues the frame identifiers declared by ID3v2.3 and
// ID3v2.4. The decoder never needs it: unknown identifiers are valid frames.
// It exists so output layers can describe what a frame is.
package registry

import (
	"maps"
	"slices"
	"sync"
)

// Version is a bit set of the ID3v2 major versions that declare a frame.
type Version uint8

const (
	// V23 marks frames declared by ID3v2.3.
	V23 Version = 1 << iota
	// V24 marks frames declared by ID3v2.4.
	V24

	// Both marks frames declared by both versions.
	Both = V23 | V24
)

// Has reports whether major version major (3 or 4) is in the set.
func (v Version) Has(major uint8) bool {
	switch major {
	case 3:
		return v&V23 != 0
	case 4:
		return v&V24 != 0
	default:
		return false
	}
}

// FrameInfo describes a declared frame identifier.
type FrameInfo struct {
	ID          string
	Description string
	Versions    Version
}

var (
	mu     sync.RWMutex
	frames = make(map[string]FrameInfo)
)

// Register adds or replaces the description of a frame identifier.
// The built-in table is registered during init; callers may add private
// identifiers the same way.
func Register(info FrameInfo) {
	mu.Lock()
	frames[info.ID] = info
	mu.Unlock()
}

// Get returns the registered information for id.
func Get(id string) (FrameInfo, bool) {
	mu.RLock()
	info, ok := frames[id]
	mu.RUnlock()
	return info, ok
}

// Describe returns the description for id, or "" if id is not registered.
func Describe(id string) string {
	info, _ := Get(id)
	return info.Description
}

// IsText reports whether id names a text-information frame.
func IsText(id string) bool {
	return len(id) > 0 && id[0] == 'T'
}

// IDs returns all registered identifiers in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(frames))
}

func init() {
	for _, info := range declared {
		Register(info)
	}
}

var declared = []FrameInfo{
	{"AENC", "Audio encryption", Both},
	{"APIC", "Attached picture", Both},
	{"ASPI", "Audio seek point index", V24},
	{"COMM", "Comments", Both},
	{"COMR", "Commercial frame", Both},
	{"ENCR", "Encryption method registration", Both},
	{"EQU2", "Equalisation (2)", V24},
	{"EQUA", "Equalization", V23},
	{"ETCO", "Event timing codes", Both},
	{"GEOB", "General encapsulated object", Both},
	{"GRID", "Group identification registration", Both},
	{"IPLS", "Involved people list", V23},
	{"LINK", "Linked information", Both},
	{"MCDI", "Music CD identifier", Both},
	{"MLLT", "MPEG location lookup table", Both},
	{"OWNE", "Ownership frame", Both},
	{"PCNT", "Play counter", Both},
	{"POPM", "Popularimeter", Both},
	{"POSS", "Position synchronisation frame", Both},
	{"PRIV", "Private frame", Both},
	{"RBUF", "Recommended buffer size", Both},
	{"RVA2", "Relative volume adjustment (2)", V24},
	{"RVAD", "Relative volume adjustment", V23},
	{"RVRB", "Reverb", Both},
	{"SEEK", "Seek frame", V24},
	{"SIGN", "Signature frame", V24},
	{"SYLT", "Synchronised lyric/text", Both},
	{"SYTC", "Synchronised tempo codes", Both},
	{"TALB", "Album/Movie/Show title", Both},
	{"TBPM", "BPM (beats per minute)", Both},
	{"TCOM", "Composer", Both},
	{"TCON", "Content type", Both},
	{"TCOP", "Copyright message", Both},
	{"TDAT", "Date", V23},
	{"TDEN", "Encoding time", V24},
	{"TDLY", "Playlist delay", Both},
	{"TDOR", "Original release time", V24},
	{"TDRC", "Recording time", V24},
	{"TDRL", "Release time", V24},
	{"TDTG", "Tagging time", V24},
	{"TENC", "Encoded by", Both},
	{"TEXT", "Lyricist/Text writer", Both},
	{"TFLT", "File type", Both},
	{"TIME", "Time", V23},
	{"TIPL", "Involved people list", V24},
	{"TIT1", "Content group description", Both},
	{"TIT2", "Title/songname/content description", Both},
	{"TIT3", "Subtitle/Description refinement", Both},
	{"TKEY", "Initial key", Both},
	{"TLAN", "Language(s)", Both},
	{"TLEN", "Length", Both},
	{"TMCL", "Musician credits list", V24},
	{"TMED", "Media type", Both},
	{"TMOO", "Mood", V24},
	{"TOAL", "Original album/movie/show title", Both},
	{"TOFN", "Original filename", Both},
	{"TOLY", "Original lyricist(s)/text writer(s)", Both},
	{"TOPE", "Original artist(s)/performer(s)", Both},
	{"TORY", "Original release year", V23},
	{"TOWN", "File owner/licensee", Both},
	{"TPE1", "Lead performer(s)/Soloist(s)", Both},
	{"TPE2", "Band/orchestra/accompaniment", Both},
	{"TPE3", "Conductor/performer refinement", Both},
	{"TPE4", "Interpreted, remixed, or otherwise modified by", Both},
	{"TPOS", "Part of a set", Both},
	{"TPRO", "Produced notice", V24},
	{"TPUB", "Publisher", Both},
	{"TRCK", "Track number/Position in set", Both},
	{"TRDA", "Recording dates", V23},
	{"TRSN", "Internet radio station name", Both},
	{"TRSO", "Internet radio station owner", Both},
	{"TSIZ", "Size", V23},
	{"TSOA", "Album sort order", V24},
	{"TSOP", "Performer sort order", V24},
	{"TSOT", "Title sort order", V24},
	{"TSRC", "ISRC (international standard recording code)", Both},
	{"TSSE", "Software/Hardware and settings used for encoding", Both},
	{"TSST", "Set subtitle", V24},
	{"TXXX", "User defined text information frame", Both},
	{"TYER", "Year", V23},
	{"UFID", "Unique file identifier", Both},
	{"USER", "Terms of use", Both},
	{"USLT", "Unsynchronised lyric/text transcription", Both},
	{"WCOM", "Commercial information", Both},
	{"WCOP", "Copyright/Legal information", Both},
	{"WOAF", "Official audio file webpage", Both},
	{"WOAR", "Official artist/performer webpage", Both},
	{"WOAS", "Official audio source webpage", Both},
	{"WORS", "Official Internet radio station homepage", Both},
	{"WPAY", "Payment", Both},
	{"WPUB", "Publishers official webpage", Both},
	{"WXXX", "User defined URL link frame", Both},
}
