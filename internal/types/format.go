package types

import (
	"bytes"
	"io"
)

// Format represents a detected audio container.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatWAV represents RIFF/WAVE files.
	FormatWAV
	// FormatFLAC represents FLAC files.
	FormatFLAC
	// FormatMP3 represents MPEG layer III files.
	FormatMP3
	// FormatOgg represents Ogg Vorbis files.
	FormatOgg
	// FormatOpus represents Ogg Opus files.
	FormatOpus
	// FormatAIFF represents AIFF and AIFF-C files.
	FormatAIFF
	// FormatM4A represents MPEG-4 audio files.
	FormatM4A
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "WAV"
	case FormatFLAC:
		return "FLAC"
	case FormatMP3:
		return "MP3"
	case FormatOgg:
		return "Ogg Vorbis"
	case FormatOpus:
		return "Opus"
	case FormatAIFF:
		return "AIFF"
	case FormatM4A:
		return "M4A"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatWAV:
		return []string{".wav", ".wave"}
	case FormatFLAC:
		return []string{".flac"}
	case FormatMP3:
		return []string{".mp3"}
	case FormatOgg:
		return []string{".ogg", ".oga"}
	case FormatOpus:
		return []string{".opus"}
	case FormatAIFF:
		return []string{".aiff", ".aif"}
	case FormatM4A:
		return []string{".m4a", ".mp4"}
	default:
		return nil
	}
}

// headerProbeSize covers the Ogg page header, a full segment table and the
// first eight bytes of the codec packet.
const headerProbeSize = 27 + 255 + 8

// DetectFormat determines the audio container by examining magic bytes.
//
// Detection looks only at the file signature and does not validate the
// rest of the stream.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	header := make([]byte, min(size, headerProbeSize))
	n, err := r.ReadAt(header, 0)
	if n < 4 || (err != nil && err != io.EOF) {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}
	header = header[:n]

	magic := header[:4]
	switch {
	case bytes.Equal(magic, []byte("RIFF")) && len(header) >= 12 && string(header[8:12]) == "WAVE":
		return FormatWAV, nil
	case bytes.Equal(magic, []byte("fLaC")):
		return FormatFLAC, nil
	case string(magic[:3]) == "ID3":
		return FormatMP3, nil
	case magic[0] == 0xFF && magic[1]&0xE0 == 0xE0:
		// Frame sync without an ID3 tag.
		return FormatMP3, nil
	case bytes.Equal(magic, []byte("OggS")):
		return detectOggCodec(header), nil
	case bytes.Equal(magic, []byte("FORM")) && len(header) >= 12:
		if tag := string(header[8:12]); tag == "AIFF" || tag == "AIFC" {
			return FormatAIFF, nil
		}
	case len(header) >= 12 && string(header[4:8]) == "ftyp":
		return FormatM4A, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "unsupported file format",
	}
}

// detectOggCodec peeks into the first Ogg page to tell Opus from Vorbis.
func detectOggCodec(header []byte) Format {
	if len(header) < 28 {
		return FormatOgg
	}
	packet := 27 + int(header[26])
	if packet+8 <= len(header) && string(header[packet:packet+8]) == "OpusHead" {
		return FormatOpus
	}
	return FormatOgg
}
