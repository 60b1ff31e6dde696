package cartridgeloader

// FileExtensions is the list of file extensions recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{
	".CRT", ".T64", ".P00", ".PRG", ".TAP", ".G64", ".D64",
}

// Format identifies the container format of a loaded image, independent of
// what is eventually made of its contents (cartridge mapper, tape, or disk
// filesystem).
type Format string

// List of recognised container formats.
const (
	FormatCRT     Format = "CRT"
	FormatT64     Format = "T64"
	FormatP00     Format = "P00"
	FormatPRG     Format = "PRG"
	FormatTAP     Format = "TAP"
	FormatG64     Format = "G64"
	FormatD64     Format = "D64"
	FormatUnknown Format = "UNKNOWN"
)

func formatFromExtension(ext string) Format {
	switch ext {
	case ".CRT":
		return FormatCRT
	case ".T64":
		return FormatT64
	case ".P00":
		return FormatP00
	case ".PRG":
		return FormatPRG
	case ".TAP":
		return FormatTAP
	case ".G64":
		return FormatG64
	case ".D64":
		return FormatD64
	}
	return FormatUnknown
}

// magic byte sequences used to fingerprint a format when the file extension
// is absent or unrecognised.
var (
	crtMagic = []byte("C64 CARTRIDGE   ")
	t64Magic = []byte("C64S tape image")
	tapMagic = []byte("C64-TAPE-RAW")
)

func formatFromContent(data []byte) Format {
	if len(data) >= len(crtMagic) && string(data[:len(crtMagic)]) == string(crtMagic) {
		return FormatCRT
	}
	if len(data) >= len(t64Magic) && string(data[:len(t64Magic)]) == string(t64Magic) {
		return FormatT64
	}
	if len(data) >= len(tapMagic) && string(data[:len(tapMagic)]) == string(tapMagic) {
		return FormatTAP
	}
	// D64 images have no header at all: the format is distinguished purely
	// by size (174848 bytes for 35 tracks, with a handful of documented
	// variants for extended track counts and error-info bytes appended).
	switch len(data) {
	case 174848, 175531, 196608, 197376:
		return FormatD64
	}
	return FormatUnknown
}
