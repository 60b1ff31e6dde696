// Package cartridgeloader loads media images from local storage so that they
// can be handed to the cartridge and filesystem packages.
//
// # File Extensions
//
// The file extension of a file is used to decide what container format it
// is in and forces the use of the matching format:
//
//	Raw cartridge image (CRT)   "CRT"
//	Tape archive (T64)          "T64"
//	Single file (P00)           "P00"
//	Raw program (PRG)           "PRG"
//	Tape image (TAP)            "TAP"
//	Timed disk image (G64)      "G64"
//	Sector disk image (D64)     "D64"
//
// File extensions are case insensitive. A file extension that isn't in the
// above list falls back to fingerprinting: the first bytes of the file are
// inspected for a recognisable container signature.
//
// # Hashes
//
// Creating a loader with NewLoaderFromFilename or NewLoaderFromData also
// computes a SHA1 hash of the data, available as the HashSHA1 field once the
// loader has been opened.
package cartridgeloader
