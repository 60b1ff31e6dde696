package filesystem

import "strings"

// DirEntry is one directory listing entry.
type DirEntry struct {
	Name                    string
	FileType                uint8
	FirstTrack, FirstSector uint8
	SizeBlocks              int
}

// Closed reports whether the entry's closed bit (bit 7 of the file-type
// byte) is set. An entry left unclosed is what "invisible" filters out
// of a ScanDirectory(true) listing, the same as a real 1541 directory
// hiding a file that was never properly closed.
func (e DirEntry) Closed() bool { return e.FileType&0x80 != 0 }

// ScanDirectory walks the directory chain from (18,1), 8 entries per
// sector, stopping as soon as a sector's first slot is unused or after
// maxDirEntries entries. When skipInvisible is true, entries whose
// closed bit isn't set are omitted.
func (d *Device) ScanDirectory(skipInvisible bool) []DirEntry {
	var out []DirEntry
	track, sector := directoryTrack, firstDirSector
	count := 0

	for track != 0 && count < maxDirEntries {
		blk := d.block(blockIndex(track, sector))
		if blk[2] == 0 {
			break
		}

		for slot := 0; slot < entriesPerSector && count < maxDirEntries; slot++ {
			off := slot * entrySize
			count++
			ft := blk[off+2]
			if ft == 0 {
				continue
			}
			e := DirEntry{
				Name:        strings.TrimRight(string(blk[off+5:off+21]), "\xA0"),
				FileType:    ft,
				FirstTrack:  blk[off+3],
				FirstSector: blk[off+4],
				SizeBlocks:  int(blk[off+30]) | int(blk[off+31])<<8,
			}
			if skipInvisible && !e.Closed() {
				continue
			}
			out = append(out, e)
		}

		nt, ns := int(blk[0]), int(blk[1])
		if nt == 0 {
			break
		}
		track, sector = nt, ns
	}
	return out
}
