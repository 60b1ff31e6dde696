package filesystem

import "github.com/blar/virtualc64/curated"

// dataTrackOrder is the cross-track order allocation falls back to once
// the current track is full: outward from track 17 downward to track 1,
// then from track 19 upward to the last track, track 18 (the directory
// track) never included.
var dataTrackOrder = buildDataTrackOrder()

func buildDataTrackOrder() []int {
	var order []int
	for t := 17; t >= 1; t-- {
		order = append(order, t)
	}
	for t := 19; t <= numTracks; t++ {
		order = append(order, t)
	}
	return order
}

func nextDataTrack(track int) int {
	for i, t := range dataTrackOrder {
		if t == track {
			return dataTrackOrder[(i+1)%len(dataTrackOrder)]
		}
	}
	return dataTrackOrder[0]
}

// scanTrack walks track's sectors in interleaved order starting at
// startSector, taking up to need free ones. Sectors unreachable by pure
// interleave stepping (the step and the track's sector count share a
// common factor) are appended afterward in ascending order, so a track
// is never left partially unusable.
func (d *Device) scanTrack(bam []uint8, track, startSector, interleave, need int) (got [][2]int, last int, exhausted bool) {
	sectors := sectorsPerTrack(track)
	visited := make([]bool, sectors)
	order := make([]int, 0, sectors)

	s := ((startSector % sectors) + sectors) % sectors
	for i := 0; i < sectors; i++ {
		if visited[s] {
			break
		}
		visited[s] = true
		order = append(order, s)
		s = (s + interleave) % sectors
	}
	for sec := 0; sec < sectors; sec++ {
		if !visited[sec] {
			order = append(order, sec)
		}
	}

	last = startSector
	for _, sec := range order {
		if len(got) >= need {
			break
		}
		if track == directoryTrack && sec == bamSector {
			continue
		}
		if d.bamBitFree(bam, track, sec) {
			d.setBAMBit(bam, track, sec, false)
			d.setTrackFree(bam, track, d.trackFree(bam, track)-1)
			got = append(got, [2]int{track, sec})
			last = sec
		}
	}
	exhausted = len(got) < need
	return
}

// allocateData reserves n blocks for file payload, continuing from
// wherever the previous allocation left off and spilling across tracks
// in dataTrackOrder once the current one fills.
func (d *Device) allocateData(n int) ([][2]int, error) {
	bam := d.block(blockIndex(directoryTrack, bamSector))
	track, sector := d.dataCursorTrack, d.dataCursorSector

	var out [][2]int
	for tried := 0; len(out) < n && tried <= numTracks; tried++ {
		got, last, exhausted := d.scanTrack(bam, track, sector, dataInterleave, n-len(out))
		out = append(out, got...)
		sector = last
		if exhausted {
			track = nextDataTrack(track)
			sector = 0
		}
	}

	d.dataCursorTrack, d.dataCursorSector = track, sector
	if len(out) < n {
		return nil, curated.Errorf(curated.ErrOutOfMemory)
	}
	return out, nil
}

// allocateDirectoryBlock reserves one more directory sector on track 18,
// continuing the directory's own 3-sector interleave.
func (d *Device) allocateDirectoryBlock() (int, int, error) {
	bam := d.block(blockIndex(directoryTrack, bamSector))
	start := (d.dirCursorSector + dirInterleave) % sectorsPerTrack(directoryTrack)
	got, last, exhausted := d.scanTrack(bam, directoryTrack, start, dirInterleave, 1)
	if exhausted {
		return 0, 0, curated.Errorf(curated.ErrOutOfMemory)
	}
	d.dirCursorSector = last
	return directoryTrack, got[0][1], nil
}
