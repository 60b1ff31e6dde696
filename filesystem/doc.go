// Package filesystem implements the D64 disk image format: a flat array
// of 256-byte blocks addressed both linearly and as (track, sector), a
// BAM (block availability map) recording which blocks are free, an
// interleaved directory chain of 32-byte file entries, and the
// interleaved allocation order the 1541's own DOS uses when writing a
// new file. It lives beside hardware/, not inside it, the same way the
// teacher keeps archivefs beside hardware/ rather than folding file
// access into the emulated machine.
package filesystem
