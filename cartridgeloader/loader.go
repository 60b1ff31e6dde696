package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blar/virtualc64/logger"
)

// Loader abstracts all the ways media data can be loaded into the emulation:
// cartridge images, tape images, and disk images alike.
type Loader struct {
	io.ReadSeeker

	// the name to use for the media represented by Loader
	Name string

	// filename of the media being loaded. In the case of embedded data this
	// field contains the name given to NewLoaderFromData.
	Filename string

	// container format. empty string or "AUTO" indicates the format should
	// be decided from the file extension, falling back to fingerprinting.
	Format Format

	// expected SHA1 hash of the loaded data. empty string means the hash is
	// unknown and need not be validated. after Open() the value is the hash
	// of the loaded data.
	HashSHA1 string

	// media data. empty until Open() is called, unless the loader was
	// created with NewLoaderFromData.
	//
	// the pointer-to-a-slice construct allows the data to be loaded by a
	// Loader instance that has been passed by value.
	Data *[]byte

	data *bytes.Buffer

	embedded bool
}

// ErrNoFilename is returned by NewLoaderFromFilename when given an empty or
// whitespace-only filename.
var ErrNoFilename = errors.New("cartridgeloader: no filename")

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading data from local storage.
//
// The format argument forces the container format, unless it is "AUTO" or
// the empty string, in which case the file extension decides the format,
// falling back to fingerprinting if the extension is not recognised.
func NewLoaderFromFilename(filename string, format string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, ErrNoFilename
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", err)
	}

	format = strings.TrimSpace(strings.ToUpper(format))

	ld := Loader{
		Filename: abs,
	}
	data := make([]byte, 0)
	ld.Data = &data

	if format != "" && format != "AUTO" {
		ld.Format = Format(format)
	} else {
		ext := strings.ToUpper(filepath.Ext(abs))
		ld.Format = formatFromExtension(ext)
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// NewLoaderFromData is the preferred method of initialisation for the Loader
// type when loading data from a byte slice already in memory, such as data
// embedded with go:embed.
func NewLoaderFromData(name string, data []byte, format string) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: embedded data is empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no name for embedded data")
	}

	format = strings.TrimSpace(strings.ToUpper(format))

	ld := Loader{
		Filename: name,
		Data:     &data,
		data:     bytes.NewBuffer(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
	}

	if format != "" && format != "AUTO" {
		ld.Format = Format(format)
	} else {
		ld.Format = formatFromContent(data)
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// Read implements io.Reader.
func (ld Loader) Read(p []byte) (int, error) {
	if ld.data == nil {
		return 0, io.EOF
	}
	return ld.data.Read(p)
}

// Seek implements io.Seeker. The underlying buffer does not support
// seeking; Open() must be called again to start reading from the beginning.
func (ld Loader) Seek(offset int64, whence int) (int64, error) {
	return 0, fmt.Errorf("cartridgeloader: seeking is not supported")
}

// Open reads the media data into memory, fingerprinting the format if it
// wasn't decided by NewLoaderFromFilename.
func (ld *Loader) Open() error {
	if ld.embedded {
		return nil
	}

	if ld.Data != nil && len(*ld.Data) > 0 {
		return nil
	}

	f, err := os.Open(ld.Filename)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	*ld.Data = b
	ld.data = bytes.NewBuffer(b)

	if ld.Format == FormatUnknown || ld.Format == "" {
		ld.Format = formatFromContent(b)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(b))
	if ld.HashSHA1 != "" && ld.HashSHA1 != hash {
		return fmt.Errorf("cartridgeloader: unexpected SHA1 hash value")
	}
	ld.HashSHA1 = hash

	logger.Logf("cartridgeloader", "loaded %s (%s, %d bytes)", ld.Filename, ld.Format, len(b))

	return nil
}

// Close releases any resources held by the Loader. Since Open() reads the
// entire file into memory up front there is nothing to release, but the
// method is kept for symmetry and future streaming formats.
func (ld Loader) Close() error {
	return nil
}
