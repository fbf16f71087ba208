package fat12

import (
	"errors"
	"io"
	"os"

	"github.com/ndntri/FAT12---File-System-Reader/checkpoint"
)

// DefaultSectorSize is the sector size assumed before the boot sector has been
// parsed. Almost all FAT12 media use 512 bytes per sector.
const DefaultSectorSize = 512

// These errors may occur while accessing the backing device.
var (
	ErrOpenDevice = errors.New("could not open the backing device")
	ErrSectorSize = errors.New("sector size must be a positive multiple of the default sector size")
)

// blockReader provides sector-addressed reads on a backing store.
// It knows nothing about the FAT12 layout, it only turns byte offsets into
// raw bytes. The volume core depends on this interface instead of a concrete
// device so tests can substitute their own implementation.
type blockReader interface {
	// SetSectorSize changes the nominal sector size. Only positive multiples
	// of DefaultSectorSize are accepted.
	SetSectorSize(size uint32) error
	// ReadSector reads one sector starting at the given byte offset and
	// reports how many bytes were actually obtained.
	ReadSector(offset int64, buf []byte) (int, error)
	// ReadSectors reads count sectors starting at the given byte offset and
	// reports how many bytes were actually obtained.
	ReadSectors(offset int64, count uint32, buf []byte) (int, error)
	Close() error
}

// Device is a blockReader over an io.ReadSeeker, typically a volume image file.
// Every read repositions the cursor explicitly, so no call depends on the
// position left behind by a previous one.
type Device struct {
	r          io.ReadSeeker
	sectorSize uint32
	closer     io.Closer
}

// NewDevice wraps reader as a block device using the default sector size.
// Closing the device does not close the reader.
func NewDevice(reader io.ReadSeeker) *Device {
	return &Device{
		r:          reader,
		sectorSize: DefaultSectorSize,
	}
}

// OpenDevice opens the volume image at path as a block device.
// The underlying file is closed together with the device.
func OpenDevice(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrOpenDevice)
	}

	d := NewDevice(f)
	d.closer = f
	return d, nil
}

func (d *Device) SetSectorSize(size uint32) error {
	if size == 0 || size%DefaultSectorSize != 0 {
		return checkpoint.From(ErrSectorSize)
	}

	d.sectorSize = size
	return nil
}

func (d *Device) ReadSector(offset int64, buf []byte) (int, error) {
	return d.ReadSectors(offset, 1, buf)
}

func (d *Device) ReadSectors(offset int64, count uint32, buf []byte) (int, error) {
	if _, err := d.r.Seek(offset, io.SeekStart); err != nil {
		return 0, checkpoint.From(err)
	}

	want := int(d.sectorSize) * int(count)
	if want > len(buf) {
		want = len(buf)
	}

	// A read that ends early is not an error here. Callers compare the byte
	// count against what they asked for.
	n, err := io.ReadFull(d.r, buf[:want])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}

	return n, checkpoint.From(err)
}

func (d *Device) Close() error {
	if d.closer == nil {
		return nil
	}
	return checkpoint.From(d.closer.Close())
}
