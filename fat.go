package fat12

import (
	"errors"

	"github.com/ndntri/FAT12---File-System-Reader/checkpoint"
)

// ErrReadFat occurs if the file allocation table cannot be read completely.
var ErrReadFat = errors.New("could not read the file allocation table completely")

// fatEntry is one 12-bit entry of the file allocation table.
type fatEntry uint16

const (
	fatEntryFree fatEntry = 0x000
	fatEntryBad  fatEntry = 0xFF7
	fatEntryEOF  fatEntry = 0xFF8
	fatEntryMax  fatEntry = 0xFFF
)

// IsFree reports whether the entry marks an unallocated cluster.
func (e fatEntry) IsFree() bool {
	return e == fatEntryFree
}

// IsBad reports whether the entry marks a defective cluster.
func (e fatEntry) IsBad() bool {
	return e == fatEntryBad
}

// IsEOF reports whether the entry is an end-of-chain marker.
func (e fatEntry) IsEOF() bool {
	return e >= fatEntryEOF && e <= fatEntryMax
}

// IsNextCluster reports whether the entry points at another data cluster.
func (e fatEntry) IsNextCluster() bool {
	return e >= 2 && e < fatEntryBad
}

// IsTerminal reports whether a chain walk stops at this entry.
// Bad, reserved and end-of-chain markers all terminate the chain.
func (e fatEntry) IsTerminal() bool {
	return e >= fatEntryBad
}

// fatTable caches one full copy of the file allocation table in memory.
// It is read once at mount time and never modified afterwards.
type fatTable []byte

// loadFat reads the first FAT copy from the device. The table sits one
// cluster into the volume, directly behind the boot sector region.
func loadFat(dev blockReader, geo Geometry) (fatTable, error) {
	size := uint32(geo.SectorsPerFAT) * uint32(geo.BytesPerSector)
	buf := make([]byte, size)

	n, err := dev.ReadSectors(int64(geo.ClusterSize), uint32(geo.SectorsPerFAT), buf)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrReadFat)
	}
	if uint32(n) != size {
		return nil, checkpoint.From(ErrReadFat)
	}

	return fatTable(buf), nil
}

// next returns the FAT entry of cluster n, which is the number of the cluster
// following n in its chain or a terminal marker.
//
// Two 12-bit entries share three bytes, so even and odd indexes unpack
// differently: an even entry takes a full byte plus the low nibble of the
// byte after it, an odd entry takes the high nibble of its first byte plus
// the full byte after it.
func (f fatTable) next(n uint16) fatEntry {
	i := 3 * int(n) / 2

	if n%2 == 0 {
		return fatEntry(uint16(f[i+1]&0x0F)<<8 | uint16(f[i]))
	}
	return fatEntry(uint16(f[i+1])<<4 | uint16(f[i]&0xF0)>>4)
}
