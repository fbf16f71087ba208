package fat12

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"

	"github.com/ndntri/FAT12---File-System-Reader/checkpoint"
)

// RootDirCluster is the sentinel passed to ReadDir to list the fixed root
// directory region. It is distinct from any real data cluster, which start
// at number 2.
const RootDirCluster uint16 = 0

// These errors may occur while mounting a volume or walking its structures.
var (
	ErrReadBootSector = errors.New("could not read the boot sector completely")
	ErrClusterSize    = errors.New("cluster size derived from the boot sector is zero")
	ErrReadRootDir    = errors.New("could not read the root directory completely")
	ErrReadDir        = errors.New("could not read a directory cluster completely")
	ErrReadFileData   = errors.New("could not read a file cluster completely")
	ErrInvalidCluster = errors.New("cluster number does not denote a data cluster")
)

// Volume is one mounted FAT12 session. The geometry and the FAT table are
// loaded once at mount time and are read-only afterwards, every directory
// listing and file read goes back to the device.
//
// A Volume is not safe for concurrent use, the device holds a single cursor.
type Volume struct {
	dev   blockReader
	geo   Geometry
	fat   fatTable
	label string
}

// Mount reads the boot sector from the device, derives the volume geometry
// and caches the file allocation table. The device stays open until Unmount
// is called.
func Mount(dev blockReader) (*Volume, error) {
	buf := make([]byte, DefaultSectorSize)
	n, err := dev.ReadSector(0, buf)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrReadBootSector)
	}
	if n != DefaultSectorSize {
		return nil, checkpoint.From(ErrReadBootSector)
	}

	var bpb BPB
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &bpb); err != nil {
		return nil, checkpoint.Wrap(err, ErrReadBootSector)
	}

	geo := newGeometry(bpb)
	if geo.ClusterSize == 0 {
		return nil, checkpoint.From(ErrClusterSize)
	}

	// All following reads use the sector size the volume actually declares.
	if err := dev.SetSectorSize(uint32(geo.BytesPerSector)); err != nil {
		return nil, checkpoint.From(err)
	}

	fat, err := loadFat(dev, geo)
	if err != nil {
		return nil, err
	}

	return &Volume{
		dev:   dev,
		geo:   geo,
		fat:   fat,
		label: strings.TrimRight(string(bpb.BSVolumeLabel[:]), " \x00"),
	}, nil
}

// MountReader mounts the volume image provided by reader.
func MountReader(reader io.ReadSeeker) (*Volume, error) {
	return Mount(NewDevice(reader))
}

// MountPath opens the volume image at path and mounts it.
func MountPath(path string) (*Volume, error) {
	dev, err := OpenDevice(path)
	if err != nil {
		return nil, err
	}

	vol, err := Mount(dev)
	if err != nil {
		dev.Close()
		return nil, err
	}
	return vol, nil
}

// Geometry returns the parsed and derived volume geometry.
func (v *Volume) Geometry() Geometry {
	return v.geo
}

// ClusterSize returns the size of one cluster in bytes.
func (v *Volume) ClusterSize() uint32 {
	return v.geo.ClusterSize
}

// Label returns the volume label recorded in the boot sector.
func (v *Volume) Label() string {
	return v.label
}

// Unmount releases the volume and closes the underlying device.
func (v *Volume) Unmount() error {
	return v.dev.Close()
}

// ReadDir lists the directory starting at the given cluster in on-disk slot
// order. RootDirCluster lists the fixed root directory region, which is not
// chained through the FAT. Every call re-reads the device, the returned slice
// is owned by the caller.
func (v *Volume) ReadDir(start uint16) ([]DirEntry, error) {
	if start == RootDirCluster {
		return v.readRoot()
	}
	return v.readDir(start)
}

// readRoot reads the whole fixed root directory region in one go and decodes
// its entries.
func (v *Volume) readRoot() ([]DirEntry, error) {
	size := uint32(v.geo.RootDirClusters) * uint32(v.geo.BytesPerSector)
	buf := make([]byte, size)

	n, err := v.dev.ReadSectors(v.geo.rootDirOffset(), uint32(v.geo.RootDirClusters), buf)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrReadRootDir)
	}
	if uint32(n) != size {
		return nil, checkpoint.From(ErrReadRootDir)
	}

	entries, _ := scanEntries(buf, RootDirCluster)
	return entries, nil
}

// readDir walks the cluster chain of a subdirectory and decodes the entries
// of every cluster. A terminating slot only ends the scan of its own cluster
// buffer, the chain itself runs until the FAT reports a terminal marker.
func (v *Volume) readDir(start uint16) ([]DirEntry, error) {
	if start < 2 {
		return nil, checkpoint.From(ErrInvalidCluster)
	}

	var entries []DirEntry
	buf := make([]byte, v.geo.ClusterSize)

	for current := fatEntry(start); !current.IsTerminal(); current = v.fat.next(uint16(current)) {
		n, err := v.dev.ReadSectors(v.geo.clusterOffset(uint16(current)), uint32(v.geo.SectorsPerCluster), buf)
		if err != nil {
			return nil, checkpoint.Wrap(err, ErrReadDir)
		}
		if uint32(n) != v.geo.ClusterSize {
			return nil, checkpoint.From(ErrReadDir)
		}

		clusterEntries, _ := scanEntries(buf, start)
		entries = append(entries, clusterEntries...)
	}

	return entries, nil
}

// ReadFile reads every cluster of the chain starting at the given data
// cluster. The buffers are returned in chain order and each one is exactly
// one cluster long. The final buffer is not truncated to the logical file
// size, bytes behind the end of the file are padding and must be bounded by
// the FileSize of the directory entry.
func (v *Volume) ReadFile(start uint16) ([][]byte, error) {
	if start < 2 {
		return nil, checkpoint.From(ErrInvalidCluster)
	}

	var clusters [][]byte

	for current := fatEntry(start); !current.IsTerminal(); current = v.fat.next(uint16(current)) {
		buf := make([]byte, v.geo.ClusterSize)
		n, err := v.dev.ReadSectors(v.geo.clusterOffset(uint16(current)), uint32(v.geo.SectorsPerCluster), buf)
		if err != nil {
			return clusters, checkpoint.Wrap(err, ErrReadFileData)
		}
		if uint32(n) != v.geo.ClusterSize {
			return clusters, checkpoint.From(ErrReadFileData)
		}

		clusters = append(clusters, buf)
	}

	return clusters, nil
}

// readFileAt reads up to readSize bytes of the file chain starting at
// cluster, beginning at the given byte offset. The result is clamped to
// fileSize, reading at or behind the end returns io.EOF.
func (v *Volume) readFileAt(cluster uint16, fileSize, offset, readSize int64) ([]byte, error) {
	if offset >= fileSize {
		return nil, io.EOF
	}
	if offset+readSize > fileSize {
		readSize = fileSize - offset
	}

	clusterSize := int64(v.geo.ClusterSize)
	result := make([]byte, 0, readSize)
	buf := make([]byte, clusterSize)
	pos := int64(0)

	for current := fatEntry(cluster); !current.IsTerminal() && int64(len(result)) < readSize; current = v.fat.next(uint16(current)) {
		// Skip whole clusters in front of the requested offset.
		if pos+clusterSize <= offset {
			pos += clusterSize
			continue
		}

		n, err := v.dev.ReadSectors(v.geo.clusterOffset(uint16(current)), uint32(v.geo.SectorsPerCluster), buf)
		if err != nil {
			return result, checkpoint.Wrap(err, ErrReadFileData)
		}
		if uint32(n) != v.geo.ClusterSize {
			return result, checkpoint.From(ErrReadFileData)
		}

		from := int64(0)
		if offset > pos {
			from = offset - pos
		}
		to := clusterSize
		if remaining := readSize - int64(len(result)); to-from > remaining {
			to = from + remaining
		}

		result = append(result, buf[from:to]...)
		pos += clusterSize
	}

	return result, nil
}
