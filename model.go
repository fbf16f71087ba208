// File model contains the structs which match the on-disk structures of a FAT12 volume.

package fat12

// BPB is the BIOS parameter block at the beginning of the boot sector.
// All multi-byte fields are little-endian.
type BPB struct {
	BSJumpBoot          [3]byte
	BSOEMName           [8]byte
	BytesPerSector      uint16
	SectorsPerCluster   byte
	ReservedSectorCount uint16
	NumFATs             byte
	RootEntryCount      uint16
	TotalSectors16      uint16
	Media               byte
	FATSize16           uint16
	SectorsPerTrack     uint16
	NumberOfHeads       uint16
	HiddenSectors       uint32
	TotalSectors32      uint32
	BSDriveNumber       byte
	BSReserved1         byte
	BSBootSignature     byte
	BSVolumeId          uint32
	BSVolumeLabel       [11]byte
	BSFileSystemType    [8]byte
}

// EntryHeader is one raw 32-byte directory slot.
type EntryHeader struct {
	Name            [8]byte
	Ext             [3]byte
	Attribute       byte
	NTReserved      byte
	CreateTimeTenth byte
	CreateTime      uint16
	CreateDate      uint16
	LastAccessDate  uint16
	FirstClusterHI  uint16
	WriteTime       uint16
	WriteDate       uint16
	FirstClusterLO  uint16
	FileSize        uint32
}

// Attribute bits of a directory entry. A slot whose attribute equals
// AttrLongName is a long filename fragment, not a file or folder on its own.
const (
	AttrReadOnly  = 0x01
	AttrHidden    = 0x02
	AttrSystem    = 0x04
	AttrVolumeId  = 0x08
	AttrDirectory = 0x10
	AttrArchive   = 0x20
	AttrLongName  = AttrReadOnly | AttrHidden | AttrSystem | AttrVolumeId
)

const entryHeaderSize = 32

// Markers in the first name byte of a directory slot.
const (
	entryFree    = 0x00
	entryDeleted = 0xE5
)

// DirEntry is one decoded directory entry.
type DirEntry struct {
	EntryHeader
}

// FirstCluster returns the first data cluster of the entry.
// The high half is only used by FAT32 and stays zero on FAT12 volumes.
func (e *DirEntry) FirstCluster() uint16 {
	return e.FirstClusterLO
}

// IsDir reports whether the entry describes a subdirectory.
func (e *DirEntry) IsDir() bool {
	return e.Attribute&AttrDirectory == AttrDirectory
}
