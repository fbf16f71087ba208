package fat12

// Geometry holds the boot sector fields the reader needs together with the
// values derived from them. It is immutable once the volume is mounted.
type Geometry struct {
	BytesPerSector    uint16
	SectorsPerCluster uint8
	NumFATs           uint8
	RootEntryCount    uint16
	TotalSectors      uint16
	SectorsPerFAT     uint16

	// ClusterSize is the size of one cluster in bytes.
	ClusterSize uint32
	// RootDirClusters is the number of clusters occupied by the fixed root
	// directory region.
	RootDirClusters uint16
	// RootDirStart is the first sector of the root directory region.
	RootDirStart uint16
	// DataAreaStart is the first sector of the data area.
	DataAreaStart uint16
}

// newGeometry picks the FAT12 relevant fields out of the BPB and derives the
// layout of the volume from them.
func newGeometry(bpb BPB) Geometry {
	g := Geometry{
		BytesPerSector:    bpb.BytesPerSector,
		SectorsPerCluster: bpb.SectorsPerCluster,
		NumFATs:           bpb.NumFATs,
		RootEntryCount:    bpb.RootEntryCount,
		TotalSectors:      bpb.TotalSectors16,
		SectorsPerFAT:     bpb.FATSize16,
	}

	g.ClusterSize = uint32(g.SectorsPerCluster) * uint32(g.BytesPerSector)
	if g.BytesPerSector != 0 {
		g.RootDirClusters = uint16(uint32(g.RootEntryCount) * entryHeaderSize / uint32(g.BytesPerSector))
	}
	g.RootDirStart = uint16(g.NumFATs)*g.SectorsPerFAT + 1
	g.DataAreaStart = g.RootDirStart + g.RootDirClusters

	return g
}

// rootDirOffset is the byte offset of the fixed root directory region.
func (g Geometry) rootDirOffset() int64 {
	return int64(g.RootDirStart) * int64(g.BytesPerSector)
}

// clusterOffset is the byte offset of data cluster c.
// The first data cluster is number 2, the data area starts right at it.
func (g Geometry) clusterOffset(c uint16) int64 {
	return (int64(g.DataAreaStart) - 2 + int64(c)) * int64(g.BytesPerSector)
}
