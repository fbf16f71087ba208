package fat12

import (
	"bytes"
	"encoding/binary"
)

// The test volume uses the smallest practical geometry: 512 bytes per
// sector, one sector per cluster, a single FAT of one sector and a root
// directory region of one sector (16 entries). The data area then starts at
// sector 3, so data cluster c sits at sector c+1.
const (
	testTotalSectors = 64
	testFatOffset    = 512
	testRootOffset   = 2 * 512
)

type imageBuilder struct {
	buf []byte
}

func newImageBuilder() *imageBuilder {
	b := &imageBuilder{buf: make([]byte, testTotalSectors*512)}

	boot := b.buf
	copy(boot[3:11], "MSDOS5.0")
	binary.LittleEndian.PutUint16(boot[11:], 512) // bytes per sector
	boot[13] = 1                                  // sectors per cluster
	binary.LittleEndian.PutUint16(boot[14:], 1)   // reserved sectors
	boot[16] = 1                                  // number of FATs
	binary.LittleEndian.PutUint16(boot[17:], 16)  // max root entries
	binary.LittleEndian.PutUint16(boot[19:], testTotalSectors)
	boot[21] = 0xF0                             // media descriptor
	binary.LittleEndian.PutUint16(boot[22:], 1) // sectors per FAT
	copy(boot[43:54], "TESTVOLUME ")

	// The first two FAT entries are reserved for the media descriptor.
	b.setFatEntry(0, 0xFF0)
	b.setFatEntry(1, 0xFFF)

	return b
}

// setFatEntry packs a 12-bit value into the FAT, two entries per three bytes.
func (b *imageBuilder) setFatEntry(n int, v uint16) {
	i := testFatOffset + 3*n/2
	if n%2 == 0 {
		b.buf[i] = byte(v)
		b.buf[i+1] = b.buf[i+1]&0xF0 | byte(v>>8)&0x0F
	} else {
		b.buf[i] = b.buf[i]&0x0F | byte(v&0x0F)<<4
		b.buf[i+1] = byte(v >> 4)
	}
}

func (b *imageBuilder) setRootSlot(i int, slot []byte) {
	copy(b.buf[testRootOffset+i*entryHeaderSize:], slot)
}

func (b *imageBuilder) setClusterSlot(c uint16, i int, slot []byte) {
	copy(b.buf[int(c+1)*512+i*entryHeaderSize:], slot)
}

func (b *imageBuilder) writeCluster(c uint16, data []byte) {
	copy(b.buf[int(c+1)*512:], data)
}

func (b *imageBuilder) reader() *bytes.Reader {
	return bytes.NewReader(b.buf)
}

// dirSlot builds one raw 32-byte directory slot with space-padded name and
// extension.
func dirSlot(name, ext string, attr byte, cluster uint16, size uint32) []byte {
	slot := make([]byte, entryHeaderSize)
	copy(slot[0:8], "        ")
	copy(slot[8:11], "   ")
	copy(slot[0:8], name)
	copy(slot[8:11], ext)
	slot[11] = attr
	binary.LittleEndian.PutUint16(slot[22:], 0x7332) // 14:25:36
	binary.LittleEndian.PutUint16(slot[24:], 0x586C) // 2024-03-12
	binary.LittleEndian.PutUint16(slot[26:], cluster)
	binary.LittleEndian.PutUint32(slot[28:], size)
	return slot
}

// fill returns n copies of c.
func fill(c byte, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c
	}
	return buf
}

// newTestVolume builds the volume most tests run against:
//  root:  HELLO.TXT (cluster 2, 12 bytes), SUB (folder, cluster 3),
//         BIG.BIN (clusters 4 and 5, 612 bytes)
//  SUB:   ".", "..", NOTE.TXT (cluster 6, 9 bytes)
func newTestVolume() *imageBuilder {
	b := newImageBuilder()

	b.setRootSlot(0, dirSlot("HELLO", "TXT", AttrArchive, 2, 12))
	b.setRootSlot(1, dirSlot("SUB", "", AttrDirectory, 3, 0))
	b.setRootSlot(2, dirSlot("BIG", "BIN", AttrArchive, 4, 612))

	b.setClusterSlot(3, 0, dirSlot(".", "", AttrDirectory, 3, 0))
	b.setClusterSlot(3, 1, dirSlot("..", "", AttrDirectory, 0, 0))
	b.setClusterSlot(3, 2, dirSlot("NOTE", "TXT", AttrArchive, 6, 9))

	b.writeCluster(2, []byte("Hello World!"))
	b.writeCluster(4, fill('A', 512))
	b.writeCluster(5, fill('B', 100))
	b.writeCluster(6, []byte("note data"))

	b.setFatEntry(2, 0xFFF)
	b.setFatEntry(3, 0xFFF)
	b.setFatEntry(4, 5)
	b.setFatEntry(5, 0xFFF)
	b.setFatEntry(6, 0xFFF)

	return b
}
