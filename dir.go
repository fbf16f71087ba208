package fat12

import (
	"encoding/binary"
)

// scanEntries decodes every 32-byte slot of a directory buffer in on-disk
// order. It reports whether a terminating slot was seen, which means no
// further entries exist in this buffer.
//
// Skipped and not part of the result are: long filename fragments, deleted
// slots, and the self-reference a subdirectory keeps to its own first
// cluster (dirStart), which would otherwise make every listing recursive.
func scanEntries(buf []byte, dirStart uint16) ([]DirEntry, bool) {
	var entries []DirEntry

	for i := 0; i+entryHeaderSize <= len(buf); i += entryHeaderSize {
		slot := buf[i : i+entryHeaderSize]

		if slot[0] == entryFree {
			// A free first byte means this slot and all slots behind it
			// are unused.
			return entries, true
		}
		if slot[0] == entryDeleted {
			// Deleted entry. Slots behind it may still be in use.
			continue
		}
		if slot[11] == AttrLongName {
			continue
		}

		entry := decodeEntry(slot)
		if dirStart != RootDirCluster && entry.FirstClusterLO == dirStart {
			continue
		}

		entries = append(entries, entry)
	}

	return entries, false
}

// decodeEntry interprets one 32-byte directory slot. No validation of the
// name character set or any checksum takes place.
func decodeEntry(slot []byte) DirEntry {
	var h EntryHeader

	copy(h.Name[:], slot[0:8])
	copy(h.Ext[:], slot[8:11])
	h.Attribute = slot[11]
	h.NTReserved = slot[12]
	h.CreateTimeTenth = slot[13]
	h.CreateTime = binary.LittleEndian.Uint16(slot[14:16])
	h.CreateDate = binary.LittleEndian.Uint16(slot[16:18])
	h.LastAccessDate = binary.LittleEndian.Uint16(slot[18:20])
	h.FirstClusterHI = binary.LittleEndian.Uint16(slot[20:22])
	h.WriteTime = binary.LittleEndian.Uint16(slot[22:24])
	h.WriteDate = binary.LittleEndian.Uint16(slot[24:26])
	h.FirstClusterLO = binary.LittleEndian.Uint16(slot[26:28])
	h.FileSize = binary.LittleEndian.Uint32(slot[28:32])

	return DirEntry{h}
}
