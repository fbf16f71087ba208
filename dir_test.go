package fat12

import (
	"reflect"
	"testing"
)

func Test_decodeEntry(t *testing.T) {
	slot := make([]byte, entryHeaderSize)
	copy(slot[0:8], "HELLO   ")
	copy(slot[8:11], "TXT")
	slot[11] = AttrArchive
	slot[12] = 1    // NT reserved
	slot[13] = 2    // creation time, tenths
	slot[14] = 0x32 // creation time
	slot[15] = 0x73
	slot[16] = 0x6C // creation date
	slot[17] = 0x58
	slot[18] = 0x6D // last access date
	slot[19] = 0x58
	slot[20] = 0x01 // first cluster, high half
	slot[21] = 0x00
	slot[22] = 0x33 // write time
	slot[23] = 0x73
	slot[24] = 0x6D // write date
	slot[25] = 0x58
	slot[26] = 0x05 // first cluster, low half
	slot[27] = 0x00
	slot[28] = 0x39 // file size
	slot[29] = 0x05
	slot[30] = 0x00
	slot[31] = 0x00

	want := DirEntry{EntryHeader{
		Name:            [8]byte{'H', 'E', 'L', 'L', 'O', ' ', ' ', ' '},
		Ext:             [3]byte{'T', 'X', 'T'},
		Attribute:       AttrArchive,
		NTReserved:      1,
		CreateTimeTenth: 2,
		CreateTime:      0x7332,
		CreateDate:      0x586C,
		LastAccessDate:  0x586D,
		FirstClusterHI:  0x0001,
		WriteTime:       0x7333,
		WriteDate:       0x586D,
		FirstClusterLO:  0x0005,
		FileSize:        0x0539,
	}}

	if got := decodeEntry(slot); !reflect.DeepEqual(got, want) {
		t.Errorf("decodeEntry() = %+v, want %+v", got, want)
	}
}

func Test_scanEntries(t *testing.T) {
	join := func(slots ...[]byte) []byte {
		var buf []byte
		for _, slot := range slots {
			buf = append(buf, slot...)
		}
		return buf
	}

	tests := []struct {
		name        string
		buf         []byte
		dirStart    uint16
		wantNames   []string
		wantStopped bool
	}{
		{
			name: "free first slot halts immediately",
			buf: join(
				make([]byte, entryHeaderSize),
				dirSlot("LATER", "TXT", AttrArchive, 5, 1),
			),
			dirStart:    RootDirCluster,
			wantNames:   nil,
			wantStopped: true,
		},
		{
			name: "long filename fragments do not terminate",
			buf: join(
				dirSlot("FRAGMENT", "", AttrLongName, 0, 0),
				dirSlot("REAL", "TXT", AttrArchive, 5, 1),
			),
			dirStart:    RootDirCluster,
			wantNames:   []string{"REAL.TXT"},
			wantStopped: false,
		},
		{
			name: "deleted slots do not terminate",
			buf: join(
				append([]byte{entryDeleted}, dirSlot("GONE", "TXT", AttrArchive, 5, 1)[1:]...),
				dirSlot("REAL", "TXT", AttrArchive, 5, 1),
			),
			dirStart:    RootDirCluster,
			wantNames:   []string{"REAL.TXT"},
			wantStopped: false,
		},
		{
			name: "self reference is filtered in subdirectories",
			buf: join(
				dirSlot(".", "", AttrDirectory, 9, 0),
				dirSlot("..", "", AttrDirectory, 0, 0),
				dirSlot("REAL", "TXT", AttrArchive, 5, 1),
			),
			dirStart:    9,
			wantNames:   []string{"..", "REAL.TXT"},
			wantStopped: false,
		},
		{
			name: "no self reference filter for the root directory",
			buf: join(
				dirSlot("ZERO", "TXT", AttrArchive, 0, 1),
			),
			dirStart:    RootDirCluster,
			wantNames:   []string{"ZERO.TXT"},
			wantStopped: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, stopped := scanEntries(tt.buf, tt.dirStart)

			var names []string
			for i := range entries {
				names = append(names, entries[i].FileInfo().Name())
			}

			if !reflect.DeepEqual(names, tt.wantNames) {
				t.Errorf("scanEntries() names = %v, want %v", names, tt.wantNames)
			}
			if stopped != tt.wantStopped {
				t.Errorf("scanEntries() stopped = %v, want %v", stopped, tt.wantStopped)
			}
		})
	}
}
