package fat12

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestDirEntry_FileInfo(t *testing.T) {
	entry := DirEntry{EntryHeader{
		Name:           [8]byte{'H', 'E', 'L', 'L', 'O', ' ', ' ', ' '},
		Ext:            [3]byte{'T', 'X', 'T'},
		Attribute:      AttrDirectory,
		CreateTime:     2,
		CreateDate:     3,
		LastAccessDate: 4,
		WriteTime:      6,
		WriteDate:      7,
		FirstClusterLO: 8,
		FileSize:       9,
	}}

	want := entryFileInfo{entry: entry}
	if got := entry.FileInfo(); !reflect.DeepEqual(got, want) {
		t.Errorf("DirEntry.FileInfo() = %v, want %v", got, want)
	}
}

func Test_entryFileInfo_Name(t *testing.T) {
	tests := []struct {
		name   string
		header EntryHeader
		want   string
	}{
		{
			name: "name and extension",
			header: EntryHeader{
				Name: [8]byte{'H', 'E', 'L', 'L', 'O', ' ', ' ', ' '},
				Ext:  [3]byte{'T', 'X', 'T'},
			},
			want: "HELLO.TXT",
		},
		{
			name: "short extension",
			header: EntryHeader{
				Name: [8]byte{'H', 'E', 'L', 'L', 'O', ' ', ' ', ' '},
				Ext:  [3]byte{'T', 'X', ' '},
			},
			want: "HELLO.TX",
		},
		{
			name: "no extension",
			header: EntryHeader{
				Name: [8]byte{'H', 'E', 'L', 'L', 'O', ' ', ' ', ' '},
				Ext:  [3]byte{' ', ' ', ' '},
			},
			want: "HELLO",
		},
		{
			name: "NUL padded name",
			header: EntryHeader{
				Name: [8]byte{'A', 0, 0, 0, 0, 0, 0, 0},
				Ext:  [3]byte{0, 0, 0},
			},
			want: "A",
		},
		{
			name: "dot entry",
			header: EntryHeader{
				Name: [8]byte{'.', '.', ' ', ' ', ' ', ' ', ' ', ' '},
				Ext:  [3]byte{' ', ' ', ' '},
			},
			want: "..",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entryFileInfo{entry: DirEntry{tt.header}}
			if got := e.Name(); got != tt.want {
				t.Errorf("entryFileInfo.Name() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_entryFileInfo_Size(t *testing.T) {
	e := entryFileInfo{entry: DirEntry{EntryHeader{FileSize: 612}}}
	if got := e.Size(); got != 612 {
		t.Errorf("entryFileInfo.Size() = %v, want %v", got, 612)
	}
}

func Test_entryFileInfo_Mode(t *testing.T) {
	tests := []struct {
		name      string
		attribute byte
		want      os.FileMode
	}{
		{
			name:      "directory",
			attribute: AttrDirectory,
			want:      os.ModeDir,
		},
		{
			name:      "plain file",
			attribute: AttrArchive,
			want:      0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entryFileInfo{entry: DirEntry{EntryHeader{Attribute: tt.attribute}}}
			if got := e.Mode(); got != tt.want {
				t.Errorf("entryFileInfo.Mode() = %v, want %v", got, tt.want)
			}
			if got := e.IsDir(); got != (tt.want == os.ModeDir) {
				t.Errorf("entryFileInfo.IsDir() = %v, want %v", got, tt.want == os.ModeDir)
			}
		})
	}
}

func Test_entryFileInfo_ModTime(t *testing.T) {
	tests := []struct {
		name      string
		writeTime uint16
		writeDate uint16
		want      time.Time
	}{
		{
			name:      "valid date and time",
			writeTime: 0x7332,
			writeDate: 0x586C,
			want:      time.Date(2024, time.March, 12, 14, 25, 36, 0, time.UTC),
		},
		{
			name:      "invalid date yields the zero time",
			writeTime: 0x7332,
			writeDate: 0,
			want:      time.Time{},
		},
		{
			name:      "midnight is kept for a valid date",
			writeTime: 0,
			writeDate: 0x586C,
			want:      time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entryFileInfo{entry: DirEntry{EntryHeader{
				WriteTime: tt.writeTime,
				WriteDate: tt.writeDate,
			}}}
			if got := e.ModTime(); !got.Equal(tt.want) {
				t.Errorf("entryFileInfo.ModTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_entryFileInfo_Sys(t *testing.T) {
	entry := DirEntry{EntryHeader{FirstClusterLO: 8}}
	e := entryFileInfo{entry: entry}

	got, ok := e.Sys().(DirEntry)
	if !ok {
		t.Fatalf("entryFileInfo.Sys() is no DirEntry: %T", e.Sys())
	}
	if !reflect.DeepEqual(got, entry) {
		t.Errorf("entryFileInfo.Sys() = %v, want %v", got, entry)
	}
}
