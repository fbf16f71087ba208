package fat12

import (
	"os"
	"strings"
	"time"
)

// FileInfo adapts the entry to os.FileInfo.
func (e *DirEntry) FileInfo() os.FileInfo {
	return entryFileInfo{*e}
}

type entryFileInfo struct {
	entry DirEntry
}

// Name formats the 8.3 name of the entry: both parts are trimmed of their
// space and NUL padding and joined with a dot if an extension exists.
func (e entryFileInfo) Name() string {
	name := strings.TrimRight(string(e.entry.EntryHeader.Name[:]), " \x00")
	ext := strings.TrimRight(string(e.entry.Ext[:]), " \x00")

	if ext != "" {
		name += "."
	}

	return name + ext
}

// Size returns the file size in bytes. It is meaningless for directories.
func (e entryFileInfo) Size() int64 {
	return int64(e.entry.FileSize)
}

func (e entryFileInfo) Mode() os.FileMode {
	if e.IsDir() {
		return os.ModeDir
	}
	return 0
}

// ModTime combines the packed last-write date and time of the entry.
// If the date is invalid the zero time.Time is returned. The time field
// cannot carry that information because midnight is a perfectly valid value.
func (e entryFileInfo) ModTime() time.Time {
	writeDate := ParseDate(e.entry.WriteDate)
	writeTime := ParseTime(e.entry.WriteTime)

	if writeDate.IsZero() {
		return time.Time{}
	}

	return time.Date(writeDate.Year(), writeDate.Month(), writeDate.Day(), writeTime.Hour(), writeTime.Minute(), writeTime.Second(), 0, time.UTC)
}

func (e entryFileInfo) IsDir() bool {
	return e.entry.Attribute&AttrDirectory == AttrDirectory
}

func (e entryFileInfo) Sys() interface{} {
	return e.entry
}
