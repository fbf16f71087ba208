package fat12

import (
	"errors"
	"io"
	"io/fs"

	"github.com/ndntri/FAT12---File-System-Reader/checkpoint"
)

// GoDirEntry adapts an os.FileInfo to fs.DirEntry.
type GoDirEntry struct {
	fs.FileInfo
}

func (g GoDirEntry) Type() fs.FileMode {
	return g.FileInfo.Mode().Type()
}

func (g GoDirEntry) Info() (fs.FileInfo, error) {
	return g.FileInfo, nil
}

// GoFile wraps File to satisfy fs.File and fs.ReadDirFile.
type GoFile struct {
	*File
}

func (g GoFile) Stat() (fs.FileInfo, error) {
	return g.File.Stat()
}

func (g GoFile) Read(bytes []byte) (int, error) {
	return g.File.Read(bytes)
}

func (g GoFile) Close() error {
	return g.File.Close()
}

func (g GoFile) ReadDir(n int) ([]fs.DirEntry, error) {
	entries, err := g.File.Readdir(n)

	goEntries := make([]fs.DirEntry, len(entries))
	for i, e := range entries {
		goEntries[i] = GoDirEntry{e}
	}

	return goEntries, err
}

// GoFs wraps Fs to be compatible with fs.FS.
type GoFs struct {
	Fs
}

// NewGoFS mounts the volume image provided by reader as an fs.FS compatible
// filesystem.
func NewGoFS(reader io.ReadSeeker) (*GoFs, error) {
	fsys, err := New(reader)
	if err != nil {
		return nil, err
	}

	return &GoFs{*fsys}, nil
}

func (g GoFs) Open(name string) (fs.File, error) {
	file, err := g.Fs.Open(name)
	if err != nil {
		return nil, err
	}

	f, ok := file.(*File)
	if !ok {
		return nil, checkpoint.From(errors.New("invalid File implementation"))
	}

	return GoFile{f}, nil
}
