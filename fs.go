package fat12

import (
	"errors"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/ndntri/FAT12---File-System-Reader/checkpoint"
	"github.com/spf13/afero"
)

// These errors may occur while using the filesystem surface.
var (
	ErrReadOnly = errors.New("the filesystem is read-only")
	ErrNotExist = errors.New("file or directory does not exist")
)

// Fs exposes a mounted volume as a read-only afero.Fs. Paths are resolved
// against the formatted 8.3 names, matching is case-insensitive because FAT
// stores short names in upper case.
type Fs struct {
	vol *Volume
}

// New mounts the volume image provided by reader and exposes it as a
// filesystem.
func New(reader io.ReadSeeker) (*Fs, error) {
	vol, err := MountReader(reader)
	if err != nil {
		return nil, err
	}

	return &Fs{vol: vol}, nil
}

// NewFs exposes an already mounted volume as a filesystem.
func NewFs(vol *Volume) *Fs {
	return &Fs{vol: vol}
}

// Volume returns the mounted volume behind the filesystem.
func (fsys *Fs) Volume() *Volume {
	return fsys.vol
}

// normalizePath cleans name into a rooted, slash-separated path without the
// leading slash. The root directory maps to the empty string.
func normalizePath(name string) string {
	name = path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimPrefix(name, "/")
}

// rootFileInfo describes the root directory, which has no entry of its own.
type rootFileInfo struct{}

func (rootFileInfo) Name() string       { return string(os.PathSeparator) }
func (rootFileInfo) Size() int64        { return 0 }
func (rootFileInfo) Mode() os.FileMode  { return os.ModeDir }
func (rootFileInfo) ModTime() time.Time { return time.Time{} }
func (rootFileInfo) IsDir() bool        { return true }
func (rootFileInfo) Sys() interface{}   { return nil }

// lookup resolves name component by component, starting at the root
// directory. It returns the entry of the final component, or nil for the
// root directory itself.
func (fsys *Fs) lookup(name string) (*DirEntry, error) {
	name = normalizePath(name)
	if name == "" {
		return nil, nil
	}

	parts := strings.Split(name, "/")
	current := RootDirCluster
	var entry *DirEntry

	for i, part := range parts {
		entries, err := fsys.vol.ReadDir(current)
		if err != nil {
			return nil, checkpoint.Wrap(err, ErrNotExist)
		}

		entry = nil
		for j := range entries {
			if strings.EqualFold(entries[j].FileInfo().Name(), part) {
				entry = &entries[j]
				break
			}
		}

		if entry == nil {
			return nil, checkpoint.Wrap(os.ErrNotExist, ErrNotExist)
		}

		if i < len(parts)-1 {
			if !entry.IsDir() {
				return nil, checkpoint.Wrap(os.ErrNotExist, ErrNotExist)
			}
			current = entry.FirstCluster()
		}
	}

	return entry, nil
}

func (fsys *Fs) Open(name string) (afero.File, error) {
	entry, err := fsys.lookup(name)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		return &File{
			vol:          fsys.vol,
			path:         "",
			isDirectory:  true,
			firstCluster: RootDirCluster,
			stat:         rootFileInfo{},
		}, nil
	}

	return &File{
		vol:          fsys.vol,
		path:         normalizePath(name),
		isDirectory:  entry.IsDir(),
		isReadOnly:   entry.Attribute&AttrReadOnly != 0,
		isHidden:     entry.Attribute&AttrHidden != 0,
		isSystem:     entry.Attribute&AttrSystem != 0,
		firstCluster: entry.FirstCluster(),
		stat:         entry.FileInfo(),
	}, nil
}

// OpenFile opens a file like Open. Any flag requesting write access fails
// with ErrReadOnly.
func (fsys *Fs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_APPEND|os.O_CREATE|os.O_TRUNC) != 0 {
		return nil, checkpoint.From(ErrReadOnly)
	}
	return fsys.Open(name)
}

func (fsys *Fs) Stat(name string) (os.FileInfo, error) {
	entry, err := fsys.lookup(name)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		return rootFileInfo{}, nil
	}
	return entry.FileInfo(), nil
}

func (fsys *Fs) Name() string {
	return "fat12"
}

func (fsys *Fs) Create(name string) (afero.File, error) {
	return nil, checkpoint.From(ErrReadOnly)
}

func (fsys *Fs) Mkdir(name string, perm os.FileMode) error {
	return checkpoint.From(ErrReadOnly)
}

func (fsys *Fs) MkdirAll(path string, perm os.FileMode) error {
	return checkpoint.From(ErrReadOnly)
}

func (fsys *Fs) Remove(name string) error {
	return checkpoint.From(ErrReadOnly)
}

func (fsys *Fs) RemoveAll(path string) error {
	return checkpoint.From(ErrReadOnly)
}

func (fsys *Fs) Rename(oldname, newname string) error {
	return checkpoint.From(ErrReadOnly)
}

func (fsys *Fs) Chmod(name string, mode os.FileMode) error {
	return checkpoint.From(ErrReadOnly)
}

func (fsys *Fs) Chown(name string, uid, gid int) error {
	return checkpoint.From(ErrReadOnly)
}

func (fsys *Fs) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return checkpoint.From(ErrReadOnly)
}
