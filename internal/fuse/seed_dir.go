package fuse

import (
	"context"
	"log"
	"slices"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
)

// SeedDir is the directory of one seed.
type SeedDir struct {
	fs.Inode
	state     *seedState
	accessLog *AccessLog
}

var _ = (fs.NodeLookuper)((*SeedDir)(nil))
var _ = (fs.NodeReaddirer)((*SeedDir)(nil))
var _ = (fs.NodeGetattrer)((*SeedDir)(nil))

func (d *SeedDir) Getattr(ctx context.Context, fh fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	out.Mode = 0555
	out.Ino = stableIno(d.state.seed)
	return fs.OK
}

func (d *SeedDir) Readdir(ctx context.Context) (fs.DirStream, syscall.Errno) {
	entries := make([]fuse.DirEntry, len(FileNames))
	for i, name := range FileNames {
		entries[i] = fuse.DirEntry{
			Name: name,
			Mode: syscall.S_IFREG,
			Ino:  stableIno(d.state.seed, name),
		}
	}
	return fs.NewListDirStream(entries), fs.OK
}

func (d *SeedDir) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*fs.Inode, syscall.Errno) {
	if !slices.Contains(FileNames, name) {
		return nil, syscall.ENOENT
	}
	f := &SeedFile{dir: d, name: name}
	child := d.NewInode(ctx, f, fs.StableAttr{
		Mode: syscall.S_IFREG,
		Ino:  stableIno(d.state.seed, name),
	})
	return child, fs.OK
}

// SeedFile is one rendered artifact of a seed.
type SeedFile struct {
	fs.Inode
	dir  *SeedDir
	name string
}

var _ = (fs.NodeGetattrer)((*SeedFile)(nil))
var _ = (fs.NodeOpener)((*SeedFile)(nil))
var _ = (fs.NodeReader)((*SeedFile)(nil))

func (f *SeedFile) data(ctx context.Context) ([]byte, syscall.Errno) {
	r, err := f.dir.state.get(ctx)
	if err != nil {
		log.Printf("robo-identities: render %q: %v", f.dir.state.seed, err)
		return nil, syscall.EIO
	}
	data, ok := r.File(f.name)
	if !ok {
		return nil, syscall.ENOENT
	}
	return data, fs.OK
}

func (f *SeedFile) Getattr(ctx context.Context, fh fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	data, errno := f.data(ctx)
	if errno != fs.OK {
		return errno
	}
	out.Mode = 0444
	out.Size = uint64(len(data))
	out.Ino = stableIno(f.dir.state.seed, f.name)
	return fs.OK
}

func (f *SeedFile) Open(ctx context.Context, flags uint32) (fs.FileHandle, uint32, syscall.Errno) {
	if flags&(syscall.O_WRONLY|syscall.O_RDWR) != 0 {
		return nil, 0, syscall.EROFS
	}
	return nil, fuse.FOPEN_KEEP_CACHE, fs.OK
}

func (f *SeedFile) Read(ctx context.Context, fh fs.FileHandle, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	data, errno := f.data(ctx)
	if errno != fs.OK {
		return nil, errno
	}
	if off == 0 {
		f.dir.accessLog.Log(f.dir.state.seed, f.name)
	}
	return fuse.ReadResultData(readAt(data, off, len(dest))), fs.OK
}
