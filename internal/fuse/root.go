// Package fuse serves avatars as a read-only filesystem. Looking up any name
// under the mount creates a directory for that seed:
//
//	<mount>/<seed>/avatar.png
//	<mount>/<seed>/avatar.b64
//	<mount>/<seed>/avatar.cid
//	<mount>/<seed>/nickname
//	<mount>/<seed>/parts.json
//
// Files are rendered on first read and kept for the life of the inode.
package fuse

import (
	"context"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
)

// RootNode is the mountpoint directory. Readdir lists the seeds looked up so
// far.
type RootNode struct {
	fs.Inode
	renderer  *Renderer
	accessLog *AccessLog
}

var _ = (fs.NodeGetattrer)((*RootNode)(nil))
var _ = (fs.NodeLookuper)((*RootNode)(nil))

// NewRoot returns the root of an avatar filesystem. accessLog may be nil.
func NewRoot(renderer *Renderer, accessLog *AccessLog) *RootNode {
	return &RootNode{renderer: renderer, accessLog: accessLog}
}

func (r *RootNode) Getattr(ctx context.Context, fh fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	out.Mode = 0555
	out.Ino = stableIno()
	return fs.OK
}

func (r *RootNode) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*fs.Inode, syscall.Errno) {
	if ch := r.GetChild(name); ch != nil {
		return ch, fs.OK
	}
	dir := &SeedDir{
		state:     &seedState{seed: name, renderer: r.renderer},
		accessLog: r.accessLog,
	}
	child := r.NewPersistentInode(ctx, dir, fs.StableAttr{
		Mode: syscall.S_IFDIR,
		Ino:  stableIno(name),
	})
	r.AddChild(name, child, true)
	return child, fs.OK
}
