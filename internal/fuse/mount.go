package fuse

import (
	"github.com/hanwen/go-fuse/v2/fs"
	gofuse "github.com/hanwen/go-fuse/v2/fuse"
)

// MountFS mounts the avatar filesystem at mountpoint. accessLog may be nil.
// Returns the server (call server.Wait() to block, server.Unmount() to stop).
func MountFS(mountpoint string, renderer *Renderer, accessLog *AccessLog, debug bool) (*gofuse.Server, error) {
	root := NewRoot(renderer, accessLog)

	opts := &fs.Options{
		MountOptions: gofuse.MountOptions{
			FsName:        "robo-identities",
			Name:          "robo",
			DisableXAttrs: true,
			Debug:         debug,
			Options:       []string{"ro"},
		},
	}

	server, err := fs.Mount(mountpoint, root, opts)
	if err != nil {
		return nil, err
	}
	return server, nil
}
