package fuse

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/systemshift/robo-identities/internal/avatar"
	"github.com/systemshift/robo-identities/internal/digest"
	"github.com/systemshift/robo-identities/internal/nickname"
)

// Files exposed in every seed directory.
const (
	FilePNG      = "avatar.png"
	FileBase64   = "avatar.b64"
	FileCID      = "avatar.cid"
	FileNickname = "nickname"
	FileParts    = "parts.json"
)

// FileNames lists the files of a seed directory in readdir order.
var FileNames = []string{FilePNG, FileBase64, FileCID, FileNickname, FileParts}

// Renderer produces the contents of a seed directory.
type Renderer struct {
	Options avatar.Options
}

// Rendered holds every file of one seed directory.
type Rendered struct {
	files map[string][]byte
}

// Render generates all files for seed.
func (r *Renderer) Render(ctx context.Context, seed string) (*Rendered, error) {
	img, err := avatar.Render(ctx, seed, r.Options)
	if err != nil {
		return nil, err
	}
	png, err := avatar.EncodePNG(img)
	if err != nil {
		return nil, err
	}
	b64, err := avatar.Base64(png)
	if err != nil {
		return nil, err
	}
	cid, err := avatar.Fingerprint(png)
	if err != nil {
		return nil, err
	}
	sel, err := avatar.Explain(seed, r.Options)
	if err != nil {
		return nil, err
	}
	parts, err := json.MarshalIndent(sel, "", "  ")
	if err != nil {
		return nil, err
	}
	hx, err := digest.SHA256(seed)
	if err != nil {
		return nil, err
	}
	name, err := nickname.Generate(hx)
	if err != nil {
		return nil, err
	}

	return &Rendered{files: map[string][]byte{
		FilePNG:      png,
		FileBase64:   []byte(b64 + "\n"),
		FileCID:      []byte(cid + "\n"),
		FileNickname: []byte(name + "\n"),
		FileParts:    append(parts, '\n'),
	}}, nil
}

// File returns the contents of one file.
func (r *Rendered) File(name string) ([]byte, bool) {
	data, ok := r.files[name]
	return data, ok
}

// seedState renders a seed at most once per directory inode. Failures are
// not cached so a canceled read can be retried.
type seedState struct {
	mu       sync.Mutex
	seed     string
	renderer *Renderer
	rendered *Rendered
}

func (s *seedState) get(ctx context.Context) (*Rendered, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rendered != nil {
		return s.rendered, nil
	}
	r, err := s.renderer.Render(ctx, s.seed)
	if err != nil {
		return nil, err
	}
	s.rendered = r
	return r, nil
}

// readAt slices data the way a read(2) at off for len(dest) bytes would.
func readAt(data []byte, off int64, n int) []byte {
	if off >= int64(len(data)) || off < 0 {
		return nil
	}
	end := off + int64(n)
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	return data[off:end]
}
