// Package assets enumerates the layer images avatars are assembled from.
//
// A repository is laid out as {set}/{category}/{item}. The default set is
// partitioned by color, {set1}/{color}/{category}/{item}, and backgrounds
// live under backgrounds/{bgset}/{item}. Item names start with a numeric
// layer key followed by '#', e.g. "03#eyes-01.png".
//
// Every listing is sorted explicitly. Selection indices are taken modulo
// these listings, so a different order would silently change every avatar.
package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/multiformats/go-multibase"
	_ "golang.org/x/image/webp"

	"github.com/systemshift/robo-identities/internal/errs"
)

// BackgroundsDir is the top-level directory holding background sets.
const BackgroundsDir = "backgrounds"

// LayerSeparator ends the numeric layer key at the start of an item name.
const LayerSeparator = "#"

//go:embed builtin
var builtinFS embed.FS

// Item is one selectable layer file.
type Item struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Path     string `json:"path"`
}

// Layer returns the numeric key before LayerSeparator in the item name.
func (it Item) Layer() (int, bool) {
	prefix, _, ok := strings.Cut(it.Name, LayerSeparator)
	if !ok || prefix == "" {
		return 0, false
	}
	n, err := strconv.Atoi(prefix)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Repository reads layers from an fs.FS.
type Repository struct {
	fsys fs.FS
	root string
}

// New wraps fsys. root names the repository in errors and must be non-empty
// for the repository to be usable by the avatar builder.
func New(fsys fs.FS, root string) *Repository {
	return &Repository{fsys: fsys, root: root}
}

// Open returns a repository over the directory dir.
func Open(dir string) (*Repository, error) {
	if dir == "" {
		return nil, errs.Errorf(errs.ErrMissingRequiredData, "open assets", "empty asset root")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errs.New(errs.ErrIO, "open assets", err)
	}
	if !info.IsDir() {
		return nil, errs.Errorf(errs.ErrIO, "open assets", "%s is not a directory", dir)
	}
	return New(os.DirFS(dir), dir), nil
}

// Builtin returns the layer set compiled into the binary.
func Builtin() *Repository {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic("assets: builtin set missing: " + err.Error())
	}
	return New(sub, "builtin")
}

// Root names the repository.
func (r *Repository) Root() string {
	if r == nil {
		return ""
	}
	return r.root
}

// Sets lists the avatar sets, excluding the backgrounds directory.
func (r *Repository) Sets() ([]string, error) {
	dirs, err := r.list(".", true)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(dirs, func(d string) bool { return d == BackgroundsDir }), nil
}

// Categories lists the category directories of set. set may be nested,
// e.g. "set1/blue".
func (r *Repository) Categories(set string) ([]string, error) {
	return r.list(set, true)
}

// Colors lists the color partitions of a color-partitioned set.
func (r *Repository) Colors(set string) ([]string, error) {
	return r.list(set, true)
}

// Items lists the layer files of one category.
func (r *Repository) Items(set, category string) ([]Item, error) {
	dir := path.Join(set, category)
	names, err := r.list(dir, false)
	if err != nil {
		return nil, err
	}
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Category: category, Name: name, Path: path.Join(dir, name)}
	}
	return items, nil
}

// BackgroundSets lists the background sets.
func (r *Repository) BackgroundSets() ([]string, error) {
	return r.list(BackgroundsDir, true)
}

// Backgrounds lists the images of one background set.
func (r *Repository) Backgrounds(bgset string) ([]Item, error) {
	return r.Items(BackgroundsDir, bgset)
}

// ReadFile returns the raw bytes stored at p.
func (r *Repository) ReadFile(p string) ([]byte, error) {
	if r == nil || r.fsys == nil {
		return nil, errs.Errorf(errs.ErrMissingRequiredData, "read "+p, "no asset repository")
	}
	if !fs.ValidPath(p) {
		return nil, errs.Errorf(errs.ErrIO, "read "+p, "invalid path in %s", r.root)
	}
	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return nil, errs.New(errs.ErrIO, "read "+path.Join(r.root, p), err)
	}
	return data, nil
}

// Load reads and decodes an item.
func (r *Repository) Load(it Item) (image.Image, error) {
	data, err := r.ReadFile(it.Path)
	if err != nil {
		return nil, err
	}
	return Decode(it.Name, data)
}

// list returns the sorted names of the directories (dirs) or regular files
// (!dirs) directly under dir. Dot-files are skipped.
func (r *Repository) list(dir string, dirs bool) ([]string, error) {
	if r == nil || r.fsys == nil {
		return nil, errs.Errorf(errs.ErrMissingRequiredData, "list "+dir, "no asset repository")
	}
	op := "list " + path.Join(r.root, dir)
	if !fs.ValidPath(dir) {
		return nil, errs.Errorf(errs.ErrIO, op, "invalid path %q", dir)
	}
	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		return nil, errs.New(errs.ErrIO, op, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") || e.IsDir() != dirs {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// Decode turns stored layer bytes into an image. Names ending in .b64 or
// .txt hold standard base64 text wrapping a raster; anything else is a
// raster whose format (PNG, WebP) is sniffed from its header.
func Decode(name string, data []byte) (image.Image, error) {
	op := "decode " + name
	if isTextPayload(name) {
		// The payload is the Base64pad multibase form minus its prefix.
		text := string(rune(multibase.Base64pad)) + strings.Join(strings.Fields(string(data)), "")
		_, raw, err := multibase.Decode(text)
		if err != nil {
			return nil, errs.New(errs.ErrImageDecode, op, err)
		}
		data = raw
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errs.New(errs.ErrImageDecode, op, err)
	}
	return img, nil
}

func isTextPayload(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".b64" || ext == ".txt"
}
