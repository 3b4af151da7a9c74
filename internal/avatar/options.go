package avatar

import (
	"log"

	"github.com/multiformats/go-multihash"

	"github.com/systemshift/robo-identities/internal/assets"
)

const (
	// DefaultSize is the default width and height in pixels.
	DefaultSize = 256

	// DefaultSet is the set used when none is given. It is partitioned by
	// color.
	DefaultSet = "set1"

	// AnySet lets the digest pick the set, or the background set.
	AnySet = "any"
)

// Options configures one avatar build. The zero value renders a 256x256
// avatar from the built-in set1 with a hash-derived color and no background.
type Options struct {
	Width  int
	Height int

	// UseBackground gates the background layer; nil means true. A background
	// is only drawn when BackgroundSet is also set.
	UseBackground *bool

	Set           string
	Color         string // used verbatim for DefaultSet; ignored by other sets
	BackgroundSet string

	// HueRotation rotates the hue of every non-background layer by a
	// digest-derived angle.
	HueRotation bool

	// Lenient omits a category that cannot be selected instead of failing
	// the build. The omission is logged.
	Lenient bool

	// Hash is the multihash code used to digest the seed. Zero means
	// SHA2-512.
	Hash uint64

	Assets *assets.Repository
	Logger *log.Logger
}

// Bool returns a pointer to b, for Options.UseBackground.
func Bool(b bool) *bool {
	return &b
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultSize
	}
	if o.Height == 0 {
		o.Height = DefaultSize
	}
	if o.Set == "" {
		o.Set = DefaultSet
	}
	if o.Hash == 0 {
		o.Hash = multihash.SHA2_512
	}
	if o.Assets == nil {
		o.Assets = assets.Builtin()
	}
	return o
}

func (o Options) useBackground() bool {
	return o.UseBackground == nil || *o.UseBackground
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}
