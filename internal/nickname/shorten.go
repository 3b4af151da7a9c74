package nickname

import (
	"github.com/systemshift/robo-identities/internal/digest"
)

const (
	DefaultMaxLength     = 18
	DefaultMaxIterations = 10000
	DefaultSalt          = "42"
)

// Options bounds the rehash loop in Shorten. Zero fields take the defaults
// above.
type Options struct {
	MaxLength     int
	MaxIterations int
	Salt          string
	Dictionary    *Dictionary
}

func (o Options) withDefaults() Options {
	if o.MaxLength == 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Salt == "" {
		o.Salt = DefaultSalt
	}
	if o.Dictionary == nil {
		o.Dictionary = Default()
	}
	return o
}

// Shorten derives a nickname of at most opts.MaxLength bytes. While the
// candidate is too long the hex is replaced by SHA2-256(hex + salt) and the
// derivation retried, up to opts.MaxIterations times. An exhausted budget
// returns "" and a nil error.
func Shorten(hex string, opts Options) (string, error) {
	opts = opts.withDefaults()
	cur := hex
	for i := 0; ; i++ {
		name, err := opts.Dictionary.Derive(cur)
		if err != nil {
			return "", err
		}
		if len(name) <= opts.MaxLength {
			return name, nil
		}
		if i >= opts.MaxIterations {
			return "", nil
		}
		if cur, err = digest.SHA256(cur + opts.Salt); err != nil {
			return "", err
		}
	}
}

// Generate is Shorten with default options.
func Generate(hex string) (string, error) {
	return Shorten(hex, Options{})
}
