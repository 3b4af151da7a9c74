package nickname

import (
	"math/big"
	"strconv"

	"github.com/systemshift/robo-identities/internal/digest"
	"github.com/systemshift/robo-identities/internal/errs"
)

// MaxSuffix bounds the numeric suffix: it is always in [0, MaxSuffix).
const MaxSuffix = 999

// PoolSize is the number of distinct nicknames d can produce.
func (d *Dictionary) PoolSize() *big.Int {
	n := big.NewInt(MaxSuffix)
	n.Mul(n, big.NewInt(int64(len(d.Nouns))))
	return n.Mul(n, big.NewInt(int64(len(d.Adjectives))))
}

// Derive projects the integer value of hex onto the nickname pool and
// returns Adjective + Noun + number. The projection is
// floor(value * pool / 16^len(hex)), so every hex string of the same length
// maps uniformly across the pool.
func (d *Dictionary) Derive(hex string) (string, error) {
	if err := d.validate(); err != nil {
		return "", err
	}
	if hex == "" {
		return "", errs.Errorf(errs.ErrMissingRequiredData, "derive", "empty hex")
	}
	if !digest.ValidHex(hex) {
		return "", errs.Errorf(errs.ErrParse, "derive", "%q is not hexadecimal", hex)
	}
	value, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return "", errs.Errorf(errs.ErrParse, "derive", "%q is not hexadecimal", hex)
	}

	id := value.Mul(value, d.PoolSize())
	id.Rsh(id, uint(4*len(hex)))

	perAdjective := big.NewInt(int64(MaxSuffix * len(d.Nouns)))
	adj, rem := new(big.Int).QuoRem(id, perAdjective, new(big.Int))
	r := rem.Int64()
	noun, number := r/MaxSuffix, r%MaxSuffix

	return d.Adjectives[adj.Int64()] + d.Nouns[noun] + strconv.FormatInt(number, 10), nil
}

// Derive uses the default dictionary.
func Derive(hex string) (string, error) {
	return Default().Derive(hex)
}
