// Package nickname derives human-readable nicknames such as "GiftedLava5"
// from hex digests.
package nickname

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/systemshift/robo-identities/internal/errs"
)

// Word list file names, one word per line.
const (
	AdjectivesFile = "adjectives.txt"
	NounsFile      = "nouns.txt"
)

var (
	//go:embed words/adjectives.txt
	embeddedAdjectives []byte
	//go:embed words/nouns.txt
	embeddedNouns []byte
)

// Dictionary holds the ordered word lists a nickname is assembled from.
// Word order is part of the output: reordering a list renames everyone.
type Dictionary struct {
	Adjectives []string
	Nouns      []string
}

var defaultDictionary = sync.OnceValue(func() *Dictionary {
	adj, err := ParseWords(bytes.NewReader(embeddedAdjectives))
	if err != nil {
		panic("nickname: embedded adjectives: " + err.Error())
	}
	nouns, err := ParseWords(bytes.NewReader(embeddedNouns))
	if err != nil {
		panic("nickname: embedded nouns: " + err.Error())
	}
	return &Dictionary{Adjectives: adj, Nouns: nouns}
})

// Default returns the dictionary compiled into the binary. Callers must not
// modify it.
func Default() *Dictionary {
	return defaultDictionary()
}

// ParseWords reads one word per line. Surrounding whitespace is trimmed and
// blank lines are skipped.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.New(errs.ErrIO, "parse words", err)
	}
	if len(words) == 0 {
		return nil, errs.Errorf(errs.ErrMissingRequiredData, "parse words", "empty word list")
	}
	return words, nil
}

// LoadDictionary reads AdjectivesFile and NounsFile from dir.
func LoadDictionary(dir string) (*Dictionary, error) {
	if dir == "" {
		return nil, errs.Errorf(errs.ErrMissingRequiredData, "load dictionary", "empty directory")
	}
	adj, err := loadWords(filepath.Join(dir, AdjectivesFile))
	if err != nil {
		return nil, err
	}
	nouns, err := loadWords(filepath.Join(dir, NounsFile))
	if err != nil {
		return nil, err
	}
	return &Dictionary{Adjectives: adj, Nouns: nouns}, nil
}

func loadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.New(errs.ErrIO, "load dictionary", err)
	}
	defer f.Close()
	words, err := ParseWords(f)
	if err != nil {
		return nil, errs.Wrap(errs.ErrIO, "load "+path, err)
	}
	return words, nil
}

func (d *Dictionary) validate() error {
	if d == nil || len(d.Adjectives) == 0 || len(d.Nouns) == 0 {
		return errs.Errorf(errs.ErrMissingRequiredData, "nickname", "empty dictionary")
	}
	return nil
}
