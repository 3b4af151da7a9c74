package avatar

import (
	"cmp"
	"path"
	"slices"

	"github.com/systemshift/robo-identities/internal/assets"
	"github.com/systemshift/robo-identities/internal/digest"
	"github.com/systemshift/robo-identities/internal/errs"
)

// Index slots. Changing any of these changes every avatar ever rendered.
const (
	slotColor         = 0
	slotSet           = 1
	slotBackgroundSet = 2
	slotBackground    = 6
	slotHue           = 7
)

// Selection is the set of layers chosen for one digest.
type Selection struct {
	Set        string        `json:"set"`
	Color      string        `json:"color,omitempty"`
	Parts      []assets.Item `json:"parts"`
	Background *assets.Item  `json:"background,omitempty"`
	Hue        *int          `json:"hue,omitempty"`
}

// categorySlot maps the i-th mandatory category to its slot. Categories
// 0-5 use slots 0-5; later categories skip the background and hue slots.
func categorySlot(i int) int {
	if i < slotBackground {
		return i
	}
	return i + 2
}

// Select picks one item per category of the configured set, plus the
// optional background and hue, and orders the parts by layer key.
func Select(v digest.IndexVector, opts Options) (*Selection, error) {
	if err := validate(v, opts); err != nil {
		return nil, err
	}
	repo := opts.Assets
	logger := opts.logger()

	set, color, err := resolveSet(v, opts)
	if err != nil {
		return nil, err
	}
	cats, err := repo.Categories(set)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, errs.Errorf(errs.ErrInvalidIndex, "select", "set %s/%s has no categories", repo.Root(), set)
	}
	if last := categorySlot(len(cats) - 1); last >= len(v) {
		return nil, errs.Errorf(errs.ErrInvalidIndex, "select",
			"set %s/%s has %d categories, more than the %d-slot index vector can address", repo.Root(), set, len(cats), len(v))
	}

	sel := &Selection{Set: set, Color: color}
	for i, cat := range cats {
		item, err := selectItem(v, repo, set, cat, categorySlot(i))
		if err != nil {
			if !opts.Lenient {
				return nil, err
			}
			logger.Printf("robo-identities: omitting category %s: %v", cat, err)
			continue
		}
		sel.Parts = append(sel.Parts, item)
	}
	sortByLayer(sel.Parts)

	if opts.useBackground() && opts.BackgroundSet != "" {
		bg, err := selectBackground(v, repo, opts.BackgroundSet)
		if err != nil {
			logger.Printf("robo-identities: omitting background: %v", err)
		} else {
			sel.Background = &bg
		}
	}

	if opts.HueRotation {
		hue, err := v.Mod(slotHue, 360)
		if err != nil {
			logger.Printf("robo-identities: omitting hue rotation: %v", err)
		} else {
			sel.Hue = &hue
		}
	}
	return sel, nil
}

func validate(v digest.IndexVector, opts Options) error {
	switch {
	case len(v) == 0:
		return errs.Errorf(errs.ErrMissingRequiredData, "build", "empty index vector")
	case opts.Set == "":
		return errs.Errorf(errs.ErrMissingRequiredData, "build", "empty set name")
	case opts.Assets.Root() == "":
		return errs.Errorf(errs.ErrMissingRequiredData, "build", "empty asset root")
	case opts.Width <= 0 || opts.Height <= 0:
		return errs.Errorf(errs.ErrMissingRequiredData, "build", "invalid size %dx%d", opts.Width, opts.Height)
	}
	return nil
}

// resolveSet returns the directory the categories are read from and, for the
// color-partitioned default set, the color used.
func resolveSet(v digest.IndexVector, opts Options) (string, string, error) {
	repo := opts.Assets
	set := opts.Set
	if set == AnySet {
		sets, err := repo.Sets()
		if err != nil {
			return "", "", err
		}
		i, err := v.Mod(slotSet, len(sets))
		if err != nil {
			return "", "", errs.Wrap(errs.ErrInvalidIndex, "select set", err)
		}
		set = sets[i]
	}
	if set != DefaultSet {
		return set, "", nil
	}

	color := opts.Color
	if color == "" {
		colors, err := repo.Colors(set)
		if err != nil {
			return "", "", err
		}
		i, err := v.Mod(slotColor, len(colors))
		if err != nil {
			return "", "", errs.Wrap(errs.ErrInvalidIndex, "select color", err)
		}
		color = colors[i]
	}
	return path.Join(set, color), color, nil
}

func selectItem(v digest.IndexVector, repo *assets.Repository, set, category string, slot int) (assets.Item, error) {
	items, err := repo.Items(set, category)
	if err != nil {
		return assets.Item{}, err
	}
	if len(items) == 0 {
		return assets.Item{}, errs.Errorf(errs.ErrInvalidIndex, "select",
			"category %s has no items under %s/%s", category, repo.Root(), set)
	}
	i, err := v.Mod(slot, len(items))
	if err != nil {
		return assets.Item{}, errs.Wrap(errs.ErrInvalidIndex, "select "+category, err)
	}
	return items[i], nil
}

func selectBackground(v digest.IndexVector, repo *assets.Repository, bgset string) (assets.Item, error) {
	if bgset == AnySet {
		sets, err := repo.BackgroundSets()
		if err != nil {
			return assets.Item{}, err
		}
		i, err := v.Mod(slotBackgroundSet, len(sets))
		if err != nil {
			return assets.Item{}, errs.Wrap(errs.ErrInvalidIndex, "select background set", err)
		}
		bgset = sets[i]
	}
	return selectItem(v, repo, assets.BackgroundsDir, bgset, slotBackground)
}

// sortByLayer orders parts by their layer key. Parts without a key go last;
// ties keep category order.
func sortByLayer(parts []assets.Item) {
	slices.SortStableFunc(parts, func(a, b assets.Item) int {
		la, okA := a.Layer()
		lb, okB := b.Layer()
		switch {
		case okA && okB:
			return cmp.Compare(la, lb)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
}
