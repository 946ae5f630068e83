// Package preset manages named gradients persisted in the configuration directory.
package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/huestep/huestep/filesystem"
	"github.com/huestep/huestep/gradient"
	"github.com/huestep/huestep/log"
	"github.com/huestep/huestep/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var (
	// ErrNotFound is returned when no saved or built-in preset has the requested name.
	ErrNotFound = errors.New("preset not found")

	// ErrBuiltin is returned when trying to remove a built-in preset.
	ErrBuiltin = errors.New("built-in presets cannot be removed")

	// ErrEmptyName is returned when saving a preset without a name.
	ErrEmptyName = errors.New("preset name is empty")
)

// Preset is a named gradient configuration.
type Preset struct {
	Name    string         `json:"name" jsonschema:"description=Unique lower-case preset name."`
	Colors  []string       `json:"colors" jsonschema:"description=Anchor colors in #rrggbb or #rgb form."`
	Steps   gradient.Steps `json:"steps" jsonschema:"type=string,description=Balanced count such as 40 or per-zone weights such as [20,40,60]."`
	SavedAt time.Time      `json:"saved_at,omitempty"`
	Builtin bool           `json:"-"`
}

// Gradient builds the gradient described by the preset.
func (p *Preset) Gradient() *gradient.Gradient {
	return gradient.New(p.Colors, p.Steps)
}

// Validate reports whether the preset has a name and a generatable gradient.
func (p *Preset) Validate() error {
	if normalize(p.Name) == "" {
		return ErrEmptyName
	}

	if err := p.Gradient().Validate(); err != nil {
		return fmt.Errorf("preset %s: %w", p.Name, err)
	}

	return nil
}

// cacher provides a disk-backed registry of saved presets.
var cacher = gache.New[map[string]*Preset](
	&gache.Options{
		Path:       where.Presets(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func saved() (map[string]*Preset, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Preset), nil
	}
	return cached, nil
}

// Save persists a preset, replacing any saved preset of the same name.
// A saved preset shadows a built-in one of the same name.
func Save(p *Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}

	presets, err := saved()
	if err != nil {
		return err
	}

	record := &Preset{
		Name:    normalize(p.Name),
		Colors:  p.Colors,
		Steps:   p.Steps,
		SavedAt: time.Now(),
	}
	presets[record.Name] = record

	log.Infof("saving preset %s %v %s", record.Name, record.Colors, record.Steps)
	return cacher.Set(presets)
}

// Get looks a preset up by name, preferring saved presets over built-in ones.
func Get(name string) (mo.Option[*Preset], error) {
	name = normalize(name)

	presets, err := saved()
	if err != nil {
		return mo.None[*Preset](), err
	}

	if p, ok := presets[name]; ok {
		return mo.Some(p), nil
	}

	if p, ok := builtins()[name]; ok {
		return mo.Some(p), nil
	}

	return mo.None[*Preset](), nil
}

// MustGet is like Get but treats a missing preset as ErrNotFound.
func MustGet(name string) (*Preset, error) {
	found, err := Get(name)
	if err != nil {
		return nil, err
	}

	p, ok := found.Get()
	if !ok {
		err = fmt.Errorf("%w: %s", ErrNotFound, name)
		if closest, ok := Closest(name).Get(); ok {
			err = fmt.Errorf("%w, did you mean %s?", err, closest)
		}
		return nil, err
	}

	return p, nil
}

// All returns every resolvable preset sorted by name.
func All() ([]*Preset, error) {
	presets, err := saved()
	if err != nil {
		return nil, err
	}

	merged := lo.Assign(builtins(), presets)
	all := lo.Values(merged)
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})

	return all, nil
}

// Names returns the names of every resolvable preset, sorted.
func Names() []string {
	all, err := All()
	if err != nil {
		return nil
	}
	return lo.Map(all, func(p *Preset, _ int) string { return p.Name })
}

// Remove deletes a saved preset.
func Remove(name string) error {
	name = normalize(name)

	presets, err := saved()
	if err != nil {
		return err
	}

	if _, ok := presets[name]; !ok {
		if _, builtin := builtins()[name]; builtin {
			return fmt.Errorf("%w: %s", ErrBuiltin, name)
		}
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	delete(presets, name)
	return cacher.Set(presets)
}

// Find returns presets whose names fuzzily match query, best matches first.
func Find(query string) ([]*Preset, error) {
	all, err := All()
	if err != nil {
		return nil, err
	}

	names := lo.Map(all, func(p *Preset, _ int) string { return p.Name })
	ranks := fuzzy.RankFindNormalizedFold(normalize(query), names)
	sort.Sort(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) *Preset {
		return all[r.OriginalIndex]
	}), nil
}

// Closest returns the known preset name with the smallest edit distance to name.
func Closest(name string) mo.Option[string] {
	names := Names()
	if len(names) == 0 {
		return mo.None[string]()
	}

	name = normalize(name)
	return mo.Some(lo.MinBy(names, func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	}))
}

func normalize(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}
