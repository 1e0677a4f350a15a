package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/stylize/core"
)

// Style is a named text transformation. ID is unique within a registry,
// Category groups related styles. Icon is a stable key for presentation
// layers to pick a symbol; display names are owned by the presentation
// layer as well and are looked up by ID.
type Style struct {
	ID       string
	Category string
	Icon     string
	conv     Converter
}

// Convert applies the style to text. The zero Style returns text unchanged.
func (s Style) Convert(text string) string {
	if s.conv == nil {
		return text
	}
	return s.conv.Convert(text)
}

// Converter returns the converter backing the style.
func (s Style) Converter() Converter {
	return s.conv
}

func (s Style) String() string {
	return fmt.Sprintf("style(%s/%s)", s.Category, s.ID)
}

// Result is the output of one style for a batch conversion.
type Result struct {
	Style Style
	Text  string
}

// ErrEmptyInput is returned (wrapped as core.EINVALID) for conversion
// requests whose input is blank.
var ErrEmptyInput = errors.New("empty input")

// Registry holds the styles in a fixed order. It is populated by
// NewRegistry and never modified afterwards.
type Registry struct {
	styles     *linkedhashmap.Map // id => Style
	categories *linkedhashmap.Map // category => []Style
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	random RandomSource
}

// WithRandomSource sets the source randomized styles (zalgo, cute) draw
// their generators from. Tests use it with SeededSource.
func WithRandomSource(src RandomSource) Option {
	return func(opts *options) {
		opts.random = src
	}
}

// NewRegistry creates a registry holding all known styles.
func NewRegistry(opts ...Option) *Registry {
	o := &options{random: DefaultRandomSource}
	reg := &Registry{
		styles:     linkedhashmap.New(),
		categories: linkedhashmap.New(),
	}
	for _, opt := range opts {
		opt(o)
	}
	for _, def := range definitions(o.random) {
		reg.add(def)
	}
	tracer().Debugf("style registry holds %d styles in %d categories",
		reg.styles.Size(), reg.categories.Size())
	return reg
}

func (reg *Registry) add(s Style) {
	if _, exists := reg.styles.Get(s.ID); exists {
		panic(fmt.Sprintf("style: duplicate style id %q", s.ID))
	}
	reg.styles.Put(s.ID, s)
	var list []Style
	if l, ok := reg.categories.Get(s.Category); ok {
		list = l.([]Style)
	}
	reg.categories.Put(s.Category, append(list, s))
}

// Len returns the number of styles.
func (reg *Registry) Len() int {
	return reg.styles.Size()
}

// All returns every style in registry order.
func (reg *Registry) All() []Style {
	all := make([]Style, 0, reg.styles.Size())
	it := reg.styles.Iterator()
	for it.Next() {
		all = append(all, it.Value().(Style))
	}
	return all
}

// IDs returns the style ids in registry order.
func (reg *Registry) IDs() []string {
	ids := make([]string, 0, reg.styles.Size())
	for _, k := range reg.styles.Keys() {
		ids = append(ids, k.(string))
	}
	return ids
}

// Style returns the style for id.
func (reg *Registry) Style(id string) (Style, bool) {
	s, ok := reg.styles.Get(id)
	if !ok {
		return Style{}, false
	}
	return s.(Style), true
}

// Lookup is like Style, but reports an unknown id as an error of
// kind core.EMISSING.
func (reg *Registry) Lookup(id string) (Style, error) {
	if s, ok := reg.Style(id); ok {
		return s, nil
	}
	return Style{}, core.Error(core.EMISSING, "no style with id %q", id)
}

// ByCategory returns the styles of a category in registry order, or
// nil for an unknown category.
func (reg *Registry) ByCategory(category string) []Style {
	l, ok := reg.categories.Get(category)
	if !ok {
		return nil
	}
	list := l.([]Style)
	return append(make([]Style, 0, len(list)), list...)
}

// Categories returns the category keys in order of their first appearance.
func (reg *Registry) Categories() []string {
	cats := make([]string, 0, reg.categories.Size())
	for _, k := range reg.categories.Keys() {
		cats = append(cats, k.(string))
	}
	return cats
}

// ConvertAll applies every style to text, in registry order. text is
// trimmed first; blank input yields an error wrapping ErrEmptyInput.
func (reg *Registry) ConvertAll(text string) ([]Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, core.WrapError(ErrEmptyInput, core.EINVALID, "nothing to convert")
	}
	results := make([]Result, 0, reg.styles.Size())
	for _, s := range reg.All() {
		results = append(results, Result{Style: s, Text: s.Convert(text)})
	}
	return results, nil
}
