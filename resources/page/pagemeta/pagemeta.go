// Package pagemeta decodes the front matter keys a build cares about.
package pagemeta

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"github.com/sunwei/pagegen/common/maps"
	"github.com/sunwei/pagegen/types"
)

// Front matter keys.
const (
	KeyTitle         = "title"
	KeyPublishedDate = "published_date"
	KeyDate          = "date"
	KeyTags          = "tags"
	KeyDraft         = "draft"
	KeyBuild         = "_build"
)

// BuildConfig holds configuration options about how to handle a Page in the
// build process.
type BuildConfig struct {
	// Whether to add it to the index and tag listings.
	// Valid values: never, always.
	// Booleans are accepted too.
	List string

	// Whether to render it.
	// Valid values: never, always.
	// Booleans are accepted too.
	Render string

	set bool // BuildCfg is non-zero if this is set to true.
}

const (
	Never  = "never"
	Always = "always"
)

var defaultBuildConfig = BuildConfig{
	List:   Always,
	Render: Always,
	set:    true,
}

// DecodeBuildConfig decodes the _build front matter section.
func DecodeBuildConfig(m any) (BuildConfig, error) {
	b := defaultBuildConfig
	if m == nil {
		return b, nil
	}

	err := mapstructure.WeakDecode(m, &b)
	if err != nil {
		return b, fmt.Errorf("failed to decode %s: %w", KeyBuild, err)
	}

	// In the case of a bool, WeakDecode gives "1" or "0".
	normalize := func(v string) string {
		switch strings.ToLower(v) {
		case "0", "false", Never:
			return Never
		default:
			return Always
		}
	}

	b.List = normalize(b.List)
	b.Render = normalize(b.Render)

	return b, nil
}

// IsZero reports whether b was never decoded.
func (b BuildConfig) IsZero() bool {
	return !b.set
}

// Disable sets all options to their off value.
func (b *BuildConfig) Disable() {
	b.List = Never
	b.Render = Never
	b.set = true
}

// ShouldList reports whether the page belongs in listings.
func (b BuildConfig) ShouldList() bool {
	return b.List != Never
}

// ShouldRender reports whether the page gets its own output file.
func (b BuildConfig) ShouldRender() bool {
	return b.Render != Never
}

// Date is a front matter date. It prints as a plain ISO-8601 date when it
// carries no time of day, and as RFC 3339 otherwise.
type Date struct {
	time.Time
}

func (d Date) String() string {
	if d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0 && d.Nanosecond() == 0 {
		return d.Format("2006-01-02")
	}
	return d.Format(time.RFC3339)
}

// FrontMatter holds the decoded metadata of a page.
type FrontMatter struct {
	// Title is only valid when HasTitle is set.
	Title    string
	HasTitle bool

	// PublishedDate is nil when the page has no date.
	PublishedDate *Date

	// Tags in declaration order, trimmed, without empty entries.
	Tags []string

	Draft bool
	Build BuildConfig

	// Params holds every front matter key, lower cased.
	Params maps.Params

	// Raw is the front matter as decoded, keys in their original case.
	Raw map[string]any
}

// DecodeFrontMatter extracts the known keys from m. Every key is optional.
func DecodeFrontMatter(m map[string]any) (FrontMatter, error) {
	fm := FrontMatter{
		Tags:   []string{},
		Build:  defaultBuildConfig,
		Params: make(maps.Params),
	}

	// PrepareParams lower cases nested maps in place, Raw keeps the original.
	for k, v := range maps.CleanConfigStringMap(m) {
		fm.Params[strings.ToLower(k)] = v
	}
	maps.PrepareParams(fm.Params)
	fm.Raw = m

	if v, found := fm.Params[KeyTitle]; found && v != nil {
		s, err := cast.ToStringE(v)
		if err != nil {
			return fm, fmt.Errorf("%s: %w", KeyTitle, err)
		}
		fm.Title = s
		fm.HasTitle = true
	}

	dateKey := KeyPublishedDate
	if _, found := fm.Params[dateKey]; !found {
		dateKey = KeyDate
	}
	if v, found := fm.Params[dateKey]; found && v != nil {
		d, err := ToDateE(v)
		if err != nil {
			return fm, fmt.Errorf("%s: %w", dateKey, err)
		}
		fm.PublishedDate = &d
	}

	if v, found := fm.Params[KeyTags]; found && v != nil {
		tags, err := types.ToStringSlicePreserveStringE(v)
		if err != nil {
			return fm, fmt.Errorf("%s: %w", KeyTags, err)
		}
		for _, tag := range tags {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				fm.Tags = append(fm.Tags, tag)
			}
		}
	}

	if v, found := fm.Params[KeyDraft]; found {
		draft, err := cast.ToBoolE(v)
		if err != nil {
			return fm, fmt.Errorf("%s: %w", KeyDraft, err)
		}
		fm.Draft = draft
	}

	if v, found := fm.Params[KeyBuild]; found {
		b, err := DecodeBuildConfig(v)
		if err != nil {
			return fm, err
		}
		fm.Build = b
	}

	return fm, nil
}

// ToDateE converts a front matter value to a Date. It accepts time.Time,
// TOML local dates (or anything else printing as a date) and strings in the
// common ISO-8601 layouts.
func ToDateE(v any) (Date, error) {
	switch vv := v.(type) {
	case time.Time:
		return Date{Time: vv}, nil
	case string:
		return parseDate(vv)
	case fmt.Stringer:
		return parseDate(vv.String())
	}
	return Date{}, fmt.Errorf("unable to parse %v (%T) as a date", v, v)
}

func parseDate(s string) (Date, error) {
	t, err := cast.ToTimeE(strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}
