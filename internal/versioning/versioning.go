// Package versioning expands bare marketing versions ("142") into the full
// dotted versions a browser actually reports.
package versioning

import (
	"strconv"
	"strings"

	"github.com/stupside/uaforge/internal/catalog"
	"github.com/stupside/uaforge/internal/identity"
	"github.com/stupside/uaforge/internal/sampler"
)

// DefaultPlatform is the version-pool key used when none is given.
const DefaultPlatform = "windows"

// policy expands a bare major version for one family.
type policy func(e *Expander, f identity.Family, major string, r sampler.Rand, platform string) string

var policies = map[identity.Family]policy{
	identity.FamilyChrome:  (*Expander).historical,
	identity.FamilyEdge:    (*Expander).historical,
	identity.FamilyOpera:   (*Expander).historical,
	identity.FamilyFirefox: gecko,
	identity.FamilySafari:  verbatim,
}

// Expander resolves full versions against a catalog's version histories.
// A nil catalog is allowed and makes every Chromium-family expansion
// synthesized.
type Expander struct {
	cat *catalog.Catalog
}

// New returns an Expander backed by cat.
func New(cat *catalog.Catalog) *Expander {
	return &Expander{cat: cat}
}

// Expand returns the full version for a marketing version. A version that
// already has more than one component is returned unchanged. platform is a
// platform family key ("windows", "macos", "linux", "android", "ios"); an
// empty platform means DefaultPlatform.
//
// Expand never fails: missing history or an unparsable major version falls
// back to a synthesized version.
func (e *Expander) Expand(f identity.Family, version string, r sampler.Rand, platform string) string {
	if strings.Contains(version, ".") {
		return version
	}
	if p, ok := policies[f]; ok {
		return p(e, f, version, r, platform)
	}
	return version + ".0"
}

func (e *Expander) historical(f identity.Family, major string, r sampler.Rand, platform string) string {
	synthesized := Flatten(major)
	if _, err := strconv.Atoi(major); err != nil || e.cat == nil {
		return synthesized
	}
	if platform == "" {
		platform = DefaultPlatform
	}

	v, ok := sampler.Choice(r, e.cat.FullVersions(f, major, platform))
	if !ok || !strings.HasPrefix(v, major+".") {
		return synthesized
	}
	return v
}

func gecko(_ *Expander, _ identity.Family, major string, _ sampler.Rand, _ string) string {
	return major + ".0"
}

func verbatim(_ *Expander, _ identity.Family, version string, _ sampler.Rand, _ string) string {
	return version
}

// Major returns the leading component of a version.
func Major(version string) string {
	major, _, _ := strings.Cut(version, ".")
	return major
}

// Flatten reduces a version to "{major}.0.0.0", the form Chromium-family
// browsers put in their legacy string.
func Flatten(version string) string {
	return Major(version) + ".0.0.0"
}
