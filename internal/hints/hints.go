// Package hints builds the structured client-hint values that accompany a
// legacy User-Agent string for families that send them.
package hints

import (
	"strconv"

	"github.com/stupside/uaforge/internal/catalog"
	"github.com/stupside/uaforge/internal/identity"
	"github.com/stupside/uaforge/internal/sampler"
	"github.com/stupside/uaforge/internal/versioning"
)

// Token values.
const (
	MobileTrue  = "?1"
	MobileFalse = "?0"
	Bitness64   = "64"
	ArchX86     = "x86"
	ArchARM     = "arm"
)

// ChromiumBrand is the engine brand every Chromium-family list carries.
const ChromiumBrand = "Chromium"

type policy struct {
	// silent families send no client hints at all.
	silent bool
	// display is the vendor brand listed next to Chromium.
	display string
	// sameEngine marks a browser whose own version is the engine version.
	sameEngine bool
}

var policies = map[identity.Family]policy{
	identity.FamilyChrome:  {display: "Google Chrome", sameEngine: true},
	identity.FamilyEdge:    {display: "Microsoft Edge"},
	identity.FamilyOpera:   {display: "Opera"},
	identity.FamilyFirefox: {silent: true},
	identity.FamilySafari:  {silent: true},
}

// unknown families are treated as a bare Chromium build.
var fallbackPolicy = policy{sameEngine: true}

var formFactors = map[identity.Device]string{
	identity.DeviceDesktop: "Desktop",
	identity.DeviceMobile:  "Mobile",
	identity.DeviceTablet:  "Tablet",
}

var colorSchemes = []string{"light", "dark"}

// Emits reports whether family f sends client hints.
func Emits(f identity.Family) bool {
	p, ok := policies[f]
	return !ok || !p.silent
}

// Input is everything about a draw that the hint values depend on.
type Input struct {
	Family          identity.Family
	Device          identity.Device
	Version         string // marketing version
	FullVersion     string
	Platform        string // header-facing platform name, e.g. "Windows"
	PlatformVersion string
	Model           string
	CPUArch         string // x86_64, arm64
}

// Builder derives client hints, resolving engine versions of Chromium
// derivatives against a catalog. A nil catalog leaves engine full versions
// synthesized.
type Builder struct {
	cat *catalog.Catalog
}

// New returns a Builder backed by cat.
func New(cat *catalog.Catalog) *Builder {
	return &Builder{cat: cat}
}

// Build returns the hint values for in. Families that do not send client
// hints get the zero Hints and consume no randomness.
func (b *Builder) Build(in Input, r sampler.Rand) identity.Hints {
	p, ok := policies[in.Family]
	if !ok {
		p = fallbackPolicy
	}
	if p.silent {
		return identity.Hints{}
	}

	major := versioning.Major(in.Version)
	engineMajor, engineFull := major, in.FullVersion
	if !p.sameEngine {
		engineMajor, engineFull = b.engineVersions(in.Family, major, in.FullVersion, r)
	}

	grease := Grease(r)
	brands := []identity.Brand{grease, {Name: ChromiumBrand, Version: engineMajor}}
	full := []identity.Brand{
		{Name: grease.Name, Version: grease.Version + ".0.0.0"},
		{Name: ChromiumBrand, Version: engineFull},
	}
	if p.display != "" {
		brands = append(brands, identity.Brand{Name: p.display, Version: major})
		full = append(full, identity.Brand{Name: p.display, Version: in.FullVersion})
	}
	sampler.Shuffle(r, len(brands), func(i, j int) {
		brands[i], brands[j] = brands[j], brands[i]
		full[i], full[j] = full[j], full[i]
	})

	h := identity.Hints{
		Mobile:          MobileFalse,
		Platform:        in.Platform,
		PlatformVersion: in.PlatformVersion,
		Arch:            Arch(in.CPUArch),
		Bitness:         Bitness64,
		FullVersion:     in.FullVersion,
		FormFactor:      formFactors[in.Device],
		WoW64:           MobileFalse,
		ColorScheme:     colorSchemes[r.IntN(len(colorSchemes))],
	}
	if in.Device == identity.DeviceMobile {
		h.Mobile = MobileTrue
	}
	if in.Device != identity.DeviceDesktop {
		h.Model = in.Model
	}
	return h.WithBrandLists(brands, full)
}

// engineVersions resolves the Chromium major and full version shipped by a
// Chromium derivative. When the engine major is unknown the browser's own
// versions stand in for it.
func (b *Builder) engineVersions(f identity.Family, major, full string, r sampler.Rand) (string, string) {
	if b.cat == nil {
		return major, full
	}
	engine := b.cat.EngineMajor(f, major)
	if engine < 0 {
		return major, full
	}

	em := strconv.Itoa(engine)
	if v, ok := sampler.Choice(r, b.cat.EngineFullVersions(engine)); ok && versioning.Major(v) == em {
		return em, v
	}
	if versioning.Major(full) == em {
		return em, full
	}
	return em, versioning.Flatten(em)
}

// Arch maps a CPU architecture onto the Sec-CH-UA-Arch token.
func Arch(cpu string) string {
	switch cpu {
	case "x86_64", "x86", "amd64", "i686":
		return ArchX86
	default:
		return ArchARM
	}
}
