package identity

import (
	"slices"
	"strconv"
	"strings"
)

// Header names emitted by Record.
const (
	HeaderUserAgent          = "User-Agent"
	HeaderUA                 = "Sec-CH-UA"
	HeaderMobile             = "Sec-CH-UA-Mobile"
	HeaderPlatform           = "Sec-CH-UA-Platform"
	HeaderFullVersionList    = "Sec-CH-UA-Full-Version-List"
	HeaderPlatformVersion    = "Sec-CH-UA-Platform-Version"
	HeaderModel              = "Sec-CH-UA-Model"
	HeaderArch               = "Sec-CH-UA-Arch"
	HeaderBitness            = "Sec-CH-UA-Bitness"
	HeaderFullVersion        = "Sec-CH-UA-Full-Version"
	HeaderWoW64              = "Sec-CH-UA-WoW64"
	HeaderFormFactors        = "Sec-CH-UA-Form-Factors"
	HeaderPrefersColorScheme = "Sec-CH-Prefers-Color-Scheme"
)

// Hints holds raw (unquoted) client-hint values. Every field is empty for
// families that do not send client hints.
type Hints struct {
	Brands          string `json:"ch_brands"`
	FullVersionList string `json:"ch_full_version_list"`
	Mobile          string `json:"ch_mobile"`
	Platform        string `json:"ch_platform"`
	PlatformVersion string `json:"ch_platform_version"`
	Model           string `json:"ch_model"`
	Arch            string `json:"ch_arch"`
	Bitness         string `json:"ch_bitness"`
	FullVersion     string `json:"ch_full_version"`
	FormFactor      string `json:"ch_form_factor"`
	WoW64           string `json:"ch_wow64"`
	ColorScheme     string `json:"ch_prefers_color_scheme"`

	brands          []Brand
	fullVersionList []Brand
}

// WithBrandLists returns a copy of h carrying brands and fullVersions, with
// the Brands and FullVersionList header values rendered from them.
func (h Hints) WithBrandLists(brands, fullVersions []Brand) Hints {
	h.brands = slices.Clone(brands)
	h.fullVersionList = slices.Clone(fullVersions)
	h.Brands = FormatBrands(brands)
	h.FullVersionList = FormatBrands(fullVersions)
	return h
}

// Empty reports whether no client hints were produced.
func (h Hints) Empty() bool { return h.Brands == "" }

// FormatBrands renders a brand list as a structured-header list:
// "A";v="1", "B";v="2".
func FormatBrands(brands []Brand) string {
	if len(brands) == 0 {
		return ""
	}
	parts := make([]string, len(brands))
	for i, b := range brands {
		parts[i] = strconv.Quote(b.Name) + ";v=" + strconv.Quote(b.Version)
	}
	return strings.Join(parts, ", ")
}

// Record is one synthesized identity. It is a value: copies never share
// mutable state with the composer that produced it.
type Record struct {
	UserAgent string `json:"user_agent"`

	MetaOS      OS     `json:"meta_os"`
	MetaBrowser Family `json:"meta_browser"`
	MetaDevice  Device `json:"meta_device"`

	Hints
}

// BrandList returns a copy of the structured Sec-CH-UA brand list.
func (r Record) BrandList() []Brand { return slices.Clone(r.brands) }

// FullVersionBrands returns a copy of the structured full-version brand list.
func (r Record) FullVersionBrands() []Brand { return slices.Clone(r.fullVersionList) }

// Headers returns the User-Agent plus the low-entropy hints a browser sends
// by default. Empty hints are omitted, never sent blank.
func (r Record) Headers() map[string]string {
	h := map[string]string{HeaderUserAgent: r.UserAgent}
	r.putDefaultHints(h)
	return h
}

// ClientHints returns every non-empty client hint, rendered in the form the
// real header carries.
func (r Record) ClientHints() map[string]string {
	h := make(map[string]string, 12)
	r.putDefaultHints(h)
	putQuoted(h, HeaderPlatformVersion, r.PlatformVersion)
	putQuoted(h, HeaderModel, r.Model)
	putQuoted(h, HeaderArch, r.Arch)
	putQuoted(h, HeaderBitness, r.Bitness)
	putQuoted(h, HeaderFullVersion, r.FullVersion)
	putQuoted(h, HeaderFormFactors, r.FormFactor)
	putQuoted(h, HeaderPrefersColorScheme, r.ColorScheme)
	if r.WoW64 != "" {
		h[HeaderWoW64] = r.WoW64
	}
	return h
}

// AllHeaders returns Headers merged with ClientHints.
func (r Record) AllHeaders() map[string]string {
	h := r.ClientHints()
	h[HeaderUserAgent] = r.UserAgent
	return h
}

func (r Record) putDefaultHints(h map[string]string) {
	if r.Brands != "" {
		h[HeaderUA] = r.Brands
	}
	if r.Mobile != "" {
		h[HeaderMobile] = r.Mobile
	}
	putQuoted(h, HeaderPlatform, r.Platform)
	if r.FullVersionList != "" {
		h[HeaderFullVersionList] = r.FullVersionList
	}
}

func putQuoted(h map[string]string, name, value string) {
	if value != "" {
		h[name] = strconv.Quote(value)
	}
}
