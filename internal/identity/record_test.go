package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stupside/uaforge/internal/identity"
)

func TestFormatBrands(t *testing.T) {
	t.Parallel()

	assert.Empty(t, identity.FormatBrands(nil))
	assert.Equal(t,
		`"Not;A Brand";v="99", "Chromium";v="142", "Google Chrome";v="142"`,
		identity.FormatBrands([]identity.Brand{
			{Name: "Not;A Brand", Version: "99"},
			{Name: "Chromium", Version: "142"},
			{Name: "Google Chrome", Version: "142"},
		}),
	)
}

func TestRecordHeadersOmitEmptyHints(t *testing.T) {
	t.Parallel()

	rec := identity.Record{
		UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:115.0) Gecko/20100101 Firefox/115.0",
		MetaOS:      identity.OSWindows,
		MetaBrowser: identity.FamilyFirefox,
		MetaDevice:  identity.DeviceDesktop,
	}

	assert.Equal(t, map[string]string{identity.HeaderUserAgent: rec.UserAgent}, rec.Headers())
	assert.Empty(t, rec.ClientHints())
	assert.True(t, rec.Empty())
}

func TestRecordHeadersRenderQuotedValues(t *testing.T) {
	t.Parallel()

	brands := []identity.Brand{{Name: "Chromium", Version: "142"}}
	full := []identity.Brand{{Name: "Chromium", Version: "142.0.7444.60"}}
	rec := identity.Record{
		UserAgent: "ua",
		Hints: identity.Hints{
			Mobile:          "?1",
			Platform:        "Android",
			PlatformVersion: "14.0.0",
			Model:           "Pixel 8",
			Arch:            "arm",
			Bitness:         "64",
			FullVersion:     "142.0.7444.60",
			FormFactor:      "Mobile",
			WoW64:           "?0",
			ColorScheme:     "dark",
		}.WithBrandLists(brands, full),
	}

	assert.Equal(t, map[string]string{
		identity.HeaderUserAgent:       "ua",
		identity.HeaderUA:              `"Chromium";v="142"`,
		identity.HeaderMobile:          "?1",
		identity.HeaderPlatform:        `"Android"`,
		identity.HeaderFullVersionList: `"Chromium";v="142.0.7444.60"`,
	}, rec.Headers())

	all := rec.AllHeaders()
	assert.Equal(t, `"14.0.0"`, all[identity.HeaderPlatformVersion])
	assert.Equal(t, `"Pixel 8"`, all[identity.HeaderModel])
	assert.Equal(t, `"arm"`, all[identity.HeaderArch])
	assert.Equal(t, `"64"`, all[identity.HeaderBitness])
	assert.Equal(t, `"142.0.7444.60"`, all[identity.HeaderFullVersion])
	assert.Equal(t, `"Mobile"`, all[identity.HeaderFormFactors])
	assert.Equal(t, `"dark"`, all[identity.HeaderPrefersColorScheme])
	assert.Equal(t, "?0", all[identity.HeaderWoW64])
	assert.Equal(t, "ua", all[identity.HeaderUserAgent])
	assert.NotContains(t, rec.ClientHints(), identity.HeaderUserAgent)

	got := rec.BrandList()
	got[0].Name = "mutated"
	assert.Equal(t, "Chromium", rec.BrandList()[0].Name)
	assert.Equal(t, full, rec.FullVersionBrands())
}

func TestFamilyProperties(t *testing.T) {
	t.Parallel()

	assert.True(t, identity.FamilyEdge.Chromium())
	assert.False(t, identity.FamilyFirefox.Chromium())
	assert.Equal(t, identity.EngineGecko, identity.FamilyFirefox.Engine())
	assert.Equal(t, identity.EngineWebKit, identity.FamilySafari.Engine())
	assert.Equal(t, identity.EngineBlink, identity.FamilyUnknown.Engine())
	assert.False(t, identity.Family("netscape").Known())
}

func TestOS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, identity.OSChromeOS, identity.ParseOS("cros"))
	assert.Equal(t, identity.OSUnknown, identity.ParseOS("beos"))
	assert.Equal(t, "linux", identity.OSChromeOS.PlatformFamily())
	assert.Equal(t, "windows", identity.OSUnknown.PlatformFamily())
	assert.Equal(t, "macos", identity.OSMacOS.PlatformFamily())
}
