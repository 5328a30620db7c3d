package emulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stupside/uaforge/internal/app"
	"github.com/stupside/uaforge/internal/emulate"
	"github.com/stupside/uaforge/internal/identity"
)

func chromeRecord() identity.Record {
	brands := []identity.Brand{
		{Name: "Chromium", Version: "142"},
		{Name: "Not_A Brand", Version: "99"},
		{Name: "Google Chrome", Version: "142"},
	}
	full := []identity.Brand{
		{Name: "Chromium", Version: "142.0.7444.60"},
		{Name: "Not_A Brand", Version: "99.0.0.0"},
		{Name: "Google Chrome", Version: "142.0.7444.60"},
	}
	return identity.Record{
		UserAgent:   "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Mobile Safari/537.36",
		MetaOS:      identity.OSAndroid,
		MetaBrowser: identity.FamilyChrome,
		MetaDevice:  identity.DeviceMobile,
		Hints: identity.Hints{
			Mobile:          "?1",
			Platform:        "Android",
			PlatformVersion: "14.0.0",
			Model:           "Pixel 8",
			Arch:            "arm",
			Bitness:         "64",
			FullVersion:     "142.0.7444.60",
			WoW64:           "?0",
		}.WithBrandLists(brands, full),
	}
}

func TestMetadata(t *testing.T) {
	t.Parallel()

	md := emulate.Metadata(chromeRecord())
	require.NotNil(t, md)

	assert.Equal(t, "Android", md.Platform)
	assert.Equal(t, "14.0.0", md.PlatformVersion)
	assert.Equal(t, "Pixel 8", md.Model)
	assert.Equal(t, "arm", md.Architecture)
	assert.Equal(t, "64", md.Bitness)
	assert.True(t, md.Mobile)
	assert.False(t, md.Wow64)

	require.Len(t, md.Brands, 3)
	assert.Equal(t, "Chromium", md.Brands[0].Brand)
	assert.Equal(t, "142", md.Brands[0].Version)
	require.Len(t, md.FullVersionList, 3)
	assert.Equal(t, "99.0.0.0", md.FullVersionList[1].Version)
}

func TestMetadataWithoutHints(t *testing.T) {
	t.Parallel()

	rec := identity.Record{UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:144.0) Gecko/20100101 Firefox/144.0"}
	assert.Nil(t, emulate.Metadata(rec))
}

func TestNavigatorPlatform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Win32", emulate.NavigatorPlatform(identity.OSWindows))
	assert.Equal(t, "MacIntel", emulate.NavigatorPlatform(identity.OSMacOS))
	assert.Equal(t, "Linux armv8l", emulate.NavigatorPlatform(identity.OSAndroid))
	assert.Equal(t, "iPhone", emulate.NavigatorPlatform(identity.OSIOS))
	assert.Equal(t, "Linux x86_64", emulate.NavigatorPlatform(identity.OSUnknown))
}

func TestAllocatorOptions(t *testing.T) {
	t.Parallel()

	cfg := app.Default().Browser
	base := len(emulate.AllocatorOptions(cfg, chromeRecord()))

	cfg.ChromePath = "/usr/bin/chromium"
	assert.Len(t, emulate.AllocatorOptions(cfg, chromeRecord()), base+1)
}

func TestReportMatches(t *testing.T) {
	t.Parallel()

	rec := chromeRecord()
	report := &emulate.Report{
		UserAgent: rec.UserAgent,
		Platform:  "Linux armv8l",
		Mobile:    true,
		Brands:    rec.BrandList(),
	}
	assert.True(t, report.Matches(rec))

	report.Mobile = false
	assert.False(t, report.Matches(rec))

	report.Mobile = true
	report.UserAgent = "HeadlessChrome"
	assert.False(t, report.Matches(rec))
}
