package composer

import (
	"fmt"

	"github.com/stupside/uaforge/internal/catalog"
	"github.com/stupside/uaforge/internal/identity"
	"github.com/stupside/uaforge/internal/sampler"
)

// OSSelection is the operating system resolved for one draw.
type OSSelection struct {
	OS       identity.OS
	Platform string // Sec-CH-UA-Platform value
	// Token is the text inside the legacy string's parentheses. It may hold
	// a {version} placeholder.
	Token           string
	PlatformVersion string
}

var fallbackOS = OSSelection{
	OS:              identity.OSLinux,
	Platform:        "Linux",
	Token:           "X11; Linux x86_64",
	PlatformVersion: "5.0.0",
}

var platformNames = map[identity.OS]string{
	identity.OSWindows:  "Windows",
	identity.OSMacOS:    "macOS",
	identity.OSLinux:    "Linux",
	identity.OSAndroid:  "Android",
	identity.OSIOS:      "iOS",
	identity.OSChromeOS: "Chrome OS",
}

var defaultTokens = map[identity.OS]string{
	identity.OSWindows:  "Windows NT 10.0; Win64; x64",
	identity.OSMacOS:    "Macintosh; Intel Mac OS X 10_15_7",
	identity.OSLinux:    "X11; Linux x86_64",
	identity.OSAndroid:  "Linux; Android 10",
	identity.OSIOS:      "iPhone; CPU iPhone OS {version} like Mac OS X",
	identity.OSChromeOS: "X11; CrOS x86_64 14541.0.0",
}

// platformVersionRange bounds a synthesized "major.minor.0" version.
type platformVersionRange struct {
	majorLo, majorHi int
	minorLo, minorHi int
}

var platformVersionRanges = map[identity.OS]platformVersionRange{
	identity.OSIOS:   {16, 17, 0, 5},
	identity.OSLinux: {5, 6, 4, 19},
}

const defaultPlatformVersion = "1.0.0"

// resolveOS samples the operating system for cand. A candidate bound to one
// OS keeps it even when the distribution table says otherwise.
func (c *Composer) resolveOS(cand catalog.Candidate, r sampler.Rand) OSSelection {
	key := catalog.DistributionKey(cand.Family, cand.Device)
	choice, ok := c.cat.SampleOS(key, catalog.ScopeFor(cand.Device), r)
	if !ok {
		c.logger.Debug("no OS distribution, using fallback", "key", key, "device", cand.Device)
		return fallbackOS
	}

	sel := OSSelection{OS: identity.ParseOS(choice.OS), Platform: choice.Platform}
	osKey := choice.OS
	if cand.OS != identity.OSUnknown && sel.OS != cand.OS {
		sel = OSSelection{OS: cand.OS, Platform: platformNames[cand.OS]}
		osKey = string(cand.OS)
	}

	c.applyTemplate(&sel, osKey, r)
	return sel
}

func (c *Composer) applyTemplate(sel *OSSelection, osKey string, r sampler.Rand) {
	tpl, ok := c.cat.SampleTemplate(osKey, r)
	if ok {
		sel.Token = tpl.UAToken
		sel.PlatformVersion = tpl.PlatformVersion
	}
	if sel.Token == "" {
		sel.Token = defaultToken(sel.OS)
	}
	if sel.PlatformVersion == "" {
		sel.PlatformVersion = synthesizePlatformVersion(sel.OS, r)
	}
}

func defaultToken(os identity.OS) string {
	if t, ok := defaultTokens[os]; ok {
		return t
	}
	return fallbackOS.Token
}

func synthesizePlatformVersion(os identity.OS, r sampler.Rand) string {
	rng, ok := platformVersionRanges[os]
	if !ok {
		return defaultPlatformVersion
	}
	major := sampler.IntRange(r, rng.majorLo, rng.majorHi)
	minor := sampler.IntRange(r, rng.minorLo, rng.minorHi)
	return fmt.Sprintf("%d.%d.0", major, minor)
}
