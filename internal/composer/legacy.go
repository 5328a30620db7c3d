package composer

import (
	"strconv"
	"strings"

	"github.com/stupside/uaforge/internal/identity"
	"github.com/stupside/uaforge/internal/versioning"
)

// FreezeThreshold is the first Chromium major whose legacy string carries
// frozen OS and device details.
const FreezeThreshold = 110

// frozenTokens replace the sampled OS token once the freeze applies.
var frozenTokens = map[identity.OS]string{
	identity.OSWindows:  "Windows NT 10.0; Win64; x64",
	identity.OSMacOS:    "Macintosh; Intel Mac OS X 10_15_7",
	identity.OSLinux:    "X11; Linux x86_64",
	identity.OSChromeOS: "X11; CrOS x86_64 14541.0.0",
	identity.OSAndroid:  "Linux; Android 10; K",
}

const versionPlaceholder = "{version}"

const (
	blinkWebKit  = "AppleWebKit/537.36 (KHTML, like Gecko)"
	safariWebKit = "AppleWebKit/605.1.15 (KHTML, like Gecko)"
)

type legacyInput struct {
	family identity.Family
	device identity.Device
	os     identity.OS
	token  string
	// placeholder fills a {version} slot in token for non-Safari families.
	placeholder string
	model       string
	version     string // marketing version
	full        string
	engineMajor int // -1 when unresolved
}

func (in legacyInput) mobile() bool { return in.device != identity.DeviceDesktop }

// frozen reports whether the legacy string must carry the frozen token.
// An unresolved engine major never freezes.
func (in legacyInput) frozen() bool {
	return in.family.Chromium() && in.engineMajor >= FreezeThreshold
}

// engineVersion is the reduced Chrome/ version of a Chromium derivative.
func (in legacyInput) engineVersion() string {
	if in.engineMajor < 0 {
		return versioning.Flatten(in.full)
	}
	return versioning.Flatten(strconv.Itoa(in.engineMajor))
}

// osToken returns the parenthesized token with the Android model injected
// or the freeze applied.
func (in legacyInput) osToken() string {
	if in.frozen() {
		if t, ok := frozenTokens[in.os]; ok {
			return t
		}
	}
	tok := fillPlaceholder(in.token, in.placeholder)
	if in.os == identity.OSAndroid && in.mobile() && in.model != "" {
		tok += "; " + in.model
	}
	return tok
}

func fillPlaceholder(token, version string) string {
	if !strings.Contains(token, versionPlaceholder) {
		return token
	}
	return strings.ReplaceAll(token, versionPlaceholder, strings.ReplaceAll(version, ".", "_"))
}

type legacyTemplate func(in legacyInput) string

var legacyTemplates = map[identity.Family]legacyTemplate{
	identity.FamilyChrome:  chromeLegacy,
	identity.FamilyEdge:    edgeLegacy,
	identity.FamilyOpera:   operaLegacy,
	identity.FamilyFirefox: firefoxLegacy,
	identity.FamilySafari:  safariLegacy,
}

func buildLegacy(in legacyInput) string {
	if tpl, ok := legacyTemplates[in.family]; ok {
		return tpl(in)
	}
	return "Mozilla/5.0 (" + in.osToken() + ") " + blinkWebKit + " Chrome/" + in.full + " Safari/537.36"
}

func blinkSafari(in legacyInput) string {
	if in.mobile() {
		return "Mobile Safari/537.36"
	}
	return "Safari/537.36"
}

func chromeLegacy(in legacyInput) string {
	return "Mozilla/5.0 (" + in.osToken() + ") " + blinkWebKit +
		" Chrome/" + versioning.Flatten(in.full) + " " + blinkSafari(in)
}

func edgeLegacy(in legacyInput) string {
	product := "Edg/"
	if in.mobile() {
		product = "EdgA/"
	}
	return "Mozilla/5.0 (" + in.osToken() + ") " + blinkWebKit +
		" Chrome/" + in.engineVersion() + " " + blinkSafari(in) + " " + product + versioning.Flatten(in.full)
}

func operaLegacy(in legacyInput) string {
	return "Mozilla/5.0 (" + in.osToken() + ") " + blinkWebKit +
		" Chrome/" + in.engineVersion() + " " + blinkSafari(in) + " OPR/" + versioning.Flatten(in.full)
}

func firefoxLegacy(in legacyInput) string {
	if in.mobile() {
		tok := strings.TrimPrefix(fillPlaceholder(in.token, in.placeholder), "Linux; ")
		return "Mozilla/5.0 (" + tok + "; Mobile; rv:" + in.full + ") Gecko/" + in.full + " Firefox/" + in.full
	}
	return "Mozilla/5.0 (" + in.osToken() + "; rv:" + in.full + ") Gecko/20100101 Firefox/" + in.full
}

func safariLegacy(in legacyInput) string {
	tok := fillPlaceholder(in.token, in.version)
	if in.mobile() {
		return "Mozilla/5.0 (" + tok + ") " + safariWebKit +
			" Version/" + in.version + " Mobile/15E148 Safari/604.1"
	}
	return "Mozilla/5.0 (" + tok + ") " + safariWebKit +
		" Version/" + in.version + " Safari/605.1.15"
}
