// Package identity defines the closed vocabularies a synthesized browser
// identity is made of and the immutable Record produced for each draw.
package identity

// Family is the browser family of a candidate.
type Family string

const (
	FamilyChrome  Family = "chrome"
	FamilyFirefox Family = "firefox"
	FamilySafari  Family = "safari"
	FamilyEdge    Family = "edge"
	FamilyOpera   Family = "opera"
	FamilyUnknown Family = "unknown"
)

// Families lists every recognized family in a stable order.
var Families = []Family{FamilyChrome, FamilyFirefox, FamilySafari, FamilyEdge, FamilyOpera}

// Engine identifies the rendering engine behind a family.
type Engine string

const (
	EngineBlink  Engine = "Blink"
	EngineGecko  Engine = "Gecko"
	EngineWebKit Engine = "WebKit"
)

var familyEngines = map[Family]Engine{
	FamilyChrome:  EngineBlink,
	FamilyEdge:    EngineBlink,
	FamilyOpera:   EngineBlink,
	FamilyFirefox: EngineGecko,
	FamilySafari:  EngineWebKit,
}

// Engine returns the family's engine. Unknown families are assumed to be
// Blink-based, which is what most unrecognized UAs in the wild are.
func (f Family) Engine() Engine {
	if e, ok := familyEngines[f]; ok {
		return e
	}
	return EngineBlink
}

// Chromium reports whether the family is Chrome or one of its derivatives.
func (f Family) Chromium() bool {
	return f == FamilyChrome || f == FamilyEdge || f == FamilyOpera
}

// Known reports whether f is one of Families.
func (f Family) Known() bool {
	_, ok := familyEngines[f]
	return ok
}

// Device is the hardware class of a candidate.
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
	DeviceTablet  Device = "tablet"
)

// OS is the resolved operating system of a draw.
type OS string

const (
	OSWindows  OS = "windows"
	OSMacOS    OS = "macos"
	OSLinux    OS = "linux"
	OSAndroid  OS = "android"
	OSIOS      OS = "ios"
	OSChromeOS OS = "cros"
	OSUnknown  OS = "unknown"
)

var knownOS = map[OS]struct{}{
	OSWindows:  {},
	OSMacOS:    {},
	OSLinux:    {},
	OSAndroid:  {},
	OSIOS:      {},
	OSChromeOS: {},
}

// ParseOS maps a catalog OS key onto OS, returning OSUnknown for anything else.
func ParseOS(key string) OS {
	if _, ok := knownOS[OS(key)]; ok {
		return OS(key)
	}
	return OSUnknown
}

// PlatformFamily returns the key historical version pools are stored under.
func (o OS) PlatformFamily() string {
	switch o {
	case OSMacOS:
		return "macos"
	case OSLinux, OSChromeOS:
		return "linux"
	case OSAndroid:
		return "android"
	case OSIOS:
		return "ios"
	default:
		return "windows"
	}
}

// Brand is one entry of a client-hints brand list.
type Brand struct {
	Name    string `json:"brand"`
	Version string `json:"version"`
}
