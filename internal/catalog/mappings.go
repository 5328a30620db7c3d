package catalog

import "github.com/stupside/uaforge/internal/identity"

// marketKey describes what a market-share key stands for. An OS of
// identity.OSUnknown leaves the operating system to the distribution tables.
type marketKey struct {
	family identity.Family
	device identity.Device
	os     identity.OS
}

var marketKeys = map[string]marketKey{
	"and_chr": {identity.FamilyChrome, identity.DeviceMobile, identity.OSAndroid},
	"and_ff":  {identity.FamilyFirefox, identity.DeviceMobile, identity.OSAndroid},
	"android": {identity.FamilyChrome, identity.DeviceMobile, identity.OSAndroid},
	"chrome":  {identity.FamilyChrome, identity.DeviceDesktop, identity.OSUnknown},
	"edge":    {identity.FamilyEdge, identity.DeviceDesktop, identity.OSUnknown},
	"firefox": {identity.FamilyFirefox, identity.DeviceDesktop, identity.OSUnknown},
	"ios_saf": {identity.FamilySafari, identity.DeviceMobile, identity.OSIOS},
	"op_mob":  {identity.FamilyOpera, identity.DeviceMobile, identity.OSAndroid},
	"opera":   {identity.FamilyOpera, identity.DeviceDesktop, identity.OSUnknown},
	"safari":  {identity.FamilySafari, identity.DeviceDesktop, identity.OSMacOS},
}

// Scope selects the desktop or mobile half of the OS-distribution table.
type Scope string

const (
	ScopeDesktop Scope = "desktop_weights"
	ScopeMobile  Scope = "mobile_weights"
)

// ScopeFor returns the distribution scope for a device. Tablets share the
// mobile tables.
func ScopeFor(d identity.Device) Scope {
	if d == identity.DeviceDesktop {
		return ScopeDesktop
	}
	return ScopeMobile
}

// mobileOSKeys maps a family to its key in the mobile distribution table.
var mobileOSKeys = map[identity.Family]string{
	identity.FamilyChrome:  "and_chr",
	identity.FamilyFirefox: "and_ff",
	identity.FamilySafari:  "ios_saf",
	identity.FamilyOpera:   "op_mob",
}

// DistributionKey returns the OS-distribution key for a family on a device.
func DistributionKey(f identity.Family, d identity.Device) string {
	if d == identity.DeviceDesktop {
		return string(f)
	}
	if k, ok := mobileOSKeys[f]; ok {
		return k
	}
	return "android"
}

// engineOffsets maps a Chromium derivative's major version onto the
// Chromium major it ships.
var engineOffsets = map[identity.Family]int{
	identity.FamilyChrome: 0,
	identity.FamilyEdge:   0,
	identity.FamilyOpera:  16,
}
