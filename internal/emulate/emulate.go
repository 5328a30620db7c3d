// Package emulate applies a generated identity to a Chrome instance driven
// over the DevTools protocol, so that pages see the same User-Agent string
// and client hints the record carries.
package emulate

import (
	"context"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/stupside/uaforge/internal/app"
	"github.com/stupside/uaforge/internal/identity"
)

var navigatorPlatforms = map[identity.OS]string{
	identity.OSWindows:  "Win32",
	identity.OSMacOS:    "MacIntel",
	identity.OSLinux:    "Linux x86_64",
	identity.OSChromeOS: "Linux x86_64",
	identity.OSAndroid:  "Linux armv8l",
	identity.OSIOS:      "iPhone",
}

// NavigatorPlatform returns the navigator.platform value a browser on os
// reports.
func NavigatorPlatform(os identity.OS) string {
	if p, ok := navigatorPlatforms[os]; ok {
		return p
	}
	return navigatorPlatforms[identity.OSLinux]
}

func brandVersions(brands []identity.Brand) []*emulation.UserAgentBrandVersion {
	out := make([]*emulation.UserAgentBrandVersion, len(brands))
	for i, b := range brands {
		out[i] = &emulation.UserAgentBrandVersion{Brand: b.Name, Version: b.Version}
	}
	return out
}

// Metadata converts the record's client hints into DevTools user-agent
// metadata. It returns nil for records without client hints, which makes
// the browser send none.
func Metadata(rec identity.Record) *emulation.UserAgentMetadata {
	if rec.Empty() {
		return nil
	}
	return &emulation.UserAgentMetadata{
		Brands:          brandVersions(rec.BrandList()),
		FullVersionList: brandVersions(rec.FullVersionBrands()),
		Platform:        rec.Platform,
		PlatformVersion: rec.PlatformVersion,
		Architecture:    rec.Arch,
		Model:           rec.Model,
		Mobile:          rec.Mobile == "?1",
		Bitness:         rec.Bitness,
		Wow64:           rec.WoW64 == "?1",
	}
}

// Override returns a chromedp action that makes the current target present
// rec's identity on every subsequent request.
func Override(rec identity.Record, acceptLanguage string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		ua := emulation.SetUserAgentOverride(rec.UserAgent)
		ua.AcceptLanguage = acceptLanguage
		ua.Platform = NavigatorPlatform(rec.MetaOS)
		ua.UserAgentMetadata = Metadata(rec)
		return ua.Do(ctx)
	}
}

// AllocatorOptions returns exec-allocator options for a Chrome process that
// starts with rec's User-Agent and avoids the usual automation flags.
func AllocatorOptions(cfg app.BrowserConfig, rec identity.Record) []chromedp.ExecAllocatorOption {
	var headlessVal string
	if cfg.Headless {
		headlessVal = "new"
	}

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,

		chromedp.Flag("headless", headlessVal),
		chromedp.Flag("no-sandbox", cfg.NoSandbox),

		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-backgrounding-occluded-windows", true),
		chromedp.Flag("disable-renderer-backgrounding", true),

		chromedp.UserAgent(rec.UserAgent),
	}
	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}
	if rec.MetaDevice != identity.DeviceDesktop {
		opts = append(opts, chromedp.WindowSize(412, 915))
	} else {
		opts = append(opts, chromedp.WindowSize(1920, 1080))
	}
	return opts
}
