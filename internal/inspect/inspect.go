// Package inspect classifies legacy User-Agent strings with keyword rules and
// checks that a generated record agrees with its own metadata and hints.
package inspect

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/stupside/uaforge/internal/hints"
	"github.com/stupside/uaforge/internal/identity"
	"github.com/stupside/uaforge/internal/versioning"
)

var (
	ErrEmptyUserAgent = errors.New("empty user agent string")
	ErrMismatch       = errors.New("record is inconsistent")
)

// Result is what Classify recovered from a legacy string.
type Result struct {
	Family  identity.Family
	Version string
	OS      identity.OS
	Device  identity.Device
}

// familyPattern detects a browser family. Patterns are checked in order, so
// derivatives that also carry a Chrome/ token come first.
type familyPattern struct {
	family   identity.Family
	keywords []string // any of
	excludes []string
	version  *regexp.Regexp
}

var familyPatterns = []familyPattern{
	{
		family:   identity.FamilyEdge,
		keywords: []string{"edg/", "edga/", "edge/"},
		version:  regexp.MustCompile(`(?:edga?|edge)/([\d.]+)`),
	},
	{
		family:   identity.FamilyOpera,
		keywords: []string{"opr/", "opera/"},
		version:  regexp.MustCompile(`(?:opr|opera)/([\d.]+)`),
	},
	{
		family:   identity.FamilyFirefox,
		keywords: []string{"firefox/", "fxios/"},
		excludes: []string{"seamonkey/"},
		version:  regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`),
	},
	{
		family:   identity.FamilyChrome,
		keywords: []string{"chrome/", "crios/"},
		version:  regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`),
	},
	{
		family:   identity.FamilySafari,
		keywords: []string{"version/"},
		version:  regexp.MustCompile(`version/([\d.]+)`),
	},
}

// osPatterns are checked in order: iPhone strings mention Mac OS X and
// Android strings mention Linux.
var osPatterns = []struct {
	os       identity.OS
	keywords []string
}{
	{identity.OSIOS, []string{"iphone", "ipad", "ipod"}},
	{identity.OSAndroid, []string{"android"}},
	{identity.OSChromeOS, []string{"cros"}},
	{identity.OSWindows, []string{"windows nt", "windows"}},
	{identity.OSMacOS, []string{"macintosh", "mac os x"}},
	{identity.OSLinux, []string{"linux", "x11"}},
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Classify extracts family, version, OS and device class from a legacy
// User-Agent string. Unrecognized parts are reported as unknown.
func Classify(ua string) (Result, error) {
	if ua == "" {
		return Result{Family: identity.FamilyUnknown, OS: identity.OSUnknown}, ErrEmptyUserAgent
	}
	lower := strings.ToLower(ua)

	res := Result{Family: identity.FamilyUnknown, OS: identity.OSUnknown, Device: identity.DeviceDesktop}
	for _, p := range familyPatterns {
		if !containsAny(lower, p.keywords) || containsAny(lower, p.excludes) {
			continue
		}
		res.Family = p.family
		if m := p.version.FindStringSubmatch(lower); len(m) > 1 {
			res.Version = m[1]
		}
		break
	}

	for _, p := range osPatterns {
		if containsAny(lower, p.keywords) {
			res.OS = p.os
			break
		}
	}

	switch {
	case strings.Contains(lower, "ipad"):
		res.Device = identity.DeviceTablet
	case strings.Contains(lower, "mobile"), strings.Contains(lower, "iphone"):
		res.Device = identity.DeviceMobile
	case res.OS == identity.OSAndroid:
		res.Device = identity.DeviceTablet
	}

	return res, nil
}

// Verify checks that rec's legacy string, metadata and client hints describe
// the same browser. Every disagreement is reported; each wraps ErrMismatch.
func Verify(rec identity.Record) error {
	res, err := Classify(rec.UserAgent)
	if err != nil {
		return err
	}

	var errs []error
	mismatch := func(field string, got, want any) {
		errs = append(errs, fmt.Errorf("%w: %s is %v, legacy string says %v", ErrMismatch, field, want, got))
	}

	if rec.MetaBrowser.Known() && res.Family != rec.MetaBrowser {
		mismatch("browser", res.Family, rec.MetaBrowser)
	}
	if rec.MetaOS != identity.OSUnknown && res.OS != rec.MetaOS {
		mismatch("os", res.OS, rec.MetaOS)
	}
	if res.Device != rec.MetaDevice {
		mismatch("device", res.Device, rec.MetaDevice)
	}

	if err := verifyHints(rec, res); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func verifyHints(rec identity.Record, res Result) error {
	if !hints.Emits(rec.MetaBrowser) {
		if !rec.Empty() || len(rec.ClientHints()) > 0 {
			return fmt.Errorf("%w: %s must not send client hints", ErrMismatch, rec.MetaBrowser)
		}
		return nil
	}
	if rec.Empty() {
		return fmt.Errorf("%w: %s must send client hints", ErrMismatch, rec.MetaBrowser)
	}

	var errs []error
	wantMobile := hints.MobileFalse
	if rec.MetaDevice == identity.DeviceMobile {
		wantMobile = hints.MobileTrue
	}
	if rec.Mobile != wantMobile {
		errs = append(errs, fmt.Errorf("%w: mobile hint %q for a %s device", ErrMismatch, rec.Mobile, rec.MetaDevice))
	}
	if res.Version != "" && versioning.Major(rec.FullVersion) != versioning.Major(res.Version) {
		errs = append(errs, fmt.Errorf("%w: full version hint %s, legacy string has %s", ErrMismatch, rec.FullVersion, res.Version))
	}
	if rec.MetaDevice == identity.DeviceDesktop && rec.Model != "" {
		errs = append(errs, fmt.Errorf("%w: desktop record reports model %q", ErrMismatch, rec.Model))
	}
	return errors.Join(errs...)
}
