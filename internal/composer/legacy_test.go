package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stupside/uaforge/internal/identity"
)

func TestBuildLegacy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   legacyInput
		want string
	}{
		{
			name: "chrome desktop frozen",
			in: legacyInput{
				family: identity.FamilyChrome, device: identity.DeviceDesktop, os: identity.OSMacOS,
				token: "Macintosh; Intel Mac OS X 14_5", version: "142", full: "142.0.7444.60", engineMajor: 142,
			},
			want: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36",
		},
		{
			name: "chrome desktop before freeze",
			in: legacyInput{
				family: identity.FamilyChrome, device: identity.DeviceDesktop, os: identity.OSMacOS,
				token: "Macintosh; Intel Mac OS X 12_6", version: "103", full: "103.0.5060.53", engineMajor: 103,
			},
			want: "Mozilla/5.0 (Macintosh; Intel Mac OS X 12_6) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/103.0.0.0 Safari/537.36",
		},
		{
			name: "chrome android before freeze keeps model",
			in: legacyInput{
				family: identity.FamilyChrome, device: identity.DeviceMobile, os: identity.OSAndroid,
				token: "Linux; Android 12", model: "SM-G991B", version: "103", full: "103.0.5060.53", engineMajor: 103,
			},
			want: "Mozilla/5.0 (Linux; Android 12; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/103.0.0.0 Mobile Safari/537.36",
		},
		{
			name: "chrome android frozen drops model",
			in: legacyInput{
				family: identity.FamilyChrome, device: identity.DeviceMobile, os: identity.OSAndroid,
				token: "Linux; Android 15", model: "Pixel 9", version: "142", full: "142.0.7444.60", engineMajor: 142,
			},
			want: "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Mobile Safari/537.36",
		},
		{
			name: "edge desktop",
			in: legacyInput{
				family: identity.FamilyEdge, device: identity.DeviceDesktop, os: identity.OSWindows,
				token: "Windows NT 10.0; Win64; x64", version: "141", full: "141.0.3537.85", engineMajor: 141,
			},
			want: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36 Edg/141.0.0.0",
		},
		{
			name: "edge android",
			in: legacyInput{
				family: identity.FamilyEdge, device: identity.DeviceMobile, os: identity.OSAndroid,
				token: "Linux; Android 14", model: "SM-S918B", version: "141", full: "141.0.3537.85", engineMajor: 141,
			},
			want: "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Mobile Safari/537.36 EdgA/141.0.0.0",
		},
		{
			name: "opera desktop uses engine major",
			in: legacyInput{
				family: identity.FamilyOpera, device: identity.DeviceDesktop, os: identity.OSLinux,
				token: "X11; Ubuntu; Linux x86_64", version: "123", full: "123.0.5669.47", engineMajor: 139,
			},
			want: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36 OPR/123.0.0.0",
		},
		{
			name: "opera unresolved engine never freezes",
			in: legacyInput{
				family: identity.FamilyOpera, device: identity.DeviceDesktop, os: identity.OSWindows,
				token: "Windows NT 10.0; WOW64", version: "beta", full: "beta.0.0.0", engineMajor: -1,
			},
			want: "Mozilla/5.0 (Windows NT 10.0; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/beta.0.0.0 Safari/537.36 OPR/beta.0.0.0",
		},
		{
			name: "firefox desktop",
			in: legacyInput{
				family: identity.FamilyFirefox, device: identity.DeviceDesktop, os: identity.OSWindows,
				token: "Windows NT 10.0; Win64; x64", version: "144", full: "144.0", engineMajor: -1,
			},
			want: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:144.0) Gecko/20100101 Firefox/144.0",
		},
		{
			name: "firefox android",
			in: legacyInput{
				family: identity.FamilyFirefox, device: identity.DeviceMobile, os: identity.OSAndroid,
				token: "Linux; Android 14", model: "CPH2581", version: "144", full: "144.0", engineMajor: -1,
			},
			want: "Mozilla/5.0 (Android 14; Mobile; rv:144.0) Gecko/144.0 Firefox/144.0",
		},
		{
			name: "safari desktop",
			in: legacyInput{
				family: identity.FamilySafari, device: identity.DeviceDesktop, os: identity.OSMacOS,
				token: "Macintosh; Intel Mac OS X 10_15_7", version: "18.6", full: "18.6", engineMajor: -1,
			},
			want: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.6 Safari/605.1.15",
		},
		{
			name: "safari iphone",
			in: legacyInput{
				family: identity.FamilySafari, device: identity.DeviceMobile, os: identity.OSIOS,
				token: "iPhone; CPU iPhone OS {version} like Mac OS X", model: "iPhone", version: "17.6", full: "17.6", engineMajor: -1,
			},
			want: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.6 Mobile/15E148 Safari/604.1",
		},
		{
			name: "unknown family",
			in: legacyInput{
				family: identity.FamilyUnknown, device: identity.DeviceDesktop, os: identity.OSLinux,
				token: "X11; Linux x86_64", version: "120", full: "120.0", engineMajor: -1,
			},
			want: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, buildLegacy(tc.in))
		})
	}
}

func TestFillPlaceholder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CPU OS 16_3_0", fillPlaceholder("CPU OS {version}", "16.3.0"))
	assert.Equal(t, "X11; Linux x86_64", fillPlaceholder("X11; Linux x86_64", "5.4.0"))
}
