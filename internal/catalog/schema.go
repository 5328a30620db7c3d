package catalog

// File names inside a catalog directory.
const (
	FileMarketShare    = "market_share.json"
	FileOSDistribution = "os_distribution.json"
	FileDeviceModels   = "device_models.json"

	FileChromeVersions   = "chrome_versions.json"
	FileEdgeVersions     = "edge_versions.json"
	FileOperaVersions    = "opera_versions.json"
	FileChromiumVersions = "chromium_versions.json"
)

// marketShareFile maps a market key (see marketKeys) to observed versions.
type marketShareFile map[string][]marketEntry

type marketEntry struct {
	Version     string  `json:"version"`
	GlobalShare float64 `json:"global_share"`
}

type osDistributionFile struct {
	DesktopWeights map[string][]OSChoice   `json:"desktop_weights"`
	MobileWeights  map[string][]OSChoice   `json:"mobile_weights"`
	OSTemplates    map[string][]OSTemplate `json:"os_templates"`
}

// OSChoice is one weighted operating system for a distribution key.
type OSChoice struct {
	OS       string  `json:"os"`
	Platform string  `json:"platform"`
	Weight   float64 `json:"weight"`
}

// OSTemplate is one UA token variant for an operating system. Token may
// contain a {version} placeholder filled in by the legacy string builder.
type OSTemplate struct {
	UAToken         string   `json:"ua_token"`
	PlatformVersion string   `json:"platform_version,omitempty"`
	Probability     *float64 `json:"probability,omitempty"`
}

// Weight returns the template probability, defaulting to 1 when absent.
func (t OSTemplate) Weight() float64 {
	if t.Probability == nil {
		return 1
	}
	return *t.Probability
}

type deviceModelsFile map[string][]string

// versionsFile is the per-family history: platform -> table.
type versionsFile map[string]versionTable

type versionTable struct {
	AllVersions    []string            `json:"all_versions,omitempty"`
	ByMajorVersion map[string][]string `json:"by_major_version"`
}

// chromiumFile is the combined engine history used for Edge/Opera equivalents.
type chromiumFile struct {
	ByMajorVersion map[string][]string `json:"by_major_version"`
}
