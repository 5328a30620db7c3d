// Package catalog loads the reference data identities are sampled from:
// market share per browser version, OS distributions and UA-token templates,
// device model pools, and historical full-version pools.
//
// A Catalog is built once and never mutated afterwards. Every sampler it
// needs on the generation path is precomputed by Load, so a single Catalog
// can be shared by any number of goroutines without locking.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/stupside/uaforge/internal/identity"
	"github.com/stupside/uaforge/internal/sampler"
)

// ErrDataLoad is returned when a catalog file is missing or corrupt, or when
// no usable candidate survives flattening.
var ErrDataLoad = errors.New("catalog data load failed")

// Candidate is one weighted browser version from the market-share table.
type Candidate struct {
	Family  identity.Family
	Version string
	Device  identity.Device
	// OS is identity.OSUnknown when the candidate is not tied to one OS.
	OS    identity.OS
	Share float64
}

type osTable struct {
	choices []OSChoice
	weights []float64
	sampler *sampler.Sampler // nil when the weights do not form a distribution
}

type templateTable struct {
	templates []OSTemplate
	sampler   *sampler.Sampler // nil falls back to a uniform choice
}

// Catalog is the immutable, shareable attribute store.
type Catalog struct {
	candidates []Candidate
	weights    []float64
	global     *sampler.Sampler

	osTables  map[Scope]map[string]osTable
	templates map[string]templateTable
	devices   map[string][]string

	// family -> platform -> major -> full versions
	versions map[identity.Family]map[string]map[string][]string
	// chromium major -> full versions
	engine map[string][]string
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load reads and indexes every catalog file in fsys. The three required
// files must be present and valid; the version histories are optional, but
// a version file that exists and fails to parse is still an error.
func Load(fsys fs.FS) (*Catalog, error) {
	var market marketShareFile
	if err := readJSON(fsys, FileMarketShare, &market); err != nil {
		return nil, err
	}
	var dist osDistributionFile
	if err := readJSON(fsys, FileOSDistribution, &dist); err != nil {
		return nil, err
	}
	var devices deviceModelsFile
	if err := readJSON(fsys, FileDeviceModels, &devices); err != nil {
		return nil, err
	}

	c := &Catalog{
		devices:   devices,
		osTables:  make(map[Scope]map[string]osTable, 2),
		templates: make(map[string]templateTable, len(dist.OSTemplates)),
		versions:  make(map[identity.Family]map[string]map[string][]string, 3),
	}

	if err := c.flattenMarket(market); err != nil {
		return nil, err
	}

	c.osTables[ScopeDesktop] = buildOSTables(ScopeDesktop, dist.DesktopWeights)
	c.osTables[ScopeMobile] = buildOSTables(ScopeMobile, dist.MobileWeights)
	for osKey, templates := range dist.OSTemplates {
		c.templates[osKey] = buildTemplateTable(osKey, templates)
	}

	histories := []struct {
		family identity.Family
		file   string
	}{
		{identity.FamilyChrome, FileChromeVersions},
		{identity.FamilyEdge, FileEdgeVersions},
		{identity.FamilyOpera, FileOperaVersions},
	}
	for _, h := range histories {
		var vf versionsFile
		found, err := readOptionalJSON(fsys, h.file, &vf)
		if err != nil {
			return nil, err
		}
		if !found {
			slog.Debug("version history absent, full versions will be synthesized", "family", h.family, "file", h.file)
			continue
		}
		byPlatform := make(map[string]map[string][]string, len(vf))
		for platform, table := range vf {
			byPlatform[strings.ToLower(platform)] = table.ByMajorVersion
		}
		c.versions[h.family] = byPlatform
	}

	var chromium chromiumFile
	found, err := readOptionalJSON(fsys, FileChromiumVersions, &chromium)
	if err != nil {
		return nil, err
	}
	if found {
		c.engine = chromium.ByMajorVersion
	} else {
		slog.Debug("chromium history absent, engine versions will be synthesized", "file", FileChromiumVersions)
	}

	slog.Debug("catalog loaded",
		"candidates", len(c.candidates),
		"desktop_keys", len(c.osTables[ScopeDesktop]),
		"mobile_keys", len(c.osTables[ScopeMobile]),
		"os_templates", len(c.templates),
		"device_categories", len(c.devices),
		"version_histories", len(c.versions),
	)

	return c, nil
}

// flattenMarket turns the market-share table into the candidate list and
// builds the global sampler over it. Keys are visited in sorted order so the
// candidate indices, and therefore seeded draws, are stable across loads.
func (c *Catalog) flattenMarket(market marketShareFile) error {
	for _, key := range slices.Sorted(maps.Keys(market)) {
		mk, ok := marketKeys[key]
		if !ok {
			slog.Debug("skipping unrecognized market key", "key", key)
			continue
		}
		for _, e := range market[key] {
			version := normalizeVersion(e.Version)
			if e.GlobalShare <= 0 || version == "" {
				continue
			}
			c.candidates = append(c.candidates, Candidate{
				Family:  mk.family,
				Version: version,
				Device:  mk.device,
				OS:      mk.os,
				Share:   e.GlobalShare,
			})
			c.weights = append(c.weights, e.GlobalShare)
		}
	}

	if len(c.candidates) == 0 {
		return fmt.Errorf("%w: %s yields no candidates with a positive share", ErrDataLoad, FileMarketShare)
	}

	global, err := sampler.New(c.weights)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDataLoad, FileMarketShare, err)
	}
	c.global = global
	return nil
}

// normalizeVersion trims a marketing version and collapses a "17.4-17.5"
// range onto its newest end.
func normalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.LastIndexByte(v, '-'); i >= 0 {
		v = v[i+1:]
	}
	return v
}

func buildOSTables(scope Scope, raw map[string][]OSChoice) map[string]osTable {
	tables := make(map[string]osTable, len(raw))
	for key, choices := range raw {
		t := osTable{choices: choices, weights: make([]float64, len(choices))}
		for i, ch := range choices {
			t.weights[i] = ch.Weight
		}
		s, err := sampler.New(t.weights)
		if err != nil {
			slog.Debug("OS distribution has no usable weights", "scope", scope, "key", key, "error", err)
		} else {
			t.sampler = s
		}
		tables[key] = t
	}
	return tables
}

func buildTemplateTable(osKey string, templates []OSTemplate) templateTable {
	t := templateTable{templates: templates}
	if len(templates) == 0 {
		return t
	}
	weights := make([]float64, len(templates))
	for i, tpl := range templates {
		weights[i] = tpl.Weight()
	}
	s, err := sampler.New(weights)
	if err != nil {
		slog.Debug("OS templates have no usable weights, choosing uniformly", "os", osKey, "error", err)
		return t
	}
	t.sampler = s
	return t
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrDataLoad, name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", ErrDataLoad, name, err)
	}
	return nil
}

func readOptionalJSON(fsys fs.FS, name string, v any) (bool, error) {
	err := readJSON(fsys, name, v)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// Len returns the number of candidates.
func (c *Catalog) Len() int { return len(c.candidates) }

// Candidate returns the i-th candidate.
func (c *Catalog) Candidate(i int) Candidate { return c.candidates[i] }

// Candidates returns a copy of the candidate list.
func (c *Catalog) Candidates() []Candidate { return slices.Clone(c.candidates) }

// Weights returns a copy of the candidate weight vector.
func (c *Catalog) Weights() []float64 { return slices.Clone(c.weights) }

// SampleCandidate draws a candidate proportionally to its market share.
func (c *Catalog) SampleCandidate(r sampler.Rand) Candidate {
	return c.candidates[c.global.Sample(r)]
}

// OSChoices returns the OS choices and their weights for a distribution key.
// Both slices are nil when the key is unknown. Callers must not modify them.
func (c *Catalog) OSChoices(key string, scope Scope) ([]OSChoice, []float64) {
	t := c.osTables[scope][key]
	return t.choices, t.weights
}

// SampleOS draws an OS choice for a distribution key. ok is false, and no
// draw is consumed, when the key has no usable distribution.
func (c *Catalog) SampleOS(key string, scope Scope, r sampler.Rand) (OSChoice, bool) {
	t, ok := c.osTables[scope][key]
	if !ok || t.sampler == nil {
		return OSChoice{}, false
	}
	return t.choices[t.sampler.Sample(r)], true
}

// Templates returns the UA-token templates for an OS key. Callers must not
// modify the result.
func (c *Catalog) Templates(osKey string) []OSTemplate {
	return c.templates[osKey].templates
}

// SampleTemplate draws a UA-token template for an OS key, weighted by
// template probability when those form a distribution and uniformly
// otherwise. ok is false when the OS has no templates.
func (c *Catalog) SampleTemplate(osKey string, r sampler.Rand) (OSTemplate, bool) {
	t := c.templates[osKey]
	if t.sampler != nil {
		return t.templates[t.sampler.Sample(r)], true
	}
	return sampler.Choice(r, t.templates)
}

// DeviceModels returns the model pool for a vendor category. Callers must
// not modify the result.
func (c *Catalog) DeviceModels(category string) []string {
	return c.devices[category]
}

// DeviceCategories returns the vendor categories in sorted order.
func (c *Catalog) DeviceCategories() []string {
	return slices.Sorted(maps.Keys(c.devices))
}

// FullVersions returns the recorded full versions of a family's major
// version on a platform family ("windows", "macos", "linux", "android",
// "ios"). Callers must not modify the result.
func (c *Catalog) FullVersions(f identity.Family, major, platform string) []string {
	return c.versions[f][platform][major]
}

// HasVersionHistory reports whether a version history was loaded for f.
func (c *Catalog) HasVersionHistory(f identity.Family) bool {
	_, ok := c.versions[f]
	return ok
}

// EngineMajor maps a Chromium-family major version onto the Chromium major
// it ships, or -1 when the family has no known mapping or major does not
// parse.
func (c *Catalog) EngineMajor(f identity.Family, major string) int {
	offset, ok := engineOffsets[f]
	if !ok {
		return -1
	}
	m, err := strconv.Atoi(major)
	if err != nil || m < 0 {
		return -1
	}
	return m + offset
}

// EngineFullVersions returns recorded Chromium full versions for an engine
// major version. Callers must not modify the result.
func (c *Catalog) EngineFullVersions(engineMajor int) []string {
	if engineMajor < 0 {
		return nil
	}
	return c.engine[strconv.Itoa(engineMajor)]
}

// Families returns the families present among the candidates.
func (c *Catalog) Families() []identity.Family {
	seen := make(map[identity.Family]struct{}, len(identity.Families))
	var out []identity.Family
	for _, cand := range c.candidates {
		if _, ok := seen[cand.Family]; ok {
			continue
		}
		seen[cand.Family] = struct{}{}
		out = append(out, cand.Family)
	}
	slices.Sort(out)
	return out
}

// FamilyShare returns the fraction of total candidate weight held by f.
func (c *Catalog) FamilyShare(f identity.Family) float64 {
	var total, share float64
	for i, cand := range c.candidates {
		total += c.weights[i]
		if cand.Family == f {
			share += c.weights[i]
		}
	}
	if total == 0 {
		return 0
	}
	return share / total
}
