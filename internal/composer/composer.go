// Package composer turns one weighted draw from a catalog into a complete,
// self-consistent browser identity.
package composer

import (
	"log/slog"

	"github.com/stupside/uaforge/internal/catalog"
	"github.com/stupside/uaforge/internal/hints"
	"github.com/stupside/uaforge/internal/identity"
	"github.com/stupside/uaforge/internal/sampler"
	"github.com/stupside/uaforge/internal/versioning"
)

// Composer generates identity records from a shared catalog.
//
// Generate advances the composer's own random stream and must not be called
// from several goroutines at once. GenerateSession and GenerateBatch only
// read the composer and are safe for concurrent use.
type Composer struct {
	cat      *catalog.Catalog
	seed     uint64
	rng      sampler.Rand
	versions *versioning.Expander
	hints    *hints.Builder
	logger   *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithSeed fixes the base seed. Without it the seed is taken from the clock.
func WithSeed(seed uint64) Option {
	return func(c *Composer) { c.seed = seed }
}

// WithLogger sets the logger used for per-draw debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) { c.logger = l }
}

// New creates a Composer reading from cat.
func New(cat *catalog.Catalog, opts ...Option) *Composer {
	c := &Composer{
		cat:      cat,
		seed:     sampler.TimeSeed(),
		versions: versioning.New(cat),
		hints:    hints.New(cat),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rng = sampler.NewRand(c.seed)
	return c
}

// Seed returns the base seed of the composer.
func (c *Composer) Seed() uint64 { return c.seed }

// Generate draws one identity from the composer's own stream.
func (c *Composer) Generate() identity.Record {
	return c.draw(c.rng)
}

// GenerateSession draws the identity bound to key. The same key and base
// seed always produce the same record, whatever else the composer has
// generated before.
func (c *Composer) GenerateSession(key string) identity.Record {
	return c.draw(sampler.NewSessionRand(SessionSeed(c.seed, key)))
}

// sessionModulus is the Mersenne prime 2^31-1.
const sessionModulus = 1<<31 - 1

// SessionSeed folds a session key into a base seed with a polynomial rolling
// hash over its runes.
func SessionSeed(base uint64, key string) uint64 {
	h := base % sessionModulus
	for _, ch := range key {
		h = (h*31 + uint64(ch)) % sessionModulus
	}
	return h
}

// draw runs the fixed pipeline for one record. Every step does a constant
// number of lookups and draws; nothing retries.
func (c *Composer) draw(r sampler.Rand) identity.Record {
	cand := c.cat.SampleCandidate(r)
	osSel := c.resolveOS(cand, r)
	hw := c.resolveHardware(cand, r)

	full := c.versions.Expand(cand.Family, cand.Version, r, osSel.OS.PlatformFamily())
	engineMajor := c.cat.EngineMajor(cand.Family, versioning.Major(cand.Version))

	ua := buildLegacy(legacyInput{
		family:      cand.Family,
		device:      cand.Device,
		os:          osSel.OS,
		token:       osSel.Token,
		placeholder: osSel.PlatformVersion,
		model:       hw.Model,
		version:     cand.Version,
		full:        full,
		engineMajor: engineMajor,
	})

	h := c.hints.Build(hints.Input{
		Family:          cand.Family,
		Device:          cand.Device,
		Version:         cand.Version,
		FullVersion:     full,
		Platform:        osSel.Platform,
		PlatformVersion: osSel.PlatformVersion,
		Model:           hw.Model,
		CPUArch:         hw.CPUArch,
	}, r)

	c.logger.Debug("identity composed",
		"family", cand.Family,
		"version", cand.Version,
		"device", cand.Device,
		"os", osSel.OS,
		"model", hw.Model,
		"hardware_brand", hw.BrandValue,
		"engine_major", engineMajor,
	)

	return identity.Record{
		UserAgent:   ua,
		MetaOS:      osSel.OS,
		MetaBrowser: cand.Family,
		MetaDevice:  cand.Device,
		Hints:       h,
	}
}
