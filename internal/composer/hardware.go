package composer

import (
	"github.com/stupside/uaforge/internal/catalog"
	"github.com/stupside/uaforge/internal/identity"
	"github.com/stupside/uaforge/internal/sampler"
)

// Hardware is the device resolved for one draw.
type Hardware struct {
	Model string
	// BrandValue is a ready-made brand header value, set only for iPhones.
	BrandValue string
	CPUArch    string
}

const (
	archX86_64 = "x86_64"
	archARM64  = "arm64"

	pixelCategory = "google_pixel"
	pixelShare    = 0.3

	genericModel = "Generic Android"
)

var (
	desktopHardware = Hardware{CPUArch: archX86_64}
	iPhoneHardware  = Hardware{Model: "iPhone", BrandValue: `"iPhone";v="16"`, CPUArch: archARM64}
)

// vendorCategories are the non-Pixel device pools, chosen uniformly.
var vendorCategories = []string{"samsung", "oppo_realme_generic", "xiaomi_ecosystem"}

func (c *Composer) resolveHardware(cand catalog.Candidate, r sampler.Rand) Hardware {
	switch {
	case cand.Device == identity.DeviceDesktop:
		return desktopHardware
	case cand.Family == identity.FamilySafari:
		return iPhoneHardware
	}

	var category string
	if cand.Family == identity.FamilyChrome && r.Float64() < pixelShare {
		category = pixelCategory
	} else {
		category = vendorCategories[r.IntN(len(vendorCategories))]
	}

	model, ok := sampler.Choice(r, c.cat.DeviceModels(category))
	if !ok {
		c.logger.Debug("empty device pool, using generic model", "category", category)
		model = genericModel
	}
	return Hardware{Model: model, CPUArch: archARM64}
}
