package hints

import (
	"strings"

	"github.com/stupside/uaforge/internal/identity"
	"github.com/stupside/uaforge/internal/sampler"
)

// greaseTemplate has exactly two separator slots, the spaces.
const greaseTemplate = "Not A Brand"

const greaseAlphabet = ";:()_ "

var greaseVersions = []string{"99", "8", "24"}

// Grease returns a randomized decoy brand. Each separator slot of the
// template is filled independently from a small punctuation alphabet, then
// the advertised version is drawn from a fixed set.
func Grease(r sampler.Rand) identity.Brand {
	var b strings.Builder
	b.Grow(len(greaseTemplate))
	for _, c := range greaseTemplate {
		if c == ' ' {
			c = rune(greaseAlphabet[r.IntN(len(greaseAlphabet))])
		}
		b.WriteRune(c)
	}
	return identity.Brand{
		Name:    b.String(),
		Version: greaseVersions[r.IntN(len(greaseVersions))],
	}
}
