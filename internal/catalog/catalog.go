// Package catalog holds the product catalog for the holiday movie poster
// funnel: the three movie vibes, the three fulfillment tiers with their base
// prices, and the constraints on uploaded photos.
package catalog

import "github.com/shopspring/decimal"

type Vibe string

const (
	VibeHomeAlone Vibe = "homeAlone"
	VibeElf       Vibe = "elf"
	VibeVacation  Vibe = "vacation"
)

type Tier string

const (
	TierDigital Tier = "digital"
	TierPrint   Tier = "print"
	TierFramed  Tier = "framed"
)

// VibeInfo is the display copy shown for a vibe choice.
type VibeInfo struct {
	Title   string
	Tagline string
}

// TierInfo is the display copy shown for a fulfillment tier.
type TierInfo struct {
	Title       string
	Description string
}

var vibeInfo = map[Vibe]VibeInfo{
	VibeHomeAlone: {Title: "Home Alone", Tagline: "Funny family chaos energy."},
	VibeElf:       {Title: "Elf", Tagline: "Wholesome, bright, kid-friendly."},
	VibeVacation:  {Title: "Christmas Vacation", Tagline: "Iconic dad-energy, total mayhem."},
}

var tierInfo = map[Tier]TierInfo{
	TierDigital: {Title: "Digital Only", Description: "High-res file for cards & socials."},
	TierPrint:   {Title: "Fine-Art Print", Description: "Archival inkjet on museum paper."},
	TierFramed:  {Title: "Framed Edition", Description: "Premium frame, ready to hang."},
}

var basePrices = map[Tier]decimal.Decimal{
	TierDigital: decimal.NewFromInt(79),
	TierPrint:   decimal.NewFromInt(189),
	TierFramed:  decimal.NewFromInt(399),
}

// MaxUploadBytes is the upload size ceiling enforced by the funnel.
const MaxUploadBytes = 25 << 20

// AcceptedImageTypes are the declared MIME types the funnel accepts.
var AcceptedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/heic",
	"image/heif",
}

// Vibes returns the vibe choices in display order.
func Vibes() []Vibe {
	return []Vibe{VibeHomeAlone, VibeElf, VibeVacation}
}

// Tiers returns the fulfillment tiers in display order.
func Tiers() []Tier {
	return []Tier{TierDigital, TierPrint, TierFramed}
}

func Info(v Vibe) VibeInfo { return vibeInfo[v] }

func TierDetails(t Tier) TierInfo { return tierInfo[t] }

func ValidVibe(s string) bool {
	_, ok := vibeInfo[Vibe(s)]
	return ok
}

func ValidTier(s string) bool {
	_, ok := basePrices[Tier(s)]
	return ok
}

// Price returns the base price for a tier, zero for an unknown tier.
func Price(t Tier) decimal.Decimal {
	return basePrices[t]
}

// Total computes price(tier) x quantity with quantity clamped to at least 1.
func Total(t Tier, quantity int) decimal.Decimal {
	if quantity < 1 {
		quantity = 1
	}
	return basePrices[t].Mul(decimal.NewFromInt(int64(quantity)))
}

// Accepts reports whether a declared upload MIME type is allowed.
func Accepts(mimeType string) bool {
	for _, t := range AcceptedImageTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}
