// Package pricing holds the volume-tier and surcharge rate tables and the
// estimate calculator. The tables are the single source of truth for both
// the client calculator (served at /api/pricing) and server-side quote
// total verification.
package pricing

import (
	"strings"

	"haulpro-backend/models"

	"github.com/shopspring/decimal"
)

type Rate struct {
	Label string       `json:"label"`
	Price models.Money `json:"price"`
}

func rate(label string, amount int64) Rate {
	return Rate{Label: label, Price: models.NewMoney(decimal.NewFromInt(amount))}
}

var tiers = []Rate{
	rate("1/8", 125),
	rate("1/4", 250),
	rate("1/2", 450),
	rate("Full", 800),
}

var surcharges = []Rate{
	rate("Mattress", 25),
	rate("Appliance", 35),
	rate("Tires", 10),
	rate("Upstairs Labor", 50),
}

func TierRates() []Rate {
	out := make([]Rate, len(tiers))
	copy(out, tiers)
	return out
}

func SurchargeRates() []Rate {
	out := make([]Rate, len(surcharges))
	copy(out, surcharges)
	return out
}

// Calculate sums one optional tier selection with any surcharge selections.
// No tier (or an unknown label) contributes 0. The result is deterministic
// and insensitive to surcharge order.
func Calculate(tier string, selected []string) models.Money {
	total := decimal.Zero
	for _, t := range tiers {
		if t.Label == tier {
			total = total.Add(t.Price.Decimal())
			break
		}
	}
	for _, label := range selected {
		for _, s := range surcharges {
			if s.Label == label {
				total = total.Add(s.Price.Decimal())
				break
			}
		}
	}
	return models.NewMoney(total)
}

// PriceItem resolves a quote line-item label against the rate tables.
// Tier items may be written bare ("1/2") or as the client renders them
// ("1/2 Truck Load").
func PriceItem(label string) (models.Money, bool) {
	trimmed := strings.TrimSpace(label)
	tierLabel := strings.TrimSpace(strings.TrimSuffix(trimmed, "Truck Load"))
	for _, t := range tiers {
		if t.Label == trimmed || t.Label == tierLabel {
			return t.Price, true
		}
	}
	for _, s := range surcharges {
		if s.Label == trimmed {
			return s.Price, true
		}
	}
	return models.Money{}, false
}

// TotalFromItems prices a full line-item list. The boolean reports whether
// every item was recognized; a quote holding custom items cannot be
// re-derived and is accepted as submitted.
func TotalFromItems(items []string) (models.Money, bool) {
	total := decimal.Zero
	for _, item := range items {
		price, ok := PriceItem(item)
		if !ok {
			return models.Money{}, false
		}
		total = total.Add(price.Decimal())
	}
	return models.NewMoney(total), true
}
