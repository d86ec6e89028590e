package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNoSelection(t *testing.T) {
	assert.Equal(t, "0.00", Calculate("", nil).String())
	assert.Equal(t, "0.00", Calculate("", []string{}).String())
}

func TestCalculateTierWithSurcharges(t *testing.T) {
	total := Calculate("Full", []string{"Mattress", "Tires"})
	assert.Equal(t, "835.00", total.String())
}

func TestCalculateSurchargeOrderInvariant(t *testing.T) {
	a := Calculate("1/2", []string{"Mattress", "Appliance", "Upstairs Labor"})
	b := Calculate("1/2", []string{"Upstairs Labor", "Mattress", "Appliance"})
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, "560.00", a.String())
}

func TestCalculateIdempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "275.00", Calculate("1/4", []string{"Mattress"}).String())
	}
}

func TestCalculateUnknownLabelsContributeNothing(t *testing.T) {
	assert.Equal(t, "125.00", Calculate("1/8", []string{"Piano"}).String())
	assert.Equal(t, "0.00", Calculate("3/4", nil).String())
}

func TestPriceItem(t *testing.T) {
	tests := []struct {
		label string
		want  string
		ok    bool
	}{
		{"1/8", "125.00", true},
		{"1/2 Truck Load", "450.00", true},
		{"Full Truck Load", "800.00", true},
		{"Mattress", "25.00", true},
		{"Upstairs Labor", "50.00", true},
		{"Hot tub removal", "", false},
	}
	for _, tt := range tests {
		price, ok := PriceItem(tt.label)
		assert.Equal(t, tt.ok, ok, tt.label)
		if ok {
			assert.Equal(t, tt.want, price.String(), tt.label)
		}
	}
}

func TestTotalFromItems(t *testing.T) {
	total, ok := TotalFromItems([]string{"1/2 Truck Load", "Mattress"})
	assert.True(t, ok)
	assert.Equal(t, "475.00", total.String())

	_, ok = TotalFromItems([]string{"1/2 Truck Load", "Piano"})
	assert.False(t, ok)
}
