package smartstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSaleStatus(t *testing.T) {
	assert.Equal(t, SaleStatusSale, NormalizeSaleStatus("판매중"))
	assert.Equal(t, SaleStatusSale, NormalizeSaleStatus("판매"))
	assert.Equal(t, SaleStatusSale, NormalizeSaleStatus(" 판매중 "))

	// Out-of-stock and suspended labels are seller input the marketplace
	// refuses at creation time; they coerce to SALE.
	assert.Equal(t, SaleStatusSale, NormalizeSaleStatus("품절"))
	assert.Equal(t, SaleStatusSale, NormalizeSaleStatus("판매중지"))
	assert.Equal(t, SaleStatusSale, NormalizeSaleStatus("asdf"))
}

func TestNormalizeDisplayStatus(t *testing.T) {
	tests := map[string]string{
		"전시중":        DisplayStatusOn,
		"전시":         DisplayStatusOn,
		"전시중지":       DisplayStatusSuspend,
		"전시안함":       DisplayStatusSuspend,
		"중지":         DisplayStatusSuspend,
		"SUSPENSION": DisplayStatusSuspend,
		"ON":         DisplayStatusOn,
		"":           DisplayStatusOn,
		"뭔가 이상한 값":   DisplayStatusOn,
	}
	for input, want := range tests {
		assert.Equal(t, want, NormalizeDisplayStatus(input), input)
	}
}

func TestNormalizeDeliveryType(t *testing.T) {
	tests := map[string]string{
		"택배":      DeliveryTypeDelivery,
		"CJ대한통운":  DeliveryTypeDelivery,
		"우체국택배":   DeliveryTypeDelivery,
		"직접전달":    DeliveryTypeDirect,
		"직접":      DeliveryTypeDirect,
		"퀵서비스":    DeliveryTypeQuick,
		"":        DeliveryTypeDelivery,
		"비둘기 배달?": DeliveryTypeDelivery,
	}
	for input, want := range tests {
		assert.Equal(t, want, NormalizeDeliveryType(input), input)
	}
}

func TestNormalizeCourierCode(t *testing.T) {
	tests := map[string]string{
		"CJ대한통운":  CourierCodeCJ,
		"대한통운":    CourierCodeCJ,
		"한진택배":    CourierCodeHanjin,
		"롯데택배":    CourierCodeLotte,
		"우체국택배":   CourierCodePost,
		"로젠택배":    CourierCodeLogen,
		"":        CourierCodeDefault,
		"없는택배사":   CourierCodeDefault,
	}
	for input, want := range tests {
		assert.Equal(t, want, NormalizeCourierCode(input), input)
	}
}

// Normalizers never reject input; any string maps to a legal enum value.
func TestNormalizersAreTotal(t *testing.T) {
	inputs := []string{"", " ", "!!!", "判賣中", "🦑", "SALE전시중지퀵", "\n\t"}

	for _, in := range inputs {
		assert.Contains(t, []string{SaleStatusSale}, NormalizeSaleStatus(in))
		assert.Contains(t, []string{DisplayStatusOn, DisplayStatusSuspend}, NormalizeDisplayStatus(in))
		assert.Contains(t,
			[]string{DeliveryTypeDelivery, DeliveryTypeDirect, DeliveryTypeQuick},
			NormalizeDeliveryType(in))
		assert.Contains(t,
			[]string{CourierCodeCJ, CourierCodeHanjin, CourierCodeLotte, CourierCodePost, CourierCodeLogen},
			NormalizeCourierCode(in))
	}
}
