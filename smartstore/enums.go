package smartstore

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Marketplace enumeration values. Field names and values are fixed by the
// external listing schema.
const (
	SaleStatusSale = "SALE"

	DisplayStatusOn      = "ON"
	DisplayStatusSuspend = "SUSPENSION"

	DeliveryTypeDelivery = "DELIVERY"
	DeliveryTypeDirect   = "DIRECT"
	DeliveryTypeQuick    = "QUICK"

	CourierCodeCJ      = "CJGLS"
	CourierCodeHanjin  = "HANJIN"
	CourierCodeLotte   = "HYUNDAI"
	CourierCodePost    = "EPOST"
	CourierCodeLogen   = "KGB"
	CourierCodeDefault = CourierCodeCJ
)

// NormalizeSaleStatus maps a seller-entered sale status label to the fixed
// vocabulary. The marketplace forbids submitting out-of-stock or suspended
// statuses at creation time (those are system-derived), so anything that is
// not a plain "selling" label is coerced to SALE with a warning.
func NormalizeSaleStatus(raw string) string {
	label := strings.TrimSpace(raw)
	switch label {
	case "", "판매중", "판매":
		return SaleStatusSale
	}
	log.Warn().Str("label", raw).Msg("sale status coerced to SALE")
	return SaleStatusSale
}

// NormalizeDisplayStatus maps a display status label. 전시* labels mean ON
// unless they read as stopped (중지/안함); unrecognized labels default to
// ON with a warning.
func NormalizeDisplayStatus(raw string) string {
	label := strings.TrimSpace(raw)
	switch {
	case label == "" || label == DisplayStatusOn:
		return DisplayStatusOn
	case label == DisplayStatusSuspend:
		return DisplayStatusSuspend
	case strings.Contains(label, "중지") || strings.Contains(label, "안함"):
		return DisplayStatusSuspend
	case strings.HasPrefix(label, "전시"):
		return DisplayStatusOn
	}
	log.Warn().Str("label", raw).Msg("unrecognized display status, defaulting to ON")
	return DisplayStatusOn
}

var courierKeywords = []string{"택배", "CJ", "대한통운", "한진", "롯데", "우체국", "로젠"}

// NormalizeDeliveryType maps a delivery method label to a delivery type.
// Courier names count as parcel delivery; unrecognized input defaults to
// DELIVERY because that is what virtually every listing uses.
func NormalizeDeliveryType(raw string) string {
	label := strings.TrimSpace(raw)
	switch {
	case label == "":
		return DeliveryTypeDelivery
	case strings.Contains(label, "직접"):
		return DeliveryTypeDirect
	case strings.Contains(label, "퀵"):
		return DeliveryTypeQuick
	case containsAny(label, courierKeywords):
		return DeliveryTypeDelivery
	}
	return DeliveryTypeDelivery
}

// NormalizeCourierCode maps a courier name to its delivery company code.
func NormalizeCourierCode(raw string) string {
	label := strings.TrimSpace(raw)
	switch {
	case strings.Contains(label, "CJ") || strings.Contains(label, "대한통운"):
		return CourierCodeCJ
	case strings.Contains(label, "한진"):
		return CourierCodeHanjin
	case strings.Contains(label, "롯데"):
		return CourierCodeLotte
	case strings.Contains(label, "우체국"):
		return CourierCodePost
	case strings.Contains(label, "로젠"):
		return CourierCodeLogen
	}
	return CourierCodeDefault
}
