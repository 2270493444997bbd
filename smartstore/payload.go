package smartstore

// The types in this file mirror the marketplace's listing schema
// field-for-field. Field names and nesting are fixed by the external API
// and must not be changed without a schema update on their side.

// ListingPayload is the single-item listing shape.
type ListingPayload struct {
	OriginProduct  OriginProduct  `json:"originProduct"`
	ChannelProduct ChannelProduct `json:"smartstoreChannelProduct"`
}

// GroupListingPayload is the grouped/variant listing shape: multiple
// purchasable entries sharing one category and common description.
type GroupListingPayload struct {
	GroupName       string           `json:"groupName"`
	LeafCategoryID  string           `json:"leafCategoryId"`
	DetailContent   string           `json:"commonDetailContent"`
	DeliveryInfo    DeliveryInfo     `json:"deliveryInfo"`
	DetailAttribute DetailAttribute  `json:"detailAttribute"`
	Products        []GroupedProduct `json:"products"`
	ChannelProduct  ChannelProduct   `json:"smartstoreChannelProduct"`
}

// GroupedProduct is one variant entry of a grouped listing.
type GroupedProduct struct {
	Name           string         `json:"name"`
	OptionContent  string         `json:"optionContent,omitempty"`
	StatusType     string         `json:"statusType"`
	SalePrice      int            `json:"salePrice"`
	StockQuantity  int            `json:"stockQuantity"`
	Images         ProductImages  `json:"images"`
	OriginAreaInfo OriginAreaInfo `json:"originAreaInfo"`
}

type OriginProduct struct {
	StatusType      string          `json:"statusType"`
	SaleType        string          `json:"saleType"`
	LeafCategoryID  string          `json:"leafCategoryId"`
	Name            string          `json:"name"`
	DetailContent   string          `json:"detailContent"`
	Images          ProductImages   `json:"images"`
	SalePrice       int             `json:"salePrice"`
	StockQuantity   int             `json:"stockQuantity"`
	DeliveryInfo    DeliveryInfo    `json:"deliveryInfo"`
	DetailAttribute DetailAttribute `json:"detailAttribute"`
}

type ProductImages struct {
	RepresentativeImage ProductImage   `json:"representativeImage"`
	OptionalImages      []ProductImage `json:"optionalImages,omitempty"`
}

type ProductImage struct {
	URL string `json:"url"`
}

type DeliveryInfo struct {
	DeliveryType          string            `json:"deliveryType"`
	DeliveryAttributeType string            `json:"deliveryAttributeType"`
	DeliveryCompany       string            `json:"deliveryCompany"`
	DeliveryFee           DeliveryFee       `json:"deliveryFee"`
	ClaimDeliveryInfo     ClaimDeliveryInfo `json:"claimDeliveryInfo"`
}

type DeliveryFee struct {
	DeliveryFeeType string `json:"deliveryFeeType"`
	BaseFee         int    `json:"baseFee"`
}

// ClaimDeliveryInfo carries return/exchange shipping fees, mandatory even
// when the seller never supplied them.
type ClaimDeliveryInfo struct {
	ReturnDeliveryFee   int `json:"returnDeliveryFee"`
	ExchangeDeliveryFee int `json:"exchangeDeliveryFee"`
}

type DetailAttribute struct {
	AfterServiceInfo          AfterServiceInfo                   `json:"afterServiceInfo"`
	OriginAreaInfo            OriginAreaInfo                     `json:"originAreaInfo"`
	MinorPurchasable          bool                               `json:"minorPurchasable"`
	ProductInfoProvidedNotice ProductInfoProvidedNotice          `json:"productInfoProvidedNotice"`
	CertificationExclude      *CertificationTargetExcludeContent `json:"certificationTargetExcludeContent,omitempty"`
}

type AfterServiceInfo struct {
	TelephoneNumber string `json:"afterServiceTelephoneNumber"`
	GuideContent    string `json:"afterServiceGuideContent"`
}

type OriginAreaInfo struct {
	OriginAreaCode string `json:"originAreaCode"`
	Content        string `json:"content,omitempty"`
	Importer       string `json:"importer,omitempty"`
	CatchingWaters string `json:"catchingWaters,omitempty"`
}

// CertificationTargetExcludeContent marks the listing as excluded from the
// automatic certification requirement. The engine never supplies real
// certificate identifiers.
type CertificationTargetExcludeContent struct {
	KCExclusion    string `json:"kcCertifiedProductExclusionYn,omitempty"`
	ChildExclusion bool   `json:"childCertifiedProductExclusionYn,omitempty"`
}

type ProductInfoProvidedNotice struct {
	NoticeType string    `json:"productInfoProvidedNoticeType"`
	Etc        EtcNotice `json:"etc"`
}

// EtcNotice is the catch-all product information notice. Every field is
// mandatory in the schema; unknown values point buyers at the detail page.
type EtcNotice struct {
	ItemName             string `json:"itemName"`
	ModelName            string `json:"modelName"`
	Manufacturer         string `json:"manufacturer"`
	CustomerServicePhone string `json:"customerServicePhoneNumber"`
}

type ChannelProduct struct {
	NaverShoppingRegistration bool   `json:"naverShoppingRegistration"`
	DisplayStatusType         string `json:"channelProductDisplayStatusType"`
}

// SubmitResponse is the marketplace's answer to a submission.
type SubmitResponse struct {
	ProductNo        string `json:"originProductNo"`
	ChannelProductNo string `json:"smartstoreChannelProductNo"`
}
