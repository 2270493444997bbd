package smartstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	saleTypeNew             = "NEW"
	deliveryAttributeNormal = "NORMAL"
	deliveryFeeTypeFree     = "FREE"
	deliveryFeeTypePaid     = "PAID"
	noticeTypeEtc           = "ETC"
	kcExclusionTrue         = "TRUE"

	// detailPageReference is the accepted placeholder for notice fields the
	// seller did not supply.
	detailPageReference = "상세페이지 참조"
)

// Defaults are seller-level values used for mandatory payload sections the
// input does not cover. They are explicit configuration rather than
// hardcoded placeholders so operators can supply real values.
type Defaults struct {
	ImporterName        string
	ASTelephoneNumber   string
	ASGuideContent      string
	ReturnDeliveryFee   int
	ExchangeDeliveryFee int
}

// Assembler builds outbound listing payloads from normalized input. It is
// safe for concurrent use; all mutable state lives in the injected caches.
type Assembler struct {
	categories *CategoryResolver
	compliance *ComplianceAdvisor
	origins    *OriginResolver
	images     ImageHost
	defaults   Defaults
}

func NewAssembler(
	categories *CategoryResolver,
	compliance *ComplianceAdvisor,
	origins *OriginResolver,
	images ImageHost,
	defaults Defaults,
) *Assembler {
	return &Assembler{
		categories: categories,
		compliance: compliance,
		origins:    origins,
		images:     images,
		defaults:   defaults,
	}
}

// Assemble builds the single-item payload. It either returns a complete
// payload or an error; a structurally incomplete payload is never emitted.
func (a *Assembler) Assemble(ctx context.Context, input ListingInput) (*ListingPayload, error) {
	if errs := validateListingInput(input, ""); len(errs) > 0 {
		return nil, errs
	}

	leafID, err := a.categories.Resolve(ctx, input.Category)
	if err != nil {
		return nil, ValidationErrors{{Field: "category", Reason: err.Error()}}
	}
	flags := a.compliance.Evaluate(input.Category, leafID)
	origin := a.origins.Resolve(ctx, input.Origin, input.CatchingWaters, flags)

	hosted, err := a.hostImages(ctx, input.Images)
	if err != nil {
		return nil, ValidationErrors{{Field: "images", Reason: err.Error()}}
	}

	payload := &ListingPayload{
		OriginProduct: OriginProduct{
			StatusType:     NormalizeSaleStatus(input.SaleStatus),
			SaleType:       saleTypeNew,
			LeafCategoryID: leafID,
			Name:           strings.TrimSpace(input.Name),
			DetailContent:  input.DetailContent,
			Images:         buildImages(hosted),
			SalePrice:      input.SalePrice,
			StockQuantity:  input.StockQuantity,
			DeliveryInfo:   a.buildDeliveryInfo(input.DeliveryMethod, input.DeliveryCompany, input.DeliveryFee),
			DetailAttribute: a.buildDetailAttribute(
				input.Manufacturer, flags, origin,
			),
		},
		ChannelProduct: ChannelProduct{
			NaverShoppingRegistration: true,
			DisplayStatusType:         NormalizeDisplayStatus(input.DisplayStatus),
		},
	}
	return payload, nil
}

// AssembleGroup builds the grouped/variant payload. Compliance, origin and
// enum rules are applied independently to every variant entry.
func (a *Assembler) AssembleGroup(ctx context.Context, input GroupListingInput) (*GroupListingPayload, error) {
	errs := validateGroupInput(input)
	if len(errs) > 0 {
		return nil, errs
	}

	leafID, err := a.categories.Resolve(ctx, input.Category)
	if err != nil {
		return nil, ValidationErrors{{Field: "category", Reason: err.Error()}}
	}
	flags := a.compliance.Evaluate(input.Category, leafID)
	groupOrigin := a.origins.Resolve(ctx, input.Origin, "", flags)

	products := make([]GroupedProduct, len(input.Variants))
	for i, v := range input.Variants {
		hosted, err := a.hostImages(ctx, v.Images)
		if err != nil {
			return nil, ValidationErrors{{
				Field:  fmt.Sprintf("variants[%d].images", i+1),
				Reason: err.Error(),
			}}
		}

		origin := groupOrigin
		if v.Origin != "" {
			origin = a.origins.Resolve(ctx, v.Origin, "", flags)
		}

		products[i] = GroupedProduct{
			Name:           strings.TrimSpace(v.Name),
			OptionContent:  v.Option,
			StatusType:     NormalizeSaleStatus(v.SaleStatus),
			SalePrice:      v.SalePrice,
			StockQuantity:  v.StockQuantity,
			Images:         buildImages(hosted),
			OriginAreaInfo: buildOriginAreaInfo(origin),
		}
	}

	payload := &GroupListingPayload{
		GroupName:       strings.TrimSpace(input.GroupName),
		LeafCategoryID:  leafID,
		DetailContent:   input.DetailContent,
		DeliveryInfo:    a.buildDeliveryInfo(input.DeliveryMethod, input.DeliveryCompany, input.DeliveryFee),
		DetailAttribute: a.buildDetailAttribute("", flags, groupOrigin),
		Products:        products,
		ChannelProduct: ChannelProduct{
			NaverShoppingRegistration: true,
			DisplayStatusType:         DisplayStatusOn,
		},
	}
	return payload, nil
}

// hostImages uploads every image concurrently, preserving order. Any
// failure fails the request: the marketplace rejects unhosted image URLs.
func (a *Assembler) hostImages(ctx context.Context, urls []string) ([]string, error) {
	hosted := make([]string, len(urls))
	g, ctx := errgroup.WithContext(ctx)
	for i := range urls {
		i := i
		g.Go(func() error {
			u, err := a.images.HostImage(ctx, urls[i])
			if err != nil {
				return errors.Wrapf(err, "failed to host image %s", urls[i])
			}
			hosted[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hosted, nil
}

func (a *Assembler) buildDeliveryInfo(method, courier string, baseFee int) DeliveryInfo {
	feeType := deliveryFeeTypeFree
	if baseFee > 0 {
		feeType = deliveryFeeTypePaid
	}
	return DeliveryInfo{
		DeliveryType:          NormalizeDeliveryType(method),
		DeliveryAttributeType: deliveryAttributeNormal,
		DeliveryCompany:       NormalizeCourierCode(courier),
		DeliveryFee: DeliveryFee{
			DeliveryFeeType: feeType,
			BaseFee:         baseFee,
		},
		ClaimDeliveryInfo: ClaimDeliveryInfo{
			ReturnDeliveryFee:   a.defaults.ReturnDeliveryFee,
			ExchangeDeliveryFee: a.defaults.ExchangeDeliveryFee,
		},
	}
}

func (a *Assembler) buildDetailAttribute(manufacturer string, flags ComplianceFlags, origin OriginInfo) DetailAttribute {
	if manufacturer == "" {
		manufacturer = detailPageReference
	}

	attr := DetailAttribute{
		AfterServiceInfo: AfterServiceInfo{
			TelephoneNumber: a.defaults.ASTelephoneNumber,
			GuideContent:    a.defaults.ASGuideContent,
		},
		OriginAreaInfo:   buildOriginAreaInfo(origin),
		MinorPurchasable: true,
		ProductInfoProvidedNotice: ProductInfoProvidedNotice{
			NoticeType: noticeTypeEtc,
			Etc: EtcNotice{
				ItemName:             detailPageReference,
				ModelName:            detailPageReference,
				Manufacturer:         manufacturer,
				CustomerServicePhone: a.defaults.ASTelephoneNumber,
			},
		},
	}

	if flags.KCExempt || flags.ChildExempt {
		exclude := &CertificationTargetExcludeContent{
			ChildExclusion: flags.ChildExempt,
		}
		if flags.KCExempt {
			exclude.KCExclusion = kcExclusionTrue
		}
		attr.CertificationExclude = exclude
	}
	return attr
}

func buildOriginAreaInfo(origin OriginInfo) OriginAreaInfo {
	return OriginAreaInfo{
		OriginAreaCode: origin.Code,
		Content:        origin.DisplayContent,
		Importer:       origin.ImporterName,
		CatchingWaters: origin.CatchingWaters,
	}
}

func buildImages(hosted []string) ProductImages {
	images := ProductImages{
		RepresentativeImage: ProductImage{URL: hosted[0]},
	}
	for _, u := range hosted[1:] {
		images.OptionalImages = append(images.OptionalImages, ProductImage{URL: u})
	}
	return images
}

func validateListingInput(input ListingInput, fieldPrefix string) ValidationErrors {
	var errs ValidationErrors
	field := func(name string) string { return fieldPrefix + name }

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, &ValidationError{Field: field("name"), Reason: "required"})
	}
	if strings.TrimSpace(input.Category) == "" {
		errs = append(errs, &ValidationError{Field: field("category"), Reason: "required"})
	}
	if input.SalePrice <= 0 {
		errs = append(errs, &ValidationError{Field: field("salePrice"), Reason: "must be positive"})
	}
	if input.StockQuantity < 0 {
		errs = append(errs, &ValidationError{Field: field("stockQuantity"), Reason: "must not be negative"})
	}
	if len(input.Images) == 0 {
		errs = append(errs, &ValidationError{Field: field("images"), Reason: "at least one image is required"})
	}
	if strings.TrimSpace(input.DetailContent) == "" {
		errs = append(errs, &ValidationError{Field: field("detailContent"), Reason: "required"})
	}
	return errs
}

func validateGroupInput(input GroupListingInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.GroupName) == "" {
		errs = append(errs, &ValidationError{Field: "groupName", Reason: "required"})
	}
	if strings.TrimSpace(input.Category) == "" {
		errs = append(errs, &ValidationError{Field: "category", Reason: "required"})
	}
	if strings.TrimSpace(input.DetailContent) == "" {
		errs = append(errs, &ValidationError{Field: "detailContent", Reason: "required"})
	}
	if len(input.Variants) == 0 {
		errs = append(errs, &ValidationError{Field: "variants", Reason: "at least one variant is required"})
	}

	// Variant indexes are reported 1-based, matching how sellers count rows.
	for i, v := range input.Variants {
		prefix := fmt.Sprintf("variants[%d].", i+1)
		if strings.TrimSpace(v.Name) == "" {
			errs = append(errs, &ValidationError{Field: prefix + "name", Reason: "required"})
		}
		if v.SalePrice <= 0 {
			errs = append(errs, &ValidationError{Field: prefix + "salePrice", Reason: "must be positive"})
		}
		if v.StockQuantity < 0 {
			errs = append(errs, &ValidationError{Field: prefix + "stockQuantity", Reason: "must not be negative"})
		}
		if len(v.Images) == 0 {
			errs = append(errs, &ValidationError{Field: prefix + "images", Reason: "at least one image is required"})
		}
	}
	return errs
}
