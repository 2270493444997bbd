package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jmlim/smartstore-lister/smartstore"
)

// Row is one flat key→value record as handed over by the spreadsheet layer.
// Header names follow the seller-facing upload template.
type Row map[string]string

const (
	colName           = "상품명"
	colCategory       = "카테고리"
	colPrice          = "판매가"
	colStock          = "재고수량"
	colImages         = "이미지"
	colDetail         = "상세설명"
	colBrand          = "브랜드"
	colManufacturer   = "제조사"
	colSaleStatus     = "판매상태"
	colDisplayStatus  = "전시상태"
	colDeliveryMethod = "배송방법"
	colCourier        = "택배사"
	colDeliveryFee    = "배송비"
	colOrigin         = "원산지"
	colWaters         = "수역"
	colGroup          = "그룹명"
	colOption         = "옵션명"
)

func rowInt(row Row, key string) (int, error) {
	raw := strings.TrimSpace(row[key])
	if raw == "" {
		return 0, nil
	}
	// Sellers paste numbers with thousands separators.
	raw = strings.ReplaceAll(raw, ",", "")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Errorf("%s is not a number: %q", key, row[key])
	}
	return n, nil
}

func rowImages(row Row) []string {
	var urls []string
	for _, part := range strings.FieldsFunc(row[colImages], func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		if u := strings.TrimSpace(part); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// ParseListingRow maps one flat row to a ListingInput. Semantic validation
// (required fields and so on) is the assembler's job; this only rejects
// rows that cannot be read at all.
func ParseListingRow(row Row) (smartstore.ListingInput, error) {
	price, err := rowInt(row, colPrice)
	if err != nil {
		return smartstore.ListingInput{}, err
	}
	stock, err := rowInt(row, colStock)
	if err != nil {
		return smartstore.ListingInput{}, err
	}
	fee, err := rowInt(row, colDeliveryFee)
	if err != nil {
		return smartstore.ListingInput{}, err
	}

	return smartstore.ListingInput{
		Name:            strings.TrimSpace(row[colName]),
		Category:        strings.TrimSpace(row[colCategory]),
		SalePrice:       price,
		StockQuantity:   stock,
		Images:          rowImages(row),
		DetailContent:   row[colDetail],
		Brand:           strings.TrimSpace(row[colBrand]),
		Manufacturer:    strings.TrimSpace(row[colManufacturer]),
		SaleStatus:      row[colSaleStatus],
		DisplayStatus:   row[colDisplayStatus],
		DeliveryMethod:  row[colDeliveryMethod],
		DeliveryCompany: row[colCourier],
		DeliveryFee:     fee,
		Origin:          strings.TrimSpace(row[colOrigin]),
		CatchingWaters:  strings.TrimSpace(row[colWaters]),
	}, nil
}

// FoldRows splits rows into standalone listings and grouped listings. Rows
// sharing a non-empty 그룹명 value fold into one grouped listing, in row
// order; the first row of a group supplies the shared fields.
func FoldRows(rows []Row) ([]smartstore.ListingInput, []smartstore.GroupListingInput, error) {
	var singles []smartstore.ListingInput
	var groups []smartstore.GroupListingInput
	groupIndex := make(map[string]int)

	for i, row := range rows {
		input, err := ParseListingRow(row)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "row %d", i+1)
		}

		groupName := strings.TrimSpace(row[colGroup])
		if groupName == "" {
			singles = append(singles, input)
			continue
		}

		variant := smartstore.VariantInput{
			Name:          input.Name,
			Option:        strings.TrimSpace(row[colOption]),
			SalePrice:     input.SalePrice,
			StockQuantity: input.StockQuantity,
			Images:        input.Images,
			Origin:        input.Origin,
			SaleStatus:    input.SaleStatus,
		}

		idx, ok := groupIndex[groupName]
		if !ok {
			groups = append(groups, smartstore.GroupListingInput{
				GroupName:       groupName,
				Category:        input.Category,
				DetailContent:   input.DetailContent,
				DeliveryMethod:  input.DeliveryMethod,
				DeliveryCompany: input.DeliveryCompany,
				DeliveryFee:     input.DeliveryFee,
				Origin:          input.Origin,
			})
			idx = len(groups) - 1
			groupIndex[groupName] = idx
		}
		groups[idx].Variants = append(groups[idx].Variants, variant)
	}

	return singles, groups, nil
}
