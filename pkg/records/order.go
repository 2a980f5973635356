// Package records turns order rows into export records.
package records

import (
	"strings"

	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
	"golang.org/x/text/width"
)

// OrderRow is one joined order/customer row as returned by the order query.
type OrderRow struct {
	OrderID           int64  `yaml:"order_id" json:"order_id"`
	CustomerName      string `yaml:"customer_name" json:"customer_name"`
	Phone             string `yaml:"phone" json:"phone"`
	Address           string `yaml:"address" json:"address"`
	DetailedAddress   string `yaml:"detailed_address" json:"detailed_address"`
	ProductName       string `yaml:"product_name" json:"product_name"`
	Quantity          int    `yaml:"quantity" json:"quantity"`
	ProductCode       string `yaml:"product_code" json:"product_code"`
	ProductAttributes string `yaml:"product_attributes" json:"product_attributes"`
	Remarks           string `yaml:"remarks" json:"remarks"`
}

// Format converts an order row into an export record. Remarks, sender fields
// and the order number are always left blank.
func Format(row OrderRow) models.OutputRecord {
	region := SplitAddress(row.Address)

	quantity := row.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return models.OutputRecord{
		models.ColRecipientName:     strings.TrimSpace(row.CustomerName),
		models.ColRecipientPhone:    narrow(row.Phone),
		models.ColRecipientProvince: region.Province,
		models.ColRecipientCity:     region.City,
		models.ColRecipientDistrict: region.District,
		models.ColRecipientAddress:  strings.TrimSpace(row.DetailedAddress),
		models.ColItemName:          strings.TrimSpace(row.ProductName),
		models.ColQuantity:          quantity,
		models.ColProductCode:       narrow(row.ProductCode),
		models.ColSalesAttributes:   strings.TrimSpace(row.ProductAttributes),
		models.ColRemarks:           "",
		models.ColSenderName:        "",
		models.ColSenderPhone:       "",
		models.ColSenderProvince:    "",
		models.ColSenderCity:        "",
		models.ColSenderDistrict:    "",
		models.ColSenderAddress:     "",
		models.ColOrderNumber:       "",
	}
}

// FormatAll formats rows, keeping their order.
func FormatAll(rows []OrderRow) []models.OutputRecord {
	out := make([]models.OutputRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, Format(row))
	}
	return out
}

// narrow folds full-width characters (common in phone numbers typed on
// Chinese IMEs) to their ASCII forms.
func narrow(s string) string {
	return strings.TrimSpace(width.Narrow.String(s))
}
