package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
)

func TestFormat(t *testing.T) {
	record := Format(OrderRow{
		OrderID:           42,
		CustomerName:      " 张三 ",
		Phone:             "１３８００１３８０００",
		Address:           "广东省 深圳市 南山区",
		DetailedAddress:   "科技园1号",
		ProductName:       "茶叶",
		Quantity:          2,
		ProductCode:       "ＳＫＵ-01",
		ProductAttributes: "500g",
		Remarks:           "加急",
	})

	assert.Equal(t, "张三", record[models.ColRecipientName])
	assert.Equal(t, "13800138000", record[models.ColRecipientPhone])
	assert.Equal(t, "广东", record[models.ColRecipientProvince])
	assert.Equal(t, "深圳", record[models.ColRecipientCity])
	assert.Equal(t, "南山", record[models.ColRecipientDistrict])
	assert.Equal(t, "科技园1号", record[models.ColRecipientAddress])
	assert.Equal(t, "茶叶", record[models.ColItemName])
	assert.Equal(t, 2, record[models.ColQuantity])
	assert.Equal(t, "SKU-01", record[models.ColProductCode])
	assert.Equal(t, "500g", record[models.ColSalesAttributes])

	for _, col := range models.Columns[10:] {
		assert.Equal(t, "", record[col], col)
	}
	assert.Len(t, record, len(models.Columns))
}

func TestFormatQuantityDefault(t *testing.T) {
	assert.Equal(t, 1, Format(OrderRow{})[models.ColQuantity])
	assert.Equal(t, 1, Format(OrderRow{Quantity: -3})[models.ColQuantity])
}

func TestFormatAllKeepsOrder(t *testing.T) {
	out := FormatAll([]OrderRow{
		{CustomerName: "c"},
		{CustomerName: "a"},
		{CustomerName: "b"},
	})
	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0][models.ColRecipientName])
	assert.Equal(t, "a", out[1][models.ColRecipientName])
	assert.Equal(t, "b", out[2][models.ColRecipientName])

	assert.Empty(t, FormatAll(nil))
}
