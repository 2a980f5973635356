package models

// Logical column names of the upload template, left to right.
const (
	ColRecipientName     = "收件人姓名"
	ColRecipientPhone    = "收件人手机/电话"
	ColRecipientProvince = "收件人省"
	ColRecipientCity     = "收件人市"
	ColRecipientDistrict = "收件人区"
	ColRecipientAddress  = "收件人详细地址"
	ColItemName          = "物品名称"
	ColQuantity          = "数量"
	ColProductCode       = "商品编码"
	ColSalesAttributes   = "销售属性"
	ColRemarks           = "备注"
	ColSenderName        = "寄件人姓名"
	ColSenderPhone       = "寄件人手机/电话"
	ColSenderProvince    = "寄件人省"
	ColSenderCity        = "寄件人市"
	ColSenderDistrict    = "寄件人县/区"
	ColSenderAddress     = "寄件人详细地址"
	ColOrderNumber       = "订单编号"
)

// Columns is the fixed output column order.
var Columns = []string{
	ColRecipientName,
	ColRecipientPhone,
	ColRecipientProvince,
	ColRecipientCity,
	ColRecipientDistrict,
	ColRecipientAddress,
	ColItemName,
	ColQuantity,
	ColProductCode,
	ColSalesAttributes,
	ColRemarks,
	ColSenderName,
	ColSenderPhone,
	ColSenderProvince,
	ColSenderCity,
	ColSenderDistrict,
	ColSenderAddress,
	ColOrderNumber,
}

// QuantityColumn is the 1-based position of ColQuantity.
const QuantityColumn = 8

// firstBlankColumn is the 1-based position from which every output column
// (remarks, sender fields, order number) is written empty.
const firstBlankColumn = 11

// OutputRecord maps logical column names to cell values.
type OutputRecord map[string]interface{}

// Values returns the record laid out in Columns order. Missing keys and the
// always-blank columns come back as empty strings.
func (r OutputRecord) Values() []interface{} {
	values := make([]interface{}, len(Columns))
	for i, name := range Columns {
		values[i] = ""
		if i+1 >= firstBlankColumn {
			continue
		}
		if v, ok := r[name]; ok && v != nil {
			values[i] = v
		}
	}
	return values
}
