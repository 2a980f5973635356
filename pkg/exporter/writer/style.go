package writer

import (
	"github.com/tiendc/go-deepcopy"
	"github.com/xuri/excelize/v2"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
)

// clone returns a structural copy of v sharing no memory with it.
func clone[T any](v *T) (*T, error) {
	if v == nil {
		return nil, nil
	}
	var out T
	src := *v
	if err := deepcopy.Copy(&out, &src); err != nil {
		return nil, err
	}
	return &out, nil
}

// registerStyle clones style, optionally clears its bold flag on the copy,
// and registers the copy with f. It returns 0 for a nil style.
func registerStyle(f *excelize.File, style *excelize.Style, clearBold bool) (int, error) {
	if style == nil {
		return 0, nil
	}
	cp, err := clone(style)
	if err != nil {
		return 0, err
	}
	if clearBold && cp.Font != nil && cp.Font.Bold {
		cp.Font.Bold = false
	}
	return f.NewStyle(cp)
}

// dataStyle picks the style of a data cell in column col. The data row
// template wins; fallbacks come from the header and report fallback=true.
func dataStyle(desc *models.TemplateDescriptor, col int) (style *excelize.Style, fallback bool) {
	if s := desc.DataRow.Style(col); s != nil {
		return s, false
	}
	if s := desc.HeaderRow.Style(col); s != nil {
		return s, true
	}
	return nil, false
}
