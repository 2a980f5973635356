package exporter

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// ContentType is the media type of the exported workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DefaultFallbackName is the ASCII file name offered to clients that ignore
// the extended filename parameter.
const DefaultFallbackName = "orders.xlsx"

// DownloadFileName returns the localized download name for an export made at t.
func DownloadFileName(t time.Time) string {
	return fmt.Sprintf("自由打印批量订单_%s.xlsx", t.Format("2006-01-02"))
}

// ContentDisposition builds an attachment header carrying an ASCII fallback
// name and the UTF-8 name in the extended filename* parameter.
func ContentDisposition(name, fallback string) string {
	fallback = asciiFileName(fallback)
	if strings.TrimSuffix(fallback, path.Ext(fallback)) == "" {
		fallback = DefaultFallbackName
	}
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, encodeExtValue(name))
}

// asciiFileName keeps printable ASCII, dropping quotes and backslashes.
func asciiFileName(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7e || c == '"' || c == '\\' {
			continue
		}
		b.WriteByte(c)
	}
	return strings.TrimSpace(b.String())
}

// encodeExtValue percent-encodes every byte outside the attr-char set.
func encodeExtValue(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}
