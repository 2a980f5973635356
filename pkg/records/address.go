package records

import (
	"regexp"
	"strings"
)

// Suffixes are tried longest first so compound forms strip completely.
var (
	provinceSuffix = regexp.MustCompile(`(维吾尔自治区|壮族自治区|回族自治区|特别行政区|自治区|自治州|地区|省|市)$`)
	citySuffix     = regexp.MustCompile(`(自治州|自治县|地区|盟|市)$`)
	districtSuffix = regexp.MustCompile(`(自治县|自治旗|区|县|市|旗)$`)
)

// Region is a recipient address split into administrative levels.
type Region struct {
	Province string
	City     string
	District string
}

// SplitAddress splits a space separated "province city district" address and
// strips the administrative suffix from each part.
func SplitAddress(address string) Region {
	parts := strings.Fields(address)
	part := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	return Region{
		Province: StandardizeProvince(part(0)),
		City:     StandardizeCity(part(1)),
		District: StandardizeDistrict(part(2)),
	}
}

// StandardizeProvince strips the province-level suffix.
func StandardizeProvince(s string) string {
	return stripSuffix(provinceSuffix, s)
}

// StandardizeCity strips the city-level suffix.
func StandardizeCity(s string) string {
	return stripSuffix(citySuffix, s)
}

// StandardizeDistrict strips the district-level suffix.
func StandardizeDistrict(s string) string {
	return stripSuffix(districtSuffix, s)
}

func stripSuffix(re *regexp.Regexp, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.TrimSpace(re.ReplaceAllString(s, ""))
}
