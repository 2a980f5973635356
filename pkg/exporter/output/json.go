// Package output renders captured template descriptors.
package output

import (
	"encoding/json"

	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
)

// DescriptorToJSON serializes a template descriptor to JSON.
func DescriptorToJSON(desc *models.TemplateDescriptor, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(desc, "", "  ")
	}
	return json.Marshal(desc)
}
