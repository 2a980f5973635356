package exporter

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/models"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/parser"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/writer"
)

const progressEvery = 100

// ResolveTemplate returns the first candidate that exists as a regular file.
func ResolveTemplate(candidates []string) (string, error) {
	for _, p := range candidates {
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", &TemplateNotFoundError{Candidates: candidates}
}

// LoadTemplate captures the first existing candidate template.
func LoadTemplate(candidates []string) (*models.TemplateDescriptor, error) {
	path, err := ResolveTemplate(candidates)
	if err != nil {
		return nil, err
	}
	return readTemplate(path)
}

func readTemplate(path string) (*models.TemplateDescriptor, error) {
	desc, err := parser.ReadTemplate(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTemplate, path, err)
	}
	return desc, nil
}

// BuildEmptySheet creates a fresh workbook holding only the header row laid
// out like desc. The caller owns the returned sheet and must Close it.
func BuildEmptySheet(desc *models.TemplateDescriptor) (*writer.Sheet, error) {
	s, err := writer.Build(desc)
	if err != nil {
		return nil, NewWorksheetBuildError(desc.SheetName, "rebuild", err)
	}
	return s, nil
}

// AppendRecords writes records to sheet in order, one row each.
func AppendRecords(sheet *writer.Sheet, desc *models.TemplateDescriptor, records []models.OutputRecord) error {
	if err := sheet.Append(desc, records); err != nil {
		return NewWorksheetBuildError(sheet.Name(), "append", err)
	}
	return nil
}

// Serialize returns the complete workbook owning sheet as xlsx bytes.
func Serialize(sheet *writer.Sheet) ([]byte, error) {
	data, err := sheet.Bytes()
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return data, nil
}

// Export renders records into the upload template and returns the xlsx bytes.
// Either a complete workbook or an error is returned.
func Export(records []models.OutputRecord, opts Options) ([]byte, error) {
	log := opts.logger()

	path, err := ResolveTemplate(opts.templatePaths())
	if err != nil {
		log.WithField("candidates", opts.templatePaths()).Error("upload template not found")
		return nil, err
	}
	log.WithField("path", path).Info("using upload template")

	desc, err := readTemplate(path)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"sheet":    desc.SheetName,
		"data_row": desc.DataRow != nil,
	}).Debug("template captured")

	sheet, err := BuildEmptySheet(desc)
	if err != nil {
		return nil, err
	}
	defer sheet.Close()

	err = sheet.AppendFunc(desc, records, func(row int) {
		if row%progressEvery == 0 {
			log.WithField("rows", row).Debug("rows appended")
		}
	})
	if err != nil {
		return nil, NewWorksheetBuildError(sheet.Name(), "append", err)
	}

	data, err := Serialize(sheet)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"rows":  len(records),
		"bytes": len(data),
	}).Info("export complete")
	return data, nil
}
