package exporter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yh1472056602/customer-management-system/pkg/exporter/writer"
)

// ErrTemplateNotFound indicates none of the candidate template paths exist.
var ErrTemplateNotFound = errors.New("template file not found")

// ErrInvalidTemplate indicates the template exists but cannot be read as xlsx.
var ErrInvalidTemplate = errors.New("invalid template workbook")

// ErrReservedSheetName indicates the template sheet name cannot be reused.
var ErrReservedSheetName = writer.ErrReservedSheetName

// TemplateNotFoundError lists the paths that were tried.
type TemplateNotFoundError struct {
	Candidates []string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template file not found (tried %s)", strings.Join(e.Candidates, ", "))
}

// Is reports whether target is ErrTemplateNotFound.
func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

// WorksheetBuildError represents a failure applying a descriptor to a new sheet.
type WorksheetBuildError struct {
	SheetName string
	Stage     string // "rebuild", "append"
	Err       error
}

func (e *WorksheetBuildError) Error() string {
	return fmt.Sprintf("worksheet build error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *WorksheetBuildError) Unwrap() error {
	return e.Err
}

// NewWorksheetBuildError creates a new WorksheetBuildError.
func NewWorksheetBuildError(sheetName, stage string, err error) *WorksheetBuildError {
	return &WorksheetBuildError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}

// SerializationError represents a failure writing the workbook to bytes.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
