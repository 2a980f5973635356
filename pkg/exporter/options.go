// Package exporter exports order records into the upload template layout.
package exporter

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DefaultTemplateName is the file name of the upload template.
const DefaultTemplateName = "自由打印批量上传模板-20250416160130.xlsx"

// Options configures an export.
type Options struct {
	// TemplatePaths lists candidate template locations, tried in order.
	// If empty, DefaultTemplatePaths is used.
	TemplatePaths []string
	// Logger receives progress messages. If nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		TemplatePaths: DefaultTemplatePaths(DefaultTemplateName),
	}
}

// DefaultTemplatePaths returns the standard search locations for name: next
// to the executable, one level above it, the working directory and its parent.
func DefaultTemplatePaths(name string) []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		dirs = append(dirs, dir, filepath.Dir(dir))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd, filepath.Dir(wd))
	}
	return CandidatePaths(name, dirs...)
}

// CandidatePaths joins name onto each dir, dropping duplicates.
func CandidatePaths(name string, dirs ...string) []string {
	seen := make(map[string]bool, len(dirs))
	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		p := filepath.Clean(filepath.Join(dir, name))
		if seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

func (o Options) templatePaths() []string {
	if len(o.TemplatePaths) > 0 {
		return o.TemplatePaths
	}
	return DefaultTemplatePaths(DefaultTemplateName)
}
