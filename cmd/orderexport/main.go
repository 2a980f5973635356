// Package main provides the CLI entry point for orderexport.
package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yh1472056602/customer-management-system/pkg/config"
	"github.com/yh1472056602/customer-management-system/pkg/exporter"
	"github.com/yh1472056602/customer-management-system/pkg/exporter/output"
	"github.com/yh1472056602/customer-management-system/pkg/records"
)

var (
	configPath    string
	verbose       bool
	templatePaths []string
	outputPath    string
	pretty        bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orderexport",
		Short: "Export order records into the bulk upload template",
		Long: `orderexport fills the courier bulk upload workbook with order records,
keeping the template's column widths, row heights, styles and protection.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&templatePaths, "template", nil, "Template path, tried before the configured locations (repeatable)")

	exportCmd := &cobra.Command{
		Use:   "export [records.yaml]",
		Short: "Write order records to an xlsx upload file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: dated name in output.dir)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [template.xlsx]",
		Short: "Print the captured template layout as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(exportCmd, inspectCmd)
	return rootCmd
}

var cfg config.Config

func setupLogging(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg.ConfigureLogger(log.StandardLogger())
}

func candidates() []string {
	return append(append([]string(nil), templatePaths...), cfg.TemplateCandidates()...)
}

func runExport(cmd *cobra.Command, args []string) error {
	rows, err := records.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	log.WithField("rows", len(rows)).Debug("records loaded")

	data, err := exporter.Export(records.FormatAll(rows), exporter.Options{
		TemplatePaths: candidates(),
		Logger:        log.StandardLogger(),
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	dest := outputPath
	if dest == "" {
		if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
			return err
		}
		dest = cfg.OutputPath(exporter.DownloadFileName(time.Now()))
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.WithField("path", dest).Info("upload file written")
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	paths := candidates()
	if len(args) == 1 {
		paths = []string{args[0]}
	}

	desc, err := exporter.LoadTemplate(paths)
	if err != nil {
		return err
	}

	jsonData, err := output.DescriptorToJSON(desc, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
