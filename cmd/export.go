package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mindwell/companion/internal"
	"github.com/mindwell/companion/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportStdout bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your conversation to a file",
	Long: `Export the decrypted conversation to various formats (jsonl, md, yaml, json).

The export is written as plaintext: treat the output file with the same
care as anything else you would not want read over your shoulder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		env, err := openEnv(false)
		if err != nil {
			return err
		}
		defer env.close()

		conv, err := env.store.LoadConversation(env.profile)
		if err != nil {
			return fmt.Errorf("failed to load conversation: %w", err)
		}

		if conv.MessageCount() == 0 {
			return fmt.Errorf("nothing to export: no messages for profile %q", env.profile.Name)
		}

		if exportStdout {
			return exporter.Export(conv, os.Stdout)
		}

		if err := os.MkdirAll(exportOutput, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := fmt.Sprintf("mindwell_%s.%s", env.profile.Name, exporter.Extension())
		path := filepath.Join(exportOutput, filename)

		f, err := os.Create(path)
		if err != nil {
			return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
		}
		defer func() { _ = f.Close() }()

		if err := exporter.Export(conv, f); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
		}

		internal.LogInfo("Exported %d message(s) to %s", conv.MessageCount(), path)
		fmt.Printf("Exported %d message(s) to %s\n", conv.MessageCount(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "md", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", ".", "Output directory")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of a file")
}
