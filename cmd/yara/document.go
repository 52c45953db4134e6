package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/yara-ai/internal/service/document"
	"github.com/zhouzirui/yara-ai/pkg/utils"
)

func newDocumentCmd(opts *rootOptions) *cobra.Command {
	var (
		typeName string
		outDir   string
		htmlPath string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "document PROMPT...",
		Short: "Generate a document preview and optionally download it",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if typeName == "" {
				typeName = a.Config.Documents.DefaultType
			}
			docType, err := document.ParseType(typeName)
			if err != nil {
				return err
			}

			prompt := strings.TrimSpace(strings.Join(args, " "))
			if prompt == "" {
				printNotice(out, document.EmptyPromptNotice())
				fmt.Fprintln(out, document.Placeholder(docType))
				return document.ErrEmptyPrompt
			}

			if !asJSON {
				fmt.Fprintln(out, "Generating your document with AI...")
			}
			if err := wait(cmd.Context(), a.Config.Documents.GenerationDelay); err != nil {
				return err
			}

			preview, err := a.Documents.Render(docType, prompt)
			if err != nil {
				return err
			}

			if htmlPath != "" {
				if err := os.WriteFile(htmlPath, []byte(preview.HTML), 0o644); err != nil {
					return fmt.Errorf("write preview: %w", err)
				}
			}

			var file *document.File
			if outDir != "" {
				f, err := a.Documents.Download(docType, prompt)
				if err != nil {
					return err
				}
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
				if err := os.WriteFile(filepath.Join(outDir, f.Name), f.Content, 0o644); err != nil {
					return fmt.Errorf("write download: %w", err)
				}
				file = &f
			}

			if asJSON {
				return utils.RespondJSON(out, struct {
					document.Preview
					Download *document.File `json:"download,omitempty"`
				}{preview, file})
			}

			fmt.Fprintln(out, preview.Title)
			fmt.Fprintln(out, preview.Prompt)
			for _, s := range preview.Stats {
				fmt.Fprintf(out, "  %-14s %s\n", s.Label+":", s.Value)
			}
			if htmlPath != "" {
				fmt.Fprintf(out, "preview written to %s\n", htmlPath)
			}
			if file != nil {
				printNotice(out, document.DownloadedNotice(*file))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&typeName, "type", "t", "", "document type: word, excel or powerpoint (default from config)")
	flags.StringVarP(&outDir, "out", "o", "", "directory to write the downloadable file to")
	flags.StringVar(&htmlPath, "html", "", "file to write the HTML preview to")
	flags.BoolVar(&asJSON, "json", false, "print the preview as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Open the document editor",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printNotice(cmd.OutOrStdout(), document.EditNotice())
		},
	})
	return cmd
}
