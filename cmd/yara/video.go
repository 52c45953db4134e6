package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/yara-ai/internal/service/video"
	"github.com/zhouzirui/yara-ai/pkg/utils"
)

var errVideoRejected = errors.New("video rejected")

func newVideoCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "video",
		Short: "Video editor: load a clip and try the AI tools",
	}

	var (
		htmlPath string
		asJSON   bool
	)
	open := &cobra.Command{
		Use:   "open FILE",
		Short: "Validate a local video and render its preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			upload, openErr := a.Video.Open(args[0])
			notice := a.Video.Notice(openErr)
			if openErr != nil {
				printNotice(out, notice)
				return fmt.Errorf("%w: %v", errVideoRejected, openErr)
			}

			abs, err := filepath.Abs(upload.Path)
			if err != nil {
				return err
			}
			src := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
			html, err := video.RenderPreview(upload, src)
			if err != nil {
				return err
			}
			if htmlPath != "" {
				if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
					return fmt.Errorf("write preview: %w", err)
				}
			}

			if asJSON {
				return utils.RespondJSON(out, struct {
					video.Upload
					HTML string `json:"html"`
				}{upload, html})
			}

			fmt.Fprintf(out, "Video Loaded: %s\n", upload.Name)
			fmt.Fprintf(out, "  Size: %.2f MB\n  Type: %s\n", upload.SizeMB(), upload.ContentType)
			printNotice(out, notice)
			return nil
		},
	}
	open.Flags().StringVar(&htmlPath, "html", "", "file to write the HTML preview to")
	open.Flags().BoolVar(&asJSON, "json", false, "print the upload details as JSON")

	tool := &cobra.Command{
		Use:       "tool NAME",
		Short:     "Activate an AI editing tool",
		Args:      cobra.ExactArgs(1),
		ValidArgs: toolNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := video.ToolNotice(args[0])
			if err != nil {
				return fmt.Errorf("%w (available: %v)", err, toolNames())
			}
			printNotice(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.AddCommand(open, tool)
	return cmd
}

func toolNames() []string {
	tools := video.Tools()
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = string(t)
	}
	return names
}
