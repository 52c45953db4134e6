package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/yara-ai/internal/app"
	chatmodel "github.com/zhouzirui/yara-ai/internal/model/chat"
	"github.com/zhouzirui/yara-ai/internal/service/ai"
	"github.com/zhouzirui/yara-ai/pkg/utils"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var (
		stream bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ask MESSAGE...",
		Short: "Send a single message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			if stream {
				return streamAnswer(cmd, a, text, asJSON, out)
			}

			session, err := a.Chat.CreateSession(cmd.Context(), chatmodel.ChannelWidget)
			if err != nil {
				return err
			}
			pending, err := a.Chat.Submit(cmd.Context(), session.ID, text)
			if err != nil {
				return err
			}
			if err := wait(cmd.Context(), pending.Delay); err != nil {
				return err
			}
			msg, err := a.Chat.Deliver(cmd.Context(), pending)
			if err != nil {
				return err
			}

			if asJSON {
				return utils.RespondJSON(out, msg)
			}
			fmt.Fprintln(out, msg.Content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&stream, "stream", false, "stream the reply word by word")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON (SSE-framed events with --stream)")
	return cmd
}

func streamAnswer(cmd *cobra.Command, a *app.App, text string, asJSON bool, out io.Writer) error {
	reader, err := a.Assistant.StreamResponse(cmd.Context(), a.Persona, nil, text)
	if err != nil {
		return err
	}
	defer reader.Close()

	category := ""
	for {
		chunk, err := reader.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if c := ai.CategoryOf(chunk); c != "" {
			category = c
		}
		if asJSON {
			if err := utils.SendEvent(out, "chunk", map[string]string{"content": chunk.Content}); err != nil {
				return err
			}
			continue
		}
		fmt.Fprint(out, chunk.Content)
	}

	if asJSON {
		return utils.SendEvent(out, "done", map[string]string{"category": category})
	}
	fmt.Fprintln(out)
	return nil
}
