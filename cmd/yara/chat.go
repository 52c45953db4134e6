package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/yara-ai/internal/app"
	chatmodel "github.com/zhouzirui/yara-ai/internal/model/chat"
	"github.com/zhouzirui/yara-ai/internal/model/persona"
	"github.com/zhouzirui/yara-ai/internal/service/chat"
	"github.com/zhouzirui/yara-ai/internal/service/document"
)

const chatHelp = `commands: /suggest N, /doc TYPE, /history, /help, /quit`

func newChatCmd(opts *rootOptions) *cobra.Command {
	var modal bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat with the assistant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			channel := chatmodel.ChannelWidget
			if modal {
				channel = chatmodel.ChannelModal
			}
			return runChat(cmd.Context(), a, channel, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&modal, "modal", false, "use the pop-up chat transcript instead of the inline one")
	return cmd
}

// runChat drives the read-reply loop until EOF, /quit or cancellation.
func runChat(ctx context.Context, a *app.App, channel chatmodel.Channel, in io.Reader, out io.Writer) error {
	session, err := a.Chat.CreateSession(ctx, channel)
	if err != nil {
		return err
	}

	p, ok := a.Personas.FindByID(session.PersonaID)
	if !ok {
		return fmt.Errorf("%w: %q", chat.ErrPersonaNotFound, session.PersonaID)
	}
	printWelcome(out, p)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "/") {
			text, quit, err := handleChatCommand(ctx, a, session.ID, line, out)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if quit {
				return nil
			}
			if text == "" {
				continue
			}
			line = text
		}

		if err := converse(ctx, a, p.Name, session.ID, line, out); err != nil {
			switch {
			case errors.Is(err, chat.ErrEmptyMessage):
				continue
			case ctx.Err() != nil:
				// Ctrl-C ends the conversation, including mid-reply.
				fmt.Fprintln(out)
				return nil
			}
			return err
		}
	}
}

// converse runs both reply stages with the typing indicator in between.
func converse(ctx context.Context, a *app.App, name, sessionID, text string, out io.Writer) error {
	pending, err := a.Chat.Submit(ctx, sessionID, text)
	if err != nil {
		return err
	}

	if pending.Delay > 0 {
		fmt.Fprintf(out, "%s is typing...\n", name)
	}
	if err := wait(ctx, pending.Delay); err != nil {
		return err
	}

	msg, err := a.Chat.Deliver(ctx, pending)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %s\n", name, msg.Content)
	return nil
}

func printWelcome(out io.Writer, p persona.Persona) {
	fmt.Fprintf(out, "%s, %s\n", p.Name, p.Title)
	if p.Description != "" {
		fmt.Fprintln(out, p.Description)
	}
	if len(p.Expertise) > 0 {
		fmt.Fprintf(out, "Expertise: %s\n", strings.Join(p.Expertise, " · "))
	}
	fmt.Fprintf(out, "%s: %s\n", p.Name, p.OpeningLine)
	for i, s := range p.Suggestions {
		fmt.Fprintf(out, "  %d. %s\n", i+1, s)
	}
	fmt.Fprintln(out, chatHelp)
}

func handleChatCommand(ctx context.Context, a *app.App, sessionID, line string, out io.Writer) (text string, quit bool, err error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return "", true, nil
	case "/help":
		fmt.Fprintln(out, chatHelp)
		return "", false, nil
	case "/suggest":
		if len(fields) != 2 {
			return "", false, errors.New("usage: /suggest N")
		}
		n, convErr := strconv.Atoi(fields[1])
		if convErr != nil {
			return "", false, fmt.Errorf("invalid suggestion number %q", fields[1])
		}
		suggestion, ok := a.Persona.Suggestion(n)
		if !ok {
			return "", false, fmt.Errorf("no suggestion %d", n)
		}
		fmt.Fprintf(out, "> %s\n", suggestion)
		return suggestion, false, nil
	case "/doc":
		if len(fields) != 2 {
			return "", false, errors.New("usage: /doc word|excel|powerpoint")
		}
		session, setErr := a.Chat.SetDocumentType(ctx, sessionID, document.Type(fields[1]))
		if setErr != nil {
			return "", false, setErr
		}
		fmt.Fprintf(out, "document type: %s\n%s\n", session.DocumentType, document.Placeholder(document.Type(session.DocumentType)))
		return "", false, nil
	case "/history":
		transcript, histErr := a.Chat.LoadTranscript(ctx, sessionID)
		if histErr != nil {
			return "", false, histErr
		}
		for _, msg := range transcript {
			fmt.Fprintf(out, "[%s] %s: %s\n", msg.CreatedAt.Format("15:04:05"), msg.Sender, msg.Content)
		}
		return "", false, nil
	default:
		return "", false, fmt.Errorf("unknown command %s (%s)", fields[0], chatHelp)
	}
}
