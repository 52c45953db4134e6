package main

import (
	"github.com/spf13/cobra"

	"github.com/zhouzirui/yara-ai/internal/service/contact"
)

func newContactCmd(opts *rootOptions) *cobra.Command {
	var s contact.Submission

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Submit the contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			n, err := a.Contact.Submit(cmd.Context(), s)
			printNotice(cmd.OutOrStdout(), n)
			return err
		},
	}

	cmd.Flags().StringVar(&s.Name, "name", "", "your name")
	cmd.Flags().StringVar(&s.Email, "email", "", "your email address")
	cmd.Flags().StringVar(&s.Message, "message", "", "your message")
	return cmd
}
