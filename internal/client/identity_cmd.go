// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"

	"github.com/katzenpost/qrterminal"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tty-chat/internal/app"
	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/service"
	"github.com/MKhiriev/go-tty-chat/models"
)

func newGenCommand(flags *config.Flags) *cobra.Command {
	var qr bool

	cmd := &cobra.Command{
		Use:   "gen [username]",
		Short: "Generate a key for a user, or show the existing one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(flags)
			if err != nil {
				return err
			}
			defer env.Close()

			username, err := env.username(args)
			if err != nil {
				return err
			}
			info, err := env.identities().Prepare(username, "")
			if err != nil {
				return fmt.Errorf("%s", service.UserMessage(err))
			}

			out := cmd.OutOrStdout()
			printIdentity(out, info)
			if qr {
				printQR(out, info.PublicKey)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&qr, "qr", false, "Also print the public key as a QR code")
	return cmd
}

func newResetCommand(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <username>",
		Short: "Delete the local key of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(flags)
			if err != nil {
				return err
			}
			defer env.Close()

			username, err := env.username(args)
			if err != nil {
				return err
			}
			path, deleted, err := env.identities().Reset(username)
			if err != nil {
				return fmt.Errorf("%s", service.UserMessage(err))
			}

			if deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted identity for %s (%s)\n", username, path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No identity stored for %s\n", username)
			}
			return nil
		},
	}
}

func newImportCommand(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <username> <base64-seed>",
		Short: "Store a base64 private key seed as the key of a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(flags)
			if err != nil {
				return err
			}
			defer env.Close()

			username, err := env.username(args)
			if err != nil {
				return err
			}
			ids := env.identities()
			if _, err = ids.Import(username, args[1]); err != nil {
				return fmt.Errorf("%s", service.UserMessage(err))
			}
			info, err := ids.Prepare(username, "")
			if err != nil {
				return fmt.Errorf("%s", service.UserMessage(err))
			}

			printIdentity(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func printIdentity(w io.Writer, info *models.IdentityInfo) {
	if info.IsNew {
		fmt.Fprintln(w, "New identity generated.")
	}
	fmt.Fprintf(w, "Key file:    %s\n", info.Path)
	fmt.Fprintf(w, "Public key:  %s\n", info.PublicKey)
	fmt.Fprintf(w, "Fingerprint: %s\n", info.Fingerprint)
	fmt.Fprintf(w, "\n%s\n", app.MsgEnrollHint)
}

// printQR draws text with half blocks on a terminal. Other writers get no
// QR code, only a note.
func printQR(w io.Writer, text string) {
	if !isTerminal(w) {
		fmt.Fprintln(w, "(QR code skipped: output is not a terminal)")
		return
	}
	fmt.Fprintln(w)
	qrterminal.GenerateWithConfig(text, qrterminal.Config{
		Level:      qrterminal.L,
		Writer:     w,
		HalfBlocks: true,
		QuietZone:  1,
	})
}
