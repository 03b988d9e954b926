// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/crypto"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/service"
	"github.com/MKhiriev/go-tty-chat/models"
)

const logRole = "ttychat"

// NewRootCommand returns the ttychat command tree. Without a subcommand it
// starts the chat client.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "ttychat",
		Short:         "Terminal chat client with ed25519 identities",
		Version:       buildInfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("ttychat %s (built %s, commit %s)\n",
		buildInfo.Version, buildInfo.Date, buildInfo.Commit))

	flags := config.RegisterFlags(root.PersistentFlags())

	root.RunE = func(cmd *cobra.Command, _ []string) error {
		env, err := newCommandEnv(flags)
		if err != nil {
			return err
		}
		defer env.Close()

		app, err := NewApp(env.cfg, buildInfo, env.logger)
		if err != nil {
			env.logger.Err(err).Msg("init client app error")
			return err
		}
		app.in, app.out = cmd.InOrStdin(), cmd.OutOrStdout()

		if err = app.Run(cmd.Context()); err != nil {
			env.logger.Err(err).Msg("client run error")
			return err
		}
		return nil
	}

	root.AddCommand(
		newGenCommand(flags),
		newResetCommand(flags),
		newImportCommand(flags),
	)
	return root
}

// commandEnv is the configuration and logger shared by every command.
type commandEnv struct {
	cfg    *config.ClientConfig
	logger *logger.Logger
	closer io.Closer
}

func newCommandEnv(flags *config.Flags) (*commandEnv, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log, closer := logger.NewClientLogger(logRole, cfg.Log.File, cfg.Log.Level)
	return &commandEnv{cfg: cfg, logger: log, closer: closer}, nil
}

func (e *commandEnv) Close() {
	_ = e.closer.Close()
}

func (e *commandEnv) identities() service.ClientIdentityService {
	return service.NewClientIdentityService(crypto.NewKeyStore(e.cfg.App.ConfigDir), e.logger)
}

// username picks the first argument, falling back to --username.
func (e *commandEnv) username(args []string) (string, error) {
	name := e.cfg.App.Username
	if len(args) > 0 {
		name = args[0]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrMissingUsername
	}
	return name, nil
}
