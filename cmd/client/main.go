// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tty-chat/internal/client"
	"github.com/MKhiriev/go-tty-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := client.NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	err := root.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "ttychat: %v\n", err)
		os.Exit(1)
	}
}
