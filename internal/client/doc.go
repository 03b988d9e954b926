// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the ttychat process: the cobra command tree,
// configuration and logging setup, the service graph and the choice between
// the terminal UI and the line-oriented frontend.
package client
