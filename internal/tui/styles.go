// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("6")
	muted  = lipgloss.Color("8")
	danger = lipgloss.Color("1")
	warn   = lipgloss.Color("3")

	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(danger)
	statusStyle     = lipgloss.NewStyle().Foreground(warn)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle       = lipgloss.NewStyle().Foreground(muted)

	paneStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted)
	activePaneStyle = paneStyle.BorderForeground(accent)

	senderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	selfStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	systemStyle = lipgloss.NewStyle().Italic(true).Foreground(muted)
	adminStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	timeStyle   = lipgloss.NewStyle().Foreground(muted)
)
