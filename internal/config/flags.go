// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-tty-chat/models"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host" or "host:port". A missing port defaults to
// [models.DefaultServerPort]. Host names are accepted as well as IPs.
func (a *NetAddress) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("need address in a form `host[:port]`")
	}

	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		host, portStr = s, models.DefaultServerPort
		if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
			host = host[1 : len(host)-1]
		}
	}
	if host == "" {
		return errors.New("host must not be empty")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type names the value kind in pflag usage output.
func (a *NetAddress) Type() string {
	return "host[:port]"
}
