// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-tty-chat/internal/adapter"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/store"
)

// ClientServices groups the services used by the presentation layer.
type ClientServices struct {
	IdentityService ClientIdentityService
	SessionService  ClientSessionService
	ProfileService  ClientProfileService
}

func NewClientServices(storages *store.ClientStorages, keys IdentityStore, connector adapter.SessionConnector, log *logger.Logger) *ClientServices {
	return &ClientServices{
		IdentityService: NewClientIdentityService(keys, log),
		SessionService:  NewClientSessionService(connector, log),
		ProfileService:  NewClientProfileService(storages.Profiles, log),
	}
}
