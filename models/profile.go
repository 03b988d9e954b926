// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaxProfiles bounds the recent-connection list.
const MaxProfiles = 10

// Profile is one recently used server/username pair.
type Profile struct {
	Server   string `json:"server"`
	Username string `json:"username"`
}

// ProfileRecord is the persisted client record: recent connections
// (most recent first) and the last used server and username.
type ProfileRecord struct {
	Profiles     []Profile `json:"profiles"`
	LastServer   *string   `json:"last_server"`
	LastUsername *string   `json:"last_username"`
}

// Remember records a successful login. The pair moves to the front of the
// list, duplicates are removed and the list is cut to [MaxProfiles].
func (r *ProfileRecord) Remember(server, username string) {
	r.LastServer = &server
	r.LastUsername = &username

	profiles := make([]Profile, 0, len(r.Profiles)+1)
	profiles = append(profiles, Profile{Server: server, Username: username})
	for _, p := range r.Profiles {
		if p.Server == server && p.Username == username {
			continue
		}
		profiles = append(profiles, p)
	}
	if len(profiles) > MaxProfiles {
		profiles = profiles[:MaxProfiles]
	}
	r.Profiles = profiles
}

// Last returns the last used server and username, empty when unknown.
func (r ProfileRecord) Last() (server, username string) {
	if r.LastServer != nil {
		server = *r.LastServer
	}
	if r.LastUsername != nil {
		username = *r.LastUsername
	}
	return server, username
}
