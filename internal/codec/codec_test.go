// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tty-chat/models"
)

func TestEncodeLine_AuthRequest(t *testing.T) {
	line, err := EncodeLine(models.NewAuthRequest("PUB", "alice", "SIG"))
	require.NoError(t, err)

	assert.Equal(t, byte('\n'), line[len(line)-1])
	assert.JSONEq(t, `{"type":"auth","pubkey":"PUB","username":"alice","sig":"SIG"}`, string(line))
	assert.Equal(t, 1, countNewlines(line))
}

func TestEncodeLine_EnrollRequest(t *testing.T) {
	line, err := EncodeLine(models.NewEnrollRequest("bob", "PUB", "INV-1"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"enroll","username":"bob","pubkey":"PUB","invite_code":"INV-1"}`, string(line))
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  models.NetCommand
		want string
	}{
		{name: "message", cmd: models.SendMessage{Text: "hello\nworld"}, want: `{"type":"msg","text":"hello\nworld"}`},
		{name: "admin", cmd: models.SendAdminCmd{Action: "invite"}, want: `{"type":"admin_cmd","action":"invite"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := EncodeCommand(tt.cmd)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(line))
			// embedded newlines are escaped, so one frame is one line
			assert.Equal(t, 1, countNewlines(line))
		})
	}
}

func TestEncodeCommand_Nil(t *testing.T) {
	_, err := EncodeCommand(nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestDecodeChallenge(t *testing.T) {
	c, err := DecodeChallenge([]byte(`{"type":"challenge","nonce":"AAEC","extra":1}` + "\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "AAEC", c.Nonce)
}

func TestDecodeChallenge_Errors(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		sentinel error
		contains string
	}{
		{name: "wrong type", line: `{"type":"hello","nonce":"x"}`, sentinel: ErrUnexpectedType, contains: "expected 'challenge', got 'hello'"},
		{name: "missing nonce", line: `{"type":"challenge"}`, sentinel: ErrMissingField},
		{name: "missing type", line: `{"nonce":"x"}`, sentinel: ErrMissingField},
		{name: "not json", line: `welcome!`, contains: "expected challenge from server"},
		{name: "empty", line: ``, contains: "expected challenge from server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeChallenge([]byte(tt.line))
			require.Error(t, err)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestDecodeAuthResponse(t *testing.T) {
	ok, err := DecodeAuthResponse([]byte(`{"type":"auth_ok"}`))
	require.NoError(t, err)
	assert.True(t, ok.OK())

	fail, err := DecodeAuthResponse([]byte(`{"type":"auth_fail","reason":"unknown key"}`))
	require.NoError(t, err)
	assert.False(t, fail.OK())
	assert.Equal(t, "unknown key", fail.FailReason())

	_, err = DecodeAuthResponse([]byte(`{"reason":"x"}`))
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = DecodeAuthResponse([]byte(`nope`))
	assert.Error(t, err)
}

func TestDecodeServerMessage(t *testing.T) {
	msg, ok := DecodeServerMessage([]byte(`{"type":"msg","from":"alice","text":"hi","ts":1700000000}` + "\n"))
	require.True(t, ok)
	assert.Equal(t, "alice", msg.Sender())
	assert.Equal(t, models.EpochTimestamp(1700000000), msg.Timestamp)

	for _, line := range []string{"", "   ", "ping", `{"text":"no type"}`, `{"type":1}`, `[]`} {
		_, ok := DecodeServerMessage([]byte(line))
		assert.False(t, ok, "line %q", line)
	}
}

func TestDecodeServerMessage_MatchesJSONUnmarshal(t *testing.T) {
	line := `{"type":"presence","users":3,"online":["a"]}`

	var direct models.ServerMessage
	require.NoError(t, json.Unmarshal([]byte(line), &direct))

	decoded, ok := DecodeServerMessage([]byte(line))
	require.True(t, ok)
	assert.Equal(t, direct, decoded)
}

func countNewlines(b []byte) int {
	n := 0
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	return n
}
