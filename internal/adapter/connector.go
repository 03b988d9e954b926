// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bufio"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/MKhiriev/go-tty-chat/internal/codec"
	"github.com/MKhiriev/go-tty-chat/internal/config"
	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/utils"
	"github.com/MKhiriev/go-tty-chat/models"
)

// Connector dials the chat server and runs sessions.
type Connector struct {
	logger           *logger.Logger
	dialTimeout      time.Duration
	handshakeTimeout time.Duration
	roots            *x509.CertPool
}

// NewConnector builds a connector from the adapter settings. Zero timeouts
// mean no limit.
func NewConnector(cfg config.ClientAdapter, log *logger.Logger) *Connector {
	return &Connector{
		logger:           log,
		dialTimeout:      cfg.DialTimeout,
		handshakeTimeout: cfg.HandshakeTimeout,
	}
}

// WithRootCAs replaces the system trust store. Nil restores it.
func (c *Connector) WithRootCAs(roots *x509.CertPool) *Connector {
	c.roots = roots
	return c
}

// Connect implements [SessionConnector]. A missing session id is taken from
// ctx.
func (c *Connector) Connect(ctx context.Context, params models.SessionParams) *Session {
	if params.SessionID == "" {
		params.SessionID, _ = utils.GetSessionIDFromContext(ctx)
	}
	s := NewSession(params.SessionID)
	events, commands := s.Producer()
	go func() {
		defer s.commands.Stop()
		c.Run(ctx, params, events, commands)
	}()
	return s
}

// Run implements [SessionConnector]. It closes events before returning.
func (c *Connector) Run(ctx context.Context, params models.SessionParams, events utils.Sink[models.NetEvent], commands <-chan models.NetCommand) {
	defer events.Close()

	log := c.logger.WithSession(params.SessionID)
	log.Info().
		Str("server", params.Server).
		Str("username", params.Username).
		Bool("enroll", params.Enrolling()).
		Bool("insecure", params.Insecure).
		Msg("session starting")

	run := &sessionRun{
		connector: c,
		params:    params,
		events:    events,
		commands:  commands,
		log:       log,
	}
	err := run.execute(ctx)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		// cancellation ends the session like closing the command channel
		log.Info().Str("phase", run.phase.String()).Msg("session cancelled")
	default:
		log.Error().Err(err).Str("phase", run.phase.String()).Msg("session failed")
		events.Push(models.EventError{Message: err.Error()})
	}

	run.enter(PhaseTerminated)
	events.Push(models.EventDisconnected{})
}

// sessionRun holds the state of one Run call.
type sessionRun struct {
	connector *Connector
	params    models.SessionParams
	events    utils.Sink[models.NetEvent]
	commands  <-chan models.NetCommand
	log       *logger.Logger

	phase  Phase
	conn   net.Conn
	reader *bufio.Reader
}

func (r *sessionRun) enter(p Phase) {
	r.phase = p
	r.log.Debug().Str("phase", p.String()).Msg("phase")
}

func (r *sessionRun) execute(ctx context.Context) error {
	if err := r.dial(ctx); err != nil {
		return err
	}
	defer r.conn.Close()

	// Unblock pending reads and writes when the caller gives up.
	stop := context.AfterFunc(ctx, func() { _ = r.conn.Close() })
	defer stop()

	authenticated, err := r.handshake(ctx)
	if err != nil || !authenticated {
		return err
	}

	_ = r.conn.SetDeadline(time.Time{})
	return r.stream(ctx)
}

func (r *sessionRun) dial(ctx context.Context) error {
	r.enter(PhaseDialing)

	host, _, err := net.SplitHostPort(r.params.Server)
	if err != nil {
		return fmt.Errorf("%w to '%s': %w", ErrConnect, r.params.Server, err)
	}

	dialer := net.Dialer{Timeout: r.connector.dialTimeout}
	raw, err := dialer.DialContext(ctx, "tcp", r.params.Server)
	if err != nil {
		return fmt.Errorf("%w to '%s': %w", ErrConnect, r.params.Server, err)
	}

	r.enter(PhaseTLSHandshake)
	conn := tls.Client(raw, newTLSConfig(host, r.params.Insecure, r.connector.roots))
	// One deadline covers TLS, challenge and verdict; it is cleared before
	// streaming.
	if r.connector.handshakeTimeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(r.connector.handshakeTimeout))
	}
	if err = conn.HandshakeContext(ctx); err != nil {
		_ = raw.Close()
		return fmt.Errorf("%w (try --insecure?): %w", ErrTLSHandshake, err)
	}

	r.conn = conn
	r.reader = bufio.NewReader(conn)
	r.events.Push(models.EventConnected{})
	return nil
}

// handshake performs challenge, credential and verdict. It reports false
// without error when the server rejected the credential.
func (r *sessionRun) handshake(ctx context.Context) (bool, error) {
	r.enter(PhaseAwaitChallenge)
	line, err := r.readHandshakeLine(ctx, "challenge")
	if err != nil {
		return false, err
	}
	challenge, err := codec.DecodeChallenge(line)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	r.enter(PhaseSendingCredential)
	credential, err := r.credential(challenge)
	if err != nil {
		return false, err
	}
	if err = r.write(credential); err != nil {
		return false, err
	}

	r.enter(PhaseAwaitAuthResult)
	line, err = r.readHandshakeLine(ctx, "auth response")
	if err != nil {
		return false, err
	}
	verdict, err := codec.DecodeAuthResponse(line)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	if !verdict.OK() {
		r.log.Info().Str("reason", verdict.FailReason()).Msg("authentication rejected")
		r.events.Push(models.EventAuthFail{Reason: verdict.FailReason()})
		return false, nil
	}

	r.log.Info().Msg("authenticated")
	r.events.Push(models.EventAuthOK{Username: r.params.Username})
	return true, nil
}

// credential builds the enrollment line when an invite code is present and
// the signed auth line otherwise.
func (r *sessionRun) credential(challenge models.Challenge) ([]byte, error) {
	if r.params.Enrolling() {
		return codec.EncodeLine(models.NewEnrollRequest(r.params.Username, r.params.PublicKey, r.params.EnrollCode))
	}

	if r.params.Signer == nil {
		return nil, ErrSign
	}
	sig, err := r.params.Signer.Sign(challenge.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSign, err)
	}
	return codec.EncodeLine(models.NewAuthRequest(r.params.PublicKey, r.params.Username, sig))
}

func (r *sessionRun) readHandshakeLine(ctx context.Context, what string) ([]byte, error) {
	line, err := r.reader.ReadBytes('\n')
	if err == nil || (errors.Is(err, io.EOF) && len(line) > 0) {
		return line, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: connection closed while waiting for %s", ErrProtocol, what)
	}
	return nil, fmt.Errorf("read %s: %w", what, err)
}

func (r *sessionRun) write(line []byte) error {
	if _, err := r.conn.Write(line); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

type readResult struct {
	line []byte
	err  error
}

// stream multiplexes server lines and outbound commands until EOF, command
// channel closure or context cancellation.
func (r *sessionRun) stream(ctx context.Context) error {
	r.enter(PhaseStreaming)

	lines := make(chan readResult)
	done := make(chan struct{})
	defer close(done)
	go r.readLoop(lines, done)

	for {
		select {
		case res := <-lines:
			if len(res.line) > 0 {
				r.dispatch(res.line)
			}
			if res.err == nil {
				continue
			}
			if errors.Is(res.err, io.EOF) {
				r.log.Info().Msg("server closed the connection")
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", res.err)

		case cmd, ok := <-r.commands:
			if !ok {
				r.log.Info().Msg("command channel closed")
				return nil
			}
			line, err := codec.EncodeCommand(cmd)
			if err != nil {
				r.log.Warn().Err(err).Msg("command dropped")
				continue
			}
			if err = r.write(line); err != nil {
				return err
			}

		case <-ctx.Done():
			r.log.Info().Msg("session cancelled")
			return nil
		}
	}
}

// readLoop feeds complete lines to the streaming loop. It stops after the
// first read error or when done is closed.
func (r *sessionRun) readLoop(lines chan<- readResult, done <-chan struct{}) {
	for {
		line, err := r.reader.ReadBytes('\n')
		select {
		case lines <- readResult{line: line, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

// dispatch maps one streamed line to an event. Undecodable lines and
// unknown types are dropped.
func (r *sessionRun) dispatch(line []byte) {
	msg, ok := codec.DecodeServerMessage(line)
	if !ok {
		r.log.Debug().Int("bytes", len(line)).Msg("line dropped")
		return
	}

	switch msg.Type {
	case models.TypeMsg, models.TypePresence:
		r.events.Push(models.EventMessage{Message: msg})
	case models.TypeAdminRes:
		r.events.Push(models.EventAdminResponse{Action: deref(msg.Action), Data: deref(msg.Data)})
	default:
		r.log.Debug().Str("type", msg.Type).Msg("message ignored")
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ SessionConnector = (*Connector)(nil)
