// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-tty-chat/internal/logger"
	"github.com/MKhiriev/go-tty-chat/internal/router"
)

// Workers runs a set of workers concurrently.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in its own goroutine and waits for all of them.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}

// TickWorker sends a KindTick event every interval.
type TickWorker struct {
	interval time.Duration
	out      chan<- router.Event
	logger   *logger.Logger
}

// NewTickWorker returns a ticker writing to out.
func NewTickWorker(interval time.Duration, out chan<- router.Event, log *logger.Logger) *TickWorker {
	return &TickWorker{interval: interval, out: out, logger: log}
}

func (w *TickWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Debug().Dur("interval", w.interval).Msg("tick worker started")
	for {
		select {
		case now := <-ticker.C:
			select {
			case w.out <- router.Tick(now):
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			w.logger.Debug().Msg("tick worker stopped")
			return
		}
	}
}

// LineInputWorker sends every line read from r as a KindLine event and a
// single KindInputClosed event at EOF.
type LineInputWorker struct {
	r      io.Reader
	out    chan<- router.Event
	logger *logger.Logger
}

// NewLineInputWorker returns a line reader writing to out.
func NewLineInputWorker(r io.Reader, out chan<- router.Event, log *logger.Logger) *LineInputWorker {
	return &LineInputWorker{r: r, out: out, logger: log}
}

// Run returns at EOF or when ctx ends. A read blocked on a terminal is not
// interrupted by ctx; the goroutine ends with the process.
func (w *LineInputWorker) Run(ctx context.Context) {
	scanner := bufio.NewScanner(w.r)
	for scanner.Scan() {
		select {
		case w.out <- router.Line(strings.TrimRight(scanner.Text(), "\r")):
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		w.logger.Warn().Err(err).Msg("input read failed")
	}

	select {
	case w.out <- router.Event{Kind: router.KindInputClosed, At: time.Now()}:
	case <-ctx.Done():
	}
}
