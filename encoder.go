// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package naqsha

import (
	"encoding/xml"
	"io"
	"log/slog"
	"sync"

	"github.com/destel/rill"
)

const renderConcurrency = 5

// Encoder renders a stream of events as OSM XML markup.  Batches of
// events are rendered to markup tokens concurrently in arrival order
// while a single consumer writes them out, so memory use stays
// independent of document size.
//
// Rendering itself cannot fail; an event sequence violating the
// document grammar is the caller's contract violation and surfaces as
// whatever error the markup writer reports on Close.
type Encoder struct {
	Events chan<- []Event

	cfg *encoderOptions
	enc *xml.Encoder

	err    error
	close  sync.Once
	closed sync.WaitGroup
}

// NewEncoder returns a new encoder, configured with options, that
// writes markup to wrtr.
func NewEncoder(wrtr io.Writer, opts ...EncoderOption) *Encoder {
	cfg := defaultEncoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	enc := xml.NewEncoder(wrtr)
	if cfg.indent != "" {
		enc.Indent("", cfg.indent)
	}

	e := &Encoder{
		cfg: &cfg,
		enc: enc,
	}

	events := make(chan []Event)
	e.Events = events

	r := renderer{program: cfg.writingProgram}

	rendered := rill.OrderedMap(wrapBatches(events), renderConcurrency, r.renderBatch)

	// Close() will wait for the markup to be written
	e.closed.Add(1)
	go e.writeTokens(rendered)

	return e
}

// Encode renders a single event.
func (e *Encoder) Encode(ev Event) error {
	return e.EncodeBatch([]Event{ev})
}

// EncodeBatch renders a batch of events.
func (e *Encoder) EncodeBatch(events []Event) error {
	e.Events <- events

	return nil
}

// Close drains the rendering pipeline, flushes buffered markup, and
// reports the first write error encountered, if any.
func (e *Encoder) Close() error {
	e.close.Do(func() {
		close(e.Events)
	})

	e.closed.Wait()

	return e.err
}

func (e *Encoder) writeTokens(in <-chan rill.Try[[]xml.Token]) {
	defer e.closed.Done()

	for batch := range in {
		if e.err != nil {
			continue // drain the pipeline after a failure
		}

		if batch.Error != nil {
			e.err = batch.Error

			continue
		}

		for _, tok := range batch.Value {
			if err := e.enc.EncodeToken(tok); err != nil {
				slog.Error("cannot encode markup token", "error", err)
				e.err = err

				break
			}
		}
	}

	if e.err == nil {
		e.err = e.enc.Flush()
	}
}

func (r renderer) renderBatch(events []Event) ([]xml.Token, error) {
	tokens := make([]xml.Token, 0, len(events))

	for _, ev := range events {
		tokens = append(tokens, r.tokens(ev)...)
	}

	return tokens, nil
}

func wrapBatches(in <-chan []Event) <-chan rill.Try[[]Event] {
	out := make(chan rill.Try[[]Event])

	go func() {
		defer close(out)

		for events := range in {
			out <- rill.Wrap(events, nil)
		}
	}()

	return out
}
