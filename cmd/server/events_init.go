// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package main

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/kollabee-recommender/internal/config"
	"github.com/tomtom215/kollabee-recommender/internal/events"
	"github.com/tomtom215/kollabee-recommender/internal/logging"
	"github.com/tomtom215/kollabee-recommender/internal/supervisor"
)

// EventsComponents holds the change event subscription.
type EventsComponents struct {
	subscriber message.Subscriber
	listener   *events.Listener
	logger     zerolog.Logger
}

// initEvents connects to NATS when EVENTS_ENABLED=true. It returns nil, nil
// when events are disabled.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEvents(cfg *config.Config, trigger events.Trigger, logger zerolog.Logger) (*EventsComponents, error) {
	if !cfg.Events.Enabled {
		logger.Info().Msg("Event-driven retraining disabled (EVENTS_ENABLED=false)")
		return nil, nil
	}

	sub, err := events.NewNATSSubscriber(&cfg.Events, logging.NewWatermillLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("create NATS subscriber: %w", err)
	}

	logger.Info().
		Str("nats_url", cfg.Events.NATSURL).
		Str("topic", cfg.Events.Topic).
		Str("queue_group", cfg.Events.QueueGroup).
		Msg("Event-driven retraining enabled")

	return &EventsComponents{
		subscriber: sub,
		listener:   events.NewListener(sub, cfg.Events.Topic, trigger, logger),
		logger:     logger,
	}, nil
}

// AddToSupervisor registers the listener in the events layer. Safe on nil.
func (ec *EventsComponents) AddToSupervisor(tree *supervisor.SupervisorTree) {
	if ec == nil {
		return
	}
	tree.AddEventsService(ec.listener)
}

// Close closes the NATS subscription. Safe on nil.
func (ec *EventsComponents) Close() {
	if ec == nil {
		return
	}
	if err := ec.subscriber.Close(); err != nil {
		ec.logger.Error().Err(err).Msg("Error closing NATS subscriber")
	}
}
