package goCertify

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MrEthical07/goCertify/cache"
	"github.com/MrEthical07/goCertify/gateway"
)

// Events describes the events operation and its observable behavior.
//
// Events may return an error when input validation, dependency calls, or security checks fail.
// Events does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The list is cached per identity under the events tag; a cached failure
// never exists because only successful payloads are written back.
func (e *Engine) Events(ctx context.Context) ([]Event, error) {
	if e == nil || e.gateway == nil {
		return nil, ErrEngineNotReady
	}

	sess := e.session(ctx)
	if sess == nil {
		e.metricInc(MetricReadFailure)
		return nil, ErrSessionRequired
	}

	data, err := e.cachedRead(ctx,
		readKey("events", sess.Token),
		[]cache.Tag{cache.Events()},
		e.config.Cache.EventListTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return e.fetchData(ctx, func(ctx context.Context) gateway.Envelope {
				return e.gateway.ListEvents(ctx, sess.Token)
			})
		},
	)
	if err != nil {
		return nil, err
	}

	var events []Event
	if err := e.decode(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// EventByUID describes the eventbyuid operation and its observable behavior.
//
// EventByUID may return an error when input validation, dependency calls, or security checks fail.
// EventByUID does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The entry carries both the collection tag and the per-event tag, so a
// broad invalidation and a targeted one each reach it.
func (e *Engine) EventByUID(ctx context.Context, eventUID string) (*Event, error) {
	if e == nil || e.gateway == nil {
		return nil, ErrEngineNotReady
	}
	if eventUID == "" {
		return nil, ErrEventUIDRequired
	}

	sess := e.session(ctx)
	if sess == nil {
		e.metricInc(MetricReadFailure)
		return nil, ErrSessionRequired
	}

	data, err := e.cachedRead(ctx,
		readKey("event", sess.Token, eventUID),
		[]cache.Tag{cache.Events(), cache.Event(eventUID)},
		e.config.Cache.EventDetailTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return e.fetchData(ctx, func(ctx context.Context) gateway.Envelope {
				return e.gateway.GetEvent(ctx, sess.Token, eventUID)
			})
		},
	)
	if err != nil {
		return nil, err
	}

	event := &Event{}
	if err := e.decode(data, event); err != nil {
		return nil, err
	}
	return event, nil
}

// CreateEvent describes the createevent operation and its observable behavior.
//
// CreateEvent may return an error when input validation, dependency calls, or security checks fail.
// CreateEvent does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// A 403 from the backend is the plan-limit signal and is rewritten into
// the limit message regardless of what the backend said.
func (e *Engine) CreateEvent(ctx context.Context, input CreateEventInput) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventCreateEvent, nil, msgSessionNotFound)
	}

	if err := e.validate.Struct(input); err != nil {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventCreateEvent, sess, "Invalid event data.")
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.CreateEvent(ctx, sess.Token, gateway.CreateEventRequest{
			EventName:     input.EventName,
			Description:   input.Description,
			ActivityAt:    input.ActivityAt,
			PrefixCode:    input.PrefixCode,
			SuffixCode:    input.SuffixCode,
			Organizer:     input.Organizer,
			EventTheme:    input.EventTheme,
			EventTemplate: string(input.EventTemplate),
			Stakeholders: gateway.StakeholderSeed{
				Name:     input.StakeholderName,
				Position: input.StakeholderPosition,
			},
		})
	})
	if !env.Success && env.Status == http.StatusForbidden {
		env.Message = gateway.Message{msgEventLimitReached}
	}

	return e.finishMutation(ctx, auditEventCreateEvent, sess, env,
		"Event created successfully.",
		cache.Events(),
	)
}

// UpdateEvent describes the updateevent operation and its observable behavior.
//
// UpdateEvent may return an error when input validation, dependency calls, or security checks fail.
// UpdateEvent does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Invalidation fans out to the list, the event itself, and the participant
// lists: certificate codes embed event fields, so participant rows built
// from a stale event would be wrong.
func (e *Engine) UpdateEvent(ctx context.Context, eventUID string, input UpdateEventInput) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if eventUID == "" {
		return e.failMutation(ctx, auditEventUpdateEvent, nil, "Event not found.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventUpdateEvent, nil, msgSessionNotFound)
	}

	if err := e.validate.Struct(input); err != nil {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventUpdateEvent, sess, "Invalid event data.")
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.UpdateEvent(ctx, sess.Token, eventUID, gateway.UpdateEventRequest{
			EventName:     input.EventName,
			Description:   input.Description,
			ActivityAt:    input.ActivityAt,
			PrefixCode:    input.PrefixCode,
			SuffixCode:    input.SuffixCode,
			Organizer:     input.Organizer,
			EventTheme:    input.EventTheme,
			EventTemplate: string(input.EventTemplate),
		})
	})

	return e.finishMutation(ctx, auditEventUpdateEvent, sess, env,
		"Event updated successfully.",
		cache.Events(), cache.Event(eventUID), cache.Participants(),
	)
}

// DeleteEvent describes the deleteevent operation and its observable behavior.
//
// DeleteEvent may return an error when input validation, dependency calls, or security checks fail.
// DeleteEvent does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) DeleteEvent(ctx context.Context, eventUID string) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if eventUID == "" {
		return e.failMutation(ctx, auditEventDeleteEvent, nil, "Event not found.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventDeleteEvent, nil, msgSessionNotFound)
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.DeleteEvent(ctx, sess.Token, eventUID)
	})

	// The list tag alone is enough here: detail entries for the deleted
	// event carry the events tag too, so they fall with the list.
	return e.finishMutation(ctx, auditEventDeleteEvent, sess, env,
		"Event deleted successfully.",
		cache.Events(),
	)
}

// UpdateStakeholder describes the updatestakeholder operation and its observable behavior.
//
// UpdateStakeholder may return an error when input validation, dependency calls, or security checks fail.
// UpdateStakeholder does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) UpdateStakeholder(ctx context.Context, eventUID, stakeholderUID string, input UpdateStakeholderInput) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if eventUID == "" || stakeholderUID == "" {
		return e.failMutation(ctx, auditEventUpdateStakeholder, nil, "Stakeholder not found.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventUpdateStakeholder, nil, msgSessionNotFound)
	}

	if err := e.validate.Struct(input); err != nil {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventUpdateStakeholder, sess, "Invalid stakeholder data.")
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.UpdateStakeholder(ctx, sess.Token, eventUID, stakeholderUID, gateway.UpdateStakeholderRequest{
			EventStakeholderName:     input.Name,
			EventStakeholderPosition: input.Position,
		})
	})

	return e.finishMutation(ctx, auditEventUpdateStakeholder, sess, env,
		"Stakeholder updated successfully.",
		cache.Event(eventUID),
	)
}
