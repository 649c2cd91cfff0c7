package goCertify

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MrEthical07/goCertify/cache"
	"github.com/MrEthical07/goCertify/gateway"
)

// Participants describes the participants operation and its observable behavior.
//
// Participants may return an error when input validation, dependency calls, or security checks fail.
// Participants does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Participant lists churn faster than events, so the freshness window is
// short. The tag is the coarse participants tag: one invalidation drops
// every event's list, which bounds tag cardinality at the cost of some
// over-invalidation.
func (e *Engine) Participants(ctx context.Context, eventUID string) ([]Participant, error) {
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
		readKey("participants", sess.Token, eventUID),
		[]cache.Tag{cache.Participants()},
		e.config.Cache.ParticipantsTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return e.fetchData(ctx, func(ctx context.Context) gateway.Envelope {
				return e.gateway.ListParticipants(ctx, sess.Token, eventUID)
			})
		},
	)
	if err != nil {
		return nil, err
	}

	var participants []Participant
	if err := e.decode(data, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

// CertificateParticipant describes the certificateparticipant operation and its observable behavior.
//
// CertificateParticipant may return an error when input validation, dependency calls, or security checks fail.
// CertificateParticipant does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// This is the one public read: no session, no cache. It backs certificate
// display and verification pages where a stale or cross-identity entry
// would be worse than the extra round-trip.
func (e *Engine) CertificateParticipant(ctx context.Context, eventUID, participantUID string) (*Certificate, error) {
	if e == nil || e.gateway == nil {
		return nil, ErrEngineNotReady
	}
	if eventUID == "" {
		return nil, ErrEventUIDRequired
	}
	if participantUID == "" {
		return nil, ErrParticipantUIDRequired
	}

	data, err := e.fetchData(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.CertificateParticipant(ctx, eventUID, participantUID)
	})
	if err != nil {
		return nil, err
	}

	cert := &Certificate{}
	if err := e.decode(data, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

// AddParticipants describes the addparticipants operation and its observable behavior.
//
// AddParticipants may return an error when input validation, dependency calls, or security checks fail.
// AddParticipants does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AddParticipants(ctx context.Context, eventUID string, participants []ParticipantInput) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if eventUID == "" {
		return e.failMutation(ctx, auditEventAddParticipants, nil, "Event not found.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventAddParticipants, nil, msgSessionNotFound)
	}

	if len(participants) == 0 {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventAddParticipants, sess, "No participants provided.")
	}
	for _, p := range participants {
		if err := e.validate.Struct(p); err != nil {
			e.metricInc(MetricValidationFailure)
			return e.failMutation(ctx, auditEventAddParticipants, sess, "Invalid participant data.")
		}
	}

	seeds := make([]gateway.ParticipantSeed, 0, len(participants))
	for _, p := range participants {
		seeds = append(seeds, gateway.ParticipantSeed{
			Name:     p.Name,
			Email:    p.Email,
			Position: p.Position,
		})
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.AddParticipants(ctx, sess.Token, eventUID, seeds)
	})

	return e.finishMutation(ctx, auditEventAddParticipants, sess, env,
		"Participants added successfully.",
		cache.Participants(),
	)
}

// AddParticipantsByExcel describes the addparticipantsbyexcel operation and its observable behavior.
//
// AddParticipantsByExcel may return an error when input validation, dependency calls, or security checks fail.
// AddParticipantsByExcel does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Row-level validation happens on the backend; this side only checks that
// a file was actually attached.
func (e *Engine) AddParticipantsByExcel(ctx context.Context, eventUID, filename string, file io.Reader) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if eventUID == "" {
		return e.failMutation(ctx, auditEventAddParticipantsXLS, nil, "Event not found.")
	}
	if file == nil {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventAddParticipantsXLS, nil, "No file provided.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventAddParticipantsXLS, nil, msgSessionNotFound)
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.AddParticipantsExcel(ctx, sess.Token, eventUID, filename, file)
	})

	return e.finishMutation(ctx, auditEventAddParticipantsXLS, sess, env,
		"Participants imported successfully.",
		cache.Participants(),
	)
}

// UpdateParticipant describes the updateparticipant operation and its observable behavior.
//
// UpdateParticipant may return an error when input validation, dependency calls, or security checks fail.
// UpdateParticipant does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) UpdateParticipant(ctx context.Context, eventUID, participantUID string, input ParticipantInput) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if eventUID == "" || participantUID == "" {
		return e.failMutation(ctx, auditEventUpdateParticipant, nil, "Participant not found.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventUpdateParticipant, nil, msgSessionNotFound)
	}

	if err := e.validate.Struct(input); err != nil {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventUpdateParticipant, sess, "Invalid participant data.")
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.UpdateParticipant(ctx, sess.Token, eventUID, participantUID, gateway.UpdateParticipantRequest{
			ParticipantName:     input.Name,
			ParticipantEmail:    input.Email,
			ParticipantPosition: input.Position,
		})
	})

	return e.finishMutation(ctx, auditEventUpdateParticipant, sess, env,
		"Participant updated successfully.",
		cache.Participants(),
	)
}

// DeleteParticipant describes the deleteparticipant operation and its observable behavior.
//
// DeleteParticipant may return an error when input validation, dependency calls, or security checks fail.
// DeleteParticipant does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) DeleteParticipant(ctx context.Context, eventUID, participantUID string) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if eventUID == "" || participantUID == "" {
		return e.failMutation(ctx, auditEventDeleteParticipant, nil, "Participant not found.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventDeleteParticipant, nil, msgSessionNotFound)
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.DeleteParticipant(ctx, sess.Token, eventUID, participantUID)
	})

	return e.finishMutation(ctx, auditEventDeleteParticipant, sess, env,
		"Participant deleted successfully.",
		cache.Participants(),
	)
}

// DeleteAllParticipants describes the deleteallparticipants operation and its observable behavior.
//
// DeleteAllParticipants may return an error when input validation, dependency calls, or security checks fail.
// DeleteAllParticipants does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) DeleteAllParticipants(ctx context.Context, eventUID string) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if eventUID == "" {
		return e.failMutation(ctx, auditEventDeleteParticipants, nil, "Event not found.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventDeleteParticipants, nil, msgSessionNotFound)
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.DeleteAllParticipants(ctx, sess.Token, eventUID)
	})

	return e.finishMutation(ctx, auditEventDeleteParticipants, sess, env,
		"All participants deleted successfully.",
		cache.Participants(),
	)
}
