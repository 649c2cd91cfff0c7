package goCertify

import (
	"context"
	"io"

	"github.com/MrEthical07/goCertify/cache"
	"github.com/MrEthical07/goCertify/gateway"
)

// UploadEventLogo describes the uploadeventlogo operation and its observable behavior.
//
// UploadEventLogo may return an error when input validation, dependency calls, or security checks fail.
// UploadEventLogo does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The logo lands on the certificate render, so only the single event's
// cached reads are dropped; the list view never shows logos.
func (e *Engine) UploadEventLogo(ctx context.Context, eventUID string, option LogoOption, filename string, file io.Reader) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if eventUID == "" {
		return e.failMutation(ctx, auditEventUploadLogo, nil, "Event not found.")
	}
	if option != LogoFirst && option != LogoSecond {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventUploadLogo, nil, "Invalid logo option.")
	}
	if file == nil {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventUploadLogo, nil, "No file provided.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventUploadLogo, nil, msgSessionNotFound)
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.UploadLogo(ctx, sess.Token, eventUID, string(option), filename, file)
	})

	return e.finishMutation(ctx, auditEventUploadLogo, sess, env,
		"Logo uploaded successfully.",
		cache.Event(eventUID),
	)
}

// UploadStakeholderImage describes the uploadstakeholderimage operation and its observable behavior.
//
// UploadStakeholderImage may return an error when input validation, dependency calls, or security checks fail.
// UploadStakeholderImage does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) UploadStakeholderImage(ctx context.Context, eventUID, filename string, file io.Reader) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if eventUID == "" {
		return e.failMutation(ctx, auditEventUploadStakeholder, nil, "Event not found.")
	}
	if file == nil {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventUploadStakeholder, nil, "No file provided.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventUploadStakeholder, nil, msgSessionNotFound)
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.UploadStakeholderImage(ctx, sess.Token, eventUID, filename, file)
	})

	return e.finishMutation(ctx, auditEventUploadStakeholder, sess, env,
		"Stakeholder image uploaded successfully.",
		cache.Event(eventUID),
	)
}
