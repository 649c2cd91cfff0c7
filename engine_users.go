package goCertify

import (
	"context"
	"encoding/json"

	"github.com/MrEthical07/goCertify/cache"
	"github.com/MrEthical07/goCertify/gateway"
	"github.com/MrEthical07/goCertify/session"
)

// Users describes the users operation and its observable behavior.
//
// Users may return an error when input validation, dependency calls, or security checks fail.
// Users does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The default UserListTTL is zero, so this read normally bypasses the
// cache: an administrator looking at the account list must see it exactly
// as the backend has it. The users tag still applies when a deployment
// opts into a positive TTL.
func (e *Engine) Users(ctx context.Context) ([]User, error) {
	if e == nil || e.gateway == nil {
		return nil, ErrEngineNotReady
	}

	sess := e.session(ctx)
	if sess == nil {
		e.metricInc(MetricReadFailure)
		return nil, ErrSessionRequired
	}

	data, err := e.cachedRead(ctx,
		readKey("users", sess.Token),
		[]cache.Tag{cache.Users()},
		e.config.Cache.UserListTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return e.fetchData(ctx, func(ctx context.Context) gateway.Envelope {
				return e.gateway.ListUsers(ctx, sess.Token)
			})
		},
	)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := e.decode(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SignUpByAdmin describes the signupbyadmin operation and its observable behavior.
//
// SignUpByAdmin may return an error when input validation, dependency calls, or security checks fail.
// SignUpByAdmin does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The password pair is checked locally but only the password itself goes
// over the wire; hashing and uniqueness are the identity provider's job.
func (e *Engine) SignUpByAdmin(ctx context.Context, input SignUpByAdminInput) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventAddUser, nil, msgSessionNotFound)
	}

	if err := e.validate.Struct(input); err != nil {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventAddUser, sess, "Invalid user data.")
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.AddUser(ctx, sess.Token, gateway.AddUserRequest{
			Email:          input.Email,
			Password:       input.Password,
			Roles:          string(input.Role),
			PackagePremium: string(input.PremiumPackage),
		})
	})

	return e.finishMutation(ctx, auditEventAddUser, sess, env,
		"User created successfully.",
		cache.Users(),
	)
}

// DeleteUser describes the deleteuser operation and its observable behavior.
//
// DeleteUser may return an error when input validation, dependency calls, or security checks fail.
// DeleteUser does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) DeleteUser(ctx context.Context, userUID string) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if userUID == "" {
		return e.failMutation(ctx, auditEventDeleteUser, nil, "User not found.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventDeleteUser, nil, msgSessionNotFound)
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.DeleteUser(ctx, sess.Token, userUID)
	})

	return e.finishMutation(ctx, auditEventDeleteUser, sess, env,
		"User deleted successfully.",
		cache.Users(),
	)
}

// UpdownUserPackage describes the updownuserpackage operation and its observable behavior.
//
// UpdownUserPackage may return an error when input validation, dependency calls, or security checks fail.
// UpdownUserPackage does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) UpdownUserPackage(ctx context.Context, userUID string, pkg session.PremiumPackage) MutationResult {
	if e == nil || e.gateway == nil {
		return failure(gateway.UnknownErrorMessage)
	}
	if userUID == "" {
		return e.failMutation(ctx, auditEventUpdownPackage, nil, "User not found.")
	}

	sess := e.session(ctx)
	if sess == nil {
		return e.failMutation(ctx, auditEventUpdownPackage, nil, msgSessionNotFound)
	}

	if err := e.validate.Var(pkg, "required,oneof=FREEPLAN SILVER GOLD PLATINUM"); err != nil {
		e.metricInc(MetricValidationFailure)
		return e.failMutation(ctx, auditEventUpdownPackage, sess, "Invalid premium package.")
	}

	env := e.call(ctx, func(ctx context.Context) gateway.Envelope {
		return e.gateway.UpdownUserPackage(ctx, sess.Token, userUID, gateway.UpdownPackageRequest{
			PremiumPackage: string(pkg),
		})
	})

	return e.finishMutation(ctx, auditEventUpdownPackage, sess, env,
		"Premium package updated successfully.",
		cache.Users(), cache.User(userUID),
	)
}
