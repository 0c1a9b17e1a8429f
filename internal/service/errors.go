package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/mosquefund/internal/calculator"
	"github.com/mmynk/mosquefund/internal/middleware"
	"github.com/mmynk/mosquefund/internal/models"
	"github.com/mmynk/mosquefund/internal/session"
	"github.com/mmynk/mosquefund/internal/storage"
)

// toConnectError maps a domain error onto its wire code.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, session.ErrInvalidCredentials):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, session.ErrAccessDenied):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, calculator.ErrDataIntegrity):
		return connect.NewError(connect.CodeDataLoss, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, storage.ErrUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// requireRole returns the caller's session if it carries role, or a
// PermissionDenied error. It has no side effects.
func requireRole(ctx context.Context, role models.Role) (*session.Session, error) {
	s := middleware.SessionFrom(ctx)
	if err := session.Authorize(s, role); err != nil {
		return nil, connect.NewError(connect.CodePermissionDenied, err)
	}
	return s, nil
}
