package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/mosquefund/internal/auth"
	"github.com/mmynk/mosquefund/internal/metrics"
	"github.com/mmynk/mosquefund/internal/middleware"
	"github.com/mmynk/mosquefund/internal/models"
	"github.com/mmynk/mosquefund/internal/session"
	"github.com/mmynk/mosquefund/internal/storage"
	"github.com/mmynk/mosquefund/pkg/api"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	sessions   *session.Manager
	jwtManager *auth.JWTManager
	logger     *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(sessions *session.Manager, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		sessions:   sessions,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// ListCandidates returns the staff who may sign in, without their PINs.
func (s *AuthService) ListCandidates(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListCandidatesResponse], error) {
	profiles, err := s.sessions.ListCandidates(ctx)
	if err != nil {
		s.logger.Error("Failed to list candidates", "error", err)
		return nil, toConnectError(err)
	}

	candidates := make([]*api.Candidate, 0, len(profiles))
	for _, p := range profiles {
		candidates = append(candidates, &api.Candidate{
			ID:   p.ID,
			Name: p.Name,
			Role: p.Role.String(),
		})
	}

	return connect.NewResponse(&api.ListCandidatesResponse{Candidates: candidates}), nil
}

// Authenticate checks the PIN of the selected profile and starts a session.
func (s *AuthService) Authenticate(ctx context.Context, req *connect.Request[api.AuthenticateRequest]) (*connect.Response[api.AuthenticateResponse], error) {
	profileID := strings.TrimSpace(req.Msg.ProfileID)
	s.logger.Info("Authenticate request", "profile_id", profileID)

	if profileID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("profile_id is required"))
	}

	sess, err := s.sessions.Authenticate(ctx, profileID, req.Msg.PIN)
	if err != nil {
		metrics.SignIns.WithLabelValues(signInOutcome(err)).Inc()
		if errors.Is(err, session.ErrInvalidCredentials) {
			s.logger.Warn("Sign-in failed", "profile_id", profileID, "error", err)
		} else {
			s.logger.Error("Sign-in failed", "profile_id", profileID, "error", err)
		}
		return nil, toConnectError(err)
	}
	metrics.SignIns.WithLabelValues(metrics.OutcomeOK).Inc()

	token, err := s.jwtManager.Generate(sess.ID, sess.Profile)
	if err != nil {
		s.logger.Error("Failed to generate token", "profile_id", profileID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	response := &api.AuthenticateResponse{
		Role:    sess.Role().String(),
		Landing: landingFor(sess.Role()),
		Token:   token,
		Session: toAPISession(sess),
	}

	s.logger.Info("Signed in", "profile_id", profileID, "role", sess.Role())
	return connect.NewResponse(response), nil
}

// CurrentSession reports the caller's session, if its token is still live.
func (s *AuthService) CurrentSession(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.CurrentSessionResponse], error) {
	sess := middleware.SessionFrom(ctx)
	if sess == nil {
		return connect.NewResponse(&api.CurrentSessionResponse{SignedIn: false}), nil
	}
	return connect.NewResponse(&api.CurrentSessionResponse{
		SignedIn: true,
		Session:  toAPISession(sess),
	}), nil
}

// SignOut ends the caller's session. Without a live session it does nothing.
func (s *AuthService) SignOut(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
	sess := middleware.SessionFrom(ctx)
	if sess == nil {
		return connect.NewResponse(&emptypb.Empty{}), nil
	}

	if err := s.sessions.SignOut(ctx); err != nil {
		s.logger.Error("Sign-out failed", "session_id", sess.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Signed out", "profile_id", sess.Profile.ID)
	return connect.NewResponse(&emptypb.Empty{}), nil
}

func landingFor(role models.Role) string {
	if role == models.RoleAdmin {
		return api.LandingAdmin
	}
	return api.LandingCashier
}

func signInOutcome(err error) string {
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return metrics.OutcomeInvalidPIN
	case errors.Is(err, session.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, storage.ErrUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return "error"
	}
}
