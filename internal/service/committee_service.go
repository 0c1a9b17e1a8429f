package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/mosquefund/internal/models"
	"github.com/mmynk/mosquefund/internal/storage"
	"github.com/mmynk/mosquefund/pkg/api"
)

// CommitteeService implements the CommitteeService RPC interface.
type CommitteeService struct {
	store  storage.CommitteeStore
	logger *slog.Logger
}

// NewCommitteeService creates a new CommitteeService.
func NewCommitteeService(store storage.CommitteeStore, logger *slog.Logger) *CommitteeService {
	return &CommitteeService{store: store, logger: logger}
}

// ListMembers returns the committee directory.
func (s *CommitteeService) ListMembers(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMembersResponse], error) {
	members, err := s.store.ListCommitteeMembers(ctx)
	if err != nil {
		s.logger.Error("Failed to list committee", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListMembersResponse{Members: make([]*api.CommitteeMember, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, toAPIMember(m))
	}
	return connect.NewResponse(resp), nil
}

// AddMember adds a committee member. Admin only.
func (s *CommitteeService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	sess, err := requireRole(ctx, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	member := &models.CommitteeMember{
		Name:     strings.TrimSpace(req.Msg.Name),
		Position: strings.TrimSpace(req.Msg.Position),
		Phone:    strings.TrimSpace(req.Msg.Phone),
		PhotoURL: strings.TrimSpace(req.Msg.PhotoURL),
	}
	if member.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("name is required"))
	}
	if member.Position == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("position is required"))
	}

	if err := s.store.CreateCommitteeMember(ctx, member); err != nil {
		s.logger.Error("Failed to add committee member", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Committee member added", "id", member.ID, "by", sess.Profile.ID)
	return connect.NewResponse(&api.AddMemberResponse{Member: toAPIMember(member)}), nil
}

// DeleteMember removes a committee member. Admin only.
func (s *CommitteeService) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[emptypb.Empty], error) {
	sess, err := requireRole(ctx, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("id is required"))
	}

	if err := s.store.DeleteCommitteeMember(ctx, req.Msg.ID); err != nil {
		s.logger.Warn("Failed to delete committee member", "id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Committee member deleted", "id", req.Msg.ID, "by", sess.Profile.ID)
	return connect.NewResponse(&emptypb.Empty{}), nil
}
