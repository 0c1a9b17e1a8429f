package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/mosquefund/pkg/api"
)

func TestCommittee_AddListDelete(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	token := env.signIn(t, testAdmin)

	added, err := env.committee.AddMember(ctx, authed(&api.AddMemberRequest{
		Name:     "Abdul Hamid",
		Position: "President",
		Phone:    "+8801700000000",
	}, token))
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if added.Msg.Member.ID == "" {
		t.Error("expected generated ID")
	}

	if _, err := env.committee.AddMember(ctx, authed(&api.AddMemberRequest{
		Name:     "Rahim Uddin",
		Position: "Treasurer",
	}, token)); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	// Listing is public.
	list, err := env.committee.ListMembers(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(list.Msg.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(list.Msg.Members))
	}

	if _, err := env.committee.DeleteMember(ctx, authed(&api.DeleteMemberRequest{ID: added.Msg.Member.ID}, token)); err != nil {
		t.Fatalf("DeleteMember failed: %v", err)
	}

	list, err = env.committee.ListMembers(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(list.Msg.Members) != 1 || list.Msg.Members[0].Name != "Rahim Uddin" {
		t.Errorf("unexpected members after delete: %+v", list.Msg.Members)
	}

	_, err = env.committee.DeleteMember(ctx, authed(&api.DeleteMemberRequest{ID: added.Msg.Member.ID}, token))
	assertCode(t, err, connect.CodeNotFound)
}

func TestCommittee_Validation(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	token := env.signIn(t, testAdmin)

	tests := []struct {
		name string
		req  *api.AddMemberRequest
	}{
		{"missing name", &api.AddMemberRequest{Position: "Secretary"}},
		{"missing position", &api.AddMemberRequest{Name: "Karim"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.committee.AddMember(ctx, authed(tt.req, token))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}

	_, err := env.committee.DeleteMember(ctx, authed(&api.DeleteMemberRequest{}, token))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestCommittee_AdminOnly(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	req := &api.AddMemberRequest{Name: "Karim", Position: "Secretary"}

	_, err := env.committee.AddMember(ctx, connect.NewRequest(req))
	assertCode(t, err, connect.CodePermissionDenied)

	token := env.signIn(t, testCashierA)
	_, err = env.committee.AddMember(ctx, authed(req, token))
	assertCode(t, err, connect.CodePermissionDenied)
	_, err = env.committee.DeleteMember(ctx, authed(&api.DeleteMemberRequest{ID: "any"}, token))
	assertCode(t, err, connect.CodePermissionDenied)

	list, err := env.committee.ListMembers(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(list.Msg.Members) != 0 {
		t.Errorf("denied requests added %d members", len(list.Msg.Members))
	}
}
