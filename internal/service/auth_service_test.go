package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/mosquefund/pkg/api"
)

func TestListCandidates(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.auth.ListCandidates(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}

	if len(resp.Msg.Candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(resp.Msg.Candidates))
	}
	// Ordered by name.
	want := []string{"Bashir", "Imam Karim", "Zaid"}
	for i, c := range resp.Msg.Candidates {
		if c.Name != want[i] {
			t.Errorf("candidate %d = %s, want %s", i, c.Name, want[i])
		}
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		profileID   string
		pin         string
		wantCode    connect.Code
		wantRole    string
		wantLanding string
	}{
		{name: "admin", profileID: testAdmin.ID, pin: "1111", wantRole: "admin", wantLanding: api.LandingAdmin},
		{name: "cashier", profileID: testCashierA.ID, pin: "2222", wantRole: "cashier", wantLanding: api.LandingCashier},
		{name: "wrong PIN", profileID: testCashierA.ID, pin: "1111", wantCode: connect.CodeUnauthenticated},
		{name: "empty PIN", profileID: testCashierA.ID, pin: "", wantCode: connect.CodeUnauthenticated},
		{name: "unknown profile", profileID: "nobody", pin: "1111", wantCode: connect.CodeNotFound},
		{name: "missing profile", profileID: "", pin: "1111", wantCode: connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t)
			resp, err := env.auth.Authenticate(ctx, connect.NewRequest(&api.AuthenticateRequest{
				ProfileID: tt.profileID,
				PIN:       tt.pin,
			}))

			if tt.wantCode != 0 {
				assertCode(t, err, tt.wantCode)
				if _, ok := env.sessions.Current(); ok {
					t.Error("failed sign-in must not create a session")
				}
				return
			}

			if err != nil {
				t.Fatalf("Authenticate failed: %v", err)
			}
			if resp.Msg.Role != tt.wantRole || resp.Msg.Landing != tt.wantLanding {
				t.Errorf("role/landing = %s/%s, want %s/%s", resp.Msg.Role, resp.Msg.Landing, tt.wantRole, tt.wantLanding)
			}
			if resp.Msg.Token == "" {
				t.Error("expected token")
			}
			if resp.Msg.Session == nil || resp.Msg.Session.ProfileID != tt.profileID {
				t.Errorf("unexpected session: %+v", resp.Msg.Session)
			}
		})
	}
}

func TestAuthenticate_WrongPINKeepsSession(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	token := env.signIn(t, testAdmin)

	_, err := env.auth.Authenticate(ctx, connect.NewRequest(&api.AuthenticateRequest{
		ProfileID: testCashierA.ID,
		PIN:       "0000",
	}))
	assertCode(t, err, connect.CodeUnauthenticated)

	resp, err := env.auth.CurrentSession(ctx, authed(&emptypb.Empty{}, token))
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if !resp.Msg.SignedIn || resp.Msg.Session.ProfileID != testAdmin.ID {
		t.Errorf("admin session lost after failed attempt: %+v", resp.Msg)
	}
}

func TestCurrentSession(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	resp, err := env.auth.CurrentSession(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if resp.Msg.SignedIn {
		t.Error("expected signed out without a token")
	}

	token := env.signIn(t, testCashierA)
	resp, err = env.auth.CurrentSession(ctx, authed(&emptypb.Empty{}, token))
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if !resp.Msg.SignedIn {
		t.Fatal("expected signed in")
	}
	s := resp.Msg.Session
	if s.ProfileID != testCashierA.ID || s.Name != testCashierA.Name || s.Role != "cashier" {
		t.Errorf("session = %+v", s)
	}

	resp, err = env.auth.CurrentSession(ctx, authed(&emptypb.Empty{}, "garbage"))
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if resp.Msg.SignedIn {
		t.Error("invalid token must not resolve to a session")
	}
}

func TestSignInReplacesSession(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	oldToken := env.signIn(t, testCashierA)
	newToken := env.signIn(t, testCashierB)

	resp, err := env.auth.CurrentSession(ctx, authed(&emptypb.Empty{}, oldToken))
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if resp.Msg.SignedIn {
		t.Error("token of replaced session still accepted")
	}

	resp, err = env.auth.CurrentSession(ctx, authed(&emptypb.Empty{}, newToken))
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if !resp.Msg.SignedIn || resp.Msg.Session.ProfileID != testCashierB.ID {
		t.Errorf("expected cashier-b session, got %+v", resp.Msg)
	}
}

func TestSignOut(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	// Signed out already: no-op.
	if _, err := env.auth.SignOut(ctx, connect.NewRequest(&emptypb.Empty{})); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}

	token := env.signIn(t, testAdmin)
	for i := 0; i < 2; i++ {
		if _, err := env.auth.SignOut(ctx, authed(&emptypb.Empty{}, token)); err != nil {
			t.Fatalf("SignOut #%d failed: %v", i+1, err)
		}
	}

	if _, ok := env.sessions.Current(); ok {
		t.Error("session still active after sign-out")
	}
	resp, err := env.auth.CurrentSession(ctx, authed(&emptypb.Empty{}, token))
	if err != nil {
		t.Fatalf("CurrentSession failed: %v", err)
	}
	if resp.Msg.SignedIn {
		t.Error("token still accepted after sign-out")
	}
}
