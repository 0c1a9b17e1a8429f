package api

import "time"

// Candidate is a profile offered on the sign-in screen. PINs never leave the server.
type Candidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type ListCandidatesResponse struct {
	Candidates []*Candidate `json:"candidates"`
}

type AuthenticateRequest struct {
	ProfileID string `json:"profile_id"`
	PIN       string `json:"pin"`
}

// Landing areas returned by Authenticate.
const (
	LandingAdmin   = "admin"
	LandingCashier = "cashier"
)

type AuthenticateResponse struct {
	Role    string       `json:"role"`
	Landing string       `json:"landing"`
	Token   string       `json:"token"`
	Session *SessionInfo `json:"session"`
}

// SessionInfo describes the signed-in staff member.
type SessionInfo struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	StartedAt time.Time `json:"started_at"`
}

type CurrentSessionResponse struct {
	SignedIn bool         `json:"signed_in"`
	Session  *SessionInfo `json:"session,omitempty"`
}
