// Package client is a typed Go client for a mosquefund server.
//
// It remembers the token returned by Authenticate and attaches it to every
// later call, the way the mobile app keeps its signed-in profile.
package client

import (
	"context"
	"net/http"
	"sync"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/mosquefund/pkg/api"
	"github.com/mmynk/mosquefund/pkg/api/apiconnect"
)

// Client talks to the Auth, Ledger and Committee services.
type Client struct {
	auth      apiconnect.AuthServiceClient
	ledger    apiconnect.LedgerServiceClient
	committee apiconnect.CommitteeServiceClient

	mu    sync.RWMutex
	token string
}

// New creates a client for the server at baseURL. A nil httpClient means
// http.DefaultClient.
func New(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		auth:      apiconnect.NewAuthServiceClient(httpClient, baseURL, opts...),
		ledger:    apiconnect.NewLedgerServiceClient(httpClient, baseURL, opts...),
		committee: apiconnect.NewCommitteeServiceClient(httpClient, baseURL, opts...),
	}
}

// Token returns the remembered session token, or "" when signed out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the remembered token, e.g. one restored from disk.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func request[T any](c *Client, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token := c.Token(); token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func (c *Client) ListCandidates(ctx context.Context) ([]*api.Candidate, error) {
	resp, err := c.auth.ListCandidates(ctx, request(c, &emptypb.Empty{}))
	if err != nil {
		return []*api.Candidate{}, err
	}
	return resp.Msg.Candidates, nil
}

// Authenticate signs in and remembers the token. A rejected PIN leaves the
// remembered token as it was.
func (c *Client) Authenticate(ctx context.Context, profileID, pin string) (*api.AuthenticateResponse, error) {
	resp, err := c.auth.Authenticate(ctx, connect.NewRequest(&api.AuthenticateRequest{
		ProfileID: profileID,
		PIN:       pin,
	}))
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.Msg.Token)
	return resp.Msg, nil
}

// CurrentSession returns the session behind the remembered token, or nil.
func (c *Client) CurrentSession(ctx context.Context) (*api.SessionInfo, error) {
	resp, err := c.auth.CurrentSession(ctx, request(c, &emptypb.Empty{}))
	if err != nil {
		return nil, err
	}
	if !resp.Msg.SignedIn {
		return nil, nil
	}
	return resp.Msg.Session, nil
}

// SignOut ends the session and forgets the token.
func (c *Client) SignOut(ctx context.Context) error {
	if _, err := c.auth.SignOut(ctx, request(c, &emptypb.Empty{})); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

func (c *Client) GetBalance(ctx context.Context) (*api.Summary, error) {
	resp, err := c.ledger.GetBalance(ctx, request(c, &emptypb.Empty{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Summary, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]*api.Transaction, error) {
	resp, err := c.ledger.ListTransactions(ctx, request(c, &emptypb.Empty{}))
	if err != nil {
		return []*api.Transaction{}, err
	}
	return resp.Msg.Transactions, nil
}

func (c *Client) RecordTransaction(ctx context.Context, req *api.RecordTransactionRequest) (*api.Transaction, error) {
	resp, err := c.ledger.RecordTransaction(ctx, request(c, req))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Transaction, nil
}

func (c *Client) MyTransactions(ctx context.Context) (*api.MyTransactionsResponse, error) {
	resp, err := c.ledger.MyTransactions(ctx, request(c, &emptypb.Empty{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func (c *Client) GetReport(ctx context.Context) (*api.GetReportResponse, error) {
	resp, err := c.ledger.GetReport(ctx, request(c, &emptypb.Empty{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func (c *Client) ListMembers(ctx context.Context) ([]*api.CommitteeMember, error) {
	resp, err := c.committee.ListMembers(ctx, request(c, &emptypb.Empty{}))
	if err != nil {
		return []*api.CommitteeMember{}, err
	}
	return resp.Msg.Members, nil
}

func (c *Client) AddMember(ctx context.Context, req *api.AddMemberRequest) (*api.CommitteeMember, error) {
	resp, err := c.committee.AddMember(ctx, request(c, req))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Member, nil
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	_, err := c.committee.DeleteMember(ctx, request(c, &api.DeleteMemberRequest{ID: id}))
	return err
}
