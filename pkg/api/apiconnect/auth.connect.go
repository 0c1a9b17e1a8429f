package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/mosquefund/pkg/api"
)

// AuthServiceName is the fully-qualified name of the AuthService service.
const AuthServiceName = "mosquefund.v1.AuthService"

const (
	AuthServiceListCandidatesProcedure = "/mosquefund.v1.AuthService/ListCandidates"
	AuthServiceAuthenticateProcedure   = "/mosquefund.v1.AuthService/Authenticate"
	AuthServiceCurrentSessionProcedure = "/mosquefund.v1.AuthService/CurrentSession"
	AuthServiceSignOutProcedure        = "/mosquefund.v1.AuthService/SignOut"
)

// AuthServiceClient is a client for the mosquefund.v1.AuthService service.
type AuthServiceClient interface {
	ListCandidates(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListCandidatesResponse], error)
	Authenticate(context.Context, *connect.Request[api.AuthenticateRequest]) (*connect.Response[api.AuthenticateResponse], error)
	CurrentSession(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.CurrentSessionResponse], error)
	SignOut(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error)
}

// NewAuthServiceClient constructs a client for the mosquefund.v1.AuthService service.
// The baseURL should be the scheme and host of the server, e.g. http://localhost:8080.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		listCandidates: connect.NewClient[emptypb.Empty, api.ListCandidatesResponse](
			httpClient, baseURL+AuthServiceListCandidatesProcedure, opts...),
		authenticate: connect.NewClient[api.AuthenticateRequest, api.AuthenticateResponse](
			httpClient, baseURL+AuthServiceAuthenticateProcedure, opts...),
		currentSession: connect.NewClient[emptypb.Empty, api.CurrentSessionResponse](
			httpClient, baseURL+AuthServiceCurrentSessionProcedure, opts...),
		signOut: connect.NewClient[emptypb.Empty, emptypb.Empty](
			httpClient, baseURL+AuthServiceSignOutProcedure, opts...),
	}
}

type authServiceClient struct {
	listCandidates *connect.Client[emptypb.Empty, api.ListCandidatesResponse]
	authenticate   *connect.Client[api.AuthenticateRequest, api.AuthenticateResponse]
	currentSession *connect.Client[emptypb.Empty, api.CurrentSessionResponse]
	signOut        *connect.Client[emptypb.Empty, emptypb.Empty]
}

func (c *authServiceClient) ListCandidates(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListCandidatesResponse], error) {
	return c.listCandidates.CallUnary(ctx, req)
}

func (c *authServiceClient) Authenticate(ctx context.Context, req *connect.Request[api.AuthenticateRequest]) (*connect.Response[api.AuthenticateResponse], error) {
	return c.authenticate.CallUnary(ctx, req)
}

func (c *authServiceClient) CurrentSession(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.CurrentSessionResponse], error) {
	return c.currentSession.CallUnary(ctx, req)
}

func (c *authServiceClient) SignOut(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
	return c.signOut.CallUnary(ctx, req)
}

// AuthServiceHandler is an implementation of the mosquefund.v1.AuthService service.
type AuthServiceHandler interface {
	ListCandidates(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListCandidatesResponse], error)
	Authenticate(context.Context, *connect.Request[api.AuthenticateRequest]) (*connect.Response[api.AuthenticateResponse], error)
	CurrentSession(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.CurrentSessionResponse], error)
	SignOut(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listCandidates := connect.NewUnaryHandler(AuthServiceListCandidatesProcedure, svc.ListCandidates, opts...)
	authenticate := connect.NewUnaryHandler(AuthServiceAuthenticateProcedure, svc.Authenticate, opts...)
	currentSession := connect.NewUnaryHandler(AuthServiceCurrentSessionProcedure, svc.CurrentSession, opts...)
	signOut := connect.NewUnaryHandler(AuthServiceSignOutProcedure, svc.SignOut, opts...)
	return "/" + AuthServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceListCandidatesProcedure:
			listCandidates.ServeHTTP(w, r)
		case AuthServiceAuthenticateProcedure:
			authenticate.ServeHTTP(w, r)
		case AuthServiceCurrentSessionProcedure:
			currentSession.ServeHTTP(w, r)
		case AuthServiceSignOutProcedure:
			signOut.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
