package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/mosquefund/pkg/api"
)

// CommitteeServiceName is the fully-qualified name of the CommitteeService service.
const CommitteeServiceName = "mosquefund.v1.CommitteeService"

const (
	CommitteeServiceListMembersProcedure  = "/mosquefund.v1.CommitteeService/ListMembers"
	CommitteeServiceAddMemberProcedure    = "/mosquefund.v1.CommitteeService/AddMember"
	CommitteeServiceDeleteMemberProcedure = "/mosquefund.v1.CommitteeService/DeleteMember"
)

// CommitteeServiceClient is a client for the mosquefund.v1.CommitteeService service.
type CommitteeServiceClient interface {
	ListMembers(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMembersResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[emptypb.Empty], error)
}

// NewCommitteeServiceClient constructs a client for the mosquefund.v1.CommitteeService service.
func NewCommitteeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CommitteeServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &committeeServiceClient{
		listMembers: connect.NewClient[emptypb.Empty, api.ListMembersResponse](
			httpClient, baseURL+CommitteeServiceListMembersProcedure, opts...),
		addMember: connect.NewClient[api.AddMemberRequest, api.AddMemberResponse](
			httpClient, baseURL+CommitteeServiceAddMemberProcedure, opts...),
		deleteMember: connect.NewClient[api.DeleteMemberRequest, emptypb.Empty](
			httpClient, baseURL+CommitteeServiceDeleteMemberProcedure, opts...),
	}
}

type committeeServiceClient struct {
	listMembers  *connect.Client[emptypb.Empty, api.ListMembersResponse]
	addMember    *connect.Client[api.AddMemberRequest, api.AddMemberResponse]
	deleteMember *connect.Client[api.DeleteMemberRequest, emptypb.Empty]
}

func (c *committeeServiceClient) ListMembers(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *committeeServiceClient) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *committeeServiceClient) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.deleteMember.CallUnary(ctx, req)
}

// CommitteeServiceHandler is an implementation of the mosquefund.v1.CommitteeService service.
type CommitteeServiceHandler interface {
	ListMembers(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListMembersResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[emptypb.Empty], error)
}

// NewCommitteeServiceHandler builds an HTTP handler from the service implementation.
func NewCommitteeServiceHandler(svc CommitteeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listMembers := connect.NewUnaryHandler(CommitteeServiceListMembersProcedure, svc.ListMembers, opts...)
	addMember := connect.NewUnaryHandler(CommitteeServiceAddMemberProcedure, svc.AddMember, opts...)
	deleteMember := connect.NewUnaryHandler(CommitteeServiceDeleteMemberProcedure, svc.DeleteMember, opts...)
	return "/" + CommitteeServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CommitteeServiceListMembersProcedure:
			listMembers.ServeHTTP(w, r)
		case CommitteeServiceAddMemberProcedure:
			addMember.ServeHTTP(w, r)
		case CommitteeServiceDeleteMemberProcedure:
			deleteMember.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
