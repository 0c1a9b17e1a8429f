package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/mosquefund/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "mosquefund.v1.LedgerService"

const (
	LedgerServiceGetBalanceProcedure        = "/mosquefund.v1.LedgerService/GetBalance"
	LedgerServiceListTransactionsProcedure  = "/mosquefund.v1.LedgerService/ListTransactions"
	LedgerServiceRecordTransactionProcedure = "/mosquefund.v1.LedgerService/RecordTransaction"
	LedgerServiceMyTransactionsProcedure    = "/mosquefund.v1.LedgerService/MyTransactions"
	LedgerServiceGetReportProcedure         = "/mosquefund.v1.LedgerService/GetReport"
)

// LedgerServiceClient is a client for the mosquefund.v1.LedgerService service.
type LedgerServiceClient interface {
	GetBalance(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.GetBalanceResponse], error)
	ListTransactions(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListTransactionsResponse], error)
	RecordTransaction(context.Context, *connect.Request[api.RecordTransactionRequest]) (*connect.Response[api.RecordTransactionResponse], error)
	MyTransactions(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.MyTransactionsResponse], error)
	GetReport(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.GetReportResponse], error)
}

// NewLedgerServiceClient constructs a client for the mosquefund.v1.LedgerService service.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ledgerServiceClient{
		getBalance: connect.NewClient[emptypb.Empty, api.GetBalanceResponse](
			httpClient, baseURL+LedgerServiceGetBalanceProcedure, opts...),
		listTransactions: connect.NewClient[emptypb.Empty, api.ListTransactionsResponse](
			httpClient, baseURL+LedgerServiceListTransactionsProcedure, opts...),
		recordTransaction: connect.NewClient[api.RecordTransactionRequest, api.RecordTransactionResponse](
			httpClient, baseURL+LedgerServiceRecordTransactionProcedure, opts...),
		myTransactions: connect.NewClient[emptypb.Empty, api.MyTransactionsResponse](
			httpClient, baseURL+LedgerServiceMyTransactionsProcedure, opts...),
		getReport: connect.NewClient[emptypb.Empty, api.GetReportResponse](
			httpClient, baseURL+LedgerServiceGetReportProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	getBalance        *connect.Client[emptypb.Empty, api.GetBalanceResponse]
	listTransactions  *connect.Client[emptypb.Empty, api.ListTransactionsResponse]
	recordTransaction *connect.Client[api.RecordTransactionRequest, api.RecordTransactionResponse]
	myTransactions    *connect.Client[emptypb.Empty, api.MyTransactionsResponse]
	getReport         *connect.Client[emptypb.Empty, api.GetReportResponse]
}

func (c *ledgerServiceClient) GetBalance(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.GetBalanceResponse], error) {
	return c.getBalance.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListTransactions(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RecordTransaction(ctx context.Context, req *connect.Request[api.RecordTransactionRequest]) (*connect.Response[api.RecordTransactionResponse], error) {
	return c.recordTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) MyTransactions(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.MyTransactionsResponse], error) {
	return c.myTransactions.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetReport(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.GetReportResponse], error) {
	return c.getReport.CallUnary(ctx, req)
}

// LedgerServiceHandler is an implementation of the mosquefund.v1.LedgerService service.
type LedgerServiceHandler interface {
	GetBalance(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.GetBalanceResponse], error)
	ListTransactions(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.ListTransactionsResponse], error)
	RecordTransaction(context.Context, *connect.Request[api.RecordTransactionRequest]) (*connect.Response[api.RecordTransactionResponse], error)
	MyTransactions(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.MyTransactionsResponse], error)
	GetReport(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[api.GetReportResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getBalance := connect.NewUnaryHandler(LedgerServiceGetBalanceProcedure, svc.GetBalance, opts...)
	listTransactions := connect.NewUnaryHandler(LedgerServiceListTransactionsProcedure, svc.ListTransactions, opts...)
	recordTransaction := connect.NewUnaryHandler(LedgerServiceRecordTransactionProcedure, svc.RecordTransaction, opts...)
	myTransactions := connect.NewUnaryHandler(LedgerServiceMyTransactionsProcedure, svc.MyTransactions, opts...)
	getReport := connect.NewUnaryHandler(LedgerServiceGetReportProcedure, svc.GetReport, opts...)
	return "/" + LedgerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceGetBalanceProcedure:
			getBalance.ServeHTTP(w, r)
		case LedgerServiceListTransactionsProcedure:
			listTransactions.ServeHTTP(w, r)
		case LedgerServiceRecordTransactionProcedure:
			recordTransaction.ServeHTTP(w, r)
		case LedgerServiceMyTransactionsProcedure:
			myTransactions.ServeHTTP(w, r)
		case LedgerServiceGetReportProcedure:
			getReport.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
