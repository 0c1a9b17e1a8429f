package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/mosquefund/internal/auth"
	"github.com/mmynk/mosquefund/internal/middleware"
	"github.com/mmynk/mosquefund/internal/models"
	"github.com/mmynk/mosquefund/internal/session"
	"github.com/mmynk/mosquefund/internal/storage/sqlite"
	"github.com/mmynk/mosquefund/pkg/api"
	"github.com/mmynk/mosquefund/pkg/api/apiconnect"
)

const testSecret = "test-secret-key-for-service-tests"

// Seeded staff. IDs sort so that cashier-a < cashier-b.
var (
	testAdmin    = &models.Profile{ID: "admin-1", Name: "Imam Karim", Role: models.RoleAdmin, PIN: "1111"}
	testCashierA = &models.Profile{ID: "cashier-a", Name: "Bashir", Role: models.RoleCashier, PIN: "2222"}
	testCashierB = &models.Profile{ID: "cashier-b", Name: "Zaid", Role: models.RoleCashier, PIN: "3333"}
)

type testEnv struct {
	dbPath    string
	store     *sqlite.SQLiteStore
	sessions  *session.Manager
	auth      apiconnect.AuthServiceClient
	ledger    apiconnect.LedgerServiceClient
	committee apiconnect.CommitteeServiceClient
	publisher *recordingPublisher
}

type recordingPublisher struct {
	published []*models.Transaction
}

func (p *recordingPublisher) PublishTransactionRecorded(ctx context.Context, txn *models.Transaction) error {
	c := *txn
	p.published = append(p.published, &c)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// setupTestServer creates a test server backed by a temp SQLite database
// with an admin and two cashiers.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	for _, p := range []*models.Profile{testAdmin, testCashierA, testCashierB} {
		c := *p
		if err := store.CreateProfile(ctx, &c); err != nil {
			t.Fatalf("failed to seed profile %s: %v", p.ID, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	sessions := session.NewManager(store, store, logger)
	publisher := &recordingPublisher{}

	interceptors := connect.WithInterceptors(
		middleware.WithSession(jwtManager, sessions),
		middleware.MetricsInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(sessions, jwtManager, logger), interceptors))
	mux.Handle(apiconnect.NewLedgerServiceHandler(NewLedgerService(store, publisher, "BDT", logger), interceptors))
	mux.Handle(apiconnect.NewCommitteeServiceHandler(NewCommitteeService(store, logger), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{
		dbPath:    dbPath,
		store:     store,
		sessions:  sessions,
		auth:      apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		ledger:    apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		committee: apiconnect.NewCommitteeServiceClient(http.DefaultClient, server.URL),
		publisher: publisher,
	}
}

// signIn authenticates p and returns its bearer token.
func (e *testEnv) signIn(t *testing.T, p *models.Profile) string {
	t.Helper()
	resp, err := e.auth.Authenticate(context.Background(), connect.NewRequest(&api.AuthenticateRequest{
		ProfileID: p.ID,
		PIN:       p.PIN,
	}))
	if err != nil {
		t.Fatalf("sign in as %s failed: %v", p.ID, err)
	}
	return resp.Msg.Token
}

// authed builds a request carrying token.
func authed[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
