package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/futmanager/internal/auth"
	"github.com/mmynk/futmanager/internal/balancer"
	"github.com/mmynk/futmanager/internal/middleware"
	"github.com/mmynk/futmanager/internal/storage"
	"github.com/mmynk/futmanager/internal/storage/memory"
	"github.com/mmynk/futmanager/pkg/api"
	"github.com/mmynk/futmanager/pkg/api/apiconnect"
)

// brt is a fixed -03:00 zone so tests do not depend on the tz database.
var brt = time.FixedZone("BRT", -3*60*60)

// testNow is the fixed clock of every service under test.
var testNow = time.Date(2024, time.March, 15, 20, 0, 0, 0, brt)

const testPassphrase = "4321"

type testOptions struct {
	oracle   balancer.Strategy
	avatars  AvatarGenerator
	notifier *recordingNotifier
}

type testClients struct {
	roster  apiconnect.RosterServiceClient
	match   apiconnect.MatchServiceClient
	event   apiconnect.EventServiceClient
	gate    apiconnect.GateServiceClient
	finance apiconnect.FinanceServiceClient
	store   storage.Store
}

// setupTestServer serves every service over the memory backend, wired the
// same way the server binary does it.
func setupTestServer(t *testing.T, opts testOptions) *testClients {
	t.Helper()

	store := storage.New(memory.New())

	gate, err := auth.NewPassphraseGate(testPassphrase)
	if err != nil {
		t.Fatalf("failed to create gate: %v", err)
	}
	sessions := auth.NewSessionManager([]byte("test-secret"), time.Hour)

	rosterSvc := NewRosterService(store, opts.avatars)
	rosterSvc.now = func() time.Time { return testNow }

	notifier := opts.notifier
	if notifier == nil {
		notifier = &recordingNotifier{}
	}
	matchSvc := NewMatchService(store, opts.oracle, notifier, brt)
	matchSvc.now = func() time.Time { return testNow }

	eventSvc := NewEventService(store, brt)
	eventSvc.now = func() time.Time { return testNow }

	financeSvc := NewFinanceService(store, brt)
	financeSvc.now = func() time.Time { return testNow }

	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor())

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewRosterServiceHandler(rosterSvc, interceptors))
	mux.Handle(apiconnect.NewMatchServiceHandler(matchSvc, interceptors))
	mux.Handle(apiconnect.NewEventServiceHandler(eventSvc, interceptors))
	mux.Handle(apiconnect.NewGateServiceHandler(NewGateService(gate, sessions, nil), interceptors))
	mux.Handle(apiconnect.NewFinanceServiceHandler(financeSvc, connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.RequireSession(sessions),
	)))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testClients{
		roster:  apiconnect.NewRosterServiceClient(http.DefaultClient, server.URL),
		match:   apiconnect.NewMatchServiceClient(http.DefaultClient, server.URL),
		event:   apiconnect.NewEventServiceClient(http.DefaultClient, server.URL),
		gate:    apiconnect.NewGateServiceClient(http.DefaultClient, server.URL),
		finance: apiconnect.NewFinanceServiceClient(http.DefaultClient, server.URL),
		store:   store,
	}
}

type recordingNotifier struct {
	sent []string
	err  error
}

func (r *recordingNotifier) Send(_ context.Context, text string) error {
	r.sent = append(r.sent, text)
	return r.err
}

// addPlayer saves a player and returns the stored version.
func addPlayer(t *testing.T, c *testClients, p *api.Player) *api.Player {
	t.Helper()
	resp, err := c.roster.SavePlayer(context.Background(), connect.NewRequest(&api.SavePlayerRequest{Player: p}))
	if err != nil {
		t.Fatalf("SavePlayer(%s) failed: %v", p.Name, err)
	}
	return resp.Msg.Player
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

// withToken attaches the finance session token to a request.
func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}
