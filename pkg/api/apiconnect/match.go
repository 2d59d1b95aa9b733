package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/futmanager/pkg/api"
)

// MatchServiceName is the fully-qualified name of the MatchService.
const MatchServiceName = "futmanager.v1.MatchService"

// Procedure paths of the MatchService.
const (
	MatchServiceDrawTeamsProcedure      = "/futmanager.v1.MatchService/DrawTeams"
	MatchServiceSaveMatchDayProcedure   = "/futmanager.v1.MatchService/SaveMatchDay"
	MatchServiceListHistoryProcedure    = "/futmanager.v1.MatchService/ListHistory"
	MatchServiceDeleteMatchDayProcedure = "/futmanager.v1.MatchService/DeleteMatchDay"
	MatchServiceGetPerformanceProcedure = "/futmanager.v1.MatchService/GetPerformance"
)

// MatchServiceHandler is implemented by the server side of the MatchService.
type MatchServiceHandler interface {
	DrawTeams(context.Context, *connect.Request[api.DrawTeamsRequest]) (*connect.Response[api.DrawTeamsResponse], error)
	SaveMatchDay(context.Context, *connect.Request[api.SaveMatchDayRequest]) (*connect.Response[api.SaveMatchDayResponse], error)
	ListHistory(context.Context, *connect.Request[api.ListHistoryRequest]) (*connect.Response[api.ListHistoryResponse], error)
	DeleteMatchDay(context.Context, *connect.Request[api.DeleteMatchDayRequest]) (*connect.Response[api.DeleteMatchDayResponse], error)
	GetPerformance(context.Context, *connect.Request[api.GetPerformanceRequest]) (*connect.Response[api.GetPerformanceResponse], error)
}

// NewMatchServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewMatchServiceHandler(svc MatchServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(Codec{})))
	drawTeamsHandler := connect.NewUnaryHandler(MatchServiceDrawTeamsProcedure, svc.DrawTeams, opts...)
	saveMatchDayHandler := connect.NewUnaryHandler(MatchServiceSaveMatchDayProcedure, svc.SaveMatchDay, opts...)
	listHistoryHandler := connect.NewUnaryHandler(MatchServiceListHistoryProcedure, svc.ListHistory, opts...)
	deleteMatchDayHandler := connect.NewUnaryHandler(MatchServiceDeleteMatchDayProcedure, svc.DeleteMatchDay, opts...)
	getPerformanceHandler := connect.NewUnaryHandler(MatchServiceGetPerformanceProcedure, svc.GetPerformance, opts...)
	return "/" + MatchServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case MatchServiceDrawTeamsProcedure:
			drawTeamsHandler.ServeHTTP(w, r)
		case MatchServiceSaveMatchDayProcedure:
			saveMatchDayHandler.ServeHTTP(w, r)
		case MatchServiceListHistoryProcedure:
			listHistoryHandler.ServeHTTP(w, r)
		case MatchServiceDeleteMatchDayProcedure:
			deleteMatchDayHandler.ServeHTTP(w, r)
		case MatchServiceGetPerformanceProcedure:
			getPerformanceHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// MatchServiceClient is a client for the MatchService.
type MatchServiceClient interface {
	DrawTeams(context.Context, *connect.Request[api.DrawTeamsRequest]) (*connect.Response[api.DrawTeamsResponse], error)
	SaveMatchDay(context.Context, *connect.Request[api.SaveMatchDayRequest]) (*connect.Response[api.SaveMatchDayResponse], error)
	ListHistory(context.Context, *connect.Request[api.ListHistoryRequest]) (*connect.Response[api.ListHistoryResponse], error)
	DeleteMatchDay(context.Context, *connect.Request[api.DeleteMatchDayRequest]) (*connect.Response[api.DeleteMatchDayResponse], error)
	GetPerformance(context.Context, *connect.Request[api.GetPerformanceRequest]) (*connect.Response[api.GetPerformanceResponse], error)
}

// NewMatchServiceClient constructs a client for the MatchService. baseURL is the
// server root, for example http://localhost:8080.
func NewMatchServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MatchServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withCodec(opts, connect.ClientOption(connect.WithCodec(Codec{})))
	return &matchServiceClient{
		drawTeams:      connect.NewClient[api.DrawTeamsRequest, api.DrawTeamsResponse](httpClient, baseURL+MatchServiceDrawTeamsProcedure, opts...),
		saveMatchDay:   connect.NewClient[api.SaveMatchDayRequest, api.SaveMatchDayResponse](httpClient, baseURL+MatchServiceSaveMatchDayProcedure, opts...),
		listHistory:    connect.NewClient[api.ListHistoryRequest, api.ListHistoryResponse](httpClient, baseURL+MatchServiceListHistoryProcedure, opts...),
		deleteMatchDay: connect.NewClient[api.DeleteMatchDayRequest, api.DeleteMatchDayResponse](httpClient, baseURL+MatchServiceDeleteMatchDayProcedure, opts...),
		getPerformance: connect.NewClient[api.GetPerformanceRequest, api.GetPerformanceResponse](httpClient, baseURL+MatchServiceGetPerformanceProcedure, opts...),
	}
}

type matchServiceClient struct {
	drawTeams      *connect.Client[api.DrawTeamsRequest, api.DrawTeamsResponse]
	saveMatchDay   *connect.Client[api.SaveMatchDayRequest, api.SaveMatchDayResponse]
	listHistory    *connect.Client[api.ListHistoryRequest, api.ListHistoryResponse]
	deleteMatchDay *connect.Client[api.DeleteMatchDayRequest, api.DeleteMatchDayResponse]
	getPerformance *connect.Client[api.GetPerformanceRequest, api.GetPerformanceResponse]
}

func (c *matchServiceClient) DrawTeams(ctx context.Context, req *connect.Request[api.DrawTeamsRequest]) (*connect.Response[api.DrawTeamsResponse], error) {
	return c.drawTeams.CallUnary(ctx, req)
}

func (c *matchServiceClient) SaveMatchDay(ctx context.Context, req *connect.Request[api.SaveMatchDayRequest]) (*connect.Response[api.SaveMatchDayResponse], error) {
	return c.saveMatchDay.CallUnary(ctx, req)
}

func (c *matchServiceClient) ListHistory(ctx context.Context, req *connect.Request[api.ListHistoryRequest]) (*connect.Response[api.ListHistoryResponse], error) {
	return c.listHistory.CallUnary(ctx, req)
}

func (c *matchServiceClient) DeleteMatchDay(ctx context.Context, req *connect.Request[api.DeleteMatchDayRequest]) (*connect.Response[api.DeleteMatchDayResponse], error) {
	return c.deleteMatchDay.CallUnary(ctx, req)
}

func (c *matchServiceClient) GetPerformance(ctx context.Context, req *connect.Request[api.GetPerformanceRequest]) (*connect.Response[api.GetPerformanceResponse], error) {
	return c.getPerformance.CallUnary(ctx, req)
}
