package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/futmanager/pkg/api"
)

// RosterServiceName is the fully-qualified name of the RosterService.
const RosterServiceName = "futmanager.v1.RosterService"

// Procedure paths of the RosterService.
const (
	RosterServiceListPlayersProcedure        = "/futmanager.v1.RosterService/ListPlayers"
	RosterServiceSavePlayerProcedure         = "/futmanager.v1.RosterService/SavePlayer"
	RosterServiceDeletePlayerProcedure       = "/futmanager.v1.RosterService/DeletePlayer"
	RosterServiceTogglePlayerStatusProcedure = "/futmanager.v1.RosterService/TogglePlayerStatus"
	RosterServicePromotePlayerProcedure      = "/futmanager.v1.RosterService/PromotePlayer"
	RosterServiceDemotePlayerProcedure       = "/futmanager.v1.RosterService/DemotePlayer"
	RosterServiceUpdateRatingProcedure       = "/futmanager.v1.RosterService/UpdateRating"
	RosterServiceSearchPlayersProcedure      = "/futmanager.v1.RosterService/SearchPlayers"
	RosterServiceGenerateAvatarProcedure     = "/futmanager.v1.RosterService/GenerateAvatar"
)

// RosterServiceHandler is implemented by the server side of the RosterService.
type RosterServiceHandler interface {
	ListPlayers(context.Context, *connect.Request[api.ListPlayersRequest]) (*connect.Response[api.ListPlayersResponse], error)
	SavePlayer(context.Context, *connect.Request[api.SavePlayerRequest]) (*connect.Response[api.SavePlayerResponse], error)
	DeletePlayer(context.Context, *connect.Request[api.DeletePlayerRequest]) (*connect.Response[api.DeletePlayerResponse], error)
	TogglePlayerStatus(context.Context, *connect.Request[api.TogglePlayerStatusRequest]) (*connect.Response[api.TogglePlayerStatusResponse], error)
	PromotePlayer(context.Context, *connect.Request[api.PromotePlayerRequest]) (*connect.Response[api.PromotePlayerResponse], error)
	DemotePlayer(context.Context, *connect.Request[api.DemotePlayerRequest]) (*connect.Response[api.DemotePlayerResponse], error)
	UpdateRating(context.Context, *connect.Request[api.UpdateRatingRequest]) (*connect.Response[api.UpdateRatingResponse], error)
	SearchPlayers(context.Context, *connect.Request[api.SearchPlayersRequest]) (*connect.Response[api.SearchPlayersResponse], error)
	GenerateAvatar(context.Context, *connect.Request[api.GenerateAvatarRequest]) (*connect.Response[api.GenerateAvatarResponse], error)
}

// NewRosterServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewRosterServiceHandler(svc RosterServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(Codec{})))
	listPlayersHandler := connect.NewUnaryHandler(RosterServiceListPlayersProcedure, svc.ListPlayers, opts...)
	savePlayerHandler := connect.NewUnaryHandler(RosterServiceSavePlayerProcedure, svc.SavePlayer, opts...)
	deletePlayerHandler := connect.NewUnaryHandler(RosterServiceDeletePlayerProcedure, svc.DeletePlayer, opts...)
	togglePlayerStatusHandler := connect.NewUnaryHandler(RosterServiceTogglePlayerStatusProcedure, svc.TogglePlayerStatus, opts...)
	promotePlayerHandler := connect.NewUnaryHandler(RosterServicePromotePlayerProcedure, svc.PromotePlayer, opts...)
	demotePlayerHandler := connect.NewUnaryHandler(RosterServiceDemotePlayerProcedure, svc.DemotePlayer, opts...)
	updateRatingHandler := connect.NewUnaryHandler(RosterServiceUpdateRatingProcedure, svc.UpdateRating, opts...)
	searchPlayersHandler := connect.NewUnaryHandler(RosterServiceSearchPlayersProcedure, svc.SearchPlayers, opts...)
	generateAvatarHandler := connect.NewUnaryHandler(RosterServiceGenerateAvatarProcedure, svc.GenerateAvatar, opts...)
	return "/" + RosterServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RosterServiceListPlayersProcedure:
			listPlayersHandler.ServeHTTP(w, r)
		case RosterServiceSavePlayerProcedure:
			savePlayerHandler.ServeHTTP(w, r)
		case RosterServiceDeletePlayerProcedure:
			deletePlayerHandler.ServeHTTP(w, r)
		case RosterServiceTogglePlayerStatusProcedure:
			togglePlayerStatusHandler.ServeHTTP(w, r)
		case RosterServicePromotePlayerProcedure:
			promotePlayerHandler.ServeHTTP(w, r)
		case RosterServiceDemotePlayerProcedure:
			demotePlayerHandler.ServeHTTP(w, r)
		case RosterServiceUpdateRatingProcedure:
			updateRatingHandler.ServeHTTP(w, r)
		case RosterServiceSearchPlayersProcedure:
			searchPlayersHandler.ServeHTTP(w, r)
		case RosterServiceGenerateAvatarProcedure:
			generateAvatarHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// RosterServiceClient is a client for the RosterService.
type RosterServiceClient interface {
	ListPlayers(context.Context, *connect.Request[api.ListPlayersRequest]) (*connect.Response[api.ListPlayersResponse], error)
	SavePlayer(context.Context, *connect.Request[api.SavePlayerRequest]) (*connect.Response[api.SavePlayerResponse], error)
	DeletePlayer(context.Context, *connect.Request[api.DeletePlayerRequest]) (*connect.Response[api.DeletePlayerResponse], error)
	TogglePlayerStatus(context.Context, *connect.Request[api.TogglePlayerStatusRequest]) (*connect.Response[api.TogglePlayerStatusResponse], error)
	PromotePlayer(context.Context, *connect.Request[api.PromotePlayerRequest]) (*connect.Response[api.PromotePlayerResponse], error)
	DemotePlayer(context.Context, *connect.Request[api.DemotePlayerRequest]) (*connect.Response[api.DemotePlayerResponse], error)
	UpdateRating(context.Context, *connect.Request[api.UpdateRatingRequest]) (*connect.Response[api.UpdateRatingResponse], error)
	SearchPlayers(context.Context, *connect.Request[api.SearchPlayersRequest]) (*connect.Response[api.SearchPlayersResponse], error)
	GenerateAvatar(context.Context, *connect.Request[api.GenerateAvatarRequest]) (*connect.Response[api.GenerateAvatarResponse], error)
}

// NewRosterServiceClient constructs a client for the RosterService. baseURL is the
// server root, for example http://localhost:8080.
func NewRosterServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RosterServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withCodec(opts, connect.ClientOption(connect.WithCodec(Codec{})))
	return &rosterServiceClient{
		listPlayers:        connect.NewClient[api.ListPlayersRequest, api.ListPlayersResponse](httpClient, baseURL+RosterServiceListPlayersProcedure, opts...),
		savePlayer:         connect.NewClient[api.SavePlayerRequest, api.SavePlayerResponse](httpClient, baseURL+RosterServiceSavePlayerProcedure, opts...),
		deletePlayer:       connect.NewClient[api.DeletePlayerRequest, api.DeletePlayerResponse](httpClient, baseURL+RosterServiceDeletePlayerProcedure, opts...),
		togglePlayerStatus: connect.NewClient[api.TogglePlayerStatusRequest, api.TogglePlayerStatusResponse](httpClient, baseURL+RosterServiceTogglePlayerStatusProcedure, opts...),
		promotePlayer:      connect.NewClient[api.PromotePlayerRequest, api.PromotePlayerResponse](httpClient, baseURL+RosterServicePromotePlayerProcedure, opts...),
		demotePlayer:       connect.NewClient[api.DemotePlayerRequest, api.DemotePlayerResponse](httpClient, baseURL+RosterServiceDemotePlayerProcedure, opts...),
		updateRating:       connect.NewClient[api.UpdateRatingRequest, api.UpdateRatingResponse](httpClient, baseURL+RosterServiceUpdateRatingProcedure, opts...),
		searchPlayers:      connect.NewClient[api.SearchPlayersRequest, api.SearchPlayersResponse](httpClient, baseURL+RosterServiceSearchPlayersProcedure, opts...),
		generateAvatar:     connect.NewClient[api.GenerateAvatarRequest, api.GenerateAvatarResponse](httpClient, baseURL+RosterServiceGenerateAvatarProcedure, opts...),
	}
}

type rosterServiceClient struct {
	listPlayers        *connect.Client[api.ListPlayersRequest, api.ListPlayersResponse]
	savePlayer         *connect.Client[api.SavePlayerRequest, api.SavePlayerResponse]
	deletePlayer       *connect.Client[api.DeletePlayerRequest, api.DeletePlayerResponse]
	togglePlayerStatus *connect.Client[api.TogglePlayerStatusRequest, api.TogglePlayerStatusResponse]
	promotePlayer      *connect.Client[api.PromotePlayerRequest, api.PromotePlayerResponse]
	demotePlayer       *connect.Client[api.DemotePlayerRequest, api.DemotePlayerResponse]
	updateRating       *connect.Client[api.UpdateRatingRequest, api.UpdateRatingResponse]
	searchPlayers      *connect.Client[api.SearchPlayersRequest, api.SearchPlayersResponse]
	generateAvatar     *connect.Client[api.GenerateAvatarRequest, api.GenerateAvatarResponse]
}

func (c *rosterServiceClient) ListPlayers(ctx context.Context, req *connect.Request[api.ListPlayersRequest]) (*connect.Response[api.ListPlayersResponse], error) {
	return c.listPlayers.CallUnary(ctx, req)
}

func (c *rosterServiceClient) SavePlayer(ctx context.Context, req *connect.Request[api.SavePlayerRequest]) (*connect.Response[api.SavePlayerResponse], error) {
	return c.savePlayer.CallUnary(ctx, req)
}

func (c *rosterServiceClient) DeletePlayer(ctx context.Context, req *connect.Request[api.DeletePlayerRequest]) (*connect.Response[api.DeletePlayerResponse], error) {
	return c.deletePlayer.CallUnary(ctx, req)
}

func (c *rosterServiceClient) TogglePlayerStatus(ctx context.Context, req *connect.Request[api.TogglePlayerStatusRequest]) (*connect.Response[api.TogglePlayerStatusResponse], error) {
	return c.togglePlayerStatus.CallUnary(ctx, req)
}

func (c *rosterServiceClient) PromotePlayer(ctx context.Context, req *connect.Request[api.PromotePlayerRequest]) (*connect.Response[api.PromotePlayerResponse], error) {
	return c.promotePlayer.CallUnary(ctx, req)
}

func (c *rosterServiceClient) DemotePlayer(ctx context.Context, req *connect.Request[api.DemotePlayerRequest]) (*connect.Response[api.DemotePlayerResponse], error) {
	return c.demotePlayer.CallUnary(ctx, req)
}

func (c *rosterServiceClient) UpdateRating(ctx context.Context, req *connect.Request[api.UpdateRatingRequest]) (*connect.Response[api.UpdateRatingResponse], error) {
	return c.updateRating.CallUnary(ctx, req)
}

func (c *rosterServiceClient) SearchPlayers(ctx context.Context, req *connect.Request[api.SearchPlayersRequest]) (*connect.Response[api.SearchPlayersResponse], error) {
	return c.searchPlayers.CallUnary(ctx, req)
}

func (c *rosterServiceClient) GenerateAvatar(ctx context.Context, req *connect.Request[api.GenerateAvatarRequest]) (*connect.Response[api.GenerateAvatarResponse], error) {
	return c.generateAvatar.CallUnary(ctx, req)
}
