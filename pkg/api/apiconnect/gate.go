package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/futmanager/pkg/api"
)

// GateServiceName is the fully-qualified name of the GateService.
const GateServiceName = "futmanager.v1.GateService"

// Procedure paths of the GateService.
const (
	GateServiceUnlockProcedure = "/futmanager.v1.GateService/Unlock"
)

// GateServiceHandler is implemented by the server side of the GateService.
type GateServiceHandler interface {
	Unlock(context.Context, *connect.Request[api.UnlockRequest]) (*connect.Response[api.UnlockResponse], error)
}

// NewGateServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewGateServiceHandler(svc GateServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(Codec{})))
	unlockHandler := connect.NewUnaryHandler(GateServiceUnlockProcedure, svc.Unlock, opts...)
	return "/" + GateServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case GateServiceUnlockProcedure:
			unlockHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// GateServiceClient is a client for the GateService.
type GateServiceClient interface {
	Unlock(context.Context, *connect.Request[api.UnlockRequest]) (*connect.Response[api.UnlockResponse], error)
}

// NewGateServiceClient constructs a client for the GateService. baseURL is the
// server root, for example http://localhost:8080.
func NewGateServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GateServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withCodec(opts, connect.ClientOption(connect.WithCodec(Codec{})))
	return &gateServiceClient{
		unlock: connect.NewClient[api.UnlockRequest, api.UnlockResponse](httpClient, baseURL+GateServiceUnlockProcedure, opts...),
	}
}

type gateServiceClient struct {
	unlock *connect.Client[api.UnlockRequest, api.UnlockResponse]
}

func (c *gateServiceClient) Unlock(ctx context.Context, req *connect.Request[api.UnlockRequest]) (*connect.Response[api.UnlockResponse], error) {
	return c.unlock.CallUnary(ctx, req)
}
