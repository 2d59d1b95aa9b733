package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/futmanager/pkg/api"
)

// EventServiceName is the fully-qualified name of the EventService.
const EventServiceName = "futmanager.v1.EventService"

// Procedure paths of the EventService.
const (
	EventServiceCreateEventProcedure = "/futmanager.v1.EventService/CreateEvent"
	EventServiceListEventsProcedure  = "/futmanager.v1.EventService/ListEvents"
	EventServiceDeleteEventProcedure = "/futmanager.v1.EventService/DeleteEvent"
)

// EventServiceHandler is implemented by the server side of the EventService.
type EventServiceHandler interface {
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error)
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error)
}

// NewEventServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewEventServiceHandler(svc EventServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(Codec{})))
	createEventHandler := connect.NewUnaryHandler(EventServiceCreateEventProcedure, svc.CreateEvent, opts...)
	listEventsHandler := connect.NewUnaryHandler(EventServiceListEventsProcedure, svc.ListEvents, opts...)
	deleteEventHandler := connect.NewUnaryHandler(EventServiceDeleteEventProcedure, svc.DeleteEvent, opts...)
	return "/" + EventServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case EventServiceCreateEventProcedure:
			createEventHandler.ServeHTTP(w, r)
		case EventServiceListEventsProcedure:
			listEventsHandler.ServeHTTP(w, r)
		case EventServiceDeleteEventProcedure:
			deleteEventHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// EventServiceClient is a client for the EventService.
type EventServiceClient interface {
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error)
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error)
}

// NewEventServiceClient constructs a client for the EventService. baseURL is the
// server root, for example http://localhost:8080.
func NewEventServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EventServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withCodec(opts, connect.ClientOption(connect.WithCodec(Codec{})))
	return &eventServiceClient{
		createEvent: connect.NewClient[api.CreateEventRequest, api.CreateEventResponse](httpClient, baseURL+EventServiceCreateEventProcedure, opts...),
		listEvents:  connect.NewClient[api.ListEventsRequest, api.ListEventsResponse](httpClient, baseURL+EventServiceListEventsProcedure, opts...),
		deleteEvent: connect.NewClient[api.DeleteEventRequest, api.DeleteEventResponse](httpClient, baseURL+EventServiceDeleteEventProcedure, opts...),
	}
}

type eventServiceClient struct {
	createEvent *connect.Client[api.CreateEventRequest, api.CreateEventResponse]
	listEvents  *connect.Client[api.ListEventsRequest, api.ListEventsResponse]
	deleteEvent *connect.Client[api.DeleteEventRequest, api.DeleteEventResponse]
}

func (c *eventServiceClient) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *eventServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}
