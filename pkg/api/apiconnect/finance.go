package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/futmanager/pkg/api"
)

// FinanceServiceName is the fully-qualified name of the FinanceService.
const FinanceServiceName = "futmanager.v1.FinanceService"

// Procedure paths of the FinanceService.
const (
	FinanceServiceGetMonthlyReportProcedure = "/futmanager.v1.FinanceService/GetMonthlyReport"
	FinanceServiceTogglePaymentProcedure    = "/futmanager.v1.FinanceService/TogglePayment"
	FinanceServiceGetSettingsProcedure      = "/futmanager.v1.FinanceService/GetSettings"
	FinanceServiceUpdateSettingsProcedure   = "/futmanager.v1.FinanceService/UpdateSettings"
)

// FinanceServiceHandler is implemented by the server side of the FinanceService.
type FinanceServiceHandler interface {
	GetMonthlyReport(context.Context, *connect.Request[api.GetMonthlyReportRequest]) (*connect.Response[api.GetMonthlyReportResponse], error)
	TogglePayment(context.Context, *connect.Request[api.TogglePaymentRequest]) (*connect.Response[api.TogglePaymentResponse], error)
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error)
}

// NewFinanceServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewFinanceServiceHandler(svc FinanceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(Codec{})))
	getMonthlyReportHandler := connect.NewUnaryHandler(FinanceServiceGetMonthlyReportProcedure, svc.GetMonthlyReport, opts...)
	togglePaymentHandler := connect.NewUnaryHandler(FinanceServiceTogglePaymentProcedure, svc.TogglePayment, opts...)
	getSettingsHandler := connect.NewUnaryHandler(FinanceServiceGetSettingsProcedure, svc.GetSettings, opts...)
	updateSettingsHandler := connect.NewUnaryHandler(FinanceServiceUpdateSettingsProcedure, svc.UpdateSettings, opts...)
	return "/" + FinanceServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case FinanceServiceGetMonthlyReportProcedure:
			getMonthlyReportHandler.ServeHTTP(w, r)
		case FinanceServiceTogglePaymentProcedure:
			togglePaymentHandler.ServeHTTP(w, r)
		case FinanceServiceGetSettingsProcedure:
			getSettingsHandler.ServeHTTP(w, r)
		case FinanceServiceUpdateSettingsProcedure:
			updateSettingsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// FinanceServiceClient is a client for the FinanceService.
type FinanceServiceClient interface {
	GetMonthlyReport(context.Context, *connect.Request[api.GetMonthlyReportRequest]) (*connect.Response[api.GetMonthlyReportResponse], error)
	TogglePayment(context.Context, *connect.Request[api.TogglePaymentRequest]) (*connect.Response[api.TogglePaymentResponse], error)
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error)
}

// NewFinanceServiceClient constructs a client for the FinanceService. baseURL is the
// server root, for example http://localhost:8080.
func NewFinanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FinanceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withCodec(opts, connect.ClientOption(connect.WithCodec(Codec{})))
	return &financeServiceClient{
		getMonthlyReport: connect.NewClient[api.GetMonthlyReportRequest, api.GetMonthlyReportResponse](httpClient, baseURL+FinanceServiceGetMonthlyReportProcedure, opts...),
		togglePayment:    connect.NewClient[api.TogglePaymentRequest, api.TogglePaymentResponse](httpClient, baseURL+FinanceServiceTogglePaymentProcedure, opts...),
		getSettings:      connect.NewClient[api.GetSettingsRequest, api.GetSettingsResponse](httpClient, baseURL+FinanceServiceGetSettingsProcedure, opts...),
		updateSettings:   connect.NewClient[api.UpdateSettingsRequest, api.UpdateSettingsResponse](httpClient, baseURL+FinanceServiceUpdateSettingsProcedure, opts...),
	}
}

type financeServiceClient struct {
	getMonthlyReport *connect.Client[api.GetMonthlyReportRequest, api.GetMonthlyReportResponse]
	togglePayment    *connect.Client[api.TogglePaymentRequest, api.TogglePaymentResponse]
	getSettings      *connect.Client[api.GetSettingsRequest, api.GetSettingsResponse]
	updateSettings   *connect.Client[api.UpdateSettingsRequest, api.UpdateSettingsResponse]
}

func (c *financeServiceClient) GetMonthlyReport(ctx context.Context, req *connect.Request[api.GetMonthlyReportRequest]) (*connect.Response[api.GetMonthlyReportResponse], error) {
	return c.getMonthlyReport.CallUnary(ctx, req)
}

func (c *financeServiceClient) TogglePayment(ctx context.Context, req *connect.Request[api.TogglePaymentRequest]) (*connect.Response[api.TogglePaymentResponse], error) {
	return c.togglePayment.CallUnary(ctx, req)
}

func (c *financeServiceClient) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	return c.getSettings.CallUnary(ctx, req)
}

func (c *financeServiceClient) UpdateSettings(ctx context.Context, req *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	return c.updateSettings.CallUnary(ctx, req)
}
