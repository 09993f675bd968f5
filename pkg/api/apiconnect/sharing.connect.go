package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/pkg/api"
)

// SharingServiceName is the fully-qualified name of the SharingService.
const SharingServiceName = "fintrack.v1.SharingService"

// Procedure paths, as seen in the request URL.
const (
	SharingServiceListSharesProcedure  = "/fintrack.v1.SharingService/ListShares"
	SharingServiceCreateShareProcedure = "/fintrack.v1.SharingService/CreateShare"
	SharingServiceUpdateShareProcedure = "/fintrack.v1.SharingService/UpdateShare"
	SharingServiceDeleteShareProcedure = "/fintrack.v1.SharingService/DeleteShare"
)

// SharingServiceHandler is implemented by the server.
// SharingService grants and revokes access to bills.
type SharingServiceHandler interface {
	ListShares(context.Context, *connect.Request[api.ListSharesRequest]) (*connect.Response[api.ListSharesResponse], error)
	CreateShare(context.Context, *connect.Request[api.CreateShareRequest]) (*connect.Response[api.CreateShareResponse], error)
	UpdateShare(context.Context, *connect.Request[api.UpdateShareRequest]) (*connect.Response[api.UpdateShareResponse], error)
	DeleteShare(context.Context, *connect.Request[api.DeleteShareRequest]) (*connect.Response[api.DeleteShareResponse], error)
}

// NewSharingServiceHandler builds an HTTP handler for svc. It returns the path to mount it on.
func NewSharingServiceHandler(svc SharingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(SharingServiceListSharesProcedure, connect.NewUnaryHandler(SharingServiceListSharesProcedure, svc.ListShares, opts...))
	mux.Handle(SharingServiceCreateShareProcedure, connect.NewUnaryHandler(SharingServiceCreateShareProcedure, svc.CreateShare, opts...))
	mux.Handle(SharingServiceUpdateShareProcedure, connect.NewUnaryHandler(SharingServiceUpdateShareProcedure, svc.UpdateShare, opts...))
	mux.Handle(SharingServiceDeleteShareProcedure, connect.NewUnaryHandler(SharingServiceDeleteShareProcedure, svc.DeleteShare, opts...))
	return "/" + SharingServiceName + "/", mux
}

// SharingServiceClient is a client for the SharingService.
type SharingServiceClient interface {
	ListShares(context.Context, *connect.Request[api.ListSharesRequest]) (*connect.Response[api.ListSharesResponse], error)
	CreateShare(context.Context, *connect.Request[api.CreateShareRequest]) (*connect.Response[api.CreateShareResponse], error)
	UpdateShare(context.Context, *connect.Request[api.UpdateShareRequest]) (*connect.Response[api.UpdateShareResponse], error)
	DeleteShare(context.Context, *connect.Request[api.DeleteShareRequest]) (*connect.Response[api.DeleteShareResponse], error)
}

type sharingServiceClient struct {
	listShares  *connect.Client[api.ListSharesRequest, api.ListSharesResponse]
	createShare *connect.Client[api.CreateShareRequest, api.CreateShareResponse]
	updateShare *connect.Client[api.UpdateShareRequest, api.UpdateShareResponse]
	deleteShare *connect.Client[api.DeleteShareRequest, api.DeleteShareResponse]
}

// NewSharingServiceClient returns a client for the SharingService at baseURL,
// for example http://localhost:8080.
func NewSharingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SharingServiceClient {
	opts = clientOptions(opts)
	return &sharingServiceClient{
		listShares:  connect.NewClient[api.ListSharesRequest, api.ListSharesResponse](httpClient, baseURL+SharingServiceListSharesProcedure, opts...),
		createShare: connect.NewClient[api.CreateShareRequest, api.CreateShareResponse](httpClient, baseURL+SharingServiceCreateShareProcedure, opts...),
		updateShare: connect.NewClient[api.UpdateShareRequest, api.UpdateShareResponse](httpClient, baseURL+SharingServiceUpdateShareProcedure, opts...),
		deleteShare: connect.NewClient[api.DeleteShareRequest, api.DeleteShareResponse](httpClient, baseURL+SharingServiceDeleteShareProcedure, opts...),
	}
}

func (c *sharingServiceClient) ListShares(ctx context.Context, req *connect.Request[api.ListSharesRequest]) (*connect.Response[api.ListSharesResponse], error) {
	return c.listShares.CallUnary(ctx, req)
}

func (c *sharingServiceClient) CreateShare(ctx context.Context, req *connect.Request[api.CreateShareRequest]) (*connect.Response[api.CreateShareResponse], error) {
	return c.createShare.CallUnary(ctx, req)
}

func (c *sharingServiceClient) UpdateShare(ctx context.Context, req *connect.Request[api.UpdateShareRequest]) (*connect.Response[api.UpdateShareResponse], error) {
	return c.updateShare.CallUnary(ctx, req)
}

func (c *sharingServiceClient) DeleteShare(ctx context.Context, req *connect.Request[api.DeleteShareRequest]) (*connect.Response[api.DeleteShareResponse], error) {
	return c.deleteShare.CallUnary(ctx, req)
}

// UnimplementedSharingServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSharingServiceHandler struct{}

func (UnimplementedSharingServiceHandler) ListShares(context.Context, *connect.Request[api.ListSharesRequest]) (*connect.Response[api.ListSharesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.SharingService.ListShares is not implemented"))
}

func (UnimplementedSharingServiceHandler) CreateShare(context.Context, *connect.Request[api.CreateShareRequest]) (*connect.Response[api.CreateShareResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.SharingService.CreateShare is not implemented"))
}

func (UnimplementedSharingServiceHandler) UpdateShare(context.Context, *connect.Request[api.UpdateShareRequest]) (*connect.Response[api.UpdateShareResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.SharingService.UpdateShare is not implemented"))
}

func (UnimplementedSharingServiceHandler) DeleteShare(context.Context, *connect.Request[api.DeleteShareRequest]) (*connect.Response[api.DeleteShareResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.SharingService.DeleteShare is not implemented"))
}
