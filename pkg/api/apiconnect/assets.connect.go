package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/pkg/api"
)

// AssetServiceName is the fully-qualified name of the AssetService.
const AssetServiceName = "fintrack.v1.AssetService"

// Procedure paths, as seen in the request URL.
const (
	AssetServiceListAssetsProcedure  = "/fintrack.v1.AssetService/ListAssets"
	AssetServiceCreateAssetProcedure = "/fintrack.v1.AssetService/CreateAsset"
	AssetServiceUpdateAssetProcedure = "/fintrack.v1.AssetService/UpdateAsset"
	AssetServiceDeleteAssetProcedure = "/fintrack.v1.AssetService/DeleteAsset"
	AssetServiceAuditAssetsProcedure = "/fintrack.v1.AssetService/AuditAssets"
)

// AssetServiceHandler is implemented by the server.
// AssetService manages the caller's assets.
type AssetServiceHandler interface {
	ListAssets(context.Context, *connect.Request[api.ListAssetsRequest]) (*connect.Response[api.ListAssetsResponse], error)
	CreateAsset(context.Context, *connect.Request[api.CreateAssetRequest]) (*connect.Response[api.CreateAssetResponse], error)
	UpdateAsset(context.Context, *connect.Request[api.UpdateAssetRequest]) (*connect.Response[api.UpdateAssetResponse], error)
	DeleteAsset(context.Context, *connect.Request[api.DeleteAssetRequest]) (*connect.Response[api.DeleteAssetResponse], error)
	AuditAssets(context.Context, *connect.Request[api.AuditAssetsRequest]) (*connect.Response[api.AuditAssetsResponse], error)
}

// NewAssetServiceHandler builds an HTTP handler for svc. It returns the path to mount it on.
func NewAssetServiceHandler(svc AssetServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(AssetServiceListAssetsProcedure, connect.NewUnaryHandler(AssetServiceListAssetsProcedure, svc.ListAssets, opts...))
	mux.Handle(AssetServiceCreateAssetProcedure, connect.NewUnaryHandler(AssetServiceCreateAssetProcedure, svc.CreateAsset, opts...))
	mux.Handle(AssetServiceUpdateAssetProcedure, connect.NewUnaryHandler(AssetServiceUpdateAssetProcedure, svc.UpdateAsset, opts...))
	mux.Handle(AssetServiceDeleteAssetProcedure, connect.NewUnaryHandler(AssetServiceDeleteAssetProcedure, svc.DeleteAsset, opts...))
	mux.Handle(AssetServiceAuditAssetsProcedure, connect.NewUnaryHandler(AssetServiceAuditAssetsProcedure, svc.AuditAssets, opts...))
	return "/" + AssetServiceName + "/", mux
}

// AssetServiceClient is a client for the AssetService.
type AssetServiceClient interface {
	ListAssets(context.Context, *connect.Request[api.ListAssetsRequest]) (*connect.Response[api.ListAssetsResponse], error)
	CreateAsset(context.Context, *connect.Request[api.CreateAssetRequest]) (*connect.Response[api.CreateAssetResponse], error)
	UpdateAsset(context.Context, *connect.Request[api.UpdateAssetRequest]) (*connect.Response[api.UpdateAssetResponse], error)
	DeleteAsset(context.Context, *connect.Request[api.DeleteAssetRequest]) (*connect.Response[api.DeleteAssetResponse], error)
	AuditAssets(context.Context, *connect.Request[api.AuditAssetsRequest]) (*connect.Response[api.AuditAssetsResponse], error)
}

type assetServiceClient struct {
	listAssets  *connect.Client[api.ListAssetsRequest, api.ListAssetsResponse]
	createAsset *connect.Client[api.CreateAssetRequest, api.CreateAssetResponse]
	updateAsset *connect.Client[api.UpdateAssetRequest, api.UpdateAssetResponse]
	deleteAsset *connect.Client[api.DeleteAssetRequest, api.DeleteAssetResponse]
	auditAssets *connect.Client[api.AuditAssetsRequest, api.AuditAssetsResponse]
}

// NewAssetServiceClient returns a client for the AssetService at baseURL,
// for example http://localhost:8080.
func NewAssetServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AssetServiceClient {
	opts = clientOptions(opts)
	return &assetServiceClient{
		listAssets:  connect.NewClient[api.ListAssetsRequest, api.ListAssetsResponse](httpClient, baseURL+AssetServiceListAssetsProcedure, opts...),
		createAsset: connect.NewClient[api.CreateAssetRequest, api.CreateAssetResponse](httpClient, baseURL+AssetServiceCreateAssetProcedure, opts...),
		updateAsset: connect.NewClient[api.UpdateAssetRequest, api.UpdateAssetResponse](httpClient, baseURL+AssetServiceUpdateAssetProcedure, opts...),
		deleteAsset: connect.NewClient[api.DeleteAssetRequest, api.DeleteAssetResponse](httpClient, baseURL+AssetServiceDeleteAssetProcedure, opts...),
		auditAssets: connect.NewClient[api.AuditAssetsRequest, api.AuditAssetsResponse](httpClient, baseURL+AssetServiceAuditAssetsProcedure, opts...),
	}
}

func (c *assetServiceClient) ListAssets(ctx context.Context, req *connect.Request[api.ListAssetsRequest]) (*connect.Response[api.ListAssetsResponse], error) {
	return c.listAssets.CallUnary(ctx, req)
}

func (c *assetServiceClient) CreateAsset(ctx context.Context, req *connect.Request[api.CreateAssetRequest]) (*connect.Response[api.CreateAssetResponse], error) {
	return c.createAsset.CallUnary(ctx, req)
}

func (c *assetServiceClient) UpdateAsset(ctx context.Context, req *connect.Request[api.UpdateAssetRequest]) (*connect.Response[api.UpdateAssetResponse], error) {
	return c.updateAsset.CallUnary(ctx, req)
}

func (c *assetServiceClient) DeleteAsset(ctx context.Context, req *connect.Request[api.DeleteAssetRequest]) (*connect.Response[api.DeleteAssetResponse], error) {
	return c.deleteAsset.CallUnary(ctx, req)
}

func (c *assetServiceClient) AuditAssets(ctx context.Context, req *connect.Request[api.AuditAssetsRequest]) (*connect.Response[api.AuditAssetsResponse], error) {
	return c.auditAssets.CallUnary(ctx, req)
}

// UnimplementedAssetServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAssetServiceHandler struct{}

func (UnimplementedAssetServiceHandler) ListAssets(context.Context, *connect.Request[api.ListAssetsRequest]) (*connect.Response[api.ListAssetsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.AssetService.ListAssets is not implemented"))
}

func (UnimplementedAssetServiceHandler) CreateAsset(context.Context, *connect.Request[api.CreateAssetRequest]) (*connect.Response[api.CreateAssetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.AssetService.CreateAsset is not implemented"))
}

func (UnimplementedAssetServiceHandler) UpdateAsset(context.Context, *connect.Request[api.UpdateAssetRequest]) (*connect.Response[api.UpdateAssetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.AssetService.UpdateAsset is not implemented"))
}

func (UnimplementedAssetServiceHandler) DeleteAsset(context.Context, *connect.Request[api.DeleteAssetRequest]) (*connect.Response[api.DeleteAssetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.AssetService.DeleteAsset is not implemented"))
}

func (UnimplementedAssetServiceHandler) AuditAssets(context.Context, *connect.Request[api.AuditAssetsRequest]) (*connect.Response[api.AuditAssetsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.AssetService.AuditAssets is not implemented"))
}
