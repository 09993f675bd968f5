package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService.
const LedgerServiceName = "fintrack.v1.LedgerService"

// Procedure paths, as seen in the request URL.
const (
	LedgerServiceListBillsProcedure         = "/fintrack.v1.LedgerService/ListBills"
	LedgerServiceCreateBillProcedure        = "/fintrack.v1.LedgerService/CreateBill"
	LedgerServiceUpdateBillProcedure        = "/fintrack.v1.LedgerService/UpdateBill"
	LedgerServiceDeleteBillProcedure        = "/fintrack.v1.LedgerService/DeleteBill"
	LedgerServiceListTransactionsProcedure  = "/fintrack.v1.LedgerService/ListTransactions"
	LedgerServiceCreateTransactionProcedure = "/fintrack.v1.LedgerService/CreateTransaction"
	LedgerServiceUpdateTransactionProcedure = "/fintrack.v1.LedgerService/UpdateTransaction"
	LedgerServiceDeleteTransactionProcedure = "/fintrack.v1.LedgerService/DeleteTransaction"
	LedgerServiceListCategoriesProcedure    = "/fintrack.v1.LedgerService/ListCategories"
	LedgerServiceCreateCategoryProcedure    = "/fintrack.v1.LedgerService/CreateCategory"
	LedgerServiceUpdateCategoryProcedure    = "/fintrack.v1.LedgerService/UpdateCategory"
	LedgerServiceDeleteCategoryProcedure    = "/fintrack.v1.LedgerService/DeleteCategory"
)

// LedgerServiceHandler is implemented by the server.
// LedgerService manages bills, their categories and transactions.
type LedgerServiceHandler interface {
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error)
	DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	UpdateTransaction(context.Context, *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error)
	UpdateCategory(context.Context, *connect.Request[api.UpdateCategoryRequest]) (*connect.Response[api.UpdateCategoryResponse], error)
	DeleteCategory(context.Context, *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler for svc. It returns the path to mount it on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(LedgerServiceListBillsProcedure, connect.NewUnaryHandler(LedgerServiceListBillsProcedure, svc.ListBills, opts...))
	mux.Handle(LedgerServiceCreateBillProcedure, connect.NewUnaryHandler(LedgerServiceCreateBillProcedure, svc.CreateBill, opts...))
	mux.Handle(LedgerServiceUpdateBillProcedure, connect.NewUnaryHandler(LedgerServiceUpdateBillProcedure, svc.UpdateBill, opts...))
	mux.Handle(LedgerServiceDeleteBillProcedure, connect.NewUnaryHandler(LedgerServiceDeleteBillProcedure, svc.DeleteBill, opts...))
	mux.Handle(LedgerServiceListTransactionsProcedure, connect.NewUnaryHandler(LedgerServiceListTransactionsProcedure, svc.ListTransactions, opts...))
	mux.Handle(LedgerServiceCreateTransactionProcedure, connect.NewUnaryHandler(LedgerServiceCreateTransactionProcedure, svc.CreateTransaction, opts...))
	mux.Handle(LedgerServiceUpdateTransactionProcedure, connect.NewUnaryHandler(LedgerServiceUpdateTransactionProcedure, svc.UpdateTransaction, opts...))
	mux.Handle(LedgerServiceDeleteTransactionProcedure, connect.NewUnaryHandler(LedgerServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts...))
	mux.Handle(LedgerServiceListCategoriesProcedure, connect.NewUnaryHandler(LedgerServiceListCategoriesProcedure, svc.ListCategories, opts...))
	mux.Handle(LedgerServiceCreateCategoryProcedure, connect.NewUnaryHandler(LedgerServiceCreateCategoryProcedure, svc.CreateCategory, opts...))
	mux.Handle(LedgerServiceUpdateCategoryProcedure, connect.NewUnaryHandler(LedgerServiceUpdateCategoryProcedure, svc.UpdateCategory, opts...))
	mux.Handle(LedgerServiceDeleteCategoryProcedure, connect.NewUnaryHandler(LedgerServiceDeleteCategoryProcedure, svc.DeleteCategory, opts...))
	return "/" + LedgerServiceName + "/", mux
}

// LedgerServiceClient is a client for the LedgerService.
type LedgerServiceClient interface {
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error)
	DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	UpdateTransaction(context.Context, *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error)
	UpdateCategory(context.Context, *connect.Request[api.UpdateCategoryRequest]) (*connect.Response[api.UpdateCategoryResponse], error)
	DeleteCategory(context.Context, *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error)
}

type ledgerServiceClient struct {
	listBills         *connect.Client[api.ListBillsRequest, api.ListBillsResponse]
	createBill        *connect.Client[api.CreateBillRequest, api.CreateBillResponse]
	updateBill        *connect.Client[api.UpdateBillRequest, api.UpdateBillResponse]
	deleteBill        *connect.Client[api.DeleteBillRequest, api.DeleteBillResponse]
	listTransactions  *connect.Client[api.ListTransactionsRequest, api.ListTransactionsResponse]
	createTransaction *connect.Client[api.CreateTransactionRequest, api.CreateTransactionResponse]
	updateTransaction *connect.Client[api.UpdateTransactionRequest, api.UpdateTransactionResponse]
	deleteTransaction *connect.Client[api.DeleteTransactionRequest, api.DeleteTransactionResponse]
	listCategories    *connect.Client[api.ListCategoriesRequest, api.ListCategoriesResponse]
	createCategory    *connect.Client[api.CreateCategoryRequest, api.CreateCategoryResponse]
	updateCategory    *connect.Client[api.UpdateCategoryRequest, api.UpdateCategoryResponse]
	deleteCategory    *connect.Client[api.DeleteCategoryRequest, api.DeleteCategoryResponse]
}

// NewLedgerServiceClient returns a client for the LedgerService at baseURL,
// for example http://localhost:8080.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	opts = clientOptions(opts)
	return &ledgerServiceClient{
		listBills:         connect.NewClient[api.ListBillsRequest, api.ListBillsResponse](httpClient, baseURL+LedgerServiceListBillsProcedure, opts...),
		createBill:        connect.NewClient[api.CreateBillRequest, api.CreateBillResponse](httpClient, baseURL+LedgerServiceCreateBillProcedure, opts...),
		updateBill:        connect.NewClient[api.UpdateBillRequest, api.UpdateBillResponse](httpClient, baseURL+LedgerServiceUpdateBillProcedure, opts...),
		deleteBill:        connect.NewClient[api.DeleteBillRequest, api.DeleteBillResponse](httpClient, baseURL+LedgerServiceDeleteBillProcedure, opts...),
		listTransactions:  connect.NewClient[api.ListTransactionsRequest, api.ListTransactionsResponse](httpClient, baseURL+LedgerServiceListTransactionsProcedure, opts...),
		createTransaction: connect.NewClient[api.CreateTransactionRequest, api.CreateTransactionResponse](httpClient, baseURL+LedgerServiceCreateTransactionProcedure, opts...),
		updateTransaction: connect.NewClient[api.UpdateTransactionRequest, api.UpdateTransactionResponse](httpClient, baseURL+LedgerServiceUpdateTransactionProcedure, opts...),
		deleteTransaction: connect.NewClient[api.DeleteTransactionRequest, api.DeleteTransactionResponse](httpClient, baseURL+LedgerServiceDeleteTransactionProcedure, opts...),
		listCategories:    connect.NewClient[api.ListCategoriesRequest, api.ListCategoriesResponse](httpClient, baseURL+LedgerServiceListCategoriesProcedure, opts...),
		createCategory:    connect.NewClient[api.CreateCategoryRequest, api.CreateCategoryResponse](httpClient, baseURL+LedgerServiceCreateCategoryProcedure, opts...),
		updateCategory:    connect.NewClient[api.UpdateCategoryRequest, api.UpdateCategoryResponse](httpClient, baseURL+LedgerServiceUpdateCategoryProcedure, opts...),
		deleteCategory:    connect.NewClient[api.DeleteCategoryRequest, api.DeleteCategoryResponse](httpClient, baseURL+LedgerServiceDeleteCategoryProcedure, opts...),
	}
}

func (c *ledgerServiceClient) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	return c.updateBill.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteBill(ctx context.Context, req *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	return c.deleteBill.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	return c.updateTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateCategory(ctx context.Context, req *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	return c.createCategory.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateCategory(ctx context.Context, req *connect.Request[api.UpdateCategoryRequest]) (*connect.Response[api.UpdateCategoryResponse], error) {
	return c.updateCategory.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteCategory(ctx context.Context, req *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	return c.deleteCategory.CallUnary(ctx, req)
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.ListBills is not implemented"))
}

func (UnimplementedLedgerServiceHandler) CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.CreateBill is not implemented"))
}

func (UnimplementedLedgerServiceHandler) UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.UpdateBill is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.DeleteBill is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.ListTransactions is not implemented"))
}

func (UnimplementedLedgerServiceHandler) CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.CreateTransaction is not implemented"))
}

func (UnimplementedLedgerServiceHandler) UpdateTransaction(context.Context, *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.UpdateTransaction is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.DeleteTransaction is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.ListCategories is not implemented"))
}

func (UnimplementedLedgerServiceHandler) CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.CreateCategory is not implemented"))
}

func (UnimplementedLedgerServiceHandler) UpdateCategory(context.Context, *connect.Request[api.UpdateCategoryRequest]) (*connect.Response[api.UpdateCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.UpdateCategory is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeleteCategory(context.Context, *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("fintrack.v1.LedgerService.DeleteCategory is not implemented"))
}
