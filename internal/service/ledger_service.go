package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
	"github.com/mmynk/fintrack/pkg/api"
	"github.com/mmynk/fintrack/pkg/api/apiconnect"
)

var _ apiconnect.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService: bills, their
// transactions and categories.
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler
	guard     *storage.Guard
	validator *requestValidator
}

// NewLedgerService creates a new LedgerService over the guarded store.
func NewLedgerService(guard *storage.Guard) *LedgerService {
	return &LedgerService{guard: guard, validator: newRequestValidator()}
}

// ListBills returns the caller's own bills followed by bills shared with them.
func (s *LedgerService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListBills request received", "user_id", userID)

	var bills []*api.Bill
	err = s.guard.View(ctx, func(snap *models.Snapshot) error {
		views := ledger.ListBills(snap, userID)
		bills = make([]*api.Bill, len(views))
		for i := range views {
			bills[i] = toAPIBill(&views[i])
		}
		return nil
	})
	if err != nil {
		return nil, toConnectError("ListBills", err)
	}

	slog.Info("ListBills successful", "user_id", userID, "count", len(bills))
	return connect.NewResponse(&api.ListBillsResponse{Bills: bills}), nil
}

func (s *LedgerService) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateBill request received", "user_id", userID, "name", req.Msg.Name)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	var bill *models.Bill
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		bill, err = ledger.CreateBill(snap, userID, req.Msg.Name, req.Msg.Description)
		return err
	})
	if err != nil {
		return nil, toConnectError("CreateBill", err)
	}

	slog.Info("Bill created", "bill_id", bill.ID)
	return connect.NewResponse(&api.CreateBillResponse{
		Bill: toAPIBill(&ledger.BillView{Bill: *bill, Permission: models.PermissionOwner}),
	}), nil
}

func (s *LedgerService) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateBill request received", "user_id", userID, "bill_id", req.Msg.BillID)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	var view *ledger.BillView
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		view, err = ledger.UpdateBill(snap, userID, req.Msg.BillID, ledger.BillPatch{
			Name:        req.Msg.Name,
			Description: req.Msg.Description,
		})
		return err
	})
	if err != nil {
		return nil, toConnectError("UpdateBill", err)
	}

	return connect.NewResponse(&api.UpdateBillResponse{Bill: toAPIBill(view)}), nil
}

// DeleteBill removes a bill with its transactions, shares and categories.
// Asset balances are left as they are.
func (s *LedgerService) DeleteBill(ctx context.Context, req *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteBill request received", "user_id", userID, "bill_id", req.Msg.BillID)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		return ledger.DeleteBill(snap, userID, req.Msg.BillID)
	})
	if err != nil {
		return nil, toConnectError("DeleteBill", err)
	}

	slog.Info("Bill deleted", "bill_id", req.Msg.BillID)
	return connect.NewResponse(&api.DeleteBillResponse{DeletedBillID: req.Msg.BillID}), nil
}

func (s *LedgerService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListTransactions request received", "user_id", userID, "bill_id", req.Msg.BillID)

	var out []*api.Transaction
	err = s.guard.View(ctx, func(snap *models.Snapshot) error {
		txs, err := ledger.ListTransactions(snap, userID, req.Msg.BillID)
		if err != nil {
			return err
		}
		out = make([]*api.Transaction, len(txs))
		for i := range txs {
			out[i] = toAPITransaction(&txs[i])
		}
		return nil
	})
	if err != nil {
		return nil, toConnectError("ListTransactions", err)
	}

	return connect.NewResponse(&api.ListTransactionsResponse{Transactions: out}), nil
}

// CreateTransaction records a transaction and applies it to the linked asset, if any.
func (s *LedgerService) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateTransaction request received",
		"user_id", userID,
		"bill_id", req.Msg.BillID,
		"type", req.Msg.Type,
		"asset_id", req.Msg.AssetID,
	)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	var result *ledger.CreateResult
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		result, err = ledger.CreateTransaction(snap, userID, ledger.TransactionInput{
			BillID:     req.Msg.BillID,
			CategoryID: req.Msg.CategoryID,
			Type:       models.TransactionType(req.Msg.Type),
			Amount:     req.Msg.Amount,
			Date:       req.Msg.Date,
			Notes:      req.Msg.Notes,
			AssetID:    req.Msg.AssetID,
		})
		return err
	})
	if err != nil {
		return nil, toConnectError("CreateTransaction", err)
	}

	slog.Info("Transaction created", "transaction_id", result.Transaction.ID)
	return connect.NewResponse(&api.CreateTransactionResponse{
		Transaction:  toAPITransaction(&result.Transaction),
		UpdatedAsset: toAPIAsset(result.UpdatedAsset),
	}), nil
}

// UpdateTransaction reverts the transaction's old effect on its asset and
// applies the new one. Every asset whose balance moved is returned.
func (s *LedgerService) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateTransaction request received", "user_id", userID, "transaction_id", req.Msg.TransactionID)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	patch := ledger.TransactionPatch{
		BillID:     req.Msg.BillID,
		CategoryID: req.Msg.CategoryID,
		Amount:     req.Msg.Amount,
		Date:       req.Msg.Date,
		Notes:      req.Msg.Notes,
		AssetID:    req.Msg.AssetID,
	}
	if req.Msg.Type != nil {
		typ := models.TransactionType(*req.Msg.Type)
		patch.Type = &typ
	}

	var result *ledger.UpdateResult
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		result, err = ledger.UpdateTransaction(snap, userID, req.Msg.TransactionID, patch)
		return err
	})
	if err != nil {
		return nil, toConnectError("UpdateTransaction", err)
	}

	assets := make([]*api.Asset, len(result.UpdatedAssets))
	for i := range result.UpdatedAssets {
		assets[i] = toAPIAsset(&result.UpdatedAssets[i])
	}

	slog.Info("Transaction updated", "transaction_id", result.Transaction.ID, "assets_updated", len(assets))
	return connect.NewResponse(&api.UpdateTransactionResponse{
		Transaction:   toAPITransaction(&result.Transaction),
		UpdatedAssets: assets,
	}), nil
}

func (s *LedgerService) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteTransaction request received", "user_id", userID, "transaction_id", req.Msg.TransactionID)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	var result *ledger.DeleteResult
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		result, err = ledger.DeleteTransaction(snap, userID, req.Msg.TransactionID)
		return err
	})
	if err != nil {
		return nil, toConnectError("DeleteTransaction", err)
	}

	slog.Info("Transaction deleted", "transaction_id", result.DeletedID)
	return connect.NewResponse(&api.DeleteTransactionResponse{
		DeletedTransactionID: result.DeletedID,
		UpdatedAsset:         toAPIAsset(result.UpdatedAsset),
	}), nil
}

func (s *LedgerService) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	var out []*api.Category
	err = s.guard.View(ctx, func(snap *models.Snapshot) error {
		categories := ledger.ListCategories(snap, userID)
		out = make([]*api.Category, len(categories))
		for i := range categories {
			out[i] = toAPICategory(&categories[i])
		}
		return nil
	})
	if err != nil {
		return nil, toConnectError("ListCategories", err)
	}

	return connect.NewResponse(&api.ListCategoriesResponse{Categories: out}), nil
}

func (s *LedgerService) CreateCategory(ctx context.Context, req *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateCategory request received", "user_id", userID, "bill_id", req.Msg.BillID, "name", req.Msg.Name)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	var category *models.Category
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		category, err = ledger.CreateCategory(snap, userID, ledger.CategoryInput{
			BillID:   req.Msg.BillID,
			Name:     req.Msg.Name,
			Type:     models.TransactionType(req.Msg.Type),
			Icon:     req.Msg.Icon,
			Color:    req.Msg.Color,
			ParentID: req.Msg.ParentID,
		})
		return err
	})
	if err != nil {
		return nil, toConnectError("CreateCategory", err)
	}

	slog.Info("Category created", "category_id", category.ID)
	return connect.NewResponse(&api.CreateCategoryResponse{Category: toAPICategory(category)}), nil
}

func (s *LedgerService) UpdateCategory(ctx context.Context, req *connect.Request[api.UpdateCategoryRequest]) (*connect.Response[api.UpdateCategoryResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateCategory request received", "user_id", userID, "category_id", req.Msg.CategoryID)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	patch := ledger.CategoryPatch{
		Name:     req.Msg.Name,
		Icon:     req.Msg.Icon,
		Color:    req.Msg.Color,
		ParentID: req.Msg.ParentID,
	}
	if req.Msg.Type != nil {
		typ := models.TransactionType(*req.Msg.Type)
		patch.Type = &typ
	}

	var category *models.Category
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		category, err = ledger.UpdateCategory(snap, userID, req.Msg.CategoryID, patch)
		return err
	})
	if err != nil {
		return nil, toConnectError("UpdateCategory", err)
	}

	return connect.NewResponse(&api.UpdateCategoryResponse{Category: toAPICategory(category)}), nil
}

func (s *LedgerService) DeleteCategory(ctx context.Context, req *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteCategory request received", "user_id", userID, "category_id", req.Msg.CategoryID)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		return ledger.DeleteCategory(snap, userID, req.Msg.CategoryID)
	})
	if err != nil {
		return nil, toConnectError("DeleteCategory", err)
	}

	return connect.NewResponse(&api.DeleteCategoryResponse{DeletedCategoryID: req.Msg.CategoryID}), nil
}
