package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/auth"
	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/middleware"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
	"github.com/mmynk/fintrack/internal/storage/sqlite"
	"github.com/mmynk/fintrack/pkg/api"
	"github.com/mmynk/fintrack/pkg/api/apiconnect"
)

var testSeeds = []ledger.CategoryTemplate{
	{Name: "Salary", Type: models.Income, Icon: "dollar-sign", Color: "#10B981"},
	{Name: "Groceries", Type: models.Expense, Icon: "shopping-cart", Color: "#EF4444"},
}

type testClients struct {
	auth    apiconnect.AuthServiceClient
	ledger  apiconnect.LedgerServiceClient
	sharing apiconnect.SharingServiceClient
	assets  apiconnect.AssetServiceClient
}

// setupTestServer mounts every service on an httptest server backed by a
// fresh SQLite database, with the same interceptors the server uses.
func setupTestServer(t *testing.T, authOpts ...middleware.AuthOption) *testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	guard := storage.NewGuard(store)

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	users := NewUserStore(guard, testSeeds)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	observe := connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.MetricsInterceptor())
	public := []connect.HandlerOption{observe, connect.WithInterceptors(middleware.OptionalAuth(jwtManager, authOpts...))}
	private := []connect.HandlerOption{observe, connect.WithInterceptors(middleware.RequireAuth(jwtManager, authOpts...))}

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(
		NewAuthService(auth.NewPasswordAuthenticator(users), users, jwtManager, logger), public...))
	mux.Handle(apiconnect.NewLedgerServiceHandler(NewLedgerService(guard), private...))
	mux.Handle(apiconnect.NewSharingServiceHandler(NewSharingService(guard), private...))
	mux.Handle(apiconnect.NewAssetServiceHandler(NewAssetService(guard), private...))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		guard.Close()
	})

	return &testClients{
		auth:    apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		ledger:  apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		sharing: apiconnect.NewSharingServiceClient(http.DefaultClient, server.URL),
		assets:  apiconnect.NewAssetServiceClient(http.DefaultClient, server.URL),
	}
}

func withToken[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func register(t *testing.T, c *testClients, email string) (string, *api.User) {
	t.Helper()
	resp, err := c.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:    email,
		Password: "correct-horse",
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", email, err)
	}
	return resp.Msg.Token, resp.Msg.User
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

func assertAmount(t *testing.T, what string, got decimal.Decimal, want int64) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Errorf("expected %s %d, got %s", what, want, got)
	}
}

func findCategory(t *testing.T, categories []*api.Category, billID, typ string) *api.Category {
	t.Helper()
	for _, c := range categories {
		if c.BillID == billID && c.Type == typ {
			return c
		}
	}
	t.Fatalf("no %s category in bill %s", typ, billID)
	return nil
}

func TestRegisterSeedsPersonalBill(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	token, user := register(t, c, "alice@example.com")

	if user.Name != "alice" {
		t.Errorf("expected default name 'alice', got %q", user.Name)
	}

	bills, err := c.ledger.ListBills(ctx, withToken(token, &api.ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(bills.Msg.Bills) != 1 {
		t.Fatalf("expected 1 bill, got %d", len(bills.Msg.Bills))
	}
	bill := bills.Msg.Bills[0]
	if bill.Name != "Personal" || bill.Permission != "owner" {
		t.Errorf("expected owned Personal bill, got %q (%s)", bill.Name, bill.Permission)
	}

	cats, err := c.ledger.ListCategories(ctx, withToken(token, &api.ListCategoriesRequest{}))
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(cats.Msg.Categories) != len(testSeeds) {
		t.Fatalf("expected %d seed categories, got %d", len(testSeeds), len(cats.Msg.Categories))
	}
	for _, cat := range cats.Msg.Categories {
		if !cat.IsSeed || cat.BillID != bill.ID {
			t.Errorf("expected seed category in bill %s, got %+v", bill.ID, cat)
		}
	}
}

func TestAuthFlow(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	_, user := register(t, c, "alice@example.com")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Email:    "ALICE@example.com",
			Password: "another-password",
		}))
		assertCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Email:    "bob@example.com",
			Password: "short",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Email:    "not-an-email",
			Password: "correct-horse",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-password",
		}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("login and current user", func(t *testing.T) {
		login, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
			Email:    "alice@example.com",
			Password: "correct-horse",
		}))
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		me, err := c.auth.GetCurrentUser(ctx, withToken(login.Msg.Token, &api.GetCurrentUserRequest{}))
		if err != nil {
			t.Fatalf("GetCurrentUser failed: %v", err)
		}
		if me.Msg.User.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, me.Msg.User.ID)
		}
	})

	t.Run("current user without token", func(t *testing.T) {
		_, err := c.auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})
}

func TestLedgerRequiresAuth(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	_, user := register(t, c, "alice@example.com")

	_, err := c.ledger.ListBills(ctx, connect.NewRequest(&api.ListBillsRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = c.ledger.ListBills(ctx, withToken("garbage", &api.ListBillsRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	// The bare user header is ignored unless explicitly trusted.
	req := connect.NewRequest(&api.ListBillsRequest{})
	req.Header().Set(middleware.UserIDHeader, user.ID)
	_, err = c.ledger.ListBills(ctx, req)
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestTrustedUserHeader(t *testing.T) {
	c := setupTestServer(t, middleware.WithUserIDHeader(true))
	ctx := context.Background()
	_, user := register(t, c, "alice@example.com")

	req := connect.NewRequest(&api.ListBillsRequest{})
	req.Header().Set(middleware.UserIDHeader, user.ID)
	resp, err := c.ledger.ListBills(ctx, req)
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(resp.Msg.Bills) != 1 {
		t.Errorf("expected 1 bill, got %d", len(resp.Msg.Bills))
	}
}

// TestSharedBillReconciliation walks an owner and a viewer through the life
// of one linked transaction.
func TestSharedBillReconciliation(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	owner, _ := register(t, c, "alice@example.com")
	viewer, viewerUser := register(t, c, "bob@example.com")

	bills, err := c.ledger.ListBills(ctx, withToken(owner, &api.ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	billID := bills.Msg.Bills[0].ID

	cats, err := c.ledger.ListCategories(ctx, withToken(owner, &api.ListCategoriesRequest{}))
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	expenseCat := findCategory(t, cats.Msg.Categories, billID, "expense")
	incomeCat := findCategory(t, cats.Msg.Categories, billID, "income")

	asset, err := c.assets.CreateAsset(ctx, withToken(owner, &api.CreateAssetRequest{
		Name:    "Checking",
		Type:    "bank",
		Balance: decimal.NewFromInt(1000),
	}))
	if err != nil {
		t.Fatalf("CreateAsset failed: %v", err)
	}
	assetID := asset.Msg.Asset.ID

	created, err := c.ledger.CreateTransaction(ctx, withToken(owner, &api.CreateTransactionRequest{
		BillID:     billID,
		CategoryID: expenseCat.ID,
		Type:       "expense",
		Amount:     decimal.NewFromInt(200),
		Date:       "2024-01-15",
		AssetID:    assetID,
	}))
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	if created.Msg.UpdatedAsset == nil {
		t.Fatal("expected updated asset in response")
	}
	assertAmount(t, "balance after expense", created.Msg.UpdatedAsset.Balance, 800)
	txID := created.Msg.Transaction.ID

	income := "income"
	updated, err := c.ledger.UpdateTransaction(ctx, withToken(owner, &api.UpdateTransactionRequest{
		TransactionID: txID,
		Type:          &income,
		CategoryID:    &incomeCat.ID,
		Amount:        ptr(decimal.NewFromInt(50)),
	}))
	if err != nil {
		t.Fatalf("UpdateTransaction failed: %v", err)
	}
	if len(updated.Msg.UpdatedAssets) != 1 {
		t.Fatalf("expected 1 updated asset, got %d", len(updated.Msg.UpdatedAssets))
	}
	assertAmount(t, "balance after switch to income", updated.Msg.UpdatedAssets[0].Balance, 1050)

	share, err := c.sharing.CreateShare(ctx, withToken(owner, &api.CreateShareRequest{
		BillID:     billID,
		Email:      "bob@example.com",
		Permission: "view",
	}))
	if err != nil {
		t.Fatalf("CreateShare failed: %v", err)
	}
	if share.Msg.Share.SharedWithUserID != viewerUser.ID {
		t.Errorf("expected share with %s, got %s", viewerUser.ID, share.Msg.Share.SharedWithUserID)
	}

	viewerBills, err := c.ledger.ListBills(ctx, withToken(viewer, &api.ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills (viewer) failed: %v", err)
	}
	if len(viewerBills.Msg.Bills) != 2 {
		t.Fatalf("expected viewer to see 2 bills, got %d", len(viewerBills.Msg.Bills))
	}
	shared := viewerBills.Msg.Bills[1]
	if shared.ID != billID || shared.Permission != "view" {
		t.Errorf("expected shared bill %s with view, got %s with %s", billID, shared.ID, shared.Permission)
	}
	assertAmount(t, "shared bill income", shared.Totals.Income, 50)

	_, err = c.ledger.DeleteTransaction(ctx, withToken(viewer, &api.DeleteTransactionRequest{TransactionID: txID}))
	assertCode(t, err, connect.CodePermissionDenied)

	// The viewer cannot see the owner's asset at all.
	_, err = c.assets.UpdateAsset(ctx, withToken(viewer, &api.UpdateAssetRequest{
		AssetID: assetID,
		Name:    ptr("mine now"),
	}))
	assertCode(t, err, connect.CodeNotFound)

	deleted, err := c.ledger.DeleteTransaction(ctx, withToken(owner, &api.DeleteTransactionRequest{TransactionID: txID}))
	if err != nil {
		t.Fatalf("DeleteTransaction failed: %v", err)
	}
	if deleted.Msg.DeletedTransactionID != txID {
		t.Errorf("expected deleted id %s, got %s", txID, deleted.Msg.DeletedTransactionID)
	}
	assertAmount(t, "balance after delete", deleted.Msg.UpdatedAsset.Balance, 1000)

	audit, err := c.assets.AuditAssets(ctx, withToken(owner, &api.AuditAssetsRequest{}))
	if err != nil {
		t.Fatalf("AuditAssets failed: %v", err)
	}
	if len(audit.Msg.Discrepancies) != 0 {
		t.Errorf("expected no discrepancies, got %+v", audit.Msg.Discrepancies)
	}
}

func TestErrorCodes(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	owner, _ := register(t, c, "alice@example.com")
	register(t, c, "bob@example.com")

	bills, err := c.ledger.ListBills(ctx, withToken(owner, &api.ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	billID := bills.Msg.Bills[0].ID
	cats, err := c.ledger.ListCategories(ctx, withToken(owner, &api.ListCategoriesRequest{}))
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	expenseID := findCategory(t, cats.Msg.Categories, billID, "expense").ID

	tests := []struct {
		name string
		call func() error
		want connect.Code
	}{
		{
			name: "empty bill name",
			call: func() error {
				_, err := c.ledger.CreateBill(ctx, withToken(owner, &api.CreateBillRequest{}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "bad date format",
			call: func() error {
				_, err := c.ledger.CreateTransaction(ctx, withToken(owner, &api.CreateTransactionRequest{
					BillID:     billID,
					CategoryID: "c",
					Type:       "expense",
					Amount:     decimal.NewFromInt(1),
					Date:       "15/01/2024",
				}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "non-positive amount",
			call: func() error {
				_, err := c.ledger.CreateTransaction(ctx, withToken(owner, &api.CreateTransactionRequest{
					BillID:     billID,
					CategoryID: expenseID,
					Type:       "expense",
					Amount:     decimal.Zero,
					Date:       "2024-01-15",
				}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "unknown bill",
			call: func() error {
				_, err := c.ledger.ListTransactions(ctx, withToken(owner, &api.ListTransactionsRequest{BillID: "missing"}))
				return err
			},
			want: connect.CodeNotFound,
		},
		{
			name: "share with unknown email",
			call: func() error {
				_, err := c.sharing.CreateShare(ctx, withToken(owner, &api.CreateShareRequest{
					BillID:     billID,
					Email:      "nobody@example.com",
					Permission: "edit",
				}))
				return err
			},
			want: connect.CodeNotFound,
		},
		{
			name: "share grants owner",
			call: func() error {
				_, err := c.sharing.CreateShare(ctx, withToken(owner, &api.CreateShareRequest{
					BillID:     billID,
					Email:      "bob@example.com",
					Permission: "owner",
				}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "share with self",
			call: func() error {
				_, err := c.sharing.CreateShare(ctx, withToken(owner, &api.CreateShareRequest{
					BillID:     billID,
					Email:      "alice@example.com",
					Permission: "view",
				}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCode(t, tt.call(), tt.want)
		})
	}
}

func TestDuplicateShareConflicts(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	owner, _ := register(t, c, "alice@example.com")
	register(t, c, "bob@example.com")

	bills, err := c.ledger.ListBills(ctx, withToken(owner, &api.ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	req := &api.CreateShareRequest{BillID: bills.Msg.Bills[0].ID, Email: "bob@example.com", Permission: "view"}

	if _, err := c.sharing.CreateShare(ctx, withToken(owner, req)); err != nil {
		t.Fatalf("CreateShare failed: %v", err)
	}
	_, err = c.sharing.CreateShare(ctx, withToken(owner, req))
	assertCode(t, err, connect.CodeAlreadyExists)

	shares, err := c.sharing.ListShares(ctx, withToken(owner, &api.ListSharesRequest{}))
	if err != nil {
		t.Fatalf("ListShares failed: %v", err)
	}
	if len(shares.Msg.Shares) != 1 || shares.Msg.Shares[0].SharedWithUserEmail != "bob@example.com" {
		t.Errorf("expected one share with bob@example.com, got %+v", shares.Msg.Shares)
	}
}

func TestDeleteAssetUnlinks(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	owner, _ := register(t, c, "alice@example.com")

	bills, err := c.ledger.ListBills(ctx, withToken(owner, &api.ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	billID := bills.Msg.Bills[0].ID
	cats, err := c.ledger.ListCategories(ctx, withToken(owner, &api.ListCategoriesRequest{}))
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	cat := findCategory(t, cats.Msg.Categories, billID, "expense")

	asset, err := c.assets.CreateAsset(ctx, withToken(owner, &api.CreateAssetRequest{
		Name:    "Wallet",
		Balance: decimal.NewFromInt(100),
	}))
	if err != nil {
		t.Fatalf("CreateAsset failed: %v", err)
	}

	tx, err := c.ledger.CreateTransaction(ctx, withToken(owner, &api.CreateTransactionRequest{
		BillID:     billID,
		CategoryID: cat.ID,
		Type:       "expense",
		Amount:     decimal.RequireFromString("12.50"),
		Date:       "2024-02-01",
		AssetID:    asset.Msg.Asset.ID,
	}))
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	resp, err := c.assets.DeleteAsset(ctx, withToken(owner, &api.DeleteAssetRequest{AssetID: asset.Msg.Asset.ID}))
	if err != nil {
		t.Fatalf("DeleteAsset failed: %v", err)
	}
	if resp.Msg.UnlinkedTransactions != 1 {
		t.Errorf("expected 1 unlinked transaction, got %d", resp.Msg.UnlinkedTransactions)
	}

	list, err := c.ledger.ListTransactions(ctx, withToken(owner, &api.ListTransactionsRequest{BillID: billID}))
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(list.Msg.Transactions) != 1 || list.Msg.Transactions[0].ID != tx.Msg.Transaction.ID {
		t.Fatalf("expected the transaction to survive, got %+v", list.Msg.Transactions)
	}
	if list.Msg.Transactions[0].AssetID != "" {
		t.Errorf("expected transaction unlinked, got asset %s", list.Msg.Transactions[0].AssetID)
	}
}

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    connect.Code
		message string
	}{
		{"forbidden", ledger.ErrNotOwner, connect.CodePermissionDenied, ""},
		{"conflict", ledger.ErrCategoryInUse, connect.CodeAlreadyExists, ""},
		{"stale snapshot", fmt.Errorf("failed to save snapshot: %w", storage.ErrStaleSnapshot), connect.CodeAborted, storage.ErrStaleSnapshot.Error()},
		{"deadline", fmt.Errorf("failed to load snapshot: %w", context.DeadlineExceeded), connect.CodeDeadlineExceeded, ""},
		{"internal", errors.New("disk on fire"), connect.CodeInternal, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toConnectError("Op", tt.err)
			if got := connect.CodeOf(err); got != tt.want {
				t.Fatalf("expected code %v, got %v", tt.want, got)
			}
			var ce *connect.Error
			if !errors.As(err, &ce) {
				t.Fatalf("expected *connect.Error, got %T", err)
			}
			if tt.message != "" && ce.Message() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, ce.Message())
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
