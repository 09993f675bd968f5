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

var _ apiconnect.AssetServiceHandler = (*AssetService)(nil)

// AssetService implements the Connect AssetService. Assets are private to
// the user who created them.
type AssetService struct {
	apiconnect.UnimplementedAssetServiceHandler
	guard     *storage.Guard
	validator *requestValidator
}

func NewAssetService(guard *storage.Guard) *AssetService {
	return &AssetService{guard: guard, validator: newRequestValidator()}
}

func (s *AssetService) ListAssets(ctx context.Context, req *connect.Request[api.ListAssetsRequest]) (*connect.Response[api.ListAssetsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListAssets request received", "user_id", userID)

	var out []*api.Asset
	err = s.guard.View(ctx, func(snap *models.Snapshot) error {
		assets := ledger.ListAssets(snap, userID)
		out = make([]*api.Asset, len(assets))
		for i := range assets {
			out[i] = toAPIAsset(&assets[i])
		}
		return nil
	})
	if err != nil {
		return nil, toConnectError("ListAssets", err)
	}

	return connect.NewResponse(&api.ListAssetsResponse{Assets: out}), nil
}

func (s *AssetService) CreateAsset(ctx context.Context, req *connect.Request[api.CreateAssetRequest]) (*connect.Response[api.CreateAssetResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateAsset request received", "user_id", userID, "name", req.Msg.Name)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	var asset *models.Asset
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		asset, err = ledger.CreateAsset(snap, userID, ledger.AssetInput{
			Name:    req.Msg.Name,
			Type:    req.Msg.Type,
			Balance: req.Msg.Balance,
		})
		return err
	})
	if err != nil {
		return nil, toConnectError("CreateAsset", err)
	}

	slog.Info("Asset created", "asset_id", asset.ID, "balance", asset.Balance.String())
	return connect.NewResponse(&api.CreateAssetResponse{Asset: toAPIAsset(asset)}), nil
}

// UpdateAsset renames an asset or corrects its balance. A correction keeps
// the balance reconcilable by moving the opening balance with it.
func (s *AssetService) UpdateAsset(ctx context.Context, req *connect.Request[api.UpdateAssetRequest]) (*connect.Response[api.UpdateAssetResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateAsset request received", "user_id", userID, "asset_id", req.Msg.AssetID)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	var asset *models.Asset
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		asset, err = ledger.UpdateAsset(snap, userID, req.Msg.AssetID, ledger.AssetPatch{
			Name:    req.Msg.Name,
			Type:    req.Msg.Type,
			Balance: req.Msg.Balance,
		})
		return err
	})
	if err != nil {
		return nil, toConnectError("UpdateAsset", err)
	}

	return connect.NewResponse(&api.UpdateAssetResponse{Asset: toAPIAsset(asset)}), nil
}

func (s *AssetService) DeleteAsset(ctx context.Context, req *connect.Request[api.DeleteAssetRequest]) (*connect.Response[api.DeleteAssetResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteAsset request received", "user_id", userID, "asset_id", req.Msg.AssetID)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	var unlinked int
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		unlinked, err = ledger.DeleteAsset(snap, userID, req.Msg.AssetID)
		return err
	})
	if err != nil {
		return nil, toConnectError("DeleteAsset", err)
	}

	slog.Info("Asset deleted", "asset_id", req.Msg.AssetID, "unlinked_transactions", unlinked)
	return connect.NewResponse(&api.DeleteAssetResponse{
		DeletedAssetID:       req.Msg.AssetID,
		UnlinkedTransactions: unlinked,
	}), nil
}

// AuditAssets reconciles the caller's assets against their linked
// transactions and reports every mismatch.
func (s *AssetService) AuditAssets(ctx context.Context, req *connect.Request[api.AuditAssetsRequest]) (*connect.Response[api.AuditAssetsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	out := []*api.Discrepancy{}
	err = s.guard.View(ctx, func(snap *models.Snapshot) error {
		for _, d := range ledger.Audit(snap) {
			if a := snap.Asset(d.AccountID); a != nil && a.UserID == userID {
				out = append(out, toAPIDiscrepancy(&d))
			}
		}
		return nil
	})
	if err != nil {
		return nil, toConnectError("AuditAssets", err)
	}

	if len(out) > 0 {
		slog.Warn("Asset balances out of sync", "user_id", userID, "count", len(out))
	}
	return connect.NewResponse(&api.AuditAssetsResponse{Discrepancies: out}), nil
}
