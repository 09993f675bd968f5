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

var _ apiconnect.SharingServiceHandler = (*SharingService)(nil)

// SharingService implements the Connect SharingService. Only a bill's owner
// manages its shares.
type SharingService struct {
	apiconnect.UnimplementedSharingServiceHandler
	guard     *storage.Guard
	validator *requestValidator
}

func NewSharingService(guard *storage.Guard) *SharingService {
	return &SharingService{guard: guard, validator: newRequestValidator()}
}

// ListShares returns the shares the caller has granted on their bills.
func (s *SharingService) ListShares(ctx context.Context, req *connect.Request[api.ListSharesRequest]) (*connect.Response[api.ListSharesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListShares request received", "user_id", userID)

	var out []*api.BillShare
	err = s.guard.View(ctx, func(snap *models.Snapshot) error {
		shares := ledger.ListShares(snap, userID)
		out = make([]*api.BillShare, len(shares))
		for i := range shares {
			out[i] = toAPIShare(&shares[i])
		}
		return nil
	})
	if err != nil {
		return nil, toConnectError("ListShares", err)
	}

	return connect.NewResponse(&api.ListSharesResponse{Shares: out}), nil
}

func (s *SharingService) CreateShare(ctx context.Context, req *connect.Request[api.CreateShareRequest]) (*connect.Response[api.CreateShareResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateShare request received",
		"user_id", userID,
		"bill_id", req.Msg.BillID,
		"permission", req.Msg.Permission,
	)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	var share *models.BillShare
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		share, err = ledger.CreateShare(snap, userID, req.Msg.BillID, req.Msg.Email, models.Permission(req.Msg.Permission))
		return err
	})
	if err != nil {
		return nil, toConnectError("CreateShare", err)
	}

	slog.Info("Bill shared", "share_id", share.ID, "bill_id", share.BillID, "shared_with", share.SharedWithUserID)
	return connect.NewResponse(&api.CreateShareResponse{Share: toAPIShare(share)}), nil
}

func (s *SharingService) UpdateShare(ctx context.Context, req *connect.Request[api.UpdateShareRequest]) (*connect.Response[api.UpdateShareResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateShare request received", "user_id", userID, "share_id", req.Msg.ShareID, "permission", req.Msg.Permission)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	var share *models.BillShare
	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		share, err = ledger.UpdateSharePermission(snap, userID, req.Msg.ShareID, models.Permission(req.Msg.Permission))
		return err
	})
	if err != nil {
		return nil, toConnectError("UpdateShare", err)
	}

	return connect.NewResponse(&api.UpdateShareResponse{Share: toAPIShare(share)}), nil
}

func (s *SharingService) DeleteShare(ctx context.Context, req *connect.Request[api.DeleteShareRequest]) (*connect.Response[api.DeleteShareResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteShare request received", "user_id", userID, "share_id", req.Msg.ShareID)

	if err := s.validator.check(req.Msg); err != nil {
		return nil, err
	}

	err = s.guard.Update(ctx, func(snap *models.Snapshot) error {
		return ledger.DeleteShare(snap, userID, req.Msg.ShareID)
	})
	if err != nil {
		return nil, toConnectError("DeleteShare", err)
	}

	slog.Info("Share revoked", "share_id", req.Msg.ShareID)
	return connect.NewResponse(&api.DeleteShareResponse{DeletedShareID: req.Msg.ShareID}), nil
}
