package api

type ListSharesRequest struct{}

type ListSharesResponse struct {
	Shares []*BillShare `json:"shares"`
}

type CreateShareRequest struct {
	BillID     string `json:"billId" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Permission string `json:"permission" validate:"required,oneof=view edit"`
}

type CreateShareResponse struct {
	Share *BillShare `json:"share"`
}

type UpdateShareRequest struct {
	ShareID    string `json:"shareId" validate:"required"`
	Permission string `json:"permission" validate:"required,oneof=view edit"`
}

type UpdateShareResponse struct {
	Share *BillShare `json:"share"`
}

type DeleteShareRequest struct {
	ShareID string `json:"shareId" validate:"required"`
}

type DeleteShareResponse struct {
	DeletedShareID string `json:"deletedShareId"`
}
