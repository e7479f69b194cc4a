package inbound

type ItemResponse struct {
	Item int64 `json:"item"`
}
