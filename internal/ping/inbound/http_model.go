package inbound

type PingResponse struct {
	Ping string `json:"ping"`
}
