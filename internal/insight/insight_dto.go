package insight

// RelayRequest is the raw proxy body. This endpoint predates the v1 envelope
// and keeps its original wire contract: {text} on success, {error} otherwise.
type RelayRequest struct {
	Model    string       `json:"model"`
	Contents string       `json:"contents"`
	Config   *RelayConfig `json:"config"`
}

type RelayConfig struct {
	SystemInstruction string   `json:"systemInstruction"`
	Temperature       *float32 `json:"temperature"`
}

type InsightResponse struct {
	Text string `json:"text"`
}
