package payload

// UpdateContentRequest is the gateway ingress body. Content is the raw
// serialized document; branch and message fall back to defaults when empty.
type UpdateContentRequest struct {
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	Path    string `json:"path"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	Message string `json:"message"`
}
