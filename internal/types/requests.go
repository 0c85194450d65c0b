package types

// SearchRequest is the body of a recipe search call.
type SearchRequest struct {
	Query   string      `json:"query"`
	Filters FilterState `json:"filters"`
}

// SearchResponse wraps the merged recipe returned on success.
type SearchResponse struct {
	SearchID string  `json:"search_id"`
	Recipe   *Recipe `json:"recipe"`
}

// CredentialRequest is the body for saving the provider credential.
type CredentialRequest struct {
	Token string `json:"token" binding:"required"`
}

// CredentialStatus reports whether a credential is available and where it
// came from. The token itself is never echoed back.
type CredentialStatus struct {
	Configured bool   `json:"configured"`
	Source     string `json:"source,omitempty"` // "stored" or "environment"
}

// RelayMessage is one chat message forwarded by the relay endpoint.
type RelayMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RelayRequest is the body accepted by the relay endpoint. APIKey and Model
// are optional; the relay substitutes its configured defaults.
type RelayRequest struct {
	Messages []RelayMessage `json:"messages" binding:"required"`
	APIKey   string         `json:"api_key"`
	Model    string         `json:"model"`
}
