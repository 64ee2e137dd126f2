package invitation

// ShowResponse echoes the requested invitation token.
type ShowResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

// MessageResponse is returned by the register and claim placeholders.
type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ValidateResponse reports whether a token is valid.
type ValidateResponse struct {
	OK    bool `json:"ok"`
	Valid bool `json:"valid"`
}

const (
	registerPlaceholder = "register placeholder"
	claimPlaceholder    = "claim placeholder"
)
