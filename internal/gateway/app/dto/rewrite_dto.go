package dto

// Источники результата переработки текста.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// RewriteRequest представляет запрос на переработку текста.
type RewriteRequest struct {
	Text string `json:"text" validate:"required,max=20000"`
	Mode string `json:"mode" validate:"omitempty,oneof=standard fluent creative academic simple"`
}

// RewriteResponse содержит переработанный текст и его источник.
type RewriteResponse struct {
	Text   string `json:"text"`
	Mode   string `json:"mode"`
	Source string `json:"source"`
}
