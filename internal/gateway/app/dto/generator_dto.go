package dto

import (
	"toolbox/pkg/cardgen"
	"toolbox/pkg/identity"
)

// CardsRequest представляет запрос на генерацию тестовых номеров карт.
// Неизвестный бренд означает visa, нулевое количество - одну карту.
type CardsRequest struct {
	Brand string `json:"brand" validate:"max=32"`
	Count int    `json:"count" validate:"omitempty,min=1,max=50"`
}

// CardsResponse содержит сгенерированные карты.
type CardsResponse struct {
	Cards  []cardgen.Card `json:"cards"`
	Notice string         `json:"notice"`
}

// IdentitiesRequest представляет запрос на генерацию вымышленных личностей.
type IdentitiesRequest struct {
	Gender string `json:"gender" validate:"max=16"`
	Count  int    `json:"count" validate:"omitempty,min=1,max=50"`
}

// IdentitiesResponse содержит сгенерированные личности.
type IdentitiesResponse struct {
	Identities []identity.Identity `json:"identities"`
}
