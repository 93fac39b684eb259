package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

// ActivityRequest registro manual de actividad.
type ActivityRequest struct {
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Metadata    map[string]any   `json:"metadata"`
}

// ToActivity convierte el cuerpo en una actividad del usuario dado.
func (r ActivityRequest) ToActivity(userID string) entity.Activity {
	return entity.Activity{
		Type:        entity.ActivityType(r.Type),
		Description: r.Description,
		Amount:      r.Amount,
		UserID:      userID,
		Metadata:    r.Metadata,
	}
}
