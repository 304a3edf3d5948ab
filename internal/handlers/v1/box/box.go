package box

import (
	"time"

	"github.com/boxbank/boxbank-server/internal/service"
)

// Box is the API response model for a budget box.
type Box struct {
	ID               string `json:"id" doc:"Box UUID"`
	Name             string `json:"name" doc:"Box name"`
	ShortDescription string `json:"shortDescription,omitempty" doc:"Free-text description"`
	Balance          string `json:"balance" doc:"Decimal balance"`
	TargetValue      *int64 `json:"targetValue,omitempty" doc:"Savings goal, absent when the box has none"`
	ParentBoxID      string `json:"parentBoxID,omitempty" doc:"Parent box UUID, absent for top-level boxes"`
	CreatedAt        string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(b service.Box) Box {
	converted := Box{
		ID:               b.ID.String(),
		Name:             b.Name,
		ShortDescription: b.ShortDescription,
		Balance:          b.Balance.String(),
		TargetValue:      b.TargetValue,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
	if b.ParentBoxID != nil {
		converted.ParentBoxID = b.ParentBoxID.String()
	}
	return converted
}
