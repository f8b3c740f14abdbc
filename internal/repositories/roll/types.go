package roll

import "github.com/hexhaus/dicehall/internal/models"

type SaveRollInput struct {
	Roll *models.Roll
}

type GetRollInput struct {
	RollID models.RollId
}
