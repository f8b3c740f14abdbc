package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hexhaus/dicehall/internal/dice"
	"github.com/hexhaus/dicehall/internal/models"
	rollRepo "github.com/hexhaus/dicehall/internal/repositories/roll"
)

type rolledDieResponse struct {
	Dice   string `json:"dice"`
	Result uint32 `json:"result"`
}

type rollResponse struct {
	ID    string              `json:"id"`
	Dices []rolledDieResponse `json:"dices"`
	Total uint32              `json:"total"`
}

// renderRoll builds the response body shared by both endpoints.
func renderRoll(id models.RollId, results dice.RolledDiceSet) rollResponse {
	resp := rollResponse{
		ID:    id.String(),
		Dices: []rolledDieResponse{},
		Total: results.Total(),
	}
	for _, rolled := range results.Rolled() {
		resp.Dices = append(resp.Dices, rolledDieResponse{
			Dice:   rolled.Dice().String(),
			Result: rolled.Result(),
		})
	}
	return resp
}

// renderError maps the error taxonomy onto HTTP statuses. Parse failures
// are the caller's fault, a lookup miss is expected and recoverable, a
// bound overflow names an unprocessable set, and everything else is an
// opaque adapter failure.
func renderError(c *gin.Context, err error) {
	var unknownDice *dice.DiceUnknownError

	switch {
	case errors.As(err, &unknownDice),
		errors.Is(err, dice.ErrDiceSetParse),
		errors.Is(err, models.ErrRollIdParse):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, rollRepo.ErrRollNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, dice.ErrWayTooManyDices):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
