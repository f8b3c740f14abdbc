// Package api exposes the roll service over HTTP.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hexhaus/dicehall/internal/dice"
	"github.com/hexhaus/dicehall/internal/models"
	rollService "github.com/hexhaus/dicehall/internal/services/roll"
)

// Config holds configuration for the HTTP handler
type Config struct {
	// RollService handles the roll operations
	RollService rollService.Service
}

// Handler wires the roll service into HTTP routes
type Handler struct {
	rollService rollService.Service
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RollService == nil {
		return nil, errors.New("roll service cannot be nil")
	}

	return &Handler{
		rollService: cfg.RollService,
	}, nil
}

// Routes builds the gin engine serving the API
func (h *Handler) Routes() http.Handler {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	engine.GET("/healthz", h.handleHealthz)

	v1 := engine.Group("/api/v1")
	v1.POST("/rolls", h.handleRollDices)
	v1.GET("/rolls/:id", h.handleGetDiceRoll)

	return engine
}

// handleHealthz returns the service health status
func (h *Handler) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type rollDicesRequest struct {
	// Dices is the notation of the set to roll, e.g. "2d20 + d6"
	Dices string `json:"dices"`
}

// handleRollDices parses the notation at the edge, rolls through the
// service and returns the outcome with its minted id.
func (h *Handler) handleRollDices(c *gin.Context) {
	var req rollDicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	set, err := dice.ParseDiceSet(req.Dices)
	if err != nil {
		renderError(c, err)
		return
	}

	output, err := h.rollService.RollDices(c.Request.Context(), &rollService.RollDicesInput{
		DiceSet: set,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, renderRoll(output.RollID, output.Results))
}

// handleGetDiceRoll retrieves a past roll by id.
func (h *Handler) handleGetDiceRoll(c *gin.Context) {
	id, err := models.ParseRollId(c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	output, err := h.rollService.GetDiceRoll(c.Request.Context(), &rollService.GetDiceRollInput{
		RollID: id,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, renderRoll(output.RollID, output.Results))
}
