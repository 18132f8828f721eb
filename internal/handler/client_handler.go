package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/pharmacy_api/internal/models"
	"github.com/GTDGit/pharmacy_api/internal/utils"
)

// ClientService is what ClientHandler needs from the service layer.
type ClientService interface {
	ListClients(ctx context.Context) ([]*models.Client, error)
	GetClient(ctx context.Context, id int) (*models.Client, error)
	CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error)
}

// ClientHandler handles client HTTP endpoints.
type ClientHandler struct {
	clientService ClientService
}

// NewClientHandler constructs a ClientHandler.
func NewClientHandler(clientService ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("request_id", utils.RequestID(c)).Msg("failed to list clients")
		utils.Message(c, http.StatusInternalServerError, "Could not access the client list.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		log.Warn().Str("request_id", utils.RequestID(c)).Str("id", c.Param("id")).Msg("invalid client id")
		utils.Message(c, http.StatusBadRequest, "Invalid ID.")
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Message(c, http.StatusOK, "No client found with the given ID.")
			return
		}
		log.Error().Err(err).Str("request_id", utils.RequestID(c)).Int("id", id).Msg("failed to get client")
		utils.Message(c, http.StatusInternalServerError, "Could not retrieve the client.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("request_id", utils.RequestID(c)).Msg("invalid client body")
		utils.Message(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, utils.ErrNotCreated) {
			log.Warn().Err(err).Str("request_id", utils.RequestID(c)).Msg("client not created")
			utils.Message(c, http.StatusBadRequest, "Error registering client.")
			return
		}
		log.Error().Err(err).Str("request_id", utils.RequestID(c)).Msg("failed to create client")
		utils.Message(c, http.StatusInternalServerError, "Could not register the client.")
		return
	}

	log.Info().Str("request_id", utils.RequestID(c)).Int("id", client.ID).Msg("client created")
	utils.Created(c, "Client registered successfully.", client.ID)
}
