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

// MedicationService is what MedicationHandler needs from the service layer.
type MedicationService interface {
	ListMedications(ctx context.Context) ([]*models.Medication, error)
	GetMedication(ctx context.Context, id int) (*models.Medication, error)
	CreateMedication(ctx context.Context, req *models.CreateMedicationRequest) (*models.Medication, error)
}

// MedicationHandler handles medication HTTP endpoints.
type MedicationHandler struct {
	medicationService MedicationService
}

// NewMedicationHandler constructs a MedicationHandler.
func NewMedicationHandler(medicationService MedicationService) *MedicationHandler {
	return &MedicationHandler{medicationService: medicationService}
}

// ListMedications handles GET /medications
func (h *MedicationHandler) ListMedications(c *gin.Context) {
	medications, err := h.medicationService.ListMedications(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("request_id", utils.RequestID(c)).Msg("failed to list medications")
		utils.Message(c, http.StatusInternalServerError, "Could not access the medication list.")
		return
	}

	c.JSON(http.StatusOK, medications)
}

// GetMedication handles GET /medications/:id
func (h *MedicationHandler) GetMedication(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		log.Warn().Str("request_id", utils.RequestID(c)).Str("id", c.Param("id")).Msg("invalid medication id")
		utils.Message(c, http.StatusBadRequest, "Invalid ID.")
		return
	}

	medication, err := h.medicationService.GetMedication(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Message(c, http.StatusOK, "No medication found with the given ID.")
			return
		}
		log.Error().Err(err).Str("request_id", utils.RequestID(c)).Int("id", id).Msg("failed to get medication")
		utils.Message(c, http.StatusInternalServerError, "Could not retrieve the medication.")
		return
	}

	c.JSON(http.StatusOK, medication)
}

// CreateMedication handles POST /medications
func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	var req models.CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("request_id", utils.RequestID(c)).Msg("invalid medication body")
		utils.Message(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	medication, err := h.medicationService.CreateMedication(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, utils.ErrNotCreated) {
			log.Warn().Err(err).Str("request_id", utils.RequestID(c)).Msg("medication not created")
			utils.Message(c, http.StatusBadRequest, "Error registering medication.")
			return
		}
		log.Error().Err(err).Str("request_id", utils.RequestID(c)).Msg("failed to create medication")
		utils.Message(c, http.StatusInternalServerError, "Could not register the medication.")
		return
	}

	log.Info().Str("request_id", utils.RequestID(c)).Int("id", medication.ID).Msg("medication created")
	utils.Created(c, "Medication registered successfully.", medication.ID)
}
