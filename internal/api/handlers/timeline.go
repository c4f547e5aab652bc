package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/adityavk/portfolio-server/internal/models"
	"github.com/adityavk/portfolio-server/internal/utils"
)

type TimelineHandler struct {
	DB *gorm.DB
}

// POST /timeline/add
func (h *TimelineHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		From        string `json:"from"`
		To          string `json:"to"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Title == "" || input.Description == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Title and description are required",
		})
		return
	}

	entry := models.Timeline{
		Title:       input.Title,
		Description: input.Description,
		From:        input.From,
		To:          input.To,
	}

	if err := h.DB.Create(&entry).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database insert failed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Timeline entry added",
		Data:    map[string]any{"timeline": entry},
	})
}

// DELETE /timeline/delete/{id}
func (h *TimelineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var entry models.Timeline
	if err := h.DB.Where("id = ?", r.PathValue("id")).First(&entry).Error; err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Timeline entry not found",
		})
		return
	}

	if err := h.DB.Delete(&entry).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to delete timeline entry",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Timeline entry deleted",
	})
}

// GET /timeline/getall
func (h *TimelineHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var entries []models.Timeline
	if err := h.DB.Order("created_at desc").Find(&entries).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Timeline fetched",
		Data:    map[string]any{"timelines": entries},
	})
}
