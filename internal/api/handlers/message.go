package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/adityavk/portfolio-server/internal/models"
	"github.com/adityavk/portfolio-server/internal/utils"
)

type MessageHandler struct {
	DB *gorm.DB
}

// POST /message/send
// SendMessage godoc
// @Summary Leave a message through the public contact form
// @Tags Message
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /message/send [post]
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SenderName string `json:"senderName"`
		Subject    string `json:"subject"`
		Message    string `json:"message"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil ||
		input.SenderName == "" || input.Subject == "" || input.Message == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please fill the full form",
		})
		return
	}

	msg := models.Message{
		SenderName: input.SenderName,
		Subject:    input.Subject,
		Message:    input.Message,
	}

	if err := h.DB.Create(&msg).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database insert failed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Message sent",
		Data:    map[string]any{"message": msg},
	})
}

// GET /message/getall
func (h *MessageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var messages []models.Message
	if err := h.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Messages fetched",
		Data:    map[string]any{"messages": messages},
	})
}

// DELETE /message/delete/{id}
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var msg models.Message
	if err := h.DB.Where("id = ?", r.PathValue("id")).First(&msg).Error; err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Message already deleted",
		})
		return
	}

	if err := h.DB.Delete(&msg).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to delete message",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Message deleted",
	})
}
