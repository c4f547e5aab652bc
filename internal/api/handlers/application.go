package handlers

import (
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/adityavk/portfolio-server/internal/models"
	"github.com/adityavk/portfolio-server/internal/repositories"
	"github.com/adityavk/portfolio-server/internal/utils"
)

type ApplicationHandler struct {
	DB    *gorm.DB
	Media repositories.MediaStore
}

// POST /softwareapplication/add
func (h *ApplicationHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid form data",
		})
		return
	}

	name := r.FormValue("name")
	if name == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Application name is required",
		})
		return
	}

	file, header, err := r.FormFile("svg")
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Application icon is required",
		})
		return
	}
	defer file.Close()

	icon, err := h.Media.Upload(r.Context(), file, header.Filename, "APPLICATIONS")
	if err != nil {
		log.Println("Icon upload failed:", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to upload application icon",
		})
		return
	}

	app := models.SoftwareApplication{
		Name: name,
		Icon: icon,
	}

	if err := h.DB.Create(&app).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database insert failed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "New application added",
		Data:    map[string]any{"softwareApplication": app},
	})
}

// DELETE /softwareapplication/delete/{id}
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var app models.SoftwareApplication
	if err := h.DB.Where("id = ?", r.PathValue("id")).First(&app).Error; err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Application not found",
		})
		return
	}

	if err := h.DB.Delete(&app).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to delete application",
		})
		return
	}

	if app.Icon.PublicID != "" {
		if err := h.Media.Delete(r.Context(), app.Icon.PublicID); err != nil {
			log.Println("Failed to delete application icon:", err)
		}
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Application deleted",
	})
}

// GET /softwareapplication/getall
func (h *ApplicationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var apps []models.SoftwareApplication
	if err := h.DB.Order("created_at asc").Find(&apps).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Applications fetched",
		Data:    map[string]any{"softwareApplications": apps},
	})
}
