package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/adityavk/portfolio-server/internal/models"
	"github.com/adityavk/portfolio-server/internal/utils"
)

type SectionHandler struct {
	DB *gorm.DB
}

// GET /section/get
func (h *SectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	var section models.Section
	if err := h.DB.First(&section).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
				Success: false,
				Message: "Database error",
			})
			return
		}
		// No row yet: the frontend treats an absent record as all-visible.
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Sections fetched",
		Data:    map[string]any{"sectionData": section},
	})
}

// PUT /section/update — upserts the singleton visibility record.
func (h *SectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Data struct {
			Main     bool `json:"main"`
			About    bool `json:"about"`
			Projects bool `json:"projects"`
			Skills   bool `json:"skills"`
			Apps     bool `json:"apps"`
			Timeline bool `json:"timeline"`
			Contact  bool `json:"contact"`
			Footer   bool `json:"footer"`
			DarkMode bool `json:"darkMode"`
		} `json:"data"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	var section models.Section
	err := h.DB.First(&section).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}

	section.Main = input.Data.Main
	section.About = input.Data.About
	section.Projects = input.Data.Projects
	section.Skills = input.Data.Skills
	section.Apps = input.Data.Apps
	section.Timeline = input.Data.Timeline
	section.Contact = input.Data.Contact
	section.Footer = input.Data.Footer
	section.DarkMode = input.Data.DarkMode

	if err := h.DB.Save(&section).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to update sections",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Changes made successfully",
		Data:    map[string]any{"updatedData": section},
	})
}
