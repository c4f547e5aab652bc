package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/adityavk/portfolio-server/internal/models"
	"github.com/adityavk/portfolio-server/internal/repositories"
	"github.com/adityavk/portfolio-server/internal/utils"
)

type SkillHandler struct {
	DB    *gorm.DB
	Media repositories.MediaStore
}

// POST /skill/add
func (h *SkillHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid form data",
		})
		return
	}

	title := r.FormValue("title")
	proficiency := r.FormValue("proficiency")
	if title == "" || proficiency == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Title and proficiency are required",
		})
		return
	}

	file, header, err := r.FormFile("svg")
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Skill icon is required",
		})
		return
	}
	defer file.Close()

	icon, err := h.Media.Upload(r.Context(), file, header.Filename, "SKILLS")
	if err != nil {
		log.Println("Icon upload failed:", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to upload skill icon",
		})
		return
	}

	skill := models.Skill{
		Title:       title,
		Proficiency: proficiency,
		Icon:        icon,
	}

	if err := h.DB.Create(&skill).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database insert failed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "New skill added",
		Data:    map[string]any{"skill": skill},
	})
}

// PUT /skill/update/{id}
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if err := h.DB.Where("id = ?", r.PathValue("id")).First(&skill).Error; err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Skill not found",
		})
		return
	}

	var input struct {
		Proficiency string `json:"proficiency"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Proficiency == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Proficiency is required",
		})
		return
	}

	if err := h.DB.Model(&skill).Update("proficiency", input.Proficiency).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to update skill",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skill updated",
		Data:    map[string]any{"skill": skill},
	})
}

// DELETE /skill/delete/{id}
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if err := h.DB.Where("id = ?", r.PathValue("id")).First(&skill).Error; err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Skill not found",
		})
		return
	}

	if err := h.DB.Delete(&skill).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to delete skill",
		})
		return
	}

	if skill.Icon.PublicID != "" {
		if err := h.Media.Delete(r.Context(), skill.Icon.PublicID); err != nil {
			log.Println("Failed to delete skill icon:", err)
		}
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skill deleted",
	})
}

// GET /skill/getall
func (h *SkillHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var skills []models.Skill
	if err := h.DB.Order("created_at asc").Find(&skills).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skills fetched",
		Data:    map[string]any{"skills": skills},
	})
}
