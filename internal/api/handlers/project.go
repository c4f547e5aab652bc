package handlers

import (
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/adityavk/portfolio-server/internal/models"
	"github.com/adityavk/portfolio-server/internal/repositories"
	"github.com/adityavk/portfolio-server/internal/utils"
)

type ProjectHandler struct {
	DB    *gorm.DB
	Media repositories.MediaStore
}

// POST /project/add
// AddProject godoc
// @Summary Add a project with its banner image
// @Tags Project
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /project/add [post]
func (h *ProjectHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid form data",
		})
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	gitRepoLink := r.FormValue("gitRepoLink")
	projectLink := r.FormValue("projectLink")
	stack := r.FormValue("stack")
	technologies := r.FormValue("technologies")
	deployed := r.FormValue("deployed")

	if title == "" || description == "" || gitRepoLink == "" || projectLink == "" ||
		stack == "" || technologies == "" || deployed == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please provide all project details",
		})
		return
	}

	file, header, err := r.FormFile("projectBanner")
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Project banner is required",
		})
		return
	}
	defer file.Close()

	banner, err := h.Media.Upload(r.Context(), file, header.Filename, "PROJECTS")
	if err != nil {
		log.Println("Banner upload failed:", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to upload project banner",
		})
		return
	}

	project := models.Project{
		Title:        title,
		Description:  description,
		GitRepoLink:  gitRepoLink,
		ProjectLink:  projectLink,
		Stack:        stack,
		Technologies: technologies,
		Deployed:     deployed,
		Banner:       banner,
	}

	if err := h.DB.Create(&project).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database insert failed",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "New project added",
		Data:    map[string]any{"project": project},
	})
}

// PUT /project/update/{id}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := h.DB.Where("id = ?", r.PathValue("id")).First(&project).Error; err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Project not found",
		})
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid form data",
		})
		return
	}

	updates := map[string]any{}
	for form, column := range map[string]string{
		"title":        "title",
		"description":  "description",
		"gitRepoLink":  "git_repo_link",
		"projectLink":  "project_link",
		"stack":        "stack",
		"technologies": "technologies",
		"deployed":     "deployed",
	} {
		if values, present := r.MultipartForm.Value[form]; present && len(values) > 0 {
			updates[column] = values[0]
		}
	}

	oldBanner := ""
	if file, header, err := r.FormFile("projectBanner"); err == nil {
		defer file.Close()
		banner, err := h.Media.Upload(r.Context(), file, header.Filename, "PROJECTS")
		if err != nil {
			log.Println("Banner upload failed:", err)
			utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
				Success: false,
				Message: "Failed to upload project banner",
			})
			return
		}
		updates["banner_public_id"] = banner.PublicID
		updates["banner_url"] = banner.URL
		oldBanner = project.Banner.PublicID
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&project).Updates(updates).Error; err != nil {
			utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
				Success: false,
				Message: "Failed to update project",
			})
			return
		}
	}

	if oldBanner != "" {
		if err := h.Media.Delete(r.Context(), oldBanner); err != nil {
			log.Println("Failed to delete replaced banner:", err)
		}
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project updated",
		Data:    map[string]any{"project": project},
	})
}

// DELETE /project/delete/{id}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := h.DB.Where("id = ?", r.PathValue("id")).First(&project).Error; err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Project not found",
		})
		return
	}

	if err := h.DB.Delete(&project).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to delete project",
		})
		return
	}

	if project.Banner.PublicID != "" {
		if err := h.Media.Delete(r.Context(), project.Banner.PublicID); err != nil {
			log.Println("Failed to delete project banner:", err)
		}
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project deleted",
	})
}

// GET /project/getall
func (h *ProjectHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	if err := h.DB.Order("created_at desc").Find(&projects).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Projects fetched",
		Data:    map[string]any{"projects": projects},
	})
}

// GET /project/get/{id}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := h.DB.Where("id = ?", r.PathValue("id")).First(&project).Error; err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Project not found",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project fetched",
		Data:    map[string]any{"project": project},
	})
}
