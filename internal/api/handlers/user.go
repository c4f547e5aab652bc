package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/adityavk/portfolio-server/internal/api/middleware"
	"github.com/adityavk/portfolio-server/internal/auth"
	"github.com/adityavk/portfolio-server/internal/config"
	"github.com/adityavk/portfolio-server/internal/mailer"
	"github.com/adityavk/portfolio-server/internal/models"
	"github.com/adityavk/portfolio-server/internal/repositories"
	"github.com/adityavk/portfolio-server/internal/utils"
)

const maxUploadSize = 20 << 20 // 20 MB

type UserHandler struct {
	DB     *gorm.DB
	Tokens *auth.TokenIssuer
	Media  repositories.MediaStore
	Mailer mailer.Mailer
	Cfg    *config.Config
}

// POST /user/register
// Register godoc
// @Summary Register the portfolio owner account
// @Description Creates the owner account from a multipart form including avatar and resume files.
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 409 {object} utils.Payload
// @Router /user/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid form data",
		})
		return
	}

	fullname := r.FormValue("fullname")
	email := r.FormValue("email")
	phone := r.FormValue("phone")
	aboutMe := r.FormValue("aboutMe")
	password := r.FormValue("password")
	portfolioURL := r.FormValue("portfolioUrl")

	if fullname == "" || email == "" || phone == "" || aboutMe == "" || password == "" || portfolioURL == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please fill all required fields",
		})
		return
	}
	if len(password) < 8 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Password must contain at least 8 characters",
		})
		return
	}

	avatarFile, avatarHeader, avatarErr := r.FormFile("avatar")
	resumeFile, resumeHeader, resumeErr := r.FormFile("resume")
	if avatarErr != nil || resumeErr != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Avatar and resume are required",
		})
		return
	}
	defer avatarFile.Close()
	defer resumeFile.Close()

	var existing models.User
	err := h.DB.Where("email = ?", email).First(&existing).Error
	switch err {
	case gorm.ErrRecordNotFound:
		// new account
	case nil:
		utils.JSONResponse(w, http.StatusConflict, utils.Payload{
			Success: false,
			Message: "An account with this email already exists",
		})
		return
	default:
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database query failed",
		})
		return
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to hash password",
		})
		return
	}

	// Avatar and resume go to the media store before the record exists, so a
	// failed registration can at worst leave unreferenced objects, never a
	// user without media.
	var avatar, resume models.MediaRef
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		avatar, err = h.Media.Upload(ctx, avatarFile, avatarHeader.Filename, "AVATARS")
		return err
	})
	g.Go(func() error {
		var err error
		resume, err = h.Media.Upload(ctx, resumeFile, resumeHeader.Filename, "MY_RESUME")
		return err
	})
	if err := g.Wait(); err != nil {
		log.Println("Media upload failed:", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to upload avatar or resume",
		})
		return
	}

	user := models.User{
		FullName:     fullname,
		Email:        email,
		Phone:        phone,
		AboutMe:      aboutMe,
		Password:     hashedPassword,
		Avatar:       avatar,
		Resume:       resume,
		PortfolioURL: portfolioURL,
		GithubURL:    r.FormValue("githubUrl"),
		InstaURL:     r.FormValue("instaUrl"),
		LinkedInURL:  r.FormValue("linkedInUrl"),
		TwitterURL:   r.FormValue("twitterUrl"),
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database insert failed",
		})
		return
	}

	h.respondWithSession(w, &user, http.StatusCreated, "User registered")
}

// POST /user/login
// Login godoc
// @Summary Log in with email and password
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /user/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Email == "" || input.Password == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Email and password are required",
		})
		return
	}

	// Same message whether the email or the password was wrong.
	var user models.User
	err := h.DB.Where("email = ?", input.Email).First(&user).Error
	switch err {
	case nil:
	case gorm.ErrRecordNotFound:
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	default:
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}

	if !auth.CheckPassword(input.Password, user.Password) {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	h.respondWithSession(w, &user, http.StatusOK, "Logged in")
}

// GET /user/logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.ClearSessionCookie(w)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Logged out",
	})
}

// GET /user/myProfile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile fetched",
		Data:    map[string]any{"user": user},
	})
}

// GET /user/portfolio
// GetPortfolio godoc
// @Summary Public owner profile for the portfolio frontend
// @Tags User
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /user/portfolio [get]
func (h *UserHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := h.DB.Order("created_at asc").First(&user).Error; err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Portfolio owner not found",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Portfolio fetched",
		Data:    map[string]any{"user": user},
	})
}

// PUT /user/myProfile/updateProfile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
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
		"fullname":     "full_name",
		"email":        "email",
		"phone":        "phone",
		"aboutMe":      "about_me",
		"portfolioUrl": "portfolio_url",
		"githubUrl":    "github_url",
		"instaUrl":     "insta_url",
		"linkedInUrl":  "linked_in_url",
		"twitterUrl":   "twitter_url",
	} {
		if values, present := r.MultipartForm.Value[form]; present && len(values) > 0 {
			updates[column] = values[0]
		}
	}

	if email, present := updates["email"]; present && email != user.Email {
		var existing models.User
		if err := h.DB.Where("email = ?", email).First(&existing).Error; err == nil {
			utils.JSONResponse(w, http.StatusConflict, utils.Payload{
				Success: false,
				Message: "An account with this email already exists",
			})
			return
		}
	}

	// New media is uploaded and persisted before the old object is removed,
	// so an upload failure can never leave the record pointing at nothing.
	var staleMedia []string
	if file, header, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		avatar, err := h.Media.Upload(r.Context(), file, header.Filename, "AVATARS")
		if err != nil {
			log.Println("Avatar upload failed:", err)
			utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
				Success: false,
				Message: "Failed to upload avatar",
			})
			return
		}
		updates["avatar_public_id"] = avatar.PublicID
		updates["avatar_url"] = avatar.URL
		staleMedia = append(staleMedia, user.Avatar.PublicID)
	}
	if file, header, err := r.FormFile("resume"); err == nil {
		defer file.Close()
		resume, err := h.Media.Upload(r.Context(), file, header.Filename, "MY_RESUME")
		if err != nil {
			log.Println("Resume upload failed:", err)
			utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
				Success: false,
				Message: "Failed to upload resume",
			})
			return
		}
		updates["resume_public_id"] = resume.PublicID
		updates["resume_url"] = resume.URL
		staleMedia = append(staleMedia, user.Resume.PublicID)
	}

	if len(updates) > 0 {
		if err := h.DB.Model(user).Updates(updates).Error; err != nil {
			utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
				Success: false,
				Message: "Failed to update profile",
			})
			return
		}
	}

	// Replaced objects are removed only after the new references are saved.
	for _, publicID := range staleMedia {
		if publicID == "" {
			continue
		}
		if err := h.Media.Delete(r.Context(), publicID); err != nil {
			log.Println("Failed to delete replaced media:", err)
		}
	}

	var updated models.User
	if err := h.DB.Where("id = ?", user.ID).First(&updated).Error; err != nil {
		updated = *user
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile updated",
		Data:    map[string]any{"user": updated},
	})
}

// PUT /user/myProfile/updatePassword
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil ||
		input.CurrentPassword == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please fill all fields",
		})
		return
	}

	if !auth.CheckPassword(input.CurrentPassword, user.Password) {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Invalid current password",
		})
		return
	}

	if input.NewPassword != input.ConfirmPassword {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "New password and confirm password do not match",
		})
		return
	}
	if len(input.NewPassword) < 8 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Password must contain at least 8 characters",
		})
		return
	}

	hashed, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to hash password",
		})
		return
	}

	if err := h.DB.Model(user).Update("password", hashed).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to update password",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Password updated",
	})
}

// POST /user/myProfile/forgotPassword
// ForgotPassword godoc
// @Summary Start password recovery
// @Description Emails a one-time reset link valid for 15 minutes.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /user/myProfile/forgotPassword [post]
func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Email == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please enter your email",
		})
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "No account with this email exists",
		})
		return
	}

	plain, digest, expiresAt, err := auth.GenerateResetToken()
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to generate reset token",
		})
		return
	}

	if err := h.DB.Model(&user).Updates(map[string]any{
		"reset_password_token":      digest,
		"reset_password_expires_at": expiresAt,
	}).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to store reset token",
		})
		return
	}

	resetURL := h.Cfg.PortfolioURL + "/myProfile/resetPassword/" + plain
	if err := h.Mailer.Send(user.Email, "Reset Portfolio Password", mailer.ResetPasswordEmail(resetURL)); err != nil {
		log.Println("Reset email failed:", err)
		// The token must not stay live when the owner never received it.
		if err := h.DB.Model(&user).Updates(map[string]any{
			"reset_password_token":      nil,
			"reset_password_expires_at": nil,
		}).Error; err != nil {
			log.Println("Failed to roll back reset token:", err)
		}
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to send recovery email",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Email sent to " + user.Email + " successfully",
	})
}

// PUT /user/myProfile/resetPassword/{token}
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	plain := r.PathValue("token")
	if plain == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing reset token",
		})
		return
	}

	digest := auth.HashResetToken(plain)

	var user models.User
	err := h.DB.
		Where("reset_password_token = ? AND reset_password_expires_at > ?", digest, time.Now()).
		First(&user).Error
	if err != nil {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Expired or invalid reset link",
		})
		return
	}

	var input struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Password == "" || input.ConfirmPassword == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Password and confirm password are required",
		})
		return
	}
	if input.Password != input.ConfirmPassword {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Password fields do not match",
		})
		return
	}
	if len(input.Password) < 8 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Password must contain at least 8 characters",
		})
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to hash password",
		})
		return
	}

	// One statement sets the new hash and clears the token, and the token
	// match in the WHERE clause makes consumption single-use even if two
	// resets race.
	res := h.DB.Model(&models.User{}).
		Where("id = ? AND reset_password_token = ?", user.ID, digest).
		Updates(map[string]any{
			"password":                  hashed,
			"reset_password_token":      nil,
			"reset_password_expires_at": nil,
		})
	if res.Error != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to reset password",
		})
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Expired or invalid reset link",
		})
		return
	}

	h.respondWithSession(w, &user, http.StatusOK, "Password changed successfully")
}

// respondWithSession issues a session token, sets the cookie and writes the
// user payload, mirroring the original token response shape.
func (h *UserHandler) respondWithSession(w http.ResponseWriter, user *models.User, status int, message string) {
	token, expiresAt, err := h.Tokens.Issue(user.ID)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to create token",
		})
		return
	}
	utils.SetSessionCookie(w, token, expiresAt)
	utils.JSONResponse(w, status, utils.Payload{
		Success: true,
		Message: message,
		Data:    map[string]any{"user": user},
	})
}
