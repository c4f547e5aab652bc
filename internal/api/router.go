package api

import (
	"fmt"
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/rs/cors"
	"gorm.io/gorm"

	_ "github.com/adityavk/portfolio-server/docs"
	"github.com/adityavk/portfolio-server/internal/api/handlers"
	"github.com/adityavk/portfolio-server/internal/api/middleware"
	"github.com/adityavk/portfolio-server/internal/auth"
	"github.com/adityavk/portfolio-server/internal/config"
	"github.com/adityavk/portfolio-server/internal/mailer"
	"github.com/adityavk/portfolio-server/internal/repositories"
)

// SetupRouter wires every handler with its dependencies and lays the public
// and protected surfaces out under /api/v1.
func SetupRouter(cfg *config.Config, db *gorm.DB, media repositories.MediaStore, mail mailer.Mailer, tokens *auth.TokenIssuer) http.Handler {
	userHandler := &handlers.UserHandler{DB: db, Tokens: tokens, Media: media, Mailer: mail, Cfg: cfg}
	projectHandler := &handlers.ProjectHandler{DB: db, Media: media}
	timelineHandler := &handlers.TimelineHandler{DB: db}
	skillHandler := &handlers.SkillHandler{DB: db, Media: media}
	appHandler := &handlers.ApplicationHandler{DB: db, Media: media}
	messageHandler := &handlers.MessageHandler{DB: db}
	sectionHandler := &handlers.SectionHandler{DB: db}

	requireAuth := middleware.RequireAuth(tokens, db)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mainMux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)

	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	userMux := http.NewServeMux()
	userMux.HandleFunc("POST /register", userHandler.Register)
	userMux.HandleFunc("POST /login", userHandler.Login)
	userMux.Handle("GET /logout", protected(userHandler.Logout))
	userMux.Handle("GET /myProfile", protected(userHandler.GetProfile))
	userMux.Handle("PUT /myProfile/updateProfile", protected(userHandler.UpdateProfile))
	userMux.Handle("PUT /myProfile/updatePassword", protected(userHandler.UpdatePassword))
	userMux.HandleFunc("POST /myProfile/forgotPassword", userHandler.ForgotPassword)
	userMux.HandleFunc("PUT /myProfile/resetPassword/{token}", userHandler.ResetPassword)
	userMux.HandleFunc("GET /portfolio", userHandler.GetPortfolio)

	projectMux := http.NewServeMux()
	projectMux.Handle("POST /add", protected(projectHandler.Add))
	projectMux.Handle("PUT /update/{id}", protected(projectHandler.Update))
	projectMux.Handle("DELETE /delete/{id}", protected(projectHandler.Delete))
	projectMux.HandleFunc("GET /getall", projectHandler.GetAll)
	projectMux.HandleFunc("GET /get/{id}", projectHandler.Get)

	timelineMux := http.NewServeMux()
	timelineMux.Handle("POST /add", protected(timelineHandler.Add))
	timelineMux.Handle("DELETE /delete/{id}", protected(timelineHandler.Delete))
	timelineMux.HandleFunc("GET /getall", timelineHandler.GetAll)

	skillMux := http.NewServeMux()
	skillMux.Handle("POST /add", protected(skillHandler.Add))
	skillMux.Handle("PUT /update/{id}", protected(skillHandler.Update))
	skillMux.Handle("DELETE /delete/{id}", protected(skillHandler.Delete))
	skillMux.HandleFunc("GET /getall", skillHandler.GetAll)

	appMux := http.NewServeMux()
	appMux.Handle("POST /add", protected(appHandler.Add))
	appMux.Handle("DELETE /delete/{id}", protected(appHandler.Delete))
	appMux.HandleFunc("GET /getall", appHandler.GetAll)

	messageMux := http.NewServeMux()
	messageMux.HandleFunc("POST /send", messageHandler.Send)
	messageMux.HandleFunc("GET /getall", messageHandler.GetAll)
	messageMux.Handle("DELETE /delete/{id}", protected(messageHandler.Delete))

	sectionMux := http.NewServeMux()
	sectionMux.HandleFunc("GET /get", sectionHandler.Get)
	sectionMux.Handle("PUT /update", protected(sectionHandler.Update))

	mainMux.Handle("/api/v1/user/", http.StripPrefix("/api/v1/user", userMux))
	mainMux.Handle("/api/v1/project/", http.StripPrefix("/api/v1/project", projectMux))
	mainMux.Handle("/api/v1/timeline/", http.StripPrefix("/api/v1/timeline", timelineMux))
	mainMux.Handle("/api/v1/skill/", http.StripPrefix("/api/v1/skill", skillMux))
	mainMux.Handle("/api/v1/softwareapplication/", http.StripPrefix("/api/v1/softwareapplication", appMux))
	mainMux.Handle("/api/v1/message/", http.StripPrefix("/api/v1/message", messageMux))
	mainMux.Handle("/api/v1/section/", http.StripPrefix("/api/v1/section", sectionMux))

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
