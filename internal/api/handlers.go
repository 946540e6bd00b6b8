package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"policypulse/internal/config"
	"policypulse/internal/models"
	"policypulse/internal/storage"
	"policypulse/internal/upload"
	"policypulse/internal/web"
)

const adminRealm = "PolicyPulseAdmin"

// Handler wires HTTP routes to the applicant store and the resume saver.
type Handler struct {
	store   *storage.Store
	resumes *upload.Saver
	cfg     *config.Config
}

// NewHandler constructs a Handler instance.
func NewHandler(store *storage.Store, resumes *upload.Saver, cfg *config.Config) *Handler {
	return &Handler{
		store:   store,
		resumes: resumes,
		cfg:     cfg,
	}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	publicFS, err := web.PublicFS()
	if err != nil {
		return err
	}

	router.Use(SecurityHeaders())
	router.StaticFS("/public", http.FS(publicFS))
	router.Static("/uploads", h.resumes.Dir)

	router.GET("/", h.showForm)
	router.POST("/submit", h.submitApplication)
	router.GET("/health", h.health)

	admin := router.Group("/admin", gin.BasicAuthForRealm(gin.Accounts{
		h.cfg.AdminUser: h.cfg.AdminPass,
	}, adminRealm))
	admin.GET("", h.listApplicants)

	return nil
}

func (h *Handler) showForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"BaseURL": h.cfg.BaseURL})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) submitApplication(c *gin.Context) {
	rec := models.ApplicantRecord{
		FirstName:       strings.TrimSpace(c.PostForm("first_name")),
		LastName:        strings.TrimSpace(c.PostForm("last_name")),
		Address:         strings.TrimSpace(c.PostForm("address")),
		City:            strings.TrimSpace(c.PostForm("city")),
		State:           strings.TrimSpace(c.PostForm("state")),
		Zip:             strings.TrimSpace(c.PostForm("zip")),
		Cellphone:       strings.TrimSpace(c.PostForm("cellphone")),
		Email:           strings.TrimSpace(c.PostForm("email")),
		LicensedAgent:   c.PostForm("licensed_agent") == "on",
		YearsExperience: strings.TrimSpace(c.PostForm("years_experience")),
	}

	if rec.FirstName == "" || rec.LastName == "" || rec.Email == "" || rec.Cellphone == "" {
		c.String(http.StatusBadRequest, "Missing required fields")
		return
	}
	if c.PostForm("disclaimer") != "on" {
		c.String(http.StatusBadRequest, "You must acknowledge the background check disclosure.")
		return
	}
	rec.DisclaimerChecked = true

	// The resume is validated and written only after the field checks above,
	// so a rejected submission never leaves an orphaned file on disk.
	file, err := c.FormFile("resume")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// resume is optional
	case err != nil:
		c.String(http.StatusBadRequest, "Invalid resume upload")
		return
	case file.Filename == "":
		// empty file input submitted without a selection
	default:
		path, original, err := h.resumes.Save(file)
		if err != nil {
			if upload.IsValidationError(err) {
				c.String(http.StatusBadRequest, err.Error())
				return
			}
			log.Printf("save resume: %v", err)
			c.String(http.StatusInternalServerError, "Error saving your application.")
			return
		}
		rec.ResumePath = path
		rec.ResumeOriginalName = original
	}

	if _, err := h.store.Insert(c.Request.Context(), &rec); err != nil {
		log.Printf("insert applicant: %v", err)
		c.String(http.StatusInternalServerError, "Error saving your application.")
		return
	}

	c.HTML(http.StatusOK, "thanks.html", gin.H{"FirstName": rec.FirstName})
}

func (h *Handler) listApplicants(c *gin.Context) {
	records, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("list applicants: %v", err)
		c.String(http.StatusInternalServerError, "Error loading applicants.")
		return
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Records": records,
		"BaseURL": h.cfg.BaseURL,
	})
}
