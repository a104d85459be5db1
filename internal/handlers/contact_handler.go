package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httpresp"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/middleware"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/validators"
)

type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type ContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "the email domain does not look deliverable")
		return
	}

	contact := models.Contact{
		OwnerID: c.GetUint(middleware.ContextUserID),
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   email,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&contact).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create contact")
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	var contacts []models.Contact
	if err := h.db.WithContext(c.Request.Context()).
		Where("owner_id = ?", c.GetUint(middleware.ContextUserID)).
		Order("name ASC").
		Find(&contacts).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list contacts")
		return
	}

	httpresp.List(c, contacts)
}
