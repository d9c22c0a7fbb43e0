package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wealthwise/internal/middleware"
	"wealthwise/internal/models"
	"wealthwise/internal/repository"
	"wealthwise/internal/service"
)

type CampaignHandler struct {
	campaignRepo *repository.CampaignRepository
	svc          *service.CampaignService
}

func NewCampaignHandler(campaignRepo *repository.CampaignRepository, svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignRepo: campaignRepo, svc: svc}
}

func (h *CampaignHandler) List(c *gin.Context) {
	clientID := middleware.GetClientID(c)
	campaigns, err := h.campaignRepo.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "campaign lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// Create runs the investment workflow. Validation and insufficient-balance
// rejections happen before any write and carry the rule's own message; a
// store failure on the campaign insert surfaces the store's error.
func (h *CampaignHandler) Create(c *gin.Context) {
	var in service.CampaignInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	clientID := middleware.GetClientID(c)
	cm, err := h.svc.Invest(c.Request.Context(), clientID, in)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		var ierr *service.InsufficientBalanceError
		if errors.As(err, &ierr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ierr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"campaign": cm})
}

// Preview validates the form fields and returns the display-only projections
// (daily ROI, projected total). Nothing is written.
func (h *CampaignHandler) Preview(c *gin.Context) {
	in := service.CampaignInput{
		Name:             c.Query("name"),
		InvestmentAmount: c.Query("investment_amount"),
		DurationDays:     c.Query("duration_days"),
		ROIPercentage:    c.Query("roi_percentage"),
	}
	norm, err := service.ValidateCampaignInput(in, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"preview": service.PreviewCampaign(norm)})
}

// Leads returns the generated leads report for one of the client's campaigns.
func (h *CampaignHandler) Leads(c *gin.Context) {
	cm, ok := h.ownedCampaign(c)
	if !ok {
		return
	}
	leads := service.GenerateLeads(cm.ID, time.Now().UTC())
	c.JSON(http.StatusOK, gin.H{
		"campaign_id": cm.ID,
		"leads":       leads,
		"summary":     service.SummarizeLeads(leads),
	})
}

// LeadsCSV streams the same report as a CSV download.
func (h *CampaignHandler) LeadsCSV(c *gin.Context) {
	cm, ok := h.ownedCampaign(c)
	if !ok {
		return
	}
	data, err := service.LeadsCSV(service.GenerateLeads(cm.ID, time.Now().UTC()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "csv export failed"})
		return
	}
	filename := strings.ReplaceAll(cm.Name, " ", "_") + "_leads.csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *CampaignHandler) ownedCampaign(c *gin.Context) (*models.Campaign, bool) {
	clientID := middleware.GetClientID(c)
	cm, err := h.campaignRepo.GetForClient(c.Request.Context(), c.Param("id"), clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "campaign lookup failed"})
		return nil, false
	}
	return cm, true
}
