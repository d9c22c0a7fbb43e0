package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wealthwise/internal/middleware"
	"wealthwise/internal/repository"
	"wealthwise/internal/service"
)

type MeHandler struct {
	clientRepo   *repository.ClientRepository
	balanceRepo  *repository.BalanceRepository
	txRepo       *repository.TransactionRepository
	campaignRepo *repository.CampaignRepository
	campaignSvc  *service.CampaignService
}

func NewMeHandler(clientRepo *repository.ClientRepository, balanceRepo *repository.BalanceRepository, txRepo *repository.TransactionRepository, campaignRepo *repository.CampaignRepository, campaignSvc *service.CampaignService) *MeHandler {
	return &MeHandler{
		clientRepo:   clientRepo,
		balanceRepo:  balanceRepo,
		txRepo:       txRepo,
		campaignRepo: campaignRepo,
		campaignSvc:  campaignSvc,
	}
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	clientID := middleware.GetClientID(c)
	client, err := h.clientRepo.GetByID(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// GetBalance returns the freshly computed net balance. A failed query falls
// back to 0 so the creation form still opens; the failure is only logged.
func (h *MeHandler) GetBalance(c *gin.Context) {
	clientID := middleware.GetClientID(c)
	balance, err := h.campaignSvc.CurrentBalance(c.Request.Context(), clientID)
	if err != nil {
		log.WithError(err).WithField("client_id", clientID).Warn("balance query failed, returning 0")
		c.JSON(http.StatusOK, gin.H{"balance": decimal.Zero, "estimated": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

func (h *MeHandler) ListBalances(c *gin.Context) {
	clientID := middleware.GetClientID(c)
	balances, err := h.balanceRepo.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "balance history lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balances": balances})
}

func (h *MeHandler) ListTransactions(c *gin.Context) {
	clientID := middleware.GetClientID(c)
	txs, err := h.txRepo.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transaction history lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// GetDashboard aggregates everything the dashboard page shows in one call.
func (h *MeHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	clientID := middleware.GetClientID(c)

	client, err := h.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard lookup failed"})
		return
	}

	balance, err := h.campaignSvc.CurrentBalance(ctx, clientID)
	if err != nil {
		log.WithError(err).WithField("client_id", clientID).Warn("balance query failed, returning 0")
		balance = decimal.Zero
	}
	history, err := h.balanceRepo.ListByClient(ctx, clientID)
	if err != nil {
		log.WithError(err).WithField("client_id", clientID).Warn("balance history lookup failed")
	}
	txs, err := h.txRepo.ListByClient(ctx, clientID)
	if err != nil {
		log.WithError(err).WithField("client_id", clientID).Warn("transaction lookup failed")
	}
	if len(txs) > 5 {
		txs = txs[:5]
	}
	active, err := h.campaignRepo.CountActive(ctx, clientID)
	if err != nil {
		log.WithError(err).WithField("client_id", clientID).Warn("campaign count failed")
	}

	c.JSON(http.StatusOK, gin.H{
		"client":              client,
		"balance":             balance,
		"balance_history":     history,
		"recent_transactions": txs,
		"active_campaigns":    active,
	})
}
