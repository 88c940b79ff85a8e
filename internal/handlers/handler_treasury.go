package handlers

import (
	"net/http"

	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type treasuryHandler struct {
	treasuryService portssvc.TreasurySvcFacade
}

func registerTreasuryRoutes(rg *gin.RouterGroup, treasuryService portssvc.TreasurySvcFacade) {
	h := &treasuryHandler{treasuryService: treasuryService}

	cashBoxes := rg.Group("/cash-boxes")
	{
		cashBoxes.POST("", h.CreateCashBox)
		cashBoxes.GET("", h.ListCashBoxes)
		cashBoxes.GET("/:cashBoxID", h.GetCashBox)
		cashBoxes.POST("/:cashBoxID/adjustments", h.AdjustCashBox)
	}

	bankAccounts := rg.Group("/bank-accounts")
	{
		bankAccounts.POST("", h.CreateBankAccount)
		bankAccounts.GET("", h.ListBankAccounts)
		bankAccounts.GET("/:bankAccountID", h.GetBankAccount)
		bankAccounts.POST("/:bankAccountID/adjustments", h.AdjustBankAccount)
	}
}

// CreateCashBox godoc
// @Summary Create a cash box
// @Tags treasury
// @Accept json
// @Produce json
// @Param cashBox body dto.CreateCashBoxRequest true "Cash box info"
// @Success 201 {object} dto.CashBoxResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-boxes [post]
func (h *treasuryHandler) CreateCashBox(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCashBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cashBox, err := h.treasuryService.CreateCashBox(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create cash box")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCashBoxResponse(cashBox))
}

// GetCashBox godoc
// @Summary Get a cash box
// @Tags treasury
// @Produce json
// @Param cashBoxID path string true "Cash box ID"
// @Success 200 {object} dto.CashBoxResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-boxes/{cashBoxID} [get]
func (h *treasuryHandler) GetCashBox(c *gin.Context) {
	cashBox, err := h.treasuryService.GetCashBoxByID(c.Request.Context(), c.Param("cashBoxID"))
	if err != nil {
		respondError(c, err, "Failed to get cash box")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashBoxResponse(cashBox))
}

// ListCashBoxes godoc
// @Summary List cash boxes
// @Tags treasury
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListCashBoxesResponse
// @Security BearerAuth
// @Router /cash-boxes [get]
func (h *treasuryHandler) ListCashBoxes(c *gin.Context) {
	var params paginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	cashBoxes, err := h.treasuryService.ListCashBoxes(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list cash boxes")
		return
	}
	responses := make([]dto.CashBoxResponse, len(cashBoxes))
	for i := range cashBoxes {
		responses[i] = dto.ToCashBoxResponse(&cashBoxes[i])
	}
	c.JSON(http.StatusOK, dto.ListCashBoxesResponse{CashBoxes: responses})
}

// AdjustCashBox godoc
// @Summary Deposit into or withdraw from a cash box
// @Description Applies a signed amount to the balance. Withdrawals beyond the
// @Description current balance are rejected.
// @Tags treasury
// @Accept json
// @Produce json
// @Param cashBoxID path string true "Cash box ID"
// @Param adjustment body dto.AdjustBalanceRequest true "Signed amount"
// @Success 200 {object} dto.CashBoxResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-boxes/{cashBoxID}/adjustments [post]
func (h *treasuryHandler) AdjustCashBox(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cashBox, err := h.treasuryService.AdjustCashBox(c.Request.Context(), c.Param("cashBoxID"), req.Amount, userID)
	if err != nil {
		respondError(c, err, "Failed to adjust cash box")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashBoxResponse(cashBox))
}

// CreateBankAccount godoc
// @Summary Create a bank account
// @Tags treasury
// @Accept json
// @Produce json
// @Param bankAccount body dto.CreateBankAccountRequest true "Bank account info"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts [post]
func (h *treasuryHandler) CreateBankAccount(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	account, err := h.treasuryService.CreateBankAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create bank account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// GetBankAccount godoc
// @Summary Get a bank account
// @Tags treasury
// @Produce json
// @Param bankAccountID path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID} [get]
func (h *treasuryHandler) GetBankAccount(c *gin.Context) {
	account, err := h.treasuryService.GetBankAccountByID(c.Request.Context(), c.Param("bankAccountID"))
	if err != nil {
		respondError(c, err, "Failed to get bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// ListBankAccounts godoc
// @Summary List bank accounts
// @Tags treasury
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListBankAccountsResponse
// @Security BearerAuth
// @Router /bank-accounts [get]
func (h *treasuryHandler) ListBankAccounts(c *gin.Context) {
	var params paginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	accounts, err := h.treasuryService.ListBankAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list bank accounts")
		return
	}
	responses := make([]dto.BankAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = dto.ToBankAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, dto.ListBankAccountsResponse{BankAccounts: responses})
}

// AdjustBankAccount godoc
// @Summary Deposit into or withdraw from a bank account
// @Tags treasury
// @Accept json
// @Produce json
// @Param bankAccountID path string true "Bank account ID"
// @Param adjustment body dto.AdjustBalanceRequest true "Signed amount"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID}/adjustments [post]
func (h *treasuryHandler) AdjustBankAccount(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	account, err := h.treasuryService.AdjustBankAccount(c.Request.Context(), c.Param("bankAccountID"), req.Amount, userID)
	if err != nil {
		respondError(c, err, "Failed to adjust bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}
