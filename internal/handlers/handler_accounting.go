package handlers

import (
	"net/http"

	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type accountingHandler struct {
	accountingService portssvc.AccountingSvcFacade
}

func registerAccountingRoutes(rg *gin.RouterGroup, accountingService portssvc.AccountingSvcFacade) {
	h := &accountingHandler{accountingService: accountingService}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.CreateAccount)
		accounts.GET("", h.ListAccounts)
		accounts.GET("/:number", h.GetAccount)
	}

	fiscalYears := rg.Group("/fiscal-years")
	{
		fiscalYears.POST("", h.OpenFiscalYear)
		fiscalYears.GET("/current", h.GetCurrentFiscalYear)
		fiscalYears.POST("/:fiscalYearID/close", h.CloseFiscalYear)
	}

	journal := rg.Group("/journal-entries")
	{
		journal.GET("", h.ListJournalEntries)
		journal.GET("/:entryID", h.GetJournalEntry)
	}
}

// CreateAccount godoc
// @Summary Add a chart-of-accounts node
// @Tags accounting
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account info"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Account number already exists"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountingHandler) CreateAccount(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	account, err := h.accountingService.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// GetAccount godoc
// @Summary Get an account by number
// @Tags accounting
// @Produce json
// @Param number path string true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{number} [get]
func (h *accountingHandler) GetAccount(c *gin.Context) {
	account, err := h.accountingService.GetAccountByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err, "Failed to get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// ListAccounts godoc
// @Summary List the chart of accounts
// @Tags accounting
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountingHandler) ListAccounts(c *gin.Context) {
	var params paginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	accounts, err := h.accountingService.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	responses := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = dto.ToAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: responses})
}

// OpenFiscalYear godoc
// @Summary Open a fiscal year
// @Description Opens a new accounting period. Only one period may be open at
// @Description a time.
// @Tags accounting
// @Accept json
// @Produce json
// @Param fiscalYear body dto.OpenFiscalYearRequest true "Fiscal year info"
// @Success 201 {object} dto.FiscalYearResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A fiscal year is already open"
// @Security BearerAuth
// @Router /fiscal-years [post]
func (h *accountingHandler) OpenFiscalYear(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.OpenFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	fiscalYear, err := h.accountingService.OpenFiscalYear(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to open fiscal year")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFiscalYearResponse(fiscalYear))
}

// CloseFiscalYear godoc
// @Summary Close a fiscal year
// @Tags accounting
// @Produce json
// @Param fiscalYearID path string true "Fiscal year ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Fiscal year is not open"
// @Security BearerAuth
// @Router /fiscal-years/{fiscalYearID}/close [post]
func (h *accountingHandler) CloseFiscalYear(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	fiscalYear, err := h.accountingService.CloseFiscalYear(c.Request.Context(), c.Param("fiscalYearID"), userID)
	if err != nil {
		respondError(c, err, "Failed to close fiscal year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fiscalYear))
}

// GetCurrentFiscalYear godoc
// @Summary Get the open fiscal year
// @Tags accounting
// @Produce json
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 404 {object} ErrorResponse "No fiscal year is open"
// @Security BearerAuth
// @Router /fiscal-years/current [get]
func (h *accountingHandler) GetCurrentFiscalYear(c *gin.Context) {
	fiscalYear, err := h.accountingService.GetCurrentFiscalYear(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get current fiscal year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fiscalYear))
}

// GetJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags accounting
// @Produce json
// @Param entryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *accountingHandler) GetJournalEntry(c *gin.Context) {
	entry, err := h.accountingService.GetJournalEntryByID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondError(c, err, "Failed to get journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// ListJournalEntries godoc
// @Summary List journal entries
// @Tags accounting
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *accountingHandler) ListJournalEntries(c *gin.Context) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	entries, err := h.accountingService.ListJournalEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list journal entries")
		return
	}
	responses := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{Entries: responses})
}
