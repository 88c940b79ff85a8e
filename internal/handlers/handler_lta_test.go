package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/FretAfrique/fret_backoffice_app/internal/handlers"
	"github.com/FretAfrique/fret_backoffice_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LTA service ---

type MockLTAService struct {
	mock.Mock
}

func (m *MockLTAService) CreateLTA(ctx context.Context, req dto.CreateLTARequest, creatorUserID string) (*portssvc.CreateLTAResult, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.CreateLTAResult), args.Error(1)
}

func (m *MockLTAService) UpdateStatus(ctx context.Context, ltaID string, req dto.UpdateLTAStatusRequest, userID string) (*domain.LTA, error) {
	args := m.Called(ctx, ltaID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LTA), args.Error(1)
}

func (m *MockLTAService) GetLTAByID(ctx context.Context, ltaID string) (*domain.LTA, error) {
	args := m.Called(ctx, ltaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LTA), args.Error(1)
}

func (m *MockLTAService) GetLTAByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.LTA, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LTA), args.Error(1)
}

func (m *MockLTAService) ListLTAs(ctx context.Context, params dto.ListLTAsParams) ([]domain.LTA, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LTA), args.Error(1)
}

func (m *MockLTAService) GetStatusHistory(ctx context.Context, trackingNumber string) ([]domain.LTAStatusHistory, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LTAStatusHistory), args.Error(1)
}

var _ portssvc.LTASvcFacade = (*MockLTAService)(nil)

// --- Mock payment service ---

type MockLTAPaymentService struct {
	mock.Mock
}

func (m *MockLTAPaymentService) RecordPayment(ctx context.Context, ltaID string, req dto.RecordPaymentRequest, userID string) (*dto.PaymentSummary, error) {
	args := m.Called(ctx, ltaID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentSummary), args.Error(1)
}

func (m *MockLTAPaymentService) ListPaymentsByLTA(ctx context.Context, ltaID string) ([]domain.LTAPayment, error) {
	args := m.Called(ctx, ltaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LTAPayment), args.Error(1)
}

var _ portssvc.LTAPaymentSvcFacade = (*MockLTAPaymentService)(nil)

// --- Suite ---

type LTAHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockLTAService     *MockLTAService
	mockPaymentService *MockLTAPaymentService
	jwtSecret          string
}

func (suite *LTAHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.NoError(handlers.RegisterCustomValidators())

	suite.mockLTAService = new(MockLTAService)
	suite.mockPaymentService = new(MockLTAPaymentService)

	cfg := &config.Config{
		JWTSecret:                  suite.jwtSecret,
		IsProduction:               true,
		RefreshTokenExpiryDuration: time.Hour,
	}
	services := &portssvc.ServiceContainer{
		LTA:        suite.mockLTAService,
		LTAPayment: suite.mockPaymentService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *LTAHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LTAHandlerTestSuite) authorizedRequest(method, url string, body any, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LTAHandlerTestSuite) TestCreateLTA_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateLTARequest{
		OriginCityID:      uuid.NewString(),
		DestinationCityID: uuid.NewString(),
		PaymentMode:       domain.PaymentModeCash,
		WeightKg:          decimal.NewFromFloat(7.5),
		PackageCount:      2,
		ShipperName:       "Expediteur SARL",
	}
	created := domain.LTA{
		LTAID:             uuid.NewString(),
		LTANumber:         "LTA-20250314-4F2K9Q",
		TrackingNumber:    "TRK-7GQ2M8XWLZ",
		OriginCityID:      reqBody.OriginCityID,
		DestinationCityID: reqBody.DestinationCityID,
		PaymentMode:       domain.PaymentModeCash,
		WeightKg:          reqBody.WeightKg,
		PackageCount:      2,
		CalculatedCost:    decimal.NewFromInt(15),
		Status:            domain.StatusDraft,
		CreatedAt:         time.Now(),
	}

	suite.mockLTAService.On("CreateLTA", mock.Anything, mock.MatchedBy(func(r dto.CreateLTARequest) bool {
		return r.OriginCityID == reqBody.OriginCityID && r.WeightKg.Equal(reqBody.WeightKg)
	}), userID).Return(&portssvc.CreateLTAResult{LTA: created}, nil).Once()

	w := suite.authorizedRequest(http.MethodPost, "/api/v1/ltas", reqBody, userID)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateLTAResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.LTANumber, resp.LTANumber)
	suite.Equal(created.TrackingNumber, resp.TrackingNumber)
	suite.Empty(resp.PostingWarning)
	suite.mockLTAService.AssertExpectations(suite.T())
}

func (suite *LTAHandlerTestSuite) TestCreateLTA_PostingWarningSurfaced() {
	userID := uuid.NewString()
	reqBody := dto.CreateLTARequest{
		OriginCityID:      uuid.NewString(),
		DestinationCityID: uuid.NewString(),
		PaymentMode:       domain.PaymentModeCash,
		WeightKg:          decimal.NewFromInt(4),
	}
	result := &portssvc.CreateLTAResult{
		LTA:            domain.LTA{LTAID: uuid.NewString(), Status: domain.StatusDraft},
		PostingWarning: "no open fiscal year; accounting entry skipped",
	}
	suite.mockLTAService.On("CreateLTA", mock.Anything, mock.Anything, userID).Return(result, nil).Once()

	w := suite.authorizedRequest(http.MethodPost, "/api/v1/ltas", reqBody, userID)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateLTAResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(result.PostingWarning, resp.PostingWarning)
}

func (suite *LTAHandlerTestSuite) TestCreateLTA_ValidationErrorMapsTo400() {
	userID := uuid.NewString()
	reqBody := dto.CreateLTARequest{
		OriginCityID:      uuid.NewString(),
		DestinationCityID: uuid.NewString(),
		PaymentMode:       domain.PaymentModeToInvoice,
		WeightKg:          decimal.NewFromInt(4),
	}
	suite.mockLTAService.On("CreateLTA", mock.Anything, mock.Anything, userID).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.authorizedRequest(http.MethodPost, "/api/v1/ltas", reqBody, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LTAHandlerTestSuite) TestCreateLTA_MissingTokenRejected() {
	body, _ := json.Marshal(dto.CreateLTARequest{})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ltas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLTAService.AssertNotCalled(suite.T(), "CreateLTA")
}

func (suite *LTAHandlerTestSuite) TestGetLTA_NotFound() {
	userID := uuid.NewString()
	ltaID := uuid.NewString()
	suite.mockLTAService.On("GetLTAByID", mock.Anything, ltaID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authorizedRequest(http.MethodGet, "/api/v1/ltas/"+ltaID, nil, userID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LTAHandlerTestSuite) TestUpdateStatus_IllegalTransitionMapsTo409() {
	userID := uuid.NewString()
	ltaID := uuid.NewString()
	reqBody := dto.UpdateLTAStatusRequest{Status: domain.StatusDelivered}

	suite.mockLTAService.On("UpdateStatus", mock.Anything, ltaID, reqBody, userID).
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.authorizedRequest(http.MethodPut, "/api/v1/ltas/"+ltaID+"/status", reqBody, userID)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LTAHandlerTestSuite) TestRecordPayment_Success() {
	userID := uuid.NewString()
	ltaID := uuid.NewString()
	reqBody := dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(10),
		Method: domain.MethodCash,
	}
	summary := &dto.PaymentSummary{
		PaymentID:       uuid.NewString(),
		LTAID:           ltaID,
		Amount:          reqBody.Amount,
		Method:          domain.MethodCash,
		Reference:       "PAY-20250314-0001-5E7A9B01",
		RemainingAmount: decimal.NewFromInt(5),
	}
	suite.mockPaymentService.On("RecordPayment", mock.Anything, ltaID, mock.MatchedBy(func(r dto.RecordPaymentRequest) bool {
		return r.Amount.Equal(reqBody.Amount) && r.Method == reqBody.Method
	}), userID).Return(summary, nil).Once()

	w := suite.authorizedRequest(http.MethodPost, "/api/v1/ltas/"+ltaID+"/payments", reqBody, userID)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PaymentSummary
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(summary.Reference, resp.Reference)
	suite.True(resp.RemainingAmount.Equal(summary.RemainingAmount))
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *LTAHandlerTestSuite) TestRecordPayment_ExceedsBalanceMapsTo400() {
	userID := uuid.NewString()
	ltaID := uuid.NewString()
	reqBody := dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(100),
		Method: domain.MethodCash,
	}
	suite.mockPaymentService.On("RecordPayment", mock.Anything, ltaID, mock.Anything, userID).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.authorizedRequest(http.MethodPost, "/api/v1/ltas/"+ltaID+"/payments", reqBody, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LTAHandlerTestSuite) TestTrack_PublicWithoutToken() {
	trackingNumber := "TRK-7GQ2M8XWLZ"
	lta := domain.LTA{
		TrackingNumber: trackingNumber,
		Status:         domain.StatusInTransit,
	}
	history := []domain.LTAStatusHistory{
		{NewStatus: domain.StatusDraft, ChangedAt: time.Now().Add(-2 * time.Hour)},
		{PreviousStatus: domain.StatusDraft, NewStatus: domain.StatusConfirmed, ChangedAt: time.Now().Add(-time.Hour)},
		{PreviousStatus: domain.StatusConfirmed, NewStatus: domain.StatusInTransit, ChangedAt: time.Now()},
	}
	suite.mockLTAService.On("GetLTAByTrackingNumber", mock.Anything, trackingNumber).Return(&lta, nil).Once()
	suite.mockLTAService.On("GetStatusHistory", mock.Anything, trackingNumber).Return(history, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/track/"+trackingNumber, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrackingResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(trackingNumber, resp.TrackingNumber)
	suite.Equal(domain.StatusInTransit, resp.Status)
	suite.Len(resp.History, 3)
}

func TestLTAHandler(t *testing.T) {
	suite.Run(t, new(LTAHandlerTestSuite))
}
