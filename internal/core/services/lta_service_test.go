package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testTrackingBaseURL = "https://track.fret.example"

type LTAServiceTestSuite struct {
	suite.Suite
	ltaRepo        *MockLTARepository
	cityRepo       *MockCityRepository
	clientRepo     *MockClientRepository
	costCalculator *MockCostCalculator
	ledgerPoster   *MockLedgerPoster
	service        portssvc.LTASvcFacade

	userID      string
	origin      string
	destination string
}

func (s *LTAServiceTestSuite) SetupTest() {
	s.ltaRepo = new(MockLTARepository)
	s.cityRepo = new(MockCityRepository)
	s.clientRepo = new(MockClientRepository)
	s.costCalculator = new(MockCostCalculator)
	s.ledgerPoster = new(MockLedgerPoster)
	s.service = services.NewLTAService(
		s.ltaRepo, s.cityRepo, s.clientRepo, s.costCalculator, s.ledgerPoster, testTrackingBaseURL,
	)

	s.userID = uuid.NewString()
	s.origin = uuid.NewString()
	s.destination = uuid.NewString()
}

func (s *LTAServiceTestSuite) expectCitiesExist() {
	ctx := mock.Anything
	s.cityRepo.On("FindCityByID", ctx, s.origin).Return(&domain.City{CityID: s.origin}, nil).Once()
	s.cityRepo.On("FindCityByID", ctx, s.destination).Return(&domain.City{CityID: s.destination}, nil).Once()
}

func (s *LTAServiceTestSuite) expectUniqueNumbers() {
	s.ltaRepo.On("LTANumberExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
	s.ltaRepo.On("TrackingNumberExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
}

func (s *LTAServiceTestSuite) TestCreateLTA_CashSuccess() {
	ctx := context.Background()
	weight := decimal.NewFromInt(5)
	cost := decimal.RequireFromString("15.00")

	s.expectCitiesExist()
	s.costCalculator.On("CalculateCost", mock.Anything, s.origin, s.destination, weight).
		Return(cost, true, nil).Once()
	s.expectUniqueNumbers()

	var savedLTA domain.LTA
	s.ltaRepo.On("SaveLTA", mock.Anything, mock.AnythingOfType("domain.LTA"), mock.AnythingOfType("domain.LTAStatusHistory")).
		Run(func(args mock.Arguments) {
			savedLTA = args.Get(1).(domain.LTA)
		}).Return(nil).Once()
	s.ledgerPoster.On("PostLTACreation", mock.Anything, mock.AnythingOfType("domain.LTA"), s.userID).
		Return(&domain.JournalEntry{EntryID: uuid.NewString()}, "", nil).Once()

	result, err := s.service.CreateLTA(ctx, dto.CreateLTARequest{
		OriginCityID:      s.origin,
		DestinationCityID: s.destination,
		PaymentMode:       domain.PaymentModeCash,
		WeightKg:          weight,
		PackageCount:      2,
		ShipperName:       "Amadou Traore",
		ConsigneeName:     "Mariam Keita",
	}, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(domain.StatusDraft, result.LTA.Status)
	s.True(result.LTA.CalculatedCost.Equal(cost))
	s.Empty(result.PostingWarning)
	s.True(strings.HasPrefix(result.LTA.LTANumber, "LTA-"))
	s.True(strings.HasPrefix(result.LTA.TrackingNumber, "TRK-"))
	s.Contains(result.LTA.QRPayload, testTrackingBaseURL+"/track/"+result.LTA.TrackingNumber)
	s.Equal(result.LTA, savedLTA)

	s.ltaRepo.AssertExpectations(s.T())
	s.ledgerPoster.AssertExpectations(s.T())
}

func (s *LTAServiceTestSuite) TestCreateLTA_ToInvoiceWithoutClient() {
	ctx := context.Background()

	result, err := s.service.CreateLTA(ctx, dto.CreateLTARequest{
		OriginCityID:      s.origin,
		DestinationCityID: s.destination,
		PaymentMode:       domain.PaymentModeToInvoice,
		WeightKg:          decimal.NewFromInt(5),
	}, s.userID)

	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ltaRepo.AssertNotCalled(s.T(), "SaveLTA", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LTAServiceTestSuite) TestCreateLTA_UnknownPaymentMode() {
	ctx := context.Background()

	_, err := s.service.CreateLTA(ctx, dto.CreateLTARequest{
		OriginCityID:      s.origin,
		DestinationCityID: s.destination,
		PaymentMode:       domain.PaymentMode("BARTER"),
		WeightKg:          decimal.NewFromInt(5),
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LTAServiceTestSuite) TestCreateLTA_PostingWarningDoesNotFailCreation() {
	ctx := context.Background()
	weight := decimal.NewFromInt(5)
	cost := decimal.RequireFromString("15.00")

	s.expectCitiesExist()
	s.costCalculator.On("CalculateCost", mock.Anything, s.origin, s.destination, weight).
		Return(cost, true, nil).Once()
	s.expectUniqueNumbers()
	s.ltaRepo.On("SaveLTA", mock.Anything, mock.AnythingOfType("domain.LTA"), mock.AnythingOfType("domain.LTAStatusHistory")).
		Return(nil).Once()
	s.ledgerPoster.On("PostLTACreation", mock.Anything, mock.AnythingOfType("domain.LTA"), s.userID).
		Return(nil, "no open fiscal year; accounting entry skipped", nil).Once()

	result, err := s.service.CreateLTA(ctx, dto.CreateLTARequest{
		OriginCityID:      s.origin,
		DestinationCityID: s.destination,
		PaymentMode:       domain.PaymentModeCash,
		WeightKg:          weight,
	}, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal("no open fiscal year; accounting entry skipped", result.PostingWarning)
}

func (s *LTAServiceTestSuite) TestCreateLTA_RetriesOnNumberCollision() {
	ctx := context.Background()
	weight := decimal.NewFromInt(5)

	s.expectCitiesExist()
	s.costCalculator.On("CalculateCost", mock.Anything, s.origin, s.destination, weight).
		Return(decimal.NewFromInt(10), false, nil).Once()

	s.ltaRepo.On("LTANumberExists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil).Once()
	s.ltaRepo.On("LTANumberExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
	s.ltaRepo.On("TrackingNumberExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
	s.ltaRepo.On("SaveLTA", mock.Anything, mock.AnythingOfType("domain.LTA"), mock.AnythingOfType("domain.LTAStatusHistory")).
		Return(nil).Once()
	s.ledgerPoster.On("PostLTACreation", mock.Anything, mock.AnythingOfType("domain.LTA"), s.userID).
		Return(&domain.JournalEntry{}, "", nil).Once()

	result, err := s.service.CreateLTA(ctx, dto.CreateLTARequest{
		OriginCityID:      s.origin,
		DestinationCityID: s.destination,
		PaymentMode:       domain.PaymentModeCash,
		WeightKg:          weight,
	}, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.ltaRepo.AssertExpectations(s.T())
}

func (s *LTAServiceTestSuite) TestUpdateStatus_DraftToConfirmed() {
	ctx := context.Background()
	ltaID := uuid.NewString()
	trackingNumber := "TRK-ABC1234567"
	lta := &domain.LTA{
		LTAID:          ltaID,
		TrackingNumber: trackingNumber,
		Status:         domain.StatusDraft,
	}
	s.ltaRepo.On("FindLTAByID", mock.Anything, ltaID).Return(lta, nil).Once()

	var savedHistory domain.LTAStatusHistory
	s.ltaRepo.On("UpdateLTAStatus", mock.Anything, mock.AnythingOfType("domain.LTA"), mock.AnythingOfType("domain.LTAStatusHistory")).
		Run(func(args mock.Arguments) {
			savedHistory = args.Get(2).(domain.LTAStatusHistory)
		}).Return(nil).Once()

	updated, err := s.service.UpdateStatus(ctx, ltaID, dto.UpdateLTAStatusRequest{
		Status: domain.StatusConfirmed,
		Reason: "documents verified",
	}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.StatusConfirmed, updated.Status)
	s.Equal(testTrackingBaseURL+"/track/"+trackingNumber, updated.QRPayload)
	s.Equal(domain.StatusDraft, savedHistory.PreviousStatus)
	s.Equal(domain.StatusConfirmed, savedHistory.NewStatus)
	s.Equal("documents verified", savedHistory.Reason)
	s.ltaRepo.AssertExpectations(s.T())
}

func (s *LTAServiceTestSuite) TestUpdateStatus_IllegalTransition() {
	ctx := context.Background()
	ltaID := uuid.NewString()
	lta := &domain.LTA{LTAID: ltaID, Status: domain.StatusDraft}
	s.ltaRepo.On("FindLTAByID", mock.Anything, ltaID).Return(lta, nil).Once()

	_, err := s.service.UpdateStatus(ctx, ltaID, dto.UpdateLTAStatusRequest{
		Status: domain.StatusDelivered,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.ltaRepo.AssertNotCalled(s.T(), "UpdateLTAStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LTAServiceTestSuite) TestUpdateStatus_TerminalStateRejected() {
	ctx := context.Background()
	ltaID := uuid.NewString()
	lta := &domain.LTA{LTAID: ltaID, Status: domain.StatusCancelled}
	s.ltaRepo.On("FindLTAByID", mock.Anything, ltaID).Return(lta, nil).Once()

	_, err := s.service.UpdateStatus(ctx, ltaID, dto.UpdateLTAStatusRequest{
		Status: domain.StatusConfirmed,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *LTAServiceTestSuite) TestGetStatusHistory() {
	ctx := context.Background()
	ltaID := uuid.NewString()
	trackingNumber := "TRK-XYZ9876543"
	lta := &domain.LTA{LTAID: ltaID, TrackingNumber: trackingNumber, Status: domain.StatusInTransit}
	history := []domain.LTAStatusHistory{
		{LTAID: ltaID, NewStatus: domain.StatusDraft},
		{LTAID: ltaID, PreviousStatus: domain.StatusDraft, NewStatus: domain.StatusConfirmed},
		{LTAID: ltaID, PreviousStatus: domain.StatusConfirmed, NewStatus: domain.StatusInTransit},
	}
	s.ltaRepo.On("FindLTAByTrackingNumber", mock.Anything, trackingNumber).Return(lta, nil).Once()
	s.ltaRepo.On("FindStatusHistoryByLTAID", mock.Anything, ltaID).Return(history, nil).Once()

	got, err := s.service.GetStatusHistory(ctx, trackingNumber)

	s.Require().NoError(err)
	s.Len(got, 3)
	s.Equal(domain.StatusInTransit, got[2].NewStatus)
}

func (s *LTAServiceTestSuite) TestGetStatusHistory_UnknownTrackingNumber() {
	ctx := context.Background()
	s.ltaRepo.On("FindLTAByTrackingNumber", mock.Anything, "TRK-MISSING000").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetStatusHistory(ctx, "TRK-MISSING000")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLTAServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LTAServiceTestSuite))
}
