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

type LTAPaymentServiceTestSuite struct {
	suite.Suite
	paymentRepo  *MockPaymentRepository
	ltaRepo      *MockLTARepository
	treasuryRepo *MockTreasuryRepository
	ledgerPoster *MockLedgerPoster
	service      portssvc.LTAPaymentSvcFacade

	userID     string
	ltaID      string
	payableLTA *domain.LTA
}

func (s *LTAPaymentServiceTestSuite) SetupTest() {
	s.paymentRepo = new(MockPaymentRepository)
	s.ltaRepo = new(MockLTARepository)
	s.treasuryRepo = new(MockTreasuryRepository)
	s.ledgerPoster = new(MockLedgerPoster)
	s.service = services.NewLTAPaymentService(s.paymentRepo, s.ltaRepo, s.treasuryRepo, s.ledgerPoster)

	s.userID = uuid.NewString()
	s.ltaID = uuid.NewString()
	s.payableLTA = &domain.LTA{
		LTAID:          s.ltaID,
		LTANumber:      "LTA-20250314-AB12CD",
		PaymentMode:    domain.PaymentModeCash,
		Status:         domain.StatusConfirmed,
		CalculatedCost: decimal.RequireFromString("15.00"),
	}
}

func (s *LTAPaymentServiceTestSuite) TestRecordPayment_FullSettlement() {
	ctx := context.Background()

	s.ltaRepo.On("FindLTAByID", mock.Anything, s.ltaID).Return(s.payableLTA, nil).Once()
	s.paymentRepo.On("SumPaymentsByLTAID", mock.Anything, s.ltaID).Return(decimal.Zero, nil).Once()
	s.paymentRepo.On("CountPaymentsOnDate", mock.Anything, mock.AnythingOfType("time.Time")).Return(2, nil).Once()

	var savedPayment domain.LTAPayment
	s.paymentRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.LTAPayment")).
		Run(func(args mock.Arguments) {
			savedPayment = args.Get(1).(domain.LTAPayment)
		}).Return(nil).Once()
	s.ledgerPoster.On("PostPayment", mock.Anything, mock.AnythingOfType("domain.LTAPayment"), s.payableLTA.LTANumber, s.userID).
		Return(&domain.JournalEntry{EntryID: uuid.NewString()}, "", nil).Once()

	summary, err := s.service.RecordPayment(ctx, s.ltaID, dto.RecordPaymentRequest{
		Amount: decimal.RequireFromString("15.00"),
		Method: domain.MethodCash,
	}, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(summary)
	s.True(summary.RemainingAmount.IsZero(), "expected zero remaining, got %s", summary.RemainingAmount)
	s.Empty(summary.PostingWarning)
	s.True(strings.HasPrefix(summary.Reference, "PAY-"))
	s.Contains(summary.Reference, "-0003-")
	s.Equal(summary.Reference, savedPayment.Reference)
	s.paymentRepo.AssertExpectations(s.T())
	s.ledgerPoster.AssertExpectations(s.T())
}

func (s *LTAPaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()

	_, err := s.service.RecordPayment(ctx, s.ltaID, dto.RecordPaymentRequest{
		Amount: decimal.Zero,
		Method: domain.MethodCash,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.ltaRepo.AssertNotCalled(s.T(), "FindLTAByID", mock.Anything, mock.Anything)
}

func (s *LTAPaymentServiceTestSuite) TestRecordPayment_ExceedsRemainingBalance() {
	ctx := context.Background()

	s.ltaRepo.On("FindLTAByID", mock.Anything, s.ltaID).Return(s.payableLTA, nil).Once()
	s.paymentRepo.On("SumPaymentsByLTAID", mock.Anything, s.ltaID).Return(decimal.Zero, nil).Once()

	_, err := s.service.RecordPayment(ctx, s.ltaID, dto.RecordPaymentRequest{
		Amount: decimal.RequireFromString("20.00"),
		Method: domain.MethodCash,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.paymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (s *LTAPaymentServiceTestSuite) TestRecordPayment_PartialThenOverpayRejected() {
	ctx := context.Background()

	s.ltaRepo.On("FindLTAByID", mock.Anything, s.ltaID).Return(s.payableLTA, nil).Once()
	// 10.00 already paid against a 15.00 cost leaves 5.00.
	s.paymentRepo.On("SumPaymentsByLTAID", mock.Anything, s.ltaID).
		Return(decimal.RequireFromString("10.00"), nil).Once()

	_, err := s.service.RecordPayment(ctx, s.ltaID, dto.RecordPaymentRequest{
		Amount: decimal.RequireFromString("6.00"),
		Method: domain.MethodCash,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LTAPaymentServiceTestSuite) TestRecordPayment_DraftLTARejected() {
	ctx := context.Background()
	draft := &domain.LTA{
		LTAID:          s.ltaID,
		PaymentMode:    domain.PaymentModeCash,
		Status:         domain.StatusDraft,
		CalculatedCost: decimal.RequireFromString("15.00"),
	}
	s.ltaRepo.On("FindLTAByID", mock.Anything, s.ltaID).Return(draft, nil).Once()

	_, err := s.service.RecordPayment(ctx, s.ltaID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(5),
		Method: domain.MethodCash,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *LTAPaymentServiceTestSuite) TestRecordPayment_InvoicedModeRejected() {
	ctx := context.Background()
	clientID := uuid.NewString()
	invoiced := &domain.LTA{
		LTAID:          s.ltaID,
		PaymentMode:    domain.PaymentModeToInvoice,
		ClientID:       &clientID,
		Status:         domain.StatusConfirmed,
		CalculatedCost: decimal.RequireFromString("15.00"),
	}
	s.ltaRepo.On("FindLTAByID", mock.Anything, s.ltaID).Return(invoiced, nil).Once()

	_, err := s.service.RecordPayment(ctx, s.ltaID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(5),
		Method: domain.MethodBankTransfer,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *LTAPaymentServiceTestSuite) TestRecordPayment_WithCashBox() {
	ctx := context.Background()
	cashBoxID := uuid.NewString()

	s.ltaRepo.On("FindLTAByID", mock.Anything, s.ltaID).Return(s.payableLTA, nil).Once()
	s.paymentRepo.On("SumPaymentsByLTAID", mock.Anything, s.ltaID).Return(decimal.Zero, nil).Once()
	s.treasuryRepo.On("FindCashBoxByID", mock.Anything, cashBoxID).
		Return(&domain.CashBox{CashBoxID: cashBoxID, IsActive: true}, nil).Once()
	s.paymentRepo.On("CountPaymentsOnDate", mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil).Once()
	s.paymentRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.LTAPayment")).Return(nil).Once()
	s.ledgerPoster.On("PostPayment", mock.Anything, mock.AnythingOfType("domain.LTAPayment"), s.payableLTA.LTANumber, s.userID).
		Return(&domain.JournalEntry{}, "", nil).Once()

	summary, err := s.service.RecordPayment(ctx, s.ltaID, dto.RecordPaymentRequest{
		Amount:    decimal.RequireFromString("5.00"),
		Method:    domain.MethodCash,
		CashBoxID: &cashBoxID,
	}, s.userID)

	s.Require().NoError(err)
	s.True(summary.RemainingAmount.Equal(decimal.RequireFromString("10.00")))
	s.treasuryRepo.AssertExpectations(s.T())
}

func (s *LTAPaymentServiceTestSuite) TestRecordPayment_PostingWarningDoesNotFailPayment() {
	ctx := context.Background()

	s.ltaRepo.On("FindLTAByID", mock.Anything, s.ltaID).Return(s.payableLTA, nil).Once()
	s.paymentRepo.On("SumPaymentsByLTAID", mock.Anything, s.ltaID).Return(decimal.Zero, nil).Once()
	s.paymentRepo.On("CountPaymentsOnDate", mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil).Once()
	s.paymentRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.LTAPayment")).Return(nil).Once()
	s.ledgerPoster.On("PostPayment", mock.Anything, mock.AnythingOfType("domain.LTAPayment"), s.payableLTA.LTANumber, s.userID).
		Return(nil, "account 531 missing from chart of accounts; accounting entry skipped", nil).Once()

	summary, err := s.service.RecordPayment(ctx, s.ltaID, dto.RecordPaymentRequest{
		Amount: decimal.RequireFromString("15.00"),
		Method: domain.MethodCash,
	}, s.userID)

	s.Require().NoError(err)
	s.Equal("account 531 missing from chart of accounts; accounting entry skipped", summary.PostingWarning)
}

func TestLTAPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LTAPaymentServiceTestSuite))
}
