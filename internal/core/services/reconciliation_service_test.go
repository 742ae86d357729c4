package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/djoufack/cashpilot/internal/apperrors"
	"github.com/djoufack/cashpilot/internal/core/domain"
	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
	"github.com/djoufack/cashpilot/internal/core/reconciliation"
	"github.com/djoufack/cashpilot/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	repo    *MockReconciliationRepository
	service portssvc.ReconciliationService
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.repo = new(MockReconciliationRepository)
	suite.service = services.NewReconciliationService(suite.repo,
		services.WithFetchLimit(25),
	)
}

func transfers() []domain.BankTransaction {
	return []domain.BankTransaction{
		{ID: "tx-1", Amount: dec("1000"), Date: date(2024, 2, 15), Reference: "VIR F-001"},
		{ID: "tx-2", Amount: dec("500"), Date: date(2024, 2, 16), Description: "Paiement F-002"},
	}
}

func openInvoices() []domain.OpenInvoice {
	return []domain.OpenInvoice{
		{ID: "inv-1", Number: "F-001", ClientName: "Acme", Total: dec("1000"), Date: date(2024, 2, 1)},
		{ID: "inv-2", Number: "F-002", ClientName: "Globex", Total: dec("500"), Date: date(2024, 2, 2)},
	}
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_CommitsQualifyingMatches() {
	suite.repo.On("ListUnmatchedTransactions", mock.Anything, testUserID, 25).Return(transfers(), nil).Once()
	suite.repo.On("ListOpenInvoices", mock.Anything, testUserID).Return(openInvoices(), nil).Once()
	suite.repo.On("CommitMatch", mock.Anything, testUserID,
		domain.ReconciliationMatch{TransactionID: "tx-1", InvoiceID: "inv-1", InvoiceNumber: "F-001", Confidence: 0.8},
		date(2024, 2, 15)).Return(nil).Once()
	suite.repo.On("CommitMatch", mock.Anything, testUserID,
		domain.ReconciliationMatch{TransactionID: "tx-2", InvoiceID: "inv-2", InvoiceNumber: "F-002", Confidence: 0.8},
		date(2024, 2, 16)).Return(nil).Once()

	result, err := suite.service.Reconcile(context.Background(), testUserID, reconciliation.DefaultThreshold)

	suite.Require().NoError(err)
	suite.Equal(2, result.Matched)
	suite.Equal(2, result.Scanned)
	suite.Zero(result.Failed)
	suite.Len(result.Details, 2)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_FailedCommitDoesNotAbortRun() {
	suite.repo.On("ListUnmatchedTransactions", mock.Anything, testUserID, 25).Return(transfers(), nil).Once()
	suite.repo.On("ListOpenInvoices", mock.Anything, testUserID).Return(openInvoices(), nil).Once()
	suite.repo.On("CommitMatch", mock.Anything, testUserID,
		mock.MatchedBy(func(m domain.ReconciliationMatch) bool { return m.TransactionID == "tx-1" }),
		date(2024, 2, 15)).Return(apperrors.ErrConflict).Once()
	suite.repo.On("CommitMatch", mock.Anything, testUserID,
		mock.MatchedBy(func(m domain.ReconciliationMatch) bool { return m.TransactionID == "tx-2" }),
		date(2024, 2, 16)).Return(nil).Once()

	result, err := suite.service.Reconcile(context.Background(), testUserID, reconciliation.DefaultThreshold)

	suite.Require().NoError(err)
	suite.Equal(1, result.Matched)
	suite.Equal(1, result.Failed)
	suite.Require().Len(result.Details, 1)
	suite.Equal("inv-2", result.Details[0].InvoiceID)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_BelowThresholdCommitsNothing() {
	suite.repo.On("ListUnmatchedTransactions", mock.Anything, testUserID, 25).Return([]domain.BankTransaction{
		{ID: "tx-1", Amount: dec("950"), Date: date(2024, 2, 15)},
	}, nil).Once()
	suite.repo.On("ListOpenInvoices", mock.Anything, testUserID).Return(openInvoices()[:1], nil).Once()

	result, err := suite.service.Reconcile(context.Background(), testUserID, reconciliation.DefaultThreshold)

	suite.Require().NoError(err)
	suite.Zero(result.Matched)
	suite.Equal(1, result.Scanned)
	suite.Empty(result.Details)
	suite.repo.AssertNotCalled(suite.T(), "CommitMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_InvalidThreshold() {
	for _, threshold := range []float64{-0.1, 1.5} {
		result, err := suite.service.Reconcile(context.Background(), testUserID, threshold)
		suite.Nil(result)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.repo.AssertNotCalled(suite.T(), "ListUnmatchedTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_LoadFailure() {
	suite.repo.On("ListUnmatchedTransactions", mock.Anything, testUserID, 25).Return(nil, assert.AnError).Once()
	suite.repo.On("ListOpenInvoices", mock.Anything, testUserID).Return(openInvoices(), nil).Maybe()

	result, err := suite.service.Reconcile(context.Background(), testUserID, reconciliation.DefaultThreshold)

	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
	suite.repo.AssertNotCalled(suite.T(), "CommitMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_CancelledContextStopsCommits() {
	ctx, cancel := context.WithCancel(context.Background())
	suite.repo.On("ListUnmatchedTransactions", mock.Anything, testUserID, 25).Return(transfers(), nil).Once()
	suite.repo.On("ListOpenInvoices", mock.Anything, testUserID).Return(openInvoices(), nil).Once()
	suite.repo.On("CommitMatch", mock.Anything, testUserID, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(nil).Once()

	result, err := suite.service.Reconcile(ctx, testUserID, reconciliation.DefaultThreshold)

	suite.Require().NoError(err)
	suite.Equal(1, result.Matched)
	suite.Equal(1, result.Failed)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_PaidDateIsTransactionDate() {
	booked := date(2024, 2, 15)
	suite.repo.On("ListUnmatchedTransactions", mock.Anything, testUserID, 25).Return([]domain.BankTransaction{
		{ID: "tx-1", Amount: dec("1200"), Date: booked, Reference: "VIR FAC-2024-001"},
	}, nil).Once()
	suite.repo.On("ListOpenInvoices", mock.Anything, testUserID).Return([]domain.OpenInvoice{
		{ID: "inv-1", Number: "FAC-2024-001", ClientName: "Acme", Total: dec("1200"), Date: date(2024, 1, 10)},
	}, nil).Once()

	var paidDate time.Time
	suite.repo.On("CommitMatch", mock.Anything, testUserID, mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { paidDate = args.Get(3).(time.Time) }).
		Return(nil).Once()

	result, err := suite.service.Reconcile(context.Background(), testUserID, reconciliation.DefaultThreshold)

	suite.Require().NoError(err)
	suite.Equal(1, result.Matched)
	suite.True(paidDate.Equal(booked), "paid date %s, want %s", paidDate, booked)
	suite.repo.AssertExpectations(suite.T())
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
