package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/core/services"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceGeneratorTestSuite struct {
	suite.Suite
	mockRepo *MockRecurringInvoiceRepository
	service  portssvc.InvoiceGeneratorSvc
}

func (suite *InvoiceGeneratorTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecurringInvoiceRepository)
	suite.service = services.NewInvoiceGeneratorService(suite.mockRepo, services.NewRecurrenceService())
}

// dueInvoiceProfile builds a profile that is due on the given day (monthly,
// last generated exactly one month earlier).
func dueInvoiceProfile(ownerID string, today time.Time, lineItems ...domain.RecurringLineItem) domain.RecurringInvoiceProfile {
	last := today.AddDate(0, -1, 0)
	subtotal := decimal.Zero
	for _, li := range lineItems {
		subtotal = subtotal.Add(li.LineTotal)
	}
	tax := subtotal.Mul(decimal.RequireFromString("0.1"))
	return domain.RecurringInvoiceProfile{
		ProfileID:  uuid.NewString(),
		OwnerID:    ownerID,
		CustomerID: uuid.NewString(),
		Schedule: domain.Schedule{
			StartDate:         today.AddDate(0, -6, 0),
			Frequency:         domain.Monthly,
			Status:            domain.ProfileActive,
			LastGeneratedDate: &last,
		},
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
		Notes:     "monthly retainer",
		LineItems: lineItems,
	}
}

func (suite *InvoiceGeneratorTestSuite) TestRun_GeneratesInvoiceForDueProfile() {
	ctx := context.Background()
	today := date(2025, time.June, 1)
	ownerID := uuid.NewString()

	profile := dueInvoiceProfile(ownerID, today,
		domain.RecurringLineItem{
			LineItemID:  uuid.NewString(),
			ItemID:      "item-product",
			Description: "Widget",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.RequireFromString("50.00"),
			LineTotal:   decimal.RequireFromString("100.00"),
		},
		domain.RecurringLineItem{
			LineItemID:  uuid.NewString(),
			ItemID:      "item-service",
			Description: "Consulting",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.RequireFromString("200.00"),
			LineTotal:   decimal.RequireFromString("200.00"),
		},
	)

	var savedInvoice domain.Invoice
	var savedLineItems []domain.InvoiceLineItem

	suite.mockRepo.On("ListCandidateInvoiceProfiles", ctx, today).Return([]domain.RecurringInvoiceProfile{profile}, nil).Once()
	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("CountInvoicesForOwnerInTx", ctx, mock.Anything, ownerID).Return(int64(3), nil).Once()
	suite.mockRepo.On("SaveInvoiceInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Invoice"), mock.Anything).
		Run(func(args mock.Arguments) {
			savedInvoice = args.Get(2).(domain.Invoice)
			savedLineItems = args.Get(3).([]domain.InvoiceLineItem)
		}).Return(nil).Once()
	suite.mockRepo.On("DecrementProductQuantityInTx", ctx, mock.Anything, "item-product", decimal.NewFromInt(2)).Return(nil).Once()
	suite.mockRepo.On("DecrementProductQuantityInTx", ctx, mock.Anything, "item-service", decimal.NewFromInt(1)).Return(nil).Once()
	suite.mockRepo.On("MarkInvoiceProfileGeneratedInTx", ctx, mock.Anything, profile.ProfileID, today, ownerID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	count, err := suite.service.Run(ctx, today)

	suite.Require().NoError(err)
	suite.Equal(1, count)

	// Three invoices exist, so the fourth number is allocated.
	suite.Equal("INV-0004", savedInvoice.InvoiceNumber)
	suite.Equal(ownerID, savedInvoice.OwnerID)
	suite.Equal(profile.CustomerID, savedInvoice.CustomerID)
	suite.True(today.Equal(savedInvoice.InvoiceDate))
	suite.True(today.AddDate(0, 0, 30).Equal(savedInvoice.DueDate))
	suite.Equal(domain.InvoiceSent, savedInvoice.Status)
	suite.True(savedInvoice.Subtotal.Equal(profile.Subtotal))
	suite.True(savedInvoice.TaxAmount.Equal(profile.TaxAmount))
	suite.True(savedInvoice.Total.Equal(profile.Total))
	suite.True(savedInvoice.AmountPaid.IsZero())
	suite.Equal(profile.Notes, savedInvoice.Notes)

	// Line items are cloned with fresh identifiers.
	suite.Require().Len(savedLineItems, 2)
	for i, li := range savedLineItems {
		src := profile.LineItems[i]
		suite.NotEqual(src.LineItemID, li.LineItemID)
		suite.Equal(savedInvoice.InvoiceID, li.InvoiceID)
		suite.Equal(src.ItemID, li.ItemID)
		suite.Equal(src.Description, li.Description)
		suite.True(src.Quantity.Equal(li.Quantity))
		suite.True(src.UnitPrice.Equal(li.UnitPrice))
		suite.True(src.LineTotal.Equal(li.LineTotal))
	}

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceGeneratorTestSuite) TestRun_NumbersProfilesSequentiallyWithinBatch() {
	ctx := context.Background()
	today := date(2025, time.June, 1)
	ownerID := uuid.NewString()

	lineItem := domain.RecurringLineItem{
		LineItemID: uuid.NewString(),
		ItemID:     "item-1",
		Quantity:   decimal.NewFromInt(1),
		UnitPrice:  decimal.RequireFromString("10.00"),
		LineTotal:  decimal.RequireFromString("10.00"),
	}
	first := dueInvoiceProfile(ownerID, today, lineItem)
	second := dueInvoiceProfile(ownerID, today, lineItem)

	var numbers []string

	suite.mockRepo.On("ListCandidateInvoiceProfiles", ctx, today).Return([]domain.RecurringInvoiceProfile{first, second}, nil).Once()
	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	// The second count reflects the insert made earlier in the same tx.
	suite.mockRepo.On("CountInvoicesForOwnerInTx", ctx, mock.Anything, ownerID).Return(int64(0), nil).Once()
	suite.mockRepo.On("CountInvoicesForOwnerInTx", ctx, mock.Anything, ownerID).Return(int64(1), nil).Once()
	suite.mockRepo.On("SaveInvoiceInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Invoice"), mock.Anything).
		Run(func(args mock.Arguments) {
			numbers = append(numbers, args.Get(2).(domain.Invoice).InvoiceNumber)
		}).Return(nil).Twice()
	suite.mockRepo.On("DecrementProductQuantityInTx", ctx, mock.Anything, "item-1", mock.Anything).Return(nil).Twice()
	suite.mockRepo.On("MarkInvoiceProfileGeneratedInTx", ctx, mock.Anything, mock.Anything, today, ownerID, mock.AnythingOfType("time.Time")).Return(nil).Twice()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	count, err := suite.service.Run(ctx, today)

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.Equal([]string{"INV-0001", "INV-0002"}, numbers)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceGeneratorTestSuite) TestRun_NothingDue() {
	ctx := context.Background()
	today := date(2025, time.June, 1)

	// Candidate by window and status, but its next due date is still ahead.
	notDueYet := dueInvoiceProfile(uuid.NewString(), today)
	future := today.AddDate(0, 0, 10)
	notDueYet.LastGeneratedDate = &future

	suite.mockRepo.On("ListCandidateInvoiceProfiles", ctx, today).Return([]domain.RecurringInvoiceProfile{notDueYet}, nil).Once()
	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	count, err := suite.service.Run(ctx, today)

	suite.Require().NoError(err)
	suite.Equal(0, count)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoiceInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkInvoiceProfileGeneratedInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceGeneratorTestSuite) TestRun_MidBatchFailureRollsBackEverything() {
	ctx := context.Background()
	today := date(2025, time.June, 1)
	ownerID := uuid.NewString()

	lineItem := domain.RecurringLineItem{
		LineItemID: uuid.NewString(),
		ItemID:     "item-1",
		Quantity:   decimal.NewFromInt(1),
		UnitPrice:  decimal.RequireFromString("10.00"),
		LineTotal:  decimal.RequireFromString("10.00"),
	}
	first := dueInvoiceProfile(ownerID, today, lineItem)
	second := dueInvoiceProfile(ownerID, today, lineItem)

	suite.mockRepo.On("ListCandidateInvoiceProfiles", ctx, today).Return([]domain.RecurringInvoiceProfile{first, second}, nil).Once()
	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("CountInvoicesForOwnerInTx", ctx, mock.Anything, ownerID).Return(int64(0), nil).Once()
	suite.mockRepo.On("CountInvoicesForOwnerInTx", ctx, mock.Anything, ownerID).Return(int64(1), nil).Once()
	// First profile succeeds, the second fails on insert.
	suite.mockRepo.On("SaveInvoiceInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Invoice"), mock.Anything).Return(nil).Once()
	suite.mockRepo.On("SaveInvoiceInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Invoice"), mock.Anything).Return(assert.AnError).Once()
	suite.mockRepo.On("DecrementProductQuantityInTx", ctx, mock.Anything, "item-1", mock.Anything).Return(nil).Once()
	suite.mockRepo.On("MarkInvoiceProfileGeneratedInTx", ctx, mock.Anything, first.ProfileID, today, ownerID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	count, err := suite.service.Run(ctx, today)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(0, count)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *InvoiceGeneratorTestSuite) TestRun_ListError() {
	ctx := context.Background()
	today := date(2025, time.June, 1)

	suite.mockRepo.On("ListCandidateInvoiceProfiles", ctx, today).Return(nil, assert.AnError).Once()

	count, err := suite.service.Run(ctx, today)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(0, count)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func TestInvoiceGenerator(t *testing.T) {
	suite.Run(t, new(InvoiceGeneratorTestSuite))
}
