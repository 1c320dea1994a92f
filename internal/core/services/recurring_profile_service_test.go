package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/core/services"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecurringProfileServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockRecurringInvoiceRepository
	mockExpenseRepo *MockRecurringExpenseRepository
	mockCatalogRepo *MockCatalogItemRepository
	service         portssvc.RecurringProfileSvcFacade
}

func (suite *RecurringProfileServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockRecurringInvoiceRepository)
	suite.mockExpenseRepo = new(MockRecurringExpenseRepository)
	suite.mockCatalogRepo = new(MockCatalogItemRepository)
	suite.service = services.NewRecurringProfileService(suite.mockInvoiceRepo, suite.mockExpenseRepo, suite.mockCatalogRepo)
}

func validInvoiceProfileRequest() dto.CreateRecurringInvoiceProfileRequest {
	return dto.CreateRecurringInvoiceProfileRequest{
		CustomerID: uuid.NewString(),
		StartDate:  date(2025, time.July, 1),
		Frequency:  domain.Monthly,
		Subtotal:   decimal.RequireFromString("100.00"),
		TaxAmount:  decimal.RequireFromString("10.00"),
		Total:      decimal.RequireFromString("110.00"),
		LineItems: []dto.CreateRecurringLineItemRequest{
			{
				ItemID:    uuid.NewString(),
				Quantity:  decimal.NewFromInt(1),
				UnitPrice: decimal.RequireFromString("100.00"),
				LineTotal: decimal.RequireFromString("100.00"),
			},
		},
	}
}

func (suite *RecurringProfileServiceTestSuite) TestCreateInvoiceProfile_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := validInvoiceProfileRequest()
	itemID := req.LineItems[0].ItemID

	suite.mockCatalogRepo.On("FindCatalogItemsByIDs", ctx, []string{itemID}).
		Return(map[string]domain.CatalogItem{
			itemID: {ItemID: itemID, OwnerID: creatorUserID, ItemType: domain.ItemProduct},
		}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoiceProfile", ctx, mock.AnythingOfType("domain.RecurringInvoiceProfile")).Return(nil).Once()

	profile, err := suite.service.CreateInvoiceProfile(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(profile)
	suite.NotEmpty(profile.ProfileID)
	suite.Equal(creatorUserID, profile.OwnerID)
	suite.Equal(domain.ProfileActive, profile.Status)
	suite.Nil(profile.LastGeneratedDate)
	suite.Require().Len(profile.LineItems, 1)
	suite.NotEmpty(profile.LineItems[0].LineItemID)
	suite.Equal(profile.ProfileID, profile.LineItems[0].ProfileID)
	suite.WithinDuration(time.Now(), profile.CreatedAt, time.Second)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *RecurringProfileServiceTestSuite) TestCreateInvoiceProfile_InvalidFrequency() {
	ctx := context.Background()
	req := validInvoiceProfileRequest()
	req.Frequency = "FORTNIGHTLY"

	profile, err := suite.service.CreateInvoiceProfile(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoiceProfile", mock.Anything, mock.Anything)
}

func (suite *RecurringProfileServiceTestSuite) TestCreateInvoiceProfile_EndBeforeStart() {
	ctx := context.Background()
	req := validInvoiceProfileRequest()
	end := req.StartDate.AddDate(0, 0, -1)
	req.EndDate = &end

	profile, err := suite.service.CreateInvoiceProfile(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoiceProfile", mock.Anything, mock.Anything)
}

func (suite *RecurringProfileServiceTestSuite) TestCreateInvoiceProfile_UnknownCatalogItem() {
	ctx := context.Background()
	req := validInvoiceProfileRequest()
	itemID := req.LineItems[0].ItemID

	suite.mockCatalogRepo.On("FindCatalogItemsByIDs", ctx, []string{itemID}).
		Return(map[string]domain.CatalogItem{}, nil).Once()

	profile, err := suite.service.CreateInvoiceProfile(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockCatalogRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoiceProfile", mock.Anything, mock.Anything)
}

func (suite *RecurringProfileServiceTestSuite) TestGetInvoiceProfileByID_Forbidden() {
	ctx := context.Background()
	profileID := uuid.NewString()
	profile := &domain.RecurringInvoiceProfile{
		ProfileID: profileID,
		OwnerID:   uuid.NewString(),
	}

	suite.mockInvoiceRepo.On("FindInvoiceProfileByID", ctx, profileID).Return(profile, nil).Once()

	found, err := suite.service.GetInvoiceProfileByID(ctx, profileID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *RecurringProfileServiceTestSuite) TestSetInvoiceProfileStatus_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	profileID := uuid.NewString()
	profile := &domain.RecurringInvoiceProfile{
		ProfileID: profileID,
		OwnerID:   ownerID,
		Schedule:  domain.Schedule{Status: domain.ProfileActive},
	}

	suite.mockInvoiceRepo.On("FindInvoiceProfileByID", ctx, profileID).Return(profile, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceProfileStatus", ctx, profileID, domain.ProfilePaused, ownerID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.SetInvoiceProfileStatus(ctx, profileID, domain.ProfilePaused, ownerID)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *RecurringProfileServiceTestSuite) TestSetInvoiceProfileStatus_Forbidden() {
	ctx := context.Background()
	profileID := uuid.NewString()
	profile := &domain.RecurringInvoiceProfile{
		ProfileID: profileID,
		OwnerID:   uuid.NewString(),
	}

	suite.mockInvoiceRepo.On("FindInvoiceProfileByID", ctx, profileID).Return(profile, nil).Once()

	err := suite.service.SetInvoiceProfileStatus(ctx, profileID, domain.ProfilePaused, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceProfileStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecurringProfileServiceTestSuite) TestCreateExpenseProfile_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateRecurringExpenseProfileRequest{
		VendorName:  "Cloud Hosting Inc",
		CategoryID:  uuid.NewString(),
		StartDate:   date(2025, time.July, 1),
		Frequency:   domain.Weekly,
		Amount:      decimal.RequireFromString("45.50"),
		Description: "Weekly compute bill",
	}

	suite.mockExpenseRepo.On("SaveExpenseProfile", ctx, mock.AnythingOfType("domain.RecurringExpenseProfile")).Return(nil).Once()

	profile, err := suite.service.CreateExpenseProfile(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(profile)
	suite.Equal(creatorUserID, profile.OwnerID)
	suite.Equal(domain.ProfileActive, profile.Status)
	suite.Nil(profile.LastGeneratedDate)
	suite.True(profile.Amount.Equal(req.Amount))

	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *RecurringProfileServiceTestSuite) TestCreateExpenseProfile_InvalidFrequency() {
	ctx := context.Background()
	req := dto.CreateRecurringExpenseProfileRequest{
		VendorName:  "Cloud Hosting Inc",
		CategoryID:  uuid.NewString(),
		StartDate:   date(2025, time.July, 1),
		Frequency:   "DAILY",
		Amount:      decimal.RequireFromString("45.50"),
		Description: "Weekly compute bill",
	}

	profile, err := suite.service.CreateExpenseProfile(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpenseProfile", mock.Anything, mock.Anything)
}

func TestRecurringProfileService(t *testing.T) {
	suite.Run(t, new(RecurringProfileServiceTestSuite))
}
