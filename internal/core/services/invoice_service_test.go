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

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	service  portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	invoiceID := uuid.NewString()

	invoice := &domain.Invoice{
		InvoiceID:     invoiceID,
		OwnerID:       ownerID,
		InvoiceNumber: "INV-0002",
		Total:         decimal.RequireFromString("110.00"),
		AmountPaid:    decimal.Zero,
		Status:        domain.InvoiceSent,
	}
	lineItems := []domain.InvoiceLineItem{
		{LineItemID: uuid.NewString(), InvoiceID: invoiceID},
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()
	suite.mockRepo.On("FindLineItemsByInvoiceID", ctx, invoiceID).Return(lineItems, nil).Once()

	found, err := suite.service.GetInvoiceByID(ctx, invoiceID, ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal("INV-0002", found.InvoiceNumber)
	suite.Len(found.LineItems, 1)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_Forbidden() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Invoice{
		InvoiceID: invoiceID,
		OwnerID:   uuid.NewString(),
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()

	found, err := suite.service.GetInvoiceByID(ctx, invoiceID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "FindLineItemsByInvoiceID", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_NotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(nil, apperrors.NewNotFoundError("invoice not found")).Once()

	found, err := suite.service.GetInvoiceByID(ctx, invoiceID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListCustomerInvoices_DefaultsLimitAndForwardsOutstandingFilter() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	customerID := uuid.NewString()

	invoices := []domain.Invoice{
		{
			InvoiceID:     uuid.NewString(),
			OwnerID:       ownerID,
			CustomerID:    customerID,
			InvoiceNumber: "INV-0001",
			InvoiceDate:   date(2025, time.May, 1),
			Total:         decimal.RequireFromString("110.00"),
			AmountPaid:    decimal.RequireFromString("50.00"),
			Status:        domain.InvoicePartiallyPaid,
		},
	}
	nextToken := "opaque-cursor"

	suite.mockRepo.On("ListInvoicesByCustomer", ctx, customerID, true, 20, (*string)(nil)).Return(invoices, &nextToken, nil).Once()

	resp, err := suite.service.ListCustomerInvoices(ctx, customerID, ownerID, dto.ListInvoicesParams{OnlyOutstanding: true})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Require().Len(resp.Invoices, 1)
	suite.Equal("INV-0001", resp.Invoices[0].InvoiceNumber)
	suite.True(resp.Invoices[0].BalanceDue.Equal(decimal.RequireFromString("60.00")))
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListCustomerInvoices_CapsLimit() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	customerID := uuid.NewString()

	suite.mockRepo.On("ListInvoicesByCustomer", ctx, customerID, false, 100, (*string)(nil)).Return([]domain.Invoice{}, nil, nil).Once()

	resp, err := suite.service.ListCustomerInvoices(ctx, customerID, ownerID, dto.ListInvoicesParams{Limit: 5000})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Empty(resp.Invoices)
	suite.Nil(resp.NextToken)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListCustomerInvoices_ForbiddenForForeignOwner() {
	ctx := context.Background()
	customerID := uuid.NewString()

	invoices := []domain.Invoice{
		{InvoiceID: uuid.NewString(), OwnerID: uuid.NewString(), CustomerID: customerID},
	}

	suite.mockRepo.On("ListInvoicesByCustomer", ctx, customerID, false, 20, (*string)(nil)).Return(invoices, nil, nil).Once()

	resp, err := suite.service.ListCustomerInvoices(ctx, customerID, uuid.NewString(), dto.ListInvoicesParams{})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
