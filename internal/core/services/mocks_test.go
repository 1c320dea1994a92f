package services_test

import (
	"context"
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock for RecurringInvoiceRepositoryFacade ---

type MockRecurringInvoiceRepository struct {
	mock.Mock
}

func (m *MockRecurringInvoiceRepository) FindInvoiceProfileByID(ctx context.Context, profileID string) (*domain.RecurringInvoiceProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringInvoiceProfile), args.Error(1)
}

func (m *MockRecurringInvoiceRepository) ListInvoiceProfilesByOwner(ctx context.Context, ownerID string) ([]domain.RecurringInvoiceProfile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringInvoiceProfile), args.Error(1)
}

func (m *MockRecurringInvoiceRepository) ListCandidateInvoiceProfiles(ctx context.Context, asOf time.Time) ([]domain.RecurringInvoiceProfile, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringInvoiceProfile), args.Error(1)
}

func (m *MockRecurringInvoiceRepository) SaveInvoiceProfile(ctx context.Context, profile domain.RecurringInvoiceProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockRecurringInvoiceRepository) UpdateInvoiceProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, profileID, status, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockRecurringInvoiceRepository) CountInvoicesForOwnerInTx(ctx context.Context, tx pgx.Tx, ownerID string) (int64, error) {
	args := m.Called(ctx, tx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecurringInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, lineItems []domain.InvoiceLineItem) error {
	args := m.Called(ctx, tx, invoice, lineItems)
	return args.Error(0)
}

func (m *MockRecurringInvoiceRepository) DecrementProductQuantityInTx(ctx context.Context, tx pgx.Tx, itemID string, quantity decimal.Decimal) error {
	args := m.Called(ctx, tx, itemID, quantity)
	return args.Error(0)
}

func (m *MockRecurringInvoiceRepository) MarkInvoiceProfileGeneratedInTx(ctx context.Context, tx pgx.Tx, profileID string, generatedOn time.Time, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, profileID, generatedOn, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockRecurringInvoiceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockRecurringInvoiceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRecurringInvoiceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock for RecurringExpenseRepositoryFacade ---

type MockRecurringExpenseRepository struct {
	mock.Mock
}

func (m *MockRecurringExpenseRepository) FindExpenseProfileByID(ctx context.Context, profileID string) (*domain.RecurringExpenseProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringExpenseProfile), args.Error(1)
}

func (m *MockRecurringExpenseRepository) ListExpenseProfilesByOwner(ctx context.Context, ownerID string) ([]domain.RecurringExpenseProfile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringExpenseProfile), args.Error(1)
}

func (m *MockRecurringExpenseRepository) ListCandidateExpenseProfiles(ctx context.Context, asOf time.Time) ([]domain.RecurringExpenseProfile, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringExpenseProfile), args.Error(1)
}

func (m *MockRecurringExpenseRepository) SaveExpenseProfile(ctx context.Context, profile domain.RecurringExpenseProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockRecurringExpenseRepository) UpdateExpenseProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, profileID, status, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockRecurringExpenseRepository) SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	args := m.Called(ctx, tx, expense)
	return args.Error(0)
}

func (m *MockRecurringExpenseRepository) MarkExpenseProfileGeneratedInTx(ctx context.Context, tx pgx.Tx, profileID string, generatedOn time.Time, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, profileID, generatedOn, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockRecurringExpenseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockRecurringExpenseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRecurringExpenseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock for InvoiceRepositoryFacade ---

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindLineItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceLineItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLineItem), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByCustomer(ctx context.Context, customerID string, onlyOutstanding bool, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, customerID, onlyOutstanding, limit, nextToken)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return invoices, token, args.Error(2)
}

// --- Mock for UserRepositoryFacade ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock for CustomerRepositoryFacade ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomersByOwner(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// --- Mock for CatalogItemRepositoryFacade ---

type MockCatalogItemRepository struct {
	mock.Mock
}

func (m *MockCatalogItemRepository) FindCatalogItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogItemRepository) FindCatalogItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.CatalogItem, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogItemRepository) ListCatalogItemsByOwner(ctx context.Context, ownerID string) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogItemRepository) SaveCatalogItem(ctx context.Context, item domain.CatalogItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
