package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/core/services"
	"github.com/finbooks/billing_backoffice/internal/dto"
	"github.com/finbooks/billing_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RecurringProfileService ---
type MockRecurringProfileService struct {
	mock.Mock
}

func (m *MockRecurringProfileService) CreateInvoiceProfile(ctx context.Context, req dto.CreateRecurringInvoiceProfileRequest, creatorUserID string) (*domain.RecurringInvoiceProfile, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringInvoiceProfile), args.Error(1)
}
func (m *MockRecurringProfileService) GetInvoiceProfileByID(ctx context.Context, profileID string, requestingUserID string) (*domain.RecurringInvoiceProfile, error) {
	args := m.Called(ctx, profileID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringInvoiceProfile), args.Error(1)
}
func (m *MockRecurringProfileService) ListInvoiceProfiles(ctx context.Context, requestingUserID string) ([]domain.RecurringInvoiceProfile, error) {
	args := m.Called(ctx, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringInvoiceProfile), args.Error(1)
}
func (m *MockRecurringProfileService) SetInvoiceProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, requestingUserID string) error {
	args := m.Called(ctx, profileID, status, requestingUserID)
	return args.Error(0)
}
func (m *MockRecurringProfileService) CreateExpenseProfile(ctx context.Context, req dto.CreateRecurringExpenseProfileRequest, creatorUserID string) (*domain.RecurringExpenseProfile, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringExpenseProfile), args.Error(1)
}
func (m *MockRecurringProfileService) GetExpenseProfileByID(ctx context.Context, profileID string, requestingUserID string) (*domain.RecurringExpenseProfile, error) {
	args := m.Called(ctx, profileID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringExpenseProfile), args.Error(1)
}
func (m *MockRecurringProfileService) ListExpenseProfiles(ctx context.Context, requestingUserID string) ([]domain.RecurringExpenseProfile, error) {
	args := m.Called(ctx, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringExpenseProfile), args.Error(1)
}
func (m *MockRecurringProfileService) SetExpenseProfileStatus(ctx context.Context, profileID string, status domain.ProfileStatus, requestingUserID string) error {
	args := m.Called(ctx, profileID, status, requestingUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.RecurringProfileSvcFacade = (*MockRecurringProfileService)(nil)

// --- Test Suite ---
type RecurringHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProfileService *MockRecurringProfileService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *RecurringHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "billing-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *RecurringHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockProfileService = new(MockRecurringProfileService)

	v1 := suite.router.Group("/api/v1")
	registerRecurringRoutes(v1, suite.mockProfileService, services.NewRecurrenceService())
}

// --- Test Cases ---

func (suite *RecurringHandlerTestSuite) TestGetInvoiceProfile_Success() {
	profileID := uuid.NewString()
	requestingUserID := uuid.NewString()

	profile := &domain.RecurringInvoiceProfile{
		ProfileID:  profileID,
		OwnerID:    requestingUserID,
		CustomerID: uuid.NewString(),
		Schedule: domain.Schedule{
			StartDate: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			Frequency: domain.Monthly,
			Status:    domain.ProfileActive,
		},
		Subtotal: decimal.NewFromInt(100),
		Total:    decimal.NewFromInt(110),
	}

	suite.mockProfileService.On("GetInvoiceProfileByID", mock.Anything, profileID, requestingUserID).
		Return(profile, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/recurring-invoices/"+profileID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RecurringInvoiceProfileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(profileID, resp.ProfileID)
	suite.Equal("MONTHLY", resp.Frequency)
	// Never-generated profile is due on its start date, with no step applied.
	suite.True(profile.StartDate.Equal(resp.NextDueDate))

	suite.mockProfileService.AssertExpectations(suite.T())
}

func (suite *RecurringHandlerTestSuite) TestGetInvoiceProfile_Forbidden() {
	profileID := uuid.NewString()
	requestingUserID := uuid.NewString()

	suite.mockProfileService.On("GetInvoiceProfileByID", mock.Anything, profileID, requestingUserID).
		Return(nil, apperrors.ErrForbidden).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/recurring-invoices/"+profileID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockProfileService.AssertExpectations(suite.T())
}

func (suite *RecurringHandlerTestSuite) TestGetInvoiceProfile_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/recurring-invoices/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProfileService.AssertNotCalled(suite.T(), "GetInvoiceProfileByID")
}

func (suite *RecurringHandlerTestSuite) TestSetInvoiceProfileStatus_Success() {
	profileID := uuid.NewString()
	requestingUserID := uuid.NewString()

	suite.mockProfileService.On("SetInvoiceProfileStatus", mock.Anything, profileID, domain.ProfilePaused, requestingUserID).
		Return(nil).Once()

	body, _ := json.Marshal(dto.UpdateProfileStatusRequest{Status: domain.ProfilePaused})
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/recurring-invoices/"+profileID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockProfileService.AssertExpectations(suite.T())
}

func (suite *RecurringHandlerTestSuite) TestSetInvoiceProfileStatus_InvalidStatus() {
	profileID := uuid.NewString()
	requestingUserID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/recurring-invoices/"+profileID+"/status",
		bytes.NewReader([]byte(`{"status":"CANCELLED"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProfileService.AssertNotCalled(suite.T(), "SetInvoiceProfileStatus")
}

func (suite *RecurringHandlerTestSuite) TestCreateExpenseProfile_ValidationError() {
	requestingUserID := uuid.NewString()

	suite.mockProfileService.On("CreateExpenseProfile", mock.Anything, mock.Anything, requestingUserID).
		Return(nil, apperrors.NewAppError(http.StatusBadRequest, "end date cannot be before start date", apperrors.ErrValidation)).Once()

	reqBody := dto.CreateRecurringExpenseProfileRequest{
		VendorName:  "Cloud Hosting Inc",
		CategoryID:  uuid.NewString(),
		StartDate:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Frequency:   domain.Monthly,
		Amount:      decimal.NewFromInt(120),
		Description: "Monthly hosting bill",
	}
	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/recurring-expenses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProfileService.AssertExpectations(suite.T())
}

func TestRecurringHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringHandlerTestSuite))
}
