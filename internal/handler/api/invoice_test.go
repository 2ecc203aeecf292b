//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"lounge-billing/internal/domain/staff"
	"lounge-billing/internal/handler/api"
	resdto "lounge-billing/internal/handler/dto/response"
	"lounge-billing/internal/pkg/errs"
	"lounge-billing/internal/usecase/commands"
	"lounge-billing/internal/usecase/queries"
	"lounge-billing/tests/common/builder"
	"lounge-billing/tests/common/httptest"
	"lounge-billing/tests/common/testutil"
	commandsmock "lounge-billing/tests/mock/commands"
	queriesmock "lounge-billing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInvoiceCommands
	mockQueries  *queriesmock.MockInvoiceQueries
	principal    staff.Principal
}

func (s *InvoiceHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInvoiceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInvoiceQueries(s.mockCtrl)
	s.principal = newPrincipal(staff.RoleStaff)

	h := api.NewInvoiceHandler(s.mockCommands, s.mockQueries)
	s.router = newTestRouter(fakeAuth(s.principal))
	s.router.POST("/invoices", h.Create)
	s.router.GET("/invoices", h.List)
	s.router.GET("/invoices/:id", h.Get)
}

func (s *InvoiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInvoiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}

func keyHeader(key string) map[string]string {
	return map[string]string{"Idempotency-Key": key}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *InvoiceHandlerTestSuite) TestCreate() {
	url := "/invoices"
	b := builder.NewInvoiceBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()
	key := uuid.New()

	s.Run("success: 201 Created for a new invoice", func() {
		s.mockCommands.EXPECT().
			CreateInvoice(gomock.Any(), s.principal, eqCmp(b.BuildCommand()), key).
			Return(&commands.CreateInvoiceResult{Invoice: view}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, testToken, keyHeader(key.String()))

		var res resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.ID.String(), res.ID)
		s.True(res.TotalCost.Equal(view.TotalCost))
		s.Equal(view.BilledAt.Unix(), res.BilledAt)
		s.Require().Len(res.Snacks, 1)
		s.Equal("chips", res.Snacks[0].Name)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: 200 with replay header for a repeated key", func() {
		s.mockCommands.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any(), key).
			Return(&commands.CreateInvoiceResult{Invoice: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, testToken, keyHeader(key.String()))

		var res resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		httptest.AssertReplayed(s.T(), rec, true)
		s.Equal(view.ID.String(), res.ID)
	})

	s.Run("error: Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")

		for _, bad := range []string{"not-a-uuid", uuid.Nil.String()} {
			rec = httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, testToken, keyHeader(bad))
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "must be a UUID")
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		mutations := map[string]func(map[string]any){
			"missing game_type":       testutil.Field("game_type", nil),
			"missing elapsed_seconds": testutil.Field("elapsed_seconds", nil),
			"station label too long":  testutil.Field("station_label", strings.Repeat("x", 65)),
			"snack name too long":     testutil.Field("snacks.0.name", strings.Repeat("x", 101)),
		}
		for name, mutate := range mutations {
			s.Run(name, func() {
				body := testutil.DtoMap(s.T(), reqBody, mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, testToken, keyHeader(uuid.NewString()))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"key reused with another body", errs.ErrIdempotencyMismatch, http.StatusConflict, "different request"},
			{"first request still running", errs.ErrIdempotencyInProgress, http.StatusConflict, "being processed"},
			{"idempotency bookkeeping failed", errs.Mark(errors.New("bad status"), errs.ErrIdempotencyCheckFailed), http.StatusInternalServerError, "Internal server error"},
			{"database failure", errs.Mark(errors.New("boom"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
			{"unusable stored config", errs.Mark(errors.New("bad tz"), errs.ErrStoredConfigUnusable), http.StatusInternalServerError, "Stored pricing configuration is unusable"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, testToken, keyHeader(uuid.NewString()))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 without principal", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", keyHeader(key.String()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *InvoiceHandlerTestSuite) TestGet() {
	view := builder.NewInvoiceBuilder().BuildView()
	url := "/invoices/" + view.ID.String()

	s.Run("success: returns the invoice", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.principal.TenantID, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testToken)

		var res resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.ID.String(), res.ID)
		s.Equal("PS-03", *res.StationLabel)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices/invalid-uuid", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing invoice", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(nil, errs.ErrInvoiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invoice not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *InvoiceHandlerTestSuite) TestList() {
	first := builder.NewInvoiceBuilder().BuildView()
	second := builder.NewInvoiceBuilder().WithElapsedSeconds(3600).BuildView()

	s.Run("success: returns a page with the next cursor", func() {
		next := &queries.Cursor{After: "next-token"}
		s.mockQueries.EXPECT().
			ListByTenant(gomock.Any(), s.principal.TenantID, &queries.Cursor{After: "abc"}, 2).
			Return([]*queries.InvoiceView{first, second}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices?limit=2&after=abc", nil, testToken)

		var res resdto.InvoiceListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 2)
		s.Equal(first.ID.String(), res.Items[0].ID)
		s.Require().NotNil(res.NextCursor)
		s.Equal("next-token", *res.NextCursor)
	})

	s.Run("success: last page has no cursor", func() {
		s.mockQueries.EXPECT().ListByTenant(gomock.Any(), gomock.Any(), nil, 0).
			Return([]*queries.InvoiceView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices", nil, testToken)

		var res resdto.InvoiceListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Empty(res.Items)
		s.Nil(res.NextCursor)
	})

	s.Run("error: invalid limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices?limit=ten", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: invalid cursor", func() {
		s.mockQueries.EXPECT().ListByTenant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errors.New("decode cursor"), queries.ErrInvalidCursor)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices?after=zzz", nil, testToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}
