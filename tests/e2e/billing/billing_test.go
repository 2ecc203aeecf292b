//go:build e2e

package billing_test

import (
	"fmt"
	"net/http"
	"testing"

	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/domain/staff"
	"lounge-billing/internal/handler/dto/response"
	"lounge-billing/tests/common/authtest"
	"lounge-billing/tests/common/builder"
	"lounge-billing/tests/common/dbtest"
	"lounge-billing/tests/common/httptest"
	"lounge-billing/tests/common/testutil"
	"lounge-billing/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	pricingURL  = "/api/pricing"
	bonusURL    = "/api/pricing/bonus"
	previewURL  = "/api/billing/preview"
	invoicesURL = "/api/invoices"

	invoiceTopic = "invoice_created"
)

type BillingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BillingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BillingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBillingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BillingSuite))
}

// flatPlaystation prices Playstation the same on every day so invoices billed
// at the server clock are deterministic.
func (s *BillingSuite) flatPlaystation(t *testing.T, adminToken string) {
	t.Helper()
	cfg := builder.NewPricingBuilder().WithRate(pricing.GamePlaystation, 200, 200).BuildPricing()
	w := httptest.PerformRequest(t, s.Router, http.MethodPut, pricingURL, cfg, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func idemHeader(key uuid.UUID) map[string]string {
	return map[string]string{"Idempotency-Key": key.String()}
}

// =============================================================================
// Pricing configuration
// =============================================================================

func (s *BillingSuite) TestPricingConfig() {
	s.Run("Normal case: tenant without stored config sees defaults", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), staff.RoleStaff)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pricingURL, nil, token)
		var res response.PricingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		require.False(t, res.Stored)
		require.Nil(t, res.UpdatedAt)
		require.True(t, res.Pricing.Rates[pricing.GamePlaystation].Weekend.Equal(pricing.MoneyFromInt(200)))
	})

	s.Run("Normal case: admin replaces pricing and bonus", func() {
		t := s.T()
		tenantID := uuid.New()
		admin := s.jwt.GenerateToken(t, tenantID, staff.RoleAdmin)

		cfg := builder.NewPricingBuilder().WithRate(pricing.GamePlaystation, 180, 240).WithBufferMinutes(15).BuildPricing()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, pricingURL, cfg, admin)
		var saved response.PricingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &saved)
		require.True(t, saved.Stored)
		require.NotNil(t, saved.UpdatedAt)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, pricingURL, nil, admin)
		var got response.PricingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		opts := []cmp.Option{cmpopts.IgnoreFields(response.PricingResponse{}, "UpdatedAt")}
		if diff := cmp.Diff(&saved, &got, opts...); diff != "" {
			t.Errorf("pricing mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 15, *got.Pricing.BufferMinutes)

		bonus := builder.NewPricingBuilder().WithBonus(pricing.GameSystem, pricing.BonusTiers{OneHour: 600}).BuildBonus()
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, bonusURL, bonus, admin)
		var savedBonus response.BonusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &savedBonus)
		require.True(t, savedBonus.Stored)
		require.Equal(t, int64(600), savedBonus.Bonus[pricing.GameSystem].Weekday.OneHour)
	})

	s.Run("Normal case: legacy game keys are normalized", func() {
		t := s.T()
		admin := s.jwt.GenerateToken(t, uuid.New(), staff.RoleAdmin)

		body := map[string]any{
			"PS5":                 map[string]any{"weekday": 170, "weekend": 210},
			"Desktop":             map[string]any{"weekday": 90, "weekend": 110},
			"extraControllerRate": 40,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, pricingURL, body, admin)
		var saved response.PricingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &saved)
		require.True(t, saved.Pricing.Rates[pricing.GamePlaystation].Weekday.Equal(pricing.MoneyFromInt(170)))
		require.True(t, saved.Pricing.Rates[pricing.GameSystem].Weekend.Equal(pricing.MoneyFromInt(110)))
	})

	s.Run("Error case: staff cannot change pricing", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), staff.RoleStaff)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, pricingURL, builder.NewPricingBuilder().BuildPricing(), token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Error case: negative rate is rejected", func() {
		t := s.T()
		admin := s.jwt.GenerateToken(t, uuid.New(), staff.RoleAdmin)
		body := map[string]any{
			"Playstation":         map[string]any{"weekday": -1, "weekend": 200},
			"extraControllerRate": 50,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, pricingURL, body, admin)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid pricing configuration")
	})

	s.Run("Error case: missing token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pricingURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		token := s.jwt.CreateExpiredToken(t, uuid.New(), staff.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pricingURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// Preview
// =============================================================================

func (s *BillingSuite) TestPreview() {
	s.Run("Normal case: weekend playstation session with extras", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), staff.RoleStaff)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL, builder.NewInvoiceBuilder().BuildPreviewRequestDTO(), token)
		var line response.LineResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &line)

		expected := &response.LineResponse{
			GameType:            "Playstation",
			DayType:             "weekend",
			ElapsedSeconds:      18533,
			PaidHours:           5,
			BonusSeconds:        3600,
			HourlyRate:          pricing.MoneyFromInt(200),
			BaseCost:            pricing.MoneyFromInt(1000),
			ExtraControllerCost: pricing.MoneyFromInt(100),
			SnackCost:           pricing.MoneyFromInt(30),
			TotalCost:           pricing.MoneyFromInt(1130),
			Warnings:            []response.WarningResponse{},
		}
		opts := []cmp.Option{cmpopts.IgnoreFields(response.LineResponse{}, "ExtraTimeSeconds")}
		if diff := cmp.Diff(expected, &line, opts...); diff != "" {
			t.Errorf("line mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: pricing change is visible to the next preview", func() {
		t := s.T()
		tenantID := uuid.New()
		admin := s.jwt.GenerateToken(t, tenantID, staff.RoleAdmin)
		req := builder.NewInvoiceBuilder().WithoutExtras().BuildPreviewRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL, req, admin)
		var before response.LineResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &before)
		require.True(t, before.TotalCost.Equal(pricing.MoneyFromInt(1000)))

		cfg := builder.NewPricingBuilder().WithRate(pricing.GamePlaystation, 150, 300).BuildPricing()
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, pricingURL, cfg, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL, req, admin)
		var after response.LineResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &after)
		require.True(t, after.TotalCost.Equal(pricing.MoneyFromInt(1500)), "got %s", after.TotalCost)
	})

	s.Run("Normal case: unconfigured game type falls back with warnings", func() {
		t := s.T()
		tenantID := uuid.New()
		dbtest.SeedTenantConfig(t, s.DB, tenantID, ptr(builder.NewPricingBuilder().WithoutRate(pricing.GameSteeringWheel).BuildPricing()), nil)
		token := s.jwt.GenerateToken(t, tenantID, staff.RoleStaff)

		req := builder.NewInvoiceBuilder().WithGameType("SteeringWheel").WithElapsedSeconds(3600).WithoutExtras().BuildPreviewRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL, req, token)
		var line response.LineResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &line)

		require.True(t, line.HourlyRate.Equal(pricing.MoneyFromInt(120)), "System weekend rate expected, got %s", line.HourlyRate)
		require.NotEmpty(t, line.Warnings)
		require.Equal(t, "CONFIGURATION_MISSING", line.Warnings[0].Code)
	})

	s.Run("Error case: validation", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), staff.RoleStaff)
		reqBody := builder.NewInvoiceBuilder().BuildPreviewRequestDTO()

		cases := []struct {
			name   string
			mutate func(map[string]any)
			code   int
		}{
			{"missing game_type", testutil.Field("game_type", nil), http.StatusBadRequest},
			{"missing elapsed_seconds", testutil.Field("elapsed_seconds", nil), http.StatusBadRequest},
			{"negative elapsed_seconds", testutil.Field("elapsed_seconds", -1), http.StatusBadRequest},
			{"negative controllers", testutil.Field("extra_controller_units", -2), http.StatusBadRequest},
			{"negative snack quantity", testutil.Field("snacks.0.quantity", -1), http.StatusBadRequest},
			{"zero elapsed is free", testutil.Field("elapsed_seconds", 0), http.StatusOK},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL, testutil.DtoMap(t, reqBody, tc.mutate), token)
			require.Equal(t, tc.code, w.Code, "%s: %s", tc.name, w.Body.String())
		}
	})
}

// =============================================================================
// Invoices
// =============================================================================

func (s *BillingSuite) TestCreateInvoice() {
	s.Run("Normal case: invoice is stored, queued and replayable", func() {
		t := s.T()
		tenantID := uuid.New()
		admin := s.jwt.GenerateToken(t, tenantID, staff.RoleAdmin)
		s.flatPlaystation(t, admin)

		key := uuid.New()
		reqBody := builder.NewInvoiceBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, invoicesURL, reqBody, admin, idemHeader(key))
		var created response.InvoiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.True(t, created.TotalCost.Equal(pricing.MoneyFromInt(1130)), "got %s", created.TotalCost)
		require.Equal(t, "PS-03", *created.StationLabel)
		require.Len(t, created.Snacks, 1)
		require.Equal(t, 1, dbtest.CountInvoices(t, s.DB, tenantID))
		require.Equal(t, 1, dbtest.CountJobs(t, s.DB, invoiceTopic))

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, invoicesURL, reqBody, admin, idemHeader(key))
		var replayed response.InvoiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replayed)
		httptest.AssertReplayed(t, w, true)
		if diff := cmp.Diff(&created, &replayed); diff != "" {
			t.Errorf("replay mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 1, dbtest.CountInvoices(t, s.DB, tenantID))
		require.Equal(t, 1, dbtest.CountJobs(t, s.DB, invoiceTopic))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%s", invoicesURL, created.ID), nil, admin)
		var fetched response.InvoiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		if diff := cmp.Diff(&created, &fetched); diff != "" {
			t.Errorf("detail mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: key reused with a different body", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), staff.RoleStaff)
		key := uuid.New()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, invoicesURL, builder.NewInvoiceBuilder().BuildCreateRequestDTO(), token, idemHeader(key))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		other := builder.NewInvoiceBuilder().WithElapsedSeconds(600).BuildCreateRequestDTO()
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, invoicesURL, other, token, idemHeader(key))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "different request")
	})

	s.Run("Normal case: expired key can be reused", func() {
		t := s.T()
		tenantID := uuid.New()
		token := s.jwt.GenerateToken(t, tenantID, staff.RoleStaff)
		key := uuid.New()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, invoicesURL, builder.NewInvoiceBuilder().BuildCreateRequestDTO(), token, idemHeader(key))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		dbtest.ExpireIdempotencyKey(t, s.DB, key, tenantID)

		other := builder.NewInvoiceBuilder().WithElapsedSeconds(600).BuildCreateRequestDTO()
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, invoicesURL, other, token, idemHeader(key))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Equal(t, 2, dbtest.CountInvoices(t, s.DB, tenantID))
	})

	s.Run("Error case: Idempotency-Key header", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), staff.RoleStaff)
		body := builder.NewInvoiceBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Idempotency-Key header is required")

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, invoicesURL, body, token, map[string]string{"Idempotency-Key": "abc"})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "must be a UUID")
	})

	s.Run("Error case: invoice of another tenant is not visible", func() {
		t := s.T()
		owner := s.jwt.GenerateToken(t, uuid.New(), staff.RoleStaff)
		stranger := s.jwt.GenerateToken(t, uuid.New(), staff.RoleStaff)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, invoicesURL, builder.NewInvoiceBuilder().BuildCreateRequestDTO(), owner, idemHeader(uuid.New()))
		var created response.InvoiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, invoicesURL+"/"+created.ID, nil, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Invoice not found")
	})
}

func (s *BillingSuite) TestListInvoices() {
	s.Run("Normal case: newest first with keyset pages", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), staff.RoleStaff)

		created := make([]string, 0, 5)
		for i := range 5 {
			body := builder.NewInvoiceBuilder().WithElapsedSeconds(int64(3600 + i*60)).BuildCreateRequestDTO()
			w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, invoicesURL, body, token, idemHeader(uuid.New()))
			var res response.InvoiceResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
			created = append(created, res.ID)
		}

		var seen []string
		url := invoicesURL + "?limit=2"
		for range 5 {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
			var page response.InvoiceListResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
			require.LessOrEqual(t, len(page.Items), 2)
			for _, item := range page.Items {
				seen = append(seen, item.ID)
			}
			if page.NextCursor == nil {
				break
			}
			url = invoicesURL + "?limit=2&after=" + *page.NextCursor
		}

		want := make([]string, len(created))
		for i, id := range created {
			want[len(created)-1-i] = id
		}
		require.Equal(t, want, seen)
	})

	s.Run("Error case: malformed cursor", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), staff.RoleStaff)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, invoicesURL+"?after=bm9wZQ", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})
}

func ptr[T any](v T) *T { return &v }
