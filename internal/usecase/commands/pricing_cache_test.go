//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lounge-billing/internal/domain/pricing"
	infracache "lounge-billing/internal/infra/cache"
	"lounge-billing/internal/pkg/clock"
	"lounge-billing/internal/pkg/config"
	"lounge-billing/internal/pkg/metrics"
	"lounge-billing/internal/usecase/commands"
	"lounge-billing/internal/usecase/shared"
	"lounge-billing/tests/common/builder"
	sharedmock "lounge-billing/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// A reader that loaded the previous row before a write committed must not
// replace the writer's cache entry once it resumes.
func TestUpdatePricingWinsOverSlowReader(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	repo := sharedmock.NewMockPricingConfigRepository(ctrl)
	reads := sharedmock.NewMockCommandReads(ctrl)

	clk := clock.NewFixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	tenantID := uuid.New()

	uow.EXPECT().CommandReads().Return(reads).AnyTimes()
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().PricingConfigs().Return(repo).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	previous := builder.NewPricingBuilder().
		WithRate(pricing.GamePlaystation, 150, 200).
		BuildStored(clk.Now().Add(-time.Hour))
	updated := builder.NewPricingBuilder().WithRate(pricing.GamePlaystation, 999, 999).BuildPricing()

	readerHasRow := make(chan struct{})
	releaseReader := make(chan struct{})
	gomock.InOrder(
		reads.EXPECT().TenantConfig(gomock.Any(), tenantID).DoAndReturn(
			func(context.Context, uuid.UUID) (*shared.StoredConfig, error) {
				close(readerHasRow)
				<-releaseReader
				return previous, nil
			}),
		reads.EXPECT().TenantConfig(gomock.Any(), tenantID).
			Return(&shared.StoredConfig{Pricing: &updated, UpdatedAt: clk.Now()}, nil),
	)
	repo.EXPECT().SavePricing(gomock.Any(), gomock.Any(), tenantID, updated, clk.Now()).Return(nil)

	configCache := infracache.NewMemoryConfigCache(time.Minute, clk)
	loader := shared.NewConfigLoader(uow, configCache, metrics.NewNopBillingMetrics(), config.NewTestConfig())
	useCase := commands.NewPricingUseCase(uow, loader, clk)

	readerDone := make(chan *shared.TenantConfig, 1)
	go func() {
		cfg, err := loader.Load(ctx, tenantID)
		assert.NoError(t, err)
		readerDone <- cfg
	}()

	select {
	case <-readerHasRow:
	case <-time.After(5 * time.Second):
		t.Fatal("reader never reached the database")
	}

	written, err := useCase.UpdatePricing(ctx, tenantID, updated)
	require.NoError(t, err)
	assert.True(t, written.Pricing.Rates[pricing.GamePlaystation].Weekday.Equal(pricing.MoneyFromInt(999)))

	close(releaseReader)
	select {
	case stale := <-readerDone:
		require.NotNil(t, stale)
		assert.True(t, stale.Pricing.Rates[pricing.GamePlaystation].Weekday.Equal(pricing.MoneyFromInt(150)))
	case <-time.After(5 * time.Second):
		t.Fatal("reader did not finish")
	}

	served, err := loader.Load(ctx, tenantID)
	require.NoError(t, err)
	assert.True(t, served.Pricing.Rates[pricing.GamePlaystation].Weekday.Equal(pricing.MoneyFromInt(999)),
		"served %s", served.Pricing.Rates[pricing.GamePlaystation].Weekday)
}
