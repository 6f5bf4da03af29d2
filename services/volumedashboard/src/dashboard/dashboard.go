package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/alexkalak/go_swap_analyze/common/core/swapvolume"
	"github.com/alexkalak/go_swap_analyze/common/core/tokenregistry"
	"github.com/alexkalak/go_swap_analyze/common/external/indexer"
)

type DashboardService interface {
	Start(ctx context.Context) error
}

type DashboardConfig struct {
	SwapsQueryLimit int
	RefreshInterval time.Duration
}

func (c *DashboardConfig) validate() error {
	if c.SwapsQueryLimit <= 0 {
		return errors.New("dashboard config SwapsQueryLimit not set")
	}

	if c.RefreshInterval <= 0 {
		return errors.New("dashboard config RefreshInterval not set")
	}

	return nil
}

type DashboardDependencies struct {
	IndexerClient indexer.IndexerClient
	Logger        *zap.Logger
}

func (d *DashboardDependencies) validate() error {
	if d.IndexerClient == nil {
		return errors.New("dashboard dependencies IndexerClient cannot be nil")
	}

	if d.Logger == nil {
		return errors.New("dashboard dependencies Logger cannot be nil")
	}

	return nil
}

type dashboardService struct {
	config DashboardConfig

	indexerClient indexer.IndexerClient
	logger        *zap.Logger
}

func New(config DashboardConfig, dependencies DashboardDependencies) (DashboardService, error) {
	if err := dependencies.validate(); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &dashboardService{
		config:        config,
		indexerClient: dependencies.IndexerClient,
		logger:        dependencies.Logger,
	}, nil
}

func (s *dashboardService) Start(ctx context.Context) error {
	if err := s.refresh(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.refresh(ctx); err != nil {
				s.logger.Error("refresh failed", zap.Error(err))
			}
		}
	}
}

// refresh is one full pass: registry snapshot is rebuilt and the total is
// recomputed from scratch, no partial state survives between passes.
func (s *dashboardService) refresh(ctx context.Context) error {
	tokens, err := s.indexerClient.GetTokens(ctx)
	if err != nil {
		return fmt.Errorf("fetching tokens: %w", err)
	}
	registry := tokenregistry.New(tokens)
	s.logger.Info("token registry built", zap.Int("tokens", registry.Len()))

	swaps, err := s.indexerClient.GetSwaps(ctx, s.config.SwapsQueryLimit)
	if err != nil {
		return fmt.Errorf("fetching swaps: %w", err)
	}
	s.logger.Info("swaps fetched", zap.Int("swaps", len(swaps)))

	//Presentation order only, newest block first
	sort.SliceStable(swaps, func(i, j int) bool {
		return swaps[i].BlockNumber > swaps[j].BlockNumber
	})

	aggregate := swapvolume.TotalVolume(swaps, registry)
	for _, skipped := range aggregate.Skipped {
		s.logger.Warn("swap skipped",
			zap.String("swap", skipped.Swap.String()),
			zap.Error(skipped.Err),
		)
	}

	fmt.Println(RenderSwapsTable(swaps, registry, aggregate))

	return nil
}
