package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alexkalak/go_swap_analyze/common/external/indexer"
	"github.com/alexkalak/go_swap_analyze/common/helpers/envhelper"
	"github.com/alexkalak/go_swap_analyze/services/volumedashboard/src/dashboard"
)

func main() {
	env, err := envhelper.GetEnv()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	indexerClient, err := indexer.NewIndexerClient(indexer.IndexerClientConfig{
		GraphQLURL: env.INDEXER_GRAPHQL_URL,
	})
	if err != nil {
		panic(err)
	}

	dashboardService, err := dashboard.New(dashboard.DashboardConfig{
		SwapsQueryLimit: int(env.SWAPS_QUERY_LIMIT),
		RefreshInterval: time.Duration(env.REFRESH_INTERVAL_SECS) * time.Second,
	}, dashboard.DashboardDependencies{
		IndexerClient: indexerClient,
		Logger:        logger,
	})
	if err != nil {
		panic(err)
	}

	err = dashboardService.Start(context.Background())
	if err != nil {
		panic(err)
	}
}
