package envhelper

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Environment struct {
	INDEXER_GRAPHQL_URL   string
	SWAPS_QUERY_LIMIT     uint
	REFRESH_INTERVAL_SECS uint
}

var env *Environment

func GetEnv() (*Environment, error) {
	if env != nil {
		return env, nil
	}

	env = &Environment{}
	err := load()
	if err != nil {
		env = nil
		return nil, err
	}
	return env, nil
}

const _INDEXER_GRAPHQL_URL = "INDEXER_GRAPHQL_URL"
const _SWAPS_QUERY_LIMIT = "SWAPS_QUERY_LIMIT"
const _REFRESH_INTERVAL_SECS = "REFRESH_INTERVAL_SECS"

func load() error {
	godotenv.Load()

	env.INDEXER_GRAPHQL_URL = os.Getenv(_INDEXER_GRAPHQL_URL)
	if env.INDEXER_GRAPHQL_URL == "" {
		return buildLoadingEnvError(_INDEXER_GRAPHQL_URL)
	}

	swapsQueryLimitStr := os.Getenv(_SWAPS_QUERY_LIMIT)
	swapsQueryLimit, err := strconv.Atoi(swapsQueryLimitStr)
	if err != nil || swapsQueryLimit <= 0 {
		return buildLoadingEnvError(_SWAPS_QUERY_LIMIT)
	}
	env.SWAPS_QUERY_LIMIT = uint(swapsQueryLimit)

	refreshIntervalStr := os.Getenv(_REFRESH_INTERVAL_SECS)
	refreshInterval, err := strconv.Atoi(refreshIntervalStr)
	if err != nil || refreshInterval <= 0 {
		return buildLoadingEnvError(_REFRESH_INTERVAL_SECS)
	}
	env.REFRESH_INTERVAL_SECS = uint(refreshInterval)

	return nil
}

func buildLoadingEnvError(key string) error {
	return fmt.Errorf("error with variable: %s", key)
}
