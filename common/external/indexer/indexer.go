package indexer

import (
	"context"
	_ "embed"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/machinebox/graphql"

	"github.com/alexkalak/go_swap_analyze/common/external/indexer/indexererrors"
	"github.com/alexkalak/go_swap_analyze/common/models"
)

const defaultMaxRetries = 4
const retryInitialInterval = 500 * time.Millisecond

type IndexerClient interface {
	GetTokens(ctx context.Context) ([]models.Token, error)
	GetSwaps(ctx context.Context, limit int) ([]models.Swap, error)
}

type IndexerClientConfig struct {
	GraphQLURL string
	MaxRetries uint
}

type indexerClient struct {
	graphQLURL string
	maxRetries uint
}

func NewIndexerClient(config IndexerClientConfig) (IndexerClient, error) {
	if config.GraphQLURL == "" {
		return nil, indexererrors.ErrInvalidGraphQLURL
	}

	maxRetries := config.MaxRetries
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}

	return &indexerClient{
		graphQLURL: config.GraphQLURL,
		maxRetries: maxRetries,
	}, nil
}

//go:embed indexerassets/tokensquery.graphql
var tokensQuery string

func (c *indexerClient) GetTokens(ctx context.Context) ([]models.Token, error) {
	respData := struct {
		Tokens []TokenResponse `json:"tokens"`
	}{}

	if err := c.run(ctx, tokensQuery, nil, &respData); err != nil {
		return nil, err
	}

	return tokensToModels(respData.Tokens), nil
}

//go:embed indexerassets/swapsquery.graphql
var swapsQuery string

func (c *indexerClient) GetSwaps(ctx context.Context, limit int) ([]models.Swap, error) {
	respData := struct {
		Swaps []SwapResponse `json:"swaps"`
	}{}

	vars := map[string]interface{}{
		"limit": limit,
	}
	if err := c.run(ctx, swapsQuery, vars, &respData); err != nil {
		return nil, err
	}

	return swapsToModels(respData.Swaps), nil
}

func (c *indexerClient) run(ctx context.Context, query string, vars map[string]interface{}, respData interface{}) error {
	client := graphql.NewClient(c.graphQLURL)
	req := graphql.NewRequest(query)
	for name, value := range vars {
		req.Var(name, value)
	}

	backoffPolicy := backoff.NewExponentialBackOff()
	backoffPolicy.InitialInterval = retryInitialInterval

	operation := func() (struct{}, error) {
		return struct{}{}, client.Run(ctx, req, respData)
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoffPolicy),
		backoff.WithMaxTries(c.maxRetries))

	return err
}

func tokensToModels(responses []TokenResponse) []models.Token {
	result := make([]models.Token, 0, len(responses))
	for _, tokenResp := range responses {
		//Malformed metadata records are dropped, not fatal
		if tokenResp.Address == "" || tokenResp.Decimals < 0 {
			continue
		}

		token := models.Token{
			Symbol:   tokenResp.Symbol,
			Address:  tokenResp.Address,
			Decimals: tokenResp.Decimals,
		}
		if tokenResp.Price != nil {
			token.USDPrice = big.NewFloat(*tokenResp.Price)
		}

		result = append(result, token)
	}

	return result
}

func swapsToModels(responses []SwapResponse) []models.Swap {
	result := make([]models.Swap, 0, len(responses))
	for _, swapResp := range responses {
		if swapResp.TokenIn == "" || swapResp.TokenOut == "" {
			continue
		}

		result = append(result, models.Swap{
			Origin:         swapResp.Origin,
			TokenIn:        swapResp.TokenIn,
			TokenOut:       swapResp.TokenOut,
			Path:           swapResp.Path,
			AmountIn:       swapResp.AmountIn,
			AmountOut:      swapResp.AmountOut,
			BlockNumber:    swapResp.BlockNum,
			ExtrinsicIndex: swapResp.ExtrinsicIndex,
		})
	}

	return result
}
