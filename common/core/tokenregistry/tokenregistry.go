package tokenregistry

import "github.com/alexkalak/go_swap_analyze/common/models"

// Registry is a read-only token metadata snapshot, rebuilt wholesale on
// every refresh cycle.
type Registry struct {
	tokens map[string]models.Token
}

func New(tokens []models.Token) *Registry {
	tokensMap := make(map[string]models.Token, len(tokens))
	for _, token := range tokens {
		//Last write wins for duplicate addresses
		tokensMap[token.Address] = token
	}

	return &Registry{
		tokens: tokensMap,
	}
}

// Lookup never fails, a miss is an expected condition and consumers
// substitute Fallback themselves.
func (r *Registry) Lookup(address string) (models.Token, bool) {
	token, ok := r.tokens[address]
	return token, ok
}

func (r *Registry) Len() int {
	return len(r.tokens)
}

// Fallback is the token substituted on a registry miss: zero decimals, no
// reference price, address shown as the symbol.
func Fallback(address string) models.Token {
	return models.Token{
		Symbol:   address,
		Address:  address,
		Decimals: 0,
	}
}
