package indexererrors

import "errors"

var ErrInvalidGraphQLURL = errors.New("invalid indexer graphql url")
