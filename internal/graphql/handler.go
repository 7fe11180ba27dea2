package graphql

import (
	"net/http"

	gql "github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
)

// NewHandler serves POST {query, variables} requests and, like the original
// deployment, ships GraphiQL on GET for interactive use.
func NewHandler(schema *gql.Schema) http.Handler {
	return gqlhandler.New(&gqlhandler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: true,
	})
}
