// Package graphql adapts github.com/graphql-go/graphql to the HTTP layer:
// schema construction from a root query plus a POST handler speaking the
// standard {query, variables, operationName} request form.
package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/wisdorage/pkg/response"
)

// NewSchema creates a GraphQL schema from a provided root query.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}

// request is the standard GraphQL-over-HTTP POST body.
type request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Handler serves POST requests against schema. Execution errors travel in
// the result's errors array with a 200, per GraphQL convention; only an
// unreadable body is an HTTP error.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "malformed graphql request")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        r.Context(),
		})

		response.JSON(w, http.StatusOK, result)
	}
}
