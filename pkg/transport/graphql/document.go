package graphql

import (
	"fmt"

	"github.com/dgraph-io/gqlparser/v2/ast"
	"github.com/dgraph-io/gqlparser/v2/parser"
	"github.com/saturnines/karambit/pkg/errors"
)

// ParseDocument parses an executable GraphQL document. It checks syntax only;
// the schema belongs to the engine.
func ParseDocument(query string) (*ast.QueryDocument, error) {
	doc, gqlErr := parser.ParseQuery(&ast.Source{Input: query})
	if gqlErr != nil {
		return nil, errors.WrapError(gqlErr, errors.ErrValidation, "parse graphql document")
	}
	if len(doc.Operations) == 0 {
		return nil, errors.WrapError(
			fmt.Errorf("document has no operations"),
			errors.ErrValidation,
			"parse graphql document",
		)
	}
	return doc, nil
}

// SelectOperation resolves which operation of doc to run.
// An empty name is allowed only when doc holds exactly one operation.
func SelectOperation(doc *ast.QueryDocument, name string) (string, error) {
	if name == "" {
		if len(doc.Operations) > 1 {
			return "", errors.WrapError(
				fmt.Errorf("document has %d operations", len(doc.Operations)),
				errors.ErrValidation,
				"operation name is required",
			)
		}
		return doc.Operations[0].Name, nil
	}

	if doc.Operations.ForName(name) == nil {
		return "", errors.WrapError(
			fmt.Errorf("operation %q not found", name),
			errors.ErrValidation,
			"select operation",
		)
	}
	return name, nil
}
