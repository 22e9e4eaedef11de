package dagger

import (
	"encoding/json"
	"testing"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/saturnines/karambit/internal/enginetest"
	"github.com/saturnines/karambit/pkg/transport/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var operations = []graphql.Operation{
	DefaultPlatformQuery{},
	EngineVersionQuery{},
	ContainerStdoutQuery{Address: "alpine", Args: []string{"echo", "hi"}},
}

func TestOperations_ParseAndName(t *testing.T) {
	for _, op := range operations {
		t.Run(op.OperationName(), func(t *testing.T) {
			doc, err := graphql.ParseDocument(op.Document())
			require.NoError(t, err)

			name, err := graphql.SelectOperation(doc, op.OperationName())
			require.NoError(t, err)
			assert.Equal(t, op.OperationName(), name)
		})
	}
}

func TestOperations_ValidAgainstEngineSchema(t *testing.T) {
	schema := graphqlgo.MustParseSchema(enginetest.Schema, nil)

	for _, op := range operations {
		t.Run(op.OperationName(), func(t *testing.T) {
			// variables as the engine sees them after JSON decoding
			raw, err := json.Marshal(op.Variables())
			require.NoError(t, err)
			var vars map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &vars))

			errs := schema.ValidateWithVariables(op.Document(), vars)
			assert.Empty(t, errs)
		})
	}
}

func TestContainerStdoutQuery_Variables(t *testing.T) {
	vars := ContainerStdoutQuery{Address: "alpine"}.Variables()
	assert.Equal(t, "alpine", vars["address"])
	assert.Equal(t, []string{}, vars["args"])
}

func TestContainerStdoutData_Decode(t *testing.T) {
	var data ContainerStdoutData
	require.NoError(t, json.Unmarshal([]byte(`{"container":{"from":{"withExec":{"stdout":"hi\n"}}}}`), &data))
	assert.Equal(t, "hi\n", data.Stdout())
}
