// Package dagger holds typed operations against the engine's GraphQL schema.
// Each operation pairs a fixed document with the struct its data decodes into.
package dagger

// DefaultPlatformQuery asks the engine for the platform it builds for by default.
type DefaultPlatformQuery struct{}

// DefaultPlatformData is the data of DefaultPlatformQuery
type DefaultPlatformData struct {
	DefaultPlatform string `json:"defaultPlatform"`
}

const defaultPlatformDocument = `query DefaultPlatform {
  defaultPlatform
}`

func (DefaultPlatformQuery) Document() string                  { return defaultPlatformDocument }
func (DefaultPlatformQuery) OperationName() string             { return "DefaultPlatform" }
func (DefaultPlatformQuery) Variables() map[string]interface{} { return nil }

// EngineVersionQuery asks for the engine version.
type EngineVersionQuery struct{}

// VersionData is the data of EngineVersionQuery
type VersionData struct {
	Version string `json:"version"`
}

const engineVersionDocument = `query EngineVersion {
  version
}`

func (EngineVersionQuery) Document() string                  { return engineVersionDocument }
func (EngineVersionQuery) OperationName() string             { return "EngineVersion" }
func (EngineVersionQuery) Variables() map[string]interface{} { return nil }

// ContainerStdoutQuery pulls Address, runs Args in it and reads stdout.
type ContainerStdoutQuery struct {
	Address string
	Args    []string
}

// ContainerStdoutData is the data of ContainerStdoutQuery
type ContainerStdoutData struct {
	Container struct {
		From struct {
			WithExec struct {
				Stdout string `json:"stdout"`
			} `json:"withExec"`
		} `json:"from"`
	} `json:"container"`
}

// Stdout returns the nested stdout field.
func (d *ContainerStdoutData) Stdout() string {
	return d.Container.From.WithExec.Stdout
}

const containerStdoutDocument = `query ContainerStdout($address: String!, $args: [String!]!) {
  container {
    from(address: $address) {
      withExec(args: $args) {
        stdout
      }
    }
  }
}`

func (ContainerStdoutQuery) Document() string      { return containerStdoutDocument }
func (ContainerStdoutQuery) OperationName() string { return "ContainerStdout" }

func (q ContainerStdoutQuery) Variables() map[string]interface{} {
	args := q.Args
	if args == nil {
		args = []string{}
	}
	return map[string]interface{}{
		"address": q.Address,
		"args":    args,
	}
}
