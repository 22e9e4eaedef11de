package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/saturnines/karambit/pkg/client"
	"github.com/saturnines/karambit/pkg/config"
	"github.com/saturnines/karambit/pkg/dagger"
	"github.com/saturnines/karambit/pkg/errors"
	"github.com/saturnines/karambit/pkg/transport/graphql"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	envFiles   []string
	query      string
	verbose    bool
}

func main() {
	if err := newCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "playground",
		Short:         "Run one query against the current engine session",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.envFiles) > 0 {
				if err := config.LoadDotEnv(opts.envFiles...); err != nil {
					return err
				}
			} else if err := godotenv.Load(); err != nil {
				log.Println(".env file not loaded:", err)
			}

			err := run(cmd.Context(), opts, out)
			if err != nil {
				log.Println(err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML session file; defaults to the environment")
	cmd.Flags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load before reading the environment")
	cmd.Flags().StringVar(&opts.query, "query", "default-platform", "query to run: default-platform, version or hello")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	return cmd
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	logger := zap.NewNop()
	if opts.verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = dev
		defer func() { _ = logger.Sync() }()
	}

	op, data, err := pickQuery(opts.query)
	if err != nil {
		return err
	}

	c, err := newClient(opts.configPath, client.WithLogger(logger))
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if err := c.Query(ctx, op, data); err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func newClient(configPath string, opts ...client.Option) (*client.Client, error) {
	if configPath == "" {
		return client.NewFromEnv(opts...)
	}

	loader := config.NewSessionLoader(&config.EnvExpander{}, &config.SessionDefaults{})
	session, err := loader.Load(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "load "+configPath)
	}
	return client.InstantiateClient(*session, opts...)
}

func pickQuery(name string) (graphql.Operation, interface{}, error) {
	switch name {
	case "default-platform":
		return dagger.DefaultPlatformQuery{}, &dagger.DefaultPlatformData{}, nil
	case "version":
		return dagger.EngineVersionQuery{}, &dagger.VersionData{}, nil
	case "hello":
		return dagger.ContainerStdoutQuery{
			Address: "alpine:latest",
			Args:    []string{"echo", "hi"},
		}, &dagger.ContainerStdoutData{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown query %q", name)
	}
}
