package setup

import (
	"context"
	"os"

	"github.com/portasui/porta/config"
	"github.com/portasui/porta/factory"
	"github.com/portasui/porta/observability"
	"github.com/sirupsen/logrus"
)

type RpcContextKey string

const ContextFactory RpcContextKey = "factory"

func WrapFactory(ctx context.Context, portaFactory *factory.Factory) context.Context {
	return context.WithValue(ctx, ContextFactory, portaFactory)
}

func UnwrapFactory(ctx context.Context) *factory.Factory {
	return ctx.Value(ContextFactory).(*factory.Factory)
}

// ConfigureLogger applies PORTA_LOG_LEVEL and PORTA_LOG_FORMAT.  Any -v flag takes precedence.
func ConfigureLogger(args *RpcArgs) {
	config.ConfigureLogger()
	switch {
	case args.VerbosityCount == 0:
		if os.Getenv(config.LogLevelEnv) == "" {
			logrus.SetLevel(logrus.WarnLevel)
		}
	case args.VerbosityCount == 1:
		logrus.SetLevel(logrus.InfoLevel)
	case args.VerbosityCount == 2:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.TraceLevel)
	}
}

func LoadFactory(args *RpcArgs) (*factory.Factory, error) {
	return factory.NewFactory(&factory.FactoryOptions{
		Network:    args.Network,
		URL:        args.Rpc,
		ConfigFile: args.ConfigPath,
		Metrics:    observability.NewMetrics(),
	})
}

func CreateContext(portaFactory *factory.Factory) context.Context {
	return WrapFactory(context.Background(), portaFactory)
}
