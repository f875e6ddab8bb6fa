package main

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"TechModa/internal/catalog"
	"TechModa/internal/config"
	"TechModa/pkg/kit"
)

func main() {
	service := "catalog"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	conf, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("loading config", zap.Error(err))
	}

	store, err := openStore(context.Background(), conf)
	if err != nil {
		log.Fatal("opening store", zap.Error(err), zap.String("backend", conf.StoreBackend))
	}
	log.Info("store ready", zap.String("backend", conf.StoreBackend))

	s := &catalog.Server{
		Svc: &catalog.Service{Store: store, Log: log},
		Log: log,
	}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:      log,
		Service:  service,
		Registry: prometheus.NewRegistry(),

		MetricsEnabled: conf.MetricsToken != "",
		MetricsToken:   conf.MetricsToken,

		RateLimit:         conf.RateLimit,
		RateWindowSeconds: conf.RateWindowSeconds,
	})

	if err := kit.RunHTTPServer(":"+conf.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func openStore(ctx context.Context, conf *config.Config) (catalog.Store, error) {
	switch conf.StoreBackend {
	case config.BackendBolt:
		return catalog.OpenBoltStore(conf.BoltPath)

	case config.BackendPostgres:
		db, err := catalog.OpenPostgres(ctx, conf.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return catalog.NewPostgresStore(db), nil

	case config.BackendDynamo:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conf.AWSRegion))
		if err != nil {
			return nil, err
		}
		if conf.AWSEndpoint != "" {
			awsCfg.BaseEndpoint = aws.String(conf.AWSEndpoint)
		}
		return catalog.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), conf.DynamoTable), nil

	default:
		return catalog.NewSeededMemStore(), nil
	}
}
