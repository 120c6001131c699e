package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/precifica/cost-manager-api/infrastructure/database/postgres"
	"github.com/precifica/cost-manager-api/infrastructure/repository"
	"github.com/precifica/cost-manager-api/internal/api"
	"github.com/precifica/cost-manager-api/internal/config"
	"github.com/precifica/cost-manager-api/internal/scheduler"
	"github.com/precifica/cost-manager-api/internal/usecases/authenticating"
	"github.com/precifica/cost-manager-api/internal/usecases/catalog"
	"github.com/precifica/cost-manager-api/internal/usecases/costing"
	"github.com/precifica/cost-manager-api/internal/usecases/importing"
	"github.com/precifica/cost-manager-api/internal/usecases/insighting"
	"github.com/precifica/cost-manager-api/internal/usecases/pricing"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	ingredientRepo := repository.NewIngredientRepository(pgConn)
	recipeRepo := repository.NewRecipeRepository(pgConn)
	costRepo := repository.NewCostRepository(pgConn)
	channelRepo := repository.NewChannelRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	snapshotRepo := repository.NewInsightSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	cataloger := catalog.NewService(productRepo, ingredientRepo, recipeRepo)
	pricer := pricing.NewService(productRepo, settingsRepo, channelRepo)
	coster := costing.NewService(costRepo, channelRepo, settingsRepo)
	insighter := insighting.NewService(productRepo, snapshotRepo, pricer)
	importer := importing.NewImporter(productRepo, saleRepo, pgConn)

	// Snapshot noturno de alertas para a central de ações
	insightSnapshotSyncService := scheduler.NewInsightSnapshotSyncService(insighter, cfg)

	if err := insightSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de alertas")
	} else {
		logrus.Info("Agendador de snapshot de alertas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		cataloger,
		pricer,
		coster,
		insighter,
		importer,
		insightSnapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
