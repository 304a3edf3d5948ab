package main

import (
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/boxbank/boxbank-server/api"
	"github.com/boxbank/boxbank-server/internal/config"
	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/operator"
	"github.com/boxbank/boxbank-server/internal/service"
	"github.com/boxbank/boxbank-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("boxbank-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	svc := service.NewService(dbStorage)

	numWorkers, err := strconv.Atoi(envConfig.OperatorWorkers)
	if err != nil {
		logrus.WithError(err).Fatal("invalid OPERATOR_WORKERS")
		return
	}

	operatorDelegator := operator.NewOperatorDelegator(dbStorage, numWorkers)
	operatorDelegator.Start()
	defer operatorDelegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: operatorDelegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
