package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/boxbank/boxbank-server/internal/handlers/v1/account"
	"github.com/boxbank/boxbank-server/internal/handlers/v1/box"
	"github.com/boxbank/boxbank-server/internal/handlers/v1/dashboard"
	"github.com/boxbank/boxbank-server/internal/handlers/v1/status"
	"github.com/boxbank/boxbank-server/internal/handlers/v1/transaction"
	"github.com/boxbank/boxbank-server/internal/handlers/v1/transfer"
	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/operator"
	"github.com/boxbank/boxbank-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("boxbank-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler().Register(humaAPI)

	account.NewCreateAccountHandler(r.Operator).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewGetAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewUpdateAccountHandler(r.Operator).Register(humaAPI)
	account.NewDeleteAccountHandler(r.Operator).Register(humaAPI)

	box.NewCreateBoxHandler(r.Operator).Register(humaAPI)
	box.NewListBoxesHandler(r.Service.Box).Register(humaAPI)
	box.NewGetBoxHandler(r.Service.Box).Register(humaAPI)
	box.NewUpdateBoxHandler(r.Operator).Register(humaAPI)
	box.NewDeleteBoxHandler(r.Operator).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)

	transfer.NewCreateTransferHandler(r.Operator).Register(humaAPI)
	transfer.NewListTransfersHandler(r.Service.Transfer).Register(humaAPI)

	dashboard.NewSummaryHandler(r.Service.Dashboard).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
