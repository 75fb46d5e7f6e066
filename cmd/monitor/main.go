package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/kitvend/sales-monitor/infrastructure/integrator/kit"
	"github.com/kitvend/sales-monitor/infrastructure/integrator/kit/kitclient"
	"github.com/kitvend/sales-monitor/infrastructure/integrator/telegram"
	"github.com/kitvend/sales-monitor/infrastructure/integrator/telegram/telegramclient"
	"github.com/kitvend/sales-monitor/infrastructure/repository"
	"github.com/kitvend/sales-monitor/internal/api"
	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/kitvend/sales-monitor/internal/scheduler"
	"github.com/kitvend/sales-monitor/internal/usecases/monitoring"
	"github.com/kitvend/sales-monitor/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	interval := flag.Int("interval", 0, "janela rolante em horas para o relatório de ausência de vendas")
	noSales := flag.Bool("no-sales", false, "relatório de ausência de vendas usando NO_SALES_INTERVAL_HOURS")
	noSalesToday := flag.Bool("no-sales-today", false, "relatório de ausência de vendas apenas para hoje")
	serve := flag.Bool("serve", false, "sobe a API HTTP e o agendador em vez de executar uma vez")
	flag.Parse()

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

	kitClient := kitclient.NewClient(cfg)
	vendingIntegrator := kit.New(cfg, kitClient)
	salesRepo := repository.NewSalesRepository(kitClient, cfg.Location)

	noSalesService := monitoring.NewNoSalesService(salesRepo, cfg)
	salesAnalyzeService := monitoring.NewSalesAnalyzeService(salesRepo, cfg)

	controller := reporting.NewController(
		vendingIntegrator,
		noSalesService,
		salesAnalyzeService,
		reporting.NewNoSalesMessageService(cfg),
		reporting.NewSalesAnalyzeMessageService(),
		cfg,
	)

	telegramClient := telegramclient.NewClient(cfg)
	notifier := telegram.New(cfg, telegramClient)

	if *serve {
		runServer(cfg, controller, notifier)
		return
	}

	request := reporting.ReportRequest{NoSalesToday: *noSalesToday}
	if *interval > 0 {
		request.IntervalHours = interval
	} else if *noSales {
		request.IntervalHours = &cfg.Detection.IntervalHours
	}

	runOnce(controller, notifier, request)
}

// runOnce monta um único relatório, imprime no stdout e envia ao canal do
// operador. Falhas são logadas e o processo encerra sem crash: o agendador
// externo decide se tenta de novo na próxima execução.
func runOnce(controller *reporting.Controller, notifier telegram.Notifier, request reporting.ReportRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	message, err := controller.BuildReport(ctx, request)
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar o relatório")
		return
	}

	if message == "" {
		fmt.Println("Nenhum problema encontrado.")
		return
	}

	fmt.Println(message)

	if err := notifier.SendReport(ctx, message); err != nil {
		logrus.WithError(err).WithField("report", message).Error("Erro ao enviar o relatório")
	}
}

func runServer(cfg *config.Config, controller *reporting.Controller, notifier telegram.Notifier) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reportSyncService := scheduler.NewReportSyncService(controller, notifier, cfg)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de envio de relatórios")
	} else {
		logrus.Info("Agendador de envio de relatórios iniciado com sucesso")
	}

	server, err := api.New(cfg, controller, reportSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
