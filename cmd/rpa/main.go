package main

import (
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-report-rpa/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/sales-report-rpa/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-report-rpa/internal/config"
	"github.com/vfg2006/sales-report-rpa/internal/usecases/analyzing"
	"github.com/vfg2006/sales-report-rpa/internal/usecases/notifying"
	"github.com/vfg2006/sales-report-rpa/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-rpa/pkg/log"
)

// Fluxo do processo, estritamente linear:
// carga da planilha -> análise -> relatórios visuais -> envio por WhatsApp.
// Só as duas primeiras etapas e a geração de relatórios são fatais; falha de
// notificação nunca altera o código de saída.
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logger, err := log.Setup(cfg.App.LogLevel, cfg.App.LogsDir)
	if err != nil {
		logrus.Fatal(err)
	}

	logger.Info("Início do processo de análise de vendas")

	loader := spreadsheet.NewLoader(logger)
	dataset, err := loader.Load(cfg.Input.SalesFile)
	if err != nil {
		logger.WithError(err).Fatal("Erro ao carregar a planilha de vendas")
	}

	analyzer := analyzing.NewService(analyzing.Options{
		IGVRate:        cfg.Analysis.IGVRate,
		TopModelsCount: cfg.Analysis.TopModelsCount,
		SegmentBounds:  cfg.Analysis.SegmentBounds,
		SegmentLabels:  cfg.Analysis.SegmentLabels,
	}, logger)
	report := analyzer.Analyze(dataset)

	reporter := reporting.NewService(cfg.Report.OutputDir, logger)
	files, err := reporter.GenerateAll(report)
	if err != nil {
		logger.WithError(err).Fatal("Erro ao gerar os relatórios visuais")
	}

	var sender whatsapp.MessageSender
	if cfg.Twilio.Enabled() {
		sender = whatsapp.NewClient(cfg.Twilio)
	}
	notifier := notifying.NewService(cfg, sender, logger)
	result := notifier.NotifyReport(analyzer.BuildSummary(report), files)

	logger.WithFields(logrus.Fields{
		"relatorios": len(files),
		"saida":      cfg.Report.OutputDir,
		"whatsapp":   string(result.Status),
	}).Info("Processo concluído com sucesso")
}
