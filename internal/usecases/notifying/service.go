package notifying

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-report-rpa/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/sales-report-rpa/internal/config"
	"github.com/vfg2006/sales-report-rpa/internal/domain"
	"github.com/vfg2006/sales-report-rpa/pkg/utils"
)

// Notifier entrega o resumo e os artefatos por WhatsApp.
type Notifier interface {
	NotifyReport(summary string, artifacts []string) domain.NotificationResult
}

// Service é a etapa de notificação. É a única etapa condicionada por
// configuração: sem credenciais completas vira um no-op com resultado
// SKIPPED. Falhas de entrega nunca se propagam.
type Service struct {
	twilio  config.Twilio
	baseURL string
	sender  whatsapp.MessageSender
	log     *logrus.Entry
}

func NewService(cfg *config.Config, sender whatsapp.MessageSender, log *logrus.Entry) Notifier {
	return &Service{
		twilio:  cfg.Twilio,
		baseURL: cfg.Report.PublicBaseURL,
		sender:  sender,
		log:     log,
	}
}

// NotifyReport envia o resumo de texto e, em seguida, uma mensagem por
// artefato gerado. O resultado informa quantas entregas tiveram sucesso para
// os testes distinguirem "desabilitado" de "enviado".
func (s *Service) NotifyReport(summary string, artifacts []string) domain.NotificationResult {
	if !s.twilio.Enabled() || s.sender == nil {
		s.log.Info("Envio para WhatsApp desabilitado na configuração")
		return domain.NotificationResult{Status: domain.NotificationSkipped}
	}

	result := domain.NotificationResult{Status: domain.NotificationSent}

	s.send(summary, nil, &result)

	for _, artifact := range artifacts {
		body, media := s.artifactMessage(artifact)
		s.send(body, media, &result)
	}

	if result.Failed > 0 {
		result.Status = domain.NotificationFailed
	}

	s.log.WithFields(logrus.Fields{
		"status":   string(result.Status),
		"enviadas": result.Sent,
		"falhas":   result.Failed,
	}).Info("Etapa de notificação concluída")

	return result
}

func (s *Service) send(body string, mediaURLs []string, result *domain.NotificationResult) {
	reference, err := utils.GenerateID()
	if err != nil {
		reference = "-"
	}

	sid, err := s.sender.SendMessage(s.twilio.WhatsAppTo, body, mediaURLs)
	if err != nil {
		// Falha de entrega é rebaixada para warning, nunca interrompe a execução
		s.log.WithError(err).WithField("reference", reference).
			Warn("Falha ao enviar mensagem de WhatsApp")
		result.Failed++
		return
	}

	s.log.WithFields(logrus.Fields{
		"sid":       sid,
		"reference": reference,
	}).Info("Mensagem de WhatsApp enviada")
	result.Sent++
}

// artifactMessage monta a mensagem de um artefato. Com uma URL pública
// configurada o gráfico vai como mídia; sem ela, a mensagem referencia o
// caminho local do arquivo.
func (s *Service) artifactMessage(artifact string) (string, []string) {
	name := filepath.Base(artifact)

	if s.baseURL != "" {
		url := strings.TrimRight(s.baseURL, "/") + "/" + name
		return fmt.Sprintf("📊 Reporte generado: %s", name), []string{url}
	}

	return fmt.Sprintf("📊 Reporte generado: %s\nArchivo: %s", name, artifact), nil
}
