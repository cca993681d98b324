package notifying

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-report-rpa/infrastructure/integrator/whatsapp/mocks"
	"github.com/vfg2006/sales-report-rpa/internal/config"
	"github.com/vfg2006/sales-report-rpa/internal/domain"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func enabledConfig() *config.Config {
	return &config.Config{
		Twilio: config.Twilio{
			AccountSID:   "AC123",
			AuthToken:    "secret",
			WhatsAppFrom: "whatsapp:+14155238886",
			WhatsAppTo:   "+51987654321",
		},
	}
}

func TestNotifyReport_SkippedWithoutCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa registrada: qualquer chamada de rede falha o teste
	sender := mocks.NewMockMessageSender(ctrl)

	cfg := enabledConfig()
	cfg.Twilio.AuthToken = ""

	service := NewService(cfg, sender, testLogger())
	result := service.NotifyReport("resumen", []string{"output/ventas_por_sede.png"})

	assert.Equal(t, domain.NotificationSkipped, result.Status)
	assert.Zero(t, result.Sent)
	assert.Zero(t, result.Failed)
}

func TestNotifyReport_SendsSummaryAndArtifacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockMessageSender(ctrl)
	cfg := enabledConfig()

	gomock.InOrder(
		sender.EXPECT().
			SendMessage("+51987654321", "resumen de ventas", gomock.Nil()).
			Return("SM001", nil),
		sender.EXPECT().
			SendMessage("+51987654321", gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_, body string, _ []string) (string, error) {
				assert.Contains(t, body, "ventas_por_sede.png")
				assert.Contains(t, body, "Archivo: output/ventas_por_sede.png")
				return "SM002", nil
			}),
	)

	service := NewService(cfg, sender, testLogger())
	result := service.NotifyReport("resumen de ventas", []string{"output/ventas_por_sede.png"})

	assert.Equal(t, domain.NotificationSent, result.Status)
	assert.Equal(t, 2, result.Sent)
	assert.Zero(t, result.Failed)
}

func TestNotifyReport_AttachesMediaWithPublicBaseURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockMessageSender(ctrl)
	cfg := enabledConfig()
	cfg.Report.PublicBaseURL = "https://cdn.example.com/reportes/"

	gomock.InOrder(
		sender.EXPECT().
			SendMessage("+51987654321", "resumen", gomock.Nil()).
			Return("SM001", nil),
		sender.EXPECT().
			SendMessage(
				"+51987654321",
				"📊 Reporte generado: top_modelos.png",
				[]string{"https://cdn.example.com/reportes/top_modelos.png"},
			).
			Return("SM002", nil),
	)

	service := NewService(cfg, sender, testLogger())
	result := service.NotifyReport("resumen", []string{"output/top_modelos.png"})

	assert.Equal(t, domain.NotificationSent, result.Status)
	assert.Equal(t, 2, result.Sent)
}

func TestNotifyReport_DeliveryFailureNeverPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockMessageSender(ctrl)
	cfg := enabledConfig()

	gomock.InOrder(
		sender.EXPECT().
			SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("twilio: status 401")),
		sender.EXPECT().
			SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("SM002", nil),
	)

	service := NewService(cfg, sender, testLogger())
	result := service.NotifyReport("resumen", []string{"output/canales_ventas.png"})

	assert.Equal(t, domain.NotificationFailed, result.Status)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestNotifyReport_NilSenderIsSkipped(t *testing.T) {
	service := NewService(enabledConfig(), nil, testLogger())

	result := service.NotifyReport("resumen", nil)

	assert.Equal(t, domain.NotificationSkipped, result.Status)
}
