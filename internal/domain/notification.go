package domain

// NotificationStatus indica o desfecho da etapa de notificação.
type NotificationStatus string

const (
	// NotificationSkipped indica que as credenciais não estavam configuradas
	// e nenhuma chamada de rede foi feita. Não é um erro.
	NotificationSkipped NotificationStatus = "SKIPPED"

	// NotificationSent indica que todas as mensagens foram entregues.
	NotificationSent NotificationStatus = "SENT"

	// NotificationFailed indica que ao menos uma entrega falhou. A falha é
	// registrada em log e nunca interrompe a execução.
	NotificationFailed NotificationStatus = "FAILED"
)

// NotificationResult resume o resultado da etapa de notificação, permitindo
// distinguir "desabilitado" de "enviado com sucesso".
type NotificationResult struct {
	Status NotificationStatus `json:"status"`
	Sent   int                `json:"sent"`
	Failed int                `json:"failed"`
}
