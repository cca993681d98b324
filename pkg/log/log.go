package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields = logrus.Fields

// Setup configura o logrus para a execução: formato de texto com timestamp
// completo, nível vindo da configuração e saída duplicada para stderr e um
// arquivo diário (append-only) no diretório de logs. Retorna um entry com o
// run_id que correlaciona todas as mensagens de uma mesma execução.
func Setup(level, logsDir string) (*logrus.Entry, error) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if logsDir != "" {
		file, err := openLogFile(logsDir)
		if err != nil {
			return nil, err
		}
		logrus.SetOutput(io.MultiWriter(os.Stderr, file))
	}

	return logrus.WithField("run_id", uuid.NewString()), nil
}

func openLogFile(logsDir string) (*os.File, error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar o diretório de logs")
	}

	name := fmt.Sprintf("rpa_%s.log", time.Now().Format("20060102"))
	file, err := os.OpenFile(
		filepath.Join(logsDir, name),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo de log")
	}

	return file, nil
}
