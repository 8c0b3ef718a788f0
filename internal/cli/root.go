// Package cli реализует командный интерфейс сервера Mars Registry (marsd).
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - загрузку .env и конфигурации сервера;
//   - запуск HTTP-сервера, миграций и административных команд.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/config"
)

// App содержит состояние CLI, разделяемое между командами.
type App struct {
	// ConfigPath — путь к YAML-конфигу сервера.
	ConfigPath string
	// EnvFile — файл с переменными окружения; отсутствие файла не ошибка.
	EnvFile string
}

// LoadConfig загружает .env (если есть) и конфиг сервера.
func (a *App) LoadConfig() (*config.Config, error) {
	if a.EnvFile != "" {
		if err := godotenv.Load(a.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", a.EnvFile, err)
		}
	}
	return config.Load(a.ConfigPath)
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются командой version.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "marsd",
		Short: "Mars Registry — реестр работ и департаментов колонии",
		Long: `Mars Registry.

Команды:
  serve        Запустить HTTP-сервер
  migrate      Применить или откатить миграции
  user create  Создать пользователя из консоли
  version      Версия и дата сборки

Примеры:
  marsd serve --config ./configs/server.yaml
  marsd migrate up
  marsd user create --email captain@mars.org --surname Scott --name Ridley --age 21
`,
		SilenceUsage: true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "./configs/server.yaml", "path to server config")
	cmd.PersistentFlags().StringVar(&app.EnvFile, "env-file", ".env", "dotenv file with secrets")

	cmd.AddCommand(NewServeCmd(app))
	cmd.AddCommand(NewMigrateCmd(app))
	cmd.AddCommand(NewUserCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке сообщение выводится в stderr, процесс завершается с кодом 1.
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
