// Package main содержит точку входа сервера Mars Registry.
//
// Вся работа делегируется пакету internal/cli: запуск сервера (marsd serve),
// миграции (marsd migrate) и создание пользователей (marsd user create).
package main

import "github.com/IvanChernomyrdin/go-mars-registry/internal/cli"

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	// По умолчанию используется значение "dev".
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	// По умолчанию используется значение "unknown".
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
