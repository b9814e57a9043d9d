// @title           Nexues Job Board API
// @version         1.0
// @description     Бэкенд доски вакансий: аутентификация, вакансии, отклики, компании (документация Swagger).
// @contact.name    Nexues
// @contact.email   support@nexues.dev
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"nexues_backend/internal/app"

	_ "nexues_backend/docs"
)

func main() {
	app.Run()
}
