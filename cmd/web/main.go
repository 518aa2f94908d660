// @title           HR Interview Portal API
// @version         1.0
// @description     API для вакансий, откликов кандидатов и интервью.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "hr_portal_backend/internal/cli"

func main() {
	cli.Execute()
}
