// cmd/main.go
package main

import (
	"accounts-api/app"

	_ "accounts-api/docs"
)

// @title           Accounts API
// @version         1.0
// @description     Account opening, TED transfers and statements under calendar-based business rules.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
