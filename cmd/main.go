// cmd/main.go
package main

import (
	"monumento-api/app"
)

// @title           Monumento API
// @version         1.0
// @description     API for managing historical monuments.

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
