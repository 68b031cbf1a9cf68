// cmd/main.go
package main

import (
	"lifeseeker-api/app"
)

// @title           LifeSeeker Annotation API
// @version         1.0
// @description     Backend service for annotating lifelog photo captures with location, activity, and perceived stress level.

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
