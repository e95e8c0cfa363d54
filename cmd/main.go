package main

import (
	"os"

	"casual-leasing/cmd/bootstrap"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title           casual-leasing
// @version         1.0
// @description     Casual leasing booking and pricing API for shopping centre sites.

// @BasePath  /
// @schemes http https
func main() {
	// Release unless GIN_MODE says otherwise, so a missing variable never enables debug routes.
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	fx.New(bootstrap.Module, fx.NopLogger).Run()
}
