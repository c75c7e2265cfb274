package main

import (
	"friendsync-api/core/logger"
	"friendsync-api/core/server"
)

// @title FriendSync API
// @version 1.0
// @description API backend for FriendSync - a shared calendar for coordinating hangouts with friends
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@friendsync.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
