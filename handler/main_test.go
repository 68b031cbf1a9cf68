// handler/main_test.go
package handler

import (
	"os"
	"testing"

	"lifeseeker-api/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
