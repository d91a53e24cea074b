package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

func TestNew(t *testing.T) {
	log := New(&config.Config{LogLevel: "debug", LogFormat: "text"})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	log = New(&config.Config{LogLevel: "loud", LogFormat: "json"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotNil(t, FromContext(c))
	assert.NotNil(t, FromContext(nil))

	entry := logrus.New().WithField("request_id", "abc")
	c.Set(ContextKey, entry)
	assert.Same(t, entry, FromContext(c))
}
