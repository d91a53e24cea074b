package cache

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNewRedisEmptyURL(t *testing.T) {
	client, err := NewRedis(context.Background(), "", quietLogger())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisBadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "http://not-redis", quietLogger())
	assert.Error(t, err)
}

func TestNewRedisLive(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	client, err := NewRedis(context.Background(), url, quietLogger())
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NoError(t, client.Close())
}
