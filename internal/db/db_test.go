package db

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestGormConfig(t *testing.T) {
	cfg := GormConfig(nil)
	assert.True(t, cfg.SkipDefaultTransaction)
	assert.True(t, cfg.PrepareStmt)
	assert.Nil(t, cfg.Logger)

	log, _ := test.NewNullLogger()
	assert.NotNil(t, GormConfig(log).Logger)
}
