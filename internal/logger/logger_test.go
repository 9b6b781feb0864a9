package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_LevelAndFormat(t *testing.T) {
	log := New("debug", "", true)
	assert.Equal(t, logrus.DebugLevel, log.Level)
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	log = New("nonsense", "", false)
	assert.Equal(t, logrus.InfoLevel, log.Level)
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestFromContext(t *testing.T) {
	base := logrus.New()
	entry := base.WithField("request_id", "abc")

	ctx := WithEntry(context.Background(), entry)
	assert.Equal(t, "abc", FromContext(ctx).Data["request_id"])

	assert.NotNil(t, FromContext(context.Background()))
}
