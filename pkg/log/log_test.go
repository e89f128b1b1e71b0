package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestForContext_AddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	previous := L
	L = &logger{Entry: logrus.NewEntry(base)}
	defer func() { L = previous }()

	ctx, correlationID := WithCorrelationID(context.Background())
	ForContext(ctx).Info("meta salva")

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Contains(t, buf.String(), correlationID)
	assert.Contains(t, buf.String(), "meta salva")
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}
