package logging

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", "json", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("application", "app-1").Info("application transitioned")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "app-1", entry["application"])
	assert.Equal(t, "application transitioned", entry["msg"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", "text", &buf)
	require.NoError(t, err)
	log.Info("hidden")
	assert.Empty(t, buf.String())
	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("loud", "text", &bytes.Buffer{})
	assert.Error(t, err)
	_, err = New("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
