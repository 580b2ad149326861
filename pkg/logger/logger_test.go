package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
	assert.Equal(t, "WARN", LevelWarn.String())
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelInfo, Format: "json"})

	log.With(Component("enrollment")).Warn("enrollment rejected",
		StudentID("S001"), CourseCode("CS101"), Err(errors.New("Course is full")))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "enrollment rejected", entry["msg"])
	assert.Equal(t, "enrollment", entry["component"])
	assert.Equal(t, "S001", entry["student_id"])
	assert.Equal(t, "CS101", entry["course_code"])
	assert.Equal(t, "Course is full", entry["error"])
	assert.Contains(t, entry, "timestamp")
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelWarn})

	log.Debug("hidden")
	log.Info("hidden")
	log.Error("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "shown")
}

func TestLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelDebug, Format: "console"})
	log.Info("hello", Int("n", 3))

	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "hello")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("dropped", Any("k", 1))
	assert.NotNil(t, log.With(Bool("b", true)))
}
