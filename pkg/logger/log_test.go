package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"mediascrub/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logger.LogStatus
	}{
		{input: "DEBUG", want: logger.DEBUG},
		{input: "debug", want: logger.DEBUG},
		{input: "INFO", want: logger.INFO},
		{input: "WARNING", want: logger.WARNING},
		{input: "ERROR", want: logger.ERROR},
		{input: "garbage", want: logger.INFO},
		{input: "", want: logger.INFO},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}

func TestEmit_RespectsMinimumLevel(t *testing.T) {
	var buf bytes.Buffer
	logs := logger.NewWithOutput(logger.WARNING, &buf)
	log := logs.GetLogger("Test")

	log.Emit(logger.DEBUG, "hidden\n")
	log.Emit(logger.INFO, "also hidden\n")
	assert.Empty(t, buf.String())

	log.Emit(logger.WARNING, "visible %d\n", 42)
	assert.Contains(t, buf.String(), "visible 42")
	assert.Contains(t, buf.String(), "[Test]")
}
