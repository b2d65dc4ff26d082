package services_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prince981620/dependency-injection/app/services"
)

func TestLoggers_PrefixEveryLine(t *testing.T) {
	tests := []struct {
		name   string
		logger func(buf *bytes.Buffer) services.Logger
		want   string
	}{
		{
			name:   "console",
			logger: func(buf *bytes.Buffer) services.Logger { return services.NewConsoleLogger(buf) },
			want:   "[console]: hello\n",
		},
		{
			name:   "file",
			logger: func(buf *bytes.Buffer) services.Logger { return services.NewFileLogger(buf) },
			want:   "[file]: hello\n",
		},
		{
			name:   "cloud",
			logger: func(buf *bytes.Buffer) services.Logger { return services.NewCloudLogger(buf) },
			want:   "[cloud]: hello\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logger(&buf).Log("hello")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLoggers_OneLinePerCallInOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := services.NewConsoleLogger(&buf)

	logger.Log("first")
	logger.Log("second")

	assert.Equal(t, "[console]: first\n[console]: second\n", buf.String())
}
