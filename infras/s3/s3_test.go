package s3_test

import (
	"context"
	"net/http"
	"testing"
	"travel/config"
	"travel/infras/otel/mocks"
	"travel/infras/s3"
	"travel/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/reports/a.csv", s3.PublicURL("https://cdn.example.com/", "/reports/a.csv"))
	assert.Equal(t, "https://cdn.example.com/reports/a.csv", s3.PublicURL("https://cdn.example.com", "reports/a.csv"))
}

func TestNew_Disabled(t *testing.T) {
	client := s3.New(&config.Config{}, mocks.NewOtel())

	assert.False(t, client.Enabled())

	_, err := client.UploadFileBytes(context.Background(), "", "reports", "a.csv", "text/csv", []byte("a,b\n"))
	assert.Equal(t, http.StatusNotImplemented, failure.GetCode(err))
}
