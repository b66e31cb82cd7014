package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short"))

	long := strings.Repeat("a", maxBodyAttribute+10)
	truncated := truncate(long)
	require.True(t, strings.HasPrefix(truncated, strings.Repeat("a", maxBodyAttribute)))
	require.True(t, strings.HasSuffix(truncated, "... (10 bytes truncated)"))
}

func TestHeaderAttributes(t *testing.T) {
	headers := http.Header{}
	headers.Set("User-Agent", "test")
	headers.Add("Accept", "text/html")
	headers.Add("Accept", "application/json")

	attrs := headerAttributes("request", headers)
	values := map[string]string{}
	for _, a := range attrs {
		values[string(a.Key)] = a.Value.AsString()
	}
	require.Equal(t, map[string]string{
		"request/header: User-Agent": "test",
		"request/header: Accept (0)": "text/html",
		"request/header: Accept (1)": "application/json",
	}, values)
}

func TestShutdownZero(t *testing.T) {
	require.NoError(t, Telemetry{}.Shutdown(context.Background()))
}

func TestInstrumentResty(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	defer otel.SetTracerProvider(previous)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	client := resty.New()
	InstrumentResty(client, "test:telemetry")

	_, err := client.R().Get(server.URL + "/ok")
	require.NoError(t, err)
	_, err = client.R().Get(server.URL + "/missing")
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "http GET", spans[0].Name())
	require.NotEqual(t, codes.Error, spans[0].Status().Code)
	require.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestRequestBodyAttribute(t *testing.T) {
	get, err := http.NewRequest(http.MethodGet, "http://example.com/persons/2015DOEX01", nil)
	require.NoError(t, err)
	get.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "", requestBodyAttribute(get).Value.AsString())

	get.GetBody = nil
	require.Equal(t, "", requestBodyAttribute(get).Value.AsString())

	post, err := http.NewRequest(http.MethodPost, "http://example.com", strings.NewReader("wca_id=2015DOEX01"))
	require.NoError(t, err)
	attr := requestBodyAttribute(post)
	require.Equal(t, "request/body", string(attr.Key))
	require.Equal(t, "wca_id=2015DOEX01", attr.Value.AsString())
}
