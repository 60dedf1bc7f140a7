package env

import (
	"errors"
	"linecheck/internal/config"
	"net"
	"os"
	"strings"
)

const (
	httpHostEnvName        = "HTTP_HOST"
	httpPortEnvName        = "HTTP_PORT"
	httpCORSOriginsEnvName = "HTTP_CORS_ORIGINS"
)

type httpConfig struct {
	host        string
	port        string
	corsOrigins []string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostEnvName)

	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		return nil, errors.New("http port not found")
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv(httpCORSOriginsEnvName), ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			return nil, errors.New("cors origins must be explicit: the api uses a session cookie")
		}
		if len(o) != 0 {
			origins = append(origins, o)
		}
	}

	return &httpConfig{
		host:        host,
		port:        port,
		corsOrigins: origins,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) CORSOrigins() []string {
	return cfg.corsOrigins
}
