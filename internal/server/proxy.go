package server

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mindmate/internal/platform/config"
	"mindmate/internal/platform/logger"
)

// NewUpstreamProxy forwards everything under the mount point to the upstream
// with the mount prefix stripped, optionally through an outbound HTTP proxy.
// Credentials are never added on the caller's behalf.
func NewUpstreamProxy(cfg config.UpstreamConfig, mount string, log *logger.Logger) (gin.HandlerFunc, error) {
	if log == nil {
		log = logger.NewNop()
	}
	target, err := url.Parse(cfg.URL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid upstream url %q", cfg.URL)
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = 2 * time.Minute
	if outbound := OutboundProxyURL(cfg); outbound != nil {
		transport.Proxy = http.ProxyURL(outbound)
		log.Info("using outbound proxy", "proxy", outbound.Redacted())
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.Out.URL.Path = singleJoin(target.Path, strings.TrimPrefix(r.In.URL.Path, mount))
			r.Out.URL.RawPath = ""
			r.Out.Host = target.Host
			log.Debug("proxying request", "method", r.In.Method, "path", r.Out.URL.Path)
		},
		Transport: transport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Error("proxy error", "path", r.URL.Path, "error", err)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Proxy error"}`))
		},
	}
	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}, nil
}

// OutboundProxyURL is nil unless a proxy host is configured.
func OutboundProxyURL(cfg config.UpstreamConfig) *url.URL {
	if strings.TrimSpace(cfg.ProxyHost) == "" {
		return nil
	}
	host := cfg.ProxyHost
	if cfg.ProxyPort != "" {
		host = net.JoinHostPort(cfg.ProxyHost, cfg.ProxyPort)
	}
	u := &url.URL{Scheme: "http", Host: host}
	if cfg.ProxyUsername != "" {
		u.User = url.UserPassword(cfg.ProxyUsername, cfg.ProxyPassword)
	}
	return u
}

func singleJoin(base, rest string) string {
	switch {
	case rest == "":
		if base == "" {
			return "/"
		}
		return base
	case strings.HasSuffix(base, "/") && strings.HasPrefix(rest, "/"):
		return base + rest[1:]
	case !strings.HasSuffix(base, "/") && !strings.HasPrefix(rest, "/"):
		return base + "/" + rest
	default:
		return base + rest
	}
}
