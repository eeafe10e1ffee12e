package pprof

import (
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
)

const MetricsPath = "/metrics"

// NewRouter serves the pprof handlers under /debug/pprof and the prometheus
// registry under /metrics.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)
	router.GET(MetricsPath, gin.WrapH(promhttp.Handler()))
	return router
}

// Start runs the debug server in the background and returns the address it
// listens on. An empty addr picks a random local port.
func Start(addr string) (string, error) {
	gin.SetMode(gin.ReleaseMode)

	ln, err := listen(addr)
	if err != nil {
		return "", err
	}

	server := &http.Server{
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Errorf("debug server on %s stopped: %v", ln.Addr(), err)
		}
	}()

	logx.Infof("debug server listening on %s", ln.Addr())
	return ln.Addr().String(), nil
}

func listen(addr string) (net.Listener, error) {
	if addr != "" {
		return net.Listen("tcp", addr)
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for range 10 {
		ln, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", 1024+r.Intn(0xffff-1024)))
		if err == nil {
			return ln, nil
		}
	}
	return net.Listen("tcp", "localhost:0")
}
