package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime"

	"github.com/oklahomer/go-kasumi/logger"
)

// readinessGetter is satisfied by *yelphelp.ConnectionState.
type readinessGetter interface {
	Ready() bool
}

// setStatusHandler sets an endpoint that returns the current status of the bot.
//
//	curl -s -XGET "http://localhost:8080/status" | jq .
//	{
//	  "runtime": {
//	    "goroutine_count": 115,
//	    "cpu_count": 4,
//	    "gc_count": 1
//	  },
//	  "ready": true
//	}
func setStatusHandler(mux *http.ServeMux, rg readinessGetter) {
	mux.HandleFunc("/status", func(writer http.ResponseWriter, _ *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)
		s := &status{
			Runtime: &runtimeStatus{
				NumGoroutine: runtime.NumGoroutine(),
				NumCPU:       runtime.NumCPU(),
				NumGC:        memStats.NumGC,
			},
			Ready: rg.Ready(),
		}

		bytes, err := json.Marshal(s)
		if err != nil {
			logger.Errorf("Failed to build json: %+v", err)
			http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		writer.Header().Set("Content-Type", "application/json")
		if !s.Ready {
			writer.WriteHeader(http.StatusServiceUnavailable)
		}
		_, _ = writer.Write(bytes)
	})
}

type status struct {
	Runtime *runtimeStatus `json:"runtime"`
	Ready   bool           `json:"ready"`
}

type runtimeStatus struct {
	NumGoroutine int    `json:"goroutine_count"`
	NumCPU       int    `json:"cpu_count"`
	NumGC        uint32 `json:"gc_count"`
}

// runStatusServer serves the status endpoint until the given context is canceled.
func runStatusServer(ctx context.Context, addr string, rg readinessGetter) {
	mux := http.NewServeMux()
	setStatusHandler(mux, rg)
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Status server stopped: %+v", err)
		}
	}()

	<-ctx.Done()
	// The parent context is already canceled, so use a fresh one to let in-flight requests finish.
	err := server.Shutdown(context.Background())
	if err != nil {
		logger.Errorf("Failed to stop HTTP server: %+v", err)
	}
}
