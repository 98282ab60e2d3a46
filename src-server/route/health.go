package route

import (
	"encoding/json"
	"net/http"
	"runtime"

	"gridcal/src-server/utils"
)

// Health reports liveness plus a few runtime numbers.
func Health(muxer *http.ServeMux, as *utils.AppState) {
	type HealthRespBody struct {
		Uptime    string  `json:"uptime"`
		GoVersion string  `json:"goVersion"`
		MemoryMB  float64 `json:"memoryMB"`
	}

	muxer.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		w.Header().Set("Content-Type", "application/json")
		respBodyJson, err := json.Marshal(HealthRespBody{
			Uptime:    as.GetUptime().String(),
			GoVersion: runtime.Version(),
			MemoryMB:  float64(m.Sys) / 1024 / 1024,
		})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't marshal response body"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write(respBodyJson)
	})
}
