package route

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"gridcal/src-server/utils"
)

// Static serves user-supplied assets (the calendar CSS lives outside this
// repo). The route is only registered when STATIC_ASSETS_DIR is configured.
func Static(muxer *http.ServeMux, as *utils.AppState) {
	assetsDir := as.Config.GetStaticAssetsDir()
	if assetsDir == "" {
		slog.Info("STATIC_ASSETS_DIR not set, skipping assets route")
		return
	}
	files := http.FS(os.DirFS(assetsDir))

	muxer.HandleFunc("GET /assets/{filepath...}", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Clean(r.PathValue("filepath"))
		if path == "." || path == ".." {
			http.NotFound(w, r)
			return
		}

		file, err := files.Open(path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer file.Close()

		stat, err := file.Stat()
		if err != nil || stat.IsDir() {
			http.NotFound(w, r)
			return
		}

		http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
	})
}
