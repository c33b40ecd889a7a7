package probe

import (
	"net/http"
)

const (
	ContentType = "text/plain"
	Body        = "Cron Test!\n"
)

// Handler is the cron test liveness response. Method, path, headers and
// body of r are ignored; every request gets the same answer.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Body))
}
