package httpx

import "net/http"

// ServiceInfo is served by InfoHandler.
type ServiceInfo struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Environment string   `json:"environment"`
	Contexts    []string `json:"contexts"`
}

// InfoHandler returns a handler that reports static build and runtime
// information about the process.
func InfoHandler(info ServiceInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		JSON(w, http.StatusOK, info)
	}
}
