package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// Origins the map frontend is served from during development:
// create-react-app on 3000, Vite on 5173.
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

var AllowedOrigins = initAllowedOrigins()

// initAllowedOrigins extends the dev origins with the deployed frontend
// (CLIENT_URL) and any extra comma-separated ALLOWED_ORIGINS.
func initAllowedOrigins() []string {
	origins := append([]string{}, devOrigins...)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
