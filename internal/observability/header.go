package observability

import (
	"fmt"
	"net/http"
)

// AppendServerTiming adds a Server-Timing metric entry so browser devtools
// show where a dashboard request spent its time.
func AppendServerTiming(w http.ResponseWriter, name string, durMs float64) {
	if durMs <= 0 {
		return
	}
	w.Header().Add("Server-Timing", fmt.Sprintf("%s;dur=%.2f", name, durMs))
}
