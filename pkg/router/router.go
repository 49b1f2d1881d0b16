package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// route is one registered method+pattern pair. Patterns may contain "*"
// segments; a trailing "*" swallows any number of remaining segments.
type route struct {
	method  string
	pattern string
	// literal counts non-wildcard segments so more specific routes win,
	// e.g. /api/v1/assignments/*/return over /api/v1/assignments/*.
	literal  int
	segments []string
	handler  HandlerFunc
}

type Router struct {
	mux    *http.ServeMux
	routes []route
}

func New() *Router {
	r := &Router{mux: http.NewServeMux()}

	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		if h, ok := r.match(req.Method, req.URL.Path); ok {
			h(lrw, req)
		} else if r.pathKnown(req.URL.Path) {
			http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
		} else {
			http.Error(lrw, "Not Found", http.StatusNotFound)
		}

		duration := time.Since(start)
		color := statusColor(lrw.statusCode)
		methodColor := methodColor(req.Method)

		log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
			colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
			methodColor, req.Method, colorReset,
			req.URL.Path,
			color, lrw.statusCode, colorReset,
			colorBlue, duration, colorReset,
		)
	})

	return r
}

// match finds the most specific registered route for a method and path.
func (r *Router) match(method, path string) (HandlerFunc, bool) {
	segments := splitPath(path)

	best := -1
	var handler HandlerFunc
	for _, rt := range r.routes {
		if rt.method != method || !matchSegments(segments, rt.segments) {
			continue
		}
		if rt.literal > best {
			best = rt.literal
			handler = rt.handler
		}
	}
	return handler, best >= 0
}

// pathKnown reports whether any route matches the path under any method.
func (r *Router) pathKnown(path string) bool {
	segments := splitPath(path)
	for _, rt := range r.routes {
		if matchSegments(segments, rt.segments) {
			return true
		}
	}
	return false
}

// matchSegments checks a request path against a route pattern segment by
// segment. A trailing "*" matches one or more remaining segments.
func matchSegments(request, pattern []string) bool {
	if len(pattern) > 0 && pattern[len(pattern)-1] == "*" {
		if len(request) < len(pattern) {
			return false
		}
		for i := 0; i < len(pattern)-1; i++ {
			if pattern[i] != "*" && request[i] != pattern[i] {
				return false
			}
		}
		return true
	}

	if len(request) != len(pattern) {
		return false
	}
	for i, seg := range pattern {
		if seg == "*" {
			continue
		}
		if request[i] != seg {
			return false
		}
	}
	return true
}

func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

// --- Register paths ---
func (r *Router) register(method, pattern string, handler HandlerFunc) {
	segments := splitPath(pattern)
	literal := 0
	for _, seg := range segments {
		if seg != "*" {
			literal++
		}
	}
	r.routes = append(r.routes, route{
		method:   method,
		pattern:  pattern,
		literal:  literal,
		segments: segments,
		handler:  handler,
	})
}

func (r *Router) GET(path string, handler HandlerFunc)   { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)  { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)   { r.register(http.MethodPut, path, handler) }
func (r *Router) PATCH(path string, handler HandlerFunc) { r.register(http.MethodPatch, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

// Handler exposes the underlying mux, mainly for tests.
func (r *Router) Handler() http.Handler {
	return r.mux
}

// --- Start server ---
func (r *Router) Start(addr string) {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	log.Fatal(http.ListenAndServe(addr, r.mux))
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut:
		return colorYellow
	case http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
