// Package main implements a mock Naver Shopping search API for local
// development. It generates deterministic product pages for any query, so
// flower-finder can run without Naver credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	maxDisplay = 100
	maxStart   = 1000
)

type shopResponse struct {
	LastBuildDate string     `json:"lastBuildDate"`
	Total         int        `json:"total"`
	Start         int        `json:"start"`
	Display       int        `json:"display"`
	Items         []shopItem `json:"items"`
}

type shopItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Image     string `json:"image"`
	LPrice    string `json:"lprice"`
	HPrice    string `json:"hprice"`
	MallName  string `json:"mallName"`
	ProductID string `json:"productId"`
	Category1 string `json:"category1"`
	Category2 string `json:"category2"`
}

type apiError struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode"`
}

// options control the generated catalogue.
type options struct {
	total     int // products per query
	failStart int // start offset answered with 500, 0 disables
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	total := flag.Int("total", 350, "products generated per query")
	failStart := flag.Int("fail-start", 0, "answer this start offset with HTTP 500 (0 disables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/search/shop.json", shopHandler(logger, options{total: *total, failStart: *failStart}))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Naver Shopping server", "addr", addr, "total", *total)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// intParam parses an optional integer query parameter within [lo, hi].
func intParam(r *http.Request, name string, def, lo, hi int) (int, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < lo || v > hi {
		return 0, false
	}
	return v, true
}

func shopHandler(logger *slog.Logger, opts options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Naver-Client-Id") == "" || r.Header.Get("X-Naver-Client-Secret") == "" {
			logger.Warn("request missing client credentials")
			writeJSON(w, http.StatusUnauthorized, apiError{
				ErrorMessage: "Not Exist Client ID : Authentication failed. (인증에 실패했습니다.)",
				ErrorCode:    "024",
			})
			return
		}

		q := r.URL.Query().Get("query")
		if q == "" {
			writeJSON(w, http.StatusBadRequest, apiError{
				ErrorMessage: "Incorrect query request (잘못된 쿼리요청입니다.)",
				ErrorCode:    "SE01",
			})
			return
		}

		display, ok := intParam(r, "display", 10, 1, maxDisplay)
		if !ok {
			writeJSON(w, http.StatusBadRequest, apiError{
				ErrorMessage: "Invalid display value (부적절한 display 값입니다.)",
				ErrorCode:    "SE02",
			})
			return
		}
		start, ok := intParam(r, "start", 1, 1, maxStart)
		if !ok {
			writeJSON(w, http.StatusBadRequest, apiError{
				ErrorMessage: "Invalid start value (부적절한 start 값입니다.)",
				ErrorCode:    "SE03",
			})
			return
		}

		if opts.failStart != 0 && start == opts.failStart {
			logger.Warn("injecting failure", "start", start)
			writeJSON(w, http.StatusInternalServerError, apiError{
				ErrorMessage: "System error (시스템 에러)",
				ErrorCode:    "SE99",
			})
			return
		}

		resp := shopResponse{
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Total:         opts.total,
			Start:         start,
			Items:         generateItems(q, start, display, opts.total),
		}
		resp.Display = len(resp.Items)

		writeJSON(w, http.StatusOK, resp)
		logger.Info("search", "query", q, "start", start, "display", display, "returned", resp.Display)
	}
}

// generateItems returns the products at 1-based positions
// [start, start+display) of a catalogue of total products.
func generateItems(query string, start, display, total int) []shopItem {
	items := make([]shopItem, 0, display)
	for pos := start; pos < start+display && pos <= total; pos++ {
		price := 10000 + (pos*7919)%90000
		items = append(items, shopItem{
			Title:     fmt.Sprintf("<b>%s</b> 꽃다발 %d호", query, pos),
			Link:      fmt.Sprintf("https://search.shopping.naver.com/catalog/%d", 80000000+pos),
			Image:     fmt.Sprintf("https://shopping-phinf.pstatic.net/main_%d/%d.jpg", 80000000+pos, pos),
			LPrice:    strconv.Itoa(price),
			HPrice:    "",
			MallName:  fmt.Sprintf("꽃집%d", pos%17+1),
			ProductID: strconv.Itoa(80000000 + pos),
			Category1: "생활/건강",
			Category2: "원예/식물",
		})
	}
	return items
}
