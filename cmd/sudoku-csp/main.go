package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/sudoku-csp/internal/adapters/http"
	"svw.info/sudoku-csp/internal/boardio"
	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
	"svw.info/sudoku-csp/internal/solver"
	"svw.info/sudoku-csp/internal/usecase"
	"svw.info/sudoku-csp/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func main() {
	puzzle := flag.String("puzzle", "", "path to a puzzle file")
	strategy := flag.String("strategy", "pruning", "search: pruning|forward-checking|mac")
	cellSel := flag.String("select", "first-empty", "cell selection: first-empty|mrv")
	valOrder := flag.String("order", "basic", "value ordering: basic|lcv")
	ac3 := flag.Bool("ac3", false, "run AC-3 preprocessing before the search")
	compare := flag.Bool("compare", false, "run every strategy combination and print a table")
	serve := flag.Bool("serve", false, "serve the JSON API instead of solving once")
	addr := flag.String("addr", ":8080", "listen address for -serve")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	uc := usecase.NewService(func(cfg domain.Config) ports.Searcher {
		return solver.New(cfg)
	})

	if *serve {
		h := httpadapter.New(uc, validator.New())
		mux := http.NewServeMux()
		h.Register(mux)
		srv := &http.Server{
			Addr:              *addr,
			Handler:           requestLogger(logger, mux),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info("listening", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
		return
	}

	if *puzzle == "" {
		fmt.Fprintln(os.Stderr, "usage: sudoku-csp -puzzle <file> [-strategy ...] [-compare]")
		os.Exit(2)
	}
	board, err := boardio.ReadFile(*puzzle)
	if err != nil {
		logger.Error("could not read puzzle", "path", *puzzle, "err", err)
		os.Exit(1)
	}
	logger.Debug("puzzle loaded", "path", *puzzle, "givens", board.CountFilled())

	ctx := context.Background()
	if *compare {
		results, err := uc.Compare(ctx, board, usecase.AllConfigs())
		if err != nil {
			logger.Error("comparison aborted", "err", err)
			os.Exit(1)
		}
		printComparison(results)
		return
	}

	cfg := domain.Config{
		Strategy:   domain.ParseSearchStrategy(*strategy),
		CellSelect: domain.ParseCellSelect(*cellSel),
		ValueOrder: domain.ParseValueOrder(*valOrder),
		Preprocess: *ac3,
	}
	res, err := uc.Run(ctx, board, cfg)
	if err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
	if !res.Solved {
		fmt.Println("No solution exists for the entered sudoku.")
		fmt.Printf("Runtime: %d ms\n", res.ElapsedMs)
		return
	}
	fmt.Println("Solved Board:")
	fmt.Print(boardio.Render(&res.Board))
	fmt.Printf("Steps: %d\n", res.Steps)
	fmt.Printf("Backtracks: %d\n", res.Backtracks)
	fmt.Printf("Runtime: %d ms\n", res.ElapsedMs)
}

func printComparison(results []domain.SolveResult) {
	fmt.Printf("%-18s %-12s %-7s %-7s %9s %11s %9s\n",
		"strategy", "select", "order", "solved", "steps", "backtracks", "ms")
	for _, r := range results {
		fmt.Printf("%-18s %-12s %-7s %-7t %9d %11d %9d\n",
			r.Config.Strategy, r.Config.CellSelect, r.Config.ValueOrder,
			r.Solved, r.Steps, r.Backtracks, r.ElapsedMs)
	}
}
