package httpadapter

import (
	"encoding/json"
	"net/http"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
	"svw.info/sudoku-csp/internal/usecase"
)

type Handler struct {
	UC        *usecase.Service
	Validator ports.Validator
}

func New(uc *usecase.Service, v ports.Validator) *Handler {
	return &Handler{UC: uc, Validator: v}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/compare", h.handleCompare)
	mux.HandleFunc("/api/validate", h.handleValidate)
}

// ---- Solve ----

type solveReq struct {
	Board      [9][9]uint8 `json:"board"`
	Strategy   string      `json:"strategy,omitempty"`
	CellSelect string      `json:"cellSelect,omitempty"`
	ValueOrder string      `json:"valueOrder,omitempty"`
	Preprocess bool        `json:"preprocess,omitempty"`
}

type solveResp struct {
	Solved     bool        `json:"solved"`
	Board      [9][9]uint8 `json:"board,omitempty"`
	Steps      int         `json:"steps"`
	Backtracks int         `json:"backtracks"`
	ElapsedMs  int64       `json:"elapsedMs"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	cfg := domain.Config{
		Strategy:   domain.ParseSearchStrategy(req.Strategy),
		CellSelect: domain.ParseCellSelect(req.CellSelect),
		ValueOrder: domain.ParseValueOrder(req.ValueOrder),
		Preprocess: req.Preprocess,
	}
	res, err := h.UC.Run(r.Context(), &domain.Board{Values: req.Board}, cfg)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Solved:     res.Solved,
		Board:      res.Board.Values,
		Steps:      res.Steps,
		Backtracks: res.Backtracks,
		ElapsedMs:  res.ElapsedMs,
	})
}

// ---- Compare ----

type compareReq struct {
	Board [9][9]uint8 `json:"board"`
}

type compareEntry struct {
	Strategy   string `json:"strategy"`
	CellSelect string `json:"cellSelect"`
	ValueOrder string `json:"valueOrder"`
	Solved     bool   `json:"solved"`
	Steps      int    `json:"steps"`
	Backtracks int    `json:"backtracks"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

type compareResp struct {
	Results []compareEntry `json:"results,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req compareReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(compareResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	results, err := h.UC.Compare(r.Context(), &domain.Board{Values: req.Board}, usecase.AllConfigs())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(compareResp{Error: err.Error()})
		return
	}
	resp := compareResp{Results: make([]compareEntry, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, compareEntry{
			Strategy:   res.Config.Strategy.String(),
			CellSelect: res.Config.CellSelect.String(),
			ValueOrder: res.Config.ValueOrder.String(),
			Solved:     res.Solved,
			Steps:      res.Steps,
			Backtracks: res.Backtracks,
			ElapsedMs:  res.ElapsedMs,
		})
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.Validator.Validate(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}
