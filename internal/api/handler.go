package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/eugenenazirov/tile-shop/internal/calculator"
	"github.com/eugenenazirov/tile-shop/internal/catalog"
	"github.com/eugenenazirov/tile-shop/internal/quote"
	"github.com/eugenenazirov/tile-shop/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const (
	maxUploadBytes = 10 << 20
	xlsxMediaType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handler wires quote and storage dependencies into HTTP handlers.
type Handler struct {
	storage storage.Storage
	quotes  *quote.Service

	clock        func() time.Time
	defaultWaste float64

	mu               sync.RWMutex
	catalogUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithDefaultWasteFactor sets the waste factor applied when a request omits one.
func WithDefaultWasteFactor(factor float64) HandlerOption {
	return func(h *Handler) {
		h.defaultWaste = factor
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(calc calculator.Calculator, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
		defaultWaste: calculator.DefaultWasteFactor,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.quotes = quote.NewService(calc, store, quote.WithDefaultWasteFactor(h.defaultWaste))
	h.catalogUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:             "ok",
		Timestamp:          h.clock(),
		DefaultWasteFactor: h.quotes.DefaultWasteFactor(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if req.AreaSquareMeters == nil && req.RoomLengthM == 0 && req.RoomWidthM == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "areaSquareMeters or roomLengthM and roomWidthM are required")
		return
	}

	custom := quote.CustomRequest{
		RoomLengthM:       req.RoomLengthM,
		RoomWidthM:        req.RoomWidthM,
		TileWidthCm:       req.TileWidthCm,
		TileLengthCm:      req.TileLengthCm,
		WasteFactor:       req.WasteFactor,
		TilesPerCarton:    req.TilesPerCarton,
		CoveragePerCarton: req.CoveragePerCarton,
		PricePerCarton:    req.PricePerCarton,
	}
	if req.AreaSquareMeters != nil {
		custom.AreaSquareMeters = *req.AreaSquareMeters
	}

	start := time.Now()
	est, err := h.quotes.EstimateCustom(custom)
	elapsed := time.Since(start)
	if err != nil {
		writeEstimateError(w, err)
		return
	}

	resp := newEstimateResponse(est)
	resp.CalculationTimeMs = elapsed.Milliseconds()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	order, err := catalog.ParseSortOrder(query.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	filter := catalog.Filter{
		Materials:    queryList(query["material"]),
		Finishes:     queryList(query["finish"]),
		Applications: queryList(query["application"]),
	}
	if raw := strings.TrimSpace(query.Get("inStock")); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request", "inStock must be true or false")
			return
		}
		filter.InStockOnly = inStock
	}

	products, err := h.storage.ListProducts()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	matched := catalog.Query(products, filter, order)
	resp := productsResponse{
		Products:      matched,
		Count:         len(matched),
		ActiveFilters: filter.ActiveCount(),
		Sort:          string(order),
		UpdatedAt:     h.currentCatalogUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.storage.GetProduct(r.PathValue("handle"))
	if err != nil {
		writeEstimateError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handlePutProducts(w http.ResponseWriter, r *http.Request) {
	var req productsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Products) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid catalog", "products must contain at least one product")
		return
	}

	h.replaceCatalog(w, req.Products)
}

func (h *Handler) handleImportProducts(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "multipart field \"file\" with an XLSX workbook is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	products, err := catalog.LoadXLSX(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid catalog", err.Error())
		return
	}

	h.replaceCatalog(w, products)
}

func (h *Handler) handleExportProducts(w http.ResponseWriter, r *http.Request) {
	_ = r
	products, err := h.storage.ListProducts()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := catalog.WriteXLSX(&buf, products); err != nil {
		writeInternalError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxMediaType)
	w.Header().Set("Content-Disposition", attachment("catalog.xlsx"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleEstimateProduct(w http.ResponseWriter, r *http.Request) {
	est, ok := h.estimateProduct(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newEstimateResponse(est))
}

func (h *Handler) handleQuoteProduct(w http.ResponseWriter, r *http.Request) {
	est, ok := h.estimateProduct(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := quote.WritePDF(&buf, est, h.clock()); err != nil {
		writeInternalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachment("quote-"+est.ProductHandle+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) estimateProduct(w http.ResponseWriter, r *http.Request) (quote.Estimate, bool) {
	var req productEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return quote.Estimate{}, false
	}

	if req.AreaSquareMeters == nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "areaSquareMeters is required")
		return quote.Estimate{}, false
	}

	est, err := h.quotes.EstimateProduct(r.PathValue("handle"), quote.ProductRequest{
		AreaSquareMeters: *req.AreaSquareMeters,
		WasteFactor:      req.WasteFactor,
		VariantID:        req.VariantID,
	})
	if err != nil {
		writeEstimateError(w, err)
		return quote.Estimate{}, false
	}
	return est, true
}

func (h *Handler) replaceCatalog(w http.ResponseWriter, products []catalog.Product) {
	if err := h.storage.SetProducts(products); err != nil {
		if errors.Is(err, storage.ErrInvalidCatalog) {
			writeError(w, http.StatusBadRequest, "Invalid catalog", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markCatalogUpdated()

	stored, err := h.storage.ListProducts()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := productsResponse{
		Products:  stored,
		Count:     len(stored),
		UpdatedAt: h.currentCatalogUpdatedAt(),
		Message:   "Catalog updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) currentCatalogUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalogUpdatedAt
}

func (h *Handler) markCatalogUpdated() {
	h.mu.Lock()
	h.catalogUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func attachment(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}

// queryList accepts both repeated parameters and comma-separated values.
func queryList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

type calculateRequest struct {
	AreaSquareMeters  *float64 `json:"areaSquareMeters"`
	RoomLengthM       float64  `json:"roomLengthM"`
	RoomWidthM        float64  `json:"roomWidthM"`
	TileWidthCm       float64  `json:"tileWidthCm"`
	TileLengthCm      float64  `json:"tileLengthCm"`
	WasteFactor       *float64 `json:"wasteFactor"`
	TilesPerCarton    int      `json:"tilesPerCarton"`
	CoveragePerCarton float64  `json:"coveragePerCarton"`
	PricePerCarton    float64  `json:"pricePerCarton"`
}

type productEstimateRequest struct {
	AreaSquareMeters *float64 `json:"areaSquareMeters"`
	WasteFactor      *float64 `json:"wasteFactor"`
	VariantID        string   `json:"variantId"`
}

type productsRequest struct {
	Products []catalog.Product `json:"products"`
}

type estimateResponse struct {
	quote.Estimate
	PricePerCarton    float64 `json:"pricePerCarton"`
	TotalPrice        float64 `json:"totalPrice"`
	FormattedTotal    string  `json:"formattedTotal"`
	CalculationTimeMs int64   `json:"calculationTimeMs,omitempty"`
}

func newEstimateResponse(est quote.Estimate) estimateResponse {
	return estimateResponse{
		Estimate:       est,
		PricePerCarton: est.UnitPrice(),
		TotalPrice:     est.Total(),
		FormattedTotal: quote.FormatCents(est.TotalCents),
	}
}

type productsResponse struct {
	Products      []catalog.Product `json:"products"`
	Count         int               `json:"count"`
	ActiveFilters int               `json:"activeFilters"`
	Sort          string            `json:"sort,omitempty"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	Message       string            `json:"message,omitempty"`
}

type healthResponse struct {
	Status             string    `json:"status"`
	Timestamp          time.Time `json:"timestamp"`
	DefaultWasteFactor float64   `json:"defaultWasteFactor"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}

func writeEstimateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, calculator.ErrInvalidDimension),
		errors.Is(err, calculator.ErrInvalidWasteFactor),
		errors.Is(err, calculator.ErrInvalidArea),
		errors.Is(err, calculator.ErrInvalidPacking),
		errors.Is(err, quote.ErrInvalidPrice),
		errors.Is(err, catalog.ErrUnknownVariant):
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, calculator.ErrQuantityOutOfRange):
		writeError(w, http.StatusUnprocessableEntity, "Cannot calculate", err.Error(),
			"Split the area into smaller sections or choose a larger tile size")
	case errors.Is(err, quote.ErrAmountOutOfRange):
		writeError(w, http.StatusUnprocessableEntity, "Cannot price", err.Error(),
			"Check the price per carton or quote the area in smaller sections")
	case errors.Is(err, catalog.ErrInvalidSize):
		writeError(w, http.StatusUnprocessableEntity, "Invalid product data", err.Error())
	case errors.Is(err, storage.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Product not found", err.Error())
	default:
		writeInternalError(w, err)
	}
}
