package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/antonguzun/lazy-crafter/internal/craft"
	"github.com/antonguzun/lazy-crafter/internal/domain"
	"github.com/antonguzun/lazy-crafter/internal/logger"
	"github.com/antonguzun/lazy-crafter/internal/preset"
)

// maxItemTextBytes caps pasted item text
const maxItemTextBytes = 64 << 10

// ParseItemRequest carries item text copied from the game
type ParseItemRequest struct {
	Text string `json:"text" validate:"required,max=65536"`
}

// EstimateRequest asks for the chance that one reroll hits every target
type EstimateRequest struct {
	Query   domain.ModsQuery `json:"query"`
	Targets []domain.ModItem `json:"targets" validate:"max=6,dive"`
}

// EstimateResponse is an estimation plus the mean number of rerolls
type EstimateResponse struct {
	*domain.Estimation
	ExpectedAttempts float64 `json:"expected_attempts"`
}

// ItemClassesResponse lists craftable item classes
type ItemClassesResponse struct {
	ItemClasses []string `json:"item_classes"`
}

// ItemBasesResponse lists the craftable bases of a class
type ItemBasesResponse struct {
	ItemClass string            `json:"item_class"`
	ItemBases []domain.ItemBase `json:"item_bases"`
}

// ModsResponse lists mods offered for a base
type ModsResponse struct {
	Mods []domain.ModItem `json:"mods"`
}

// SatisfyingResponse lists the mods that count as a target on a base
type SatisfyingResponse struct {
	ModKey   string   `json:"mod_key"`
	ItemBase string   `json:"item_base"`
	Mods     []string `json:"mods"`
}

// PresetsResponse lists saved presets
type PresetsResponse struct {
	Presets []preset.Preset `json:"presets"`
}

// CraftHandler serves catalog, parser and estimation endpoints
type CraftHandler struct {
	service craft.Service
}

// NewCraftHandler creates a handler backed by svc
func NewCraftHandler(svc craft.Service) *CraftHandler {
	return &CraftHandler{service: svc}
}

// HandleItemClasses returns every craftable item class
func (h *CraftHandler) HandleItemClasses(w http.ResponseWriter, r *http.Request) {
	classes := h.service.GetItemClasses(r.Context())
	if classes == nil {
		classes = []string{}
	}
	respondJSON(w, http.StatusOK, ItemClassesResponse{ItemClasses: classes})
}

// HandleItemBases returns the craftable bases of the class query parameter
func (h *CraftHandler) HandleItemBases(w http.ResponseWriter, r *http.Request) {
	class, ok := GetQueryParam(r, w, ParamItemClass)
	if !ok {
		return
	}

	bases := h.service.GetItemBases(r.Context(), class)
	if bases == nil {
		bases = []domain.ItemBase{}
	}
	respondJSON(w, http.StatusOK, ItemBasesResponse{ItemClass: class, ItemBases: bases})
}

// HandleSearchMods returns the mods that can roll for a query
func (h *CraftHandler) HandleSearchMods(w http.ResponseWriter, r *http.Request) {
	var req domain.ModsQuery
	if err := DecodeAndValidateRequest(r, w, &req, OpSearchMods); err != nil {
		return
	}
	LogRequestFields(logger.FromContext(r.Context()),
		"item_base", req.ItemBase, "item_level", req.ItemLevelCap, "filter", req.TextFilter)

	mods, err := h.service.FindMods(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, OpSearchMods, err)
		return
	}
	if mods == nil {
		mods = []domain.ModItem{}
	}
	respondJSON(w, http.StatusOK, ModsResponse{Mods: mods})
}

// HandleParseItem maps pasted item text to mod keys
func (h *CraftHandler) HandleParseItem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxItemTextBytes+1024)

	var req ParseItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpParseItem); err != nil {
		return
	}

	item, err := h.service.ParseItem(r.Context(), req.Text)
	if err != nil {
		respondServiceError(w, r, OpParseItem, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleEstimate computes the chance that one reroll hits every target
func (h *CraftHandler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpEstimate); err != nil {
		return
	}
	LogRequestFields(logger.FromContext(r.Context()),
		"item_base", req.Query.ItemBase, "item_level", req.Query.ItemLevelCap, "targets", len(req.Targets))

	est, err := h.service.Estimate(r.Context(), req.Query, req.Targets)
	if err != nil {
		respondServiceError(w, r, OpEstimate, err)
		return
	}
	respondJSON(w, http.StatusOK, EstimateResponse{Estimation: est, ExpectedAttempts: est.ExpectedAttempts()})
}

// HandleSatisfying lists the mods on a base that roll equal or better than modKey
func (h *CraftHandler) HandleSatisfying(w http.ResponseWriter, r *http.Request) {
	modKey := chi.URLParam(r, ParamModKey)
	itemBase, ok := GetQueryParam(r, w, ParamItemBase)
	if !ok {
		return
	}

	subset, err := h.service.SubsetOfModsSatisfying(r.Context(), modKey, itemBase)
	if err != nil {
		respondServiceError(w, r, OpSatisfying, err)
		return
	}
	respondJSON(w, http.StatusOK, SatisfyingResponse{ModKey: modKey, ItemBase: itemBase, Mods: subset.Sorted()})
}

// HandleListPresets returns every saved preset
func (h *CraftHandler) HandleListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := h.service.ListPresets(r.Context())
	if err != nil {
		respondServiceError(w, r, OpListPresets, err)
		return
	}
	if presets == nil {
		presets = []preset.Preset{}
	}
	respondJSON(w, http.StatusOK, PresetsResponse{Presets: presets})
}

// HandleEstimatePreset estimates a saved preset by name
func (h *CraftHandler) HandleEstimatePreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, ParamPreset)

	res, err := h.service.EstimatePreset(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, OpEstimatePreset, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
