package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"zooverse/internal/app/game"
	"zooverse/internal/app/ports"
	"zooverse/internal/app/sim"
	"zooverse/internal/domain/zoo"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type notificationLister interface {
	RecentAny(limit int) any
}

// Handler exposes the management API over HTTP. Confirmation prompts and
// name prompts arrive as request fields and are forwarded to the use case
// through the request context.
type Handler struct {
	Game    *game.UseCase
	Journal ports.JournalRepository
	Slot    string
	Notes   notificationLister
	KPI     kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api/zoo")
	api.GET("/state", h.state)
	api.POST("/start", h.start)
	api.POST("/continue", h.resume)
	api.POST("/quit", h.quit)
	api.POST("/save", h.save)
	api.POST("/reset", h.reset)
	api.POST("/settings", h.settings)
	api.POST("/build", h.build)
	api.POST("/demolish", h.demolish)
	api.POST("/expand", h.expand)
	api.POST("/animals/buy", h.buyAnimal)
	api.POST("/animals/care", h.careAnimal)
	api.POST("/animals/release", h.releaseAnimal)
	api.POST("/animals/breed", h.breedAnimal)
	api.POST("/explore", h.explore)
	api.POST("/tasks/claim", h.claimTask)
	api.POST("/events/claim", h.claimSpecialEvent)
	api.POST("/daily-bonus", h.dailyBonus)
	api.POST("/cheat", h.cheat)
	api.GET("/journal", h.journal)
	api.GET("/notifications", h.notifications)

	catalog := s.Group("/catalog")
	catalog.GET("/buildings", h.catalogBuildings)
	catalog.GET("/market", h.catalogMarket)
	catalog.GET("/regions", h.catalogRegions)
	catalog.GET("/events", h.catalogEvents)

	s.GET("/ops/kpi", h.kpi)
}

type buildRequest struct {
	ItemID string `json:"itemId"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

type demolishRequest struct {
	InstanceID string `json:"instanceId"`
	Confirm    bool   `json:"confirm"`
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

type buyAnimalRequest struct {
	MarketID string `json:"marketId"`
}

type careRequest struct {
	AnimalID string `json:"animalId"`
	Action   string `json:"action"`
}

type releaseRequest struct {
	AnimalID string `json:"animalId"`
	Confirm  bool   `json:"confirm"`
}

type breedRequest struct {
	AnimalID string `json:"animalId"`
	BabyName string `json:"babyName"`
}

type exploreRequest struct {
	RegionID string `json:"regionId"`
}

type claimTaskRequest struct {
	TaskID string `json:"taskId"`
}

type claimEventRequest struct {
	EventID string `json:"eventId"`
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	snap, err := h.Game.Snapshot(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, snap)
}

func (h Handler) start(c context.Context, ctx *app.RequestContext) {
	if err := h.Game.StartNew(c); err != nil {
		writeError(ctx, err)
		return
	}
	h.replyState(c, ctx)
}

func (h Handler) resume(c context.Context, ctx *app.RequestContext) {
	if err := h.Game.Continue(c); err != nil {
		writeError(ctx, err)
		return
	}
	h.replyState(c, ctx)
}

func (h Handler) quit(c context.Context, ctx *app.RequestContext) {
	h.Game.Quit(c)
	ctx.JSON(consts.StatusOK, map[string]bool{"stopped": true})
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	if err := h.Game.SaveNow(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"saved": true})
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	var body resetRequest
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	deleted, err := h.Game.ResetSave(WithConfirm(c, body.Confirm))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"deleted": deleted})
}

func (h Handler) settings(c context.Context, ctx *app.RequestContext) {
	var body game.Settings
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.Game.UpdateSettings(c, body); err != nil {
		writeError(ctx, err)
		return
	}
	h.replyState(c, ctx)
}

func (h Handler) build(c context.Context, ctx *app.RequestContext) {
	var body buildRequest
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.Game.PlaceStructure(c, body.ItemID, body.X, body.Y); err != nil {
		writeError(ctx, err)
		return
	}
	h.replyState(c, ctx)
}

func (h Handler) demolish(c context.Context, ctx *app.RequestContext) {
	var body demolishRequest
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	refund, demolished, err := h.Game.Demolish(WithConfirm(c, body.Confirm), body.InstanceID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"demolished": demolished,
		"refund":     refund,
	})
}

func (h Handler) expand(c context.Context, ctx *app.RequestContext) {
	if err := h.Game.ExpandMap(c); err != nil {
		writeError(ctx, err)
		return
	}
	h.replyState(c, ctx)
}

func (h Handler) buyAnimal(c context.Context, ctx *app.RequestContext) {
	var body buyAnimalRequest
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	animal, err := h.Game.BuyAnimal(c, body.MarketID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, animal)
}

func (h Handler) careAnimal(c context.Context, ctx *app.RequestContext) {
	var body careRequest
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	action, ok := parseCareAction(body.Action)
	if !ok {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "unknown care action")
		return
	}
	if err := h.Game.CareForAnimal(c, body.AnimalID, action); err != nil {
		writeError(ctx, err)
		return
	}
	h.replyState(c, ctx)
}

func (h Handler) releaseAnimal(c context.Context, ctx *app.RequestContext) {
	var body releaseRequest
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	released, err := h.Game.ReleaseAnimal(WithConfirm(c, body.Confirm), body.AnimalID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"released": released})
}

func (h Handler) breedAnimal(c context.Context, ctx *app.RequestContext) {
	var body breedRequest
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	baby, born, err := h.Game.Breed(WithProvidedName(c, body.BabyName), body.AnimalID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if !born {
		ctx.JSON(consts.StatusOK, map[string]bool{"born": false})
		return
	}
	ctx.JSON(consts.StatusOK, baby)
}

func (h Handler) explore(c context.Context, ctx *app.RequestContext) {
	var body exploreRequest
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	result, err := h.Game.Explore(c, body.RegionID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, result)
}

func (h Handler) claimTask(c context.Context, ctx *app.RequestContext) {
	var body claimTaskRequest
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.Game.ClaimTask(c, body.TaskID); err != nil {
		writeError(ctx, err)
		return
	}
	h.replyState(c, ctx)
}

func (h Handler) claimSpecialEvent(c context.Context, ctx *app.RequestContext) {
	var body claimEventRequest
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	animal, err := h.Game.ClaimSpecialEvent(c, body.EventID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, animal)
}

func (h Handler) dailyBonus(c context.Context, ctx *app.RequestContext) {
	if err := h.Game.ClaimDailyBonus(c); err != nil {
		writeError(ctx, err)
		return
	}
	h.replyState(c, ctx)
}

func (h Handler) cheat(c context.Context, ctx *app.RequestContext) {
	if err := h.Game.Cheat(c); err != nil {
		writeError(ctx, err)
		return
	}
	h.replyState(c, ctx)
}

func (h Handler) journal(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	entries, err := h.Journal.ListBySlot(c, h.Slot, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, entries)
}

func (h Handler) notifications(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	ctx.JSON(consts.StatusOK, h.Notes.RecentAny(limit))
}

func (h Handler) catalogBuildings(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Game.Catalog.Buildings(c))
}

func (h Handler) catalogMarket(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Game.Catalog.Market(c))
}

func (h Handler) catalogRegions(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Game.Catalog.Regions(c))
}

func (h Handler) catalogEvents(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Game.Catalog.SpecialEvents(c))
}

func (h Handler) kpi(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) replyState(c context.Context, ctx *app.RequestContext) {
	snap, err := h.Game.Snapshot(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, snap)
}

func parseCareAction(s string) (zoo.CareAction, bool) {
	switch s {
	case string(zoo.CareFeed):
		return zoo.CareFeed, true
	case string(zoo.CarePlay):
		return zoo.CarePlay, true
	case string(zoo.CareHeal):
		return zoo.CareHeal, true
	}
	return "", false
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, zoo.ErrInsufficientFunds):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_funds", err.Error())
	case errors.Is(err, zoo.ErrPlacementCollision):
		writeErrorBody(ctx, consts.StatusConflict, "placement_collision", err.Error())
	case errors.Is(err, zoo.ErrNoEligiblePartner):
		writeErrorBody(ctx, consts.StatusConflict, "no_eligible_partner", err.Error())
	case errors.Is(err, game.ErrLevelTooLow):
		writeErrorBody(ctx, consts.StatusConflict, "level_too_low", err.Error())
	case errors.Is(err, game.ErrNoSaveFound):
		writeErrorBody(ctx, consts.StatusNotFound, "no_save_found", err.Error())
	case errors.Is(err, game.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, sim.ErrNotRunning):
		writeErrorBody(ctx, consts.StatusConflict, "not_running", err.Error())
	case errors.Is(err, sim.ErrAlreadyRunning):
		writeErrorBody(ctx, consts.StatusConflict, "already_running", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
