package api

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"HarvestGuard/internal/advisory"
	"HarvestGuard/internal/alert"
	"HarvestGuard/internal/crop"
	"HarvestGuard/internal/model"
	"HarvestGuard/internal/recorder"
	"HarvestGuard/internal/store"
	"HarvestGuard/internal/weather"
)

// Handler contains all HTTP handlers
type Handler struct {
	weather    *weather.Service
	store      store.Store
	profiles   *crop.Table
	recorder   recorder.Recorder
	district   string
	locale     advisory.Locale
	generators map[advisory.Locale]*alert.Generator
}

// NewHandler creates a handler serving every supported locale. A nil
// recorder disables alert history.
func NewHandler(ws *weather.Service, st store.Store, profiles *crop.Table, rec recorder.Recorder,
	district string, locale advisory.Locale) (*Handler, error) {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	h := &Handler{
		weather:    ws,
		store:      st,
		profiles:   profiles,
		recorder:   rec,
		district:   district,
		locale:     locale,
		generators: make(map[advisory.Locale]*alert.Generator),
	}
	for _, l := range advisory.Locales() {
		tmpl, err := advisory.TemplatesFor(l)
		if err != nil {
			return nil, err
		}
		composer, err := advisory.NewComposer(tmpl)
		if err != nil {
			return nil, fmt.Errorf("compose %s templates: %w", l, err)
		}
		h.generators[l] = alert.NewGenerator(profiles, composer)
	}
	if _, ok := h.generators[locale]; !ok {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	return h, nil
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "harvestguard",
		"version": "1.0.0",
	})
}

// GetWeather returns the current observation for ?district= (default district otherwise).
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	obs := h.weather.ObserveDistrict(c.UserContext(), c.Query("district", h.district))
	return c.JSON(fiber.Map{
		"success": true,
		"data":    obs,
	})
}

// GetCrops returns the crop profile table.
func (h *Handler) GetCrops(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"default": h.profiles.Fallback(),
		"data":    h.profiles.Profiles(),
	})
}

// ListBatches returns every stored batch.
func (h *Handler) ListBatches(c *fiber.Ctx) error {
	batches, err := h.store.ListBatches()
	if err != nil {
		log.Printf("[ERROR] list batches: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list batches")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    batches,
	})
}

type createBatchRequest struct {
	CropType    string            `json:"cropType"`
	WeightKg    float64           `json:"weightKg"`
	StorageType model.StorageType `json:"storageType"`
	HarvestDate string            `json:"harvestDate"`
}

// CreateBatch registers a new active batch.
func (h *Handler) CreateBatch(c *fiber.Ctx) error {
	var req createBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	batch, err := store.NewBatch(req.CropType, req.WeightKg, req.StorageType, req.HarvestDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := h.store.SaveBatch(batch); err != nil {
		log.Printf("[ERROR] save batch: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save batch")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    batch,
	})
}

// UpdateBatchStatus marks a batch active, sold or lost.
func (h *Handler) UpdateBatchStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	status, err := model.ParseBatchStatus(req.Status)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	id := c.Params("id")
	if err := h.store.UpdateStatus(id, status); err != nil {
		if errors.Is(err, store.ErrBatchNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		log.Printf("[ERROR] update batch %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update batch")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": id, "status": status},
	})
}

type alertsResponse struct {
	Weather       model.WeatherObservation `json:"weather"`
	Alerts        []model.SmartAlert       `json:"alerts"`
	CriticalCount int                      `json:"criticalCount"`
}

// GetAlerts evaluates stored batches against the current weather, most
// severe first.
func (h *Handler) GetAlerts(c *fiber.Ctx) error {
	gen, err := h.generator(c.Query("locale"))
	if err != nil {
		return err
	}
	batches, err := h.store.ListBatches()
	if err != nil {
		log.Printf("[ERROR] list batches: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list batches")
	}

	obs := h.weather.ObserveDistrict(c.UserContext(), c.Query("district", h.district))
	alerts := gen.GenerateAlerts(batches, obs)

	run := &recorder.EvaluationRun{
		ID:        uuid.NewString(),
		Trigger:   "API",
		Weather:   obs,
		Alerts:    alerts,
		CreatedAt: time.Now(),
	}
	if err := h.recorder.RecordEvaluation(run); err != nil {
		log.Printf("[ERROR] record evaluation: %v", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": alertsResponse{
			Weather:       obs,
			Alerts:        alert.SortBySeverity(alerts),
			CriticalCount: run.CriticalCount(),
		},
	})
}

type evaluateRequest struct {
	Weather model.WeatherObservation `json:"weather"`
	Batches []model.StorageBatch     `json:"batches"`
	Locale  string                   `json:"locale"`
}

// EvaluateAlerts runs the engine over a posted observation and batch list.
// Alerts keep the input order. Batches without a status count as active.
func (h *Handler) EvaluateAlerts(c *fiber.Ctx) error {
	var req evaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	gen, err := h.generator(req.Locale)
	if err != nil {
		return err
	}
	for i := range req.Batches {
		if req.Batches[i].Status == "" {
			req.Batches[i].Status = model.StatusActive
		}
		if _, err := model.ParseStorageType(string(req.Batches[i].StorageType)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("batch %d: %v", i, err))
		}
	}

	alerts := gen.GenerateAlerts(req.Batches, req.Weather)
	return c.JSON(fiber.Map{
		"success":     true,
		"data":        alerts,
		"hasCritical": alert.HasCriticalAlert(alerts),
	})
}

// generator resolves a locale code, empty meaning the configured default.
func (h *Handler) generator(code string) (*alert.Generator, error) {
	if code == "" {
		return h.generators[h.locale], nil
	}
	l, err := advisory.ParseLocale(code)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return h.generators[l], nil
}
