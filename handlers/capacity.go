package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/centerdesk/portal/models"
)

func capacityPlanFromInput(input models.CapacityPlanInput) models.CapacityPlan {
	return models.CapacityPlan{
		ServiceID:  input.ServiceID,
		DailySlots: input.DailySlots,
		OpensAt:    input.OpensAt,
		ClosesAt:   input.ClosesAt,
	}
}

// ListCapacityPlans lists booking capacity plans
// @Summary      List capacity plans
// @Description  Get the per-service daily booking capacity configuration.
// @Tags         capacity
// @Produce      json
// @Success      200  {object}  Response{data=[]models.CapacityPlan}
// @Router       /capacity [get]
func ListCapacityPlans(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	plans, err := Upstream.ListCapacityPlans(r.Context(), session.Token)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	if plans == nil {
		plans = []models.CapacityPlan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

// CreateCapacityPlan creates a capacity plan
// @Summary      Create capacity plan
// @Description  Configure the daily booking capacity for a service.
// @Tags         capacity
// @Accept       json
// @Produce      json
// @Param        plan  body      models.CapacityPlanInput  true  "Capacity plan"
// @Success      201   {object}  Response{data=models.CapacityPlan}
// @Failure      400   {object}  Response{error=string}
// @Router       /capacity [post]
func CreateCapacityPlan(w http.ResponseWriter, r *http.Request) {
	var input models.CapacityPlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, r, "error.badjson")
		return
	}
	if key := input.Validate(); key != "" {
		writeValidationError(w, r, key)
		return
	}

	session := SessionFrom(r)
	created, err := Upstream.CreateCapacityPlan(r.Context(), session.Token, capacityPlanFromInput(input))
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCapacityPlan updates a capacity plan
// @Summary      Update capacity plan
// @Description  Change the daily booking capacity for a service.
// @Tags         capacity
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Plan ID"
// @Param        plan  body      models.CapacityPlanInput  true  "Capacity plan"
// @Success      200   {object}  Response{data=models.CapacityPlan}
// @Failure      400   {object}  Response{error=string}
// @Failure      404   {object}  Response{error=string}
// @Router       /capacity/{id} [put]
func UpdateCapacityPlan(w http.ResponseWriter, r *http.Request) {
	var input models.CapacityPlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, r, "error.badjson")
		return
	}
	if key := input.Validate(); key != "" {
		writeValidationError(w, r, key)
		return
	}

	session := SessionFrom(r)
	updated, err := Upstream.UpdateCapacityPlan(r.Context(), session.Token, chi.URLParam(r, "id"), capacityPlanFromInput(input))
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
