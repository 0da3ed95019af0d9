package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/centerdesk/portal/models"
)

// GetPriceList retrieves the published price list
// @Summary      Get price list
// @Description  Get the center's published service price list.
// @Tags         prices
// @Produce      json
// @Success      200  {object}  Response{data=models.PriceList}
// @Router       /prices [get]
func GetPriceList(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	list, err := Upstream.GetPriceList(r.Context(), session.Token)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// CreatePriceList publishes a new price list
// @Summary      Publish price list
// @Description  Publish a new service price list, replacing the current one.
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        prices  body      models.PriceListInput  true  "Price list entries"
// @Success      201     {object}  Response{data=models.PriceList}
// @Failure      400     {object}  Response{error=string}
// @Router       /prices [post]
func CreatePriceList(w http.ResponseWriter, r *http.Request) {
	var input models.PriceListInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, r, "error.badjson")
		return
	}
	if key := input.Validate(); key != "" {
		writeValidationError(w, r, key)
		return
	}

	session := SessionFrom(r)
	created, err := Upstream.CreatePriceList(r.Context(), session.Token, models.PriceList{Entries: input.Entries})
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
