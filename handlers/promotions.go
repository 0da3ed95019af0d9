package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/centerdesk/portal/models"
	"github.com/centerdesk/portal/upstream"
)

// maxPromotionImageBytes bounds the in-memory portion of a promotion form.
const maxPromotionImageBytes = 5 << 20

// promotionForm reads the multipart promotion form: validated fields plus
// an optional image part, both forwarded upstream as-is.
func promotionForm(r *http.Request) (map[string]string, *upstream.Upload, string) {
	if err := r.ParseMultipartForm(maxPromotionImageBytes); err != nil {
		return nil, nil, "error.badjson"
	}
	input := models.PromotionInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		StartDate:   r.FormValue("start_date"),
		EndDate:     r.FormValue("end_date"),
	}
	input.Active, _ = strconv.ParseBool(r.FormValue("active"))
	if key := input.Validate(); key != "" {
		return nil, nil, key
	}

	fields := map[string]string{
		"title":       input.Title,
		"description": input.Description,
		"start_date":  input.StartDate,
		"end_date":    input.EndDate,
		"active":      strconv.FormatBool(input.Active),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return fields, nil, ""
	}
	upload := &upstream.Upload{
		Field:       "image",
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	}
	return fields, upload, ""
}

// ListPromotions lists the center's promotions
// @Summary      List promotions
// @Description  Get the center's promotions.
// @Tags         promotions
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Promotion}
// @Router       /promotions [get]
func ListPromotions(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	promotions, err := Upstream.ListPromotions(r.Context(), session.Token)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	if promotions == nil {
		promotions = []models.Promotion{}
	}
	writeJSON(w, http.StatusOK, promotions)
}

// GetPromotion retrieves a single promotion
// @Summary      Get promotion
// @Description  Get one promotion.
// @Tags         promotions
// @Produce      json
// @Param        id   path      string  true  "Promotion ID"
// @Success      200  {object}  Response{data=models.Promotion}
// @Failure      404  {object}  Response{error=string}
// @Router       /promotions/{id} [get]
func GetPromotion(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	promotion, err := Upstream.GetPromotion(r.Context(), session.Token, chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, promotion)
}

// CreatePromotion creates a new promotion
// @Summary      Create promotion
// @Description  Create a promotion from a multipart form with an optional image.
// @Tags         promotions
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  Response{data=models.Promotion}
// @Failure      400  {object}  Response{error=string}
// @Router       /promotions [post]
func CreatePromotion(w http.ResponseWriter, r *http.Request) {
	fields, image, key := promotionForm(r)
	if key != "" {
		writeValidationError(w, r, key)
		return
	}

	session := SessionFrom(r)
	created, err := Upstream.CreatePromotion(r.Context(), session.Token, fields, image)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdatePromotion updates an existing promotion
// @Summary      Update promotion
// @Description  Update a promotion from a multipart form with an optional replacement image.
// @Tags         promotions
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path      string  true  "Promotion ID"
// @Success      200  {object}  Response{data=models.Promotion}
// @Failure      400  {object}  Response{error=string}
// @Failure      404  {object}  Response{error=string}
// @Router       /promotions/{id} [put]
func UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	fields, image, key := promotionForm(r)
	if key != "" {
		writeValidationError(w, r, key)
		return
	}

	session := SessionFrom(r)
	updated, err := Upstream.UpdatePromotion(r.Context(), session.Token, chi.URLParam(r, "id"), fields, image)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeletePromotion deletes a promotion
// @Summary      Delete promotion
// @Description  Remove a promotion.
// @Tags         promotions
// @Produce      json
// @Param        id   path      string  true  "Promotion ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /promotions/{id} [delete]
func DeletePromotion(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	if err := Upstream.DeletePromotion(r.Context(), session.Token, chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
