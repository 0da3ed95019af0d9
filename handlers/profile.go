package handlers

import (
	"net/http"

	"github.com/centerdesk/portal/models"
	"github.com/centerdesk/portal/upstream"
)

const maxLogoBytes = 5 << 20

// GetProfile retrieves the center profile
// @Summary      Get profile
// @Description  Get the service center's profile.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  Response{data=models.Profile}
// @Router       /profile [get]
func GetProfile(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	profile, err := Upstream.GetProfile(r.Context(), session.Token)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile updates the center profile
// @Summary      Update profile
// @Description  Update the center's profile from a multipart form with an optional logo.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  Response{data=models.Profile}
// @Failure      400  {object}  Response{error=string}
// @Router       /profile [put]
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		writeValidationError(w, r, "error.badjson")
		return
	}
	input := models.ProfileInput{
		Name:        r.FormValue("name"),
		Phone:       r.FormValue("phone"),
		Email:       r.FormValue("email"),
		Address:     r.FormValue("address"),
		Description: r.FormValue("description"),
		OpensAt:     r.FormValue("opens_at"),
		ClosesAt:    r.FormValue("closes_at"),
	}
	if key := input.Validate(); key != "" {
		writeValidationError(w, r, key)
		return
	}

	fields := map[string]string{
		"name":        input.Name,
		"phone":       input.Phone,
		"email":       input.Email,
		"address":     input.Address,
		"description": input.Description,
		"opens_at":    input.OpensAt,
		"closes_at":   input.ClosesAt,
	}
	var logo *upstream.Upload
	if file, header, err := r.FormFile("logo"); err == nil {
		logo = &upstream.Upload{
			Field:       "logo",
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Reader:      file,
		}
	}

	session := SessionFrom(r)
	profile, err := Upstream.UpdateProfile(r.Context(), session.Token, fields, logo)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
