package controllers

import (
	"errors"
	"net/http"

	"github.com/zhaygo/backend/app/services"
	"github.com/zhaygo/backend/pkg/auth"
	"github.com/zhaygo/backend/pkg/logger"
	"github.com/zhaygo/backend/pkg/response"
)

// maxUploadBytes caps the multipart form held in memory (8 MB; larger
// parts spill to temp files).
const maxUploadBytes = 8 << 20

// ProfileController handles profile reads and updates.
type ProfileController struct {
	service *services.ProfileService
}

func NewProfileController(service *services.ProfileService) *ProfileController {
	return &ProfileController{service: service}
}

// Update handles POST /profile/update (multipart form, optional image).
func (c *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	in := services.UpdateProfileInput{
		Name:          r.FormValue("name"),
		Email:         r.FormValue("email"),
		ContactNumber: r.FormValue("contactNumber"),
	}

	file, header, err := r.FormFile("profileImage")
	switch {
	case err == nil:
		defer file.Close()
		in.Image = file
		in.ImageName = header.Filename
	case errors.Is(err, http.ErrMissingFile):
		// no image in this update
	default:
		response.Error(w, http.StatusBadRequest, "Invalid profile image")
		return
	}

	err = c.service.Update(r.Context(), auth.UserIDFromCtx(r.Context()), in)

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, services.ErrEmailTaken):
		response.Error(w, http.StatusBadRequest, "User already exists")
	case err != nil:
		logger.WithCtx(r.Context()).Error("profile update failed", "error", err)
		response.Internal(w)
	default:
		response.Message(w, http.StatusOK, "Profile updated successfully")
	}
}

// Image handles GET /api/profile/image.
func (c *ProfileController) Image(w http.ResponseWriter, r *http.Request) {
	url, err := c.service.ImageURL(r.Context(), auth.UserIDFromCtx(r.Context()))

	switch {
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrNoProfileImage):
		response.NotFound(w, "Image not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("profile image lookup failed", "error", err)
		response.Internal(w)
	default:
		response.Success(w, map[string]string{"imageUrl": url})
	}
}
