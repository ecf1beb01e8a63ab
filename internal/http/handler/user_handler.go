package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/http/response"
	"github.com/sandeepkv93/volunteer-management-backend/internal/repository"
	"github.com/sandeepkv93/volunteer-management-backend/internal/service"
)

const (
	msgProfileUpdated     = "User profile updated successfully"
	msgCredentialsUpdated = "User credentials updated successfully"
	msgProfileManaged     = "profile managed successfully"
	msgUserDeleted        = "User deleted successfully"
	msgUserNotFound       = "User profile not found"
	msgCredentialNotFound = "Credentials not found"

	profilePictureField = "profile_picture"
	multipartMemory     = 1 << 20
)

type UserHandler struct {
	profileSvc     service.ProfileServiceInterface
	maxUploadBytes int64
}

func NewUserHandler(profileSvc service.ProfileServiceInterface, maxUploadBytes int64) *UserHandler {
	return &UserHandler{profileSvc: profileSvc, maxUploadBytes: maxUploadBytes}
}

type updateCredentialsRequest struct {
	Email    string  `json:"email" validate:"required,max=255"`
	Password *string `json:"password" validate:"omitempty,max=1024"`
}

// profileManagementRequest fields are all optional; an omitted key (or null)
// leaves the stored column untouched.
type profileManagementRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=255"`
	Address1     *string  `json:"address1" validate:"omitempty,max=255"`
	Address2     *string  `json:"address2" validate:"omitempty,max=255"`
	City         *string  `json:"city" validate:"omitempty,max=120"`
	State        *string  `json:"state" validate:"omitempty,max=64"`
	Zipcode      *string  `json:"zipcode" validate:"omitempty,max=16"`
	Skills       []string `json:"skills" validate:"omitempty,dive,max=120"`
	Preferences  *string  `json:"preferences" validate:"omitempty,max=4096"`
	Availability []string `json:"availability" validate:"omitempty,dive,datetime=2006-01-02"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	pageReq, err := repository.ParsePageQuery(r.URL.Query())
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	res, err := h.profileSvc.List(r.Context(), pageReq)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list users", nil)
		return
	}
	items := res.Items
	if items == nil {
		items = []domain.UserProfile{}
	}
	response.JSON(w, r, http.StatusOK, paginatedData(items, res.Page, res.PageSize, res.Total, res.TotalPages))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	account, err := h.profileSvc.Get(r.Context(), userID)
	if err != nil {
		writeProfileError(w, r, err, "failed to load user")
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"Status": "Success", "user": account})
}

// UpdateProfile handles the multipart form with full_name, username and an
// optional profile_picture file.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.Error(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body too large", nil)
			return
		}
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid multipart form", nil)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	input := service.UpdateProfileFieldsInput{
		FullName: r.FormValue("full_name"),
		Username: r.FormValue("username"),
	}
	file, header, err := r.FormFile(profilePictureField)
	switch {
	case err == nil:
		defer file.Close()
		if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
			response.Error(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", service.ErrFileTooBig.Error(), nil)
			return
		}
		input.Image = file
		input.ImageSize = header.Size
	case errors.Is(err, http.ErrMissingFile):
	default:
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid profile picture", nil)
		return
	}

	if err := h.profileSvc.UpdateProfileFields(r.Context(), userID, input); err != nil {
		writeProfileError(w, r, err, "Error updating user profile")
		return
	}
	response.JSON(w, r, http.StatusOK, message(msgProfileUpdated))
}

func (h *UserHandler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	var body updateCredentialsRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}
	err := h.profileSvc.UpdateCredentials(r.Context(), userID, service.UpdateCredentialsInput{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeProfileError(w, r, err, "Error updating user credentials")
		return
	}
	response.JSON(w, r, http.StatusOK, message(msgCredentialsUpdated))
}

func (h *UserHandler) ManageProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	var body profileManagementRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}
	err := h.profileSvc.UpdateProfileManagement(r.Context(), userID, service.ProfileManagementInput{
		FullName:     body.Name,
		Address1:     body.Address1,
		Address2:     body.Address2,
		City:         body.City,
		State:        body.State,
		Zipcode:      body.Zipcode,
		Skills:       body.Skills,
		Preferences:  body.Preferences,
		Availability: body.Availability,
	})
	if err != nil {
		writeProfileError(w, r, err, "Error managing profile")
		return
	}
	response.JSON(w, r, http.StatusOK, message(msgProfileManaged))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	if err := h.profileSvc.Delete(r.Context(), userID); err != nil {
		writeProfileError(w, r, err, "Error deleting user")
		return
	}
	response.JSON(w, r, http.StatusOK, message(msgUserDeleted))
}

func userIDParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid user id", nil)
		return 0, false
	}
	return id, true
}

// writeProfileError maps service and store errors. Transaction details stay
// in logs; clients only see fallback.
func writeProfileError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", msgUserNotFound, nil)
	case errors.Is(err, repository.ErrCredentialNotFound):
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", msgCredentialNotFound, nil)
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		response.Error(w, r, http.StatusConflict, "EMAIL_TAKEN", "Email already registered", nil)
	case errors.Is(err, service.ErrFileTooBig):
		response.Error(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", err.Error(), nil)
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrFullNameRequired),
		errors.Is(err, service.ErrUsernameRequired),
		errors.Is(err, service.ErrInvalidFileType),
		errors.Is(err, domain.ErrInvalidDate):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	default:
		slogError(r, fallback, err)
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", fallback, nil)
	}
}
