// Package http provides the HTTP presentation adapter for the directory
// module. Handlers translate requests into session intents and format the
// observable state; they hold no state of their own.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rai/employee-directory/modules/directory"
	"github.com/rai/employee-directory/modules/directory/domain"
	"github.com/rai/employee-directory/modules/notifications"
)

// Handler drives a directory session over HTTP.
type Handler struct {
	session *directory.Session
	toaster *notifications.MemoryToaster
}

// RegisterRoutes registers the directory routes to the given mux.
func RegisterRoutes(mux *http.ServeMux, session *directory.Session, toaster *notifications.MemoryToaster) {
	h := &Handler{session: session, toaster: toaster}

	mux.HandleFunc("GET /users", h.handleListUsers)
	mux.HandleFunc("POST /users", h.handleAddUser)
	mux.HandleFunc("PUT /users/{id}", h.handleUpdateUser)
	mux.HandleFunc("DELETE /users/{id}", h.handleDeleteUser)
	mux.HandleFunc("POST /pagination/next", h.handleNextPage)
	mux.HandleFunc("POST /pagination/previous", h.handlePreviousPage)
	mux.HandleFunc("GET /status", h.handleStatus)
	mux.HandleFunc("GET /notifications", h.handleNotifications)
}

// Request/Response DTOs

type userRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type addUserResponse struct {
	ID int `json:"id"`
}

type pageResponse struct {
	Page          int  `json:"page"`
	CanGoPrevious bool `json:"can_go_previous"`
	CanGoNext     bool `json:"can_go_next"`
}

type notificationsResponse struct {
	Messages []string `json:"messages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	result, err := h.session.ListPage(r.Context(), page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state := h.session.OpenAddForm()
	if err := h.session.SubmitForm(r.Context(), domain.FormValues{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
	}); err != nil {
		// The session keeps the form open for correction; HTTP clients
		// resubmit the whole form instead, so close it here.
		h.session.CancelForm()
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, addUserResponse{ID: state.RecordID})
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "user ID must be an integer")
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.session.OpenEditForm(id); err != nil {
		handleError(w, err)
		return
	}
	if err := h.session.SubmitForm(r.Context(), domain.FormValues{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
	}); err != nil {
		h.session.CancelForm()
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "user ID must be an integer")
		return
	}

	if err := h.session.DeleteRecord(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleNextPage(w http.ResponseWriter, r *http.Request) {
	h.session.GoToNextPage()
	writeJSON(w, http.StatusOK, currentPage(h.session))
}

func (h *Handler) handlePreviousPage(w http.ResponseWriter, r *http.Request) {
	h.session.GoToPreviousPage()
	writeJSON(w, http.StatusOK, currentPage(h.session))
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Status())
}

func (h *Handler) handleNotifications(w http.ResponseWriter, r *http.Request) {
	messages := []string{}
	if h.toaster != nil {
		messages = append(messages, h.toaster.Drain()...)
	}
	writeJSON(w, http.StatusOK, notificationsResponse{Messages: messages})
}

// Helper functions

func currentPage(session *directory.Session) pageResponse {
	page, canGoPrevious, canGoNext := session.PageInfo()
	return pageResponse{
		Page:          page,
		CanGoPrevious: canGoPrevious,
		CanGoNext:     canGoNext,
	}
}

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrFirstNameRequired),
		errors.Is(err, domain.ErrLastNameRequired),
		errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrEmailInvalid),
		errors.Is(err, domain.ErrDepartmentRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
