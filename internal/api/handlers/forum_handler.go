package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/JasirAhamed786/unifield-be/internal/auth"
	"github.com/JasirAhamed786/unifield-be/internal/httputil"
	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ForumHandler handles HTTP requests for the community forum.
type ForumHandler struct {
	service services.ForumServiceProvider
}

// NewForumHandler creates a new ForumHandler.
func NewForumHandler(service services.ForumServiceProvider) *ForumHandler {
	return &ForumHandler{service: service}
}

// ForumPostPayload defines the writable post fields. The author always comes
// from the verified token, never from the body.
type ForumPostPayload struct {
	Title         string   `json:"title" validate:"required"`
	Content       string   `json:"content" validate:"required"`
	Tags          []string `json:"tags"`
	Upvotes       int      `json:"upvotes" validate:"gte=0"`
	ExpertReplies bool     `json:"expertReplies"`
}

// GetAll lists every post with its author. Public.
func (h *ForumHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetAllPosts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list forum posts")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, posts, http.StatusOK)
}

// Get retrieves a single post. Public.
func (h *ForumHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPostByID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, post, http.StatusOK)
}

// Create adds a post authored by the authenticated caller.
func (h *ForumHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, "missing auth token", http.StatusUnauthorized)
		return
	}

	payload, ok := decodePostPayload(w, r)
	if !ok {
		return
	}
	payload.UserID = identity.UserID

	post, err := h.service.CreatePost(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create forum post")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, post, http.StatusCreated)
}

// Update modifies a post. Only the author or an Admin may do so.
func (h *ForumHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	identity, ok := h.authorize(w, r, id)
	if !ok {
		return
	}

	payload, okp := decodePostPayload(w, r)
	if !okp {
		return
	}

	post, err := h.service.UpdatePost(id, payload)
	if err != nil {
		log.Error().Err(err).Str("post_id", id).Str("user_id", identity.UserID).Msg("Failed to update forum post")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, post, http.StatusOK)
}

// Delete removes a post. Only the author or an Admin may do so.
func (h *ForumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.authorize(w, r, id); !ok {
		return
	}

	if err := h.service.DeletePost(id); err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, map[string]string{"message": "Post deleted"}, http.StatusOK)
}

// authorize loads the post and checks the caller may mutate it. It writes
// the error response itself when the answer is no.
func (h *ForumHandler) authorize(w http.ResponseWriter, r *http.Request, postID string) (auth.Identity, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, "missing auth token", http.StatusUnauthorized)
		return auth.Identity{}, false
	}

	post, err := h.service.GetPostByID(postID)
	if err != nil {
		respondServiceError(w, err)
		return auth.Identity{}, false
	}

	if !auth.CanModifyOwned(identity, post.UserID) {
		httputil.RespondError(w, "forbidden", http.StatusForbidden)
		return auth.Identity{}, false
	}
	return identity, true
}

func decodePostPayload(w http.ResponseWriter, r *http.Request) (models.ForumPost, bool) {
	var payload ForumPostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return models.ForumPost{}, false
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid forum post fields", http.StatusBadRequest)
		return models.ForumPost{}, false
	}
	return models.ForumPost{
		Title:         payload.Title,
		Content:       payload.Content,
		Tags:          payload.Tags,
		Upvotes:       payload.Upvotes,
		ExpertReplies: payload.ExpertReplies,
	}, true
}
