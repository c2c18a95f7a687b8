package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/terra-clan/codehunt/internal/models"
	"github.com/terra-clan/codehunt/pkg/datarelease"
)

// Data release handlers: levels, users and their attempts

func (s *Server) handleListLevels(w http.ResponseWriter, r *http.Request) {
	levels := make([]*models.Level, 0, len(s.data.Levels))
	for _, l := range s.data.Levels {
		levels = append(levels, models.NewLevel(l))
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"levels": levels,
		"total":  len(levels),
	})
}

func (s *Server) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	level, ok := s.levelParam(w, r)
	if !ok {
		return
	}

	challengeID, err := level.ChallengeID()
	if err != nil {
		slog.Error("failed to read challenge id", "error", err, "level", level.Name)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to read challenge id")
		return
	}

	view := models.NewLevel(level)
	view.ChallengeID = strings.TrimSpace(challengeID)
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleGetLevelSolution(w http.ResponseWriter, r *http.Request) {
	level, ok := s.levelParam(w, r)
	if !ok {
		return
	}

	text, err := level.ChallengeText()
	if err != nil {
		slog.Error("failed to read reference solution", "error", err, "level", level.Name)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to read reference solution")
		return
	}
	respondText(w, text)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users := make([]*models.User, 0, len(s.data.Users))
	for _, u := range s.data.Users {
		users = append(users, models.NewUser(u))
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"total": len(users),
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.userParam(w, r)
	if !ok {
		return
	}

	experience, err := user.Experience()
	if err != nil {
		slog.Error("failed to read experience", "error", err, "user", user.ID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to read experience")
		return
	}

	view := models.NewUser(user)
	view.Experience = strings.TrimSpace(experience)
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleListAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, ok := s.attempts(w, r)
	if !ok {
		return
	}

	views := make([]*models.Attempt, 0, len(attempts))
	for _, a := range attempts {
		views = append(views, models.NewAttempt(a))
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"attempts": views,
		"total":    len(views),
	})
}

func (s *Server) handleGetAttemptSource(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 0 {
		respondError(w, http.StatusBadRequest, "validation_error", "attempt number must be a non-negative integer")
		return
	}

	attempts, ok := s.attempts(w, r)
	if !ok {
		return
	}

	for _, a := range attempts {
		if a.Number != number {
			continue
		}

		text, err := a.Text()
		if err != nil {
			slog.Error("failed to read attempt", "error", err, "path", a.Path)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to read attempt")
			return
		}
		respondText(w, text)
		return
	}

	respondError(w, http.StatusNotFound, "not_found", "attempt not found")
}

// levelParam resolves the {name} URL parameter, writing a 404 if unknown.
func (s *Server) levelParam(w http.ResponseWriter, r *http.Request) (*datarelease.Level, bool) {
	level, err := s.data.Level(chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "level not found")
		return nil, false
	}
	return level, true
}

// userParam resolves the {id} URL parameter, writing a 404 if unknown.
func (s *Server) userParam(w http.ResponseWriter, r *http.Request) (*datarelease.User, bool) {
	user, err := s.data.User(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "user not found")
		return nil, false
	}
	return user, true
}

func (s *Server) attempts(w http.ResponseWriter, r *http.Request) ([]*datarelease.Attempt, bool) {
	user, ok := s.userParam(w, r)
	if !ok {
		return nil, false
	}
	level, ok := s.levelParam(w, r)
	if !ok {
		return nil, false
	}

	attempts, found, err := user.Attempts(level)
	if err != nil {
		if errors.Is(err, datarelease.ErrMalformedFilename) {
			slog.Error("malformed attempt in data release", "error", err, "user", user.ID, "level", level.Name)
			respondError(w, http.StatusInternalServerError, "malformed_data", err.Error())
			return nil, false
		}
		slog.Error("failed to list attempts", "error", err, "user", user.ID, "level", level.Name)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list attempts")
		return nil, false
	}
	if !found {
		respondError(w, http.StatusNotFound, "no_attempts", "user did not attempt this level")
		return nil, false
	}

	return attempts, true
}
