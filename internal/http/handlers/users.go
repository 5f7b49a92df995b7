package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/geocoder89/roster/internal/domain/user"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/geocoder89/roster/internal/http/handlers")

// UsersReader is all the handlers need from the store; fakes in tests implement it.
type UsersReader interface {
	List(ctx context.Context) ([]user.Public, error)
	GetByID(ctx context.Context, id string) (user.Public, bool, error)
}

type UsersHandler struct {
	users UsersReader
	log   *slog.Logger
}

func NewUsersHandler(users UsersReader, log *slog.Logger) *UsersHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UsersHandler{users: users, log: log}
}

type searchUsersQuery struct {
	ID *string `form:"id"`
}

// GET /api/users
func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	reqCtx, span := tracer.Start(ctx.Request.Context(), "UsersHandler.ListUsers")
	defer span.End()

	users, err := h.users.List(reqCtx)
	if err != nil {
		span.SetStatus(codes.Error, "list users")
		h.log.ErrorContext(reqCtx, "failed to list users", "err", err, "request_id", requestIDFrom(ctx))
		RespondInternal(ctx)
		return
	}

	if users == nil {
		users = []user.Public{}
	}

	RespondJSONWithETag(ctx, http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

// GET /api/users/:id
func (h *UsersHandler) GetUserByID(ctx *gin.Context) {
	reqCtx, span := tracer.Start(ctx.Request.Context(), "UsersHandler.GetUserByID")
	defer span.End()

	res, err := h.resolve(reqCtx, ctx.Param("id"))
	if err != nil {
		span.SetStatus(codes.Error, "get user")
		h.log.ErrorContext(reqCtx, "failed to get user", "err", err, "request_id", requestIDFrom(ctx))
		RespondInternal(ctx)
		return
	}
	span.SetAttributes(attribute.String("users.outcome", res.Outcome.String()))

	switch res.Outcome {
	case user.Found:
		RespondJSONWithETag(ctx, http.StatusOK, gin.H{"user": res.User})
	case user.NotFound:
		RespondNotFound(ctx, "user not found")
	default:
		// an empty path segment is a malformed id here, not a missing parameter
		RespondInvalidID(ctx)
	}
}

// GET /api/users/search?id=
//
// Unlike GetUserByID, a well-formed id with no match is a 200 with a null user.
func (h *UsersHandler) SearchUsers(ctx *gin.Context) {
	reqCtx, span := tracer.Start(ctx.Request.Context(), "UsersHandler.SearchUsers")
	defer span.End()

	var q searchUsersQuery
	if err := ctx.ShouldBindQuery(&q); err != nil || q.ID == nil {
		RespondMissingParameter(ctx, "id")
		return
	}

	res, err := h.resolve(reqCtx, *q.ID)
	if err != nil {
		span.SetStatus(codes.Error, "search user")
		h.log.ErrorContext(reqCtx, "failed to search user", "err", err, "request_id", requestIDFrom(ctx))
		RespondInternal(ctx)
		return
	}
	span.SetAttributes(attribute.String("users.outcome", res.Outcome.String()))

	switch res.Outcome {
	case user.Found:
		RespondJSONWithETag(ctx, http.StatusOK, gin.H{"user": res.User})
	case user.NotFound:
		RespondJSONWithETag(ctx, http.StatusOK, gin.H{"user": nil})
	case user.MissingID:
		RespondMissingParameter(ctx, "id")
	default:
		RespondInvalidID(ctx)
	}
}

// resolve validates raw and looks it up. Only store failures come back as err.
// The lookup uses raw untrimmed, so " 1" validates but does not match "1".
func (h *UsersHandler) resolve(ctx context.Context, raw string) (user.Lookup, error) {
	switch user.CheckID(raw) {
	case user.ErrMissingID:
		return user.Lookup{Outcome: user.MissingID}, nil
	case user.ErrInvalidID:
		return user.Lookup{Outcome: user.InvalidID}, nil
	}

	u, found, err := h.users.GetByID(ctx, raw)
	if err != nil {
		return user.Lookup{}, err
	}
	if !found {
		return user.Lookup{Outcome: user.NotFound}, nil
	}

	return user.Lookup{Outcome: user.Found, User: u}, nil
}
