package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"truedoc-admin/internal/delivery/http/middleware"
	"truedoc-admin/internal/domain/entity"
	servicemocks "truedoc-admin/internal/service/mocks"
	"truedoc-admin/internal/usecase"
	"truedoc-admin/internal/usecase/mocks"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	identity   *servicemocks.MockIdentityService
	gate       *mocks.MockAccessGate
	middleware *middleware.AuthMiddleware
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &fixture{
		identity: servicemocks.NewMockIdentityService(ctrl),
		gate:     mocks.NewMockAccessGate(ctrl),
	}
	f.middleware = middleware.NewAuthMiddleware(log, f.identity, f.gate)
	return f
}

func testSession() *entity.Session {
	return &entity.Session{
		ID:        uuid.NewString(),
		AccountID: uuid.New(),
		Email:     "mod@truedoc.example",
		Token:     "token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// run sends a request through mw and reports whether the wrapped handler was reached
func run(mw func(http.Handler) http.Handler, authHeader string, inspect func(r *http.Request)) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		if inspect != nil {
			inspect(r)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/doctors", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		f := newFixture(t)

		rec, reached := run(f.middleware.Authenticate, "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("malformed header", func(t *testing.T) {
		f := newFixture(t)

		rec, reached := run(f.middleware.Authenticate, "Token abc", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("expired session", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().CurrentSession(gomock.Any(), "abc").Return(nil, nil)

		rec, reached := run(f.middleware.Authenticate, "Bearer abc", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("session store down", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().CurrentSession(gomock.Any(), "abc").Return(nil, errors.New("redis: connection refused"))

		rec, reached := run(f.middleware.Authenticate, "Bearer abc", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.False(t, reached)
	})

	t.Run("live session", func(t *testing.T) {
		f := newFixture(t)
		session := testSession()
		f.identity.EXPECT().CurrentSession(gomock.Any(), "abc").Return(session, nil)

		rec, reached := run(f.middleware.Authenticate, "Bearer abc", func(r *http.Request) {
			got, ok := entity.SessionFromContext(r.Context())
			assert.True(t, ok)
			assert.Same(t, session, got)
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})
}

func TestRequireModerator(t *testing.T) {
	tests := []struct {
		name   string
		reason usecase.DenialReason
		err    error
		code   int
	}{
		{name: "no session", reason: usecase.DenialNoSession, code: http.StatusUnauthorized},
		{name: "no doctor record", reason: usecase.DenialNoRecord, code: http.StatusForbidden},
		{name: "not a moderator", reason: usecase.DenialNotModerator, code: http.StatusForbidden},
		{name: "lookup failed", reason: usecase.DenialLookupFailed, err: usecase.ErrLookupFailed, code: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.gate.EXPECT().Check(gomock.Any(), "abc").Return(&usecase.AccessDecision{
				State:  usecase.AccessUnauthorized,
				Reason: tt.reason,
			}, tt.err)

			rec, reached := run(f.middleware.RequireModerator, "Bearer abc", nil)

			assert.Equal(t, tt.code, rec.Code)
			assert.False(t, reached)
		})
	}

	t.Run("authorized", func(t *testing.T) {
		f := newFixture(t)
		session := testSession()
		decision := &usecase.AccessDecision{
			State:   usecase.AccessAuthorized,
			Session: session,
			Doctor:  &entity.Doctor{ID: uuid.New(), Email: session.Email, Moderator: true},
		}
		f.gate.EXPECT().Check(gomock.Any(), "abc").Return(decision, nil)

		rec, reached := run(f.middleware.RequireModerator, "Bearer abc", func(r *http.Request) {
			got, ok := usecase.AccessDecisionFromContext(r.Context())
			assert.True(t, ok)
			assert.Same(t, decision, got)

			actor, ok := entity.SessionFromContext(r.Context())
			assert.True(t, ok)
			assert.Same(t, session, actor)
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})

	t.Run("gate runs on every request", func(t *testing.T) {
		f := newFixture(t)
		session := testSession()
		gomock.InOrder(
			f.gate.EXPECT().Check(gomock.Any(), "abc").Return(&usecase.AccessDecision{
				State:   usecase.AccessAuthorized,
				Session: session,
				Doctor:  &entity.Doctor{ID: uuid.New(), Moderator: true},
			}, nil),
			f.gate.EXPECT().Check(gomock.Any(), "abc").Return(&usecase.AccessDecision{
				State:  usecase.AccessUnauthorized,
				Reason: usecase.DenialNotModerator,
			}, nil),
		)

		first, _ := run(f.middleware.RequireModerator, "Bearer abc", nil)
		second, reached := run(f.middleware.RequireModerator, "Bearer abc", nil)

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusForbidden, second.Code)
		assert.False(t, reached)
	})
}
