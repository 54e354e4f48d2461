package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"librarycatalog/controller"
	"librarycatalog/routes"
	"librarycatalog/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- MOCKS ---

type MockLister struct {
	mock.Mock
}

func (m *MockLister) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLister) ListNames(ctx context.Context, sort ...store.SortField) ([]string, error) {
	args := m.Called(ctx, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- SETUP ---

var errStore = errors.New("server selection timeout")

func setupRouter(genres, authors *MockLister, db *MockPinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := zap.NewNop()
	routes.Register(r, routes.Controllers{
		Genres:  controller.NewGenreController(genres, time.Second, log),
		Authors: controller.NewAuthorController(authors, time.Second, log),
		Health:  controller.NewHealthController(db, time.Second, log),
	})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// --- TESTS ---

func TestGenreController_GetGenres(t *testing.T) {
	byName := []store.SortField{store.Asc("name")}

	t.Run("Success", func(t *testing.T) {
		genres := new(MockLister)
		genres.On("ListNames", mock.Anything, byName).Return([]string{"Fiction", "Mystery"}, nil).Once()
		r := setupRouter(genres, new(MockLister), new(MockPinger))

		w := get(r, "/genres")

		assert.Equal(t, http.StatusOK, w.Code)
		var names []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
		assert.Equal(t, []string{"Fiction", "Mystery"}, names)
		genres.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		genres := new(MockLister)
		genres.On("ListNames", mock.Anything, byName).Return([]string{}, nil).Once()
		r := setupRouter(genres, new(MockLister), new(MockPinger))

		w := get(r, "/genres")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "No genres found", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("StoreFailure", func(t *testing.T) {
		genres := new(MockLister)
		genres.On("ListNames", mock.Anything, byName).Return(nil, errStore).Once()
		r := setupRouter(genres, new(MockLister), new(MockPinger))

		w := get(r, "/genres")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error retrieving genres", w.Body.String())
		assert.NotContains(t, w.Body.String(), errStore.Error())
	})
}

func TestGenreController_GetGenreCount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		genres := new(MockLister)
		genres.On("Count", mock.Anything, bson.M(nil)).Return(int64(5), nil).Once()
		r := setupRouter(genres, new(MockLister), new(MockPinger))

		w := get(r, "/genres/count")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":5}`, w.Body.String())
		genres.AssertExpectations(t)
	})

	t.Run("Zero", func(t *testing.T) {
		genres := new(MockLister)
		genres.On("Count", mock.Anything, bson.M(nil)).Return(int64(0), nil).Once()
		r := setupRouter(genres, new(MockLister), new(MockPinger))

		w := get(r, "/genres/count")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":0}`, w.Body.String())
	})

	t.Run("StoreFailure", func(t *testing.T) {
		genres := new(MockLister)
		genres.On("Count", mock.Anything, bson.M(nil)).Return(int64(0), errStore).Once()
		r := setupRouter(genres, new(MockLister), new(MockPinger))

		w := get(r, "/genres/count")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error retrieving genre count", w.Body.String())
	})
}

// The same store failure yields the same status on every route.
func TestStoreFailurePolicyIsUniform(t *testing.T) {
	genres := new(MockLister)
	genres.On("ListNames", mock.Anything, mock.Anything).Return(nil, errStore)
	genres.On("Count", mock.Anything, mock.Anything).Return(int64(0), errStore)
	authors := new(MockLister)
	authors.On("ListNames", mock.Anything, mock.Anything).Return(nil, errStore)
	authors.On("Count", mock.Anything, mock.Anything).Return(int64(0), errStore)
	r := setupRouter(genres, authors, new(MockPinger))

	for _, path := range []string{"/genres", "/genres/count", "/authors", "/authors/count"} {
		assert.Equal(t, http.StatusInternalServerError, get(r, path).Code, path)
	}
}

func TestAuthorController_GetAuthors(t *testing.T) {
	byFamilyName := []store.SortField{store.Asc("family_name")}

	t.Run("Success", func(t *testing.T) {
		authors := new(MockLister)
		authors.On("ListNames", mock.Anything, byFamilyName).
			Return([]string{"Asimov, Isaac", "Bova, Ben"}, nil).Once()
		r := setupRouter(new(MockLister), authors, new(MockPinger))

		w := get(r, "/authors")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `["Asimov, Isaac","Bova, Ben"]`, w.Body.String())
		authors.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		authors := new(MockLister)
		authors.On("ListNames", mock.Anything, byFamilyName).Return(nil, nil).Once()
		r := setupRouter(new(MockLister), authors, new(MockPinger))

		w := get(r, "/authors")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "No authors found", w.Body.String())
	})

	t.Run("StoreFailure", func(t *testing.T) {
		authors := new(MockLister)
		authors.On("ListNames", mock.Anything, byFamilyName).Return(nil, errStore).Once()
		r := setupRouter(new(MockLister), authors, new(MockPinger))

		w := get(r, "/authors")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error retrieving authors", w.Body.String())
	})
}

func TestAuthorController_GetAuthorCount(t *testing.T) {
	authors := new(MockLister)
	authors.On("Count", mock.Anything, bson.M(nil)).Return(int64(3), nil).Once()
	r := setupRouter(new(MockLister), authors, new(MockPinger))

	w := get(r, "/authors/count")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":3}`, w.Body.String())
}

func TestHealthController(t *testing.T) {
	t.Run("Up", func(t *testing.T) {
		db := new(MockPinger)
		db.On("Ping", mock.Anything).Return(nil).Once()
		r := setupRouter(new(MockLister), new(MockLister), db)

		w := get(r, "/healthz")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("Down", func(t *testing.T) {
		db := new(MockPinger)
		db.On("Ping", mock.Anything).Return(errStore).Once()
		r := setupRouter(new(MockLister), new(MockLister), db)

		w := get(r, "/healthz")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
	})
}

func TestHandlersApplyDeadline(t *testing.T) {
	genres := new(MockLister)
	genres.On("ListNames", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything).Return([]string{"Fiction"}, nil).Once()
	r := setupRouter(genres, new(MockLister), new(MockPinger))

	assert.Equal(t, http.StatusOK, get(r, "/genres").Code)
	genres.AssertExpectations(t)
}
