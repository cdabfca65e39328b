package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeomhps/lodging-api/internal/auth"
	"github.com/Jeomhps/lodging-api/internal/config"
	"github.com/Jeomhps/lodging-api/internal/httperr"
	"github.com/Jeomhps/lodging-api/internal/logging"
	"github.com/Jeomhps/lodging-api/internal/store"
)

func init() { gin.SetMode(gin.TestMode) }

type server struct {
	t     *testing.T
	h     http.Handler
	store *store.Store
	token string
}

func newServer(t *testing.T, tweak func(*config.Config)) *server {
	t.Helper()
	cfg := config.Default()
	cfg.Auth.JWTSecret = "router-test-secret-0123456789abcdef"
	if tweak != nil {
		tweak(&cfg)
	}
	s := store.New(store.Options{ValidateParents: cfg.Store.ValidateParents, PasswordCost: 4})
	r, err := New(Deps{
		Config: cfg,
		Store:  s,
		Issuer: auth.NewIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute),
		Log:    logging.Discard(),
	})
	require.NoError(t, err)
	return &server{t: t, h: r, store: s}
}

// do sends body as JSON, with the server's token when it has one.
func (s *server) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.h.ServeHTTP(w, req)
	return w
}

// login registers a user and keeps its token for later requests.
func (s *server) login() {
	s.t.Helper()
	s.token = ""
	w := s.do(http.MethodPost, "/users", map[string]any{"email": "admin@x.com", "name": "Admin", "password": "secret"})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	w = s.do(http.MethodPost, "/sessions", map[string]any{"email": "admin@x.com", "password": "secret"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	s.token = decode[map[string]any](s.t, w)["token"].(string)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())
	body := decode[map[string]any](t, w)
	assert.Equal(t, code, body["code"])
	assert.NotEmpty(t, body["message"])
	assert.IsType(t, map[string]any{}, body["details"])
}

var inn = map[string]any{"name": "Inn", "city": "X", "address": "1 Rd", "rating": 4}

func TestAccommodationScenario(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	w := s.do(http.MethodPost, "/accommodations", inn)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Inn","city":"X","address":"1 Rd","rating":4}`, w.Body.String())
	assert.Equal(t, "/accommodations/1", w.Header().Get("Location"))

	w = s.do(http.MethodPatch, "/accommodations/1", map[string]any{"rating": 5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Inn","city":"X","address":"1 Rd","rating":5}`, w.Body.String())

	w = s.do(http.MethodDelete, "/accommodations/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())

	w = s.do(http.MethodGet, "/accommodations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUserSessionScenario(t *testing.T) {
	s := newServer(t, nil)

	w := s.do(http.MethodPost, "/users", map[string]any{"email": "a@x.com", "name": "A", "password": "p"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"email":"a@x.com","name":"A"}`, w.Body.String())
	assert.Equal(t, "/users/1", w.Header().Get("Location"))

	w = s.do(http.MethodPost, "/sessions", map[string]any{"email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "Bearer", body["token_type"])
	assert.EqualValues(t, 3600, body["expires_in"])

	w = s.do(http.MethodPost, "/sessions", map[string]any{"email": "a@x.com", "password": "wrong"})
	assertError(t, w, http.StatusUnauthorized, httperr.CodeInvalidCredentials)

	w = s.do(http.MethodPost, "/sessions", map[string]any{"email": "nobody@x.com", "password": "p"})
	assertError(t, w, http.StatusUnauthorized, httperr.CodeInvalidCredentials)

	w = s.do(http.MethodPost, "/sessions", map[string]any{"email": "a@x.com"})
	assertError(t, w, http.StatusBadRequest, httperr.CodeValidation)
}

func TestIDsFollowCreateCount(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	collections := []struct {
		path string
		body map[string]any
	}{
		{"/accommodations", inn},
		{"/rooms", map[string]any{"parentId": 1, "type": "double", "price": 80}},
		{"/bookings", map[string]any{"parentId": 1, "userName": "ann", "checkInDate": "2024-05-01", "checkOutDate": "2024-05-03"}},
	}
	for _, col := range collections {
		t.Run(col.path, func(t *testing.T) {
			for want := 1; want <= 3; want++ {
				w := s.do(http.MethodPost, col.path, col.body)
				require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
				assert.EqualValues(t, want, decode[map[string]any](t, w)["id"])
				assert.Equal(t, fmt.Sprintf("%s/%d", col.path, want), w.Header().Get("Location"))
			}
			list := decode[[]map[string]any](t, s.do(http.MethodGet, col.path, nil))
			require.Len(t, list, 3)
			seen := map[float64]int{}
			for _, item := range list {
				seen[item["id"].(float64)]++
			}
			assert.Equal(t, map[float64]int{1: 1, 2: 1, 3: 1}, seen)
		})
	}
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/accommodations", inn).Code)
	}
	require.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/accommodations/1", nil).Code)

	w := s.do(http.MethodPost, "/accommodations", inn)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 3, decode[map[string]any](t, w)["id"])
}

func TestMissingFieldsDoNotMutate(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	cases := map[string]map[string]any{
		"/accommodations": {"name": "Inn", "city": "X"},
		"/rooms":          {"type": "double"},
		"/bookings":       {"parentId": 1, "userName": "ann"},
		"/users":          {"email": "b@x.com"},
	}
	for path, body := range cases {
		t.Run(path, func(t *testing.T) {
			before := len(decode[[]map[string]any](t, s.do(http.MethodGet, path, nil)))
			w := s.do(http.MethodPost, path, body)
			assertError(t, w, http.StatusBadRequest, httperr.CodeValidation)
			assert.NotEmpty(t, decode[map[string]any](t, w)["details"].(map[string]any)["fields"])
			after := len(decode[[]map[string]any](t, s.do(http.MethodGet, path, nil)))
			assert.Equal(t, before, after)
		})
	}
}

func TestValidationBodies(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	w := s.do(http.MethodPost, "/accommodations", map[string]any{"name": "Inn"})
	body := decode[map[string]any](t, w)
	assert.Equal(t, "missing required fields: city, address, rating", body["message"])
	assert.Equal(t, []any{"city", "address", "rating"}, body["details"].(map[string]any)["fields"])

	w = s.do(http.MethodPost, "/rooms", map[string]any{"parentId": "one", "type": "double", "price": 80})
	assertError(t, w, http.StatusBadRequest, httperr.CodeValidation)
	assert.Equal(t, "parentId must be an integer", decode[map[string]any](t, w)["message"])

	req := httptest.NewRequest(http.MethodPost, "/accommodations", bytes.NewBufferString("{not json"))
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.h.ServeHTTP(rec, req)
	assertError(t, rec, http.StatusBadRequest, httperr.CodeValidation)
}

func TestOnlyPresenceIsChecked(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	w := s.do(http.MethodPost, "/accommodations", map[string]any{"name": "Inn", "city": "X", "address": "1 Rd", "rating": "4"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":1,"name":"Inn","city":"X","address":"1 Rd","rating":"4"}`, w.Body.String())

	w = s.do(http.MethodPatch, "/accommodations/1", map[string]any{"rating": "excellent"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "excellent", decode[map[string]any](t, w)["rating"])

	w = s.do(http.MethodPost, "/rooms", map[string]any{"parentId": 1, "type": "double", "price": "100"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":1,"parentId":1,"type":"double","price":"100"}`, w.Body.String())

	w = s.do(http.MethodPost, "/bookings", map[string]any{
		"parentId": "1", "userName": "ann", "checkInDate": 20240101, "checkOutDate": "2024-01-03",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":1,"parentId":1,"userName":"ann","checkInDate":20240101,"checkOutDate":"2024-01-03"}`, w.Body.String())

	list := decode[[]map[string]any](t, s.do(http.MethodGet, "/bookings?parentId=1", nil))
	assert.Len(t, list, 1)
}

func TestUnknownIDIsNotFoundEverywhere(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	for _, path := range []string{"/accommodations/42", "/rooms/42", "/bookings/42", "/users/42", "/rooms/abc"} {
		t.Run(path, func(t *testing.T) {
			assertError(t, s.do(http.MethodPatch, path, map[string]any{"x": 1}), http.StatusNotFound, httperr.CodeNotFound)
			assertError(t, s.do(http.MethodGet, path, nil), http.StatusNotFound, httperr.CodeNotFound)
			assertError(t, s.do(http.MethodDelete, path, nil), http.StatusNotFound, httperr.CodeNotFound)
		})
	}
}

func TestDeleteTwice(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/rooms", map[string]any{"parentId": 1, "type": "single", "price": 50}).Code)
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/rooms/1", nil).Code)
	assertError(t, s.do(http.MethodDelete, "/rooms/1", nil), http.StatusNotFound, httperr.CodeNotFound)
}

func TestUsersNeverExposePassword(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	w := s.do(http.MethodPost, "/users", map[string]any{"email": "b@x.com", "name": "B", "password": "pw", "role": "guest"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, decode[map[string]any](t, w), "password")

	for _, w := range []*httptest.ResponseRecorder{
		s.do(http.MethodGet, "/users", nil),
		s.do(http.MethodPatch, "/users/2", map[string]any{"password": "new"}),
		s.do(http.MethodGet, "/users/2", nil),
	} {
		require.Less(t, w.Code, 300, w.Body.String())
		assert.NotContains(t, w.Body.String(), `"password"`)
		assert.NotContains(t, w.Body.String(), "$2a$")
	}

	w = s.do(http.MethodGet, "/users/2", nil)
	assert.Equal(t, "guest", decode[map[string]any](t, w)["role"])

	s.token = ""
	w = s.do(http.MethodPost, "/sessions", map[string]any{"email": "b@x.com", "password": "new"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDuplicateEmail(t *testing.T) {
	s := newServer(t, nil)
	body := map[string]any{"email": "a@x.com", "name": "A", "password": "p"}

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/users", body).Code)
	w := s.do(http.MethodPost, "/auth/register", body)
	assertError(t, w, http.StatusConflict, httperr.CodeConflict)
	assert.Equal(t, "email", decode[map[string]any](t, w)["details"].(map[string]any)["field"])

	assert.Len(t, decode[[]map[string]any](t, s.do(http.MethodGet, "/users", nil)), 1)
}

func TestConcurrentRegistrationKeepsOneUser(t *testing.T) {
	s := newServer(t, nil)
	body := map[string]any{"email": "race@x.com", "name": "R", "password": "p"}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, _ := json.Marshal(body)
			w := httptest.NewRecorder()
			s.h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(b)))
			if w.Code == http.StatusCreated {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, s.store.Users.Len())
}

func TestUpdateIgnoresID(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/accommodations", inn).Code)
	w := s.do(http.MethodPatch, "/accommodations/1", map[string]any{"id": 99, "stars": 3})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.EqualValues(t, 1, body["id"])
	assert.EqualValues(t, 3, body["stars"])

	assertError(t, s.do(http.MethodGet, "/accommodations/99", nil), http.StatusNotFound, httperr.CodeNotFound)
}

func TestEmailUniqueOnUpdate(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/users", map[string]any{"email": "b@x.com", "name": "B", "password": "p"}).Code)
	assertError(t, s.do(http.MethodPatch, "/users/2", map[string]any{"email": "admin@x.com"}), http.StatusConflict, httperr.CodeConflict)

	w := s.do(http.MethodPatch, "/users/2", map[string]any{"email": "b@x.com", "name": "Bee"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPatch, "/users/2", map[string]any{"email": ""})
	assertError(t, w, http.StatusBadRequest, httperr.CodeValidation)
	assert.Equal(t, "b@x.com", decode[map[string]any](t, s.do(http.MethodGet, "/users/2", nil))["email"])
}

func TestGate(t *testing.T) {
	s := newServer(t, nil)

	writes := []struct{ method, path string }{
		{http.MethodPost, "/accommodations"},
		{http.MethodPatch, "/accommodations/1"},
		{http.MethodDelete, "/accommodations/1"},
		{http.MethodPost, "/rooms"},
		{http.MethodPost, "/bookings"},
		{http.MethodPatch, "/users/1"},
		{http.MethodDelete, "/users/1"},
		{http.MethodDelete, "/sessions"},
		{http.MethodPost, "/hotels/1/rooms"},
	}
	for _, wr := range writes {
		w := s.do(wr.method, wr.path, inn)
		assertError(t, w, http.StatusUnauthorized, httperr.CodeAuthentication)
		assert.Equal(t, "Authentication required", decode[map[string]any](t, w)["message"])
	}

	s.token = "fake-jwt-token"
	w := s.do(http.MethodPost, "/accommodations", inn)
	assertError(t, w, http.StatusUnauthorized, httperr.CodeAuthentication)
	assert.Equal(t, "Invalid token", decode[map[string]any](t, w)["message"])
	assert.Zero(t, s.store.Accommodations.Len())

	s.token = ""
	for _, path := range []string{"/accommodations", "/rooms", "/bookings", "/users", "/hotels"} {
		assert.Equal(t, http.StatusOK, s.do(http.MethodGet, path, nil).Code, path)
	}

	s.login()
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/sessions", nil).Code)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Auth.TokenTTLMinutes = -1 })
	s.login()

	assertError(t, s.do(http.MethodPost, "/accommodations", inn), http.StatusUnauthorized, httperr.CodeAuthentication)
}

func TestBearerMode(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Auth.Mode = config.AuthBearer })

	assertError(t, s.do(http.MethodPost, "/accommodations", inn), http.StatusUnauthorized, httperr.CodeAuthentication)

	s.token = "fake-jwt-token"
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/accommodations", inn).Code)

	w := s.do(http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())
}

func TestAuthOff(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Auth.Mode = config.AuthOff })

	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/accommodations", inn).Code)
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/accommodations/1", nil).Code)
	assertError(t, s.do(http.MethodGet, "/auth/me", nil), http.StatusUnauthorized, httperr.CodeAuthentication)
}

func TestAuthAliases(t *testing.T) {
	s := newServer(t, nil)

	w := s.do(http.MethodPost, "/auth/register", map[string]any{"email": "a@x.com", "name": "A", "password": "p"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/users/1", w.Header().Get("Location"))

	w = s.do(http.MethodPost, "/auth/login", map[string]any{"email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusOK, w.Code)
	s.token = decode[map[string]any](t, w)["token"].(string)

	w = s.do(http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[map[string]any](t, w)
	assert.EqualValues(t, 1, me["id"])
	assert.Equal(t, "a@x.com", me["email"])

	s.token = ""
	assertError(t, s.do(http.MethodGet, "/auth/me", nil), http.StatusUnauthorized, httperr.CodeAuthentication)
}

func TestOptionalRouteFamiliesCanBeOff(t *testing.T) {
	s := newServer(t, func(c *config.Config) {
		c.Routes.Nested = false
		c.Routes.AuthAliases = false
	})

	for _, path := range []string{"/hotels", "/hotels/1/rooms", "/auth/me"} {
		assertError(t, s.do(http.MethodGet, path, nil), http.StatusNotFound, httperr.CodeNotFound)
	}
	assertError(t, s.do(http.MethodPost, "/auth/login", map[string]any{}), http.StatusNotFound, httperr.CodeNotFound)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/accommodations", nil).Code)
}

func TestNestedRooms(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/accommodations", inn).Code)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/accommodations", inn).Code)

	w := s.do(http.MethodPost, "/hotels/1/rooms", map[string]any{"type": "double", "price": 80, "parentId": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/hotels/1/rooms/1", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1,"parentId":1,"type":"double","price":80}`, w.Body.String())

	w = s.do(http.MethodPost, "/rooms", map[string]any{"accommodationId": 2, "type": "suite", "price": 200})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":2,"parentId":2,"type":"suite","price":200}`, w.Body.String())

	list := decode[[]map[string]any](t, s.do(http.MethodGet, "/hotels/1/rooms", nil))
	require.Len(t, list, 1)
	assert.EqualValues(t, 1, list[0]["id"])

	list = decode[[]map[string]any](t, s.do(http.MethodGet, "/rooms?parentId=2", nil))
	require.Len(t, list, 1)
	assert.EqualValues(t, 2, list[0]["id"])

	assertError(t, s.do(http.MethodGet, "/rooms?parentId=two", nil), http.StatusBadRequest, httperr.CodeValidation)

	// Room 2 belongs to hotel 2.
	assertError(t, s.do(http.MethodGet, "/hotels/1/rooms/2", nil), http.StatusNotFound, httperr.CodeNotFound)
	assertError(t, s.do(http.MethodPatch, "/hotels/1/rooms/2", map[string]any{"price": 1}), http.StatusNotFound, httperr.CodeNotFound)
	assertError(t, s.do(http.MethodDelete, "/hotels/1/rooms/2", nil), http.StatusNotFound, httperr.CodeNotFound)

	w = s.do(http.MethodPatch, "/hotels/2/rooms/2", map[string]any{"price": 150, "parentId": 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":2,"parentId":2,"type":"suite","price":150}`, w.Body.String())

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/hotels/2/rooms/2", nil).Code)
	assert.Equal(t, 1, s.store.Rooms.Len())

	w = s.do(http.MethodGet, "/hotels/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, w)["id"])
}

func TestBookingsFilterAndAlias(t *testing.T) {
	s := newServer(t, nil)
	s.login()

	for _, parent := range []int{1, 2, 1} {
		w := s.do(http.MethodPost, "/bookings", map[string]any{
			"hotelId": parent, "userName": "ann", "checkInDate": "2024-05-01", "checkOutDate": "2024-05-03",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.NotContains(t, decode[map[string]any](t, w), "hotelId")
	}
	list := decode[[]map[string]any](t, s.do(http.MethodGet, "/bookings?accommodationId=1", nil))
	assert.Len(t, list, 2)
}

func TestValidateParents(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Store.ValidateParents = true })
	s.login()

	assertError(t, s.do(http.MethodPost, "/rooms", map[string]any{"parentId": 1, "type": "single", "price": 50}), http.StatusBadRequest, httperr.CodeValidation)

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/accommodations", inn).Code)
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/hotels/1/rooms", map[string]any{"type": "single", "price": 50}).Code)
	assertError(t, s.do(http.MethodPost, "/bookings", map[string]any{
		"parentId": 7, "userName": "ann", "checkInDate": "a", "checkOutDate": "b",
	}), http.StatusBadRequest, httperr.CodeValidation)
}

func TestUnknownRoute(t *testing.T) {
	s := newServer(t, nil)
	w := s.do(http.MethodGet, "/nope", nil)
	assertError(t, w, http.StatusNotFound, httperr.CodeNotFound)
	assert.Equal(t, "Route not found", decode[map[string]any](t, w)["message"])
}

func TestHealthAndDocs(t *testing.T) {
	s := newServer(t, nil)
	w := s.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/docs/openapi.json", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/docs/openapi.yaml", nil).Code)
}

func TestEveryRouteIsDocumented(t *testing.T) {
	s := newServer(t, nil)
	w := s.do(http.MethodGet, "/docs/openapi.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := decode[struct {
		Paths map[string]map[string]any `json:"paths"`
	}](t, w)

	params := regexp.MustCompile(`:(\w+)`)
	open := map[string]bool{
		"POST /users": true, "POST /sessions": true, "POST /auth/register": true, "POST /auth/login": true,
	}
	for _, rt := range s.h.(*gin.Engine).Routes() {
		if strings.HasPrefix(rt.Path, "/docs/") {
			continue
		}
		path := params.ReplaceAllString(rt.Path, "{$1}")
		op, ok := doc.Paths[path][strings.ToLower(rt.Method)].(map[string]any)
		if !assert.True(t, ok, "%s %s is not documented", rt.Method, path) {
			continue
		}
		if rt.Method != http.MethodGet && !open[rt.Method+" "+rt.Path] {
			assert.Contains(t, op, "security", "%s %s needs a bearer token", rt.Method, path)
		}
	}
}
