package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mealhub/internal/models"
	"mealhub/internal/payments"
	"mealhub/internal/repository"
	"mealhub/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- in-memory doubles ---

type memUserRepo struct {
	byEmail map[string]*models.User
	nextID  int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*models.User{}, nextID: 1}
}

func (m *memUserRepo) List(ctx context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range m.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) SearchByName(ctx context.Context, pattern string) ([]models.User, error) {
	return nil, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	if _, ok := m.byEmail[user.Email]; ok {
		return 0, repository.ErrUserExists
	}
	u := *user
	u.ID = m.nextID
	if u.Role == "" {
		u.Role = string(models.RoleUser)
	}
	m.nextID++
	m.byEmail[u.Email] = &u
	return u.ID, nil
}

func (m *memUserRepo) UpdateProfile(ctx context.Context, id int64, badge, pkg string) (int64, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			u.Badge, u.Package = &badge, &pkg
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memUserRepo) PromoteToAdmin(ctx context.Context, id int64) (int64, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			u.Role = string(models.RoleAdmin)
			return 1, nil
		}
	}
	return 0, nil
}

type memMealRepo struct {
	byID map[int64]*models.Meal
}

func (m *memMealRepo) List(ctx context.Context) ([]models.Meal, error) {
	out := []models.Meal{}
	for _, v := range m.byID {
		out = append(out, *v)
	}
	return out, nil
}

func (m *memMealRepo) GetByID(ctx context.Context, id int64) (*models.Meal, error) {
	if v, ok := m.byID[id]; ok {
		return v, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memMealRepo) Create(ctx context.Context, meal *models.Meal) (int64, error) {
	id := int64(len(m.byID) + 1)
	meal.ID = id
	m.byID[id] = meal
	return id, nil
}

func (m *memMealRepo) Update(ctx context.Context, id int64, patch repository.MealPatch) (int64, error) {
	if _, ok := m.byID[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (m *memMealRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := m.byID[id]; !ok {
		return 0, nil
	}
	delete(m.byID, id)
	return 1, nil
}

type stubUpcomingRepo struct{}

func (stubUpcomingRepo) List(ctx context.Context) ([]models.UpcomingMeal, error) {
	return []models.UpcomingMeal{}, nil
}
func (stubUpcomingRepo) Create(ctx context.Context, meal *models.UpcomingMeal) (int64, error) {
	return 1, nil
}

type stubReviewRepo struct{}

func (stubReviewRepo) List(ctx context.Context) ([]models.Review, error) {
	return []models.Review{}, nil
}
func (stubReviewRepo) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	return nil, repository.ErrNotFound
}
func (stubReviewRepo) Create(ctx context.Context, review *models.Review) (int64, error) {
	return 1, nil
}
func (stubReviewRepo) Update(ctx context.Context, id int64, patch repository.ReviewPatch) (int64, error) {
	return 1, nil
}
func (stubReviewRepo) Delete(ctx context.Context, id int64) (int64, error) { return 1, nil }

type stubPackageRepo struct{}

func (stubPackageRepo) List(ctx context.Context) ([]models.Package, error) {
	return []models.Package{}, nil
}
func (stubPackageRepo) GetByName(ctx context.Context, name string) (*models.Package, error) {
	return nil, repository.ErrNotFound
}

type stubRequestRepo struct{}

func (stubRequestRepo) List(ctx context.Context) ([]models.MealRequest, error) {
	return []models.MealRequest{}, nil
}
func (stubRequestRepo) ListByEmail(ctx context.Context, email string) ([]models.MealRequest, error) {
	return []models.MealRequest{}, nil
}
func (stubRequestRepo) Create(ctx context.Context, req *models.MealRequest) (int64, error) {
	return 1, nil
}
func (stubRequestRepo) Delete(ctx context.Context, id int64) (int64, error) { return 1, nil }

type fakeProvider struct {
	gotAmount   int64
	gotCurrency string
	calls       int
}

func (f *fakeProvider) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*payments.Intent, error) {
	f.calls++
	f.gotAmount = amountMinor
	f.gotCurrency = currency
	return &payments.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil
}

// --- fixture ---

type fixture struct {
	srv      *Server
	users    *memUserRepo
	meals    *memMealRepo
	provider *fakeProvider
	tokens   *token.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tokens, err := token.NewService("test-secret")
	require.NoError(t, err)

	f := &fixture{
		users:    newMemUserRepo(),
		meals:    &memMealRepo{byID: map[int64]*models.Meal{}},
		provider: &fakeProvider{},
		tokens:   tokens,
	}
	f.srv = NewServerFromDeps(Deps{
		Tokens:       tokens,
		Users:        f.users,
		Meals:        f.meals,
		Upcoming:     stubUpcomingRepo{},
		Reviews:      stubReviewRepo{},
		Packages:     stubPackageRepo{},
		MealRequests: stubRequestRepo{},
		Payments:     f.provider,
		Registry:     prometheus.NewRegistry(),
		Logger:       zap.NewNop(),
	})
	return f
}

func (f *fixture) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// --- scenarios ---

func TestIssueTokenThenCheckAdmin(t *testing.T) {
	f := newFixture(t)
	f.users.byEmail["a@x.com"] = &models.User{ID: 1, Email: "a@x.com", Role: "admin"}

	w := f.do(t, http.MethodPost, "/jwt", "", map[string]any{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	tok, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, tok)

	w = f.do(t, http.MethodGet, "/users/admin/a@x.com", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decode(t, w)["admin"])
}

func TestCheckAdmin_OtherEmailForbidden(t *testing.T) {
	f := newFixture(t)
	f.users.byEmail["boss@x.com"] = &models.User{ID: 1, Email: "boss@x.com", Role: "admin"}

	tok, err := f.tokens.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	w := f.do(t, http.MethodGet, "/users/admin/boss@x.com", tok, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCheckAdmin_NonAdminUser(t *testing.T) {
	f := newFixture(t)
	f.users.byEmail["a@x.com"] = &models.User{ID: 1, Email: "a@x.com", Role: "user"}

	tok, err := f.tokens.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	w := f.do(t, http.MethodGet, "/users/admin/a@x.com", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, decode(t, w)["admin"])
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/users", "", map[string]any{"email": "a@x.com", "name": "Ann"})
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, decode(t, w)["insertedId"])

	w = f.do(t, http.MethodPost, "/users", "", map[string]any{"email": "a@x.com", "name": "Ann Again"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "user already exist", body["message"])
	require.Nil(t, body["insertedId"])
	require.Len(t, f.users.byEmail, 1)
}

func TestDeleteMeal_NoToken(t *testing.T) {
	f := newFixture(t)
	f.meals.byID[1] = &models.Meal{ID: 1, Title: "Biryani"}

	w := f.do(t, http.MethodDelete, "/meal/1", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, f.meals.byID, int64(1))
}

func TestDeleteMeal_NonAdmin(t *testing.T) {
	f := newFixture(t)
	f.meals.byID[1] = &models.Meal{ID: 1, Title: "Biryani"}
	f.users.byEmail["a@x.com"] = &models.User{ID: 1, Email: "a@x.com", Role: "user"}

	tok, err := f.tokens.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	w := f.do(t, http.MethodDelete, "/meal/1", tok, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, f.meals.byID, int64(1))
}

func TestDeleteMeal_Admin(t *testing.T) {
	f := newFixture(t)
	f.meals.byID[1] = &models.Meal{ID: 1, Title: "Biryani"}
	f.users.byEmail["boss@x.com"] = &models.User{ID: 2, Email: "boss@x.com", Role: "admin"}

	tok, err := f.tokens.Issue(map[string]any{"email": "boss@x.com"})
	require.NoError(t, err)

	w := f.do(t, http.MethodDelete, "/meal/1", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, decode(t, w)["deletedCount"])
	require.NotContains(t, f.meals.byID, int64(1))
}

func TestDeleteMeal_MalformedID(t *testing.T) {
	f := newFixture(t)
	f.users.byEmail["boss@x.com"] = &models.User{ID: 2, Email: "boss@x.com", Role: "admin"}

	tok, err := f.tokens.Issue(map[string]any{"email": "boss@x.com"})
	require.NoError(t, err)

	w := f.do(t, http.MethodDelete, "/meal/not-a-number", tok, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePaymentIntent(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/create-payment-intent", "", map[string]any{"price": 19.99})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pi_1_secret", decode(t, w)["clientSecret"])
	require.EqualValues(t, 1999, f.provider.gotAmount)
	require.Equal(t, "usd", f.provider.gotCurrency)
	require.Equal(t, 1, f.provider.calls)
}

func TestLiveness(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "meals are coming", w.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	f := newFixture(t)

	f.do(t, http.MethodGet, "/meal", "", nil)
	w := f.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "http_requests_total")
}
