package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Tellwe/obedir-qr-codes/internal/config"
	"github.com/Tellwe/obedir-qr-codes/internal/database"
	"github.com/Tellwe/obedir-qr-codes/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the passport index schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.NewPoolFromConnString(ctx, connStr, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupDB removes every passport index entry.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM passport_index"); err != nil {
		t.Logf("failed to clean table passport_index: %v", err)
	}
}

// FakePassportAPI is an in-memory stand-in for the remote passport API.
type FakePassportAPI struct {
	Server *httptest.Server

	mu        sync.Mutex
	passports map[string]model.Passport
	order     []string
}

// NewFakePassportAPI starts a fake passport API serving the five remote endpoints.
func NewFakePassportAPI(t *testing.T) *FakePassportAPI {
	t.Helper()

	api := &FakePassportAPI{passports: map[string]model.Passport{}}

	r := chi.NewRouter()
	r.Get("/list_qr", api.list)
	r.Get("/read_qr/{id}", api.read)
	r.Post("/create_qr", api.create)
	r.Put("/update_qr/{id}", api.update)
	r.Delete("/delete_qr/{id}", api.delete)

	api.Server = httptest.NewServer(r)
	t.Cleanup(api.Server.Close)

	return api
}

// Put stores a passport directly, as if it had been created outside the dashboard.
func (a *FakePassportAPI) Put(p model.Passport) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.passports[p.UUID]; !ok {
		a.order = append(a.order, p.UUID)
	}
	a.passports[p.UUID] = p
}

// Len returns the number of stored passports.
func (a *FakePassportAPI) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.passports)
}

func (a *FakePassportAPI) list(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	list := make([]model.Passport, 0, len(a.order))
	for _, id := range a.order {
		list = append(list, a.passports[id])
	}
	a.mu.Unlock()

	writeFakeJSON(w, http.StatusOK, list)
}

func (a *FakePassportAPI) read(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	p, ok := a.passports[chi.URLParam(r, "id")]
	a.mu.Unlock()

	if !ok {
		writeFakeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}
	writeFakeJSON(w, http.StatusOK, p)
}

func (a *FakePassportAPI) create(w http.ResponseWriter, r *http.Request) {
	var p model.Passport
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.UUID != "" {
		writeFakeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
		return
	}

	p.UUID = uuid.NewString()
	a.Put(p)
	writeFakeJSON(w, http.StatusOK, map[string]string{"uuid": p.UUID})
}

func (a *FakePassportAPI) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var p model.Passport
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.UUID != id {
		writeFakeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
		return
	}

	a.mu.Lock()
	_, ok := a.passports[id]
	if ok {
		a.passports[id] = p
	}
	a.mu.Unlock()

	if !ok {
		writeFakeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}
	writeFakeJSON(w, http.StatusOK, p)
}

func (a *FakePassportAPI) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a.mu.Lock()
	_, ok := a.passports[id]
	delete(a.passports, id)
	for i, existing := range a.order {
		if existing == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	a.mu.Unlock()

	if !ok {
		writeFakeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}
	writeFakeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func writeFakeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
