package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/tickstock/internal/adapter/http"
	"github.com/iho/tickstock/internal/adapter/http/handler"
	"github.com/iho/tickstock/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/tickstock/internal/adapter/repository/redis"
	infraredis "github.com/iho/tickstock/internal/infrastructure/redis"
	"github.com/iho/tickstock/internal/usecase"
	"github.com/iho/tickstock/tests/testutil"
)

// testEnv wires the full HTTP API over a live database and redis, the
// way cmd/server does.
type testEnv struct {
	DB     *testutil.TestDB
	Server *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { _ = redisClient.Close() })

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	retrier := postgres.NewRetrier()
	categoryRepo := postgres.NewCategoryRepository(pool)
	distributorRepo := postgres.NewDistributorRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	stockRepo := postgres.NewStockEntryRepository(pool)
	saleRepo := postgres.NewSaleEntryRepository(pool)
	idGen := postgres.NewULIDGenerator()

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, idGen, nil)
	counterpartyUC := usecase.NewCounterpartyUseCase(distributorRepo, partyRepo, idGen)
	stockUC := usecase.NewStockUseCase(txManager, categoryRepo, distributorRepo, stockRepo, saleRepo, idGen)
	saleUC := usecase.NewSaleUseCase(txManager, retrier, categoryRepo, partyRepo, stockRepo, saleRepo, idGen, nil)
	rangeUC := usecase.NewRangeUseCase(categoryRepo)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		CategoryHandler:     handler.NewCategoryHandler(categoryUC),
		CounterpartyHandler: handler.NewCounterpartyHandler(counterpartyUC),
		StockHandler:        handler.NewStockHandler(stockUC),
		SaleHandler:         handler.NewSaleHandler(saleUC),
		RangeHandler:        handler.NewRangeHandler(rangeUC),
		HealthHandler:       handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:    redisrepo.NewIdempotencyStore(redisClient),
		Logger:              zerolog.Nop(),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{DB: testDB, Server: server}
}

func (env *testEnv) post(t *testing.T, path string, payload any) (*http.Response, []byte) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	resp, err := http.Post(env.Server.URL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	return resp, readBody(t, resp)
}

func (env *testEnv) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(env.Server.URL + path)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	return resp, readBody(t, resp)
}

func (env *testEnv) delete(t *testing.T, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, env.Server.URL+path, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return body
}

func decodeJSON(t *testing.T, body []byte, out any) {
	t.Helper()

	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("failed to decode response %s: %v", body, err)
	}
}
