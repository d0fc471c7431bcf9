//go:build e2e
// +build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/servitech/parts-portal/internal/adapters/db"
	"github.com/servitech/parts-portal/internal/adapters/mailer"
	redis_a "github.com/servitech/parts-portal/internal/adapters/redis_adapter"
	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
	"github.com/servitech/parts-portal/internal/core/services"
	"github.com/servitech/parts-portal/internal/handlers"
	"github.com/servitech/parts-portal/internal/handlers/middleware"
	"github.com/servitech/parts-portal/test/helpers"
)

const leaderSecret = "e2e-leader-secret"

// recordingEnqueuer keeps queued emails in memory instead of Redis.
type recordingEnqueuer struct {
	mu     sync.Mutex
	emails []ports.Email
}

func (r *recordingEnqueuer) EnqueueEmail(_ context.Context, email ports.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails = append(r.emails, email)
	return nil
}

func (r *recordingEnqueuer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.emails)
}

type PortalE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
	enqueuer  *recordingEnqueuer
}

func (s *PortalE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.client = &http.Client{Timeout: 10 * time.Second, Jar: jar}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *PortalE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *PortalE2ESuite) startTestServer() *httptest.Server {
	slogger := helpers.TestLogger()
	cfg := helpers.LoadTestConfig()

	cat := domain.NewCatalogue([]domain.PartRecord{
		{PartNumber: "AB-100", Description: "Widget bracket", Category: "Brackets"},
		{PartNumber: "AB-200", Description: "Widget clamp", Category: "Clamps"},
		{PartNumber: "RG-10", Description: "Cleaning reagent", Category: "Lab Reagents"},
	}, nil)

	sessions := redis_a.NewSessionStore(s.testRedis.Client, cfg.Redis.SessionTTL, slogger)
	smtpMailer := mailer.New(mailer.Config{From: cfg.Mail.From, DryRun: true}, slogger)
	s.enqueuer = &recordingEnqueuer{}

	orderRepo := db.NewOrderRepository(s.testDB.Database, slogger)
	dispatchRepo := db.NewDispatchRepository(s.testDB.Database, slogger)
	stocktakeRepo := db.NewStocktakeRepository(s.testDB.Database, slogger)

	orderService := services.NewOrderService(orderRepo, dispatchRepo, sessions, smtpMailer, cat, services.OrdersConfig{
		PartsMailbox:    cfg.Mail.PartsMailbox,
		ReagentsMailbox: cfg.Mail.ReagentsMailbox,
	}, slogger)
	stocktakeService := services.NewStocktakeService(stocktakeRepo, s.enqueuer, cat, services.StocktakeConfig{
		LeaderMailbox: cfg.Mail.LeaderMailbox,
	}, slogger)

	catalogueHandler := handlers.NewCatalogueHandler(cat, nil, cfg.Catalogue.ImageExpiry, slogger)
	basketHandler := handlers.NewBasketHandler(sessions, cat, slogger)
	orderHandler := handlers.NewOrderHandler(orderService, slogger)
	stocktakeHandler := handlers.NewStocktakeHandler(stocktakeService, slogger)
	leaderHandler := handlers.NewLeaderHandler(stocktakeService, sessions, leaderSecret, slogger)
	exportHandler := handlers.NewExportHandler(stocktakeService, slogger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/catalogue", catalogueHandler.ListParts)
	mux.HandleFunc("GET /api/v1/basket", basketHandler.GetBasket)
	mux.HandleFunc("POST /api/v1/basket/add", basketHandler.AddItem)
	mux.HandleFunc("POST /api/v1/basket/clear", basketHandler.Clear)
	mux.HandleFunc("POST /api/v1/orders/submit", orderHandler.SubmitOrder)
	mux.HandleFunc("GET /api/v1/orders/recent", orderHandler.RecentOrders)
	mux.HandleFunc("GET /api/v1/my-orders", orderHandler.MyOrders)
	mux.HandleFunc("POST /api/v1/stocktake/open", stocktakeHandler.Open)
	mux.HandleFunc("POST /api/v1/stocktake/items", stocktakeHandler.SetItem)
	mux.HandleFunc("POST /api/v1/stocktake/submit", stocktakeHandler.Submit)
	mux.HandleFunc("POST /api/v1/leader/login", leaderHandler.Login)

	guard := middleware.RequireLeader(sessions, slogger)
	mux.Handle("GET /api/v1/leader/stocktakes", guard(http.HandlerFunc(leaderHandler.ListStocktakes)))
	mux.Handle("GET /api/v1/leader/export/totals.csv", guard(http.HandlerFunc(exportHandler.TotalsCSV)))

	return httptest.NewServer(middleware.Session(mux))
}

func (s *PortalE2ESuite) postForm(path string, form url.Values) *http.Response {
	resp, err := s.client.PostForm(s.baseURL+path, form)
	s.Require().NoError(err)
	return resp
}

func (s *PortalE2ESuite) get(path string) *http.Response {
	resp, err := s.client.Get(s.baseURL + path)
	s.Require().NoError(err)
	return resp
}

func (s *PortalE2ESuite) decode(resp *http.Response, out interface{}) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

func (s *PortalE2ESuite) TestOrderWorkflow() {
	// browse the catalogue
	resp := s.get("/catalogue")
	s.Equal(http.StatusOK, resp.StatusCode)
	var listing map[string]interface{}
	s.decode(resp, &listing)
	s.EqualValues(2, listing["total"])

	// fill the basket
	resp = s.postForm("/basket/add", url.Values{"part_number": {"AB-100"}, "quantity": {"2"}})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.postForm("/basket/add", url.Values{"part_number": {"AB-200"}})
	s.Equal(http.StatusOK, resp.StatusCode)
	var basket map[string]interface{}
	s.decode(resp, &basket)
	s.EqualValues(3, basket["total_quantity"])

	// submit the parts order
	resp = s.postForm("/orders/submit", url.Values{
		"email_user": {"j.smith"},
		"source":     {"parts"},
		"comments":   {"E2E order"},
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	var submitted map[string]interface{}
	s.decode(resp, &submitted)
	s.Equal("j.smith@servitech.co.uk", submitted["engineer_email"])

	// the submit clears the basket
	resp = s.get("/basket")
	s.decode(resp, &basket)
	s.EqualValues(0, basket["total_quantity"])

	// the order shows up in the reorder history
	resp = s.get("/orders/recent?email_user=j.smith&kind=parts")
	s.Equal(http.StatusOK, resp.StatusCode)
	var recent map[string]interface{}
	s.decode(resp, &recent)
	s.EqualValues(1, recent["total"])

	// and everything is outstanding on the my-orders view
	resp = s.get("/my-orders?email=j.smith@servitech.co.uk")
	s.Equal(http.StatusOK, resp.StatusCode)
	var view map[string]interface{}
	s.decode(resp, &view)
	active := view["active"].([]interface{})
	s.Len(active, 2)
}

func (s *PortalE2ESuite) TestStocktakeWorkflow() {
	// open a draft sheet
	resp := s.postForm("/stocktake/open", url.Values{"email_user": {"k.jones"}})
	s.Equal(http.StatusOK, resp.StatusCode)
	var sheet map[string]interface{}
	s.decode(resp, &sheet)
	stocktakeID := sheet["id"].(string)
	s.NotEmpty(stocktakeID)

	// count some parts
	resp = s.postForm("/stocktake/items", url.Values{
		"stocktake_id": {stocktakeID},
		"part_number":  {"AB-100"},
		"quantity":     {"5"},
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// submit without the confirmation phrase fails
	resp = s.postForm("/stocktake/submit", url.Values{
		"stocktake_id": {stocktakeID},
		"acknowledge":  {"true"},
		"confirm_text": {"yes"},
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// a proper submit locks the sheet and queues both notifications
	resp = s.postForm("/stocktake/submit", url.Values{
		"stocktake_id": {stocktakeID},
		"acknowledge":  {"true"},
		"confirm_text": {"confirm"},
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	s.Equal(2, s.enqueuer.count())

	// edits are rejected once locked
	resp = s.postForm("/stocktake/items", url.Values{
		"stocktake_id": {stocktakeID},
		"part_number":  {"AB-200"},
		"quantity":     {"1"},
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// the leader area is closed until login
	resp = s.get("/leader/stocktakes")
	s.Equal(http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = s.postForm("/leader/login", url.Values{"secret": {leaderSecret}})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.get("/leader/stocktakes")
	s.Equal(http.StatusOK, resp.StatusCode)
	var overview map[string]interface{}
	s.decode(resp, &overview)
	s.EqualValues(1, overview["submitted"])

	// master totals export carries the counted part
	resp = s.get("/leader/export/totals.csv")
	s.Equal(http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.Require().NoError(err)
	s.True(strings.Contains(string(body), "AB-100"))
}

func TestPortalE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	suite.Run(t, new(PortalE2ESuite))
}
