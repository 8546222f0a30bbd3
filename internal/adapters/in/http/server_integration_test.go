package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rugops/cmd"
	httpadapter "rugops/internal/adapters/in/http"
	"rugops/internal/adapters/out/postgres/orderrepo"
	"rugops/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ServerIntegrationTestSuite drives the JSON API against a real PostgreSQL
// instance, verifying that mutations respond with the updated order view.
type ServerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	echo      *echo.Echo
}

func (suite *ServerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))

	root := cmd.NewCompositionRoot(cmd.Config{}, db)
	server := httpadapter.NewServer(
		httpadapter.CommandHandlers{
			CreateOrder:            root.CreateCreateOrderCommandHandler(),
			UpdateOrderContact:     root.CreateUpdateOrderContactCommandHandler(),
			UpdateItemDetails:      root.CreateUpdateItemDetailsCommandHandler(),
			SetRepairEstimate:      root.CreateSetRepairEstimateCommandHandler(),
			FlagItemRepair:         root.CreateFlagItemRepairCommandHandler(),
			MarkItemReady:          root.CreateMarkItemReadyCommandHandler(),
			MarkItemDelivered:      root.CreateMarkItemDeliveredCommandHandler(),
			SetApprovalRequirement: root.CreateSetApprovalRequirementCommandHandler(),
			DecideApproval:         root.CreateDecideApprovalCommandHandler(),
			PurgeOrders:            root.CreatePurgeOrdersCommandHandler(),
			MigrateOrders:          root.CreateMigrateOrdersCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetAllOrders:       root.CreateGetAllOrdersQueryHandler(),
			GetOrder:           root.CreateGetOrderQueryHandler(),
			GetDeliveryReady:   root.CreateGetDeliveryReadyOrdersQueryHandler(),
			GetNextOrderID:     root.CreateGetNextOrderIDQueryHandler(),
			GetPendingApproval: root.CreateGetPendingApprovalOrdersQueryHandler(),
			PlanRoute:          root.CreatePlanRouteQueryHandler(),
		},
	)

	suite.echo = echo.New()
	server.RegisterRoutes(suite.echo)
}

func (suite *ServerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE items, orders").Error)
}

func (suite *ServerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ServerIntegrationTestSuite) request(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerIntegrationTestSuite) decodeOrder(rec *httptest.ResponseRecorder) queries.OrderView {
	var view queries.OrderView
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func (suite *ServerIntegrationTestSuite) createOrder(body string) queries.OrderView {
	rec := suite.request(http.MethodPost, "/api/orders", body)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return suite.decodeOrder(rec)
}

func (suite *ServerIntegrationTestSuite) TestCreateOrder_RespondsWithOrderAndItems() {
	view := suite.createOrder(`{
		"clientName": "Amira Haddad",
		"signature": "sig-blob",
		"items": [{"id": "2"}, {"id": "10"}]
	}`)

	suite.Equal("ORD-001", view.ID)
	suite.Equal("Amira Haddad", view.ClientName)
	suite.Equal("not_needed", view.ApprovalStatus)
	suite.Require().Len(view.Items, 2)
	suite.Equal("2", view.Items[0].ID)
	suite.Equal("10", view.Items[1].ID)
	suite.Equal("pending", view.Items[0].Status)
	suite.True(view.GrandTotal.IsZero())
}

func (suite *ServerIntegrationTestSuite) TestUpdateItem_RespondsWithRecomputedOrder() {
	suite.createOrder(`{"clientName": "Amira Haddad", "signature": "sig", "items": [{"id": "1"}]}`)

	rec := suite.request(http.MethodPatch, "/api/orders/ORD-001/items/1",
		`{"length": "2", "width": "3", "material": "Silk", "condition": "Good"}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	view := suite.decodeOrder(rec)
	suite.Require().Len(view.Items, 1)
	suite.Equal("measured", view.Items[0].Status)
	suite.True(view.Items[0].CleaningCost.Equal(decimal.NewFromInt(300)),
		"expected 300, got %s", view.Items[0].CleaningCost)
	suite.True(view.GrandTotal.Equal(decimal.NewFromInt(300)))
}

func (suite *ServerIntegrationTestSuite) TestUpdateOrderContact_RespondsWithUpdatedOrder() {
	suite.createOrder(`{"clientName": "Amira Haddad", "signature": "sig", "items": [{"id": "1"}]}`)

	rec := suite.request(http.MethodPatch, "/api/orders/ORD-001",
		`{"clientName": "Nadia Haddad", "phone": "555-0199"}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	view := suite.decodeOrder(rec)
	suite.Equal("Nadia Haddad", view.ClientName)
	suite.Equal("555-0199", view.Phone)
}

func (suite *ServerIntegrationTestSuite) TestSetApprovalRequirement_RespondsWithEscalatedOrder() {
	suite.createOrder(`{"clientName": "Amira Haddad", "signature": "sig", "items": [{"id": "1"}]}`)

	rec := suite.request(http.MethodPost, "/api/orders/ORD-001/approval-requirement",
		`{"requiresApproval": true}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	view := suite.decodeOrder(rec)
	suite.True(view.RequiresApproval)
	suite.Equal("pending", view.ApprovalStatus)
}

func (suite *ServerIntegrationTestSuite) TestGetOrder_ItemsInIntakeSequence() {
	suite.createOrder(`{
		"clientName": "Amira Haddad",
		"signature": "sig",
		"items": [{"id": "1"}, {"id": "2"}, {"id": "10"}]
	}`)

	rec := suite.request(http.MethodGet, "/api/orders/ORD-001", "")
	suite.Require().Equal(http.StatusOK, rec.Code)

	view := suite.decodeOrder(rec)
	suite.Require().Len(view.Items, 3)
	suite.Equal("1", view.Items[0].ID)
	suite.Equal("2", view.Items[1].ID)
	suite.Equal("10", view.Items[2].ID)
}

func TestServerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServerIntegrationTestSuite))
}
