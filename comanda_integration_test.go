package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mvegadev/comanda/controllers"
	"github.com/mvegadev/comanda/models"
	"github.com/mvegadev/comanda/repository"
	"github.com/mvegadev/comanda/router"
	"github.com/mvegadev/comanda/usecases"
	"github.com/mvegadev/comanda/utils"
	"github.com/mvegadev/comanda/ws"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	utils.InitJWT()
	os.Exit(m.Run())
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupServer wires the whole stack against an in-memory sqlite database.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	hub := ws.NewHub()
	repos := repository.New(db)
	clock := models.SystemClock()

	return router.SetupRouter(router.Controllers{
		Users:    controllers.NewUserController(usecases.NewUserUseCases(repos.Users, hub, clock)),
		Tables:   controllers.NewTableController(usecases.NewTableUseCases(repos.Tables, hub, clock)),
		Menu:     controllers.NewMenuController(usecases.NewMenuUseCases(repos.Menu, hub, clock)),
		Orders:   controllers.NewOrderController(usecases.NewOrderUseCases(repos.Orders, repos.Tables, repos.Menu, hub, clock)),
		Payments: controllers.NewPaymentController(usecases.NewPaymentUseCases(repos.Payments, repos.Orders, repos.Tables, hub, clock)),
		WS:       controllers.NewWSController(hub),
	})
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decode(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// loginAs registers and logs in a user, returning their JWT.
func loginAs(t *testing.T, r *gin.Engine, role models.UserRole) string {
	t.Helper()

	email := fmt.Sprintf("%s@example.com", role)
	w, _ := do(t, r, http.MethodPost, "/register", "", gin.H{
		"name":     string(role),
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := do(t, r, http.MethodPost, "/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, env, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func seedTable(t *testing.T, r *gin.Engine, admin string, number int) models.Table {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/tables", admin, gin.H{"number": number, "capacity": 4, "location": "main"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var table models.Table
	decode(t, env, &table)
	return table
}

func seedMenuItem(t *testing.T, r *gin.Engine, admin, name string, price float64) models.MenuItem {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/menu", admin, gin.H{
		"name": name, "price": price, "category": models.CategoryMainCourse,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item models.MenuItem
	decode(t, env, &item)
	return item
}

// TestFullServiceFlow walks the happy path: seat an order, cook it, deliver
// it, settle the bill with change and put the table back in service.
func TestFullServiceFlow(t *testing.T) {
	r := setupServer(t)
	admin := loginAs(t, r, models.RoleAdmin)
	waiter := loginAs(t, r, models.RoleWaiter)
	chef := loginAs(t, r, models.RoleChef)

	table := seedTable(t, r, admin, 1)
	steak := seedMenuItem(t, r, admin, "Steak", 10)
	juice := seedMenuItem(t, r, admin, "Juice", 5)

	// waiter opens the order; it auto-confirms and occupies the table
	w, env := do(t, r, http.MethodPost, "/orders", waiter, gin.H{
		"table_id": table.ID,
		"items": []gin.H{
			{"menu_item_id": steak.ID, "quantity": 2},
			{"menu_item_id": juice.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order models.Order
	decode(t, env, &order)
	assert.Equal(t, models.OrderConfirmed, order.Status)
	assert.Equal(t, 25.0, order.Total())

	w, env = do(t, r, http.MethodGet, "/tables/"+table.ID, waiter, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var seated models.Table
	decode(t, env, &seated)
	assert.Equal(t, models.TableOccupied, seated.Status)

	// a second order on the same table is rejected
	w, _ = do(t, r, http.MethodPost, "/orders", waiter, gin.H{
		"table_id": table.ID,
		"items":    []gin.H{{"menu_item_id": juice.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// kitchen pipeline
	w, _ = do(t, r, http.MethodPost, "/orders/"+order.ID+"/prepare", chef, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, _ = do(t, r, http.MethodPost, "/orders/"+order.ID+"/ready", chef, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, env = do(t, r, http.MethodPost, "/orders/"+order.ID+"/deliver", waiter, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var delivered models.Order
	decode(t, env, &delivered)
	assert.Equal(t, models.OrderDelivered, delivered.Status)
	require.NotNil(t, delivered.DeliveredAt)

	// delivery released the table for cleaning
	w, env = do(t, r, http.MethodGet, "/tables/"+table.ID, waiter, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cleaning models.Table
	decode(t, env, &cleaning)
	assert.Equal(t, models.TableCleaning, cleaning.Status)
	assert.Nil(t, cleaning.CurrentOrderID)

	// settle the bill in two installments, overpaying the second
	w, env = do(t, r, http.MethodPost, "/payments", waiter, gin.H{
		"order_id": order.ID, "amount": 25.0, "method": models.PaymentCash,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var payment models.Payment
	decode(t, env, &payment)

	w, env = do(t, r, http.MethodPost, "/payments/"+payment.ID+"/process", waiter, gin.H{"amount": 10.0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var partial models.Payment
	decode(t, env, &partial)
	assert.Equal(t, models.PaymentPartial, partial.Status)

	w, env = do(t, r, http.MethodPost, "/payments/"+payment.ID+"/process", waiter, gin.H{"amount": 20.0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var paid models.Payment
	decode(t, env, &paid)
	assert.Equal(t, models.PaymentPaid, paid.Status)
	assert.Equal(t, 5.0, paid.Change())

	// cleaning crew puts the table back in service
	w, env = do(t, r, http.MethodPost, "/tables/"+table.ID+"/available", waiter, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var back models.Table
	decode(t, env, &back)
	assert.Equal(t, models.TableAvailable, back.Status)
}

// TestCancelFlow verifies cancelling mid-preparation frees the table and
// records the reason.
func TestCancelFlow(t *testing.T) {
	r := setupServer(t)
	admin := loginAs(t, r, models.RoleAdmin)
	waiter := loginAs(t, r, models.RoleWaiter)
	chef := loginAs(t, r, models.RoleChef)

	table := seedTable(t, r, admin, 2)
	steak := seedMenuItem(t, r, admin, "Steak", 10)

	w, env := do(t, r, http.MethodPost, "/orders", waiter, gin.H{
		"table_id": table.ID,
		"items":    []gin.H{{"menu_item_id": steak.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order models.Order
	decode(t, env, &order)

	w, _ = do(t, r, http.MethodPost, "/orders/"+order.ID+"/prepare", chef, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodPost, "/orders/"+order.ID+"/cancel", waiter, gin.H{"reason": "guest left"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cancelled models.Order
	decode(t, env, &cancelled)
	assert.Equal(t, models.OrderCancelled, cancelled.Status)
	assert.Contains(t, cancelled.Notes, "guest left")

	w, env = do(t, r, http.MethodGet, "/tables/"+table.ID, waiter, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var table2 models.Table
	decode(t, env, &table2)
	assert.Equal(t, models.TableCleaning, table2.Status)

	// a cancelled order cannot be delivered
	w, _ = do(t, r, http.MethodPost, "/orders/"+order.ID+"/deliver", waiter, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
}

// TestErrorStatusMapping spot-checks the domain error to HTTP status mapping.
func TestErrorStatusMapping(t *testing.T) {
	r := setupServer(t)
	admin := loginAs(t, r, models.RoleAdmin)
	waiter := loginAs(t, r, models.RoleWaiter)

	table := seedTable(t, r, admin, 3)
	steak := seedMenuItem(t, r, admin, "Steak", 10)

	// unauthenticated
	w, _ := do(t, r, http.MethodGet, "/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// chef-only route with a waiter token
	w, _ = do(t, r, http.MethodPost, "/orders/any/prepare", waiter, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// unknown order
	w, _ = do(t, r, http.MethodGet, "/orders/missing", waiter, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// empty order
	w, _ = do(t, r, http.MethodPost, "/orders", waiter, gin.H{
		"table_id": table.ID, "items": []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// payment before delivery
	w, env := do(t, r, http.MethodPost, "/orders", waiter, gin.H{
		"table_id": table.ID,
		"items":    []gin.H{{"menu_item_id": steak.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order models.Order
	decode(t, env, &order)

	w, _ = do(t, r, http.MethodPost, "/payments", waiter, gin.H{
		"order_id": order.ID, "amount": 10.0, "method": models.PaymentCash,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	// duplicate table number
	w, _ = do(t, r, http.MethodPost, "/tables", admin, gin.H{"number": 3, "capacity": 2})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// bad credentials
	w, _ = do(t, r, http.MethodPost, "/login", "", gin.H{
		"email": "admin@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
