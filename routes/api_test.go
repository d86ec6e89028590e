package routes

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationFlow(t *testing.T) {
	r, _ := setupRouter(t)

	// First user is promoted to admin regardless of the requested role.
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		map[string]interface{}{"username": "owner", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "admin", body["role"])
	assert.NotEmpty(t, body["token"])
	adminToken := body["token"].(string)

	// Anonymous registration is closed once a user exists.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		map[string]interface{}{"username": "crew1", "password": "secret1"})
	require.Equal(t, http.StatusForbidden, w.Code)

	// An admin may create users with an explicit role.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken,
		map[string]interface{}{"username": "crew1", "password": "secret1", "role": "field"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "field", decodeBody(t, w)["role"])

	// Role defaults to dispatcher when the admin leaves it unset.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken,
		map[string]interface{}{"username": "crew2", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "dispatcher", decodeBody(t, w)["role"])

	// Duplicate usernames conflict.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", adminToken,
		map[string]interface{}{"username": "crew1", "password": "secret1"})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		map[string]interface{}{"username": "owner", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		map[string]interface{}{"username": "owner", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "owner", body["username"])
	assert.Equal(t, "admin", body["role"])
	assert.NotEmpty(t, body["token"])

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		map[string]interface{}{"username": "owner", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		map[string]interface{}{"username": "ghost", "password": "secret1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCustomerEndToEnd(t *testing.T) {
	r, _ := setupRouter(t)
	token := tokenFor(t, "dispatcher")

	// create
	w := doJSON(t, r, http.MethodPost, "/api/customers", token,
		map[string]interface{}{"name": "Alice"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)
	assert.Equal(t, "Alice", created["name"])
	assert.Equal(t, "0.00", created["totalSpent"])
	assert.Equal(t, "Residential", created["type"])
	id := int(created["id"].(float64))
	require.NotZero(t, id)

	path := "/api/customers/" + strconv.Itoa(id)

	// patch keeps unspecified fields
	w = doJSON(t, r, http.MethodPatch, path, token,
		map[string]interface{}{"phone": "555-1111"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := decodeBody(t, w)
	assert.Equal(t, "Alice", patched["name"])
	assert.Equal(t, "555-1111", patched["phone"])

	// list includes the record
	w = doJSON(t, r, http.MethodGet, "/api/customers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Alice"`)

	// delete, then 404 on re-read and re-delete
	w = doJSON(t, r, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, r, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerValidation(t *testing.T) {
	r, _ := setupRouter(t)
	token := tokenFor(t, "admin")

	w := doJSON(t, r, http.MethodPost, "/api/customers", token, map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/customers", token,
		map[string]interface{}{"name": "Bob", "type": "Industrial"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "type")

	// Patch to explicit null clears; absent field stays.
	w = doJSON(t, r, http.MethodPost, "/api/customers", token,
		map[string]interface{}{"name": "Carol", "phone": "555-2222", "city": "Austin"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decodeBody(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPatch, "/api/customers/"+strconv.Itoa(id), token,
		map[string]interface{}{"phone": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Nil(t, body["phone"])
	assert.Equal(t, "Austin", body["city"])
}

func TestQuoteTotalVerification(t *testing.T) {
	r, _ := setupRouter(t)
	token := tokenFor(t, "dispatcher")

	// Recognized items with the right total pass.
	w := doJSON(t, r, http.MethodPost, "/api/quotes", token, map[string]interface{}{
		"customerName": "Alice",
		"items":        []string{"1/2 Truck Load", "Mattress"},
		"total":        "475.00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "475.00", decodeBody(t, w)["total"])

	// Recognized items with a wrong total are rejected.
	w = doJSON(t, r, http.MethodPost, "/api/quotes", token, map[string]interface{}{
		"customerName": "Alice",
		"items":        []string{"1/2 Truck Load", "Mattress"},
		"total":        "300.00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "475.00")

	// Custom items cannot be re-derived and are stored as submitted.
	w = doJSON(t, r, http.MethodPost, "/api/quotes", token, map[string]interface{}{
		"customerName": "Bob",
		"items":        []string{"Hot tub removal"},
		"total":        "275.00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestNotificationCounts(t *testing.T) {
	r, _ := setupRouter(t)
	admin := tokenFor(t, "admin")
	field := tokenFor(t, "field")

	for _, title := range []string{"one", "two"} {
		w := doJSON(t, r, http.MethodPost, "/api/notifications", admin,
			map[string]interface{}{"type": "info", "title": title, "message": "m"})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["read"])
	}

	// Any role may mark all read; the response carries the count.
	w := doJSON(t, r, http.MethodPost, "/api/notifications/read-all", field, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decodeBody(t, w)["updated"])

	w = doJSON(t, r, http.MethodDelete, "/api/notifications", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decodeBody(t, w)["deleted"])
}

func TestTransactionsAreAppendDeleteOnly(t *testing.T) {
	r, _ := setupRouter(t)
	token := tokenFor(t, "dispatcher")

	w := doJSON(t, r, http.MethodPost, "/api/transactions", token, map[string]interface{}{
		"description": "Garage cleanout",
		"amount":      "450.00",
		"type":        "income",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := int(decodeBody(t, w)["id"].(float64))

	// No PATCH route exists for transactions.
	w = doJSON(t, r, http.MethodPatch, "/api/transactions/"+strconv.Itoa(id), token,
		map[string]interface{}{"description": "edited"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/transactions/"+strconv.Itoa(id), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestPricingTables(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/pricing", tokenFor(t, "field"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Contains(t, body, "tiers")
	require.Contains(t, body, "surcharges")
	assert.Contains(t, w.Body.String(), `"800.00"`)
	assert.Contains(t, w.Body.String(), `"Upstairs Labor"`)
}

func TestSendSMS(t *testing.T) {
	r, _ := setupRouter(t)
	token := tokenFor(t, "dispatcher")

	w := doJSON(t, r, http.MethodPost, "/api/send-sms", token,
		map[string]interface{}{"phone": "+15551234567", "message": "On our way"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = doJSON(t, r, http.MethodPost, "/api/send-sms", token,
		map[string]interface{}{"phone": "+15551234567"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
