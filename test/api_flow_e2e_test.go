package test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAccountToWardrobeFlow walks the happy path end to end: create an
// account, sign in, inspect the profile, build up a wardrobe, and confirm
// another account cannot touch it.
func TestAccountToWardrobeFlow(t *testing.T) {
	app := newTestApp(t)

	// Register
	resp := jsonRequest(t, app, http.MethodPost, "/register", "", fiber.Map{
		"email":    "a@x.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	profile := decode(t, resp)
	assert.Equal(t, "a@x.com", profile["email"])
	assert.Equal(t, "unspecified", profile["body_type"])
	assert.Equal(t, "casual", profile["lifestyle"])
	assert.Equal(t, "medium", profile["comfort_preference"])
	assert.Equal(t, false, profile["onboarding_complete"])

	// Login
	resp = formLogin(t, app, "a@x.com", "pw123456")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tokenBody := decode(t, resp)
	require.Equal(t, "bearer", tokenBody["token_type"])
	token, _ := tokenBody["access_token"].(string)
	require.NotEmpty(t, token)

	// The token resolves to the registered account
	resp = jsonRequest(t, app, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@x.com", decode(t, resp)["email"])

	// Add a wardrobe item
	resp = jsonRequest(t, app, http.MethodPost, "/wardrobe/items", token, fiber.Map{
		"name":     "Jacket",
		"category": "outerwear",
		"color":    "blue",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	item := decode(t, resp)
	assert.Equal(t, "Jacket", item["name"])
	itemID := int(item["id"].(float64))

	// The list holds exactly that item
	resp = jsonRequest(t, app, http.MethodGet, "/wardrobe/items", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := decodeList(t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "Jacket", items[0]["name"])
	assert.Equal(t, "outerwear", items[0]["category"])
	assert.Equal(t, "blue", items[0]["color"])

	// A second account cannot modify it
	resp = jsonRequest(t, app, http.MethodPost, "/register", "", fiber.Map{
		"email":    "b@x.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = formLogin(t, app, "b@x.com", "pw123456")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	otherToken, _ := decode(t, resp)["access_token"].(string)
	require.NotEmpty(t, otherToken)

	resp = jsonRequest(t, app, http.MethodPut, fmt.Sprintf("/wardrobe/items/%d", itemID), otherToken, fiber.Map{
		"name":     "Hijacked Jacket",
		"category": "outerwear",
		"color":    "blue",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// The owner still sees the original
	resp = jsonRequest(t, app, http.MethodGet, "/wardrobe/items", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items = decodeList(t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "Jacket", items[0]["name"])
}

// TestOnboardingFlow covers the profile lifecycle after registration.
func TestOnboardingFlow(t *testing.T) {
	app := newTestApp(t)

	resp := jsonRequest(t, app, http.MethodPost, "/register", "", fiber.Map{
		"email":    "onboard@x.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = formLogin(t, app, "onboard@x.com", "pw123456")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := decode(t, resp)["access_token"].(string)

	resp = jsonRequest(t, app, http.MethodPut, "/me/profile", token, fiber.Map{
		"body_type":           "athletic",
		"lifestyle":           "active",
		"comfort_preference":  "loose",
		"onboarding_complete": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	profile := decode(t, resp)
	assert.Equal(t, "athletic", profile["body_type"])
	assert.Equal(t, true, profile["onboarding_complete"])

	// Changes persist across requests
	resp = jsonRequest(t, app, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile = decode(t, resp)
	assert.Equal(t, "athletic", profile["body_type"])
	assert.Equal(t, "active", profile["lifestyle"])
	assert.Equal(t, "loose", profile["comfort_preference"])
}
