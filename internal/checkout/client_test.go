package checkout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holiday-poster-funnel/internal/checkout"
)

func TestCreateSession(t *testing.T) {
	var gotForm map[string]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/checkout/sessions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for key := range r.PostForm {
			gotForm[key] = r.PostForm.Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.example/pay/cs_test_1"}`))
	}))
	defer server.Close()

	client := checkout.NewClient(server.URL, "sk_test_abc")
	session, err := client.CreateSession(checkout.SessionParams{
		PriceID:       "price_print",
		Quantity:      2,
		CustomerEmail: "jane@example.com",
		SuccessURL:    "https://shop.example/thank-you?orderId=order_1_2",
		CancelURL:     "https://shop.example/holiday-poster?canceled=1",
		Metadata: map[string]string{
			"orderId": "order_1_2",
			"vibe":    "elf",
			"tier":    "print",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.example/pay/cs_test_1", session.URL)

	assert.Equal(t, "Bearer sk_test_abc", gotAuth)
	assert.Equal(t, "payment", gotForm["mode"])
	assert.Equal(t, "price_print", gotForm["line_items[0][price]"])
	assert.Equal(t, "2", gotForm["line_items[0][quantity]"])
	assert.Equal(t, "jane@example.com", gotForm["customer_email"])
	assert.Equal(t, "https://shop.example/thank-you?orderId=order_1_2", gotForm["success_url"])
	assert.Equal(t, "https://shop.example/holiday-poster?canceled=1", gotForm["cancel_url"])
	assert.Equal(t, "order_1_2", gotForm["metadata[orderId]"])
	assert.Equal(t, "elf", gotForm["metadata[vibe]"])
	assert.Equal(t, "print", gotForm["metadata[tier]"])
}

func TestCreateSessionProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"No such price"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := checkout.NewClient(server.URL, "sk_test_abc")
	_, err := client.CreateSession(checkout.SessionParams{PriceID: "price_missing", Quantity: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "No such price")
}

func TestCreateSessionMissingRedirectURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"cs_test_2"}`))
	}))
	defer server.Close()

	client := checkout.NewClient(server.URL, "sk_test_abc")
	_, err := client.CreateSession(checkout.SessionParams{PriceID: "price_print", Quantity: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no redirect url")
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	// Only verifies construction; no request is made against the live API.
	client := checkout.NewClient("", "sk_test_abc")
	assert.NotNil(t, client)
}
