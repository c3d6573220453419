package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"holiday-poster-funnel/internal/catalog"
	"holiday-poster-funnel/internal/checkout"
	"holiday-poster-funnel/internal/config"
	"holiday-poster-funnel/internal/models"
	"holiday-poster-funnel/internal/storage"
)

const (
	defaultSuccessURL = "https://yourdomain.com/thank-you?orderId="
	defaultCancelURL  = "https://yourdomain.com/holiday-poster?canceled=1"
)

type OrderHandler struct {
	cfg            *config.Config
	store          *storage.Store
	checkoutClient *checkout.Client
}

// NewOrderHandler wires the intake endpoint. checkoutClient may be nil
// when no payment secret is configured; orders are then acknowledged
// without a checkout session.
func NewOrderHandler(cfg *config.Config, store *storage.Store, checkoutClient *checkout.Client) *OrderHandler {
	return &OrderHandler{
		cfg:            cfg,
		store:          store,
		checkoutClient: checkoutClient,
	}
}

// Create handles POST /api/holiday-movie-poster/order. The uploaded photo
// is stored before field validation runs, so a rejected submission can
// leave an orphaned upload; the two disk writes are not transactional.
func (h *OrderHandler) Create(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	var publicPath string
	fileStored := false
	if fh, err := c.FormFile("file"); err == nil {
		src, err := fh.Open()
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		_, publicPath, err = h.store.SaveUpload(fh.Filename, src)
		src.Close()
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		fileStored = true
	}

	name := c.PostForm("name")
	email := c.PostForm("email")
	vibe := c.PostForm("vibe")
	tier := c.PostForm("tier")
	notes := c.PostForm("notes")

	if name == "" || email == "" || vibe == "" || tier == "" {
		c.String(http.StatusBadRequest, "Missing required fields.")
		return
	}
	if !fileStored {
		c.String(http.StatusBadRequest, "Image file required.")
		return
	}

	orderID := storage.NewOrderID()
	order := &models.Order{
		OrderID:   orderID,
		CreatedAt: time.Now().UTC(),
		Name:      name,
		Email:     email,
		Phone:     c.PostForm("phone"),
		Address:   c.PostForm("address"),
		Vibe:      vibe,
		Tier:      tier,
		Notes:     notes,
		Quantity:  coerceQuantity(c.PostForm("quantity")),
		Total:     coerceTotal(c.PostForm("total")),
		FilePath:  publicPath,
		Status:    models.StatusPendingProof,
	}

	if err := h.store.WriteOrder(order); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	if h.checkoutClient != nil {
		if priceID := h.cfg.PriceID(catalog.Tier(tier)); priceID != "" {
			session, err := h.checkoutClient.CreateSession(checkout.SessionParams{
				PriceID:       priceID,
				Quantity:      order.Quantity,
				CustomerEmail: email,
				SuccessURL:    h.successURL(orderID),
				CancelURL:     h.cancelURL(),
				Metadata: map[string]string{
					"orderId": orderID,
					"vibe":    vibe,
					"tier":    tier,
					"name":    name,
					"notes":   notes,
				},
			})
			if err != nil {
				c.String(http.StatusInternalServerError, err.Error())
				return
			}
			c.JSON(http.StatusOK, models.CheckoutRedirect{CheckoutURL: session.URL})
			return
		}
	}

	c.JSON(http.StatusOK, models.OrderAck{OK: true, OrderID: orderID})
}

// Get handles GET /api/holiday-movie-poster/order/:order_id, returning the
// stored record verbatim. Lookup is direct by id only.
func (h *OrderHandler) Get(c *gin.Context) {
	data, err := h.store.ReadOrder(c.Param("order_id"))
	if err != nil {
		c.String(http.StatusNotFound, "Order not found.")
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (h *OrderHandler) successURL(orderID string) string {
	if h.cfg.CheckoutSuccessURL != "" {
		return h.cfg.CheckoutSuccessURL
	}
	return defaultSuccessURL + orderID
}

func (h *OrderHandler) cancelURL() string {
	if h.cfg.CheckoutCancelURL != "" {
		return h.cfg.CheckoutCancelURL
	}
	return defaultCancelURL
}

func coerceQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func coerceTotal(raw string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return n
}
