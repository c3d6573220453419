// Package funnel is the order-funnel client: it holds the form state a
// customer fills in (vibe, photo, tier, contact details), validates it,
// computes the running total, and submits the finished order as one
// multipart POST to the intake endpoint.
package funnel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"holiday-poster-funnel/internal/catalog"
	"holiday-poster-funnel/internal/models"
)

// SuccessMessage is shown after a submission that did not redirect to
// hosted checkout.
const SuccessMessage = "Order received! We'll email you your proof within 48 hours."

// File is a photo the customer selected, with its declared type and size.
type File struct {
	Name string
	Type string
	Data []byte
}

// Result is the outcome of a successful submission: either a checkout URL
// the caller should navigate to, or a confirmation message and order id.
type Result struct {
	CheckoutURL string
	OrderID     string
	Message     string
}

// Funnel is the form state for one order. It is not safe for concurrent
// mutation; the in-flight flag only guards against re-entrant submission.
type Funnel struct {
	endpoint   string
	httpClient *http.Client

	vibe    catalog.Vibe
	vibeSet bool
	tier    catalog.Tier
	file    *File

	name     string
	email    string
	phone    string
	address  string
	notes    string
	quantity int

	inFlight atomic.Bool
	errMsg   string
	success  string
}

// New creates a funnel targeting the intake endpoint URL. No timeout is
// set on the client; a hung request keeps the funnel in-flight.
func New(endpoint string) *Funnel {
	return &Funnel{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		tier:       catalog.TierDigital,
		quantity:   1,
	}
}

func (f *Funnel) SelectVibe(v catalog.Vibe) {
	f.vibe = v
	f.vibeSet = true
}

func (f *Funnel) SelectTier(t catalog.Tier) {
	f.tier = t
}

// AttachFile validates the declared type and size and stores the photo as
// the pending upload, replacing any previous selection. It reports whether
// the file was accepted; on rejection the funnel error is set.
func (f *Funnel) AttachFile(name, mimeType string, data []byte) bool {
	f.errMsg = ""
	if !catalog.Accepts(mimeType) {
		f.errMsg = "Please upload a JPG/PNG/WebP/HEIC image."
		return false
	}
	if len(data) > catalog.MaxUploadBytes {
		f.errMsg = fmt.Sprintf("Max file size is %dMB.", catalog.MaxUploadBytes>>20)
		return false
	}
	f.file = &File{Name: name, Type: mimeType, Data: data}
	return true
}

func (f *Funnel) RemoveFile() {
	f.file = nil
}

// SetQuantity coerces the raw input to a positive integer, falling back
// to 1 for anything absent, non-numeric, zero, or negative.
func (f *Funnel) SetQuantity(raw string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		n = 1
	}
	f.quantity = n
}

func (f *Funnel) SetName(v string)    { f.name = v }
func (f *Funnel) SetEmail(v string)   { f.email = v }
func (f *Funnel) SetPhone(v string)   { f.phone = v }
func (f *Funnel) SetAddress(v string) { f.address = v }
func (f *Funnel) SetNotes(v string)   { f.notes = v }

func (f *Funnel) Quantity() int { return f.quantity }

func (f *Funnel) UnitPrice() decimal.Decimal {
	return catalog.Price(f.tier)
}

func (f *Funnel) Total() decimal.Decimal {
	return catalog.Total(f.tier, f.quantity)
}

func (f *Funnel) Err() string { return f.errMsg }

func (f *Funnel) Success() string { return f.success }

func (f *Funnel) InFlight() bool { return f.inFlight.Load() }

// Submit validates the preconditions and posts the order. Precondition
// failures set the funnel error and return without any network call. On
// success the returned Result carries either a checkout redirect URL or
// the confirmation message and order id.
func (f *Funnel) Submit(ctx context.Context) (*Result, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return nil, errors.New("submission already in progress")
	}
	defer f.inFlight.Store(false)

	f.errMsg = ""
	f.success = ""

	switch {
	case !f.vibeSet:
		f.errMsg = "Pick your movie vibe."
	case f.file == nil:
		f.errMsg = "Please upload a family photo."
	case f.email == "" || f.name == "":
		f.errMsg = "Name and email are required."
	}
	if f.errMsg != "" {
		return nil, errors.New(f.errMsg)
	}

	body, contentType, err := f.buildForm()
	if err != nil {
		f.errMsg = err.Error()
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", f.endpoint, body)
	if err != nil {
		f.errMsg = err.Error()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.errMsg = err.Error()
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		f.errMsg = err.Error()
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(respBody))
		if msg == "" {
			msg = "Order failed"
		}
		f.errMsg = msg
		return nil, errors.New(msg)
	}

	var result models.SubmitResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		f.errMsg = err.Error()
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(respBody))
	}

	if result.CheckoutURL != "" {
		return &Result{CheckoutURL: result.CheckoutURL, OrderID: result.OrderID}, nil
	}

	f.success = SuccessMessage
	return &Result{OrderID: result.OrderID, Message: SuccessMessage}, nil
}

func (f *Funnel) buildForm() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"name":     f.name,
		"email":    f.email,
		"phone":    f.phone,
		"address":  f.address,
		"vibe":     string(f.vibe),
		"tier":     string(f.tier),
		"notes":    f.notes,
		"quantity": strconv.Itoa(f.quantity),
		"total":    f.Total().String(),
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	part, err := w.CreateFormFile("file", f.file.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(f.file.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write file part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
