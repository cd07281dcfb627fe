// Package sslcommerz is a thin client for the SSLCommerz hosted-checkout
// gateway: session initiation and server-side validation of callbacks. The
// gateway is untrusted until a callback has been re-validated through
// Validate.
package sslcommerz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	sandboxBaseURL = "https://sandbox.sslcommerz.com"
	liveBaseURL    = "https://securepay.sslcommerz.com"

	initPath     = "/gwprocess/v4/api.php"
	validatePath = "/validator/api/validationserverAPI.php"
)

// Validation statuses the gateway reports for a settled transaction.
const (
	StatusValid     = "VALID"
	StatusValidated = "VALIDATED"
	StatusSuccess   = "SUCCESS"
)

type Config struct {
	StoreID       string
	StorePassword string
	Live          bool
	Timeout       time.Duration // applied to every gateway call
}

type InitRequest struct {
	TotalAmount     string
	Currency        string
	TransactionID   string
	SuccessURL      string
	FailURL         string
	CancelURL       string
	IPNURL          string
	ProductName     string
	ProductCategory string
	ProductProfile  string
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	CustomerCity    string
	CustomerState   string
	CustomerPost    string
	CustomerCountry string
	CustomerPhone   string
	ShippingMethod  string
}

type InitResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

type ValidationResponse struct {
	Status      string `json:"status"`
	TranDate    string `json:"tran_date"`
	TranID      string `json:"tran_id"`
	ValID       string `json:"val_id"`
	Amount      string `json:"amount"`
	StoreAmount string `json:"store_amount"`
	Currency    string `json:"currency"`
	BankTranID  string `json:"bank_tran_id"`
	CardType    string `json:"card_type"`
	CardNo      string `json:"card_no"`
	CardIssuer  string `json:"card_issuer"`
	CardBrand   string `json:"card_brand"`
	RiskLevel   string `json:"risk_level"`
	RiskTitle   string `json:"risk_title"`
}

type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.StoreID == "" || cfg.StorePassword == "" {
		return nil, errors.New("missing SSLCommerz credentials")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	baseURL := sandboxBaseURL
	if cfg.Live {
		baseURL = liveBaseURL
	}
	return &Client{
		cfg:     cfg,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// Init opens a checkout session. A non-SUCCESS status is returned to the
// caller, not treated as a transport error.
func (c *Client) Init(ctx context.Context, req InitRequest) (*InitResponse, error) {
	form := url.Values{}
	form.Set("store_id", c.cfg.StoreID)
	form.Set("store_passwd", c.cfg.StorePassword)
	form.Set("total_amount", req.TotalAmount)
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TransactionID)
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("ipn_url", req.IPNURL)
	form.Set("product_name", req.ProductName)
	form.Set("product_category", req.ProductCategory)
	form.Set("product_profile", req.ProductProfile)
	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)
	form.Set("cus_add1", req.CustomerAddress)
	form.Set("cus_city", req.CustomerCity)
	form.Set("cus_state", req.CustomerState)
	form.Set("cus_postcode", req.CustomerPost)
	form.Set("cus_country", req.CustomerCountry)
	form.Set("cus_phone", req.CustomerPhone)
	form.Set("shipping_method", req.ShippingMethod)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+initPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sslcommerz init: %w", err)
	}
	defer resp.Body.Close()

	var out InitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("sslcommerz init: decode response: %w", err)
	}
	return &out, nil
}

// Validate re-checks a transaction server side using the validation id the
// gateway supplied in its callback.
func (c *Client) Validate(ctx context.Context, validationID string) (*ValidationResponse, error) {
	query := url.Values{}
	query.Set("val_id", validationID)
	query.Set("store_id", c.cfg.StoreID)
	query.Set("store_passwd", c.cfg.StorePassword)
	query.Set("format", "json")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+validatePath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sslcommerz validate: %w", err)
	}
	defer resp.Body.Close()

	var out ValidationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("sslcommerz validate: decode response: %w", err)
	}
	return &out, nil
}
