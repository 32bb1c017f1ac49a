package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"

	"github.com/namefreezers/weather-console/internal/config"
	"github.com/namefreezers/weather-console/internal/weather/types"

	"go.uber.org/zap"
)

// Client queries the OpenWeatherMap current weather endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	lang       string
	httpClient *http.Client
	logger     *zap.Logger
}

// apiError is the body OpenWeatherMap sends with non-2xx statuses.
type apiError struct {
	Cod     any    `json:"cod"` // int or string depending on the endpoint
	Message string `json:"message"`
}

func NewClient(cfg config.WeatherConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s is not set", config.APIKeyVar)
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultWeatherBaseURL
	}
	lang := cfg.Lang
	if lang == "" {
		lang = config.DefaultWeatherLang
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultWeatherTimeout
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		lang:       lang,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// FetchCurrent performs one GET for city and classifies the result.
// Any failure is a *types.FetchError.
func (c *Client) FetchCurrent(ctx context.Context, city string) (types.Record, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return types.Record{}, &types.FetchError{Kind: types.KindRequest, City: city, Message: err.Error(), Err: err}
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("lang", c.lang)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return types.Record{}, &types.FetchError{Kind: types.KindRequest, City: city, Message: err.Error(), Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		fe := classifyTransport(city, err)
		c.logger.Debug("openweathermap request failed",
			zap.String("city", city),
			zap.Stringer("outcome", fe.Kind),
			zap.Error(err),
		)
		return types.Record{}, fe
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fe := classifyStatus(city, resp)
		c.logger.Debug("openweathermap returned error status",
			zap.String("city", city),
			zap.Int("status", resp.StatusCode),
			zap.Stringer("outcome", fe.Kind),
		)
		return types.Record{}, fe
	}

	rec, err := decodeRecord(resp.Body)
	if err != nil {
		fe := classifyBody(city, err)
		c.logger.Debug("openweathermap response body unusable",
			zap.String("city", city),
			zap.Stringer("outcome", fe.Kind),
			zap.Error(err),
		)
		return types.Record{}, fe
	}

	c.logger.Debug("openweathermap request succeeded", zap.String("city", city))
	return rec, nil
}

// errTrailingData marks a body that holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON object")

// decodeRecord reads exactly one JSON object from body. Anything but
// whitespace after it is rejected.
func decodeRecord(body io.Reader) (types.Record, error) {
	var rec types.Record
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return types.Record{}, err
	}
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return rec, nil
	case err != nil:
		return types.Record{}, err
	default:
		return types.Record{}, errTrailingData
	}
}

// classifyBody separates malformed payloads from transport failures that
// surface while the body is still being read (client timeout, reset).
func classifyBody(city string, err error) *types.FetchError {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.Is(err, errTrailingData),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return &types.FetchError{Kind: types.KindParse, City: city, Message: err.Error(), Err: err}
	}
	return classifyTransport(city, err)
}

func classifyTransport(city string, err error) *types.FetchError {
	fe := &types.FetchError{Kind: types.KindRequest, City: city, Message: err.Error(), Err: err}

	var netErr net.Error
	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.Canceled):
		// caller gave up; stays a generic request error
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		fe.Kind = types.KindTimeout
	case errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.As(err, &opErr) && opErr.Op == "dial":
		fe.Kind = types.KindConnection
	}
	return fe
}

func classifyStatus(city string, resp *http.Response) *types.FetchError {
	fe := &types.FetchError{Kind: types.KindHTTP, City: city, StatusCode: resp.StatusCode}
	switch resp.StatusCode {
	case http.StatusNotFound:
		fe.Kind = types.KindNotFound
	case http.StatusUnauthorized:
		fe.Kind = types.KindUnauthorized
	}

	var body apiError
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		fe.Message = body.Message
	} else {
		fe.Message = http.StatusText(resp.StatusCode)
	}
	return fe
}
