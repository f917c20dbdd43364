package bookingRecords

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// recordsClient carries the transport shared by every resource client. It
// performs exactly one attempt per call.
type recordsClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func newRecordsClient(cfg config.AppBookingRecords, logger *zap.Logger) *recordsClient {
	timeout := time.Duration(cfg.TimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Inf
	burst := 1
	if cfg.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(cfg.MaxRequestsPerSecond)
		burst = cfg.MaxRequestsPerSecond
	}

	return &recordsClient{
		BaseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(limit, burst),
		Log:        logger,
	}
}

type recordsRequest struct {
	Method   string
	Resource string
	ID       string
	Query    url.Values
	Body     interface{}
	// NotFoundMessage is returned to clients when the upstream answers 404.
	// Leave empty to treat 404 like any other failure.
	NotFoundMessage string
	// EmptyOnNotFound makes a 404 on a filtered listing mean no matches.
	EmptyOnNotFound bool
}

func (c *recordsClient) buildURL(request recordsRequest) string {
	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, request.Resource)
	if request.ID != "" {
		endpoint = fmt.Sprintf("%s/%s", endpoint, url.PathEscape(request.ID))
	}
	if len(request.Query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, request.Query.Encode())
	}
	return endpoint
}

// do sends request and decodes a 2xx JSON body into out when out is not nil.
func (c *recordsClient) do(ctx context.Context, request recordsRequest, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := c.buildURL(request)

	if err := c.Limiter.Wait(ctx); err != nil {
		c.Log.Error("recordsClient.do rate limiter wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrBookingRecordsUnavailable(err, request.Resource)
	}

	var body io.Reader
	if request.Body != nil {
		payload, err := json.Marshal(request.Body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, endpoint, body)
	if err != nil {
		c.Log.Error("recordsClient.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("recordsClient.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, request.Method),
			zap.String(constvars.LoggingUpstreamURLKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	c.Log.Debug("recordsClient.do received response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.Method),
		zap.String(constvars.LoggingUpstreamURLKey, endpoint),
		zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode == constvars.StatusNotFound {
		if request.EmptyOnNotFound {
			return nil
		}
		if request.NotFoundMessage != "" {
			return exceptions.ErrBookingRecordsNotFound(nil, request.Resource, request.NotFoundMessage)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.Log.Error("recordsClient.do unexpected upstream status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, endpoint),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return exceptions.ErrBookingRecordsBadStatus(nil, resp.StatusCode, request.Resource)
	}

	if out == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		c.Log.Error("recordsClient.do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, request.Resource)
	}
	return nil
}
