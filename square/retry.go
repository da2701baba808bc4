package square

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type retryPolicy struct {
	count   int
	wait    time.Duration
	maxWait time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{count: 3, wait: 250 * time.Millisecond, maxWait: 5 * time.Second}
}

func (p retryPolicy) apply(rc *resty.Client) {
	rc.SetRetryCount(p.count)
	if p.count == 0 {
		return
	}
	rc.
		SetRetryWaitTime(p.wait).
		SetRetryMaxWaitTime(p.maxWait).
		SetRetryAfter(retryAfter).
		AddRetryCondition(shouldRetry)
}

// shouldRetry retries transport failures, 429 and 5xx, but only for
// requests Square will not execute twice.
func shouldRetry(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}
	if !retryable(resp.Request.Method, resp.Request.Body) {
		return false
	}
	if err != nil {
		return true
	}

	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func retryable(method string, body any) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
		return true
	}
	if k, ok := body.(idempotent); ok {
		return *k.idempotencyKeyRef() != ""
	}
	return false
}

// retryAfter honours a Retry-After header in seconds on 429 and 503. resty
// caps the result at the policy's maxWait. A zero result falls back to
// resty's jittered backoff.
func retryAfter(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	if resp == nil {
		return 0, nil
	}
	switch resp.StatusCode() {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
	default:
		return 0, nil
	}

	secs, err := strconv.Atoi(strings.TrimSpace(resp.Header().Get("Retry-After")))
	if err != nil || secs <= 0 {
		return 0, nil
	}
	return time.Duration(secs) * time.Second, nil
}
