package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/valyala/fasthttp"
)

// FastHTTPInterface routes requests to discord through a fasthttp client.
// Like BaseInterface, it does not handle rate limiting.
type FastHTTPInterface struct {
	HTTP       *fasthttp.Client
	APIVersion string
	URLHost    string
	URLScheme  string
	UserAgent  string
}

func NewFastHTTPInterface(client *fasthttp.Client, endpoint string, version string, useragent string) *FastHTTPInterface {
	url, _ := url.Parse(endpoint)

	if client == nil {
		client = &fasthttp.Client{
			ReadTimeout:  defaultTimeout,
			WriteTimeout: defaultTimeout,
		}
	}

	return &FastHTTPInterface{
		HTTP:       client,
		APIVersion: version,
		URLHost:    url.Host,
		URLScheme:  url.Scheme,
		UserAgent:  useragent,
	}
}

func (fi *FastHTTPInterface) Fetch(ctx context.Context, session *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	path, rawQuery := apiPath(fi.APIVersion, endpoint)

	uri := req.URI()
	uri.SetScheme(fi.URLScheme)
	uri.SetHost(fi.URLHost)
	uri.SetPath(path)
	uri.SetQueryString(rawQuery)

	req.Header.SetMethod(method)

	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	if body != nil {
		if len(req.Header.ContentType()) == 0 {
			req.Header.SetContentType(contentType)
		}

		req.SetBodyRaw(body)
	}

	if session.Token != "" {
		req.Header.Set("Authorization", session.Token)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.SetUserAgent(fi.UserAgent)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = fi.HTTP.DoDeadline(req, resp, deadline)
	} else {
		err = fi.HTTP.Do(req, resp)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}

	// The response buffer is released with resp.
	response := append([]byte(nil), resp.Body()...)
	statusCode := resp.StatusCode()

	session.logger().Debug("Fetched endpoint",
		"method", method,
		"url", uri.String(),
		"status", statusCode,
		"request_size", len(body),
		"response_size", len(response),
	)

	if !checkStatus(statusCode) {
		return response, newRestError(statusCode, "", response)
	}

	return response, nil
}
