package wcaprofile

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"wca-userinfo/lib/restyutil"
	"wca-userinfo/lib/telemetry"
	"wca-userinfo/lib/wca"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/wcaprofile")

const (
	DefaultBaseUrl   = "https://www.worldcubeassociation.org/persons"
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:75.0) Gecko/20100101 Firefox/75.0"
	DefaultTimeout   = time.Second * 30
)

var ErrMissingWcaID = errors.New("missing wca id")

// UpstreamStatusError is returned when the WCA website answers with a
// non-2xx status.
type UpstreamStatusError struct {
	Status     int
	StatusText string
	Url        string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("http status %s for url (%s)", e.StatusText, e.Url)
}

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput dumps the http traffic of every Client created
// afterwards to `out`.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// defaults to DefaultUserAgent
	UserAgent string
	// defaults to DefaultTimeout
	Timeout time.Duration
}

// Client fetches WCA person pages, it is safe for concurrent use.
type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	baseUrl, err := url.Parse(strings.TrimSuffix(opts.BaseUrl, "/"))
	if err != nil {
		return nil, err
	}
	if baseUrl.Scheme == "" || baseUrl.Host == "" {
		return nil, fmt.Errorf("base url must be absolute: %q", opts.BaseUrl)
	}

	client := resty.New()
	client.SetBaseURL(baseUrl.String())
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "services/wcaprofile/http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

// FetchProfilePage returns the raw html of the person page of `wcaID`.
func (c *Client) FetchProfilePage(ctx context.Context, wcaID string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:FetchProfilePage")
	defer span.End()

	if strings.TrimSpace(wcaID) == "" {
		span.SetStatus(codes.Error, ErrMissingWcaID.Error())
		return nil, ErrMissingWcaID
	}
	span.SetAttributes(attribute.String("wca_id", wcaID))

	res, err := c.Http.R().
		SetContext(ctx).
		SetPathParam("wca_id", wcaID).
		Get("/{wca_id}")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch person page")
		return nil, err
	}
	if !res.IsSuccess() {
		err := &UpstreamStatusError{
			Status:     res.StatusCode(),
			StatusText: res.Status(),
			Url:        res.Request.URL,
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "person page returned non-2xx status")
		return nil, err
	}

	return res.Body(), nil
}

// GetProfile fetches the person page of `wcaID` and extracts its profile.
func (c *Client) GetProfile(ctx context.Context, wcaID string) (wca.Profile, error) {
	ctx, span := tracer.Start(ctx, "client:GetProfile")
	defer span.End()

	body, err := c.FetchProfilePage(ctx, wcaID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch person page")
		return wca.Profile{}, err
	}

	profile, err := wca.ParseProfile(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract profile")
		return wca.Profile{}, err
	}
	span.SetAttributes(attribute.Int("events", len(profile.Events)))

	return profile, nil
}
