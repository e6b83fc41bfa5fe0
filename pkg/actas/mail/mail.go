// Package mail relays outbound mail through Microsoft Graph using an
// application (client credentials) registration stored in the database.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	DefaultTokenURL = "https://login.microsoftonline.com/{tenant_id}/oauth2/v2.0/token"
	DefaultGraphURL = "https://graph.microsoft.com/v1.0"
	DefaultTimeout  = 10 * time.Second

	maxErrorBody = 4096
)

// ErrNoActiveConfig is returned when no GraphMailConfig is marked active
var ErrNoActiveConfig = errors.New("no active mail configuration")

// GraphError reports a non-success answer from the token or sendMail endpoint
type GraphError struct {
	Op     string
	Status int
	Body   string
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("graph %s failed: %d - %s", e.Op, e.Status, e.Body)
}

// Credential is an access token obtained for one config
type Credential struct {
	AccessToken string
	Expiry      time.Time
}

// Message is one mail to send. When To is empty the config's receive
// mailbox is used.
type Message struct {
	Subject     string
	Body        string
	ContentType string // "Text" or "HTML"
	To          []string
}

// Options configures a Client. Zero values take the Graph defaults.
type Options struct {
	TokenURL      string
	GraphURL      string
	Timeout       time.Duration
	RatePerMinute int
	HTTPClient    *http.Client
}

// Client acquires Graph credentials and sends mail. Requests are not retried.
type Client struct {
	tokenURL string
	graphURL string
	timeout  time.Duration
	http     *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a Graph mail client
func NewClient(opts Options) *Client {
	c := &Client{
		tokenURL: opts.TokenURL,
		graphURL: strings.TrimRight(opts.GraphURL, "/"),
		timeout:  opts.Timeout,
		http:     opts.HTTPClient,
		limiter:  rate.NewLimiter(rate.Inf, 1),
	}
	if c.tokenURL == "" {
		c.tokenURL = DefaultTokenURL
	}
	if c.graphURL == "" {
		c.graphURL = DefaultGraphURL
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	if opts.RatePerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RatePerMinute)), 1)
	}
	return c
}

// AcquireCredential runs the client credentials grant for cfg
func (c *Client) AcquireCredential(ctx context.Context, cfg *models.GraphMailConfig) (*Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)

	scope := cfg.Scope
	if scope == "" {
		scope = models.DefaultGraphScope
	}
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     strings.ReplaceAll(c.tokenURL, "{tenant_id}", url.PathEscape(cfg.TenantID)),
		Scopes:       []string{scope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	if cfg.GrantType != "" && cfg.GrantType != models.DefaultGraphGrantType {
		cc.EndpointParams = url.Values{"grant_type": {cfg.GrantType}}
	}

	tok, err := cc.Token(ctx)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			return nil, &GraphError{Op: "token", Status: re.Response.StatusCode, Body: truncate(string(re.Body))}
		}
		return nil, fmt.Errorf("graph token request: %w", err)
	}
	return &Credential{AccessToken: tok.AccessToken, Expiry: tok.Expiry}, nil
}

type graphRecipient struct {
	EmailAddress struct {
		Address string `json:"address"`
	} `json:"emailAddress"`
}

type graphSendMail struct {
	Message struct {
		Subject string `json:"subject"`
		Body    struct {
			ContentType string `json:"contentType"`
			Content     string `json:"content"`
		} `json:"body"`
		ToRecipients []graphRecipient `json:"toRecipients"`
	} `json:"message"`
	SaveToSentItems bool `json:"saveToSentItems"`
}

// Send posts msg to the sendMail endpoint of cfg's sending mailbox
func (c *Client) Send(ctx context.Context, cred *Credential, cfg *models.GraphMailConfig, msg Message) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mail rate limit: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var payload graphSendMail
	payload.Message.Subject = msg.Subject
	payload.Message.Body.ContentType = msg.ContentType
	if payload.Message.Body.ContentType == "" {
		payload.Message.Body.ContentType = "Text"
	}
	payload.Message.Body.Content = msg.Body
	to := msg.To
	if len(to) == 0 {
		to = []string{cfg.EmailReceive}
	}
	for _, addr := range to {
		var r graphRecipient
		r.EmailAddress.Address = addr
		payload.Message.ToRecipients = append(payload.Message.ToRecipients, r)
	}
	payload.SaveToSentItems = true

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/users/%s/sendMail", c.graphURL, url.PathEscape(cfg.EmailSend))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("graph sendMail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &GraphError{Op: "sendMail", Status: resp.StatusCode, Body: string(b)}
	}
	return nil
}

// ResolveActiveConfig returns the active config with the lowest ID
func ResolveActiveConfig(db *gorm.DB, log *zap.Logger) (*models.GraphMailConfig, error) {
	var configs []models.GraphMailConfig
	if err := db.Where("activo = ?", true).Order("id ASC").Find(&configs).Error; err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, ErrNoActiveConfig
	}
	if len(configs) > 1 && log != nil {
		log.Warn("more than one active mail configuration, using the lowest id",
			zap.Int("active", len(configs)), zap.Uint("config_id", configs[0].ID))
	}
	return &configs[0], nil
}

func truncate(s string) string {
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}
