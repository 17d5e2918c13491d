package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type messageResponse struct {
	Sid          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    *int   `json:"error_code"`
	ErrorMessage string `json:"error_message,omitempty"`
	Message      string `json:"message,omitempty"` // error body field on 4xx/5xx
}

type Client struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	http       *http.Client
}

func New(accountSID, authToken, from string) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    "https://api.twilio.com",
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// SendSMS posts to the Twilio Messages endpoint:
// POST /2010-04-01/Accounts/{sid}/Messages.json
func (c *Client) SendSMS(ctx context.Context, to, body string) error {
	if c.accountSID == "" || c.authToken == "" {
		return errors.New("missing twilio credentials")
	}
	if to == "" {
		return errors.New("missing destination number")
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e messageResponse
		if json.Unmarshal(respBody, &e) == nil && e.Message != "" {
			return fmt.Errorf("twilio error (%d): %s", resp.StatusCode, e.Message)
		}
		return fmt.Errorf("twilio http error (%d): %s", resp.StatusCode, string(respBody))
	}

	var out messageResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return err
	}
	if out.ErrorMessage != "" {
		return errors.New(out.ErrorMessage)
	}

	return nil
}
