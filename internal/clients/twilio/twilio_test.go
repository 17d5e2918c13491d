package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSMSPostsMessageForm(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer srv.Close()

	c := New("AC123", "token", "+15550001111")
	c.baseURL = srv.URL

	require.NoError(t, c.SendSMS(context.Background(), "+66812345678", "Your OTP is 1234"))

	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "token", gotPass)
	assert.Equal(t, "+66812345678", gotTo)
	assert.Equal(t, "+15550001111", gotFrom)
	assert.Equal(t, "Your OTP is 1234", gotBody)
}

func TestSendSMSErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"Invalid 'To' phone number"}`))
	}))
	defer srv.Close()

	c := New("AC123", "token", "+15550001111")
	c.baseURL = srv.URL

	err := c.SendSMS(context.Background(), "bad", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid 'To' phone number")
}

func TestSendSMSMissingCredentials(t *testing.T) {
	c := New("", "", "+15550001111")
	assert.Error(t, c.SendSMS(context.Background(), "+66812345678", "hello"))
}
