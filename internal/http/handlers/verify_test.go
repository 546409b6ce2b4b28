package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/badminton-draw-service/internal/testutil"
	"github.com/preston-bernstein/badminton-draw-service/internal/verifier"
	"github.com/preston-bernstein/badminton-draw-service/internal/verifier/pass"
)

func TestVerifyRecaptchaMethodNotAllowed(t *testing.T) {
	h := NewHandler(Options{Verifier: testutil.PassingVerifier()})
	rr := testutil.Serve(http.HandlerFunc(h.VerifyRecaptcha), http.MethodGet, "/api/verify-recaptcha", nil)

	testutil.AssertError(t, rr, http.StatusMethodNotAllowed, "Method Not Allowed")
}

func TestVerifyRecaptchaMissingToken(t *testing.T) {
	for _, body := range []string{`{}`, `{"token":""}`, `not json`, ``} {
		v := testutil.PassingVerifier()
		h := NewHandler(Options{Verifier: v})
		rr := testutil.Serve(http.HandlerFunc(h.VerifyRecaptcha), http.MethodPost, "/api/verify-recaptcha", strings.NewReader(body))

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		var resp map[string]string
		testutil.DecodeJSON(t, rr, &resp)
		if resp["error"] != "Missing reCAPTCHA token." {
			t.Fatalf("body %q: unexpected error %q", body, resp["error"])
		}
		if v.Calls != 0 {
			t.Fatalf("expected no upstream call for body %q", body)
		}
	}
}

func TestVerifyRecaptchaSecretMissing(t *testing.T) {
	h := NewHandler(Options{Verifier: &testutil.StubVerifier{Err: verifier.ErrSecretMissing}})
	rr := testutil.Serve(http.HandlerFunc(h.VerifyRecaptcha), http.MethodPost, "/api/verify-recaptcha", strings.NewReader(`{"token":"any"}`))

	testutil.AssertError(t, rr, http.StatusInternalServerError, "Server configuration error: reCAPTCHA secret key missing.")
}

func TestVerifyRecaptchaUpstreamFailure(t *testing.T) {
	h := NewHandler(Options{Verifier: &testutil.StubVerifier{Err: &verifier.UpstreamError{StatusCode: 500}}})
	rr := testutil.Serve(http.HandlerFunc(h.VerifyRecaptcha), http.MethodPost, "/api/verify-recaptcha", strings.NewReader(`{"token":"any"}`))

	testutil.AssertError(t, rr, http.StatusInternalServerError, "Internal server error during reCAPTCHA verification.")
}

func TestVerifyRecaptchaRelaysVerdictWithoutThreshold(t *testing.T) {
	v := &testutil.StubVerifier{Result: verifier.Result{Success: true, Score: 0.1}}
	h := NewHandler(Options{Verifier: v, MinScore: 0.5})
	rr := testutil.Serve(http.HandlerFunc(h.VerifyRecaptcha), http.MethodPost, "/api/verify-recaptcha", strings.NewReader(`{"token":"tok"}`))

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Body.String(); got != "{\"success\":true,\"score\":0.1,\"errorCodes\":[]}\n" {
		t.Fatalf("unexpected body %s", got)
	}
	if v.LastToken != "tok" {
		t.Fatalf("expected token forwarded, got %q", v.LastToken)
	}
}

func TestVerifyRecaptchaPassesErrorCodes(t *testing.T) {
	v := &testutil.StubVerifier{Result: verifier.Result{Success: false, ErrorCodes: []string{"timeout-or-duplicate"}}}
	h := NewHandler(Options{Verifier: v})
	rr := testutil.Serve(http.HandlerFunc(h.VerifyRecaptcha), http.MethodPost, "/api/verify-recaptcha", strings.NewReader(`{"token":"tok"}`))

	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp verifyResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Success || len(resp.ErrorCodes) != 1 || resp.ErrorCodes[0] != "timeout-or-duplicate" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestVerifyRecaptchaWithoutVerifierReportsConfiguration(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	h := NewHandler(Options{Logger: logger})
	rr := testutil.Serve(http.HandlerFunc(h.VerifyRecaptcha), http.MethodPost, "/api/verify-recaptcha", strings.NewReader(`{"token":"any"}`))

	testutil.AssertError(t, rr, http.StatusInternalServerError, "Server configuration error: reCAPTCHA verification not configured.")
	if !strings.Contains(buf.String(), "recaptcha relay has no verifier") {
		t.Fatalf("expected configuration error logged, got %s", buf.String())
	}
}

func TestVerifyRecaptchaIssuesPassAboveThreshold(t *testing.T) {
	passes := pass.New(time.Minute)
	h := NewHandler(Options{Verifier: testutil.PassingVerifier(), Passes: passes, MinScore: 0.5})
	rr := testutil.Serve(http.HandlerFunc(h.VerifyRecaptcha), http.MethodPost, "/api/verify-recaptcha", strings.NewReader(`{"token":"tok"}`))

	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp verifyResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Pass == "" {
		t.Fatalf("expected a draw pass, got %+v", resp)
	}
	if !passes.Consume(resp.Pass) {
		t.Fatalf("expected issued pass to be redeemable")
	}
}

func TestVerifyRecaptchaWithholdsPassBelowThreshold(t *testing.T) {
	passes := pass.New(time.Minute)
	v := &testutil.StubVerifier{Result: verifier.Result{Success: true, Score: 0.2}}
	h := NewHandler(Options{Verifier: v, Passes: passes, MinScore: 0.5})
	rr := testutil.Serve(http.HandlerFunc(h.VerifyRecaptcha), http.MethodPost, "/api/verify-recaptcha", strings.NewReader(`{"token":"tok"}`))

	testutil.AssertStatus(t, rr, http.StatusOK)
	if strings.Contains(rr.Body.String(), `"pass"`) || passes.Len() != 0 {
		t.Fatalf("expected no pass for low score, got %s", rr.Body.String())
	}
}
