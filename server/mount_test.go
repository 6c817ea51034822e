package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/rpckit/authz"
	"github.com/skillsenselab/rpckit/errors"
	"github.com/skillsenselab/rpckit/rpc"
	"github.com/skillsenselab/rpckit/server"
	"github.com/skillsenselab/rpckit/testutil"
)

type halveInput struct {
	Foo string `json:"foo" validate:"required"`
	Bar int    `json:"bar" validate:"required"`
}

type halveOutput struct {
	Fizz float64 `json:"fizz"`
	Buzz string  `json:"buzz"`
}

func newHalveEndpoint(resolver rpc.IdentityResolver) *rpc.Endpoint[halveInput, rpc.AuthContext, halveOutput] {
	return rpc.NewEndpoint(
		"halve", "Halves bar.",
		rpc.NewIdentityAuthorizer[halveInput](
			resolver,
			testutil.NewChecker(),
			authz.Require(testutil.PermRead, testutil.PermWrite),
		),
		func(_ context.Context, _ rpc.AuthContext, in halveInput) (halveOutput, error) {
			return halveOutput{Fizz: float64(in.Bar) / 2, Buzz: in.Foo}, nil
		},
	)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func do(t *testing.T, r http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMount_SuccessMapsTo200(t *testing.T) {
	r := newTestRouter()
	server.Mount(r, "POST", "/rpc/halve/:identity", newHalveEndpoint(rpc.IdentityFromURLPath))

	w := do(t, r, "POST", "/rpc/halve/alice", `{"foo":"hi","bar":1234}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body)
	}

	var out halveOutput
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response did not decode: %v", err)
	}
	if out.Fizz != 617.0 || out.Buzz != "hi" {
		t.Errorf("output = %+v, want fizz 617 buzz hi", out)
	}
}

func TestMount_UnauthorizedMapsTo401(t *testing.T) {
	r := newTestRouter()
	server.Mount(r, "POST", "/rpc/halve/:identity", newHalveEndpoint(rpc.IdentityFromURLPath))

	for _, identity := range []string{testutil.UserBob, testutil.UserUnknown} {
		w := do(t, r, "POST", "/rpc/halve/"+identity, `{"foo":"hi","bar":2}`, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("identity %q: status = %d, want 401", identity, w.Code)
		}

		var resp errors.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("identity %q: error body did not decode: %v", identity, err)
		}
		if resp.Error.Code != errors.ErrCodeUnauthorized || resp.Error.Message != "Unauthorized." {
			t.Errorf("identity %q: error body = %+v, want generic UNAUTHORIZED", identity, resp.Error)
		}
	}
}

func TestMount_DecodeFailureMapsTo400(t *testing.T) {
	r := newTestRouter()
	server.Mount(r, "POST", "/rpc/halve/:identity", newHalveEndpoint(rpc.IdentityFromURLPath))

	w := do(t, r, "POST", "/rpc/halve/alice", `{"foo":"hi","bar":"nope"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body)
	}

	var resp errors.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body did not decode: %v", err)
	}
	if resp.Error.Code != errors.ErrCodeDecodeFailed {
		t.Errorf("error code = %q, want DECODE_FAILED", resp.Error.Code)
	}
}

func TestMount_IdentityHeader(t *testing.T) {
	r := newTestRouter()
	server.Mount(r, "POST", "/rpc/halve", newHalveEndpoint(rpc.IdentityPreResolved))

	w := do(t, r, "POST", "/rpc/halve", `{"foo":"hi","bar":2}`,
		map[string]string{server.IdentityHeader: testutil.UserAlice})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body)
	}

	// Without the header the resolver fails and the call is rejected.
	w = do(t, r, "POST", "/rpc/halve", `{"foo":"hi","bar":2}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without header = %d, want 401", w.Code)
	}
}

func TestMountRegistry_RoutesAndDescriptors(t *testing.T) {
	registry := rpc.NewRegistry()
	registry.MustRegister(newHalveEndpoint(rpc.IdentityFromURLPath))

	r := newTestRouter()
	server.MountRegistry(r, registry)

	w := do(t, r, "POST", "/rpc/halve/alice", `{"foo":"hi","bar":2}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("mounted endpoint status = %d, want 200; body = %s", w.Code, w.Body)
	}

	w = do(t, r, "GET", server.DescriptorsPath, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("descriptors status = %d, want 200", w.Code)
	}

	var listing struct {
		Endpoints []rpc.Descriptor `json:"endpoints"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("descriptor listing did not decode: %v", err)
	}
	if len(listing.Endpoints) != 1 || listing.Endpoints[0].Name != "halve" {
		t.Fatalf("listing = %+v, want single halve descriptor", listing.Endpoints)
	}
	if len(listing.Endpoints[0].InputSchema.Fields) != 2 {
		t.Errorf("input schema fields = %+v, want foo and bar", listing.Endpoints[0].InputSchema.Fields)
	}
}

func TestRespondWithError_NonAppError(t *testing.T) {
	r := newTestRouter()
	r.GET("/boom", func(c *gin.Context) {
		server.RespondWithError(c, context.DeadlineExceeded)
	})

	w := do(t, r, "GET", "/boom", "", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp errors.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body did not decode: %v", err)
	}
	if resp.Error.Code != errors.ErrCodeInternal {
		t.Errorf("error code = %q, want INTERNAL_ERROR", resp.Error.Code)
	}
}
