package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjfontaine/bdfd-catalog/internal/testutil"
	"github.com/tjfontaine/bdfd-catalog/pkg/catalog"
)

const kickJSON = `{
	"tag": "$kick",
	"shortDescription": "Kicks a member",
	"longDescription": "",
	"arguments": [{"name": "User ID", "type": "Snowflake", "required": true}],
	"intents": 0,
	"premium": false,
	"color": 0
}`

func newTestServer(t *testing.T) (*Server, *testutil.FakeCatalog) {
	t.Helper()
	fake := testutil.NewFakeCatalog(t)
	srv := New(Options{
		Functions: catalog.NewFunctionClient(catalog.WithBaseURL(fake.BaseURL())),
		Callbacks: catalog.NewCallbackClient(catalog.WithBaseURL(fake.BaseURL())),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("# metrics\n"))
		}),
	})
	return srv, fake
}

func serve(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := serve(t, srv, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestServer_FunctionInfo(t *testing.T) {
	srv, fake := newTestServer(t)
	fake.Handle(t, "function_tag_list", []string{"$ban", "$kick"})
	fake.HandleRaw("function/$kick", http.StatusOK, kickJSON)

	rec := serve(t, srv, "/v1/functions/kick")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var fn catalog.Function
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fn))
	assert.Equal(t, "$kick", fn.Tag)
	assert.Equal(t, "Kicks a member", fn.Description)
	assert.Equal(t, catalog.IntentsNone, fn.Intents)
	require.Len(t, fn.Args, 1)
	assert.Equal(t, catalog.ArgSnowflake, fn.Args[0].Type)
}

func TestServer_FunctionInfo_NotFound(t *testing.T) {
	srv, fake := newTestServer(t)
	fake.Handle(t, "function_tag_list", []string{"$ban"})

	rec := serve(t, srv, "/v1/functions/kick")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "not_found", detail.Type)
	assert.Contains(t, detail.Message, `"kick"`)
}

func TestServer_FunctionInfo_UpstreamFailure(t *testing.T) {
	srv, fake := newTestServer(t)
	fake.HandleRaw("function_tag_list", http.StatusInternalServerError, `{"message":"boom"}`)

	rec := serve(t, srv, "/v1/functions/kick")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "transport", decodeError(t, rec).Type)
}

func TestServer_FunctionList(t *testing.T) {
	srv, fake := newTestServer(t)
	fake.HandleRaw("function_list", http.StatusOK, "["+kickJSON+"]")

	rec := serve(t, srv, "/v1/functions")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var list []catalog.Function
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "$kick", list[0].Tag)
}

func TestServer_TagLists(t *testing.T) {
	srv, fake := newTestServer(t)
	fake.Handle(t, "function_tag_list", []string{"$ban", "$kick"})
	fake.Handle(t, "callback_tag_list", []string{"$onJoined", "$onLeave"})

	tests := []struct {
		target string
		want   string
	}{
		{"/v1/functions/tags", `["$ban","$kick"]`},
		{"/v1/callbacks/tags", `["$onJoined","$onLeave"]`},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(t, srv, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestServer_CallbackInfo(t *testing.T) {
	srv, fake := newTestServer(t)
	fake.Handle(t, "callback_tag_list", []string{"$onJoined", "$onLeave"})
	fake.HandleRaw("callback/$onLeave", http.StatusOK,
		`{"name":"$onLeave","description":"Runs when a member leaves","arguments":null,"intents":2,"is_premium":true}`)

	rec := serve(t, srv, "/v1/callbacks/Leave")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var cb catalog.Callback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cb))
	assert.Equal(t, "$onLeave", cb.Name)
	assert.Equal(t, catalog.IntentsMembers, cb.Intents)
	assert.True(t, cb.Premium)
	assert.Nil(t, cb.Args)
}

func TestServer_Metrics(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := serve(t, srv, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics\n", rec.Body.String())
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := serve(t, srv, "/v2/functions")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Type)
}

func TestServer_DomainNotConfigured(t *testing.T) {
	srv := New(Options{Functions: stubFunctions{}})

	rec := serve(t, srv, "/v1/callbacks/tags")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type stubFunctions struct {
	err error
}

func (s stubFunctions) Info(ctx context.Context, tag string) (*catalog.Function, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &catalog.Function{Tag: tag}, nil
}

func (s stubFunctions) List(ctx context.Context) ([]catalog.Function, error) {
	return []catalog.Function{}, s.err
}

func (s stubFunctions) TagList(ctx context.Context) ([]string, error) {
	return []string{}, s.err
}

func TestServer_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"empty tag", catalog.ErrEmptyTag, http.StatusBadRequest, "invalid_argument"},
		{"configuration", &catalog.ConfigurationError{Message: "bad"}, http.StatusBadRequest, "configuration"},
		{"not found", &catalog.NotFoundError{Domain: catalog.DomainFunction, PartialTag: "x"}, http.StatusNotFound, "not_found"},
		{"transport", &catalog.TransportError{Err: errors.New("dial")}, http.StatusBadGateway, "transport"},
		{"unclassified", errors.New("unexpected"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(Options{Functions: stubFunctions{err: tt.err}})

			rec := serve(t, srv, "/v1/functions/anything")

			assert.Equal(t, tt.wantStatus, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, tt.wantType, detail.Type)
			assert.Equal(t, tt.err.Error(), detail.Message)
		})
	}
}

func TestServer_EscapedTag(t *testing.T) {
	var got string
	srv := New(Options{Functions: recordingFunctions{tag: &got}})

	rec := serve(t, srv, "/v1/functions/a%2Fb")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a/b", got)
}

type recordingFunctions struct {
	stubFunctions
	tag *string
}

func (r recordingFunctions) Info(ctx context.Context, tag string) (*catalog.Function, error) {
	*r.tag = tag
	return &catalog.Function{Tag: tag}, nil
}
